package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"marketplace/config"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	calls    [][]string
	failWith map[string]error
	err      error
}

func (f *fakeSender) Send(context.Context, *messaging.Message) (string, error) {
	return "id", f.err
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.calls = append(f.calls, msg.Tokens)

	resp := &messaging.BatchResponse{}
	for _, token := range msg.Tokens {
		if err, ok := f.failWith[token]; ok {
			resp.FailureCount++
			resp.Responses = append(resp.Responses, &messaging.SendResponse{Error: err})

			continue
		}
		resp.SuccessCount++
		resp.Responses = append(resp.Responses, &messaging.SendResponse{Success: true})
	}

	return resp, nil
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSendBatchNotification_Chunks(t *testing.T) {
	tokens := make([]string, 1200)
	for i := range tokens {
		tokens[i] = "token"
	}
	sender := &fakeSender{}
	svc := &firebaseService{client: sender, logger: newDiscardLogger()}

	ok, failed, invalid, err := svc.SendBatchNotification(context.Background(), tokens, "New order", "12.60", nil)
	require.NoError(t, err)
	assert.Equal(t, 1200, ok)
	assert.Zero(t, failed)
	assert.Empty(t, invalid)
	require.Len(t, sender.calls, 3)
	assert.Len(t, sender.calls[0], 500)
	assert.Len(t, sender.calls[2], 200)
}

func TestSendBatchNotification_NonTokenFailureIsNotInvalid(t *testing.T) {
	sender := &fakeSender{failWith: map[string]error{"b": errors.New("unavailable")}}
	svc := &firebaseService{client: sender, logger: newDiscardLogger()}

	ok, failed, invalid, err := svc.SendBatchNotification(context.Background(), []string{"a", "b"}, "t", "b", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, failed)
	assert.Empty(t, invalid)
}

func TestSendBatchNotification_Empty(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{}, logger: newDiscardLogger()}

	ok, failed, invalid, err := svc.SendBatchNotification(context.Background(), nil, "t", "b", nil)
	require.NoError(t, err)
	assert.Zero(t, ok)
	assert.Zero(t, failed)
	assert.Nil(t, invalid)
}

func TestSendBatchNotification_TransportError(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{err: errors.New("boom")}, logger: newDiscardLogger()}

	_, _, _, err := svc.SendBatchNotification(context.Background(), []string{"a"}, "t", "b", nil)
	assert.ErrorContains(t, err, "failed to send multicast notification")
}

func TestNewFirebaseService_Unconfigured(t *testing.T) {
	svc, err := NewFirebaseService(context.Background(), &config.Config{}, newDiscardLogger())
	require.NoError(t, err)

	ok, _, _, err := svc.SendBatchNotification(context.Background(), []string{"a", "b"}, "t", "b", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, ok)
}
