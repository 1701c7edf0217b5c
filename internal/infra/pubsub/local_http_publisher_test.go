package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var (
		received  PubSubPushMessage
		requestID string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	event := &service.OrderEvent{
		RequestID:  "req-1",
		EventType:  service.OrderEventCreated,
		OrderID:    uuid.New(),
		StoreID:    uuid.New(),
		Status:     "REQUESTED",
		TotalPrice: "12.60",
	}

	publisher := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.OrderID.String(), received.Message.Attributes[constants.AttrOrderID])
	assert.Equal(t, event.StoreID.String(), received.Message.Attributes[constants.AttrStoreID])
	assert.Equal(t, service.OrderEventCreated, received.Message.Attributes[constants.AttrEventType])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())
	err := publisher.PublishOrderEvent(context.Background(), &service.OrderEvent{EventType: service.OrderEventCreated})
	assert.ErrorContains(t, err, "non-success status: 503")
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	attrs := eventAttributes(&service.OrderEvent{EventType: service.OrderEventStatusChanged})

	_, ok := attrs[constants.AttrRequestID]
	assert.False(t, ok)
	assert.Equal(t, service.OrderEventStatusChanged, attrs[constants.AttrEventType])
}
