package notification

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit for one SendEachForMulticast call.
const maxMulticastTokens = 500

// multicastSender is the slice of *messaging.Client used here.
type multicastSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
	logger *slog.Logger
}

// NewFirebaseService builds the FCM sender. Without a firebase section it falls
// back to a sender that only logs, so local runs need no credentials.
func NewFirebaseService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	fb := cfg.Firebase
	if fb == nil || (fb.CredentialsPath == "" && fb.ProjectID == "") {
		logger.Info("Firebase not configured, push notifications will be logged only")

		return &logOnlyService{logger: logger}, nil
	}

	var opts []option.ClientOption
	if fb.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(fb.CredentialsPath))
	}

	var appCfg *firebase.Config
	if fb.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: fb.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client, logger: logger}, nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatchNotification fans out in chunks of maxMulticastTokens and reports
// tokens FCM considers invalid or unregistered.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	invalidTokens = make([]string, 0)
	for start := 0; start < len(tokens); start += maxMulticastTokens {
		end := min(start+maxMulticastTokens, len(tokens))
		chunk := tokens[start:end]

		response, sendErr := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		})
		if sendErr != nil {
			return successCount, failureCount, invalidTokens, errors.Wrap(sendErr, "failed to send multicast notification")
		}

		successCount += response.SuccessCount
		failureCount += response.FailureCount

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				invalidTokens = append(invalidTokens, chunk[idx])
			}
		}
	}

	return successCount, failureCount, invalidTokens, nil
}

type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendSingleNotification(ctx context.Context, token, title, _ string, _ map[string]string) error {
	s.logger.InfoContext(ctx, "push skipped", slog.String("title", title), slog.Int("tokens", 1))

	return nil
}

func (s *logOnlyService) SendBatchNotification(ctx context.Context, tokens []string, title, _ string, _ map[string]string) (int, int, []string, error) {
	s.logger.InfoContext(ctx, "push skipped", slog.String("title", title), slog.Int("tokens", len(tokens)))

	return len(tokens), 0, nil, nil
}
