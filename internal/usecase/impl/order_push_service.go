package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type orderPushService struct {
	storeRepo       repository.StoreRepository
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// OrderPushServiceParams holds dependencies for OrderPushService, injected by Fx.
type OrderPushServiceParams struct {
	fx.In

	StoreRepo       repository.StoreRepository
	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

func NewOrderPushService(params OrderPushServiceParams) usecase.OrderPushUsecase {
	return &orderPushService{
		storeRepo:       params.StoreRepo,
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (s *orderPushService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// HandleOrderEvent notifies every active device of the store owner.
// Repository failures are retryable; a failed FCM send is counted, not retried,
// so owners never get the same push twice.
func (s *orderPushService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) (*usecase.PushResult, error) {
	if event == nil || event.OrderID == uuid.Nil || event.StoreID == uuid.Nil {
		return nil, errors.WithStack(usecase.ErrMalformedOrderEvent)
	}

	title, body, ok := pushContent(event)
	if !ok {
		s.log(ctx).Warn("[Worker] Ignoring unknown order event type", slog.String("event_type", event.EventType))

		return &usecase.PushResult{}, nil
	}

	store, err := s.storeRepo.FindByID(ctx, event.StoreID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrapf(err, "store %s of order %s", event.StoreID, event.OrderID)
		}

		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to load store"))
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, store.OwnerID)
	if err != nil {
		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to load owner devices"))
	}
	if len(devices) == 0 {
		s.log(ctx).Info("[Worker] Store owner has no active devices",
			slog.String("store_id", store.ID.String()),
			slog.String("owner_id", store.OwnerID.String()),
		)

		return &usecase.PushResult{}, nil
	}

	tokens := collectTokens(devices)
	data := map[string]string{
		"event_type": event.EventType,
		"order_id":   event.OrderID.String(),
		"store_id":   event.StoreID.String(),
		"status":     event.Status,
	}

	sent, failed, invalidTokens, err := s.notificationSvc.SendBatchNotification(ctx, tokens, title, body, data)
	if err != nil {
		s.log(ctx).Error("[Worker] Failed to send order push",
			slog.String("order_id", event.OrderID.String()),
			slog.Int("device_count", len(tokens)),
			slog.Any("error", err),
		)

		return &usecase.PushResult{Failed: len(tokens)}, nil
	}

	result := &usecase.PushResult{Sent: sent, Failed: failed}
	if len(invalidTokens) > 0 {
		deactivated, err := s.deviceRepo.DeactivateByTokens(ctx, invalidTokens)
		if err != nil {
			s.log(ctx).Warn("[Worker] Failed to deactivate invalid devices",
				slog.Int("token_count", len(invalidTokens)),
				slog.Any("error", err),
			)
		}
		result.Deactivated = deactivated
	}

	s.log(ctx).Info("[Worker] Order push completed",
		slog.String("order_id", event.OrderID.String()),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int64("deactivated", result.Deactivated),
	)

	return result, nil
}

func pushContent(event *service.OrderEvent) (title, body string, ok bool) {
	shortID := event.OrderID.String()[:8]

	switch event.EventType {
	case service.OrderEventCreated:
		return "New order", "Order " + shortID + " received, total " + event.TotalPrice, true
	case service.OrderEventStatusChanged:
		return "Order updated", "Order " + shortID + " is now " + entity.OrderStatus(event.Status).String(), true
	default:
		return "", "", false
	}
}

func collectTokens(devices []*entity.UserDevice) []string {
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if device.FCMToken != "" {
			tokens = append(tokens, device.FCMToken)
		}
	}

	return tokens
}
