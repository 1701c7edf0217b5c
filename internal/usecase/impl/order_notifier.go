package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"go.uber.org/fx"
)

// orderNotifier pushes committed orders to live dashboards and the event bus.
// Both legs are best-effort: failures are logged and never reach the caller.
type orderNotifier struct {
	broadcaster service.OrderBroadcaster
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// OrderNotifierParams holds dependencies for OrderNotifier, injected by Fx.
type OrderNotifierParams struct {
	fx.In

	Broadcaster service.OrderBroadcaster
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

func NewOrderNotifier(params OrderNotifierParams) usecase.OrderNotifier {
	return &orderNotifier{
		broadcaster: params.Broadcaster,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (n *orderNotifier) OrderCreated(ctx context.Context, order *entity.Order) {
	n.notify(ctx, service.OrderEventCreated, order)
}

func (n *orderNotifier) OrderStatusChanged(ctx context.Context, order *entity.Order) {
	n.notify(ctx, service.OrderEventStatusChanged, order)
}

func (n *orderNotifier) notify(ctx context.Context, eventType string, order *entity.Order) {
	n.broadcaster.Broadcast(ctx, order.StoreID, usecase.NewOrderSnapshot(order))

	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventType:  eventType,
		OrderID:    order.ID,
		StoreID:    order.StoreID,
		Status:     order.Status.String(),
		TotalPrice: usecase.Money(order.TotalPrice),
	}
	if err := n.publisher.PublishOrderEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, n.logger).Warn("Failed to publish order event",
			slog.String("event_type", eventType),
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	}
}
