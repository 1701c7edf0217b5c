package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
)

// GuestDetails identifies an anonymous buyer. Phone is the natural key.
type GuestDetails struct {
	Phone      string
	Name       string
	Address    string
	NationalID *string
}

type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

type CreateGuestOrderInput struct {
	StoreID       uuid.UUID
	Items         []OrderItemInput
	Customer      GuestDetails
	PaymentMethod string
}

type PlaceOrderInput struct {
	StoreID       uuid.UUID
	Items         []OrderItemInput
	PaymentMethod string
}

// OrderUsecase is the order lifecycle: creation, tracking, listing and status changes.
type OrderUsecase interface {
	CreateGuestOrder(ctx context.Context, input CreateGuestOrderInput) (*entity.Order, error)
	PlaceCustomerOrder(ctx context.Context, principal entity.Principal, input PlaceOrderInput) (*entity.Order, error)
	TrackOrder(ctx context.Context, orderID uuid.UUID, phone string) (*entity.Order, error)
	ListOrdersForStore(ctx context.Context, principal entity.Principal, storeID uuid.UUID, page Pagination) ([]*entity.Order, error)
	ListMyOrders(ctx context.Context, principal entity.Principal) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, principal entity.Principal, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// AuthorizeStoreFeed checks that principal may watch the store's live order feed.
	AuthorizeStoreFeed(ctx context.Context, principal entity.Principal, storeID uuid.UUID) error
}

// OrderNotifier fans a committed order out to live dashboards and the event bus.
type OrderNotifier interface {
	OrderCreated(ctx context.Context, order *entity.Order)
	OrderStatusChanged(ctx context.Context, order *entity.Order)
}

// OrderPushUsecase turns order events into push notifications for store owners.
type OrderPushUsecase interface {
	HandleOrderEvent(ctx context.Context, event *service.OrderEvent) (*PushResult, error)
}

type PushResult struct {
	Sent        int
	Failed      int
	Deactivated int64
}
