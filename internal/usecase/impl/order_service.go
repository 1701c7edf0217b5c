package impl

import (
	"context"
	"log/slog"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/access"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	storeRepo repository.StoreRepository
	notifier  usecase.OrderNotifier
	machine   *entity.StatusMachine
	pageSize  int
	maxPage   int
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	StoreRepo repository.StoreRepository
	Notifier  usecase.OrderNotifier
	Config    *config.Config
	Logger    *slog.Logger
}

func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	machine := entity.NewPermissiveStatusMachine()
	var pageSize, maxPage int
	if orders := params.Config.Orders; orders != nil {
		if orders.StrictTransitions {
			machine = entity.NewSequentialStatusMachine()
		}
		pageSize, maxPage = orders.DefaultPageSize, orders.MaxPageSize
	}

	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		storeRepo: params.StoreRepo,
		notifier:  params.Notifier,
		machine:   machine,
		pageSize:  pageSize,
		maxPage:   maxPage,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// customerResolver produces the buyer identity inside the order transaction.
type customerResolver func(ctx context.Context, repos repository.RepositoryFactory) (entity.Customer, error)

// CreateGuestOrder resolves the guest by phone and places the order in one transaction.
func (srv *orderService) CreateGuestOrder(ctx context.Context, input usecase.CreateGuestOrderInput) (*entity.Order, error) {
	if _, err := normalizePhone(input.Customer.Phone); err != nil {
		return nil, err
	}

	resolve := func(ctx context.Context, repos repository.RepositoryFactory) (entity.Customer, error) {
		guest, err := resolveGuest(ctx, repos, input.Customer)
		if err != nil {
			return nil, err
		}

		return entity.GuestCustomer{GuestID: guest.ID, Guest: guest}, nil
	}

	order, err := srv.placeOrder(ctx, input.StoreID, input.Items, input.PaymentMethod, resolve)
	if err != nil {
		return nil, err
	}
	srv.notifier.OrderCreated(ctx, order)

	return order, nil
}

// PlaceCustomerOrder places an order on behalf of an authenticated user.
func (srv *orderService) PlaceCustomerOrder(ctx context.Context, principal entity.Principal, input usecase.PlaceOrderInput) (*entity.Order, error) {
	if principal.UserID == uuid.Nil {
		return nil, domainerrors.ErrUnauthorized
	}

	resolve := func(context.Context, repository.RepositoryFactory) (entity.Customer, error) {
		return entity.RegisteredCustomer{UserID: principal.UserID}, nil
	}

	order, err := srv.placeOrder(ctx, input.StoreID, input.Items, input.PaymentMethod, resolve)
	if err != nil {
		return nil, err
	}
	srv.notifier.OrderCreated(ctx, order)

	return order, nil
}

func (srv *orderService) placeOrder(
	ctx context.Context,
	storeID uuid.UUID,
	items []usecase.OrderItemInput,
	paymentMethod string,
	resolve customerResolver,
) (*entity.Order, error) {
	lines := make([]entity.OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, entity.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	var created *entity.Order
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.StoreRepo().FindByID(ctx, storeID); err != nil {
			return mapStoreError(err)
		}

		draft := entity.OrderDraft{StoreID: storeID, PaymentMethod: paymentMethod, Lines: lines}
		products, err := repos.ProductRepo().FindByIDs(ctx, draft.ProductIDs())
		if err != nil {
			return errors.Wrap(err, "failed to load ordered products")
		}
		catalog := make(map[uuid.UUID]*entity.Product, len(products))
		for _, p := range products {
			catalog[p.ID] = p
		}

		customer, err := resolve(ctx, repos)
		if err != nil {
			return err
		}
		draft.Customer = customer

		order, err := entity.AssembleOrder(draft, catalog)
		if err != nil {
			return err
		}

		if err := repos.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to persist order")
		}

		// Re-read so the response carries the eager-loaded customer and products.
		created, err = repos.OrderRepo().FindByID(ctx, order.ID)

		return errors.Wrap(err, "failed to reload created order")
	})
	if err != nil {
		srv.log(ctx).Warn("Order placement failed", slog.String("store_id", storeID.String()), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_id", created.ID.String()),
		slog.String("store_id", storeID.String()),
		slog.String("total", usecase.Money(created.TotalPrice)),
	)

	return created, nil
}

// TrackOrder authenticates an anonymous caller by the phone on the guest record.
// A mismatch never reveals the order.
func (srv *orderService) TrackOrder(ctx context.Context, orderID uuid.UUID, phone string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, mapOrderError(err)
	}

	if err := access.AuthorizeGuestTracking(order, phone); err != nil {
		srv.log(ctx).Info("Order tracking denied", slog.String("order_id", orderID.String()))

		return nil, err
	}

	return order, nil
}

func (srv *orderService) ListOrdersForStore(ctx context.Context, principal entity.Principal, storeID uuid.UUID, page usecase.Pagination) ([]*entity.Order, error) {
	if err := srv.AuthorizeStoreFeed(ctx, principal, storeID); err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.ListByStore(ctx, storeID, page.Page(srv.pageSize, srv.maxPage))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store orders")
	}

	return orders, nil
}

func (srv *orderService) ListMyOrders(ctx context.Context, principal entity.Principal) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByCustomerUser(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	return orders, nil
}

// UpdateOrderStatus applies the status machine and rebroadcasts the new snapshot.
// Setting the current status again is accepted and still broadcast.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, principal entity.Principal, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		order, err := repos.OrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return mapOrderError(err)
		}

		store, err := repos.StoreRepo().FindByID(ctx, order.StoreID)
		if err != nil {
			return mapStoreError(err)
		}
		if err := access.AuthorizeStore(principal, store); err != nil {
			return err
		}

		next, err := srv.machine.Transition(order.Status, status)
		if err != nil {
			return err
		}
		if entity.SkipsSteps(order.Status, next) {
			srv.log(ctx).Warn("Order status jump",
				slog.String("order_id", orderID.String()),
				slog.String("from", order.Status.String()),
				slog.String("to", next.String()),
			)
		}

		if err := repos.OrderRepo().UpdateStatus(ctx, orderID, next); err != nil {
			return mapOrderError(err)
		}

		updated, err = repos.OrderRepo().FindByID(ctx, orderID)

		return errors.Wrap(err, "failed to reload order")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("order_id", orderID.String()),
		slog.String("status", updated.Status.String()),
	)
	srv.notifier.OrderStatusChanged(ctx, updated)

	return updated, nil
}

func (srv *orderService) AuthorizeStoreFeed(ctx context.Context, principal entity.Principal, storeID uuid.UUID) error {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return mapStoreError(err)
	}

	return access.AuthorizeStore(principal, store)
}

func mapOrderError(err error) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return domainerrors.ErrOrderNotFound
	}

	return errors.Wrap(err, "order repository failure")
}

func mapStoreError(err error) error {
	if errors.Is(err, repository.ErrStoreNotFound) {
		return domainerrors.ErrStoreNotFound
	}

	return errors.Wrap(err, "store repository failure")
}
