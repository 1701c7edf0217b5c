package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderRepository implements repository.OrderRepository.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order row and its items. Item ids are UUIDv7 generated in
// input order, which is the order reads return them in.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Omit("CustomerUser", "GuestCustomer", "Store").
		Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("order references a missing store, product or customer")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("order must reference exactly one customer")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = orderM.ID
	}

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := withOrderGraph(repo.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM)
}

func (repo *orderRepository) ListByStore(ctx context.Context, storeID uuid.UUID, page repository.Page) ([]*entity.Order, error) {
	return repo.list(paginate(repo.db.WithContext(ctx), page).Where("store_id = ?", storeID))
}

func (repo *orderRepository) ListByCustomerUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	return repo.list(repo.db.WithContext(ctx).Where("customer_user_id = ?", userID))
}

func (repo *orderRepository) list(db *gorm.DB) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := withOrderGraph(db).
		Order("created_at DESC, id DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// withOrderGraph eager-loads what an order snapshot needs.
func withOrderGraph(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Items.Product").
		Preload("CustomerUser").
		Preload("GuestCustomer")
}

// --- Mapper Functions ---

// toOrderDomain rejects rows that break the one-customer rule instead of guessing.
func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	var customer entity.Customer
	switch {
	case data.CustomerUserID != nil && data.GuestCustomerID == nil:
		customer = entity.RegisteredCustomer{
			UserID: *data.CustomerUserID,
			User:   toUserDomain(data.CustomerUser),
		}
	case data.GuestCustomerID != nil && data.CustomerUserID == nil:
		customer = entity.GuestCustomer{
			GuestID: *data.GuestCustomerID,
			Guest:   toGuestDomain(data.GuestCustomer),
		}
	default:
		return nil, errors.Errorf("order %s does not reference exactly one customer", data.ID)
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, &entity.OrderItem{
			ID:              itemM.ID,
			OrderID:         itemM.OrderID,
			ProductID:       itemM.ProductID,
			Product:         toProductDomain(itemM.Product),
			Quantity:        itemM.Quantity,
			PriceAtPurchase: itemM.PriceAtPurchase,
		})
	}

	return &entity.Order{
		ID:            data.ID,
		Customer:      customer,
		StoreID:       data.StoreID,
		CreatedAt:     data.CreatedAt,
		TotalPrice:    data.TotalPrice,
		Status:        entity.OrderStatus(data.Status),
		PaymentMethod: data.PaymentMethod,
		Items:         items,
	}, nil
}

func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	orderM := &model.OrderModel{
		ID:            data.ID,
		StoreID:       data.StoreID,
		CreatedAt:     data.CreatedAt,
		TotalPrice:    data.TotalPrice,
		Status:        data.Status.String(),
		PaymentMethod: data.PaymentMethod,
		Items:         make([]*model.OrderItemModel, 0, len(data.Items)),
	}

	switch c := data.Customer.(type) {
	case entity.RegisteredCustomer:
		orderM.CustomerUserID = &c.UserID
	case entity.GuestCustomer:
		orderM.GuestCustomerID = &c.GuestID
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("order has no customer")
	}

	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, &model.OrderItemModel{
			ID:              item.ID,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
		})
	}

	return orderM, nil
}
