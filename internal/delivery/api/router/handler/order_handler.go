package handler

import (
	"log/slog"
	"net/http"
	"time"

	"marketplace/config"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"
	"marketplace/internal/infra/realtime"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/net/websocket"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	UserUC  usecase.UserUsecase
	Hub     *realtime.Hub
	Config  *config.Config
	Logger  *slog.Logger
}

// OrderHandler serves /orders including the per-store live feed.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	userUC  usecase.UserUsecase
	hub     *realtime.Hub
	config  *config.Config
	logger  *slog.Logger
}

func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		userUC:  params.UserUC,
		hub:     params.Hub,
		config:  params.Config,
		logger:  params.Logger,
	}
}

type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"max=10000"`
}

type CustomerDetailsRequest struct {
	Phone      string  `json:"phone" validate:"required,max=20"`
	Name       string  `json:"name" validate:"required"`
	Address    string  `json:"address" validate:"required"`
	NationalID *string `json:"national_id"`
}

type CreateGuestOrderRequest struct {
	StoreID         uuid.UUID              `json:"store_id" validate:"required"`
	Items           []OrderItemRequest     `json:"items" validate:"dive"`
	CustomerDetails CustomerDetailsRequest `json:"customer_details" validate:"required"`
	PaymentMethod   string                 `json:"payment_method" validate:"required"`
}

type PlaceOrderRequest struct {
	StoreID       uuid.UUID          `json:"store_id" validate:"required"`
	Items         []OrderItemRequest `json:"items" validate:"dive"`
	PaymentMethod string             `json:"payment_method" validate:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func toItemInputs(items []OrderItemRequest) []usecase.OrderItemInput {
	out := make([]usecase.OrderItemInput, 0, len(items))
	for _, item := range items {
		out = append(out, usecase.OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	return out
}

// CreateGuestOrder is public: the buyer is identified by the submitted phone.
func (h *OrderHandler) CreateGuestOrder(c echo.Context) error {
	var req CreateGuestOrderRequest
	if err := bind(c, &req); err != nil {
		return done(err)
	}

	order, err := h.orderUC.CreateGuestOrder(c.Request().Context(), usecase.CreateGuestOrderInput{
		StoreID: req.StoreID,
		Items:   toItemInputs(req.Items),
		Customer: usecase.GuestDetails{
			Phone:      req.CustomerDetails.Phone,
			Name:       req.CustomerDetails.Name,
			Address:    req.CustomerDetails.Address,
			NationalID: req.CustomerDetails.NationalID,
		},
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, usecase.NewOrderSnapshot(order))
}

func (h *OrderHandler) PlaceCustomerOrder(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return done(err)
	}

	var req PlaceOrderRequest
	if err := bind(c, &req); err != nil {
		return done(err)
	}

	order, err := h.orderUC.PlaceCustomerOrder(c.Request().Context(), principal, usecase.PlaceOrderInput{
		StoreID:       req.StoreID,
		Items:         toItemInputs(req.Items),
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, usecase.NewOrderSnapshot(order))
}

// TrackOrder authenticates the guest by ?phone=.
func (h *OrderHandler) TrackOrder(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return done(err)
	}
	phone := c.QueryParam("phone")
	if phone == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "phone is required")
	}

	order, err := h.orderUC.TrackOrder(c.Request().Context(), orderID, phone)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usecase.NewOrderSnapshot(order))
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return done(err)
	}

	orders, err := h.orderUC.ListMyOrders(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponses(orders))
}

func (h *OrderHandler) ListOrdersForStore(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return done(err)
	}
	storeID, err := uuidParam(c, "storeId")
	if err != nil {
		return done(err)
	}
	page, err := pagination(c)
	if err != nil {
		return done(err)
	}

	orders, err := h.orderUC.ListOrdersForStore(c.Request().Context(), principal, storeID, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponses(orders))
}

func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return done(err)
	}
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return done(err)
	}

	var req UpdateStatusRequest
	if err := bind(c, &req); err != nil {
		return done(err)
	}
	status, ok := entity.ParseOrderStatus(req.Status)
	if !ok {
		return response.BadRequest(c, "VALIDATION_ERROR", "unknown order status "+req.Status)
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), principal, orderID, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usecase.NewOrderSnapshot(order))
}

// StoreFeed upgrades to a websocket that receives an order snapshot on every
// create or status change of the store. Browsers cannot set headers on the
// upgrade, so the access token comes in ?token=. Auth failures are answered
// with plain HTTP errors before the handshake.
func (h *OrderHandler) StoreFeed(c echo.Context) error {
	storeID, err := uuidParam(c, "storeId")
	if err != nil {
		return done(err)
	}

	token := c.QueryParam("token")
	if token == "" {
		token, _ = middleware.BearerToken(c)
	}
	if token == "" {
		return response.Unauthorized(c, "UNAUTHORIZED", "Not authenticated")
	}

	ctx := c.Request().Context()
	user, err := h.userUC.Authenticate(ctx, token)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if err := h.orderUC.AuthorizeStoreFeed(ctx, user.Principal(), storeID); err != nil {
		return response.HandleAppError(c, err)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(
		slog.String("store_id", storeID.String()),
		slog.String("user_id", user.ID.String()),
	)

	server := websocket.Server{
		Handshake: h.checkOrigin,
		Handler: func(ws *websocket.Conn) {
			conn := realtime.NewWebsocketConn(ws, h.writeTimeout())
			if err := h.hub.Subscribe(conn, storeID); err != nil {
				logger.Warn("Rejected order feed subscription", slog.Any("error", err))
				_ = conn.Close()

				return
			}
			defer h.hub.Unsubscribe(conn, storeID)
			logger.Info("Order feed connected")

			// Client frames are ignored; the read only detects the disconnect.
			if err := conn.Drain(); err != nil {
				logger.Debug("Order feed disconnected", slog.Any("reason", err))
			}
		},
	}
	server.ServeHTTP(c.Response(), c.Request())

	return nil
}

func (h *OrderHandler) writeTimeout() time.Duration {
	if h.config.Realtime == nil {
		return 0
	}

	return h.config.Realtime.WriteTimeout
}

// checkOrigin applies the CORS allow list to the upgrade. Clients without an
// Origin header (native apps) are accepted.
func (h *OrderHandler) checkOrigin(cfg *websocket.Config, req *http.Request) error {
	origin := req.Header.Get(echo.HeaderOrigin)
	if origin == "" {
		return nil
	}

	allowed := h.config.HTTP.AllowOrigins
	if len(allowed) == 0 {
		return nil
	}
	for _, o := range allowed {
		if o == "*" || o == origin {
			return nil
		}
	}

	return errors.Errorf("origin %q not allowed", origin)
}
