package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/infra/realtime"
	mockUC "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

type orderTestServer struct {
	e       *echo.Echo
	orderUC *mockUC.MockOrderUsecase
	userUC  *mockUC.MockUserUsecase
	hub     *realtime.Hub
}

func newOrderTestServer(t *testing.T, principal entity.Principal) *orderTestServer {
	t.Helper()

	cfg := &config.Config{Realtime: &config.RealtimeConfig{WriteTimeout: time.Second}}
	cfg.HTTP.AllowOrigins = []string{"http://dashboard.test"}

	s := &orderTestServer{
		orderUC: mockUC.NewMockOrderUsecase(t),
		userUC:  mockUC.NewMockUserUsecase(t),
		hub:     realtime.NewHub(8, newDiscardLogger()),
	}
	t.Cleanup(func() { _ = s.hub.Close() })

	h := NewOrderHandler(OrderHandlerParams{
		OrderUC: s.orderUC,
		UserUC:  s.userUC,
		Hub:     s.hub,
		Config:  cfg,
		Logger:  newDiscardLogger(),
	})

	s.e = newTestEcho()
	s.e.POST("/orders", h.CreateGuestOrder)
	s.e.GET("/orders/track/:id", h.TrackOrder)
	s.e.GET("/orders/ws/:storeId", h.StoreFeed)
	s.e.POST("/orders/me", h.PlaceCustomerOrder, as(principal))
	s.e.GET("/orders/me", h.ListMyOrders, as(principal))
	s.e.GET("/orders/store/:storeId", h.ListOrdersForStore, as(principal))
	s.e.PUT("/orders/:id/status", h.UpdateOrderStatus, as(principal))

	return s
}

func sampleGuestOrder(storeID uuid.UUID) *entity.Order {
	guestID := uuid.New()
	productID := uuid.New()

	return &entity.Order{
		ID:            uuid.New(),
		StoreID:       storeID,
		CreatedAt:     time.Now(),
		TotalPrice:    decimal.RequireFromString("12.6"),
		Status:        entity.OrderStatusRequested,
		PaymentMethod: "pix",
		Customer: entity.GuestCustomer{
			GuestID: guestID,
			Guest:   &entity.GuestUser{ID: guestID, Phone: "555-0100", Name: "Ana", Address: "Rua 1"},
		},
		Items: []*entity.OrderItem{{
			ID:              uuid.New(),
			ProductID:       productID,
			Product:         &entity.Product{ID: productID, Name: "Bread", Price: decimal.RequireFromString("4.2"), StoreID: storeID},
			Quantity:        3,
			PriceAtPurchase: decimal.RequireFromString("4.2"),
		}},
	}
}

func TestOrderHandler_CreateGuestOrder(t *testing.T) {
	storeID := uuid.New()
	productID := uuid.New()
	body := `{"store_id":"` + storeID.String() + `","items":[{"product_id":"` + productID.String() + `","quantity":3}],` +
		`"customer_details":{"phone":"555-0100","name":"Ana","address":"Rua 1"},"payment_method":"pix"}`

	t.Run("snapshot shape", func(t *testing.T) {
		s := newOrderTestServer(t, entity.Principal{})
		order := sampleGuestOrder(storeID)
		s.orderUC.EXPECT().CreateGuestOrder(mock.Anything, usecase.CreateGuestOrderInput{
			StoreID:       storeID,
			Items:         []usecase.OrderItemInput{{ProductID: productID, Quantity: 3}},
			Customer:      usecase.GuestDetails{Phone: "555-0100", Name: "Ana", Address: "Rua 1"},
			PaymentMethod: "pix",
		}).Return(order, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		s.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got usecase.OrderSnapshot
		decodeData(t, rec, &got)
		assert.Equal(t, "12.60", got.TotalPrice)
		assert.Nil(t, got.CustomerUser)
		require.NotNil(t, got.GuestCustomer)
		assert.Equal(t, "555-0100", got.GuestCustomer.Phone)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "4.20", got.Items[0].PriceAtPurchase)
	})

	t.Run("foreign product surfaces as validation error", func(t *testing.T) {
		s := newOrderTestServer(t, entity.Principal{})
		s.orderUC.EXPECT().CreateGuestOrder(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrValidationFailed.WithDetailsf("product %s not found in store %s", productID, storeID)).Once()

		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		s.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec).Error.Details, productID.String())
	})

	t.Run("missing customer details", func(t *testing.T) {
		s := newOrderTestServer(t, entity.Principal{})

		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"store_id":"`+storeID.String()+`","items":[],"payment_method":"pix"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		s.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("quantity over the line cap", func(t *testing.T) {
		s := newOrderTestServer(t, entity.Principal{})
		huge := strings.Replace(body, `"quantity":3`, `"quantity":10001`, 1)

		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(huge))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		s.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderHandler_TrackOrder(t *testing.T) {
	s := newOrderTestServer(t, entity.Principal{})
	order := sampleGuestOrder(uuid.New())

	s.orderUC.EXPECT().TrackOrder(mock.Anything, order.ID, "555-0100").Return(order, nil).Once()
	s.orderUC.EXPECT().TrackOrder(mock.Anything, order.ID, "555-9999").Return(nil, domainerrors.ErrForbidden).Once()

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/track/"+order.ID.String()+"?phone=555-0100", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/track/"+order.ID.String()+"?phone=555-9999", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/track/"+order.ID.String(), nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_Owner(t *testing.T) {
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleOwner}
	storeID := uuid.New()

	t.Run("list store orders", func(t *testing.T) {
		s := newOrderTestServer(t, owner)
		s.orderUC.EXPECT().ListOrdersForStore(mock.Anything, owner, storeID, usecase.Pagination{Skip: 0, Limit: 100}).
			Return([]*entity.Order{sampleGuestOrder(storeID)}, nil).Once()

		rec := httptest.NewRecorder()
		s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/store/"+storeID.String()+"?skip=0&limit=100", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []usecase.OrderSnapshot
		decodeData(t, rec, &got)
		assert.Len(t, got, 1)
	})

	t.Run("status update accepts lower case", func(t *testing.T) {
		s := newOrderTestServer(t, owner)
		order := sampleGuestOrder(storeID)
		order.Status = entity.OrderStatusAccepted
		s.orderUC.EXPECT().UpdateOrderStatus(mock.Anything, owner, order.ID, entity.OrderStatusAccepted).Return(order, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/orders/"+order.ID.String()+"/status", strings.NewReader(`{"status":"accepted"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		s.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		s := newOrderTestServer(t, owner)

		req := httptest.NewRequest(http.MethodPut, "/orders/"+uuid.NewString()+"/status", strings.NewReader(`{"status":"LOST"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		s.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejected transition", func(t *testing.T) {
		s := newOrderTestServer(t, owner)
		s.orderUC.EXPECT().UpdateOrderStatus(mock.Anything, owner, mock.Anything, entity.OrderStatusRequested).
			Return(nil, domainerrors.ErrInvalidStatusTransition).Once()

		req := httptest.NewRequest(http.MethodPut, "/orders/"+uuid.NewString()+"/status", strings.NewReader(`{"status":"REQUESTED"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		s.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("my orders", func(t *testing.T) {
		s := newOrderTestServer(t, owner)
		s.orderUC.EXPECT().ListMyOrders(mock.Anything, owner).Return(nil, nil).Once()

		rec := httptest.NewRecorder()
		s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/me", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
	})
}

func TestOrderHandler_StoreFeed(t *testing.T) {
	storeID := uuid.New()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleOwner, IsActive: true}

	t.Run("missing token", func(t *testing.T) {
		s := newOrderTestServer(t, entity.Principal{})

		rec := httptest.NewRecorder()
		s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/ws/"+storeID.String(), nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not the owner", func(t *testing.T) {
		s := newOrderTestServer(t, entity.Principal{})
		s.userUC.EXPECT().Authenticate(mock.Anything, "tok").Return(user, nil).Once()
		s.orderUC.EXPECT().AuthorizeStoreFeed(mock.Anything, user.Principal(), storeID).Return(domainerrors.ErrForbidden).Once()

		rec := httptest.NewRecorder()
		s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/ws/"+storeID.String()+"?token=tok", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("receives broadcasts until disconnect", func(t *testing.T) {
		s := newOrderTestServer(t, entity.Principal{})
		s.userUC.EXPECT().Authenticate(mock.Anything, "tok").Return(user, nil).Once()
		s.orderUC.EXPECT().AuthorizeStoreFeed(mock.Anything, user.Principal(), storeID).Return(nil).Once()

		srv := httptest.NewServer(s.e)
		defer srv.Close()

		wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/orders/ws/" + storeID.String() + "?token=tok"
		ws, err := websocket.Dial(wsURL, "", "http://dashboard.test")
		require.NoError(t, err)

		require.Eventually(t, func() bool { return s.hub.SubscriberCount(storeID) == 1 }, 2*time.Second, 10*time.Millisecond)

		order := sampleGuestOrder(storeID)
		s.hub.Broadcast(context.Background(), storeID, usecase.NewOrderSnapshot(order))

		require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
		var msg string
		require.NoError(t, websocket.Message.Receive(ws, &msg))
		var got usecase.OrderSnapshot
		require.NoError(t, json.Unmarshal([]byte(msg), &got))
		assert.Equal(t, order.ID, got.ID)

		require.NoError(t, ws.Close())
		assert.Eventually(t, func() bool { return s.hub.SubscriberCount(storeID) == 0 }, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("foreign origin rejected", func(t *testing.T) {
		s := newOrderTestServer(t, entity.Principal{})
		s.userUC.EXPECT().Authenticate(mock.Anything, "tok").Return(user, nil).Once()
		s.orderUC.EXPECT().AuthorizeStoreFeed(mock.Anything, user.Principal(), storeID).Return(nil).Once()

		srv := httptest.NewServer(s.e)
		defer srv.Close()

		wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/orders/ws/" + storeID.String() + "?token=tok"
		_, err := websocket.Dial(wsURL, "", "http://evil.test")
		assert.Error(t, err)
	})
}
