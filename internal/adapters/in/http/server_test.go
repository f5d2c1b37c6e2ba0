package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pizzeria/internal/adapters/in/ws"
	"pizzeria/internal/adapters/out/kv"
	"pizzeria/internal/adapters/out/memory"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/auth"
	"pizzeria/internal/pkg/errs"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

// stubProductRepository serves a fixed menu for handler tests.
type stubProductRepository struct {
	products []product.Product
}

func (r *stubProductRepository) GetAll(_ context.Context) ([]product.Product, error) {
	return r.products, nil
}

func (r *stubProductRepository) Get(_ context.Context, id kernel.UUID) (product.Product, error) {
	for _, p := range r.products {
		if p.ID().IsEqual(id) {
			return p, nil
		}
	}
	return product.Product{}, errs.NewObjectNotFoundError("product", id.String())
}

func testProduct(t *testing.T, slug, name, price string) product.Product {
	t.Helper()

	money, err := kernel.NewMoneyFromString(price)
	require.NoError(t, err)

	p, err := product.NewProduct(kernel.NewUUID(), slug, name, "", money, "")
	require.NoError(t, err)

	return p
}

func newTestServer(t *testing.T, products ...product.Product) (*echo.Echo, *ws.Hub) {
	t.Helper()

	carts := memory.NewCartRegistry()
	store := kv.NewStageStore(memory.NewKeyValueStore())
	repo := &stubProductRepository{products: products}
	payment := services.NewPaymentValidator()

	users, err := auth.NewUserStore([]auth.RosterEntry{
		{Username: "cozinha", Password: "forno123", Role: auth.RoleKitchen},
	})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := ws.NewHub(logger)

	server := NewServer(
		commands.NewAddCartItemCommandHandler(carts, repo),
		commands.NewRemoveCartItemCommandHandler(carts),
		commands.NewUpdateCartItemQuantityCommandHandler(carts),
		commands.NewClearCartCommandHandler(carts),
		commands.NewSubmitOrderCommandHandler(carts, store, payment),
		commands.NewMarkOrderReadyCommandHandler(store),
		commands.NewCompleteOrderCommandHandler(store),
		queries.GetCatalogQueryHandler{},
		queries.NewGetCartQueryHandler(carts),
		queries.NewGetStageOrdersQueryHandler(store),
		users,
		testJWTSecret,
		hub,
		logger,
	)

	e := echo.New()
	server.RegisterRoutes(e)

	return e, hub
}

func doJSON(e *echo.Echo, method, target, sessionID, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if sessionID != "" {
		req.Header.Set(sessionHeader, sessionID)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestServer_CartFlow(t *testing.T) {
	margherita := testProduct(t, "margherita", "Margherita", "42.90")
	calabresa := testProduct(t, "calabresa", "Calabresa", "45.90")
	e, _ := newTestServer(t, margherita, calabresa)

	session := "session-1"

	t.Run("empty cart for fresh session", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/v1/cart", session, "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeBody[Cart](t, rec)
		assert.Empty(t, got.Items)
		assert.Equal(t, 0, got.ItemCount)
		assert.Equal(t, "0.00", got.Total)
	})

	t.Run("missing session header", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/v1/cart", "", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("add merges lines for the same product", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/v1/cart/items", session, "", AddCartItemRequest{
			ProductID: margherita.ID().String(),
			Quantity:  2,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(e, http.MethodPost, "/api/v1/cart/items", session, "", AddCartItemRequest{
			ProductID: margherita.ID().String(),
			Quantity:  1,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		got := decodeBody[Cart](t, rec)
		require.Len(t, got.Items, 1)
		assert.Equal(t, 3, got.Items[0].Quantity)
		assert.Equal(t, "128.70", got.Total)
	})

	t.Run("add unknown product", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/v1/cart/items", session, "", AddCartItemRequest{
			ProductID: kernel.NewUUID().String(),
			Quantity:  1,
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update quantity", func(t *testing.T) {
		target := fmt.Sprintf("/api/v1/cart/items/%s", margherita.ID())
		rec := doJSON(e, http.MethodPatch, target, session, "", UpdateCartItemRequest{Quantity: 1})

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeBody[Cart](t, rec)
		require.Len(t, got.Items, 1)
		assert.Equal(t, 1, got.Items[0].Quantity)
		assert.Equal(t, "42.90", got.Total)
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		target := fmt.Sprintf("/api/v1/cart/items/%s", margherita.ID())
		rec := doJSON(e, http.MethodPatch, target, session, "", UpdateCartItemRequest{Quantity: 0})

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeBody[Cart](t, rec)
		assert.Empty(t, got.Items)
	})

	t.Run("remove and clear", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/v1/cart/items", session, "", AddCartItemRequest{
			ProductID: calabresa.ID().String(),
			Quantity:  1,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		target := fmt.Sprintf("/api/v1/cart/items/%s", calabresa.ID())
		rec = doJSON(e, http.MethodDelete, target, session, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeBody[Cart](t, rec).Items)

		rec = doJSON(e, http.MethodDelete, "/api/v1/cart", session, "", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestServer_Login(t *testing.T) {
	e, _ := newTestServer(t)

	t.Run("valid credentials", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/v1/auth/login", "", "", LoginRequest{
			Username: "cozinha",
			Password: "forno123",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeBody[LoginResponse](t, rec)
		assert.NotEmpty(t, got.Token)
		assert.Equal(t, "cozinha", got.Username)
		assert.Equal(t, auth.RoleKitchen, got.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/v1/auth/login", "", "", LoginRequest{
			Username: "cozinha",
			Password: "errado",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestServer_StaffEndpointsRequireToken(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/v1/staff/orders/KITCHEN", "", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/staff/orders/KITCHEN", "", "nonsense", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_CheckoutAndStagePipeline(t *testing.T) {
	margherita := testProduct(t, "margherita", "Margherita", "42.90")
	e, _ := newTestServer(t, margherita)

	session := "session-2"
	rec := doJSON(e, http.MethodPost, "/api/v1/cart/items", session, "", AddCartItemRequest{
		ProductID: margherita.ID().String(),
		Quantity:  2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/checkout", session, "", CheckoutRequest{
		DeliveryMode:  "TABLE",
		TableNumber:   7,
		PaymentMethod: "PIX",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	checkout := decodeBody[CheckoutResponse](t, rec)
	assert.Equal(t, "85.80", checkout.Total)
	assert.Equal(t, "KITCHEN", checkout.Stage)
	require.NotEmpty(t, checkout.OrderID)

	// Checkout empties the cart.
	rec = doJSON(e, http.MethodGet, "/api/v1/cart", session, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[Cart](t, rec).Items)

	token, err := auth.GenerateToken(testJWTSecret, "cozinha", auth.RoleKitchen)
	require.NoError(t, err)

	rec = doJSON(e, http.MethodGet, "/api/v1/staff/orders/KITCHEN", "", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	kitchen := decodeBody[[]Order](t, rec)
	require.Len(t, kitchen, 1)
	assert.Equal(t, checkout.OrderID, kitchen[0].ID)
	assert.Equal(t, 7, kitchen[0].TableNumber)
	assert.Nil(t, kitchen[0].ReadyAt)

	rec = doJSON(e, http.MethodPost, "/api/v1/staff/orders/"+checkout.OrderID+"/ready", "", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/staff/orders/KITCHEN", "", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]Order](t, rec))

	rec = doJSON(e, http.MethodGet, "/api/v1/staff/orders/READY", "", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ready := decodeBody[[]Order](t, rec)
	require.Len(t, ready, 1)
	assert.Equal(t, checkout.OrderID, ready[0].ID)
	require.NotNil(t, ready[0].ReadyAt)

	rec = doJSON(e, http.MethodPost, "/api/v1/staff/orders/"+checkout.OrderID+"/complete", "", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/staff/orders/READY", "", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]Order](t, rec))
}

func TestServer_CheckoutValidation(t *testing.T) {
	margherita := testProduct(t, "margherita", "Margherita", "42.90")
	e, _ := newTestServer(t, margherita)

	session := "session-3"
	rec := doJSON(e, http.MethodPost, "/api/v1/cart/items", session, "", AddCartItemRequest{
		ProductID: margherita.ID().String(),
		Quantity:  1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("unknown delivery mode", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/v1/checkout", session, "", CheckoutRequest{
			DeliveryMode:  "DRONE",
			PaymentMethod: "PIX",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("card payment with invalid card", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/v1/checkout", session, "", CheckoutRequest{
			DeliveryMode:  "TABLE",
			TableNumber:   3,
			PaymentMethod: "CARD",
			Card:          &Card{Number: "1234", HolderName: "A", Expiry: "13/99", CVV: "1"},
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty cart", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/v1/checkout", "fresh-session", "", CheckoutRequest{
			DeliveryMode:  "TABLE",
			TableNumber:   3,
			PaymentMethod: "PIX",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("cart untouched after failed checkout", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/v1/cart", session, "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody[Cart](t, rec).Items, 1)
	})
}

func TestServer_UnknownOrderTransitions(t *testing.T) {
	e, _ := newTestServer(t)

	token, err := auth.GenerateToken(testJWTSecret, "cozinha", auth.RoleKitchen)
	require.NoError(t, err)

	id := kernel.NewUUID().String()

	rec := doJSON(e, http.MethodPost, "/api/v1/staff/orders/"+id+"/ready", "", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/staff/orders/"+id+"/complete", "", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/staff/orders/DELIVERED", "", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_StaffSocketReceivesTransitionEvents(t *testing.T) {
	margherita := testProduct(t, "margherita", "Margherita", "42.90")
	e, hub := newTestServer(t, margherita)

	srv := httptest.NewServer(e)
	defer srv.Close()

	token, err := auth.GenerateToken(testJWTSecret, "cozinha", auth.RoleKitchen)
	require.NoError(t, err)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/staff/ws?token=" + token
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	resp.Body.Close()
	defer conn.Close()

	// Registration happens just after the upgrade handshake; wait for the
	// hub to see the panel before triggering broadcasts.
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	readEvent := func() ws.Message {
		t.Helper()
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var msg ws.Message
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(payload, &msg))
		return msg
	}

	session := "session-ws"
	rec := doJSON(e, http.MethodPost, "/api/v1/cart/items", session, "", AddCartItemRequest{
		ProductID: margherita.ID().String(),
		Quantity:  1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/checkout", session, "", CheckoutRequest{
		DeliveryMode:  "TABLE",
		TableNumber:   4,
		PaymentMethod: "PIX",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	checkout := decodeBody[CheckoutResponse](t, rec)

	msg := readEvent()
	assert.Equal(t, ws.EventStageUpdate, msg.Event)
	assert.Equal(t, map[string]interface{}{"stage": "KITCHEN"}, msg.Data)

	rec = doJSON(e, http.MethodPost, "/api/v1/staff/orders/"+checkout.OrderID+"/ready", "", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// The transition announces the ready order and a refresh for both
	// queues, since one shrank and the other grew.
	events := make(map[string]bool)
	for range 3 {
		msg := readEvent()
		switch msg.Event {
		case ws.EventOrderReady:
			assert.Equal(t, map[string]interface{}{"orderId": checkout.OrderID}, msg.Data)
			events["order_ready"] = true
		case ws.EventStageUpdate:
			data, ok := msg.Data.(map[string]interface{})
			require.True(t, ok)
			events["stage:"+data["stage"].(string)] = true
		}
	}

	assert.True(t, events["order_ready"])
	assert.True(t, events["stage:KITCHEN"])
	assert.True(t, events["stage:READY"])
}
