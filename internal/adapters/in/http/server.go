// Package http exposes the ordering API: the public customer surface (menu,
// cart, checkout) and the authenticated staff surface (stage queues, stage
// transitions, login, websocket notifications).
package http

import (
	"log/slog"
	"net/http"

	"pizzeria/internal/adapters/in/ws"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/auth"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// sessionHeader identifies the customer session a cart belongs to. The
// frontend generates an opaque id once and sends it on every cart call.
const sessionHeader = "X-Session-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addCartItemHandler    commands.AddCartItemCommandHandler
	removeCartItemHandler commands.RemoveCartItemCommandHandler
	updateQuantityHandler commands.UpdateCartItemQuantityCommandHandler
	clearCartHandler      commands.ClearCartCommandHandler
	submitOrderHandler    commands.SubmitOrderCommandHandler
	markReadyHandler      commands.MarkOrderReadyCommandHandler
	completeOrderHandler  commands.CompleteOrderCommandHandler

	// Query handlers
	getCatalogHandler     queries.GetCatalogQueryHandler
	getCartHandler        queries.GetCartQueryHandler
	getStageOrdersHandler queries.GetStageOrdersQueryHandler

	users     *auth.UserStore
	jwtSecret string
	hub       *ws.Hub
	upgrader  websocket.Upgrader
	logger    *slog.Logger
}

// NewServer creates the HTTP server with all required handlers.
func NewServer(
	addCartItemHandler commands.AddCartItemCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	updateQuantityHandler commands.UpdateCartItemQuantityCommandHandler,
	clearCartHandler commands.ClearCartCommandHandler,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	markReadyHandler commands.MarkOrderReadyCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getCatalogHandler queries.GetCatalogQueryHandler,
	getCartHandler queries.GetCartQueryHandler,
	getStageOrdersHandler queries.GetStageOrdersQueryHandler,
	users *auth.UserStore,
	jwtSecret string,
	hub *ws.Hub,
	logger *slog.Logger,
) *Server {
	return &Server{
		addCartItemHandler:    addCartItemHandler,
		removeCartItemHandler: removeCartItemHandler,
		updateQuantityHandler: updateQuantityHandler,
		clearCartHandler:      clearCartHandler,
		submitOrderHandler:    submitOrderHandler,
		markReadyHandler:      markReadyHandler,
		completeOrderHandler:  completeOrderHandler,
		getCatalogHandler:     getCatalogHandler,
		getCartHandler:        getCartHandler,
		getStageOrdersHandler: getStageOrdersHandler,
		users:                 users,
		jwtSecret:             jwtSecret,
		hub:                   hub,
		upgrader:              websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		logger:                logger,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/menu", s.GetMenu)

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PATCH("/cart/items/:productId", s.UpdateCartItem)
	api.DELETE("/cart/items/:productId", s.RemoveCartItem)
	api.DELETE("/cart", s.ClearCart)
	api.POST("/checkout", s.Checkout)

	api.POST("/auth/login", s.Login)

	staff := api.Group("/staff", StaffAuth(s.jwtSecret))
	staff.GET("/orders/:stage", s.GetStageOrders)
	staff.POST("/orders/:id/ready", s.MarkOrderReady)
	staff.POST("/orders/:id/complete", s.CompleteOrder)
	staff.GET("/ws", s.StaffSocket)
}

// GetMenu handles GET /api/v1/menu - retrieves the product catalog.
func (s *Server) GetMenu(ctx echo.Context) error {
	query := queries.NewGetCatalogQuery()

	menu, err := s.getCatalogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Product, len(menu))
	for i, p := range menu {
		response[i] = Product{
			ID:          p.ID.String(),
			Slug:        p.Slug,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			ImageRef:    p.ImageRef,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCart handles GET /api/v1/cart - retrieves the session's cart.
func (s *Server) GetCart(ctx echo.Context) error {
	sessionID := ctx.Request().Header.Get(sessionHeader)

	query, err := queries.NewGetCartQuery(sessionID)
	if err != nil {
		return badRequest(ctx, "missing "+sessionHeader+" header")
	}

	resp, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartContract(resp))
}

// AddCartItem handles POST /api/v1/cart/items - adds a product to the cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	sessionID := ctx.Request().Header.Get(sessionHeader)

	var req AddCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewAddCartItemCommand(sessionID, productID, req.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondWithCart(ctx, sessionID)
}

// UpdateCartItem handles PATCH /api/v1/cart/items/:productId - sets a line's quantity.
func (s *Server) UpdateCartItem(ctx echo.Context) error {
	sessionID := ctx.Request().Header.Get(sessionHeader)

	var req UpdateCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewUpdateCartItemQuantityCommand(sessionID, productID, req.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.updateQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondWithCart(ctx, sessionID)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:productId - drops a line.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	sessionID := ctx.Request().Header.Get(sessionHeader)

	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewRemoveCartItemCommand(sessionID, productID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondWithCart(ctx, sessionID)
}

// ClearCart handles DELETE /api/v1/cart - empties the session's cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	sessionID := ctx.Request().Header.Get(sessionHeader)

	cmd, err := commands.NewClearCartCommand(sessionID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/checkout - submits the cart as an order.
func (s *Server) Checkout(ctx echo.Context) error {
	sessionID := ctx.Request().Header.Get(sessionHeader)

	var req CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	mode, err := order.DeliveryModeFromString(req.DeliveryMode)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var address *order.Address
	if req.Address != nil {
		a, addrErr := order.NewAddress(
			req.Address.Street,
			req.Address.Number,
			req.Address.Neighborhood,
			req.Address.Complement,
		)
		if addrErr != nil {
			return badRequest(ctx, addrErr.Error())
		}
		address = &a
	}

	method, err := services.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var card *services.CardDetails
	if req.Card != nil {
		card = &services.CardDetails{
			Number:     req.Card.Number,
			HolderName: req.Card.HolderName,
			Expiry:     req.Card.Expiry,
			CVV:        req.Card.CVV,
		}
	}

	cmd, err := commands.NewSubmitOrderCommand(sessionID, mode, req.TableNumber, address, method, card)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	submitted, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	s.hub.BroadcastStageUpdate(order.StageKitchen.String())

	return ctx.JSON(http.StatusCreated, CheckoutResponse{
		OrderID:   submitted.ID().String(),
		Total:     submitted.Total().String(),
		Stage:     submitted.Stage().String(),
		CreatedAt: submitted.CreatedAt(),
	})
}

// Login handles POST /api/v1/auth/login - authenticates a staff member.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	user, err := s.users.Authenticate(req.Username, req.Password)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "invalid credentials",
		})
	}

	token, err := auth.GenerateToken(s.jwtSecret, user.Username, user.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
	})
}

// GetStageOrders handles GET /api/v1/staff/orders/:stage - lists one stage's
// queue. Staff panels poll this endpoint; each response is a fresh snapshot.
func (s *Server) GetStageOrders(ctx echo.Context) error {
	stage, err := order.StageFromString(ctx.Param("stage"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetStageOrdersQuery(stage)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getStageOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderContract(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkOrderReady handles POST /api/v1/staff/orders/:id/ready - moves an
// order from the kitchen queue to the ready queue.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewMarkOrderReadyCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.markReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	// Both queues changed: the kitchen lost the order, ready gained it.
	s.hub.BroadcastOrderReady(id.String())
	s.hub.BroadcastStageUpdate(order.StageKitchen.String())
	s.hub.BroadcastStageUpdate(order.StageReady.String())

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/staff/orders/:id/complete - hands the
// order over and removes it from the pipeline.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.hub.BroadcastStageUpdate(order.StageReady.String())

	return ctx.NoContent(http.StatusNoContent)
}

// StaffSocket handles GET /api/v1/staff/ws - upgrades to a websocket that
// receives stage change notifications.
func (s *Server) StaffSocket(ctx echo.Context) error {
	claims := StaffClaims(ctx)

	conn, err := s.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}

	s.hub.Register(conn, claims.Role)
	s.logger.Info("staff panel connected", "user", claims.Username, "role", claims.Role)

	// Drain reads until the panel disconnects; the hub only pushes.
	go func() {
		defer s.hub.Unregister(conn)
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	return nil
}

func (s *Server) respondWithCart(ctx echo.Context, sessionID string) error {
	query, err := queries.NewGetCartQuery(sessionID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartContract(resp))
}

func toCartContract(resp queries.GetCartQueryResponse) Cart {
	items := make([]CartItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = CartItem{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
			ImageRef:  item.ImageRef,
		}
	}

	return Cart{
		Items:     items,
		ItemCount: resp.ItemCount,
		Total:     resp.Total,
	}
}

func toOrderContract(resp queries.GetStageOrdersQueryResponse) Order {
	items := make([]OrderItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = OrderItem{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			ImageRef:  item.ImageRef,
		}
	}

	var address *Address
	if resp.Address != nil {
		address = &Address{
			Street:       resp.Address.Street,
			Number:       resp.Address.Number,
			Neighborhood: resp.Address.Neighborhood,
			Complement:   resp.Address.Complement,
		}
	}

	return Order{
		ID:           resp.ID.String(),
		Items:        items,
		Total:        resp.Total,
		DeliveryMode: resp.DeliveryMode,
		TableNumber:  resp.TableNumber,
		Address:      address,
		CreatedAt:    resp.CreatedAt,
		ReadyAt:      resp.ReadyAt,
		Stage:        resp.Stage,
	}
}
