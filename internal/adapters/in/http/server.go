// Package http exposes the application over REST plus server-sent event
// feeds. Request identity arrives in gateway-stamped headers; handlers
// translate HTTP payloads into commands and queries and map domain errors to
// status codes.
package http

import (
	"net/http"

	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/notifications"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler       commands.PlaceOrderCommandHandler
	acceptOrderHandler      commands.AcceptOrderCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	registerAccountHandler  commands.RegisterAccountCommandHandler
	updateProfileHandler    commands.UpdateProfileCommandHandler

	// Query handlers
	getPendingOrdersHandler     queries.GetPendingOrdersQueryHandler
	getCustomerOrdersHandler    queries.GetCustomerOrdersQueryHandler
	getCourierDeliveriesHandler queries.GetCourierDeliveriesQueryHandler
	getAccountHandler           queries.GetAccountQueryHandler

	hub *notifications.Hub
}

// NewServer creates a new HTTP server with the required command and query
// handlers plus the notification hub backing the live feeds.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	registerAccountHandler commands.RegisterAccountCommandHandler,
	updateProfileHandler commands.UpdateProfileCommandHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getCourierDeliveriesHandler queries.GetCourierDeliveriesQueryHandler,
	getAccountHandler queries.GetAccountQueryHandler,
	hub *notifications.Hub,
) *Server {
	return &Server{
		placeOrderHandler:           placeOrderHandler,
		acceptOrderHandler:          acceptOrderHandler,
		completeDeliveryHandler:     completeDeliveryHandler,
		registerAccountHandler:      registerAccountHandler,
		updateProfileHandler:        updateProfileHandler,
		getPendingOrdersHandler:     getPendingOrdersHandler,
		getCustomerOrdersHandler:    getCustomerOrdersHandler,
		getCourierDeliveriesHandler: getCourierDeliveriesHandler,
		getAccountHandler:           getAccountHandler,
		hub:                         hub,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/session", s.CreateSession)
	api.GET("/profile", s.GetProfile)
	api.PUT("/profile", s.UpdateProfile)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/pending", s.GetPendingOrders)
	api.GET("/orders/mine", s.GetMyOrders)
	api.GET("/orders/deliveries", s.GetMyDeliveries)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/deliver", s.DeliverOrder)

	api.GET("/feeds/pending", s.StreamPendingOrders)
	api.GET("/feeds/orders", s.StreamMyOrders)
	api.GET("/feeds/deliveries", s.StreamMyDeliveries)
}

type itemRequest struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Qty   int    `json:"qty"`
}

type placeOrderRequest struct {
	Vendor           string        `json:"vendor"`
	Items            []itemRequest `json:"items"`
	DeliveryLocation string        `json:"deliveryLocation"`
}

type profileRequest struct {
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

// CreateSession handles POST /api/v1/session - registers the caller on first
// sign-in and returns their account either way.
func (s *Server) CreateSession(ctx echo.Context) error {
	caller, ok := callerIdentity(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	cmd, err := commands.NewRegisterAccountCommand(caller.uid, caller.email, caller.name, "")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	acc, err := s.registerAccountHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queries.AccountResponse{
		UID:         acc.UID().String(),
		Email:       acc.Email(),
		DisplayName: acc.DisplayName(),
		PhotoURL:    acc.PhotoURL(),
		Earnings:    acc.Earnings(),
		CreatedAt:   acc.CreatedAt(),
	})
}

// GetProfile handles GET /api/v1/profile - returns the caller's account with
// live earnings.
func (s *Server) GetProfile(ctx echo.Context) error {
	caller, ok := callerIdentity(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetAccountQuery(caller.uid)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	acc, err := s.getAccountHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, acc)
}

// UpdateProfile handles PUT /api/v1/profile - edits the caller's own profile.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	caller, ok := callerIdentity(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req profileRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProfileCommand(caller.uid, req.DisplayName, req.PhotoURL)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	acc, err := s.updateProfileHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queries.AccountResponse{
		UID:         acc.UID().String(),
		Email:       acc.Email(),
		DisplayName: acc.DisplayName(),
		PhotoURL:    acc.PhotoURL(),
		Earnings:    acc.Earnings(),
		CreatedAt:   acc.CreatedAt(),
	})
}

// PlaceOrder handles POST /api/v1/orders - places a new order for the caller.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	caller, ok := callerIdentity(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req placeOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, it := range req.Items {
		item, err := order.NewItem(it.Name, it.Price, it.Qty)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		items = append(items, item)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(),
		caller.uid,
		caller.displayName(),
		req.Vendor,
		items,
		req.DeliveryLocation,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderJSON(placed))
}

// GetPendingOrders handles GET /api/v1/orders/pending - the available-orders
// feed for couriers.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	caller, ok := callerIdentity(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetPendingOrdersQuery(caller.uid)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetMyOrders handles GET /api/v1/orders/mine - the caller's own orders.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	caller, ok := callerIdentity(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetCustomerOrdersQuery(caller.uid)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetMyDeliveries handles GET /api/v1/orders/deliveries - the caller's
// active deliveries.
func (s *Server) GetMyDeliveries(ctx echo.Context) error {
	caller, ok := callerIdentity(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetCourierDeliveriesQuery(caller.uid)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getCourierDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// AcceptOrder handles POST /api/v1/orders/:id/accept - the caller claims a
// pending order as its courier. Losing the race against another courier
// yields a 409.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	caller, ok := callerIdentity(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	// The name bound to the order is the courier's profile name, so a
	// profile edit before acceptance is reflected on the order.
	accountQuery, err := queries.NewGetAccountQuery(caller.uid)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	acc, err := s.getAccountHandler.Handle(ctx.Request().Context(), accountQuery)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, caller.uid, acc.DisplayName)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	accepted, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderJSON(accepted))
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver - the assigned courier
// marks the order delivered and earns the delivery fee.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	caller, ok := callerIdentity(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, caller.uid)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	delivered, err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderJSON(delivered))
}

// orderJSON shapes a freshly mutated aggregate like the read-model responses,
// so command and query endpoints return the same order document.
func orderJSON(o *order.Order) queries.OrderResponse {
	items := make([]queries.ItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, queries.ItemResponse{
			Name:  item.Name(),
			Price: item.Price(),
			Qty:   item.Qty(),
		})
	}

	resp := queries.OrderResponse{
		ID:               o.ID().String(),
		CustomerID:       o.Customer().String(),
		CustomerName:     o.CustomerName(),
		Vendor:           o.Vendor(),
		Items:            items,
		DeliveryLocation: o.DeliveryLocation(),
		Subtotal:         o.Subtotal(),
		DeliveryFee:      o.DeliveryFee(),
		TotalCost:        o.TotalCost(),
		Status:           o.Status().String(),
		CourierName:      o.CourierName(),
		CreatedAt:        o.CreatedAt(),
		DeliveredAt:      o.DeliveredAt(),
	}

	if courier := o.Courier(); courier != nil {
		resp.CourierID = courier.String()
	}

	return resp
}
