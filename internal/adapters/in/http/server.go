// Package http exposes the ordering core over a REST API.
// It binds requests into commands and queries, maps domain errors to HTTP
// status codes, and guards order routes with the session cookie.
package http

import (
	"errors"
	"fmt"
	"net/http"

	"restaurant/internal/adapters/in/http/session"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	RestaurantID string                   `json:"restaurantId"`
	CustomerName string                   `json:"customerName"`
	Items        []CreateOrderItemRequest `json:"items"`
}

// CreateOrderItemRequest is one dish line of a create-order request.
type CreateOrderItemRequest struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}

// UpdateStatusRequest is the body of the status update endpoints.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// SessionResponse echoes the token that was also set as a cookie.
type SessionResponse struct {
	Token string `json:"token"`
}

// ItemResponse is the JSON form of one order item.
type ItemResponse struct {
	ID       string `json:"id"`
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
}

// OrderResponse is the JSON form of an order with its items.
type OrderResponse struct {
	ID           string         `json:"id"`
	RestaurantID string         `json:"restaurantId"`
	CustomerName string         `json:"customerName"`
	Status       string         `json:"status"`
	Items        []ItemResponse `json:"items"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	updateOrderStatus       commands.UpdateOrderStatusCommandHandler
	updateItemStatusHandler commands.UpdateItemStatusCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler

	// Query handlers
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler
	getOrderDetailHandler      queries.GetOrderDetailQueryHandler

	sessions *session.Manager
}

// NewServer creates an HTTP server with the required handlers and the
// session manager guarding the order routes.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatus commands.UpdateOrderStatusCommandHandler,
	updateItemStatusHandler commands.UpdateItemStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler,
	getOrderDetailHandler queries.GetOrderDetailQueryHandler,
	sessions *session.Manager,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderStatus:          updateOrderStatus,
		updateItemStatusHandler:    updateItemStatusHandler,
		cancelOrderHandler:         cancelOrderHandler,
		getRestaurantOrdersHandler: getRestaurantOrdersHandler,
		getOrderDetailHandler:      getOrderDetailHandler,
		sessions:                   sessions,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance. The session
// endpoint is public; every order route requires a valid session cookie.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/auth/session", s.CreateSession)

	protected := api.Group("", s.SessionAuth)
	protected.POST("/orders", s.CreateOrder)
	protected.GET("/orders/:orderId", s.GetOrderDetail)
	protected.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	protected.PATCH("/orders/:orderId/items/:itemId/status", s.UpdateItemStatus)
	protected.DELETE("/orders/:orderId", s.CancelOrder)
	protected.DELETE("/orders/:orderId/items/:itemId", s.CancelItem)
	protected.GET("/restaurants/:restaurantId/orders", s.GetRestaurantOrders)
}

// SessionAuth verifies the session cookie and stores its claims on the
// request context under "sessionClaims".
func (s *Server) SessionAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(session.CookieName)
		if err != nil {
			return s.renderError(ctx, errs.NewUnauthorizedError("missing session cookie"))
		}

		claims, err := s.sessions.VerifyToken(cookie.Value)
		if err != nil {
			return s.renderError(ctx, err)
		}

		ctx.Set("sessionClaims", claims)
		return next(ctx)
	}
}

// CreateSession handles POST /api/v1/auth/session - issues a session cookie.
// The request body, an arbitrary JSON object, is embedded into the token as
// claims.
func (s *Server) CreateSession(ctx echo.Context) error {
	claims := map[string]any{}
	if err := ctx.Bind(&claims); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	token, err := s.sessions.IssueSessionCookie(ctx.Response(), claims)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SessionResponse{Token: token})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	restaurantID, err := parseUUID("restaurantId", req.RestaurantID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	items := make([]commands.NewOrderItem, 0, len(req.Items))
	for i, line := range req.Items {
		dishID, dishErr := parseUUID(fmt.Sprintf("items[%d].dishId", i), line.DishID)
		if dishErr != nil {
			return s.renderError(ctx, dishErr)
		}
		items = append(items, commands.NewOrderItem{DishID: dishID, Quantity: line.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), restaurantID, req.CustomerName, items)
	if err != nil {
		return s.renderError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetRestaurantOrders handles GET /api/v1/restaurants/:restaurantId/orders.
func (s *Server) GetRestaurantOrders(ctx echo.Context) error {
	restaurantID, err := parseUUID("restaurantId", ctx.Param("restaurantId"))
	if err != nil {
		return s.renderError(ctx, err)
	}

	query, err := queries.NewGetRestaurantOrdersQuery(restaurantID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	orders, err := s.getRestaurantOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderDetail handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrderDetail(ctx echo.Context) error {
	orderID, err := parseUUID("orderId", ctx.Param("orderId"))
	if err != nil {
		return s.renderError(ctx, err)
	}

	query, err := queries.NewGetOrderDetailQuery(orderID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	detail, err := s.getOrderDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(detail))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := parseUUID("orderId", ctx.Param("orderId"))
	if err != nil {
		return s.renderError(ctx, err)
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.ParseOrderStatus(req.Status)
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return s.renderError(ctx, err)
	}

	updated, err := s.updateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// UpdateItemStatus handles PATCH /api/v1/orders/:orderId/items/:itemId/status.
func (s *Server) UpdateItemStatus(ctx echo.Context) error {
	orderID, err := parseUUID("orderId", ctx.Param("orderId"))
	if err != nil {
		return s.renderError(ctx, err)
	}

	itemID, err := parseUUID("itemId", ctx.Param("itemId"))
	if err != nil {
		return s.renderError(ctx, err)
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.ParseItemStatus(req.Status)
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewUpdateItemStatusCommand(orderID, itemID, status)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err = s.updateItemStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles DELETE /api/v1/orders/:orderId - cancels the whole order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := parseUUID("orderId", ctx.Param("orderId"))
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, nil)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelItem handles DELETE /api/v1/orders/:orderId/items/:itemId - cancels
// a single item of the order.
func (s *Server) CancelItem(ctx echo.Context) error {
	orderID, err := parseUUID("orderId", ctx.Param("orderId"))
	if err != nil {
		return s.renderError(ctx, err)
	}

	itemID, err := parseUUID("itemId", ctx.Param("itemId"))
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, &itemID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// renderError maps domain errors onto HTTP status codes: validation errors
// to 400, missing objects to 404, failed authentication to 401, and
// application errors to whatever code they carry (500 by default).
func (s *Server) renderError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	var appErr *errs.ApplicationError
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.As(err, &appErr):
		if appErr.Code != 0 {
			code = appErr.Code
		}
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

// parseUUID converts a path or body parameter into a kernel UUID, reporting
// malformed values as invalid input rather than internal failures.
func parseUUID(paramName string, value string) (kernel.UUID, error) {
	if value == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(paramName)
	}

	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName+" is invalid", err)
	}

	return id, nil
}

// toOrderResponse converts an order aggregate to its JSON representation.
func toOrderResponse(o *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemResponse{
			ID:       item.ID().String(),
			DishID:   item.DishID().String(),
			Quantity: item.Quantity(),
			Status:   item.Status().String(),
		})
	}

	return OrderResponse{
		ID:           o.ID().String(),
		RestaurantID: o.RestaurantID().String(),
		CustomerName: o.CustomerName(),
		Status:       o.Status().String(),
		Items:        items,
	}
}
