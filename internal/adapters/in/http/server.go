// Package http exposes the order workflow over a JSON REST API.
//
// Customer routes live under /api/orders and identify orders by their
// business code; preparer routes live under /api/preparer/orders. Workflow
// failures map onto status codes through the shared error taxonomy: unknown
// codes give 404, status preconditions and lost write races give 409, and
// malformed input gives 400. A 409 response means the client's view is stale
// or the preparation slot is busy; rereading the order is the recovery path.
package http

import (
	"errors"
	"net/http"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	takeOrderHandler         commands.TakeOrderCommandHandler
	takeNextOrderHandler     commands.TakeNextOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderByCodeHandler   queries.GetOrderByCodeQueryHandler
	getAllOrdersHandler     queries.GetAllOrdersQueryHandler
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	takeOrderHandler commands.TakeOrderCommandHandler,
	takeNextOrderHandler commands.TakeNextOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderByCodeHandler queries.GetOrderByCodeQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderHandler:       updateOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		takeOrderHandler:         takeOrderHandler,
		takeNextOrderHandler:     takeNextOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrderByCodeHandler:    getOrderByCodeHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getPendingOrdersHandler:  getPendingOrdersHandler,
	}
}

// RegisterRoutes attaches all order workflow routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/orders", s.CreateOrder)
	e.GET("/api/orders/:code", s.GetOrder)
	e.PUT("/api/orders/:code", s.UpdateOrder)
	e.DELETE("/api/orders/:code", s.CancelOrder)

	e.GET("/api/preparer/orders", s.GetAllOrders)
	e.GET("/api/preparer/orders/pending", s.GetPendingOrders)
	e.POST("/api/preparer/orders/next/take", s.TakeNextOrder)
	e.POST("/api/preparer/orders/:code/take", s.TakeOrder)
	e.PATCH("/api/preparer/orders/:code/status", s.UpdateOrderStatus)
}

// CreateOrder handles POST /api/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items, err := toOrderItems(request.Items)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		request.CustomerName,
		request.Phone,
		request.DeliveryAddress,
		items,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fromAggregate(created))
}

// GetOrder handles GET /api/orders/:code - the customer's tracking view.
func (s *Server) GetOrder(ctx echo.Context) error {
	code, err := kernel.OrderCodeFromString(ctx.Param("code"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetOrderByCodeQuery(code)
	if err != nil {
		return s.respondError(ctx, err)
	}

	snapshot, err := s.getOrderByCodeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if snapshot == nil {
		return notFound(ctx)
	}

	return ctx.JSON(http.StatusOK, fromProjection(*snapshot))
}

// UpdateOrder handles PUT /api/orders/:code - a customer's partial edit of a
// pending order. Absent body fields are left untouched.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	code, err := kernel.OrderCodeFromString(ctx.Param("code"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request UpdateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var items []order.Item
	if request.Items != nil {
		items, err = toOrderItems(request.Items)
		if err != nil {
			return s.respondError(ctx, err)
		}
	}

	cmd, err := commands.NewUpdateOrderCommand(
		code,
		request.CustomerName,
		request.Phone,
		request.DeliveryAddress,
		items,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(updated))
}

// CancelOrder handles DELETE /api/orders/:code - a customer withdrawing a
// pending order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	code, err := kernel.OrderCodeFromString(ctx.Param("code"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(code)
	if err != nil {
		return s.respondError(ctx, err)
	}

	canceled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(canceled))
}

// GetAllOrders handles GET /api/preparer/orders - the preparer's full board.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, projection := range orders {
		response = append(response, fromProjection(projection))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingOrders handles GET /api/preparer/orders/pending - the queue of
// orders waiting for the preparer, oldest first.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, projection := range orders {
		response = append(response, fromProjection(projection))
	}

	return ctx.JSON(http.StatusOK, response)
}

// TakeOrder handles POST /api/preparer/orders/:code/take - the preparer
// claiming a specific pending order.
func (s *Server) TakeOrder(ctx echo.Context) error {
	code, err := kernel.OrderCodeFromString(ctx.Param("code"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewTakeOrderCommand(code)
	if err != nil {
		return s.respondError(ctx, err)
	}

	taken, err := s.takeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(taken))
}

// TakeNextOrder handles POST /api/preparer/orders/next/take - the preparer
// claiming the oldest pending order.
func (s *Server) TakeNextOrder(ctx echo.Context) error {
	taken, err := s.takeNextOrderHandler.Handle(ctx.Request().Context(), commands.NewTakeNextOrderCommand())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(taken))
}

// UpdateOrderStatus handles PATCH /api/preparer/orders/:code/status - a
// general status advance such as READY or COMPLETED.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	code, err := kernel.OrderCodeFromString(ctx.Param("code"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newStatus, err := order.StatusFromString(request.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(code, newStatus)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(updated))
}

// respondError maps workflow errors onto HTTP status codes.
func (s *Server) respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx)
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Order was modified concurrently, reload and retry",
		})
	case errors.Is(err, errs.ErrModificationNotAllowed):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, Error{
		Code:    http.StatusNotFound,
		Message: "Order not found",
	})
}
