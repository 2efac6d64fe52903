package http

import (
	"errors"
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/generated/servers"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler

	logger *zap.Logger

	// exposeErrors puts the real error message into 500 responses.
	// Development only; production answers with a generic message.
	exposeErrors bool
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	logger *zap.Logger,
	exposeErrors bool,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		updateOrderHandler: updateOrderHandler,
		cancelOrderHandler: cancelOrderHandler,
		deleteOrderHandler: deleteOrderHandler,
		getOrderHandler:    getOrderHandler,
		listOrdersHandler:  listOrdersHandler,
		logger:             logger,
		exposeErrors:       exposeErrors,
	}
}

// ListOrders handles GET /api/v1/orders - retrieves one page of orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var status *string
	if params.Status != nil {
		value := string(*params.Status)
		status = &value
	}

	var sortBy, sortOrder string
	if params.SortBy != nil {
		sortBy = string(*params.SortBy)
	}
	if params.SortOrder != nil {
		sortOrder = string(*params.SortOrder)
	}

	var page, limit int
	if params.Page != nil {
		page = *params.Page
	}
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListOrdersQuery(status, sortBy, sortOrder, page, limit)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders := make([]servers.Order, len(result.Orders))
	for i, projection := range result.Orders {
		orders[i] = orderFromProjection(projection)
	}

	return ctx.JSON(http.StatusOK, servers.OrdersPageEnvelope{
		Success: true,
		Message: "Orders retrieved successfully",
		Data: &servers.OrdersPage{
			Orders:     orders,
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request servers.CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return s.writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(
		stringValue(request.Number),
		request.CustomerName,
		request.Phone,
		request.Product,
		request.Quantity,
		stringValue(request.Notes),
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, "Order created successfully", created.Number())
}

// GetOrder handles GET /api/v1/orders/{number} - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context, number string) error {
	orderNumber, err := kernel.NewOrderNumber(number)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, "Order retrieved successfully", orderNumber)
}

// UpdateOrder handles PUT /api/v1/orders/{number} - updates an order.
func (s *Server) UpdateOrder(ctx echo.Context, number string) error {
	return s.updateOrder(ctx, number)
}

// PatchOrder handles PATCH /api/v1/orders/{number}. Partial updates share
// the PUT semantics: every field is optional on both verbs.
func (s *Server) PatchOrder(ctx echo.Context, number string) error {
	return s.updateOrder(ctx, number)
}

func (s *Server) updateOrder(ctx echo.Context, number string) error {
	orderNumber, err := kernel.NewOrderNumber(number)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var request servers.UpdateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return s.writeBadRequest(ctx, "Invalid request body")
	}

	var rawStatus *string
	if request.Status != nil {
		value := string(*request.Status)
		rawStatus = &value
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderNumber,
		order.Patch{
			CustomerName: request.CustomerName,
			Phone:        request.Phone,
			Product:      request.Product,
			Quantity:     request.Quantity,
			Notes:        request.Notes,
		},
		rawStatus,
		stringValue(request.CancellationReason),
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if _, err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, "Order updated successfully", orderNumber)
}

// DeleteOrder handles DELETE /api/v1/orders/{number} - soft-deletes an order.
func (s *Server) DeleteOrder(ctx echo.Context, number string) error {
	orderNumber, err := kernel.NewOrderNumber(number)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderNumber)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Envelope{
		Success: true,
		Message: "Order deleted successfully",
	})
}

// CancelOrder handles POST /api/v1/orders/{number}/cancel - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context, number string) error {
	orderNumber, err := kernel.NewOrderNumber(number)
	if err != nil {
		return s.writeError(ctx, err)
	}

	// The body is optional: an absent or empty body means the default reason.
	var request servers.CancelOrderRequest
	if ctx.Request().ContentLength > 0 {
		if err = ctx.Bind(&request); err != nil {
			return s.writeBadRequest(ctx, "Invalid request body")
		}
	}

	cmd, err := commands.NewCancelOrderCommand(orderNumber, stringValue(request.Reason))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if _, err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, "Order cancelled successfully", orderNumber)
}

// respondWithOrder answers a mutation or read with the current projection of
// the order. Reading back after a write keeps the response timestamps in
// sync with what the database actually recorded.
func (s *Server) respondWithOrder(ctx echo.Context, status int, message string, number kernel.OrderNumber) error {
	query, err := queries.NewGetOrderQuery(number)
	if err != nil {
		return s.writeError(ctx, err)
	}

	projection, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	payload := orderFromProjection(projection)
	return ctx.JSON(status, servers.OrderEnvelope{
		Success: true,
		Message: message,
		Data:    &payload,
	})
}

// writeError translates use-case failures into the HTTP error envelope.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		fields := make([]servers.FieldError, len(validationErr.Fields))
		for i, field := range validationErr.Fields {
			fields[i] = servers.FieldError{Field: field.Field, Message: field.Message}
		}
		return ctx.JSON(http.StatusBadRequest, servers.ValidationEnvelope{
			Success: false,
			Message: "Validation failed",
			Errors:  &fields,
		})
	}

	switch {
	case errors.Is(err, errs.ErrEmptyUpdate),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrAlreadyCancelled),
		errors.Is(err, errs.ErrTerminalState):
		return s.writeBadRequest(ctx, err.Error())

	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Envelope{
			Success: false,
			Message: err.Error(),
		})

	// Retryable storage races: the caller's data was valid, the state moved.
	case errors.Is(err, errs.ErrDuplicateNumber),
		errors.Is(err, errs.ErrConcurrentModification):
		return ctx.JSON(http.StatusConflict, servers.Envelope{
			Success: false,
			Message: err.Error(),
		})
	}

	s.logger.Error("request failed",
		zap.String("path", ctx.Path()),
		zap.Error(err),
	)
	message := "Internal server error"
	if s.exposeErrors {
		message = err.Error()
	}
	return ctx.JSON(http.StatusInternalServerError, servers.Envelope{
		Success: false,
		Message: message,
	})
}

func (s *Server) writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Envelope{
		Success: false,
		Message: message,
	})
}

// orderFromProjection maps the read-side projection to the wire shape.
func orderFromProjection(projection queries.OrderResponse) servers.Order {
	payload := servers.Order{
		Number:             projection.Number,
		CustomerName:       projection.CustomerName,
		Phone:              projection.Phone,
		Product:            projection.Product,
		Quantity:           projection.Quantity,
		Status:             servers.OrderStatus(projection.Status),
		CancelledAt:        projection.CancelledAt,
		CancellationReason: projection.CancellationReason,
		CreatedAt:          projection.CreatedAt,
		UpdatedAt:          projection.UpdatedAt,
	}
	if projection.Notes != "" {
		notes := projection.Notes
		payload.Notes = &notes
	}
	return payload
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
