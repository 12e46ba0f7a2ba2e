package http

import (
	"context"
	"net/http"

	"orderflow/internal/core/application"
	"orderflow/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Server exposes the order coordinator over HTTP.
type Server struct {
	coordinator *application.OrderCoordinator
	metrics     *metrics.Metrics
}

// NewServer creates an HTTP server over the coordinator.
func NewServer(coordinator *application.OrderCoordinator, m *metrics.Metrics) *Server {
	return &Server{
		coordinator: coordinator,
		metrics:     m,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))

	api := e.Group("/api/v1")
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/status", s.GetOrderStatus)
	api.GET("/orders/:id/delivery-estimate", s.GetDeliveryEstimate)
	api.POST("/orders/:id/process", s.ProcessOrder)
	api.POST("/orders/:id/ship", s.ShipOrder)
	api.POST("/orders/:id/deliver", s.DeliverOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/customers/:customerId/orders", s.GetCustomerOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	components, err := request.components()
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order items: " + err.Error(),
		})
	}

	aggregate, err := s.coordinator.PlaceOrderAs(
		ctx.Request().Context(), request.CustomerID, components, request.orderClass())
	if err != nil {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Order placement failed: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(aggregate))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	aggregate, ok := s.coordinator.GetOrderDetails(ctx.Request().Context(), ctx.Param("id"))
	if !ok {
		return orderNotFound(ctx)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(aggregate))
}

// GetOrderStatus handles GET /api/v1/orders/:id/status.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	id := ctx.Param("id")
	status, ok := s.coordinator.GetOrderStatus(ctx.Request().Context(), id)
	if !ok {
		return orderNotFound(ctx)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{OrderID: id, Status: status.String()})
}

// GetDeliveryEstimate handles GET /api/v1/orders/:id/delivery-estimate.
func (s *Server) GetDeliveryEstimate(ctx echo.Context) error {
	id := ctx.Param("id")
	estimate, ok := s.coordinator.GetEstimatedDelivery(ctx.Request().Context(), id)
	if !ok {
		return orderNotFound(ctx)
	}

	return ctx.JSON(http.StatusOK, EstimateResponse{OrderID: id, EstimatedDelivery: estimate})
}

// GetCustomerOrders handles GET /api/v1/customers/:customerId/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	orders := s.coordinator.GetCustomerOrders(ctx.Request().Context(), ctx.Param("customerId"))

	response := make([]OrderResponse, len(orders))
	for i, aggregate := range orders {
		response[i] = toOrderResponse(aggregate)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ProcessOrder handles POST /api/v1/orders/:id/process.
func (s *Server) ProcessOrder(ctx echo.Context) error {
	return s.transition(ctx, s.coordinator.ProcessOrder)
}

// ShipOrder handles POST /api/v1/orders/:id/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	return s.transition(ctx, s.coordinator.ShipOrder)
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	return s.transition(ctx, s.coordinator.DeliverOrder)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.transition(ctx, s.coordinator.CancelOrder)
}

// transition runs one lifecycle event: 404 when the order is unknown, 409 when
// its status forbids the event, 200 with the resulting status otherwise.
func (s *Server) transition(ctx echo.Context, event func(context.Context, string) bool) error {
	id := ctx.Param("id")
	reqCtx := ctx.Request().Context()

	if _, ok := s.coordinator.GetOrderDetails(reqCtx, id); !ok {
		return orderNotFound(ctx)
	}

	if !event(reqCtx, id) {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Order status forbids this operation",
		})
	}

	status, _ := s.coordinator.GetOrderStatus(reqCtx, id)
	return ctx.JSON(http.StatusOK, StatusResponse{OrderID: id, Status: status.String()})
}

func orderNotFound(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: "Order not found",
	})
}
