package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/common"
	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/models"
	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/services"
)

// OrderHandlers handles HTTP requests for orders
type OrderHandlers struct {
	orderService services.OrderServiceInterface
}

// NewOrderHandlers creates a new order handlers instance
func NewOrderHandlers(orderService services.OrderServiceInterface) *OrderHandlers {
	return &OrderHandlers{
		orderService: orderService,
	}
}

func parseOrderID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return uuid.Nil, errors.New("invalid order id")
	}
	return id, nil
}

// SaveOrder handles POST /save-order
func (h *OrderHandlers) SaveOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.SaveOrderRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	orderID, err := h.orderService.SaveOrder(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrNoLineItems) {
			return common.SendClientError(c, err.Error())
		}
		return common.SendServerError(c, err.Error())
	}

	return c.JSON(http.StatusOK, models.SaveOrderResponse{
		Success: true,
		Message: "Order saved successfully",
		OrderID: orderID.String(),
	})
}

// GetOrders handles GET /get-orders
func (h *OrderHandlers) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.ListOrders(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to fetch orders")
	}
	if orders == nil {
		orders = []*models.OrderSummary{}
	}
	return c.JSON(http.StatusOK, orders)
}

// GetOrderItems handles GET /get-order/:orderId
func (h *OrderHandlers) GetOrderItems(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := parseOrderID(c)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	items, err := h.orderService.GetOrderItems(ctx, orderID)
	if err != nil {
		return common.SendServerError(c, "Failed to fetch order items")
	}
	if items == nil {
		items = []*models.OrderItem{}
	}
	return c.JSON(http.StatusOK, items)
}

// GetOrderDetails handles GET /get-order-details/:orderId
func (h *OrderHandlers) GetOrderDetails(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := parseOrderID(c)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	details, err := h.orderService.GetOrderDetails(ctx, orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return common.SendNotFoundError(c, "order not found")
		}
		return common.SendServerError(c, "Failed to fetch order details")
	}
	return c.JSON(http.StatusOK, details)
}
