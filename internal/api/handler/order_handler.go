package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickshop/storefront-api/internal/api/metrics"
	"github.com/quickshop/storefront-api/internal/core/domain"
	"github.com/quickshop/storefront-api/internal/core/ports"
)

// OrderHandler handles checkout and order history.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create handles POST /api/orders.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Cart line items"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orders.PlaceOrder(c.Request().Context(), userID, toCart(req.Items))
	if err != nil {
		metrics.OrderFailuresTotal.WithLabelValues(failureReason(err)).Inc()
		return err
	}

	metrics.OrdersPlacedTotal.Inc()
	metrics.OrderValue.Observe(order.Total)
	return c.JSON(http.StatusCreated, toOrderResponse(order))
}

// List handles GET /api/orders, scoped to the authenticated user.
//
// @Summary      List the authenticated user's orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  orderResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.orders.ListOrdersForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	resp := make([]orderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, toOrderResponse(&orders[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func failureReason(err error) string {
	var insufficient *domain.InsufficientStockError
	var invalidQty *domain.InvalidQuantityError
	var persistence *domain.PersistenceError
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return "empty_cart"
	case errors.As(err, &invalidQty):
		return "invalid_quantity"
	case errors.Is(err, domain.ErrProductNotFound):
		return "product_not_found"
	case errors.As(err, &insufficient):
		return "insufficient_stock"
	case errors.As(err, &persistence):
		return "persistence"
	default:
		return "internal"
	}
}
