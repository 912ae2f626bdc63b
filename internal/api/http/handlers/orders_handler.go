package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront/internal/api/dto"
	"github.com/spec-kit/storefront/internal/auth"
	"github.com/spec-kit/storefront/internal/domain"
	"github.com/spec-kit/storefront/internal/service"
	"github.com/spec-kit/storefront/internal/validation"
	apperrors "github.com/spec-kit/storefront/pkg/util/errorutil"
)

// OrdersHandler manages customer orders, checkout and the admin order table.
type OrdersHandler struct {
	service *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orders *service.OrderService) *OrdersHandler {
	return &OrdersHandler{service: orders}
}

// ListMine GET /api/orders.
func (h *OrdersHandler) ListMine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	orders, err := h.service.GetUserOrders(c.UserContext(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orderResponses(orders)})
}

// Create POST /api/orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateOrderRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	order, err := h.service.CreateOrder(c.UserContext(), service.CreateOrderInput{
		UserID:       principal.User.ID,
		ServiceID:    req.ServiceID,
		Amount:       req.Amount,
		BillingCycle: req.BillingCycle,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": orderResponse(service.OrderDetails{Order: *order})})
}

// Purchase POST /api/orders/purchase.
func (h *OrdersHandler) Purchase(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.PurchaseRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	result, err := h.service.Purchase(c.UserContext(), principal.User.ID, service.PurchaseInput{
		ServiceID: req.ServiceID,
		Card: validation.Card{
			Number:     req.CardNumber,
			HolderName: req.CardName,
			Expiry:     req.ExpiryDate,
			CVV:        req.CVV,
		},
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.PurchaseResponse{
		Order: orderResponse(service.OrderDetails{Order: result.Order}),
		Receipt: dto.ReceiptResponse{
			PaymentID:  result.Receipt.PaymentID,
			Amount:     result.Receipt.Amount,
			CardLast4:  result.Receipt.CardLast4,
			CapturedAt: result.Receipt.CapturedAt,
		},
	}})
}

// ListAll GET /api/admin/orders?status=&user_id=.
func (h *OrdersHandler) ListAll(c *fiber.Ctx) error {
	var filter service.OrderFilter
	if raw := c.Query("status"); raw != "" {
		status, ok := domain.ParseOrderStatus(raw)
		if !ok {
			return apperrors.NewValidationError("invalid status filter", map[string]any{"status": raw})
		}
		filter.Status = &status
	}
	if raw := c.Query("user_id"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return apperrors.NewValidationError("invalid user_id filter", map[string]any{"user_id": raw})
		}
		filter.UserID = &userID
	}
	orders, err := h.service.GetAllOrders(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orderResponses(orders)})
}

// UpdateStatus PATCH /api/admin/orders/:id.
func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateOrderRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	order, err := h.service.UpdateOrderStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orderResponse(service.OrderDetails{Order: *order})})
}

// Delete DELETE /api/admin/orders/:id.
func (h *OrdersHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteOrder(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true, "id": id}})
}
