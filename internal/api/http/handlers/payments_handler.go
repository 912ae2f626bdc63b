package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront/internal/api/dto"
	"github.com/spec-kit/storefront/internal/service"
)

// PaymentsHandler serves the admin payment ledger.
type PaymentsHandler struct {
	service *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(payments *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{service: payments}
}

// Overview GET /api/admin/payments.
func (h *PaymentsHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.service.Overview(c.UserContext())
	if err != nil {
		return err
	}
	transactions := make([]dto.TransactionResponse, 0, len(overview.Recent))
	for _, row := range overview.Recent {
		payment := row.Payment
		transactions = append(transactions, dto.TransactionResponse{
			ID:            payment.ID,
			Reference:     payment.Reference,
			OrderID:       payment.OrderID,
			Customer:      row.CustomerEmail,
			CustomerName:  row.CustomerName,
			Service:       row.ServiceName,
			Amount:        payment.Amount,
			Status:        string(payment.Status),
			CardLast4:     payment.CardLast4,
			FailureReason: payment.FailureReason,
			Date:          payment.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"data": dto.PaymentsResponse{
		TotalRevenue: overview.TotalRevenue,
		Successful:   overview.Successful,
		Failed:       overview.Failed,
		Transactions: transactions,
	}})
}
