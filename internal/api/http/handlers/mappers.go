package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront/internal/api/dto"
	"github.com/spec-kit/storefront/internal/domain"
	"github.com/spec-kit/storefront/internal/service"
	"github.com/spec-kit/storefront/internal/validation"
	apperrors "github.com/spec-kit/storefront/pkg/util/errorutil"
)

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}

func invalidPayload() error {
	return apperrors.NewValidationError("invalid payload", nil)
}

// bindBody decodes the request body into out and runs its validate tags.
func bindBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return invalidPayload()
	}
	return validation.Struct(out)
}

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		Language:  user.Language,
		Phone:     user.Phone,
		Address:   user.Address,
		City:      user.City,
		State:     user.State,
		ZipCode:   user.ZipCode,
		Country:   user.Country,
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func serviceResponse(listing *service.ServiceListing) dto.ServiceResponse {
	svc := listing.Service
	features := svc.Features
	if features == nil {
		features = []string{}
	}
	return dto.ServiceResponse{
		ID:           svc.ID,
		Name:         svc.Name,
		Description:  svc.Description,
		Category:     string(svc.Category),
		Price:        svc.Price,
		PriceDisplay: priceDisplay(svc.Price.StringFixed(2), svc.BillingCycle),
		BillingCycle: string(svc.BillingCycle),
		Features:     features,
		Status:       string(svc.Status),
		Customers:    listing.Customers,
		CreatedAt:    svc.CreatedAt,
		UpdatedAt:    svc.UpdatedAt,
	}
}

func priceDisplay(amount string, cycle domain.BillingCycle) string {
	if cycle == domain.BillingYearly {
		return "$" + amount + "/yr"
	}
	return "$" + amount + "/mo"
}

func orderResponse(details service.OrderDetails) dto.OrderResponse {
	order := details.Order
	return dto.OrderResponse{
		ID:            order.ID,
		UserID:        order.UserID,
		ServiceID:     order.ServiceID,
		ServiceName:   details.ServiceName,
		CustomerName:  details.CustomerName,
		CustomerEmail: details.CustomerEmail,
		Status:        string(order.Status),
		Amount:        order.Amount,
		BillingCycle:  string(order.BillingCycle),
		ExpiresAt:     order.ExpiresAt,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}

func orderResponses(items []service.OrderDetails) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(items))
	for _, item := range items {
		out = append(out, orderResponse(item))
	}
	return out
}

func ticketResponse(ticket *domain.SupportTicket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:        ticket.ID,
		UserID:    ticket.UserID,
		Subject:   ticket.Subject,
		Message:   ticket.Message,
		Priority:  string(ticket.Priority),
		Status:    string(ticket.Status),
		Category:  ticket.Category,
		CreatedAt: ticket.CreatedAt,
		UpdatedAt: ticket.UpdatedAt,
	}
}

func ticketResponses(tickets []domain.SupportTicket) []dto.TicketResponse {
	out := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		out = append(out, ticketResponse(&tickets[i]))
	}
	return out
}

func reportResponse(report *service.Overview) dto.ReportResponse {
	byStatus := make(map[string]int, len(report.Orders.ByStatus))
	for status, count := range report.Orders.ByStatus {
		byStatus[string(status)] = count
	}
	categories := make([]dto.CategoryResponse, 0, len(report.Categories))
	for _, cat := range report.Categories {
		categories = append(categories, dto.CategoryResponse{
			Category:           string(cat.Category),
			Services:           cat.Services,
			Customers:          cat.Customers,
			MonthlyRevenue:     cat.MonthlyRevenue,
			RevenuePerCustomer: cat.RevenuePerCustomer,
		})
	}
	return dto.ReportResponse{
		GeneratedAt: report.GeneratedAt,
		Users: dto.UserStatsResponse{
			Total:        report.Users.Total,
			Active:       report.Users.Active,
			Suspended:    report.Users.Suspended,
			NewThisMonth: report.Users.NewThisMonth,
		},
		Services: dto.ServiceStatsResponse{
			Total:          report.Services.Total,
			Active:         report.Services.Active,
			TotalCustomers: report.Services.TotalCustomers,
		},
		Orders: dto.OrderStatsResponse{
			Total:          report.Orders.Total,
			ByStatus:       byStatus,
			Active:         report.Orders.Active,
			PendingPayment: report.Orders.PendingPayment,
		},
		Revenue: dto.RevenueResponse{
			Monthly:  report.Revenue.Monthly,
			Lifetime: report.Revenue.Lifetime,
		},
		Categories: categories,
		Support: dto.SupportResponse{
			Total:         report.Support.Total,
			Open:          report.Support.Open,
			HighPriority:  report.Support.HighPriority,
			ResolvedToday: report.Support.ResolvedToday,
		},
	}
}
