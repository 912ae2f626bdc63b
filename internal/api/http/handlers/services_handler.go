package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront/internal/api/dto"
	"github.com/spec-kit/storefront/internal/service"
)

// ServicesHandler serves the catalogue, publicly and to admins.
type ServicesHandler struct {
	service *service.CatalogService
}

// NewServicesHandler constructs handler.
func NewServicesHandler(catalog *service.CatalogService) *ServicesHandler {
	return &ServicesHandler{service: catalog}
}

// ListPublic GET /api/services.
func (h *ServicesHandler) ListPublic(c *fiber.Ctx) error {
	return h.list(c, service.ServiceFilter{Search: c.Query("search")})
}

// GetPublic GET /api/services/:id.
func (h *ServicesHandler) GetPublic(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	listing, err := h.service.GetService(c.UserContext(), id, false)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": serviceResponse(listing)})
}

// ListAdmin GET /api/admin/services.
func (h *ServicesHandler) ListAdmin(c *fiber.Ctx) error {
	return h.list(c, service.ServiceFilter{IncludeAll: true, Search: c.Query("search")})
}

// Create POST /api/admin/services.
func (h *ServicesHandler) Create(c *fiber.Ctx) error {
	var req dto.ServiceRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	listing, err := h.service.CreateService(c.UserContext(), service.ServiceInput{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Price:        string(req.Price),
		BillingCycle: req.BillingCycle,
		Features:     req.Features,
		Status:       req.Status,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": serviceResponse(listing)})
}

// Update PATCH /api/admin/services/:id.
func (h *ServicesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateServiceRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	changes := service.ServiceChanges{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		BillingCycle: req.BillingCycle,
		Features:     req.Features,
		Status:       req.Status,
	}
	if req.Price != nil {
		price := string(*req.Price)
		changes.Price = &price
	}
	listing, err := h.service.UpdateService(c.UserContext(), id, changes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": serviceResponse(listing)})
}

// Delete DELETE /api/admin/services/:id.
func (h *ServicesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteService(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true, "id": id}})
}

func (h *ServicesHandler) list(c *fiber.Ctx, filter service.ServiceFilter) error {
	listings, err := h.service.ListServices(c.UserContext(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.ServiceResponse, 0, len(listings))
	for i := range listings {
		items = append(items, serviceResponse(&listings[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
