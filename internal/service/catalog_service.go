package service

import (
	"context"
	"strings"

	"github.com/spec-kit/storefront/internal/domain"
	"github.com/spec-kit/storefront/internal/repository"
	"github.com/spec-kit/storefront/internal/validation"
	apperrors "github.com/spec-kit/storefront/pkg/util/errorutil"
)

// CatalogService manages the plans on sale.
type CatalogService struct {
	services repository.ServiceRepository
	orders   repository.OrderRepository
}

// ServiceListing is a catalogue entry with its customer count.
type ServiceListing struct {
	Service   domain.Service
	Customers int
}

// ServiceFilter narrows ListServices.
type ServiceFilter struct {
	// IncludeAll shows inactive and draft plans as well.
	IncludeAll bool
	// Search matches name or category, case-insensitively.
	Search string
}

// ServiceInput is the create form. Category, price and status accept
// display values such as "Hosting", "$5/mo" and "Active".
type ServiceInput struct {
	Name         string
	Description  string
	Category     string
	Price        string
	BillingCycle string
	Features     []string
	Status       string
}

// ServiceChanges is the edit form; nil fields are left untouched.
type ServiceChanges struct {
	Name         *string
	Description  *string
	Category     *string
	Price        *string
	BillingCycle *string
	Features     *[]string
	Status       *string
}

// ListServices returns catalogue entries, newest first.
func (s *CatalogService) ListServices(ctx context.Context, filter ServiceFilter) ([]ServiceListing, error) {
	services, err := s.services.List(ctx)
	if err != nil {
		return nil, storeError("service", 0, err)
	}
	customers, err := s.customerCounts(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]ServiceListing, 0, len(services))
	for _, svc := range services {
		if !filter.IncludeAll && svc.Status != domain.ServiceStatusActive {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(svc.Name), term) &&
			!strings.Contains(string(svc.Category), term) {
			continue
		}
		out = append(out, ServiceListing{Service: svc, Customers: customers[svc.ID]})
	}
	return out, nil
}

// GetService loads one plan. Unless includeAll is set only active plans are
// visible.
func (s *CatalogService) GetService(ctx context.Context, id int64, includeAll bool) (*ServiceListing, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("service", id, err)
	}
	if !includeAll && svc.Status != domain.ServiceStatusActive {
		return nil, missing("service", id)
	}
	return s.listing(ctx, svc)
}

// CreateService adds a plan to the catalogue.
func (s *CatalogService) CreateService(ctx context.Context, input ServiceInput) (*ServiceListing, error) {
	fields := map[string]any{}
	name := validation.SanitizeInput(input.Name)
	if name == "" {
		fields["name"] = "required"
	}
	category, ok := domain.ParseServiceCategory(input.Category)
	if !ok {
		fields["category"] = "invalid"
	}
	price, cycle, err := domain.ParsePrice(input.Price)
	if err != nil {
		fields["price"] = "invalid"
	}
	if strings.TrimSpace(input.BillingCycle) != "" {
		parsed, ok := domain.ParseBillingCycle(input.BillingCycle)
		if !ok {
			fields["billing_cycle"] = "invalid"
		}
		cycle = parsed
	}
	if cycle == "" {
		cycle = domain.BillingMonthly
	}
	status := domain.ServiceStatusActive
	if strings.TrimSpace(input.Status) != "" {
		if status, ok = domain.ParseServiceStatus(input.Status); !ok {
			fields["status"] = "invalid"
		}
	}
	if len(fields) > 0 {
		return nil, invalidFields("invalid service", fields)
	}

	svc := &domain.Service{
		Name:         name,
		Description:  strings.TrimSpace(input.Description),
		Category:     category,
		Price:        price,
		BillingCycle: cycle,
		Features:     cleanFeatures(input.Features),
		Status:       status,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, storeError("service", 0, err)
	}
	return &ServiceListing{Service: *svc}, nil
}

// UpdateService applies the set fields of changes.
func (s *CatalogService) UpdateService(ctx context.Context, id int64, changes ServiceChanges) (*ServiceListing, error) {
	var upd repository.ServiceUpdate
	fields := map[string]any{}

	if changes.Name != nil {
		name := validation.SanitizeInput(*changes.Name)
		if name == "" {
			fields["name"] = "required"
		}
		upd.Name = &name
	}
	if changes.Description != nil {
		description := strings.TrimSpace(*changes.Description)
		upd.Description = &description
	}
	if changes.Category != nil {
		category, ok := domain.ParseServiceCategory(*changes.Category)
		if !ok {
			fields["category"] = "invalid"
		}
		upd.Category = &category
	}
	if changes.Price != nil {
		price, cycle, err := domain.ParsePrice(*changes.Price)
		if err != nil {
			fields["price"] = "invalid"
		}
		upd.Price = &price
		if cycle != "" {
			upd.BillingCycle = &cycle
		}
	}
	if changes.BillingCycle != nil {
		cycle, ok := domain.ParseBillingCycle(*changes.BillingCycle)
		if !ok {
			fields["billing_cycle"] = "invalid"
		}
		upd.BillingCycle = &cycle
	}
	if changes.Features != nil {
		features := cleanFeatures(*changes.Features)
		upd.Features = &features
	}
	if changes.Status != nil {
		status, ok := domain.ParseServiceStatus(*changes.Status)
		if !ok {
			fields["status"] = "invalid"
		}
		upd.Status = &status
	}
	if len(fields) > 0 {
		return nil, invalidFields("invalid service", fields)
	}

	svc, err := s.services.Update(ctx, id, upd)
	if err != nil {
		return nil, storeError("service", id, err)
	}
	return s.listing(ctx, svc)
}

// DeleteService removes a plan. Orders referencing it are kept.
func (s *CatalogService) DeleteService(ctx context.Context, id int64) error {
	removed, err := s.services.Delete(ctx, id)
	if err != nil {
		return storeError("service", id, err)
	}
	if !removed {
		return missing("service", id)
	}
	return nil
}

func (s *CatalogService) listing(ctx context.Context, svc *domain.Service) (*ServiceListing, error) {
	customers, err := s.customerCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &ServiceListing{Service: *svc, Customers: customers[svc.ID]}, nil
}

// customerCounts counts distinct users with a live order per service.
func (s *CatalogService) customerCounts(ctx context.Context) (map[int64]int, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, storeError("order", 0, err)
	}
	holders := make(map[int64]map[int64]struct{})
	for _, order := range orders {
		if order.Status == domain.OrderStatusCancelled {
			continue
		}
		if holders[order.ServiceID] == nil {
			holders[order.ServiceID] = make(map[int64]struct{})
		}
		holders[order.ServiceID][order.UserID] = struct{}{}
	}
	counts := make(map[int64]int, len(holders))
	for serviceID, users := range holders {
		counts[serviceID] = len(users)
	}
	return counts, nil
}

func cleanFeatures(features []string) []string {
	out := make([]string, 0, len(features))
	for _, feature := range features {
		if f := validation.SanitizeInput(feature); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func invalidFields(message string, fields map[string]any) error {
	return apperrors.NewValidationError(message, map[string]any{"fields": fields})
}
