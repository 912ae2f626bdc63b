package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spec-kit/storefront/internal/domain"
	"github.com/spec-kit/storefront/internal/repository"
	"github.com/spec-kit/storefront/internal/validation"
	apperrors "github.com/spec-kit/storefront/pkg/util/errorutil"
)

var errStoreDown = errors.New("connection refused")

type brokenServices struct{}

func (brokenServices) List(context.Context) ([]domain.Service, error) { return nil, errStoreDown }
func (brokenServices) GetByID(context.Context, int64) (*domain.Service, error) {
	return nil, errStoreDown
}
func (brokenServices) Create(context.Context, *domain.Service) error { return errStoreDown }
func (brokenServices) Update(context.Context, int64, repository.ServiceUpdate) (*domain.Service, error) {
	return nil, errStoreDown
}
func (brokenServices) Delete(context.Context, int64) (bool, error) { return false, errStoreDown }

type brokenPayments struct{}

func (brokenPayments) List(context.Context) ([]domain.Payment, error) { return nil, errStoreDown }
func (brokenPayments) Create(context.Context, *domain.Payment) error  { return errStoreDown }

type brokenHealth struct{}

func (brokenHealth) Backend() string            { return "postgres" }
func (brokenHealth) Ping(context.Context) error { return errStoreDown }

func TestPersistenceFailuresSurface(t *testing.T) {
	f := newFixture(t, testConfig())
	repos := f.repos
	repos.Services = brokenServices{}
	repos.Health = brokenHealth{}
	sf := NewStorefront(testConfig(), Dependencies{Repos: repos})
	ctx := context.Background()

	listings, err := sf.Catalog.ListServices(ctx, ServiceFilter{})
	if codeOf(err) != apperrors.CodePersistence || listings != nil {
		t.Fatalf("expected persistence failure without data, got %v %v", listings, err)
	}
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("cause should be preserved: %v", err)
	}

	created, err := sf.Catalog.CreateService(ctx, ServiceInput{Name: "X", Category: "vps", Price: "10"})
	if codeOf(err) != apperrors.CodePersistence || created != nil {
		t.Fatalf("create should fail loudly, got %+v %v", created, err)
	}

	if _, err := sf.Orders.CreateOrder(ctx, CreateOrderInput{UserID: 2, ServiceID: 1}); codeOf(err) != apperrors.CodePersistence {
		t.Fatalf("expected persistence failure, got %v", err)
	}
	if err := sf.Catalog.DeleteService(ctx, 1); codeOf(err) != apperrors.CodePersistence {
		t.Fatalf("expected persistence failure, got %v", err)
	}

	status := sf.System.TestConnection(ctx)
	if status.Success || status.Backend != "postgres" || status.Message == "" {
		t.Fatalf("unexpected status %+v", status)
	}
}

func TestUnrecordedPaymentIsNotActivated(t *testing.T) {
	f := newFixture(t, testConfig())
	repos := f.repos
	repos.Payments = brokenPayments{}
	sf := NewStorefront(testConfig(), Dependencies{Repos: repos, Clock: func() time.Time { return testNow }})
	ctx := context.Background()

	card := validation.Card{Number: "4242424242424242", HolderName: "Maria Garcia", Expiry: "12/30", CVV: "123"}
	result, err := sf.Orders.Purchase(ctx, 4, PurchaseInput{ServiceID: 2, Card: card})
	if codeOf(err) != apperrors.CodePersistence || result != nil {
		t.Fatalf("expected persistence failure, got %+v %v", result, err)
	}
	orders, _ := sf.Orders.GetUserOrders(ctx, 4)
	if len(orders) != 1 || orders[0].Order.Status != domain.OrderStatusPending {
		t.Fatalf("order must not be activated without a ledger row: %+v", orders)
	}

	if _, err := sf.Payments.Overview(ctx); codeOf(err) != apperrors.CodePersistence {
		t.Fatalf("expected persistence failure, got %v", err)
	}
}

func TestStoreErrorMapping(t *testing.T) {
	cases := map[string]error{
		apperrors.CodeNotFound:    repository.ErrNotFound,
		apperrors.CodeConflict:    repository.ErrConflict,
		apperrors.CodePersistence: context.DeadlineExceeded,
		apperrors.CodeForbidden:   apperrors.NewForbidden("no"),
	}
	for want, err := range cases {
		if got := codeOf(storeError("order", 1, err)); got != want {
			t.Errorf("storeError(%v) = %s, want %s", err, got, want)
		}
	}
	if storeError("order", 1, nil) != nil {
		t.Fatalf("nil should stay nil")
	}
}
