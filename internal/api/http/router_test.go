package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/storefront/internal/auth"
	"github.com/spec-kit/storefront/internal/config"
	"github.com/spec-kit/storefront/internal/events"
	"github.com/spec-kit/storefront/internal/observability"
	"github.com/spec-kit/storefront/internal/repository/memory"
	"github.com/spec-kit/storefront/internal/service"
)

func newTestServer(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		App:       config.AppConfig{Name: "storefront-test", Version: "test"},
		Store:     config.StoreConfig{Backend: config.BackendMemory},
		Auth:      config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 60, BcryptCost: bcrypt.MinCost},
		RateLimit: config.RateLimitConfig{LoginAttempts: 20, LoginWindowSeconds: 60},
	}
	seed, err := memory.DemoSeed(time.Now(), auth.Hasher(bcrypt.MinCost))
	if err != nil {
		t.Fatalf("demo seed: %v", err)
	}
	sf := service.NewStorefront(cfg, service.Dependencies{
		Repos:      memory.NewStore(memory.Options{Seed: seed}).Repositories(),
		Dispatcher: events.NewInMemoryDispatcher(),
	})
	return NewServer(ServerDeps{
		Config:     cfg,
		Metrics:    observability.NewMetrics(),
		Storefront: sf,
	})
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, raw, err)
		}
	}
	return resp.StatusCode, env
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	status, env := call(t, app, fiber.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	if status != fiber.StatusOK {
		t.Fatalf("login %s: status %d, error %+v", email, status, env.Error)
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
		t.Fatalf("login %s: no token in %s", email, env.Data)
	}
	return data.Token
}

func TestRegisterRejectsMismatchedPasswords(t *testing.T) {
	app := newTestServer(t)

	status, env := call(t, app, fiber.MethodPost, "/api/auth/register", "", map[string]string{
		"name":             "Jo",
		"email":            "jo@example.com",
		"password":         "abcdef",
		"confirm_password": "abcdeg",
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if env.Error == nil || env.Error.Message != "Passwords do not match" {
		t.Fatalf("unexpected error %+v", env.Error)
	}

	status, env = call(t, app, fiber.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "jo@example.com", "password": "abcdef",
	})
	if status != fiber.StatusUnauthorized || env.Error.Code != "INVALID_CREDENTIALS" {
		t.Fatalf("account should not exist, got %d %+v", status, env.Error)
	}
}

func TestRegisterThenMe(t *testing.T) {
	app := newTestServer(t)

	status, env := call(t, app, fiber.MethodPost, "/api/auth/register", "", map[string]string{
		"name":             "Jo",
		"email":            "jo@example.com",
		"password":         "abcdef",
		"confirm_password": "abcdef",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d %+v", status, env.Error)
	}
	var reg struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &reg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if reg.User.Role != "customer" {
		t.Fatalf("expected customer role, got %q", reg.User.Role)
	}

	status, env = call(t, app, fiber.MethodGet, "/api/auth/me", reg.Token, nil)
	if status != fiber.StatusOK {
		t.Fatalf("me: %d %+v", status, env.Error)
	}
	if bytes.Contains(env.Data, []byte("password")) {
		t.Fatalf("password hash leaked: %s", env.Data)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestServer(t)

	status, env := call(t, app, fiber.MethodPost, "/api/auth/login", "", map[string]string{
		"email": memory.DemoAdminEmail, "password": "wrong",
	})
	if status != fiber.StatusUnauthorized || env.Error.Code != "INVALID_CREDENTIALS" {
		t.Fatalf("got %d %+v", status, env.Error)
	}
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	app := newTestServer(t)

	status, env := call(t, app, fiber.MethodGet, "/api/admin/users", "", nil)
	if status != fiber.StatusUnauthorized || env.Error.Code != "UNAUTHORIZED" {
		t.Fatalf("anonymous: got %d %+v", status, env.Error)
	}

	customer := login(t, app, memory.DemoCustomerEmail, memory.DemoCustomerPassword)
	status, env = call(t, app, fiber.MethodGet, "/api/admin/users", customer, nil)
	if status != fiber.StatusForbidden || env.Error.Code != "FORBIDDEN" {
		t.Fatalf("customer: got %d %+v", status, env.Error)
	}

	admin := login(t, app, memory.DemoAdminEmail, memory.DemoAdminPassword)
	status, env = call(t, app, fiber.MethodGet, "/api/admin/users", admin, nil)
	if status != fiber.StatusOK {
		t.Fatalf("admin: got %d %+v", status, env.Error)
	}
	var users []map[string]any
	if err := json.Unmarshal(env.Data, &users); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(users) != 5 {
		t.Fatalf("expected 5 seeded users, got %d", len(users))
	}
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	app := newTestServer(t)

	status, env := call(t, app, fiber.MethodGet, "/api/nope", "", nil)
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Fatalf("unexpected body %+v", env.Error)
	}
}

func TestToggleStatusBlocksLogin(t *testing.T) {
	app := newTestServer(t)
	admin := login(t, app, memory.DemoAdminEmail, memory.DemoAdminPassword)

	// User 3 is John, active in the demo data.
	status, env := call(t, app, fiber.MethodPost, "/api/admin/users/3/toggle-status", admin, nil)
	if status != fiber.StatusOK {
		t.Fatalf("toggle: %d %+v", status, env.Error)
	}
	var user struct {
		Email  string `json:"email"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if user.Status != "suspended" {
		t.Fatalf("expected suspended, got %q", user.Status)
	}

	status, env = call(t, app, fiber.MethodPost, "/api/auth/login", "", map[string]string{
		"email": user.Email, "password": memory.DemoDefaultPassword,
	})
	if status != fiber.StatusForbidden {
		t.Fatalf("suspended login: got %d %+v", status, env.Error)
	}

	status, env = call(t, app, fiber.MethodPost, "/api/admin/users/99/toggle-status", admin, nil)
	if status != fiber.StatusNotFound {
		t.Fatalf("missing user: got %d %+v", status, env.Error)
	}
}

func TestCreateServiceParsesPriceText(t *testing.T) {
	app := newTestServer(t)
	admin := login(t, app, memory.DemoAdminEmail, memory.DemoAdminPassword)

	status, env := call(t, app, fiber.MethodPost, "/api/admin/services", admin, map[string]any{
		"name":        "Starter",
		"description": "Entry plan",
		"category":    "hosting",
		"price":       "$5/mo",
		"features":    []string{"1 site"},
	})
	if status != fiber.StatusCreated {
		t.Fatalf("create: %d %+v", status, env.Error)
	}
	var svc struct {
		ID        int64  `json:"id"`
		Price     string `json:"price"`
		Status    string `json:"status"`
		Customers int    `json:"customers"`
	}
	if err := json.Unmarshal(env.Data, &svc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if svc.Price != "5" || svc.Customers != 0 || svc.Status != "active" {
		t.Fatalf("unexpected service %+v", svc)
	}

	status, env = call(t, app, fiber.MethodPost, "/api/admin/services", admin, map[string]any{
		"name": "Broken", "description": "x", "category": "hosting", "price": "free",
	})
	if status != fiber.StatusBadRequest || env.Error.Code != "VALIDATION_FAILED" {
		t.Fatalf("bad price: got %d %+v", status, env.Error)
	}
}

func TestDraftServicesHiddenFromPublicCatalogue(t *testing.T) {
	app := newTestServer(t)

	status, env := call(t, app, fiber.MethodGet, "/api/services", "", nil)
	if status != fiber.StatusOK {
		t.Fatalf("list: %d", status)
	}
	var listed []map[string]any
	if err := json.Unmarshal(env.Data, &listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listed) != 4 {
		t.Fatalf("expected 4 active services, got %d", len(listed))
	}

	// Service 5 is the draft Cloud Backup Pro plan.
	status, _ = call(t, app, fiber.MethodGet, "/api/services/5", "", nil)
	if status != fiber.StatusNotFound {
		t.Fatalf("draft service visible: %d", status)
	}
}

func TestPurchaseFlow(t *testing.T) {
	app := newTestServer(t)
	customer := login(t, app, memory.DemoCustomerEmail, memory.DemoCustomerPassword)
	expiry := time.Now().AddDate(1, 0, 0).Format("01/06")

	status, env := call(t, app, fiber.MethodPost, "/api/orders/purchase", customer, map[string]any{
		"service_id":  4,
		"card_number": "4242 4242 4242 4242",
		"card_name":   "Demo Customer",
		"expiry_date": expiry,
		"cvv":         "123",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("purchase: %d %+v", status, env.Error)
	}

	status, env = call(t, app, fiber.MethodPost, "/api/orders/purchase", customer, map[string]any{
		"service_id":  4,
		"card_number": "4000 0000 0000 0002",
		"card_name":   "Demo Customer",
		"expiry_date": expiry,
		"cvv":         "123",
	})
	if status != fiber.StatusPaymentRequired || env.Error.Code != "PAYMENT_DECLINED" {
		t.Fatalf("decline: got %d %+v", status, env.Error)
	}

	status, env = call(t, app, fiber.MethodPost, "/api/orders/purchase", customer, map[string]any{
		"service_id":  4,
		"card_number": "1234",
		"card_name":   "",
		"expiry_date": "13/99",
		"cvv":         "1",
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("invalid card: got %d %+v", status, env.Error)
	}
	fields, _ := env.Error.Details["fields"].(map[string]any)
	for _, name := range []string{"card_number", "card_name", "expiry_date", "cvv"} {
		if _, ok := fields[name]; !ok {
			t.Fatalf("field %s not flagged: %+v", name, env.Error.Details)
		}
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	app := newTestServer(t)
	token := login(t, app, memory.DemoCustomerEmail, memory.DemoCustomerPassword)

	status, env := call(t, app, fiber.MethodPost, "/api/auth/logout", token, nil)
	if status != fiber.StatusOK {
		t.Fatalf("logout: %d %+v", status, env.Error)
	}
	status, _ = call(t, app, fiber.MethodGet, "/api/auth/me", token, nil)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("revoked token accepted: %d", status)
	}
}

func TestI18nNegotiation(t *testing.T) {
	app := newTestServer(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/i18n", nil)
	req.Header.Set("Accept-Language", "es-MX,es;q=0.9,en;q=0.5")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	var env struct {
		Data struct {
			Language string `json:"language"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Language != "es" {
		t.Fatalf("expected es, got %q", env.Data.Language)
	}
}

func TestHealthLive(t *testing.T) {
	app := newTestServer(t)

	status, _ := call(t, app, fiber.MethodGet, "/health/ready", "", nil)
	if status != fiber.StatusOK {
		t.Fatalf("ready: %d", status)
	}
	if _, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health/live", nil), -1); err != nil {
		t.Fatalf("live: %v", err)
	}
}

func TestAdminPaymentsListsBothOutcomes(t *testing.T) {
	app := newTestServer(t)
	customer := login(t, app, memory.DemoCustomerEmail, memory.DemoCustomerPassword)
	admin := login(t, app, memory.DemoAdminEmail, memory.DemoAdminPassword)
	expiry := time.Now().AddDate(1, 0, 0).Format("01/06")

	for _, number := range []string{"4242 4242 4242 4242", "4000 0000 0000 0002"} {
		call(t, app, fiber.MethodPost, "/api/orders/purchase", customer, map[string]any{
			"service_id":  4,
			"card_number": number,
			"card_name":   "Demo Customer",
			"expiry_date": expiry,
			"cvv":         "123",
		})
	}

	status, _ := call(t, app, fiber.MethodGet, "/api/admin/payments", customer, nil)
	if status != fiber.StatusForbidden {
		t.Fatalf("customer: expected 403, got %d", status)
	}

	status, env := call(t, app, fiber.MethodGet, "/api/admin/payments", admin, nil)
	if status != fiber.StatusOK {
		t.Fatalf("payments: %d %+v", status, env.Error)
	}
	var page struct {
		TotalRevenue string `json:"total_revenue"`
		Successful   int    `json:"successful"`
		Failed       int    `json:"failed"`
		Transactions []struct {
			Customer string `json:"customer"`
			Service  string `json:"service"`
			Amount   string `json:"amount"`
			Status   string `json:"status"`
			Date     string `json:"date"`
		} `json:"transactions"`
	}
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.Successful != 3 || page.Failed != 2 || page.TotalRevenue != "229.97" {
		t.Fatalf("unexpected totals %+v", page)
	}
	if len(page.Transactions) != 5 {
		t.Fatalf("expected 5 transactions, got %d", len(page.Transactions))
	}
	latest := page.Transactions[0]
	if latest.Status != "failed" || latest.Customer != memory.DemoCustomerEmail ||
		latest.Service != "Cybersecurity Basic" || latest.Amount != "19.99" || latest.Date == "" {
		t.Fatalf("unexpected latest transaction %+v", latest)
	}
	if page.Transactions[1].Status != "succeeded" {
		t.Fatalf("expected the captured payment second, got %+v", page.Transactions[1])
	}
}

func TestAdminGetUser(t *testing.T) {
	app := newTestServer(t)
	admin := login(t, app, memory.DemoAdminEmail, memory.DemoAdminPassword)

	status, env := call(t, app, fiber.MethodGet, "/api/admin/users/4", admin, nil)
	if status != fiber.StatusOK {
		t.Fatalf("get: %d %+v", status, env.Error)
	}
	var user map[string]any
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if user["email"] != "maria@example.com" || user["language"] != "es" {
		t.Fatalf("unexpected user %v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash serialised")
	}

	status, env = call(t, app, fiber.MethodGet, "/api/admin/users/99", admin, nil)
	if status != fiber.StatusNotFound || env.Error.Code != "NOT_FOUND" {
		t.Fatalf("missing user: %d %+v", status, env.Error)
	}
	status, _ = call(t, app, fiber.MethodGet, "/api/admin/users/abc", admin, nil)
	if status != fiber.StatusBadRequest {
		t.Fatalf("bad id: expected 400, got %d", status)
	}
}

func TestRequestBodiesAreValidatedByTag(t *testing.T) {
	app := newTestServer(t)
	customer := login(t, app, memory.DemoCustomerEmail, memory.DemoCustomerPassword)
	admin := login(t, app, memory.DemoAdminEmail, memory.DemoAdminPassword)

	status, env := call(t, app, fiber.MethodPost, "/api/tickets", customer, map[string]any{
		"subject": "", "message": "Site down", "priority": "urgent",
	})
	if status != fiber.StatusBadRequest || env.Error.Code != "VALIDATION_FAILED" {
		t.Fatalf("ticket: %d %+v", status, env.Error)
	}
	fields, _ := env.Error.Details["fields"].(map[string]any)
	if fields["subject"] != "required" || fields["priority"] != "invalid" {
		t.Fatalf("ticket fields %+v", fields)
	}

	status, env = call(t, app, fiber.MethodPost, "/api/admin/users", admin, map[string]any{
		"name": "", "email": "nope", "password": "password",
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("user: %d %+v", status, env.Error)
	}
	fields, _ = env.Error.Details["fields"].(map[string]any)
	for _, name := range []string{"name", "email", "password"} {
		if _, ok := fields[name]; !ok {
			t.Fatalf("field %s not flagged: %+v", name, fields)
		}
	}

	status, env = call(t, app, fiber.MethodPost, "/api/orders/purchase", customer, map[string]any{
		"card_number": "4242 4242 4242 4242",
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("purchase without service: %d %+v", status, env.Error)
	}
	fields, _ = env.Error.Details["fields"].(map[string]any)
	if fields["service_id"] != "required" {
		t.Fatalf("purchase fields %+v", fields)
	}

	status, env = call(t, app, fiber.MethodPatch, "/api/admin/orders/1", admin, map[string]any{"status": "shipped"})
	if status != fiber.StatusBadRequest || env.Error.Message != "Please correct the highlighted fields" {
		t.Fatalf("order status: %d %+v", status, env.Error)
	}
}
