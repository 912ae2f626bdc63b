package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/storefront/internal/domain"
)

// PasswordHasher turns a plaintext demo password into a stored hash.
type PasswordHasher func(plain string) (string, error)

// Demo credentials seeded by DemoSeed.
const (
	DemoAdminEmail       = "admin@demo.com"
	DemoAdminPassword    = "admin123"
	DemoCustomerEmail    = "customer@demo.com"
	DemoCustomerPassword = "customer123"
	DemoDefaultPassword  = "demo123"
)

// DemoSeed returns the demo catalogue, accounts, orders and tickets relative to now.
func DemoSeed(now time.Time, hash PasswordHasher) (Seed, error) {
	day := 24 * time.Hour
	ago := func(days int) time.Time { return now.Add(-time.Duration(days) * day) }

	type account struct {
		name, email, password, language string
		role                            domain.Role
		status                          domain.UserStatus
		joined                          int
	}
	accounts := []account{
		{"Admin User", DemoAdminEmail, DemoAdminPassword, "en", domain.RoleAdmin, domain.UserStatusActive, 30},
		{"Customer User", DemoCustomerEmail, DemoCustomerPassword, "en", domain.RoleCustomer, domain.UserStatusActive, 20},
		{"John Smith", "john@example.com", DemoDefaultPassword, "en", domain.RoleCustomer, domain.UserStatusActive, 15},
		{"Maria Garcia", "maria@example.com", DemoDefaultPassword, "es", domain.RoleCustomer, domain.UserStatusActive, 10},
		{"João Silva", "joao@example.com", DemoDefaultPassword, "pt", domain.RoleCustomer, domain.UserStatusSuspended, 7},
	}

	var seed Seed
	for i, acc := range accounts {
		hashed, err := hash(acc.password)
		if err != nil {
			return Seed{}, err
		}
		seed.Users = append(seed.Users, domain.User{
			ID:           int64(i + 1),
			Name:         acc.name,
			Email:        acc.email,
			PasswordHash: hashed,
			Role:         acc.role,
			Language:     acc.language,
			Status:       acc.status,
			CreatedAt:    ago(acc.joined),
			UpdatedAt:    ago(acc.joined),
		})
	}

	price := decimal.RequireFromString
	seed.Services = []domain.Service{
		{ID: 1, Name: "Web Hosting Pro", Category: domain.CategoryHosting, Price: price("9.99"),
			Features: []string{"10GB Storage", "100GB Bandwidth", "SSL Certificate", "24/7 Support"}},
		{ID: 2, Name: "VPS Standard", Category: domain.CategoryVPS, Price: price("29.99"),
			Features: []string{"2 CPU Cores", "4GB RAM", "50GB SSD", "Root Access"}},
		{ID: 3, Name: "Dedicated Server Pro", Category: domain.CategoryDedicated, Price: price("199.99"),
			Features: []string{"8 CPU Cores", "32GB RAM", "1TB SSD", "Full Control"}},
		{ID: 4, Name: "Cybersecurity Basic", Category: domain.CategoryCybersecurity, Price: price("19.99"),
			Features: []string{"Malware Protection", "24/7 Monitoring", "Firewall", "Threat Detection"}},
		{ID: 5, Name: "Cloud Backup Pro", Category: domain.CategoryHosting, Price: price("14.99"),
			Features: []string{"100GB Storage", "Auto Backup", "File Versioning", "Encryption"},
			Status:   domain.ServiceStatusDraft},
	}
	for i := range seed.Services {
		seed.Services[i].BillingCycle = domain.BillingMonthly
		if seed.Services[i].Status == "" {
			seed.Services[i].Status = domain.ServiceStatusActive
		}
		seed.Services[i].CreatedAt = ago(60)
	}

	seed.Orders = []domain.Order{
		{ID: 1, UserID: 2, ServiceID: 1, Status: domain.OrderStatusActive, Amount: price("9.99"),
			ExpiresAt: now.Add(30 * day), CreatedAt: ago(5)},
		{ID: 2, UserID: 3, ServiceID: 3, Status: domain.OrderStatusSuspended, Amount: price("199.99"),
			ExpiresAt: now.Add(15 * day), CreatedAt: ago(3)},
		{ID: 3, UserID: 2, ServiceID: 2, Status: domain.OrderStatusPending, Amount: price("29.99"),
			ExpiresAt: now.Add(25 * day), CreatedAt: ago(2)},
	}
	for i := range seed.Orders {
		seed.Orders[i].BillingCycle = domain.BillingMonthly
	}

	seed.Payments = []domain.Payment{
		{ID: 1, Reference: "pay_demo_0001", OrderID: 1, UserID: 2, ServiceID: 1, Amount: price("9.99"),
			Status: domain.PaymentSucceeded, CardLast4: "4242", CreatedAt: ago(5)},
		{ID: 2, Reference: "pay_demo_0002", OrderID: 2, UserID: 3, ServiceID: 3, Amount: price("199.99"),
			Status: domain.PaymentSucceeded, CardLast4: "4242", CreatedAt: ago(3)},
		{ID: 3, OrderID: 3, UserID: 2, ServiceID: 2, Amount: price("29.99"),
			Status: domain.PaymentFailed, CardLast4: "0002", FailureReason: "PAYMENT_DECLINED", CreatedAt: ago(2)},
	}

	seed.Tickets = []domain.SupportTicket{
		{ID: 1, UserID: 4, Subject: "Billing Question", Message: "I have a question about my last invoice.",
			Priority: domain.TicketPriorityLow, Status: domain.TicketStatusResolved, Category: "billing",
			CreatedAt: ago(5), UpdatedAt: ago(3)},
		{ID: 2, UserID: 2, Subject: "Server Performance Issue", Message: "My website has been loading slowly recently. Can you help?",
			Priority: domain.TicketPriorityMedium, Status: domain.TicketStatusOpen, Category: "technical",
			CreatedAt: ago(2), UpdatedAt: ago(1)},
		{ID: 3, UserID: 3, Subject: "SSL Certificate Issue", Message: "My SSL certificate expired and I need help renewing it.",
			Priority: domain.TicketPriorityHigh, Status: domain.TicketStatusInProgress, Category: "technical",
			CreatedAt: ago(1), UpdatedAt: now},
	}
	return seed, nil
}
