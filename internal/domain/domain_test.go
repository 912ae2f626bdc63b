package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in    string
		price string
		cycle BillingCycle
		err   bool
	}{
		{in: "$9.99/mo", price: "9.99", cycle: BillingMonthly},
		{in: "$120/yr", price: "120", cycle: BillingYearly},
		{in: " 19.99 ", price: "19.99"},
		{in: "€1,200", price: "1200"},
		{in: "$5/week", err: true},
		{in: "free", err: true},
		{in: "-3", err: true},
		{in: "$", err: true},
	}
	for _, tc := range cases {
		price, cycle, err := ParsePrice(tc.in)
		if tc.err {
			if err == nil {
				t.Errorf("%q: expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if !price.Equal(decimal.RequireFromString(tc.price)) || cycle != tc.cycle {
			t.Errorf("%q: got %s %q", tc.in, price, cycle)
		}
	}
}

func TestMonthlyAmount(t *testing.T) {
	yearly := MonthlyAmount(decimal.NewFromInt(120), BillingYearly)
	if !yearly.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected 10, got %s", yearly)
	}
	monthly := MonthlyAmount(decimal.RequireFromString("9.99"), BillingMonthly)
	if !monthly.Equal(decimal.RequireFromString("9.99")) {
		t.Fatalf("expected 9.99, got %s", monthly)
	}
}

func TestParseServiceCategory(t *testing.T) {
	for in, want := range map[string]ServiceCategory{
		"Hosting":          CategoryHosting,
		"web hosting":      CategoryHosting,
		"VPS":              CategoryVPS,
		"Dedicated Server": CategoryDedicated,
		"Security":         CategoryCybersecurity,
	} {
		got, ok := ParseServiceCategory(in)
		if !ok || got != want {
			t.Errorf("%q: got %q %v", in, got, ok)
		}
	}
	if _, ok := ParseServiceCategory("email"); ok {
		t.Fatal("unknown category accepted")
	}
}

func TestParseTicketStatus(t *testing.T) {
	for _, in := range []string{"In Progress", "in-progress", "in_progress"} {
		if got, ok := ParseTicketStatus(in); !ok || got != TicketStatusInProgress {
			t.Errorf("%q: got %q %v", in, got, ok)
		}
	}
	if _, ok := ParseTicketStatus("waiting"); ok {
		t.Fatal("unknown status accepted")
	}
}

func TestBillingTerm(t *testing.T) {
	if BillingYearly.Term() <= BillingMonthly.Term() {
		t.Fatal("yearly term should exceed monthly")
	}
}
