package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/storefront/internal/validation"
	apperrors "github.com/spec-kit/storefront/pkg/util/errorutil"
)

// DeclineTestCard is always refused by the simulated gateway.
const DeclineTestCard = "4000000000000002"

// Charge is a single card payment request.
type Charge struct {
	OrderID int64
	Amount  decimal.Decimal
	Card    validation.Card
}

// Receipt confirms a captured payment.
type Receipt struct {
	PaymentID  string
	Amount     decimal.Decimal
	CardLast4  string
	CapturedAt time.Time
}

// PaymentGateway captures card payments.
type PaymentGateway interface {
	Charge(ctx context.Context, charge Charge) (*Receipt, error)
}

// SimulatedGateway approves every card except DeclineTestCard after a fixed
// processing delay. It never talks to a real processor.
type SimulatedGateway struct {
	delay time.Duration
	now   func() time.Time
}

// NewSimulatedGateway builds the gateway; now may be nil.
func NewSimulatedGateway(delay time.Duration, now func() time.Time) *SimulatedGateway {
	if now == nil {
		now = time.Now
	}
	return &SimulatedGateway{delay: delay, now: now}
}

func (g *SimulatedGateway) Charge(ctx context.Context, charge Charge) (*Receipt, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	last4 := cardLast4(charge.Card.Number)
	if validation.NormalizeCardNumber(charge.Card.Number) == DeclineTestCard {
		return nil, apperrors.NewPaymentDeclined("card declined", map[string]any{
			"order_id":   charge.OrderID,
			"card_last4": last4,
		})
	}

	return &Receipt{
		PaymentID:  "pay_" + uuid.NewString(),
		Amount:     charge.Amount,
		CardLast4:  last4,
		CapturedAt: g.now().UTC(),
	}, nil
}

func cardLast4(number string) string {
	number = validation.NormalizeCardNumber(number)
	if len(number) > 4 {
		return number[len(number)-4:]
	}
	return number
}
