package memory

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// PaymentRecord is one charge or refund accepted by the gateway.
type PaymentRecord struct {
	CustomerID string
	Amount     float64
	Kind       string
}

const (
	paymentKindCharge = "CHARGE"
	paymentKindRefund = "REFUND"
)

// PaymentGateway implements ports.PaymentGateway with an in-process ledger.
// Every customer is considered to have a valid payment method; charges and
// refunds succeed for any positive amount and are recorded for inspection.
type PaymentGateway struct {
	mu      sync.Mutex
	records []PaymentRecord
	logger  zerolog.Logger
}

// NewPaymentGateway creates an in-memory payment gateway.
func NewPaymentGateway(logger zerolog.Logger) *PaymentGateway {
	return &PaymentGateway{
		logger: logger.With().Str("component", "payment_gateway").Logger(),
	}
}

// VerifyMethod reports that the customer has a usable payment method.
func (g *PaymentGateway) VerifyMethod(_ context.Context, customerID string) bool {
	g.logger.Debug().Str("customer_id", customerID).Msg("payment method verified")
	return customerID != ""
}

// Charge records a debit for the customer. Non-positive amounts are declined.
func (g *PaymentGateway) Charge(_ context.Context, customerID string, amount float64) bool {
	if amount <= 0 {
		g.logger.Warn().
			Str("customer_id", customerID).
			Float64("amount", amount).
			Msg("charge declined: non-positive amount")
		return false
	}

	g.record(PaymentRecord{CustomerID: customerID, Amount: amount, Kind: paymentKindCharge})
	g.logger.Info().
		Str("customer_id", customerID).
		Float64("amount", amount).
		Msg("payment charged")
	return true
}

// Refund records a credit for the customer. Non-positive amounts are declined.
func (g *PaymentGateway) Refund(_ context.Context, customerID string, amount float64) bool {
	if amount <= 0 {
		g.logger.Warn().
			Str("customer_id", customerID).
			Float64("amount", amount).
			Msg("refund declined: non-positive amount")
		return false
	}

	g.record(PaymentRecord{CustomerID: customerID, Amount: amount, Kind: paymentKindRefund})
	g.logger.Info().
		Str("customer_id", customerID).
		Float64("amount", amount).
		Msg("payment refunded")
	return true
}

// Records returns a copy of the ledger, in the order operations were accepted.
func (g *PaymentGateway) Records() []PaymentRecord {
	g.mu.Lock()
	defer g.mu.Unlock()

	records := make([]PaymentRecord, len(g.records))
	copy(records, g.records)
	return records
}

func (g *PaymentGateway) record(entry PaymentRecord) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.records = append(g.records, entry)
}
