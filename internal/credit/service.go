package credit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ricardomaia/credo/internal/client"
	"github.com/ricardomaia/credo/internal/metrics"
)

// ErrInvalidInput is returned when a required argument is missing. No
// computation happens in that case.
var ErrInvalidInput = errors.New("invalid input")

// approvalThreshold is the minimum score for a loan to be considered at all.
const approvalThreshold = 300

//go:generate mockgen -source=service.go -destination=fraud_mock.go -package=credit
type FraudGate interface {
	IsFraudulent(ctx context.Context, clientID string) (bool, error)
}

// Analyzer turns a client and their bank history into a loan decision.
type Analyzer struct {
	fraud FraudGate
	log   *slog.Logger
}

func NewAnalyzer(fraud FraudGate, log *slog.Logger) *Analyzer {
	return &Analyzer{
		fraud: fraud,
		log:   log,
	}
}

// AnalyzeClient runs the decision pipeline: cash flow over the trailing
// window, score, score gate, blocked/fraud gate, tier limit. It always
// produces a LoanResult for valid input; a rejection is not an error.
func (a *Analyzer) AnalyzeClient(ctx context.Context, c *client.Client, txs []client.Transaction, analysisDate time.Time) (*LoanResult, error) {
	if c == nil || txs == nil || analysisDate.IsZero() {
		return nil, ErrInvalidInput
	}

	log := a.log.With(slog.String("client_id", c.ID))

	income, expenses := Cashflow(txs, analysisDate)
	score := Score(c.Tier, income, expenses)

	if score < approvalThreshold {
		log.Info("loan rejected", slog.String("reason", MsgScoreTooLow), slog.Float64("score", score))
		metrics.CreditDecisions.WithLabelValues("rejected").Inc()

		return &LoanResult{Approved: false, Message: MsgScoreTooLow}, nil
	}

	// Either flag alone disqualifies; skipping the fraud call for an
	// already-blocked client is an optimization only.
	blocked := c.Blocked

	if !blocked {
		fraudulent, err := a.fraud.IsFraudulent(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("fraud check for client %s: %w", c.ID, err)
		}

		blocked = fraudulent
	}

	if blocked {
		log.Info("loan rejected", slog.String("reason", MsgBlockedOrFraud))
		metrics.CreditDecisions.WithLabelValues("rejected").Inc()

		return &LoanResult{Approved: false, Message: MsgBlockedOrFraud}, nil
	}

	limit := LimitFor(c.Tier)(income, score)

	log.Info("loan approved", slog.Float64("score", score), slog.Float64("limit", limit))
	metrics.CreditDecisions.WithLabelValues("approved").Inc()

	return &LoanResult{Approved: true, Message: MsgApproved, Limit: limit}, nil
}
