package client

import "time"

// Tier classifies a client for scoring and limit purposes.
type Tier string

const (
	TierStandard Tier = "STANDARD"
	TierPremium  Tier = "PREMIUM"
	TierVIP      Tier = "VIP"
)

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierStandard, TierPremium, TierVIP:
		return true
	}

	return false
}

// Client is a credit applicant. Read-only once constructed.
type Client struct {
	ID      string
	Name    string
	Blocked bool
	Tier    Tier
}

// Kind is the direction of a bank transaction.
type Kind string

const (
	KindCredit Kind = "CREDIT"
	KindDebit  Kind = "DEBIT"
)

// Transaction is a single entry in a client's bank history. Amount is a
// magnitude; the sign is implied by Kind.
type Transaction struct {
	Kind   Kind
	Amount float64
	Date   time.Time
}
