package credit

import (
	"math"

	"github.com/ricardomaia/credo/internal/client"
)

// Score derives the creditworthiness score from net cash flow. The tier
// multiplier rewards premium clients; the result never goes below zero.
func Score(tier client.Tier, income, expenses float64) float64 {
	base := income - expenses

	switch tier {
	case client.TierVIP:
		base *= 1.2
	case client.TierPremium:
		base *= 1.1
	}

	return math.Max(0, base)
}
