package credit

import "github.com/ricardomaia/credo/internal/client"

// LimitFunc computes a credit limit from income and score. Limit functions
// are stateless and safe to share across concurrent analyses.
type LimitFunc func(income, score float64) float64

// LimitFor selects the limit formula for a tier. Unknown tiers fall back to
// the standard formula, matching the closed tier set.
func LimitFor(tier client.Tier) LimitFunc {
	switch tier {
	case client.TierVIP:
		return vipLimit
	case client.TierPremium:
		return premiumLimit
	default:
		return standardLimit
	}
}

func standardLimit(_, score float64) float64 {
	return score * 0.5
}

func premiumLimit(income, score float64) float64 {
	return score*0.75 + income*0.1
}

func vipLimit(income, score float64) float64 {
	return score + income*0.2
}
