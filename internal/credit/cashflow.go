package credit

import (
	"time"

	"github.com/ricardomaia/credo/internal/client"
)

// cashflowWindowMonths is the trailing window considered when aggregating a
// client's history.
const cashflowWindowMonths = 3

// Cashflow sums the credits and debits dated strictly after the trailing
// window cutoff (reference minus three months). A transaction exactly on the
// cutoff day is excluded.
func Cashflow(txs []client.Transaction, reference time.Time) (income, expenses float64) {
	cutoff := reference.AddDate(0, -cashflowWindowMonths, 0)

	for _, tx := range txs {
		if !tx.Date.After(cutoff) {
			continue
		}

		switch tx.Kind {
		case client.KindCredit:
			income += tx.Amount
		case client.KindDebit:
			expenses += tx.Amount
		}
	}

	return income, expenses
}
