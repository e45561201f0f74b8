package credit

// Decision messages returned in LoanResult.Message.
const (
	MsgApproved       = "Approved"
	MsgScoreTooLow    = "Score too low"
	MsgBlockedOrFraud = "Client is blocked or fraudulent"
)

// LoanResult is the outcome of one analysis. Limit is meaningful only when
// Approved is true; a rejection is a normal result, not an error.
type LoanResult struct {
	Approved bool
	Message  string
	Limit    float64
}
