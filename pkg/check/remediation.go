package check

import "fmt"

// Outcome classifies what happened to a check's guided fix.
type Outcome string

const (
	OutcomeApplied  Outcome = "APPLIED"
	OutcomeDeclined Outcome = "DECLINED"
	OutcomeFailed   Outcome = "FAILED"
)

// Remediation is the result of attempting (or declining) a guided fix.
// A failed fix never aborts the run; it only fails to count as applied.
type Remediation struct {
	Outcome Outcome
	Reason  string // diagnostic text, set for OutcomeFailed
}

// Applied reports a fix that ran to completion.
func Applied() Remediation {
	return Remediation{Outcome: OutcomeApplied}
}

// Declined reports a fix the user turned down. No side effects occurred.
func Declined() Remediation {
	return Remediation{Outcome: OutcomeDeclined}
}

// Failedf reports a fix whose subprocess failed to spawn or exited non-zero.
func Failedf(format string, args ...interface{}) Remediation {
	return Remediation{Outcome: OutcomeFailed, Reason: fmt.Sprintf(format, args...)}
}
