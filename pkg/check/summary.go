package check

// RunSummary aggregates a completed run. Both counters only ever increase
// during a run.
type RunSummary struct {
	IssuesFound  int
	FixesApplied int
}

// SummaryCategory is the final three-way classification of a run.
type SummaryCategory int

const (
	// AllClear: every check passed.
	AllClear SummaryCategory = iota
	// FixesWereApplied: at least one fix ran; a re-run should confirm it
	// took. This category wins even when some issues remain unfixed,
	// since the re-run will report whatever is still broken.
	FixesWereApplied
	// IssuesRemain: problems were found and nothing was fixed.
	IssuesRemain
)

// Category selects the summary message for the final counters.
func (s RunSummary) Category() SummaryCategory {
	switch {
	case s.IssuesFound == 0:
		return AllClear
	case s.FixesApplied > 0:
		return FixesWereApplied
	default:
		return IssuesRemain
	}
}
