package check

// Prober is the read-only predicate portion of a check. It inspects host
// state (search path, filesystem, subprocess output) and must not modify
// anything. Absence of a capability is a normal Fail result, not an error.
//
// Implementations:
//   - probe.Executable: command resolves on the search path
//   - probe.Path: a fixed or home-relative path exists
//   - probe.OutputMatch: read-only command output matches a token or version
//   - probe.FileMatch: file content matches a pattern
//   - probe.Member: identifier appears in an enumeration command's output
type Prober interface {
	Probe() Result
}

// Fixer is the consent-gated corrective portion of a check. Apply is only
// called after the user confirmed the command returned by Describe.
type Fixer interface {
	// Describe returns the exact command Apply would run, shown to the
	// user before asking for confirmation.
	Describe() string
	Apply() Remediation
}

// Check pairs a probe with an optional guided fix. Checks are immutable
// once constructed and evaluated exactly once, in registration order.
type Check struct {
	Name        string
	Description string // extra context printed when the check fails
	Prober      Prober
	Fixer       Fixer  // nil when no automatic fix exists
	Package     string // non-empty: fix by adding this package to the shared install batch
	ManualHint  string // manual fix suggestion when no fix runs or the fix fails
}
