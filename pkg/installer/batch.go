package installer

// Batch accumulates package names across failed checks so one confirmation
// and one package-manager invocation can satisfy all of them. A package
// appears at most once no matter how many checks request it.
type Batch struct {
	packages   []string
	seen       map[string]bool
	checks     []string
	seenChecks map[string]bool
}

// NewBatch returns an empty batch.
func NewBatch() *Batch {
	return &Batch{
		seen:       make(map[string]bool),
		seenChecks: make(map[string]bool),
	}
}

// Add records that checkName needs pkg installed.
func (b *Batch) Add(checkName, pkg string) {
	if !b.seen[pkg] {
		b.seen[pkg] = true
		b.packages = append(b.packages, pkg)
	}
	if !b.seenChecks[checkName] {
		b.seenChecks[checkName] = true
		b.checks = append(b.checks, checkName)
	}
}

// Packages returns the deduplicated package names in first-request order.
func (b *Batch) Packages() []string {
	return b.packages
}

// Checks returns the names of the checks that contributed to the batch.
func (b *Batch) Checks() []string {
	return b.checks
}

// Len returns the number of distinct packages queued.
func (b *Batch) Len() int {
	return len(b.packages)
}
