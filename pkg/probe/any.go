package probe

import (
	"github.com/kyukibug/eecs280-setup/pkg/check"
)

// Any passes when any of its probes passes. It reports the first passing
// result under its own name; when everything fails, the failure details of
// every alternative are merged so the user sees all the locations tried.
type Any struct {
	Name   string
	Probes []check.Prober
}

// Probe runs each alternative in order, stopping at the first pass.
func (p *Any) Probe() check.Result {
	merged := check.Result{Name: p.Name}

	for _, sub := range p.Probes {
		r := sub.Probe()
		if r.OK() {
			r.Name = p.Name
			return r
		}
		merged.Details = append(merged.Details, r.Details...)
		if merged.Err == nil {
			merged.Err = r.Err
		}
	}

	merged.Status = check.StatusFail
	return merged
}
