// Package runner executes an ordered checklist, tracks the run counters,
// and selects the final summary. The run is strictly sequential: check
// i+1 never starts before check i's probe and remediation have finished.
package runner

import (
	"errors"

	"github.com/kyukibug/eecs280-setup/pkg/check"
	"github.com/kyukibug/eecs280-setup/pkg/hostenv"
	"github.com/kyukibug/eecs280-setup/pkg/installer"
	"github.com/kyukibug/eecs280-setup/pkg/output"
	"github.com/kyukibug/eecs280-setup/pkg/platform"
	"github.com/kyukibug/eecs280-setup/pkg/prompt"
)

type state int

const (
	stateNotStarted state = iota
	stateRunning
	stateSummarized
	stateDone
)

// ErrAlreadyRun is returned when Run is called on a finished Runner.
var ErrAlreadyRun = errors.New("runner: already run")

// Runner owns one ordered checklist and the two run-wide counters.
type Runner struct {
	Target    platform.Platform
	Checks    []check.Check
	Installer installer.Installer
	Batch     *installer.Batch
	Prompter  prompt.Prompter
	Printer   *output.Printer
	Env       hostenv.Env
	CheckOnly bool

	state   state
	summary check.RunSummary
}

// Run performs the platform gate, every check in order, the deferred
// package batch, and the summary. A declined gate is a clean early exit:
// zero checks performed, no summary printed, nil error.
func (r *Runner) Run() error {
	if r.state != stateNotStarted {
		return ErrAlreadyRun
	}

	if !r.gate() {
		r.state = stateDone
		return nil
	}

	r.state = stateRunning
	for _, c := range r.Checks {
		r.evaluate(c)
	}
	r.flushBatch()

	r.state = stateSummarized
	r.Printer.Summary(r.summary)
	r.state = stateDone
	return nil
}

// Summary returns the counters accumulated so far.
func (r *Runner) Summary() check.RunSummary {
	return r.summary
}

// gate verifies the host matches the target platform. A mismatch degrades
// to a confirmation prompt; declining aborts the run cleanly. In check-only
// mode the mismatch is a warning and the run proceeds, since a report-only
// run must never prompt.
func (r *Runner) gate() bool {
	host := platform.Detect(r.Env)
	if host == r.Target {
		return true
	}
	r.Printer.Warn("this machine looks like %s, but the %s checklist was requested", host, r.Target)
	if r.CheckOnly {
		return true
	}
	return r.Prompter.Confirm("Continue anyway?")
}

func (r *Runner) evaluate(c check.Check) {
	result := c.Prober.Probe()
	result.Name = c.Name // report under the registered name, not the probe's
	r.Printer.Result(result)
	if result.OK() {
		return
	}

	r.summary.IssuesFound++
	if c.Description != "" {
		r.Printer.Detail(c.Description)
	}

	switch {
	case r.CheckOnly:
		r.manualHint(c)
	case c.Package != "" && r.Batch != nil:
		r.Batch.Add(c.Name, c.Package)
		r.Printer.Info("queued %s for a single %s install at the end of the run", c.Package, r.Installer.Name())
	case c.Fixer != nil:
		r.remediate(c)
	default:
		r.manualHint(c)
	}
}

func (r *Runner) remediate(c check.Check) {
	r.Printer.Info("this can be fixed by running: %s", c.Fixer.Describe())
	if !r.Prompter.Confirm("Run it now?") {
		r.Printer.Info("skipped; run the command above yourself when ready")
		return
	}

	outcome := c.Fixer.Apply()
	switch outcome.Outcome {
	case check.OutcomeApplied:
		r.summary.FixesApplied++
	case check.OutcomeDeclined:
		r.Printer.Info("skipped")
	case check.OutcomeFailed:
		r.Printer.Warn("fix failed: %s", outcome.Reason)
		r.manualHint(c)
	}
}

// flushBatch asks once and installs once for every package queued during
// the run. A successful install counts one fix per contributing check.
func (r *Runner) flushBatch() {
	if r.Batch == nil || r.Batch.Len() == 0 {
		return
	}

	names := r.Batch.Packages()
	r.Printer.Info("%d missing package(s) can be installed in one step: %s",
		len(names), r.Installer.InstallCommand(names))
	if !r.Prompter.Confirm("Install them now?") {
		r.Printer.Info("skipped; run the command above yourself when ready")
		return
	}

	outcome := r.Installer.InstallPackages(names)
	if outcome.Outcome == check.OutcomeApplied {
		r.summary.FixesApplied += len(r.Batch.Checks())
		return
	}
	r.Printer.Warn("install failed: %s", outcome.Reason)
}

func (r *Runner) manualHint(c check.Check) {
	if c.ManualHint != "" {
		r.Printer.Info("to fix manually: %s", c.ManualHint)
	}
}
