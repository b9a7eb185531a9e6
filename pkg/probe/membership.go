package probe

import (
	"fmt"
	"strings"

	"github.com/kyukibug/eecs280-setup/pkg/check"
	"github.com/kyukibug/eecs280-setup/pkg/hostenv"
)

// Source enumerates installed identifiers by running a command at most
// once. The line-split output is cached, as is any spawn error, so N
// member probes against the same source cost a single subprocess.
type Source struct {
	Command string
	Args    []string
	Env     hostenv.Env

	loaded bool
	have   map[string]bool
	err    error
}

// Has reports whether id appeared in the enumeration output.
func (s *Source) Has(id string) (bool, error) {
	if !s.loaded {
		s.loaded = true
		s.have, s.err = s.enumerate()
	}
	if s.err != nil {
		return false, s.err
	}
	return s.have[id], nil
}

func (s *Source) enumerate() (map[string]bool, error) {
	stdout, stderr, err := s.Env.RunCommand(s.Command, s.Args...)
	if err != nil {
		if line := firstLine(stderr); line != "" {
			return nil, fmt.Errorf("%s failed: %v (%s)", s.Command, err, line)
		}
		return nil, fmt.Errorf("%s failed: %v", s.Command, err)
	}

	have := make(map[string]bool)
	for _, line := range strings.Split(stdout, "\n") {
		if id := strings.TrimSpace(line); id != "" {
			have[id] = true
		}
	}
	return have, nil
}

// Member checks one required identifier against a shared Source. A source
// spawn failure makes every member fail with the spawn diagnostic.
type Member struct {
	ID     string
	Source *Source
	Detail func(id string) string // optional extra detail when installed
}

// Probe runs the membership probe.
func (p *Member) Probe() check.Result {
	result := check.Result{Name: p.ID}

	ok, err := p.Source.Has(p.ID)
	if err != nil {
		return result.Failf("cannot enumerate installed: %v", err)
	}
	if !ok {
		return result.Failf("not installed")
	}

	if p.Detail != nil {
		if d := p.Detail(p.ID); d != "" {
			result.AddDetail(d)
		}
	}
	result.Status = check.StatusOK
	return result
}
