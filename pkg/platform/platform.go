// Package platform identifies which supported host the tool is running on.
package platform

import (
	"strings"

	"github.com/kyukibug/eecs280-setup/pkg/hostenv"
)

// Platform is a supported host platform.
type Platform string

const (
	MacOS   Platform = "macOS"
	WSL     Platform = "WSL"
	Unknown Platform = "unknown"
)

func (p Platform) String() string {
	return string(p)
}

// Detect inspects cheap, read-only host signatures: the kernel name for
// macOS and the Microsoft marker in /proc/version for WSL.
func Detect(env hostenv.Env) Platform {
	if stdout, _, err := env.RunCommand("uname", "-s"); err == nil {
		if strings.TrimSpace(stdout) == "Darwin" {
			return MacOS
		}
	}
	if data, err := env.ReadFile("/proc/version"); err == nil {
		if strings.Contains(strings.ToLower(string(data)), "microsoft") {
			return WSL
		}
	}
	return Unknown
}
