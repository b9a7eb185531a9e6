// Package hostenv abstracts host interrogation and mutation so probes and
// fixes can be driven against a fake host in tests.
package hostenv

import (
	"bytes"
	"os"
	"os/exec"
)

// Env is the tool's only window onto the host. Probes use the read-only
// surface; fixes additionally use RunInteractive, SetEnv, and AppendFile.
type Env interface {
	// LookPath resolves a command name through the executable search path.
	LookPath(name string) (string, error)
	// Stat reports on a filesystem path.
	Stat(path string) (os.FileInfo, error)
	// ReadFile reads a whole file.
	ReadFile(path string) ([]byte, error)
	// RunCommand runs a read-only command with captured output.
	RunCommand(name string, args ...string) (stdout, stderr string, err error)
	// LookupEnv reads a process environment variable.
	LookupEnv(key string) (string, bool)
	// HomeDir returns the current user's home directory.
	HomeDir() (string, error)

	// RunInteractive runs a command with its stdio attached to the
	// process's own streams, so installer output is seen live.
	RunInteractive(name string, args ...string) error
	// SetEnv updates the in-process environment, e.g. to make a freshly
	// installed package manager resolvable for later checks.
	SetEnv(key, value string) error
	// AppendFile appends a line to a file, creating it if needed.
	AppendFile(path, line string) error
}

// RealEnv implements Env against the actual host.
type RealEnv struct{}

func (*RealEnv) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (*RealEnv) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (*RealEnv) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path) //nolint:gosec // paths are fixed probe targets
}

func (*RealEnv) RunCommand(name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err := cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

func (*RealEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (*RealEnv) HomeDir() (string, error) {
	return os.UserHomeDir()
}

func (*RealEnv) RunInteractive(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	return cmd.Run()
}

func (*RealEnv) SetEnv(key, value string) error {
	return os.Setenv(key, value)
}

func (*RealEnv) AppendFile(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // shell profile
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
