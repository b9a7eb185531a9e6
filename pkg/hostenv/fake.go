package hostenv

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Output scripts one command's captured result in a FakeEnv.
type Output struct {
	Stdout string
	Stderr string
	Err    error
}

// FakeEnv is a scriptable Env double. The zero value behaves as an empty
// host: nothing on the search path, no files, every command fails to spawn.
// All invocations are recorded so tests can assert on side effects.
type FakeEnv struct {
	Executables     map[string]string // command name -> resolved path
	Files           map[string]string // path -> content (regular files)
	Outputs         map[string]Output // "name arg..." -> scripted captured output
	EnvVars         map[string]string
	Home            string
	InteractiveErrs map[string]error // "name arg..." -> exit error (absent = success)

	RanCommands    []string            // captured commands, in invocation order
	RanInteractive []string            // streamed commands, in invocation order
	Appended       map[string][]string // path -> appended lines
}

func key(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

func (f *FakeEnv) LookPath(name string) (string, error) {
	if path, ok := f.Executables[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

func (f *FakeEnv) Stat(path string) (os.FileInfo, error) {
	if content, ok := f.Files[path]; ok {
		return fakeFileInfo{name: path, size: int64(len(content))}, nil
	}
	return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
}

func (f *FakeEnv) ReadFile(path string) ([]byte, error) {
	if content, ok := f.Files[path]; ok {
		return []byte(content), nil
	}
	return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
}

func (f *FakeEnv) RunCommand(name string, args ...string) (string, string, error) {
	k := key(name, args)
	f.RanCommands = append(f.RanCommands, k)
	if out, ok := f.Outputs[k]; ok {
		return out.Stdout, out.Stderr, out.Err
	}
	return "", "", fmt.Errorf("fork/exec %s: no such file or directory", name)
}

func (f *FakeEnv) LookupEnv(envKey string) (string, bool) {
	v, ok := f.EnvVars[envKey]
	return v, ok
}

func (f *FakeEnv) HomeDir() (string, error) {
	if f.Home == "" {
		return "/home/student", nil
	}
	return f.Home, nil
}

func (f *FakeEnv) RunInteractive(name string, args ...string) error {
	k := key(name, args)
	f.RanInteractive = append(f.RanInteractive, k)
	return f.InteractiveErrs[k]
}

func (f *FakeEnv) SetEnv(envKey, value string) error {
	if f.EnvVars == nil {
		f.EnvVars = make(map[string]string)
	}
	f.EnvVars[envKey] = value
	return nil
}

func (f *FakeEnv) AppendFile(path, line string) error {
	if f.Appended == nil {
		f.Appended = make(map[string][]string)
	}
	f.Appended[path] = append(f.Appended[path], line)
	return nil
}

type fakeFileInfo struct {
	name string
	size int64
}

func (i fakeFileInfo) Name() string       { return i.name }
func (i fakeFileInfo) Size() int64        { return i.size }
func (i fakeFileInfo) Mode() os.FileMode  { return 0o755 }
func (i fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (i fakeFileInfo) IsDir() bool        { return false }
func (i fakeFileInfo) Sys() interface{}   { return nil }
