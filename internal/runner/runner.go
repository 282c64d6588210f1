// Package runner executes stored command lines through the platform shell.
//
// Command strings come from the local registry and are passed to the shell
// unmodified. The registry is trusted input; never load one supplied by
// another user.
package runner

import (
	"bytes"
	"os/exec"
	"runtime"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/kballard/go-shellquote"

	"github.com/glopal/services/internal/service"
)

var logger = loggo.GetLogger("services.runner")

// Output is the buffered result of one command run.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the command exited with status zero.
func (o Output) Success() bool {
	return o.ExitCode == 0
}

// Runner runs a single shell command line to completion.
type Runner interface {
	Run(command string) (Output, error)
}

// DefaultShell is the shell prefix used when none is configured.
func DefaultShell() string {
	if runtime.GOOS == "windows" {
		return "cmd /C"
	}
	return "/bin/sh -c"
}

// Shell runs commands as `<shell words...> <command>`.
type Shell struct {
	argv []string
}

// NewShell parses a shell prefix such as "/bin/bash -lc".
func NewShell(prefix string) (*Shell, error) {
	if prefix == "" {
		prefix = DefaultShell()
	}
	argv, err := shellquote.Split(prefix)
	if err != nil {
		return nil, errors.NewNotValid(err, "parsing shell "+prefix)
	}
	if len(argv) == 0 {
		return nil, errors.NotValidf("empty shell")
	}
	return &Shell{argv: argv}, nil
}

// Argv returns the full argument vector used for command.
func (s *Shell) Argv(command string) []string {
	argv := make([]string, 0, len(s.argv)+1)
	argv = append(argv, s.argv...)
	return append(argv, command)
}

// Run blocks until the command exits. A non-zero exit is reported through
// Output; only a failure to start the shell is returned as an error.
func (s *Shell) Run(command string) (Output, error) {
	argv := s.Argv(command)
	logger.Debugf("running %s", shellquote.Join(argv...))

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		return out, errors.WithType(errors.Annotatef(err, "starting %s", argv[0]), service.ErrSubprocess)
	}
	return out, nil
}
