package privilege

import (
	"fmt"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// ExecLauncher starts commands with os/exec. Args are passed through as
// given; a CommandLine without Args has its Parameters split with POSIX
// shell quoting rules. Elevated commands are prefixed with Elevate, for
// instance "sudo".
type ExecLauncher struct {
	Elevate string

	// start is swapped out in tests.
	start func(cmd *exec.Cmd) error
}

func (l ExecLauncher) Command(cmd CommandLine, elevated bool) (*exec.Cmd, error) {
	args := append([]string(nil), cmd.Args...)
	if cmd.Args == nil {
		var err error
		args, err = shellquote.Split(cmd.Parameters)
		if err != nil {
			return nil, fmt.Errorf("split parameters: %w", err)
		}
	}

	name := cmd.Executable
	if elevated {
		prefix, err := shellquote.Split(l.Elevate)
		if err != nil {
			return nil, fmt.Errorf("split elevation command: %w", err)
		}

		if len(prefix) == 0 {
			return nil, fmt.Errorf("no elevation command configured for %s", cmd.Executable)
		}

		args = append(append(prefix[1:], name), args...)
		name = prefix[0]
	}

	return exec.Command(name, args...), nil
}

func (l ExecLauncher) Launch(cmd CommandLine, elevated bool) error {
	c, err := l.Command(cmd, elevated)
	if err != nil {
		return err
	}

	start := l.start
	if start == nil {
		start = startDetached
	}

	return start(c)
}

func startDetached(c *exec.Cmd) error {
	if err := c.Start(); err != nil {
		return err
	}

	return c.Process.Release()
}
