package privilege

import (
	"errors"

	"golang.org/x/sys/windows"
)

// ShellLauncher hands commands to ShellExecute with a hidden window, using
// the "runas" verb when elevated.
type ShellLauncher struct{}

func (ShellLauncher) Launch(cmd CommandLine, elevated bool) error {
	var verb *uint16
	if elevated {
		verb = windows.StringToUTF16Ptr("runas")
	}

	file, err := windows.UTF16PtrFromString(cmd.Executable)
	if err != nil {
		return err
	}

	params, err := windows.UTF16PtrFromString(cmd.Parameters)
	if err != nil {
		return err
	}

	err = windows.ShellExecute(0, verb, file, params, nil, windows.SW_HIDE)
	if errors.Is(err, windows.ERROR_CANCELLED) {
		// The user declined the elevation prompt. Callers cannot tell this
		// apart from a launched command.
		return nil
	}

	return err
}

// DefaultLauncher returns the launcher for this platform. elevate is unused
// on Windows.
func DefaultLauncher(elevate string) Launcher {
	return ShellLauncher{}
}
