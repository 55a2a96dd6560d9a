//go:build !windows

package privilege

// DefaultLauncher returns the launcher for this platform. elevate prefixes
// commands that need more privilege.
func DefaultLauncher(elevate string) Launcher {
	return ExecLauncher{Elevate: elevate}
}
