package privilege

import "strings"

// CommandLine is what gets handed to the operating system: a program, its
// parameters as a single string the way ShellExecute takes them, and the
// same parameters as an argv for launchers that exec directly.
type CommandLine struct {
	Executable string
	Parameters string
	Args       []string
}

func (c CommandLine) String() string {
	return c.Executable + " " + c.Parameters
}

// Launcher starts a command without waiting for it. Elevated asks for the
// platform's "run as administrator" equivalent.
type Launcher interface {
	Launch(cmd CommandLine, elevated bool) error
}

// QuotePowerShell wraps s in a single-quoted PowerShell string literal.
func QuotePowerShell(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
