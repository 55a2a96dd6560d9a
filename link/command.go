package link

import (
	"fmt"
	"strings"

	"github.com/jamesbehr/mklink/filesystem"
	"github.com/jamesbehr/mklink/privilege"
)

// Executables name the programs that run the generated commands.
type Executables struct {
	Shell      string
	PowerShell string
}

var DefaultExecutables = Executables{Shell: "cmd", PowerShell: "powershell"}

// commandLine builds the command that creates a link of the given kind at
// link. Shell commands go through `cmd /C`, shortcuts through PowerShell.
func commandLine(kind Kind, req Request, link filesystem.Path, exe Executables) (privilege.CommandLine, error) {
	switch kind {
	case AbsoluteSymlink:
		return shell(exe, directoryFlag(req.Target), link.String(), req.Target.String()), nil
	case RelativeSymlink:
		rel, err := req.Target.Rel(req.Directory)
		if err != nil {
			return privilege.CommandLine{}, err
		}

		return shell(exe, directoryFlag(req.Target), link.String(), rel.String()), nil
	case HardLink:
		return shell(exe, []string{"/H"}, link.String(), req.Target.String()), nil
	case DirectoryJunction:
		return shell(exe, []string{"/J"}, link.String(), req.Target.String()), nil
	case InternetShortcut:
		return powershell(exe, "New-Item %s -Value %s",
			privilege.QuotePowerShell(link.String()),
			privilege.QuotePowerShell("[InternetShortcut]\nURL = "+req.Target.String()+"\n"),
		), nil
	case ShellShortcut:
		return powershell(exe,
			"$shortcut = (New-Object -ComObject WScript.Shell).CreateShortcut(%s); $shortcut.TargetPath = %s; $shortcut.Save();",
			privilege.QuotePowerShell(link.String()),
			privilege.QuotePowerShell(req.Target.String()),
		), nil
	}

	return privilege.CommandLine{}, fmt.Errorf("link: no command for %s", kind)
}

func directoryFlag(target filesystem.Path) []string {
	if target.IsDir() {
		return []string{"/D"}
	}

	return nil
}

// shell runs mklink through cmd. In Parameters the link and its target are
// always double quoted.
func shell(exe Executables, flags []string, link, target string) privilege.CommandLine {
	params := append([]string{"/C", "mklink"}, flags...)
	params = append(params, `"`+link+`"`, `"`+target+`"`)

	argv := append([]string{"/C", "mklink"}, flags...)
	argv = append(argv, link, target)

	return privilege.CommandLine{
		Executable: exe.Shell,
		Parameters: strings.Join(params, " "),
		Args:       argv,
	}
}

// powershell keeps the script as a single argument so its own quoting
// survives.
func powershell(exe Executables, format string, args ...any) privilege.CommandLine {
	script := fmt.Sprintf(format, args...)
	return privilege.CommandLine{
		Executable: exe.PowerShell,
		Parameters: "-Command " + script,
		Args:       []string{"-Command", script},
	}
}
