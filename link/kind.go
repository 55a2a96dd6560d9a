package link

import "fmt"

// Kind identifies one way of creating a link.
type Kind int

const (
	AbsoluteSymlink Kind = iota
	RelativeSymlink
	HardLink
	DirectoryJunction
	InternetShortcut
	ShellShortcut
)

// Kinds is the menu order.
var Kinds = [...]Kind{
	AbsoluteSymlink,
	RelativeSymlink,
	HardLink,
	DirectoryJunction,
	InternetShortcut,
	ShellShortcut,
}

type metadata struct {
	name       string
	key        string
	icon       string
	powershell bool
	extension  string
}

var kinds = map[Kind]metadata{
	AbsoluteSymlink:   {"absolute-symlink", "AbsoluteSymlink", "shell32.dll,-51380", false, ""},
	RelativeSymlink:   {"relative-symlink", "RelativeSymlink", "shell32.dll,-16801", false, ""},
	HardLink:          {"hard-link", "HardLink", "shell32.dll,-1", false, ""},
	DirectoryJunction: {"junction", "DirectoryJunction", "shell32.dll,-4", false, ""},
	InternetShortcut:  {"internet-shortcut", "InternetShortcut", "shell32.dll,-14", true, ".url"},
	ShellShortcut:     {"shortcut", "ShellShortcut", "shell32.dll,-25", true, ".lnk"},
}

func (k Kind) String() string {
	if m, ok := kinds[k]; ok {
		return m.name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts the names printed by Kind.String.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if kinds[k].name == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("link: unknown kind %q", name)
}
