package link

import "github.com/jamesbehr/mklink/filesystem"

// State tells a menu whether a strategy can be used.
type State int

const (
	Enabled State = iota
	Disabled
)

func (s State) String() string {
	if s == Enabled {
		return "enabled"
	}

	return "disabled"
}

// Request is the folder a link goes into and the thing it points to. Both
// are absolute.
type Request struct {
	Directory filesystem.Path
	Target    filesystem.Path
}

// Applicability decides whether kind can link req.Target from
// req.Directory. It looks at the filesystem to tell files from directories.
func Applicability(kind Kind, req Request) State {
	switch kind {
	case RelativeSymlink:
		return when(req.Directory.SameRoot(req.Target))
	case HardLink:
		return when(!req.Target.IsDir() && req.Directory.SameRoot(req.Target))
	case DirectoryJunction:
		return when(req.Target.IsDir())
	default:
		return Enabled
	}
}

func when(ok bool) State {
	if ok {
		return Enabled
	}

	return Disabled
}
