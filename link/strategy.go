package link

import (
	"errors"
	"fmt"

	"github.com/jamesbehr/mklink/filesystem"
	"github.com/jamesbehr/mklink/privilege"
)

var ErrNotApplicable = errors.New("link: strategy not applicable")

// Localizer supplies human readable strings by key.
type Localizer interface {
	String(key string) string
}

// Strategy is one entry of the link menu, bound to a request. Its metadata
// is fixed when it is made.
type Strategy struct {
	Kind    Kind
	Request Request

	Icon  string
	Title string
	Tip   string
	// Executable is the program the command runs under, shown by menu hosts
	// next to the icon.
	Executable string
	Extension  string

	executables Executables
	creator     *privilege.Creator
}

// Plan is what invoking a strategy would do.
type Plan struct {
	Link    filesystem.Path
	Command privilege.CommandLine
}

func (s Strategy) State() State {
	return Applicability(s.Kind, s.Request)
}

// Plan resolves a free link name and the command that creates the link
// there. It does not check applicability.
func (s Strategy) Plan() (Plan, error) {
	link, err := s.Request.Directory.LinkName(s.Request.Target, s.Extension)
	if err != nil {
		return Plan{}, fmt.Errorf("link: pick name in %s: %w", s.Request.Directory, err)
	}

	cmd, err := commandLine(s.Kind, s.Request, link, s.executables)
	if err != nil {
		return Plan{}, err
	}

	return Plan{Link: link, Command: cmd}, nil
}

// Invoke creates the link, escalating once if access is denied. It returns
// the link path that was requested.
func (s Strategy) Invoke() (filesystem.Path, error) {
	if s.State() != Enabled {
		return "", fmt.Errorf("%w: %s for %s", ErrNotApplicable, s.Kind, s.Request.Target)
	}

	if s.creator == nil {
		return "", fmt.Errorf("link: %s has no creator", s.Kind)
	}

	plan, err := s.Plan()
	if err != nil {
		return "", err
	}

	var extra privilege.Probe
	if s.Kind == HardLink {
		// Hard links need write access to the file itself.
		extra = s.Request.Target.ProbeWrite
	}

	if err := s.creator.Create(plan.Link, plan.Command, extra); err != nil {
		return "", err
	}

	return plan.Link, nil
}

// Factory makes strategies that share a creator and string table.
type Factory struct {
	Strings     Localizer
	Executables Executables
	Creator     *privilege.Creator
}

func (f *Factory) New(kind Kind, req Request) Strategy {
	m := kinds[kind]

	exe := f.Executables
	if exe.Shell == "" {
		exe.Shell = DefaultExecutables.Shell
	}

	if exe.PowerShell == "" {
		exe.PowerShell = DefaultExecutables.PowerShell
	}

	s := Strategy{
		Kind:        kind,
		Request:     req,
		Icon:        m.icon,
		Title:       m.key + ".title",
		Tip:         m.key + ".tip",
		Executable:  exe.Shell,
		Extension:   m.extension,
		executables: exe,
		creator:     f.Creator,
	}

	if m.powershell {
		s.Executable = exe.PowerShell
	}

	if f.Strings != nil {
		s.Title = f.Strings.String(s.Title)
		s.Tip = f.Strings.String(s.Tip)
	}

	return s
}

// Enumerate returns an Enumerator over every kind for req.
func (f *Factory) Enumerate(req Request) *Enumerator {
	return &Enumerator{factory: f, request: req}
}
