package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jamesbehr/mklink/config"
	"github.com/jamesbehr/mklink/link"
	"github.com/jamesbehr/mklink/privilege"
	"github.com/jamesbehr/mklink/provider"
	"github.com/jamesbehr/mklink/resources"
)

// pageSize is how many strategies are fetched per call, like a menu host
// filling its entries.
const pageSize = 3

var errNothingToLink = errors.New("nothing to link: copy exactly one file or folder, or pass --target")

// launcher is replaced in tests.
var launcher = func(cfg *config.Config) privilege.Launcher {
	return privilege.DefaultLauncher(cfg.Elevation.Command)
}

func newProvider(cfg *config.Config) (*provider.Provider, error) {
	locale := cfg.Locale
	if locale == "" {
		locale = resources.LocaleFromEnv()
	}

	catalog, err := resources.Load(locale)
	if err != nil {
		return nil, err
	}

	factory := &link.Factory{
		Strings: catalog,
		Executables: link.Executables{
			Shell:      cfg.Executables.Shell,
			PowerShell: cfg.Executables.PowerShell,
		},
		Creator: privilege.NewCreator(launcher(cfg)),
	}

	var clip provider.Clipboard = provider.SystemClipboard{}
	if target != "" {
		abs, err := filepath.Abs(target)
		if err != nil {
			return nil, err
		}

		clip = provider.Items{abs}
	}

	p := provider.New(factory, clip)
	p.Attach(provider.Folder(directory))
	return p, nil
}

// subCommands resolves the context and returns the provider with a fresh
// enumerator.
func subCommands() (*provider.Provider, *link.Enumerator, error) {
	p, err := newProvider(settings)
	if err != nil {
		return nil, nil, err
	}

	if !p.IsApplicable() {
		return nil, nil, errNothingToLink
	}

	e, err := p.SubCommands()
	if err != nil {
		return nil, nil, err
	}

	return p, e, nil
}

func collect(e *link.Enumerator) []link.Strategy {
	var all []link.Strategy
	for {
		page, full := e.Next(pageSize)
		all = append(all, page...)
		if !full {
			return all
		}
	}
}

// run plans or invokes s and returns a line describing what happened.
func run(p *provider.Provider, s link.Strategy) (string, error) {
	if s.State() != link.Enabled {
		return "", fmt.Errorf("%s: %w: %s", p.ErrorTitle(), link.ErrNotApplicable, s.Kind)
	}

	if dryRun {
		plan, err := s.Plan()
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%s\n%s", plan.Link, plan.Command), nil
	}

	path, err := s.Invoke()
	if err != nil {
		return "", fmt.Errorf("%s: %w", p.ErrorTitle(), err)
	}

	return fmt.Sprintf("requested %s -> %s", path, s.Request.Target), nil
}
