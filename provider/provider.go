package provider

import (
	"errors"

	"github.com/jamesbehr/mklink/filesystem"
	"github.com/jamesbehr/mklink/link"
	"github.com/jamesbehr/mklink/logging"
	"github.com/rs/zerolog"
)

var ErrNoContext = errors.New("provider: no directory or target")

// Icon is shown next to the parent menu entry.
const Icon = "shell32.dll,-16769"

// Site reports the folder the user is looking at.
type Site interface {
	CurrentFolder() (string, error)
}

// Clipboard lists the items the user has copied.
type Clipboard interface {
	Items() ([]string, error)
}

// Provider is the parent "create link" entry. It tracks the directory from
// its site and the target from the clipboard and hands out the strategies
// for that pair.
type Provider struct {
	factory   *link.Factory
	clipboard Clipboard
	site      Site

	directory filesystem.Path
	target    filesystem.Path

	logger zerolog.Logger
}

func New(factory *link.Factory, clipboard Clipboard) *Provider {
	return &Provider{
		factory:   factory,
		clipboard: clipboard,
		logger:    logging.GetLogger("provider"),
	}
}

// Attach resolves the current folder from site. A nil site, or one that
// cannot tell, leaves the provider without a directory.
func (p *Provider) Attach(site Site) {
	p.site = site
	p.directory = ""

	if site == nil {
		return
	}

	folder, err := site.CurrentFolder()
	if err != nil {
		p.logger.Warn().Err(err).Msg("Failed to resolve current folder")
		return
	}

	dir, err := filesystem.ParsePath(folder)
	if err != nil {
		p.logger.Warn().Err(err).Msg("Current folder is not usable")
		return
	}

	p.directory = dir
}

// Site returns what was last passed to Attach, for menu hosts that query
// their site back.
func (p *Provider) Site() Site {
	return p.site
}

// IsApplicable reads the clipboard again and reports whether there is a
// directory and exactly one absolute target that exists. The target is remembered for
// SubCommands.
func (p *Provider) IsApplicable() bool {
	p.target = ""

	if p.directory == "" {
		return false
	}

	items, err := p.clipboard.Items()
	if err != nil {
		p.logger.Debug().Err(err).Msg("Failed to read clipboard")
		return false
	}

	if len(items) != 1 {
		p.logger.Debug().Int("items", len(items)).Msg("Need exactly one copied item")
		return false
	}

	target, err := filesystem.ParsePath(items[0])
	if err != nil {
		p.logger.Debug().Err(err).Msg("Copied item is not a path")
		return false
	}

	exists, err := target.Exists()
	if err != nil || !exists {
		p.logger.Debug().Err(err).Str("target", target.String()).Msg("Copied item does not exist")
		return false
	}

	p.target = target
	return true
}

// SubCommands returns an enumerator over the strategies for the current
// directory and target. Call IsApplicable first.
func (p *Provider) SubCommands() (*link.Enumerator, error) {
	if p.directory == "" || p.target == "" {
		return nil, ErrNoContext
	}

	return p.factory.Enumerate(p.Request()), nil
}

func (p *Provider) Request() link.Request {
	return link.Request{Directory: p.directory, Target: p.target}
}

// HasSubCommands tells menu hosts to expand the entry. It is always true;
// the parent entry does nothing by itself.
func (p *Provider) HasSubCommands() bool {
	return true
}

func (p *Provider) Title() string {
	return p.lookup("Mklink.title")
}

func (p *Provider) Tip() string {
	return p.lookup("Mklink.tip")
}

// ErrorTitle heads error reports shown to the user.
func (p *Provider) ErrorTitle() string {
	return p.lookup("Mklink.error")
}

func (p *Provider) Icon() string {
	return Icon
}

func (p *Provider) lookup(key string) string {
	if p.factory.Strings == nil {
		return key
	}

	return p.factory.Strings.String(key)
}
