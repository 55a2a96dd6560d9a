package privilege

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/jamesbehr/mklink/filesystem"
	"github.com/jamesbehr/mklink/logging"
	"github.com/rs/zerolog"
)

var ErrLinkExists = errors.New("privilege: link already exists")

// ProbeResult is the outcome of checking whether a link can be created
// without elevation.
type ProbeResult int

const (
	Granted ProbeResult = iota
	DeniedRetryable
	DeniedFatal
)

func (r ProbeResult) String() string {
	switch r {
	case Granted:
		return "granted"
	case DeniedRetryable:
		return "denied-retryable"
	case DeniedFatal:
		return "denied-fatal"
	}

	return fmt.Sprintf("ProbeResult(%d)", int(r))
}

// Classify maps a probe error to a ProbeResult. Only access denied is worth
// retrying with elevation.
func Classify(err error) ProbeResult {
	switch {
	case err == nil:
		return Granted
	case errors.Is(err, fs.ErrPermission):
		return DeniedRetryable
	default:
		return DeniedFatal
	}
}

// Probe checks one access requirement, returning the error the real
// operation would hit.
type Probe func() error

// Creator runs a link creation command with the least privilege that works.
type Creator struct {
	Launcher Launcher

	// CanCreate probes the link path itself. It defaults to
	// filesystem.Path.ProbeCreate.
	CanCreate func(filesystem.Path) error

	logger zerolog.Logger
}

func NewCreator(launcher Launcher) *Creator {
	return &Creator{
		Launcher:  launcher,
		CanCreate: filesystem.Path.ProbeCreate,
		logger:    logging.GetLogger("privilege"),
	}
}

// Create probes extra (if any) and then the link path. If either is denied
// access, cmd is launched elevated; if either fails for another reason,
// nothing is launched and the error is returned. A link path that is already
// taken yields ErrLinkExists.
//
// The launch is fire and forget: success means the command was handed to the
// launcher, not that the link now exists.
func (c *Creator) Create(link filesystem.Path, cmd CommandLine, extra Probe) error {
	result, err := c.probe(link, extra)

	c.logger.Debug().
		Str("link", link.String()).
		Stringer("result", result).
		AnErr("probe", err).
		Msg("Probed link access")

	if result == DeniedFatal {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s: %w", ErrLinkExists, link, err)
		}

		return err
	}

	elevated := result == DeniedRetryable

	c.logger.Info().
		Str("executable", cmd.Executable).
		Str("parameters", cmd.Parameters).
		Bool("elevated", elevated).
		Msg("Launching link command")

	if err := c.Launcher.Launch(cmd, elevated); err != nil {
		return fmt.Errorf("privilege: launch %s: %w", cmd.Executable, err)
	}

	return nil
}

// probe stops at the first failing check, so a denied extra probe skips the
// link probe.
func (c *Creator) probe(link filesystem.Path, extra Probe) (ProbeResult, error) {
	if extra != nil {
		if err := extra(); err != nil {
			return Classify(err), err
		}
	}

	canCreate := c.CanCreate
	if canCreate == nil {
		canCreate = filesystem.Path.ProbeCreate
	}

	err := canCreate(link)
	return Classify(err), err
}
