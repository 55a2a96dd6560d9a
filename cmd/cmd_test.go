package cmd

import (
	"bytes"
	"testing"

	"github.com/adrg/xdg"
	"github.com/jamesbehr/mklink/config"
	"github.com/jamesbehr/mklink/filesystem"
	"github.com/jamesbehr/mklink/link"
	"github.com/jamesbehr/mklink/privilege"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type launch struct {
	Cmd      privilege.CommandLine
	Elevated bool
}

type recordingLauncher struct {
	launches []launch
}

func (l *recordingLauncher) Launch(cmd privilege.CommandLine, elevated bool) error {
	l.launches = append(l.launches, launch{cmd, elevated})
	return nil
}

func execute(t *testing.T, args ...string) (string, *recordingLauncher, error) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("MKLINK_LOCALE", "en-US")
	t.Setenv("MKLINK_LOG_FILE", "false")
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	recorder := &recordingLauncher{}
	saved := launcher
	launcher = func(*config.Config) privilege.Launcher { return recorder }
	t.Cleanup(func() {
		launcher = saved
		verbosity, configFile, directory, target, dryRun = 0, "", "", "", false
	})

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), recorder, err
}

func layout(t *testing.T) (filesystem.Path, filesystem.Path) {
	home := filesystem.MakePath(t.TempDir())
	desktop := home.Join("Desktop")
	data := home.Join("data")
	require.NoError(t, desktop.MkdirAll(0755))
	require.NoError(t, data.MkdirAll(0755))
	return desktop, data
}

func TestCollectPages(t *testing.T) {
	desktop, data := layout(t)
	factory := &link.Factory{}

	all := collect(factory.Enumerate(link.Request{Directory: desktop, Target: data}))
	require.Len(t, all, len(link.Kinds))
	for i, s := range all {
		assert.Equal(t, link.Kinds[i], s.Kind)
	}
}

func TestListCommand(t *testing.T) {
	desktop, data := layout(t)

	out, _, err := execute(t, "list", "--dir", desktop.String(), "--target", data.String())
	require.NoError(t, err)

	assert.Contains(t, out, "Create link here")
	for _, k := range link.Kinds {
		assert.Contains(t, out, k.String())
	}
	assert.Contains(t, out, "Hard link")
	assert.Contains(t, out, "(disabled)")
}

func TestListVerboseShowsHostMetadata(t *testing.T) {
	desktop, data := layout(t)

	out, _, err := execute(t, "list", "-v", "--dir", desktop.String(), "--target", data.String())
	require.NoError(t, err)

	assert.Contains(t, out, "[shell32.dll,-51380, cmd]")
	assert.Contains(t, out, "[shell32.dll,-25, powershell]")
}

func TestListMissingTarget(t *testing.T) {
	desktop, data := layout(t)

	_, _, err := execute(t, "list", "--dir", desktop.String(), "--target", data.Join("missing").String())
	require.ErrorIs(t, err, errNothingToLink)
}

func TestCreateDryRun(t *testing.T) {
	desktop, data := layout(t)

	out, recorder, err := execute(t, "create", "junction", "--dry-run", "--dir", desktop.String(), "--target", data.String())
	require.NoError(t, err)

	assert.Contains(t, out, desktop.Join("data").String())
	assert.Contains(t, out, `cmd /C mklink /J "`+desktop.Join("data").String()+`" "`+data.String()+`"`)
	assert.Empty(t, recorder.launches)
}

func TestCreateLaunches(t *testing.T) {
	desktop, data := layout(t)

	out, recorder, err := execute(t, "create", "shortcut", "--dir", desktop.String(), "--target", data.String())
	require.NoError(t, err)

	assert.Contains(t, out, "requested "+desktop.Join("data.lnk").String())
	require.Len(t, recorder.launches, 1)
	assert.Equal(t, "powershell", recorder.launches[0].Cmd.Executable)
	assert.False(t, recorder.launches[0].Elevated)
}

func TestCreateDisabledKind(t *testing.T) {
	desktop, data := layout(t)

	_, recorder, err := execute(t, "create", "hard-link", "--dir", desktop.String(), "--target", data.String())
	require.ErrorIs(t, err, link.ErrNotApplicable)
	assert.Empty(t, recorder.launches)
}

func TestCreateUnknownKind(t *testing.T) {
	desktop, data := layout(t)

	_, _, err := execute(t, "create", "softlink", "--dir", desktop.String(), "--target", data.String())
	require.Error(t, err)
}
