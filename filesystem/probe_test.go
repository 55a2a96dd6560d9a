package filesystem

import (
	"io/fs"
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeCreate(t *testing.T) {
	dir := MakePath(t.TempDir())
	link := dir.Join("link")

	require.NoError(t, link.ProbeCreate())

	exists, err := link.Exists()
	require.NoError(t, err)
	assert.False(t, exists, "probe must not leave anything behind")

	touch(t, link)
	require.ErrorIs(t, link.ProbeCreate(), fs.ErrExist)

	require.ErrorIs(t, dir.Join("missing", "link").ProbeCreate(), fs.ErrNotExist)
}

func TestProbeCreateAccessDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced here")
	}

	dir := MakePath(t.TempDir())
	locked := dir.Join("locked")
	require.NoError(t, locked.MkdirAll(0500))
	defer os.Chmod(locked.String(), 0755)

	require.ErrorIs(t, locked.Join("link").ProbeCreate(), fs.ErrPermission)
}

func TestProbeWrite(t *testing.T) {
	dir := MakePath(t.TempDir())
	file := dir.Join("file.txt")
	touch(t, file)

	require.NoError(t, file.ProbeWrite())
	require.ErrorIs(t, dir.Join("missing.txt").ProbeWrite(), fs.ErrNotExist)

	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		return
	}

	require.NoError(t, os.Chmod(file.String(), 0444))
	require.ErrorIs(t, file.ProbeWrite(), fs.ErrPermission)
}
