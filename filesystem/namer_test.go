package filesystem

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, p Path) {
	require.NoError(t, p.WriteFile([]byte{}, 0644))
}

func TestLinkNameFree(t *testing.T) {
	dir := MakePath(t.TempDir())
	target := MakePath(t.TempDir()).Join("notes.txt")

	link, err := dir.LinkName(target, "")
	require.NoError(t, err)
	assert.Equal(t, dir.Join("notes.txt"), link)

	link, err = dir.LinkName(target, ".lnk")
	require.NoError(t, err)
	assert.Equal(t, dir.Join("notes.txt.lnk"), link)
}

func TestLinkNameCollisions(t *testing.T) {
	dir := MakePath(t.TempDir())
	target := MakePath(t.TempDir()).Join("notes.txt")

	touch(t, dir.Join("notes.txt.url"))
	touch(t, dir.Join("notes (2).txt.url"))

	link, err := dir.LinkName(target, ".url")
	require.NoError(t, err)
	assert.Equal(t, dir.Join("notes (3).txt.url"), link)

	// Entries for other extensions do not count as collisions.
	link, err = dir.LinkName(target, "")
	require.NoError(t, err)
	assert.Equal(t, dir.Join("notes.txt"), link)
}

func TestLinkNameWithoutExtension(t *testing.T) {
	dir := MakePath(t.TempDir())
	target := MakePath(t.TempDir()).Join("data")

	require.NoError(t, dir.Join("data").MkdirAll(0755))

	link, err := dir.LinkName(target, "")
	require.NoError(t, err)
	assert.Equal(t, dir.Join("data (2)"), link)
}

func TestLinkNameDanglingSymlinkCounts(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on windows")
	}

	dir := MakePath(t.TempDir())
	target := MakePath(t.TempDir()).Join("gone.txt")

	require.NoError(t, os.Symlink(target.String(), dir.Join("gone.txt").String()))

	link, err := dir.LinkName(target, "")
	require.NoError(t, err)
	assert.Equal(t, dir.Join("gone (2).txt"), link)
}

func TestLinkNameSelfReferential(t *testing.T) {
	dir := MakePath(t.TempDir())
	target := dir.Join("report.pdf")
	touch(t, target)

	link, err := dir.LinkName(target, "")
	require.NoError(t, err)
	assert.Equal(t, dir.Join("report (2).pdf"), link)
}
