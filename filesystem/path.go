package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrRelativePath = errors.New("filesystem: path is not absolute")

type Path string

func MakePath(names ...string) Path {
	p := filepath.Join(names...)

	if !filepath.IsAbs(p) {
		panic("MakePath requires absolute path")
	}

	return Path(p)
}

// ParsePath is like MakePath but reports relative input as an error instead
// of panicking. Use it for paths that come from outside the program.
func ParsePath(name string) (Path, error) {
	if name == "" || !filepath.IsAbs(name) {
		return Path(""), fmt.Errorf("%w: %q", ErrRelativePath, name)
	}

	return Path(filepath.Clean(name)), nil
}

func (p Path) Join(names ...string) Path {
	args := []string{string(p)}
	args = append(args, names...)
	return MakePath(args...)
}

func (p Path) Basename() string {
	return filepath.Base(string(p))
}

// Ext returns the extension of the final element, including the dot. Unlike
// filepath.Ext, a leading dot does not start an extension, so ".bashrc" has
// none.
func (p Path) Ext() string {
	name := p.Basename()
	if name == "." || name == ".." {
		return ""
	}

	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return ""
	}

	return name[i:]
}

// Stem returns the final element without its extension.
func (p Path) Stem() string {
	return strings.TrimSuffix(p.Basename(), p.Ext())
}

// Root returns the volume name followed by the root separator, for instance
// `C:\` or `/`. Relative paths have an empty root directory part.
func (p Path) Root() string {
	s := string(p)
	vol := filepath.VolumeName(s)
	rest := s[len(vol):]
	if len(rest) > 0 && os.IsPathSeparator(rest[0]) {
		return vol + string(filepath.Separator)
	}

	return vol
}

// SameRoot reports whether p and other live under the same root. Volume names
// compare case-insensitively since drive letters do.
func (p Path) SameRoot(other Path) bool {
	return strings.EqualFold(p.Root(), other.Root())
}

// Rel returns p expressed relative to base, without touching the filesystem.
func (p Path) Rel(base Path) (Path, error) {
	rel, err := filepath.Rel(string(base), string(p))
	if err != nil {
		return Path(""), err
	}

	return Path(rel), nil
}

func (p Path) IsDir() bool {
	info, err := os.Stat(string(p))
	if err != nil {
		return false
	}

	return info.IsDir()
}

func (p Path) Exists() (bool, error) {
	_, err := os.Lstat(string(p))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (p Path) MkdirAll(perm os.FileMode) error {
	return os.MkdirAll(string(p), perm)
}

func (p Path) WriteFile(data []byte, perm os.FileMode) error {
	return os.WriteFile(string(p), data, perm)
}

func (p Path) String() string {
	return string(p)
}
