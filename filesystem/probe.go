package filesystem

import "os"

// ProbeCreate checks that a new file could be created at p by creating it and
// removing it again. It fails with fs.ErrExist if something is already there
// and with fs.ErrPermission if the parent directory is not writable.
func (p Path) ProbeCreate() error {
	f, err := os.OpenFile(string(p), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(string(p))
		return err
	}

	return os.Remove(string(p))
}

// ProbeWrite checks that the existing file at p can be opened for writing.
func (p Path) ProbeWrite() error {
	f, err := os.OpenFile(string(p), os.O_WRONLY, 0)
	if err != nil {
		return err
	}

	return f.Close()
}
