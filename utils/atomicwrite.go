package utils

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// AtomicWrite writes data to a temporary file next to name and renames it
// over name, so readers never see a partially written file.
func AtomicWrite(name string, data []byte, perm fs.FileMode) error {
	return AtomicWriteFunc(name, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// AtomicWriteFunc is like AtomicWrite but the content is produced by fn.
// Nothing is left behind if fn fails.
func AtomicWriteFunc(name string, perm fs.FileMode, fn func(w io.Writer) error) (err error) {
	fd, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			fd.Close()
			os.Remove(fd.Name())
		}
	}()

	if err = fn(fd); err != nil {
		return err
	}
	// os.CreateTemp always creates file with 0600
	if perm != 0600 {
		if err = fd.Chmod(perm); err != nil {
			return err
		}
	}
	if err = fd.Sync(); err != nil {
		return err
	}
	if err = fd.Close(); err != nil {
		return err
	}
	return os.Rename(fd.Name(), name)
}
