package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/akeil/rmdoc/internal/logging"
)

// Move moves a file from src to dst.
// It tries os.Rename() first and falls back on "copy and delete".
//
// If src cannot be deleted after a successful copy,
// NO error is returned and src remains as it was.
func Move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	// Rename may have failed when moving across file systems
	// so try again w/ copy & delete.
	logging.Debug("Rename failed for %v -> %v, fall back on copy and delete", src, dst)
	r, err := os.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, r)
	if err != nil {
		w.Close()
		os.Remove(dst)
		return err
	}
	err = w.Close()
	if err != nil {
		return err
	}

	// A bit untidy, but we carry on even if we fail to clean up behind us.
	ignoredErr := os.Remove(src)
	if ignoredErr != nil {
		logging.Error("Failed to remove file %v", src)
	}

	return nil
}

// WriteFile creates the file at dst with the output of write.
//
// Output goes to a temporary file first which is moved to dst when write
// succeeds. If write fails, dst is left untouched.
func WriteFile(dst string, write func(w io.Writer) error) error {
	f, err := os.CreateTemp("", "rmdoc-*"+filepath.Ext(dst))
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	err = write(f)
	if err != nil {
		f.Close()
		return err
	}
	err = f.Close()
	if err != nil {
		return err
	}

	return Move(tmp, dst)
}
