// internal/writers/atomic.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/jgbaldwinbrown/csvh"
)

// Stdout names standard output as an output path.
const Stdout = "-"

// IsBrokenPipe reports whether err means the reader of stdout went away,
// as when output is piped into head.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}

// Target is an output being written. Commit makes it visible; Abort
// discards it. Exactly one of them must be called.
type Target struct {
	io.Writer
	path string
	tmp  string
	wc   io.WriteCloser
	done bool
}

// Create opens path for writing through a temporary file in the same
// directory. ".gz" paths are gzip compressed. An existing path is refused
// unless overwrite. Stdout ("-" or "") is written directly.
func Create(path string, overwrite bool, stdout io.Writer) (*Target, error) {
	if path == "" || path == Stdout {
		return &Target{Writer: stdout}, nil
	}
	if _, err := os.Stat(path); err == nil && !overwrite {
		return nil, fmt.Errorf("%s: output exists; pass --force to overwrite", path)
	}
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		return nil, fmt.Errorf("%s: output directory %s does not exist", path, dir)
	}
	suffix := ""
	if strings.HasSuffix(base, ".gz") {
		suffix = ".gz"
	}
	fh, err := os.CreateTemp(dir, "."+strings.TrimSuffix(base, suffix)+".*.tmp"+suffix)
	if err != nil {
		return nil, err
	}
	tmp := fh.Name()
	_ = fh.Close()

	wc, err := csvh.CreateMaybeGz(tmp)
	if err != nil {
		_ = os.Remove(tmp)
		return nil, err
	}
	return &Target{Writer: wc, path: path, tmp: tmp, wc: wc}, nil
}

// Path is the final output path, or "-" for stdout.
func (t *Target) Path() string {
	if t.path == "" {
		return Stdout
	}
	return t.path
}

// Commit closes the temporary file and renames it into place.
func (t *Target) Commit() (err error) {
	if t.done || t.wc == nil {
		t.done = true
		return nil
	}
	t.done = true
	defer func() {
		if err != nil {
			_ = os.Remove(t.tmp)
		}
	}()
	if err = t.wc.Close(); err != nil {
		return err
	}
	return os.Rename(t.tmp, t.path)
}

// Abort drops the temporary file. It is a no-op after Commit.
func (t *Target) Abort() {
	if t.done || t.wc == nil {
		t.done = true
		return
	}
	t.done = true
	_ = t.wc.Close()
	_ = os.Remove(t.tmp)
}
