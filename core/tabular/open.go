package tabular

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jgbaldwinbrown/csvh"
)

const (
	// Lookahead bounds how many lines are examined for comments and for
	// header names.
	Lookahead = 20
	// SampleSize bounds how many bytes are handed to the sniffers.
	SampleSize = 1 << 20
)

// offsetReadCloser closes the underlying file while reading through a
// buffered reader that has already skipped past the requested offset.
type offsetReadCloser struct {
	*bufio.Reader
	c io.Closer
}

func (o *offsetReadCloser) Close() error { return o.c.Close() }

// openAt opens path (gzip aware) and discards the first offset bytes of the
// decompressed stream. Compressed streams cannot seek, so every pass
// re-opens the file.
func openAt(path string, offset int64) (*offsetReadCloser, error) {
	rc, err := csvh.OpenMaybeGz(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(rc)
	if offset > 0 {
		n, err := io.CopyN(io.Discard, br, offset)
		if err != nil && err != io.EOF {
			_ = rc.Close()
			return nil, fmt.Errorf("%s: seek to byte %d: %w", path, offset, err)
		}
		if n < offset {
			_ = rc.Close()
			return nil, fmt.Errorf("%s: file shorter than tabular offset %d", path, offset)
		}
	}
	return &offsetReadCloser{Reader: br, c: rc}, nil
}

// sample returns at most SampleSize bytes from offset, cut back to the last
// complete line when the limit was hit.
func sample(path string, offset int64) ([]byte, error) {
	r, err := openAt(path, offset)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	buf, err := io.ReadAll(io.LimitReader(r, SampleSize))
	if err != nil {
		return nil, err
	}
	if len(buf) == SampleSize {
		for i := len(buf) - 1; i >= 0; i-- {
			if buf[i] == '\n' {
				buf = buf[:i+1]
				break
			}
		}
	}
	return buf, nil
}
