package tabular

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jgbaldwinbrown/csvh"
)

// commentScan is the result of scanning the top of a file for comment lines.
type commentScan struct {
	Lines     []int
	StartLine int
	Offset    int64
}

type cacheKey struct {
	path   string
	prefix string
}

type cacheEntry struct {
	scan    commentScan
	size    int64
	modTime time.Time
}

// OffsetCache memoises comment scanning per (path, comment prefix) for the
// lifetime of one run. Entries are dropped when the file's size or
// modification time changes. The zero value is not usable; use
// NewOffsetCache. A nil *OffsetCache disables caching.
type OffsetCache struct {
	m map[cacheKey]cacheEntry
}

func NewOffsetCache() *OffsetCache {
	return &OffsetCache{m: make(map[cacheKey]cacheEntry)}
}

// Len reports the number of cached scans.
func (c *OffsetCache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.m)
}

func (c *OffsetCache) lookup(path, prefix string) (commentScan, error) {
	if c == nil {
		return scanComments(path, prefix)
	}
	fi, err := os.Stat(path)
	if err != nil {
		return commentScan{}, err
	}
	k := cacheKey{path: path, prefix: prefix}
	if e, ok := c.m[k]; ok && e.size == fi.Size() && e.modTime.Equal(fi.ModTime()) {
		return e.scan, nil
	}
	s, err := scanComments(path, prefix)
	if err != nil {
		return commentScan{}, err
	}
	c.m[k] = cacheEntry{scan: s, size: fi.Size(), modTime: fi.ModTime()}
	return s, nil
}

// scanComments reads at most Lookahead lines and records which start with
// prefix. The tabular block starts on the line after the last comment, and
// Offset counts raw bytes including line terminators.
func scanComments(path, prefix string) (s commentScan, err error) {
	rc, err := csvh.OpenMaybeGz(path)
	if err != nil {
		return s, err
	}
	defer func() { csvh.DeferE(&err, rc.Close()) }()

	br := bufio.NewReader(rc)
	starts := []int64{0}
	var pos int64
	for i := 0; i < Lookahead; i++ {
		line, rerr := br.ReadString('\n')
		if len(line) == 0 && rerr == io.EOF {
			break
		}
		if rerr != nil && rerr != io.EOF {
			return s, rerr
		}
		if prefix != "" && strings.HasPrefix(line, prefix) {
			s.Lines = append(s.Lines, i)
		}
		pos += int64(len(line))
		starts = append(starts, pos)
		if rerr == io.EOF {
			break
		}
	}
	if n := len(s.Lines); n > 0 {
		s.StartLine = s.Lines[n-1] + 1
	}
	s.Offset = starts[s.StartLine]
	return s, nil
}
