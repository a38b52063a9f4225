// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"
)

// takesValue reports whether the flag spelled by arg consumes the next
// argument. Unknown flags are left for fs.Parse to report.
func takesValue(fs *flag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	f := fs.Lookup(strings.TrimLeft(arg, "-"))
	if f == nil {
		return false
	}
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return false
	}
	return true
}

// SplitFlagsAndPositionals lets flags follow the input path, which
// flag.Parse alone does not. Everything after "--" is positional.
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return flagArgs, append(posArgs, argv[i+1:]...)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			posArgs = append(posArgs, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if takesValue(fs, arg) && i+1 < len(argv) {
				i++
				flagArgs = append(flagArgs, argv[i])
			}
		}
	}
	return flagArgs, posArgs
}

// ExpandInput resolves the positional arguments to at most one input path.
// A glob must match exactly one file.
func ExpandInput(posArgs []string) (string, error) {
	var paths []string
	for _, a := range posArgs {
		if !strings.ContainsAny(a, "*?[") {
			paths = append(paths, a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return "", fmt.Errorf("bad glob %q: %v", a, err)
		}
		if len(m) == 0 {
			return "", fmt.Errorf("no input matched %q", a)
		}
		paths = append(paths, m...)
	}
	switch len(paths) {
	case 0:
		return "", nil
	case 1:
		return paths[0], nil
	}
	return "", fmt.Errorf("exactly one input file is accepted, got %d: %s", len(paths), strings.Join(paths, " "))
}

// ListValue collects comma separated values from a repeatable flag.
type ListValue struct{ dst *[]string }

func NewListValue(dst *[]string) *ListValue { return &ListValue{dst: dst} }

func (l *ListValue) String() string {
	if l == nil || l.dst == nil {
		return ""
	}
	return strings.Join(*l.dst, ",")
}

func (l *ListValue) Set(v string) error {
	for _, f := range strings.Split(v, ",") {
		if f = strings.TrimSpace(f); f != "" {
			*l.dst = append(*l.dst, f)
		}
	}
	return nil
}

// Visited returns the names of flags set on the command line.
func Visited(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { m[f.Name] = true })
	return m
}
