// internal/clibase/config.go
package clibase

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/cancerit/QUANTS-sub000/internal/cliutil"
)

// ApplyConfig reads flag defaults from a TOML file. Top-level keys apply to
// every tool; a table named after the tool overrides them. Keys are flag
// names. Flags given on the command line always win.
//
//	delimiter = "tab"
//	[reformat-csv]
//	required = ["sample", "barcode"]
func ApplyConfig(fs *flag.FlagSet, path, tool string) error {
	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	values := map[string]any{}
	for k, v := range raw {
		if _, isTable := v.(map[string]any); !isTable {
			values[k] = v
		}
	}
	if section, ok := raw[tool].(map[string]any); ok {
		for k, v := range section {
			values[k] = v
		}
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Aliases share their variable, so a set alias also shields the
	// long name.
	set := map[flag.Value]bool{}
	for name := range cliutil.Visited(fs) {
		set[fs.Lookup(name).Value] = true
	}
	for _, k := range keys {
		if k == "config" {
			return fmt.Errorf("config %s: nested config files are not supported", path)
		}
		if fs.Lookup(k) == nil {
			return fmt.Errorf("config %s: unknown option %q for %s", path, k, tool)
		}
		if set[fs.Lookup(k).Value] {
			continue
		}
		s, err := configString(values[k])
		if err != nil {
			return fmt.Errorf("config %s: %s: %w", path, k, err)
		}
		if err := fs.Set(k, s); err != nil {
			return fmt.Errorf("config %s: %s: %w", path, k, err)
		}
	}
	return nil
}

func configString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool, int64, float64:
		return fmt.Sprint(x), nil
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			s, err := configString(e)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, ","), nil
	}
	return "", fmt.Errorf("unsupported value %v (%T)", v, v)
}
