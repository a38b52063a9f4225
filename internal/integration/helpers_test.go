// internal/integration/helpers_test.go
package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cancerit/QUANTS-sub000/pkg/api"
)

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func read(t *testing.T, fn string) string {
	t.Helper()
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("read %s: %v", fn, err)
	}
	return string(b)
}

func summary(t *testing.T, fn string) api.SummaryV1 {
	t.Helper()
	var s api.SummaryV1
	if err := json.Unmarshal([]byte(read(t, fn)), &s); err != nil {
		t.Fatalf("summary json: %v", err)
	}
	return s
}

func exists(fn string) bool {
	_, err := os.Stat(fn)
	return err == nil
}
