package command

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/poruru/county-data/cli/internal/infra/ui"
)

// isolate runs the test in a fresh working directory with countyseed
// environment variables cleared.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range []string{"ENV_PREFIX", "COUNTYSEED_CONFIG_PATH", "COUNTYSEED_OUT_DIR", "COUNTYSEED_COUNTIES_FILE", "CLI_CMD"} {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	chdir(t, dir)
	return dir
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(args, Dependencies{Out: &out, ErrOut: &errOut, NewUI: ui.NewPlainUI})
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
