package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSeedWithManifestAndOutFlag(t *testing.T) {
	dir := isolate(t)
	manifest := filepath.Join(dir, "counties.yaml")
	writeFile(t, manifest, "counties:\n  - name: Pulaski\n    slug: pulaski\n  - name: Faulkner\n")

	code, out, errOut := run(t, "seed", "--counties", manifest, "--out", "out")
	if code != 0 {
		t.Fatalf("seed failed: %s", errOut)
	}
	want := "Created out/pulaski.json\nCreated out/faulkner.json\nSeeded 2 of 2 county templates in out\n"
	if out != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", out, want)
	}

	code, out, _ = run(t, "seed", "--counties", manifest, "--out", "out")
	if code != 0 {
		t.Fatalf("second seed failed")
	}
	want = "Exists  out/pulaski.json\nExists  out/faulkner.json\nSeeded 0 of 2 county templates in out\n"
	if out != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", out, want)
	}
}

func TestSeedDryRunWritesNothing(t *testing.T) {
	dir := isolate(t)
	code, out, errOut := run(t, "--dry-run")
	if code != 0 {
		t.Fatalf("dry run failed: %s", errOut)
	}
	if !strings.Contains(out, "Would create data/locations/pulaski.json") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "Would seed 8 of 8 county templates") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "data")); !os.IsNotExist(err) {
		t.Fatalf("dry run must not create data dir")
	}
}

func TestSeedRejectsInvalidManifestBeforeWriting(t *testing.T) {
	dir := isolate(t)
	manifest := filepath.Join(dir, "counties.yaml")
	writeFile(t, manifest, "counties:\n  - name: Van Buren\n  - name: Van-Buren\n")

	code, out, errOut := run(t, "seed", "--counties", manifest)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if out != "" {
		t.Fatalf("no status lines expected, got %q", out)
	}
	if !strings.Contains(errOut, "duplicate slug") {
		t.Fatalf("unexpected error output: %q", errOut)
	}
	if _, err := os.Stat(filepath.Join(dir, "data")); !os.IsNotExist(err) {
		t.Fatalf("invalid manifest must not create data dir")
	}
}

func TestSeedFilesystemErrorExitsNonZero(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "data"), "not a directory")

	code, out, errOut := run(t)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if out != "" {
		t.Fatalf("unexpected stdout: %q", out)
	}
	if !strings.Contains(errOut, "✗ create output dir data/locations") {
		t.Fatalf("unexpected stderr: %q", errOut)
	}
}

func TestSeedUsesProjectConfig(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "countyseed.yaml"), "out_dir: public/locations\ncounties_file: counties.yaml\n")
	writeFile(t, filepath.Join(dir, "counties.yaml"), "counties:\n  - name: Conway\n")

	code, out, errOut := run(t)
	if code != 0 {
		t.Fatalf("seed failed: %s", errOut)
	}
	if !strings.HasPrefix(out, "Created public/locations/conway.json\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if got := readFile(t, filepath.Join(dir, "public", "locations", "conway.json")); got != "[]" {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestSeedVerbosePrintsSettingsAndLogs(t *testing.T) {
	isolate(t)
	code, out, errOut := run(t, "-v", "seed", "--dry-run")
	if code != 0 {
		t.Fatalf("seed failed: %s", errOut)
	}
	if !strings.Contains(out, "Seed settings:") || !strings.Contains(out, "8 (built-in)") {
		t.Fatalf("expected settings block, got:\n%s", out)
	}
	if !strings.Contains(errOut, "settings resolved") {
		t.Fatalf("expected debug log on stderr, got %q", errOut)
	}
}
