// Where: cli/internal/seeder/seeder.go
// What: Template seeder for per-county location files.
// Why: Create placeholder JSON arrays before real location data is ingested.
package seeder

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/poruru/county-data/cli/internal/domain/county"
	"github.com/poruru/county-data/cli/internal/infra/fileops"
	"github.com/poruru/county-data/cli/internal/infra/ui"
	"github.com/poruru/county-data/cli/internal/logging"
	"github.com/poruru/county-data/cli/internal/meta"
)

// Seeder creates `<slug>.json` for each county in Dir, leaving existing
// entries untouched.
type Seeder struct {
	Dir     string
	Records []county.Record
	DryRun  bool
	UI      ui.UserInterface
	Logger  *slog.Logger
}

// Report lists the paths handled by a run, in seeding order.
type Report struct {
	Dir      string
	Created  []string
	Existing []string
	DryRun   bool
}

// Total returns the number of counties processed.
func (r Report) Total() int {
	return len(r.Created) + len(r.Existing)
}

// EmptyPayload returns the placeholder file content: an empty JSON array
// formatted with two-space indentation.
func EmptyPayload() ([]byte, error) {
	return json.MarshalIndent([]any{}, "", "  ")
}

// Path returns the template path for rec inside dir.
func Path(dir string, rec county.Record) string {
	return filepath.Join(dir, rec.FileName())
}

// Run seeds every record in order and stops at the first filesystem error.
// Files written before the failure are kept.
func (s Seeder) Run() (Report, error) {
	out := s.UI
	if out == nil {
		out = ui.NewPlainUI(io.Discard)
	}
	logger := s.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	report := Report{Dir: s.Dir, DryRun: s.DryRun}
	payload, err := EmptyPayload()
	if err != nil {
		return report, fmt.Errorf("encode template: %w", err)
	}

	if s.DryRun {
		return s.plan(report, out, logger)
	}

	if err := fileops.EnsureDir(s.Dir, meta.TemplateDirMode); err != nil {
		return report, fmt.Errorf("create output dir %s: %w", s.Dir, err)
	}
	logger.Debug("output dir ready", "dir", s.Dir, "counties", len(s.Records))

	for _, rec := range s.Records {
		path := Path(s.Dir, rec)
		created, err := fileops.CreateExclusive(path, payload, meta.TemplateFileMode)
		if err != nil {
			return report, fmt.Errorf("seed %s (%s): %w", rec.Name, path, err)
		}
		if created {
			report.Created = append(report.Created, path)
			out.Status(ui.StatusCreated, path)
			logger.Debug("template created", "county", rec.Name, "path", path)
			continue
		}
		report.Existing = append(report.Existing, path)
		out.Status(ui.StatusExists, path)
		logger.Debug("template exists", "county", rec.Name, "path", path)
	}
	return report, nil
}

// plan reports what Run would do without creating anything.
func (s Seeder) plan(report Report, out ui.UserInterface, logger *slog.Logger) (Report, error) {
	for _, rec := range s.Records {
		path := Path(s.Dir, rec)
		exists, err := fileops.PathExists(path)
		if err != nil {
			return report, fmt.Errorf("inspect %s (%s): %w", rec.Name, path, err)
		}
		if exists {
			report.Existing = append(report.Existing, path)
			out.Status(ui.StatusExists, path)
			continue
		}
		report.Created = append(report.Created, path)
		out.Status(ui.StatusWouldCreate, path)
	}
	logger.Debug("dry run complete", "dir", s.Dir, "pending", len(report.Created))
	return report, nil
}
