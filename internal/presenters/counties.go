// Where: cli/internal/presenters/counties.go
// What: Output presenters for the seed and list commands.
// Why: Keep report formatting out of the command handlers.
package presenters

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru/county-data/cli/internal/infra/ui"
	"github.com/poruru/county-data/cli/internal/seeder"
)

// DefaultListFormat renders one tab-separated line per county.
const DefaultListFormat = "{{ .Name }}\t{{ .Slug }}\t{{ if .Present }}present{{ else }}missing{{ end }}"

// CountyRow is the data available to list templates.
type CountyRow struct {
	Name    string
	Slug    string
	File    string
	Present bool
}

// ParseListFormat compiles a list template. Literal "\t" and "\n" sequences are
// expanded so formats can be typed in a shell.
func ParseListFormat(format string) (*template.Template, error) {
	if strings.TrimSpace(format) == "" {
		format = DefaultListFormat
	}
	format = strings.NewReplacer(`\t`, "\t", `\n`, "\n").Replace(format)
	tmpl, err := template.New("list").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(format)
	if err != nil {
		return nil, fmt.Errorf("parse list format: %w", err)
	}
	return tmpl, nil
}

// RenderCountyList executes tmpl once per row, each followed by a newline.
func RenderCountyList(out io.Writer, tmpl *template.Template, rows []CountyRow) error {
	for _, row := range rows {
		var sb strings.Builder
		if err := tmpl.Execute(&sb, row); err != nil {
			return fmt.Errorf("render %s: %w", row.Slug, err)
		}
		if _, err := fmt.Fprintln(out, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// PrintSeedSummary reports how many templates a seed run created.
func PrintSeedSummary(out ui.UserInterface, report seeder.Report) {
	if out == nil {
		return
	}
	verb := "Seeded"
	if report.DryRun {
		verb = "Would seed"
	}
	out.Success(fmt.Sprintf("%s %d of %d county templates in %s", verb, len(report.Created), report.Total(), report.Dir))
}

// PrintSettings displays the resolved run configuration.
func PrintSettings(out ui.UserInterface, configPath, outDir, countiesSource string, counties int) {
	if out == nil {
		return
	}
	if configPath == "" {
		configPath = "(none)"
	}
	out.Block("📁", "Seed settings:", []ui.KeyValue{
		{Key: "Config", Value: configPath},
		{Key: "Output", Value: outDir},
		{Key: "Counties", Value: fmt.Sprintf("%d (%s)", counties, countiesSource)},
	})
}
