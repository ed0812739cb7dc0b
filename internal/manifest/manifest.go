// Where: cli/internal/manifest/manifest.go
// What: County manifest loader.
// Why: Let a YAML or JSON file replace the built-in county list.
package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/poruru/county-data/cli/internal/domain/county"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

const schemaURL = "countyseed://schema/counties.schema.json"

//go:embed schema/counties.schema.json
var schemaSource []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// Document is the decoded manifest.
type Document struct {
	Counties []Entry `json:"counties"`
}

// Entry is one manifest row. Slug is derived from Name when omitted.
type Entry struct {
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// Load reads the manifest at path and returns its counties in file order.
func Load(path string) ([]county.Record, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read county manifest: %w", err)
	}
	records, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("county manifest %s: %w", path, err)
	}
	return records, nil
}

// Parse validates a YAML or JSON manifest and converts it to records.
func Parse(content []byte) ([]county.Record, error) {
	sch, err := loadSchema()
	if err != nil {
		return nil, err
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return nil, fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if err := sch.Validate(document); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("decode counties: %w", err)
	}

	records := make([]county.Record, 0, len(doc.Counties))
	for _, entry := range doc.Counties {
		name := strings.TrimSpace(entry.Name)
		slug := county.NormalizeSlug(entry.Slug)
		if slug == "" {
			slug = county.Slugify(name)
		}
		records = append(records, county.Record{Name: name, Slug: slug})
	}
	if err := county.Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaSource)); err != nil {
			schemaErr = fmt.Errorf("load county manifest schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
