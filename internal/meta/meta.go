// Where: cli/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep project identity and directory layout in one place.
package meta

const (
	// Project Identity
	AppName   = "countyseed"
	Slug      = "countyseed"
	EnvPrefix = "COUNTYSEED"

	// Directory Layout
	LocationsDir     = "data/locations"
	ConfigFileName   = "countyseed.yaml"
	TemplateFileMode = 0o644
	TemplateDirMode  = 0o755
)
