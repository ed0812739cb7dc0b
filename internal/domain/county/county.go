// Where: cli/internal/domain/county/county.go
// What: County slug records and the built-in county list.
// Why: Give the seeder, manifest loader, and list command one set of slug rules.
package county

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Record pairs a county's display name with its slug.
type Record struct {
	Name string `json:"name" yaml:"name"`
	Slug string `json:"slug" yaml:"slug"`
}

// FileName returns the template file name for the record.
func (r Record) FileName() string {
	return r.Slug + ".json"
}

var defaults = []Record{
	{Name: "Pulaski", Slug: "pulaski"},
	{Name: "Faulkner", Slug: "faulkner"},
	{Name: "Saline", Slug: "saline"},
	{Name: "White", Slug: "white"},
	{Name: "Cleburne", Slug: "cleburne"},
	{Name: "Perry", Slug: "perry"},
	{Name: "Conway", Slug: "conway"},
	{Name: "Van Buren", Slug: "van-buren"},
}

// Defaults returns a copy of the built-in county list in seeding order.
func Defaults() []Record {
	out := make([]Record, len(defaults))
	copy(out, defaults)
	return out
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ErrInvalidSlug is returned for slugs that are not lowercase, hyphen-separated
// alphanumerics.
var ErrInvalidSlug = errors.New("invalid slug")

// NormalizeSlug trims surrounding whitespace and lowercases the value.
func NormalizeSlug(value string) string {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return ""
	}
	return strings.ToLower(cleaned)
}

// Slugify derives a slug from a display name. Runs of characters other than
// ASCII letters and digits collapse into a single hyphen.
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// ValidateSlug reports whether slug is safe to use as a file base name.
func ValidateSlug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("%w %q: must match %s", ErrInvalidSlug, slug, slugPattern.String())
	}
	return nil
}

// Validate checks every record and returns all problems joined together.
func Validate(records []Record) error {
	var errs []error
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.Name) == "" {
			errs = append(errs, fmt.Errorf("county #%d: name is required", i+1))
		}
		if err := ValidateSlug(rec.Slug); err != nil {
			errs = append(errs, fmt.Errorf("county #%d (%s): %w", i+1, rec.Name, err))
			continue
		}
		if prev, ok := seen[rec.Slug]; ok {
			errs = append(errs, fmt.Errorf("county #%d (%s): duplicate slug %q (first used by county #%d)", i+1, rec.Name, rec.Slug, prev))
			continue
		}
		seen[rec.Slug] = i + 1
	}
	return errors.Join(errs...)
}
