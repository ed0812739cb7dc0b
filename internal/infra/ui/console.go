// Where: cli/internal/infra/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize status lines, blocks, and emoji across commands.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status verbs printed by the seeder, one per county file.
const (
	StatusCreated     = "Created"
	StatusExists      = "Exists"
	StatusWouldCreate = "Would create"
)

// statusWidth pads verbs so paths line up ("Created x" / "Exists  x").
const statusWidth = 7

// Console provides helper methods for formatted output.
type Console struct {
	Out          io.Writer
	EmojiEnabled bool
	styles       *statusStyles
}

type statusStyles struct {
	created lipgloss.Style
	exists  lipgloss.Style
	pending lipgloss.Style
	warn    lipgloss.Style
}

// New creates a new plain Console writing to the provided writer.
func New(out io.Writer) *Console {
	return &Console{Out: out}
}

// NewStyled creates a Console that colours status verbs and enables emoji.
func NewStyled(out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		Out:          out,
		EmojiEnabled: true,
		styles: &statusStyles{
			created: r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
			exists:  r.NewStyle().Foreground(lipgloss.Color("8")),
			pending: r.NewStyle().Foreground(lipgloss.Color("14")),
			warn:    r.NewStyle().Foreground(lipgloss.Color("11")),
		},
	}
}

// Header prints a section header with an emoji.
// Example: 📁 Output directory.
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.emojiPrefix(emoji), title)
}

// BlockStart starts a logical block with a blank line and a header.
func (c *Console) BlockStart(emoji, title string) {
	fmt.Fprintln(c.Out)
	c.Header(emoji, title)
}

// BlockEnd ends a logical block.
func (c *Console) BlockEnd() {
	fmt.Fprintln(c.Out)
}

// Item prints a key-value item with indentation.
// Example:    Key: Value.
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-18s %v\n", key+":", value)
}

// Status prints a seeder status line: the verb padded to a fixed width,
// then the detail (usually a file path).
// Example: Exists  data/locations/pulaski.json.
func (c *Console) Status(verb, detail string) {
	label := fmt.Sprintf("%-*s", statusWidth, verb)
	if c.styles != nil {
		label = c.styleFor(verb).Render(label)
	}
	fmt.Fprintf(c.Out, "%s %s\n", label, detail)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.emojiPrefix("✅"), msg)
}

// Info prints an info message.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "%s\n", msg)
}

// Warn prints a warning message.
func (c *Console) Warn(msg string) {
	prefix := c.emojiPrefix("⚠️")
	if c.styles != nil {
		msg = c.styles.warn.Render(msg)
	}
	fmt.Fprintf(c.Out, "%s%s\n", prefix, msg)
}

func (c *Console) styleFor(verb string) lipgloss.Style {
	switch verb {
	case StatusCreated:
		return c.styles.created
	case StatusExists:
		return c.styles.exists
	default:
		return c.styles.pending
	}
}

func (c *Console) emojiPrefix(emoji string) string {
	if !c.EmojiEnabled || strings.TrimSpace(emoji) == "" {
		return ""
	}
	return emoji + " "
}
