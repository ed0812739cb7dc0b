// Where: cli/internal/infra/ui/legacy.go
// What: UserInterface adapter over Console.
// Why: Give commands and the seeder one output surface for plain and TTY output.
package ui

import (
	"io"
	"os"
)

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by commands and the seeder.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Status(verb, detail string)
	Block(emoji, title string, rows []KeyValue)
}

// NewPlainUI returns a UserInterface that writes undecorated text.
func NewPlainUI(out io.Writer) UserInterface {
	return consoleUI{console: New(out)}
}

// NewStyledUI returns a UserInterface with emoji and coloured status verbs.
func NewStyledUI(out io.Writer) UserInterface {
	return consoleUI{console: NewStyled(out)}
}

// NewAuto picks the styled UI when out is a terminal and the plain UI otherwise.
func NewAuto(out io.Writer) UserInterface {
	if file, ok := out.(*os.File); ok && IsTerminal(file) {
		return NewStyledUI(out)
	}
	return NewPlainUI(out)
}

type consoleUI struct {
	console *Console
}

func (c consoleUI) Info(msg string) {
	c.console.Info(msg)
}

func (c consoleUI) Warn(msg string) {
	c.console.Warn(msg)
}

func (c consoleUI) Success(msg string) {
	c.console.Success(msg)
}

func (c consoleUI) Status(verb, detail string) {
	c.console.Status(verb, detail)
}

func (c consoleUI) Block(emoji, title string, rows []KeyValue) {
	c.console.BlockStart(emoji, title)
	for _, kv := range rows {
		c.console.Item(kv.Key, kv.Value)
	}
	c.console.BlockEnd()
}
