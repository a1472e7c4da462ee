package commands

import (
	"Nuremento/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// Command represents a CLI subcommand.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "capsule-open".
	Name() string
	// Description is a short human-readable description shown in help.
	Description() string
	// Usage returns the exact usage string, e.g. "capsule-open <id>".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

const otherSection = "Other"

var (
	registry = map[string]Command{}
	// section title -> command names, titles in registration order
	sections     = map[string][]string{}
	sectionOrder []string
)

// Out - общий writer для вывода CLI, в тестах подменяется буфером.
var Out io.Writer = os.Stdout

// RegisterSection adds commands under a help heading. Called from init().
func RegisterSection(title string, cmds ...Command) {
	if _, ok := sections[title]; !ok {
		sectionOrder = append(sectionOrder, title)
	}
	for _, c := range cmds {
		if _, dup := registry[c.Name()]; !dup {
			sections[title] = append(sections[title], c.Name())
		}
		registry[c.Name()] = c
	}
}

// RegisterCmd adds a command without a dedicated heading.
func RegisterCmd(cmd Command) {
	RegisterSection(otherSection, cmd)
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// sectionKey: "Time capsules" -> "time-capsules".
func sectionKey(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-")
}

// FormatSectionUsage prints one help section by its key, e.g. "time-capsules".
func FormatSectionUsage(key string) (string, bool) {
	for _, title := range sectionOrder {
		if sectionKey(title) != key {
			continue
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%s:\n", title)
		writeSection(&b, title)
		return b.String(), true
	}
	return "", false
}

func writeSection(b *strings.Builder, title string) {
	for _, name := range sections[title] {
		c := registry[name]
		fmt.Fprintf(b, "  %-28s %s\n", c.Usage(), c.Description())
	}
}

// FormatGlobalUsage builds the help text, one block per section.
func FormatGlobalUsage() string {
	var b strings.Builder
	b.WriteString("Nuremento CLI\n\n")
	b.WriteString("Usage:\n  nuremento [--base-url <host:port>] [--token-file <path>] <command> [args]\n  nuremento help <command|section>\n")
	for _, title := range sectionOrder {
		fmt.Fprintf(&b, "\n%s:\n", title)
		writeSection(&b, title)
	}
	return b.String()
}
