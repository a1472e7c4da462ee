package commands

import (
	"Nuremento/internal/config"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

// Коды выхода CLI
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Dispatch is the single entry point to execute CLI commands.
// It prints help and usage messages and returns a process exit code.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if wantsGlobalHelp(os.Args[1:]) {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitOK
	}
	if !flag.Parsed() {
		flag.Parse()
	}
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	name := strings.ToLower(args[0])
	if name == "help" {
		return dispatchHelp(args[1:])
	}

	c, ok := Get(name)
	if !ok {
		return unknownCommand(name)
	}
	return report(c, c.Run(ctx, cfg, args[1:]))
}

// dispatchHelp: "help", "help <command>" или "help <section>" (memories, lake, time-capsules, account).
func dispatchHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitOK
	}
	topic := strings.ToLower(args[0])
	if c, ok := Get(topic); ok {
		fmt.Fprintf(Out, "Usage: %s\n  %s\n", c.Usage(), c.Description())
		return exitOK
	}
	if text, ok := FormatSectionUsage(topic); ok {
		fmt.Fprint(Out, text)
		return exitOK
	}
	return unknownCommand(args[0])
}

func report(c Command, err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return exitUsage
	case errors.Is(err, ErrUnauthorized):
		fmt.Fprintf(Out, "%s error: %v\n", c.Name(), err)
		fmt.Fprintln(Out, "hint: nuremento login <token>")
		return exitError
	default:
		fmt.Fprintf(Out, "%s error: %v\n", c.Name(), err)
		return exitError
	}
}

func unknownCommand(name string) int {
	fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
	fmt.Fprint(Out, FormatGlobalUsage())
	return exitUsage
}

// wantsGlobalHelp ловит --help/-h, переданные после имени команды (flag их уже не увидит).
func wantsGlobalHelp(osArgs []string) bool {
	for _, a := range osArgs {
		if a == "--help" || a == "-h" {
			return true
		}
	}
	return false
}
