package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/calvinalkan/chk/internal/session"
)

const historyFileName = "history"

var (
	errInvalidLine = errors.New("cannot parse line")
	errNestedShell = errors.New("already in a shell")
)

// ShellCmd returns the shell command.
func ShellCmd(cfg *session.Config, in io.Reader) *Command {
	return &Command{
		Flags: flag.NewFlagSet("shell", flag.ContinueOnError),
		Usage: "shell",
		Short: "Run commands interactively",
		Long: `Start an interactive session that accepts the same commands without
the 'chk' prefix. Lines are split like a POSIX shell would: quote arguments
with spaces and escape with a backslash. Pipes, redirects and ';' are not
supported. Leave with exit, quit, q or Ctrl-D.

When stdin is not a terminal, commands are read one per line without a prompt.`,
		Exec: func(ctx context.Context, o *IO, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: shell takes no arguments", ErrTooManyArgs)
			}

			sh := &shell{cfg: cfg, io: o}

			if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				return sh.runInteractive(ctx)
			}

			if in == nil {
				return nil
			}

			return sh.runScript(ctx, in)
		},
	}
}

type shell struct {
	cfg   *session.Config
	io    *IO
	liner *liner.State
}

func (sh *shell) runInteractive(ctx context.Context) error {
	sh.liner = liner.NewLiner()
	defer sh.liner.Close()

	sh.liner.SetCtrlCAborts(true)
	sh.liner.SetCompleter(sh.completer)

	if f, err := os.Open(sh.historyPath()); err == nil {
		_, _ = sh.liner.ReadHistory(f)
		_ = f.Close()
	}

	defer sh.saveHistory()

	sh.io.Println("chk shell. Type 'help' for commands.")

	for ctx.Err() == nil {
		line, err := sh.liner.Prompt("chk> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("reading input: %w", err)
		}

		if strings.TrimSpace(line) != "" {
			sh.liner.AppendHistory(line)
		}

		if sh.exec(ctx, line) {
			return nil
		}
	}

	return nil
}

func (sh *shell) runScript(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for ctx.Err() == nil && scanner.Scan() {
		if sh.exec(ctx, scanner.Text()) {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	return nil
}

// exec runs one line and reports whether the shell should stop.
// Command errors are printed and the shell keeps going.
func (sh *shell) exec(ctx context.Context, line string) bool {
	args, err := splitWords(line)
	if err != nil {
		sh.io.ErrPrintln("error:", err)

		return false
	}

	if len(args) == 0 || strings.HasPrefix(args[0], "#") {
		return false
	}

	switch args[0] {
	case "exit", "quit", "q":
		return true
	case "help", "?":
		for _, c := range allCommands(sh.cfg, nil) {
			if c.Name() != "shell" {
				sh.io.Println(c.HelpLine())
			}
		}

		sh.io.Println("  exit                         Leave the shell")

		return false
	case "shell":
		sh.io.ErrPrintln("error:", errNestedShell)

		return false
	}

	// Fresh commands per line: flag sets keep parsed values.
	cmd, ok := commandMap(sh.cfg, nil)[args[0]]
	if !ok {
		sh.io.ErrPrintln("error: unknown command:", args[0])

		return false
	}

	cmd.Run(ctx, sh.io, args[1:])

	return false
}

func (sh *shell) completer(line string) []string {
	var completions []string

	for _, c := range allCommands(sh.cfg, nil) {
		if strings.HasPrefix(c.Name(), line) && c.Name() != "shell" {
			completions = append(completions, c.Name())
		}
	}

	slices.Sort(completions)

	return completions
}

func (sh *shell) historyPath() string {
	return filepath.Join(sh.cfg.StateDirAbs, historyFileName)
}

func (sh *shell) saveHistory() {
	if err := os.MkdirAll(sh.cfg.StateDirAbs, 0o750); err != nil {
		return
	}

	if f, err := os.Create(sh.historyPath()); err == nil {
		_, _ = sh.liner.WriteHistory(f)
		_ = f.Close()
	}
}

// splitWords splits a command line into arguments with POSIX shell quoting.
// Operators that would end a simple command (;, &, |, <, >) are rejected
// rather than silently cutting the line short.
func splitWords(line string) ([]string, error) {
	p := shellwords.NewParser()

	words, err := p.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidLine, err)
	}

	if p.Position >= 0 {
		return nil, fmt.Errorf("%w: pipes, redirects and ';' are not supported", errInvalidLine)
	}

	if len(words) == 0 {
		return nil, nil
	}

	return words, nil
}
