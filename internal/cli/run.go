package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/calvinalkan/chk/internal/session"
)

const (
	minArgs      = 2
	consumedOne  = 1
	consumedTwo  = 2
	consumedNone = 0
	helpFlag     = "--help"
)

// Run is the main entry point. Returns exit code.
// sigCh cancels the command context when a signal arrives; it may be nil.
func Run(in io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	if len(args) < minArgs {
		printUsage(out)

		return 0
	}

	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	if len(flags.remaining) == 0 || flags.remaining[0] == helpFlag || flags.remaining[0] == "-h" {
		printUsage(out)

		return 0
	}

	cfg, err := session.LoadConfig(session.LoadConfigInput{
		WorkDirOverride:  flags.workDir,
		ConfigPath:       flags.configPath,
		StateDirOverride: flags.stateDir,
		Env:              env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	o := NewIO(out, errOut)
	o.style = newStyles(out, cfg.Color)

	name := flags.remaining[0]

	cmd, ok := commandMap(&cfg, in)[name]
	if !ok {
		fprintln(errOut, "error: unknown command:", name)
		printUsage(errOut)

		return 1
	}

	if code := cmd.Run(ctx, o, flags.remaining[1:]); code != 0 {
		return code
	}

	return o.Finish()
}

// allCommands returns a fresh command set in help order. Flag sets hold
// parse state, so each invocation gets its own.
func allCommands(cfg *session.Config, in io.Reader) []*Command {
	return []*Command{
		DateCmd(cfg),
		PagesCmd(cfg),
		LsCmd(cfg),
		ProgressCmd(cfg),
		DoneCmd(cfg),
		UndoCmd(cfg),
		AddCmd(cfg),
		CheckCmd(cfg),
		UncheckCmd(cfg),
		NoteCmd(cfg),
		RmCmd(cfg),
		ExportCmd(cfg),
		ImportCmd(cfg, in),
		RefCmd(cfg),
		IcsCmd(cfg),
		ShellCmd(cfg, in),
		PrintConfigCmd(cfg),
	}
}

func commandMap(cfg *session.Config, in io.Reader) map[string]*Command {
	cmds := allCommands(cfg, in)

	m := make(map[string]*Command, len(cmds))
	for _, c := range cmds {
		m[c.Name()] = c
	}

	return m
}

type globalFlags struct {
	workDir    string
	configPath string
	stateDir   string
	remaining  []string
}

func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	idx := 0
	for idx < len(args) {
		consumed, err := parseFlag(args, idx, &flags)
		if err != nil {
			return globalFlags{}, err
		}

		if consumed == 0 {
			// Not a flag, this is the command
			flags.remaining = args[idx:]

			break
		}

		idx += consumed
	}

	return flags, nil
}

// parseFlag tries to parse a flag at args[idx]. Returns number of args consumed (0 if not a flag).
func parseFlag(args []string, idx int, flags *globalFlags) (int, error) {
	arg := args[idx]

	// -C/--cwd flag (work directory)
	if (arg == "-C" || arg == "--cwd") && idx+1 < len(args) {
		flags.workDir = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--cwd="); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	// -c/--config flag
	if arg == "-c" || arg == "--config" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", session.ErrFlagRequiresArg, arg)
		}

		flags.configPath = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--config="); ok {
		flags.configPath = after

		return consumedOne, nil
	}

	if arg == "--state-dir" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", session.ErrFlagRequiresArg, arg)
		}

		flags.stateDir = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--state-dir="); ok {
		flags.stateDir = after

		return consumedOne, nil
	}

	// -h/--help flags
	if arg == "-h" || arg == helpFlag {
		flags.remaining = []string{helpFlag}

		return len(args) - idx, nil
	}

	if strings.HasPrefix(arg, "-") && arg != "-" {
		return consumedNone, fmt.Errorf("%w: %s", session.ErrUnknownFlag, arg)
	}

	return consumedNone, nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer) {
	fprintln(w, `chk - posting checklist with deadlines derived from your exit authorization date

Usage: chk [options] <command> [args]

Options:
  -C, --cwd <dir>        Run as if started in <dir>
  -c, --config <file>    Use specified config file
  --state-dir <dir>      Override the state directory

Commands:`)

	for _, c := range allCommands(&session.Config{}, nil) {
		fprintln(w, c.HelpLine())
	}

	fprintln(w, `
Run 'chk <command> --help' for details.`)
}
