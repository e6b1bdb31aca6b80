package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/chk/internal/checklist"
	"github.com/calvinalkan/chk/internal/session"
)

const stdioPath = "-"

// ExportCmd returns the export command.
func ExportCmd(cfg *session.Config) *Command {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	output := fs.StringP("output", "o", "", "Write to `file` (- for stdout; default from config export_file)")

	return &Command{
		Flags: fs,
		Usage: "export [flags]",
		Short: "Export the checklist as a JSON snapshot",
		Long: `Export manual tasks, the exit authorization date and the completion
flags as a JSON snapshot that 'chk import' accepts.

Flags are written with bare keys (pass-01). The first version of the
checklist only reads "done-" keys (done-pass-01), so it will not see them.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: use -o to choose the file", ErrTooManyArgs)
			}

			path := *output
			if path == "" {
				path = cfg.ExportFile
			}

			return execExport(o, cfg, path)
		},
	}
}

func execExport(o *IO, cfg *session.Config, path string) error {
	var data []byte

	err := session.View(cfg, func(s *checklist.Store) error {
		var exportErr error

		data, exportErr = s.Export()

		return exportErr
	})
	if err != nil {
		return err
	}

	if path == stdioPath {
		o.Printf("%s", data)

		return nil
	}

	abs := cfg.ResolvePath(path)

	if err := session.WriteFile(abs, data); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}

	o.Println("Exported to", abs)

	return nil
}

// ImportCmd returns the import command. in is read when the file is "-".
func ImportCmd(cfg *session.Config, in io.Reader) *Command {
	return &Command{
		Flags: flag.NewFlagSet("import", flag.ContinueOnError),
		Usage: "import <file>",
		Short: "Replace the checklist with a JSON snapshot",
		Long: `Replace the whole checklist with a snapshot written by 'chk export'.

Use - to read from stdin. Files from the first version of the checklist are
accepted. A malformed file leaves the checklist untouched.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execImport(o, cfg, in, args)
		},
	}
}

func execImport(o *IO, cfg *session.Config, in io.Reader, args []string) error {
	if len(args) == 0 {
		return ErrFileRequired
	}

	if len(args) > 1 {
		return fmt.Errorf("%w: expected one file", ErrTooManyArgs)
	}

	data, err := readInput(cfg, in, args[0])
	if err != nil {
		return err
	}

	var (
		snap        checklist.Snapshot
		passthrough []string
	)

	err = session.Update(cfg, func(s *checklist.Store) error {
		if importErr := s.Import(data); importErr != nil {
			return fmt.Errorf("cannot import %s: %w", args[0], importErr)
		}

		snap = s.Snapshot()
		passthrough = s.PassthroughKeys()

		return nil
	})
	if err != nil {
		return err
	}

	tasks := 0
	for _, list := range snap.Lists {
		tasks += len(list)
	}

	anchor := "(not set)"
	if snap.AuthDate != nil {
		anchor = formatDate(*snap.AuthDate)
	}

	o.Printf("Imported %d manual tasks, %d flags, exit authorization date %s\n", tasks, len(snap.Extras), anchor)

	if len(passthrough) > 0 {
		o.Printf("Kept %d unrecognized flag keys: %v\n", len(passthrough), passthrough)
	}

	return nil
}

func readInput(cfg *session.Config, in io.Reader, path string) ([]byte, error) {
	if path == stdioPath {
		if in == nil {
			return nil, ErrStdinUnavailable
		}

		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(cfg.ResolvePath(path))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return data, nil
}
