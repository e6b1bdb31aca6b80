package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/chk/internal/checklist"
	"github.com/calvinalkan/chk/internal/session"
)

const manualRefHelp = `<id> is a unique prefix of the task ID shown by 'chk ls', or #N for the
N-th task of the page.`

// AddCmd returns the add command.
func AddCmd(cfg *session.Config) *Command {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	newPage := fs.Bool("new-page", false, "Create the page if it does not exist")

	return &Command{
		Flags: fs,
		Usage: "add <page> <title> [flags]",
		Short: "Add a manual task to a page",
		Long: `Add a manual task to a page and print its ID.

Words after the page are joined into the title. Pages other than the built-in
ones must be created with --new-page. A new page cannot be named after a
built-in page slug or be a number.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execAdd(o, cfg, args, *newPage)
		},
	}
}

func execAdd(o *IO, cfg *session.Config, args []string, newPage bool) error {
	if len(args) == 0 {
		return ErrPageRequired
	}

	title := strings.Join(args[1:], " ")
	if strings.TrimSpace(title) == "" {
		return checklist.ErrTitleRequired
	}

	var task checklist.ManualTask

	err := session.Update(cfg, func(s *checklist.Store) error {
		name := strings.TrimSpace(args[0])

		if newPage {
			if err := checkNewPageName(s, name); err != nil {
				return err
			}
		}

		page, err := resolvePage(s, args[0])
		if err != nil {
			if !newPage || name == "" {
				return err
			}

			page = checklist.Page{Name: name}
		}

		task, err = s.AddManualTask(page.Name, title)

		return err
	})
	if err != nil {
		return err
	}

	o.Println(task.ID)

	return nil
}

// checkNewPageName rejects new page names that page lookups would resolve
// to a built-in page: slugs and numbers. Existing pages pass.
func checkNewPageName(s *checklist.Store, name string) error {
	if slices.Contains(s.ManualPages(), name) {
		return nil
	}

	if _, ok := checklist.LookupPage(name); ok {
		return fmt.Errorf("%w: %q names a built-in page (see 'chk pages')", ErrPageNameReserved, name)
	}

	if _, err := strconv.Atoi(name); err == nil {
		return fmt.Errorf("%w: %q is a page number", ErrPageNameReserved, name)
	}

	return nil
}

// CheckCmd returns the check command.
func CheckCmd(cfg *session.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("check", flag.ContinueOnError),
		Usage: "check <page> <id>",
		Short: "Mark a manual task as done",
		Long:  "Mark a manual task as done.\n\n" + manualRefHelp,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execSetManualDone(o, cfg, args, true)
		},
	}
}

// UncheckCmd returns the uncheck command.
func UncheckCmd(cfg *session.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("uncheck", flag.ContinueOnError),
		Usage: "uncheck <page> <id>",
		Short: "Mark a manual task as not done",
		Long:  "Mark a manual task as not done.\n\n" + manualRefHelp,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execSetManualDone(o, cfg, args, false)
		},
	}
}

func execSetManualDone(o *IO, cfg *session.Config, args []string, done bool) error {
	task, err := updateManual(cfg, args, 2, func(s *checklist.Store, page string, t checklist.ManualTask) error {
		return s.SetManualDone(page, t.ID, done)
	})
	if err != nil {
		return err
	}

	o.Printf("%s %s  %s\n", shortID(task.ID), task.Title, o.style.badge(done))

	return nil
}

// NoteCmd returns the note command.
func NoteCmd(cfg *session.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("note", flag.ContinueOnError),
		Usage: "note <page> <id> [text]",
		Short: "Set or clear the notes of a manual task",
		Long:  "Replace the notes of a manual task. Without text the notes are cleared.\n\n" + manualRefHelp,
		Exec: func(_ context.Context, o *IO, args []string) error {
			notes := ""
			if len(args) > 2 {
				notes = strings.Join(args[2:], " ")
			}

			task, err := updateManual(cfg, args, -1, func(s *checklist.Store, page string, t checklist.ManualTask) error {
				return s.SetManualNotes(page, t.ID, notes)
			})
			if err != nil {
				return err
			}

			if notes == "" {
				o.Println("Notes cleared for", shortID(task.ID))
			} else {
				o.Println("Notes updated for", shortID(task.ID))
			}

			return nil
		},
	}
}

// RmCmd returns the rm command.
func RmCmd(cfg *session.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("rm", flag.ContinueOnError),
		Usage: "rm <page> <id>",
		Short: "Delete a manual task",
		Long:  "Delete a manual task. Later tasks of the page move up one position.\n\n" + manualRefHelp,
		Exec: func(_ context.Context, o *IO, args []string) error {
			task, err := updateManual(cfg, args, 2, func(s *checklist.Store, page string, t checklist.ManualTask) error {
				return s.DeleteManualTask(page, t.ID)
			})
			if err != nil {
				return err
			}

			o.Println("Removed", shortID(task.ID), task.Title)

			return nil
		},
	}
}

// updateManual resolves <page> <id> from args and applies fn under the
// state lock. maxArgs < 0 allows trailing arguments.
func updateManual(
	cfg *session.Config,
	args []string,
	maxArgs int,
	fn func(s *checklist.Store, page string, t checklist.ManualTask) error,
) (checklist.ManualTask, error) {
	switch {
	case len(args) == 0:
		return checklist.ManualTask{}, ErrPageRequired
	case len(args) == 1:
		return checklist.ManualTask{}, ErrTaskRefRequired
	case maxArgs >= 0 && len(args) > maxArgs:
		return checklist.ManualTask{}, fmt.Errorf("%w: expected <page> <id>", ErrTooManyArgs)
	}

	var task checklist.ManualTask

	err := session.Update(cfg, func(s *checklist.Store) error {
		page, err := resolvePage(s, args[0])
		if err != nil {
			return err
		}

		task, err = resolveManual(s, page.Name, args[1])
		if err != nil {
			return err
		}

		return fn(s, page.Name, task)
	})

	return task, err
}
