package cli

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/chk/internal/checklist"
	"github.com/calvinalkan/chk/internal/session"
)

const brDateLayout = "02/01/2006"

// DateCmd returns the date command.
func DateCmd(cfg *session.Config) *Command {
	fs := flag.NewFlagSet("date", flag.ContinueOnError)
	clearDate := fs.Bool("clear", false, "Remove the exit authorization date")

	return &Command{
		Flags: fs,
		Usage: "date [YYYY-MM-DD|DD/MM/YYYY] [flags]",
		Short: "Show or set the exit authorization date",
		Long: `Show or set the country exit authorization date.

Every automatic deadline is derived from this date. Without an argument the
current date is printed. Accepts ISO (2025-06-01) or Brazilian (01/06/2025) form.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execDate(o, cfg, args, *clearDate)
		},
	}
}

func execDate(o *IO, cfg *session.Config, args []string, clearDate bool) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: expected at most one date", ErrTooManyArgs)
	}

	if clearDate {
		if len(args) > 0 {
			return fmt.Errorf("%w: --clear with a date", ErrConflictingArgs)
		}

		err := session.Update(cfg, func(s *checklist.Store) error {
			s.SetAnchor(nil)

			return nil
		})
		if err != nil {
			return err
		}

		o.Println("Exit authorization date cleared")

		return nil
	}

	if len(args) == 0 {
		return session.View(cfg, func(s *checklist.Store) error {
			anchor := s.Anchor()
			if anchor == nil {
				o.Println("(not set)")

				return nil
			}

			o.Println(anchor.String(), "("+formatDate(*anchor)+")")

			return nil
		})
	}

	d, err := parseDate(args[0])
	if err != nil {
		return err
	}

	err = session.Update(cfg, func(s *checklist.Store) error {
		s.SetAnchor(&d)

		return nil
	})
	if err != nil {
		return err
	}

	o.Println("Exit authorization date set to", formatDate(d))

	return nil
}

// parseDate accepts YYYY-MM-DD or DD/MM/YYYY.
func parseDate(s string) (civil.Date, error) {
	if d, err := civil.ParseDate(s); err == nil {
		return d, nil
	}

	t, err := time.Parse(brDateLayout, s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("%w: %q (want YYYY-MM-DD or DD/MM/YYYY)", ErrInvalidDate, s)
	}

	return civil.DateOf(t), nil
}
