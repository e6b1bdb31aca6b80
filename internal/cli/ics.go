package cli

import (
	"context"
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/chk/internal/calendar"
	"github.com/calvinalkan/chk/internal/checklist"
	"github.com/calvinalkan/chk/internal/session"
)

// IcsCmd returns the ics command.
func IcsCmd(cfg *session.Config) *Command {
	fs := flag.NewFlagSet("ics", flag.ContinueOnError)
	output := fs.StringP("output", "o", stdioPath, "Write to `file` (- for stdout)")
	all := fs.Bool("all", false, "Include items already done")

	return &Command{
		Flags: fs,
		Usage: "ics [flags]",
		Short: "Export automatic deadlines as an iCalendar file",
		Long: `Export the automatic deadlines as all-day events for calendar apps.

Items already done are left out unless --all is given. Needs the exit
authorization date.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: use -o to choose the file", ErrTooManyArgs)
			}

			return execIcs(o, cfg, *output, *all)
		},
	}
}

func execIcs(o *IO, cfg *session.Config, path string, all bool) error {
	var events []calendar.Event

	err := session.View(cfg, func(s *checklist.Store) error {
		if s.Anchor() == nil {
			o.Warn("exit authorization date not set", "run 'chk date YYYY-MM-DD' to derive deadlines")
		}

		events = deadlineEvents(s, all)

		return nil
	})
	if err != nil {
		return err
	}

	ics := calendar.Build(events, time.Now())

	if path == stdioPath {
		o.Printf("%s", ics)

		return nil
	}

	abs := cfg.ResolvePath(path)

	if err := session.WriteFile(abs, []byte(ics)); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}

	o.Printf("Wrote %d events to %s\n", len(events), abs)

	return nil
}

func deadlineEvents(s *checklist.Store, all bool) []calendar.Event {
	var events []calendar.Event

	for _, c := range checklist.Categories() {
		for _, st := range s.CategoryStatuses(c) {
			if st.Done && !all {
				continue
			}

			events = append(events, calendar.Event{
				UID:         st.Key.String() + "@chk",
				Summary:     st.Label,
				Description: c.Name(),
				Date:        st.Deadline,
			})
		}
	}

	return events
}
