package cli

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/chk/internal/checklist"
	"github.com/calvinalkan/chk/internal/session"
)

// LsCmd returns the ls command.
func LsCmd(cfg *session.Config) *Command {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	pending := fs.Bool("pending", false, "Hide completed items")
	overdue := fs.Bool("overdue", false, "Only show deadlines due today or overdue that are not done")

	return &Command{
		Flags: fs,
		Usage: "ls [page] [flags]",
		Short: "Show checklist items and deadlines",
		Long: `Show the checklist. Without a page every page is shown.

Automatic items show their key (use it with 'chk done'), the deadline and the
status. Manual tasks show the first characters of their ID.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("%w: expected at most one page", ErrTooManyArgs)
			}

			opts := lsOptions{pending: *pending, overdue: *overdue, today: cfg.Today()}

			return session.View(cfg, func(s *checklist.Store) error {
				return execLs(o, s, args, opts)
			})
		},
	}
}

type lsOptions struct {
	pending bool
	overdue bool
	today   civil.Date
}

func execLs(o *IO, s *checklist.Store, args []string, opts lsOptions) error {
	var pages []checklist.Page

	if len(args) == 1 {
		p, err := resolvePage(s, args[0])
		if err != nil {
			return err
		}

		pages = []checklist.Page{p}
	} else {
		for _, name := range s.ManualPages() {
			p, ok := checklist.PageNamed(name)
			if !ok {
				p = checklist.Page{Name: name}
			}

			pages = append(pages, p)
		}
	}

	for i, p := range pages {
		if i > 0 {
			o.Println()
		}

		renderPage(o, s, p, opts)
	}

	return nil
}

func renderPage(o *IO, s *checklist.Store, p checklist.Page, opts lsOptions) {
	c := s.PageProgress(p)
	o.Printf("%s  %d%% (%d/%d)\n", o.style.title.Render(p.Name), c.Percent(), c.Done, c.Total)

	if p.HasCatalog() {
		if s.Anchor() == nil {
			o.Println("  " + o.style.dim.Render("Set the exit authorization date first: chk date YYYY-MM-DD"))
		}

		for _, st := range s.CategoryStatuses(p.Catalog) {
			if opts.pending && st.Done {
				continue
			}

			if opts.overdue && (st.Done || checklist.Classify(st.Deadline, opts.today) == checklist.Upcoming) {
				continue
			}

			o.Printf("  %s %s %s  %s  %s\n", st.Key, box(st.Done), st.Label,
				o.style.chip(st.Deadline, opts.today), o.style.badge(st.Done))
		}
	}

	if opts.overdue {
		return
	}

	for _, t := range s.ManualTasks(p.Name) {
		if opts.pending && t.Done {
			continue
		}

		o.Printf("  %s %s %s  %s\n", shortID(t.ID), box(t.Done), t.Title, o.style.badge(t.Done))

		if t.Notes != "" {
			o.Println("      " + o.style.dim.Render(t.Notes))
		}
	}
}
