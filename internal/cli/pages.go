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

const (
	shortIDLen  = 8
	minIDPrefix = 4
)

// PagesCmd returns the pages command.
func PagesCmd(cfg *session.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("pages", flag.ContinueOnError),
		Usage: "pages",
		Short: "List pages with their progress",
		Long: `List every checklist page with its completion percentage.

Built-in pages can be addressed by name, slug or number in other commands.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: pages takes no arguments", ErrTooManyArgs)
			}

			return session.View(cfg, func(s *checklist.Store) error {
				execPages(o, s)

				return nil
			})
		},
	}
}

func execPages(o *IO, s *checklist.Store) {
	for i, p := range checklist.Pages() {
		c := s.PageProgress(p)
		o.Printf("%d. %s [%s]  %d%% (%d/%d)\n", i+1, p.Name, p.Slug, c.Percent(), c.Done, c.Total)
	}

	for _, name := range s.ManualPages()[len(checklist.Pages()):] {
		c := s.PageProgress(checklist.Page{Name: name})
		o.Printf("-  %s  %d%% (%d/%d)\n", name, c.Percent(), c.Done, c.Total)
	}

	o.Printf("\nProgresso geral: %d%%\n", s.OverallProgress().Percent())
}

// resolvePage maps a page argument to a page. Built-in pages match by name,
// slug or number; any other list must already exist in the store.
func resolvePage(s *checklist.Store, arg string) (checklist.Page, error) {
	if p, ok := checklist.LookupPage(arg); ok {
		return p, nil
	}

	if slices.Contains(s.ManualPages(), arg) {
		return checklist.Page{Name: arg}, nil
	}

	return checklist.Page{}, fmt.Errorf("%w: %s (see 'chk pages')", checklist.ErrUnknownPage, arg)
}

// resolveManual finds a manual task of page by "#N" position or by a unique
// ID prefix.
func resolveManual(s *checklist.Store, page, ref string) (checklist.ManualTask, error) {
	tasks := s.ManualTasks(page)

	if pos, ok := strings.CutPrefix(ref, "#"); ok {
		n, err := strconv.Atoi(pos)
		if err != nil || n < 1 || n > len(tasks) {
			return checklist.ManualTask{}, fmt.Errorf("%w: position %s in %q", checklist.ErrManualTaskNotFound, ref, page)
		}

		return s.ManualTaskAt(page, n-1), nil
	}

	if len(ref) < minIDPrefix {
		return checklist.ManualTask{}, fmt.Errorf("%w: %q", ErrIDPrefixTooShort, ref)
	}

	var matches []checklist.ManualTask

	for _, t := range tasks {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return checklist.ManualTask{}, fmt.Errorf("%w: %s in %q", checklist.ErrManualTaskNotFound, ref, page)
	case 1:
		return matches[0], nil
	default:
		return checklist.ManualTask{}, fmt.Errorf("%w: %s matches %d tasks", ErrAmbiguousTask, ref, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}

	return id
}
