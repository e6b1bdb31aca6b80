package cli

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/chk/internal/checklist"
	"github.com/calvinalkan/chk/internal/session"
)

// ProgressCmd returns the progress command.
func ProgressCmd(cfg *session.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("progress", flag.ContinueOnError),
		Usage: "progress [page]",
		Short: "Print completion of a page or of everything",
		Long: `Print the completion percentage as "N% (done/total)".

Without a page the overall progress across every page and every automatic
catalog is printed. Automatic items only count once the exit authorization
date is set.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("%w: expected at most one page", ErrTooManyArgs)
			}

			return session.View(cfg, func(s *checklist.Store) error {
				c := s.OverallProgress()

				if len(args) == 1 {
					p, err := resolvePage(s, args[0])
					if err != nil {
						return err
					}

					c = s.PageProgress(p)
				}

				o.Printf("%d%% (%d/%d)\n", c.Percent(), c.Done, c.Total)

				return nil
			})
		},
	}
}
