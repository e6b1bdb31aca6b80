package cli

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/chk/internal/checklist"
	"github.com/calvinalkan/chk/internal/session"
)

// RefCmd returns the ref command.
func RefCmd(cfg *session.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("ref", flag.ContinueOnError),
		Usage: "ref passport|medical",
		Short: "Show a reference table",
		Long: `Show a static reference table.

  passport   documents and steps for passports and visas
  medical    tips for the health inspection

Rows tied to the exit authorization date show their deadline once it is set.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: passport or medical", ErrUnknownReference)
			}

			var rows []checklist.ReferenceRow

			switch args[0] {
			case "passport":
				rows = checklist.PassportReference()
			case "medical":
				rows = checklist.MedicalTips()
			default:
				return fmt.Errorf("%w: %s (want passport or medical)", ErrUnknownReference, args[0])
			}

			return session.View(cfg, func(s *checklist.Store) error {
				o.Println(renderReference(o, rows, s.Anchor()))

				return nil
			})
		},
	}
}

func renderReference(o *IO, rows []checklist.ReferenceRow, anchor *civil.Date) string {
	withWhen := false

	for _, r := range rows {
		if r.When != "" {
			withWhen = true

			break
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(o.style.dim)

	if withWhen {
		t.Headers("Grupo", "Item", "Quando", "Observação")
	} else {
		t.Headers("Grupo", "Item", "Observação")
	}

	for _, r := range rows {
		when := r.When
		if d, ok := r.Deadline(anchor); ok {
			when += " (" + formatDate(d) + ")"
		}

		if withWhen {
			t.Row(r.Group, r.Item, when, r.Note)
		} else {
			t.Row(r.Group, r.Item, r.Note)
		}
	}

	return t.Render()
}
