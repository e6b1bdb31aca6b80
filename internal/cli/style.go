package cli

import (
	"fmt"
	"io"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/calvinalkan/chk/internal/checklist"
	"github.com/calvinalkan/chk/internal/session"
)

var (
	colorGreen = lipgloss.Color("#16a34a")
	colorRed   = lipgloss.Color("#dc2626")
	colorGray  = lipgloss.Color("241")
)

// styles renders chips and badges for one output writer. Colors are dropped
// when the writer is not a terminal unless color is forced.
type styles struct {
	ok    lipgloss.Style
	bad   lipgloss.Style
	dim   lipgloss.Style
	title lipgloss.Style
}

func newStyles(w io.Writer, mode string) styles {
	r := lipgloss.NewRenderer(w)

	switch mode {
	case session.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case session.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		ok:    r.NewStyle().Foreground(colorGreen).Bold(true),
		bad:   r.NewStyle().Foreground(colorRed).Bold(true),
		dim:   r.NewStyle().Foreground(colorGray),
		title: r.NewStyle().Bold(true).Underline(true),
	}
}

// badge renders the done/waiting status.
func (s styles) badge(done bool) string {
	if done {
		return s.ok.Render("Feito")
	}

	return s.bad.Render("Aguardando")
}

// box renders a checkbox.
func box(done bool) string {
	if done {
		return "[x]"
	}

	return "[ ]"
}

// chip renders a deadline: green while upcoming, red on the day and after.
func (s styles) chip(deadline, today civil.Date) string {
	text := "Prazo: " + formatDate(deadline)

	switch checklist.Classify(deadline, today) {
	case checklist.Overdue:
		text += fmt.Sprintf(" (Atraso: %dd)", -checklist.DaysRemaining(deadline, today))
	case checklist.DueToday:
		text += " (HOJE)"
	case checklist.Upcoming:
		return s.ok.Render(text)
	}

	return s.bad.Render(text)
}

// formatDate renders d the way the checklist shows dates: DD/MM/YYYY.
func formatDate(d civil.Date) string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}
