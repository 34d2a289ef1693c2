package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/research-gateway/models"
)

const (
	markDefault = "●"
	markOther   = "○"
)

type view struct {
	page   lipgloss.Style
	title  lipgloss.Style
	label  lipgloss.Style
	faint  lipgloss.Style
	accent lipgloss.Style
}

// newView binds the styles to the color profile of w, so that output
// redirected to a file or pipe carries no escape sequences.
func newView(w io.Writer) *view {
	r := lipgloss.NewRenderer(w)

	return &view{
		page:   r.NewStyle().Padding(1, 2),
		title:  r.NewStyle().Bold(true),
		label:  r.NewStyle().Faint(true),
		faint:  r.NewStyle().Faint(true).Italic(true),
		accent: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	}
}

func (v *view) render(version string, choices models.ModelChoices) string {
	var b strings.Builder

	b.WriteString(v.title.Render("Research gateway"))
	b.WriteString(" ")
	b.WriteString(v.label.Render(version))
	b.WriteString("\n\n")
	b.WriteString(v.label.Render("Provider: "))
	b.WriteString(v.accent.Render(choices.Provider))
	b.WriteString("\n\n")

	if len(choices.Options) == 0 {
		b.WriteString(v.faint.Render(fmt.Sprintf("No models are known for provider %q.", choices.Provider)))
		return v.page.Render(b.String())
	}

	b.WriteString(v.modelTable(choices).String())
	b.WriteString("\n")
	b.WriteString(v.label.Render("Default model: "))
	b.WriteString(v.accent.Render(choices.Default))

	return v.page.Render(b.String())
}

func (v *view) modelTable(choices models.ModelChoices) *table.Table {
	rows := make([][]string, 0, len(choices.Options))
	for i, opt := range choices.Options {
		mark := markOther
		if i == 0 {
			mark = markDefault
		}
		rows = append(rows, []string{mark, opt.Label, opt.Value})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("", "ROLE", "MODEL").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return v.title.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}
