package client

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/grocy-sync/models"
)

const ungroupedTitle = "Other"

// Printer renders shopping list views and notices for the terminal.
type Printer struct {
	out io.Writer

	title   lipgloss.Style
	group   lipgloss.Style
	done    lipgloss.Style
	badge   lipgloss.Style
	help    lipgloss.Style
	failure lipgloss.Style
	noteBox lipgloss.Style
}

// NewPrinter creates a printer for out. Colours are only used when out is
// a terminal.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:     out,
		title:   r.NewStyle().Bold(true),
		group:   r.NewStyle().Bold(true).Underline(true),
		done:    r.NewStyle().Faint(true).Strikethrough(true),
		badge:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		help:    r.NewStyle().Faint(true),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		noteBox: r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// PrintView writes the view. Item positions are printed in front of every
// item; they are what toggle and delete take.
func (p *Printer) PrintView(v *models.ShoppingListView) {
	fmt.Fprintln(p.out, p.RenderView(v))
}

func (p *Printer) RenderView(v *models.ShoppingListView) string {
	if v == nil {
		return p.help.Render("nothing cached yet, run sync")
	}

	var b strings.Builder

	name := "Shopping list " + strconv.Itoa(v.ListID)
	if v.List != nil {
		name = v.List.Name
	}
	b.WriteString(p.title.Render(name))
	if v.Offline {
		b.WriteString(" " + p.badge.Render("[offline]"))
	}
	if !v.Loaded {
		b.WriteString(" " + p.badge.Render("[not synced]"))
	}
	b.WriteString("\n")
	b.WriteString(p.help.Render(fmt.Sprintf("%d undone, %d missing, filter: %s", v.UndoneCount, v.MissingCount, v.Filter)))
	if v.Search != "" {
		b.WriteString(p.help.Render(fmt.Sprintf(", search: %q", v.Search)))
	}
	b.WriteString("\n")

	if v.Notes != "" {
		b.WriteString(p.noteBox.Render(v.Notes))
		b.WriteString("\n")
	}

	if len(v.Items) == 0 {
		b.WriteString("\n")
		b.WriteString(p.help.Render("no items"))
		return b.String()
	}

	width := len(strconv.Itoa(len(v.Items) - 1))
	position := 0
	for _, g := range v.Groups {
		title := g.Name
		if title == "" {
			title = ungroupedTitle
		}
		b.WriteString("\n")
		b.WriteString(p.group.Render(title))
		b.WriteString("\n")

		for _, it := range g.Items {
			fmt.Fprintf(&b, "%*d %s\n", width, position, p.renderItem(it))
			position++
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func (p *Printer) renderItem(it models.ViewItem) string {
	check := "[ ]"
	if it.IsDone() {
		check = "[x]"
	}

	line := fmt.Sprintf("%s %s %s", check, formatAmount(it.Amount, it.Unit), it.Name)
	if it.IsDone() {
		line = p.done.Render(line)
	}

	if it.Missing {
		line += " " + p.badge.Render("missing")
	}
	if it.IsPending() {
		line += " " + p.badge.Render("*")
	}
	return line
}

func formatAmount(amount float64, unit string) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if unit != "" {
		s += " " + unit
	}
	return s
}

// PrintNotice writes a one-shot message.
func (p *Printer) PrintNotice(n models.Notice) {
	switch n.Kind {
	case models.NoticeError:
		fmt.Fprintln(p.out, p.failure.Render("error: "+n.Message))
	case models.NoticeConnectivity:
		fmt.Fprintln(p.out, p.badge.Render(n.Message))
	default:
		fmt.Fprintln(p.out, p.help.Render(n.Message))
	}
}

// PrintBuildInfo writes the version banner.
func (p *Printer) PrintBuildInfo(info models.AppBuildInfo) {
	fmt.Fprintln(p.out, "grocy-sync "+info.String())
}
