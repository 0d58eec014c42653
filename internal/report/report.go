// Package report renders binding outcomes and recorded history as tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"autokeys/internal/keystroke"
	"autokeys/internal/shortcuts"
	"autokeys/internal/store"
)

// Printer writes tables styled for its writer's color profile.
type Printer struct {
	w      io.Writer
	style  keystroke.Style
	header lipgloss.Style
	cell   lipgloss.Style
	muted  lipgloss.Style
	warn   lipgloss.Style
	border lipgloss.Style
}

// NewPrinter creates a printer for w. Keystrokes are rendered in style.
func NewPrinter(w io.Writer, style keystroke.Style) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:      w,
		style:  style,
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
		muted:  r.NewStyle().Faint(true).Padding(0, 1),
		warn:   r.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 1),
		border: r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (p *Printer) table(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.border).
		Headers(headers...)
}

// Binding prints every request of b in collection order followed by a
// summary line.
func (p *Printer) Binding(name string, b *shortcuts.Binding) error {
	requests := b.Requests()
	missing := make(map[int]bool)

	t := p.table("Shortcut", "Request", "Requested", "Depth", "Note")
	for i, r := range requests {
		shortcut := r.Keystroke.Describe(p.style)
		if r.Keystroke.IsZero() {
			shortcut = "none"
			missing[i] = true
		}
		t.Row(shortcut, r.Label, r.Requested.Describe(p.style), strconv.Itoa(r.Depth),
			note(!r.Keystroke.IsZero(), r.Derived, r.Invokable))
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return p.header
		case missing[row]:
			return p.warn
		case col == 4:
			return p.muted
		}
		return p.cell
	})

	if _, err := fmt.Fprintln(p.w, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.w, "%s: %d requests, %d bound, %d dispatchable, %d unassigned, %d passes\n",
		name, len(requests), len(b.Result.Assigned), b.Table.Len(), len(b.Result.Unassigned), b.Result.Passes)
	return err
}

func note(assigned, derived, invokable bool) string {
	switch {
	case !assigned:
		return "unassigned"
	case derived && !invokable:
		return "moved, accelerator"
	case derived:
		return "moved"
	case !invokable:
		return "accelerator"
	}
	return ""
}

// Runs prints recorded runs.
func (p *Printer) Runs(runs []store.Run) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(p.w, "no recorded runs")
		return err
	}

	t := p.table("ID", "Recorded", "Layout", "Baseline", "Bound", "Unassigned")
	for _, r := range runs {
		t.Row(shortID(r.ID), r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Layout, r.Baseline,
			strconv.Itoa(r.Assigned), strconv.Itoa(r.Unassigned))
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return p.header
		case col == 5 && runs[row].Unassigned > 0:
			return p.warn
		}
		return p.cell
	})
	_, err := fmt.Fprintln(p.w, t.Render())
	return err
}

// Run prints one recorded run with its requests.
func (p *Printer) Run(run store.Run, requests []store.Request) error {
	if _, err := fmt.Fprintf(p.w, "run %s  layout %s  baseline %s  recorded %s\n",
		run.ID, run.Layout, run.Baseline, run.CreatedAt.Local().Format("2006-01-02 15:04:05")); err != nil {
		return err
	}

	t := p.table("Shortcut", "Request", "Requested", "Depth", "Note")
	for _, r := range requests {
		shortcut := r.Keystroke
		if shortcut == "" {
			shortcut = "none"
		}
		t.Row(shortcut, r.Label, r.Requested, strconv.Itoa(r.Depth), note(r.Keystroke != "", r.Derived, r.Invokable))
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return p.header
		case requests[row].Keystroke == "":
			return p.warn
		case col == 4:
			return p.muted
		}
		return p.cell
	})
	_, err := fmt.Fprintln(p.w, t.Render())
	return err
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
