package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const panelWidth = 44

func (a *App) View() string {
	if a.state == stateMenu {
		return a.viewMenu()
	}
	return a.viewLesson()
}

func (a *App) viewMenu() string {
	th := CurrentTheme
	head := lipgloss.NewStyle().Foreground(th.Secondary).Bold(true)
	sub := lipgloss.NewStyle().Foreground(th.Muted)
	active := lipgloss.NewStyle().Foreground(th.Text).Bold(true)
	pointer := lipgloss.NewStyle().Foreground(th.Secondary).Bold(true)
	accent := lipgloss.NewStyle().Foreground(th.Accent)

	var b strings.Builder
	b.WriteString("\n\n    " + head.Render("EXPLORABLES") + "\n")
	b.WriteString("    " + sub.Render("interactive lessons for the terminal") + "\n")
	b.WriteString("    " + sub.Render("─────────────────────────────────────") + "\n\n")

	for i, id := range a.ids {
		l, err := a.registry.Get(id)
		if err != nil {
			continue
		}
		line := fmt.Sprintf("%-12s %-10s %s", id, l.Topic(), l.Title())
		if i == a.cursor {
			b.WriteString("    " + pointer.Render("▸") + " " + active.Render(line) + "\n")
		} else {
			b.WriteString("      " + sub.Render(line) + "\n")
		}
	}

	b.WriteString("\n    " + accent.Render("j/k") + sub.Render(" navigate  ") +
		accent.Render("enter") + sub.Render(" open  ") +
		accent.Render("q") + sub.Render(" quit") + "\n")
	return b.String()
}

func (a *App) viewLesson() string {
	th := CurrentTheme
	boardStyle := lipgloss.NewStyle().Padding(1, 2)
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(th.Muted).
		Padding(1, 2).Width(panelWidth)
	headStyle := lipgloss.NewStyle().Foreground(th.Secondary).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(th.Muted)
	valueStyle := lipgloss.NewStyle().Foreground(th.Text)
	activeStyle := lipgloss.NewStyle().Foreground(th.Primary).Bold(true)
	chartStyle := lipgloss.NewStyle().Foreground(th.Success)
	helpStyle := lipgloss.NewStyle().Foreground(th.Muted).MarginTop(1)

	a.board.Clear()
	a.current.Draw(a.board)
	boardView := boardStyle.Render(a.board.String())

	var s strings.Builder
	s.WriteString(headStyle.Render(strings.ToUpper(a.current.Title())) + "\n")
	if a.paused {
		pausedStyle := lipgloss.NewStyle().Foreground(th.Warning).Bold(true)
		s.WriteString(pausedStyle.Render("PAUSED") + "\n\n")
	} else {
		s.WriteString(labelStyle.Render("LIVE") + "\n\n")
	}

	if modes := a.current.Modes(); len(modes) > 0 {
		s.WriteString(labelStyle.Render("mode  ") + valueStyle.Render(a.current.Mode()) + "\n\n")
	}

	s.WriteString(headStyle.Render("PARAMETERS") + "\n")
	for i, p := range a.current.Params() {
		bar := paramBar(p.Value, p.Min, p.Max, 12)
		line := fmt.Sprintf("%-10s %s %.3g", p.Name, bar, p.Value)
		if i == a.paramCursor {
			s.WriteString(activeStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString(labelStyle.Render("  "+line) + "\n")
		}
	}

	s.WriteString("\n" + headStyle.Render("READOUT") + "\n")
	for _, line := range a.current.Readout() {
		s.WriteString(valueStyle.Render(line) + "\n")
	}

	if series := a.current.Series(seriesLen); len(series) > 1 {
		chart := asciigraph.Plot(series, asciigraph.Height(4), asciigraph.Width(32))
		s.WriteString("\n" + chartStyle.Render(chart) + "\n")
	}

	if a.audio {
		s.WriteString("\n" + valueStyle.Render("♪ sonification on") + "\n")
	} else if a.soundFailed {
		errStyle := lipgloss.NewStyle().Foreground(th.Error)
		s.WriteString("\n" + errStyle.Render("sound unavailable") + "\n")
	}

	s.WriteString(helpStyle.Render(
		"─────────────────────\n" +
			"tab:param ↑↓:tune m:mode r:reset\n" +
			"d:walkthrough t:theme s:sound\n" +
			"space:pause esc:back q:quit"))

	panelView := panelStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, boardView, panelView)

	if a.walk.IsOpen() {
		return a.viewTourOverlay() + "\n" + mainView
	}
	return mainView
}

// viewTourOverlay renders the walkthrough card above the board.
func (a *App) viewTourOverlay() string {
	th := CurrentTheme
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Primary).
		Background(th.Background).
		Padding(0, 2).Width(76)
	title := lipgloss.NewStyle().Foreground(th.Primary).Bold(true)
	body := lipgloss.NewStyle().Foreground(th.Text)
	hint := lipgloss.NewStyle().Foreground(th.Accent)
	nav := lipgloss.NewStyle().Foreground(th.Muted)

	step := a.walk.Current()
	var s strings.Builder
	s.WriteString(title.Render(fmt.Sprintf("[%d/%d] %s", a.walk.Index()+1, a.walk.Len(), step.Title)) + "\n")
	s.WriteString(body.Render(wrap(step.Body, 72)) + "\n")
	if step.Highlight != "" {
		s.WriteString(hint.Render("watch: "+step.Highlight) + "\n")
	}
	s.WriteString(nav.Render("n:next p:back 1-9:jump esc:close"))
	return box.Render(s.String())
}

func paramBar(v, lo, hi float64, width int) string {
	ratio := 0.0
	if hi > lo {
		ratio = (v - lo) / (hi - lo)
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}

// wrap breaks text on word boundaries, keeping lines under limit columns.
func wrap(text string, limit int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		if lineLen > 0 && lineLen+1+len(w) > limit {
			b.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
