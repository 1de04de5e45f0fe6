// Package view renders the page and updater states for a terminal.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tamzrod/badgewatch/internal/page"
	"github.com/tamzrod/badgewatch/internal/status"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	shownStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	hiddenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	stoppedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// Render draws elements and statuses side by side. Pure.
func Render(elements []page.Element, statuses []status.Snapshot) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		boxStyle.Render(renderElements(elements)),
		boxStyle.Render(renderStatuses(statuses)),
	)
}

func renderElements(elements []page.Element) string {
	lines := []string{titleStyle.Render("page")}
	if len(elements) == 0 {
		lines = append(lines, hiddenStyle.Render("(no elements)"))
	}

	width := 0
	for _, el := range elements {
		if len(el.ID) > width {
			width = len(el.ID)
		}
	}

	for _, el := range elements {
		label := fmt.Sprintf("%-*s", width, el.ID)
		switch el.Display {
		case page.DisplayNone:
			lines = append(lines, hiddenStyle.Render(label+"  (hidden)"))
		case page.DisplayInlineBlock:
			lines = append(lines, label+"  "+shownStyle.Render("["+el.Text+"]"))
		default:
			text := el.Text
			if text == "" {
				text = "-"
			}
			lines = append(lines, label+"  "+text)
		}
	}
	return strings.Join(lines, "\n")
}

func renderStatuses(statuses []status.Snapshot) string {
	lines := []string{titleStyle.Render("updaters")}
	if len(statuses) == 0 {
		lines = append(lines, hiddenStyle.Render("(none running)"))
	}

	for _, s := range statuses {
		line := status.Encode(s)
		switch {
		case s.State == status.StateStopped:
			line = stoppedStyle.Render(line)
		case s.Health == status.HealthError:
			line = errorStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
