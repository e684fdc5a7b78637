package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderTitledPanel renders content inside a rounded-border box with an
// optional inline title embedded in the top border.
//
//	╭─ Title ──────────────────────╮
//	│  content here                │
//	╰──────────────────────────────╯
func renderTitledPanel(title, content string, width int) string {
	// Account for left/right border (1 char each) and inner padding (1 char each).
	innerWidth := width - 4
	if innerWidth < 10 {
		innerWidth = 10
		width = innerWidth + 4
	}

	borderFg := lipgloss.NewStyle().Foreground(colorBorder)
	titleRendered := breadcrumbActiveStyle.Render(title)

	// Build custom top border: ╭─ Title ─...─╮
	var top strings.Builder
	top.WriteString(borderFg.Render("╭─ "))
	top.WriteString(titleRendered)
	top.WriteString(borderFg.Render(" "))

	// Calculate remaining dashes. lipgloss.Width accounts for ANSI.
	used := 3 + lipgloss.Width(titleRendered) + 1 // "╭─ " + title + " "
	remaining := max(width-used-1, 0)             // -1 for "╮"
	top.WriteString(borderFg.Render(strings.Repeat("─", remaining) + "╮"))

	// Content with side borders and padding.
	var body strings.Builder
	for _, line := range strings.Split(content, "\n") {
		pad := max(innerWidth-lipgloss.Width(line), 0)
		body.WriteString(borderFg.Render("│"))
		body.WriteString(" ")
		body.WriteString(line)
		body.WriteString(strings.Repeat(" ", pad))
		body.WriteString(" ")
		body.WriteString(borderFg.Render("│"))
		body.WriteString("\n")
	}

	bottom := borderFg.Render("╰" + strings.Repeat("─", width-2) + "╯")

	return top.String() + "\n" + body.String() + bottom
}

type helpItem struct {
	key  string
	desc string
}

// renderHelpBar renders a styled help bar: "key desc · key desc · ...",
// clipped to width.
func renderHelpBar(items []helpItem, width int) string {
	var parts []string
	for _, item := range items {
		parts = append(parts,
			helpKeyStyle.Render(item.key)+" "+helpDescStyle.Render(item.desc),
		)
	}
	sep := helpSepStyle.Render("·")
	bar := "  " + strings.Join(parts, " "+sep+" ")
	return lipgloss.NewStyle().MaxWidth(width).Render(bar)
}

// renderBreadcrumb renders "seg > seg > active" with the last segment bold.
func renderBreadcrumb(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	sep := breadcrumbSepStyle.Render(">")
	var parts []string
	for i, seg := range segments {
		if i == len(segments)-1 {
			parts = append(parts, breadcrumbActiveStyle.Render(seg))
		} else {
			parts = append(parts, breadcrumbDimStyle.Render(seg))
		}
	}
	return strings.Join(parts, sep)
}

// renderDetailRow renders a single label: value row for the detail pane.
func renderDetailRow(label, value string) string {
	return fmt.Sprintf("%s%s", detailLabelStyle.Render(label), detailValueStyle.Render(value))
}

// scrollWindow returns the [start, end) slice of a list of total rows that
// keeps cursor visible in height rows.
func scrollWindow(cursor, total, height int) (int, int) {
	if total <= height {
		return 0, total
	}
	start := max(cursor-height/2, 0)
	end := start + height
	if end > total {
		end = total
		start = end - height
	}
	return start, end
}

// padToHeight appends blank lines so the view fills the alt screen.
func padToHeight(s string, height int) string {
	lines := strings.Count(s, "\n") + 1
	if lines >= height {
		return s
	}
	return s + strings.Repeat("\n", height-lines)
}
