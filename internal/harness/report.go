// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	sepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2a3850"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
)

var reportHeaders = []string{"size", "naive avg", "fast avg", "naive min", "fast min", "speedup", "splits", "agree"}

// Render formats r as a titled, column-aligned table of per-size means and
// minima over the trials.
func Render(r *Report) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s sweep %s", r.Kind, r.RunID)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("seed=%d trials=%d threshold=%d\n", r.Seed, r.Trials, r.Threshold))

	rows := make([][]string, len(r.Rows))
	for i, row := range r.Rows {
		agree := "yes"
		if !row.Agree {
			agree = failStyle.Render(fmt.Sprintf("NO (%d/%d)", row.Mismatches, r.Trials))
		}
		rows[i] = []string{
			strconv.Itoa(row.Size),
			formatDuration(row.Naive),
			formatDuration(row.Fast),
			formatDuration(row.NaiveMin),
			formatDuration(row.FastMin),
			fmt.Sprintf("%.2fx", row.Speedup()),
			strconv.FormatInt(row.Splits, 10),
			agree,
		}
	}

	widths := make([]int, len(reportHeaders))
	for i, h := range reportHeaders {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	// Width includes the one-cell padding on each side.
	total := len(widths) - 1
	for i := range widths {
		widths[i] += 2
		total += widths[i]
	}

	writeLine(&sb, headerStyle, reportHeaders, widths)
	sb.WriteString(sepStyle.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")
	for _, row := range rows {
		writeLine(&sb, cellStyle, row, widths)
	}
	return sb.String()
}

func writeLine(sb *strings.Builder, style lipgloss.Style, cells []string, widths []int) {
	for i, c := range cells {
		sb.WriteString(style.Width(widths[i]).Render(c))
		if i < len(cells)-1 {
			sb.WriteString(sepStyle.Render("|"))
		}
	}
	sb.WriteString("\n")
}

// formatDuration rounds d to three significant units for display.
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(time.Microsecond).String()
	default:
		return d.String()
	}
}
