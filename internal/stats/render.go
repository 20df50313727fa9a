// Package stats analyzes dice-roll distributions and renders reports.
package stats

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/zblake/rollstats/internal/model"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	fairStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#73D216"))
	notFairStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// Render formats rep as a human-readable report on w. When styled is false
// the output is plain monochrome text.
func Render(w io.Writer, rep model.Report, styled bool) error {
	style := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	lines := []string{
		style(headerStyle, "=== DICE ROLL DISTRIBUTION ANALYSIS ==="),
		fmt.Sprintf("Total rolls: %d", rep.TotalRolls),
		"",
		style(headerStyle, "FREQUENCY ANALYSIS:"),
	}

	headers := []string{"Face", "Count", "Percentage", "Expected", "Deviation"}
	rows := make([][]string, 0, len(rep.Faces))
	for _, face := range rep.Faces {
		rows = append(rows, []string{
			fmt.Sprintf("%d", face.Face),
			fmt.Sprintf("%d", face.Count),
			fmt.Sprintf("%.1f%%", face.Percentage),
			fmt.Sprintf("%.1f", face.Expected),
			fmt.Sprintf("%+.1f", face.Deviation),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true}
	lines = append(lines, formatTable(headers, rows, rightAlign)...)

	verdict := style(fairStyle, "Distribution appears fair (fails to reject null hypothesis)")
	if !rep.Fair {
		verdict = style(notFairStyle, "Distribution may not be fair (rejects null hypothesis)")
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Chi-square statistic: %.3f", rep.ChiSquare),
		fmt.Sprintf("Critical value (5%% significance, 5 df): %.3f", chiSquareCritical),
		verdict,
		"",
		style(headerStyle, "STATISTICAL MEASURES:"),
		fmt.Sprintf("Mean: %.3f (expected: 3.500)", rep.Mean),
		fmt.Sprintf("Median: %.1f (expected: 3.5)", rep.Median),
		fmt.Sprintf("Standard deviation: %.3f (expected: ~1.708)", rep.StdDev),
		fmt.Sprintf("Min: %d, Max: %d", rep.Min, rep.Max),
		"",
		style(headerStyle, "RANGE ANALYSIS:"),
	)
	for _, bucket := range rep.Buckets {
		lines = append(lines, fmt.Sprintf("%s: %d rolls (%.1f%%)", bucket.Label, bucket.Count, bucket.Percentage))
	}
	lines = append(lines,
		"",
		style(headerStyle, "PATTERN ANALYSIS:"),
		fmt.Sprintf("Maximum consecutive same number: %d", rep.Runs.MaxRun),
		fmt.Sprintf("Streaks of repeated numbers: %d", rep.Runs.RunCount),
	)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
