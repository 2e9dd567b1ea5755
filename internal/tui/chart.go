package tui

import (
	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/bitdrill/internal/game"
)

// renderHistoryChart draws the remaining counter after each answer as a bar
// chart. Bars that went down are green, bars that went up are red. Only the
// most recent answers that fit in width are shown.
func renderHistoryChart(history []int, width, height int) string {
	if len(history) == 0 || width < 2 || height < 2 {
		return ""
	}

	maxBars := (width + 1) / 2 // one column bar, one column gap
	start := 0
	if len(history) > maxBars {
		start = len(history) - maxBars
	}
	visible := history[start:]

	prev := game.StartingCounter
	if start > 0 {
		prev = history[start-1]
	}

	bc := barchart.New(len(visible)*2-1, height,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(1),
		barchart.WithNoAxis(),
	)

	down := lipgloss.NewStyle().Foreground(ColorGreen).Background(ColorGreen)
	up := lipgloss.NewStyle().Foreground(ColorRed).Background(ColorRed)

	for _, v := range visible {
		style := up
		if v < prev {
			style = down
		}
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: "remaining", Value: float64(v), Style: style},
			},
		})
		prev = v
	}

	bc.Draw()
	return bc.View()
}
