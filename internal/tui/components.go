package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/bitdrill/internal/game"
)

// renderBranding renders "bitdrill" with a green to light blue gradient.
func renderBranding() string {
	colors := []string{
		"#49E209", // b
		"#35DD2F", // i
		"#21D955", // t
		"#0DD47B", // d
		"#00D0A1", // r
		"#00CAC7", // i
		"#00BFE0", // l
		"#00B2F5", // l
	}

	var b strings.Builder
	for i, char := range "bitdrill" {
		style := lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(lipgloss.Color(colors[i%len(colors)])).
			Bold(true)
		b.WriteString(style.Render(string(char)))
	}
	return b.String()
}

// renderHeader renders the top bar: branding on the left, the remaining
// counter and round on the right.
func renderHeader(s game.State, width int) string {
	baseStyle := lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorWhite)

	counterColor := ColorWhite
	switch {
	case s.RemainingCounter > game.LossThreshold-4:
		counterColor = ColorRed
	case s.RemainingCounter > game.StartingCounter:
		counterColor = ColorOrange
	case s.RemainingCounter < game.StartingCounter:
		counterColor = ColorGreen
	}
	counter := lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(counterColor).
		Bold(true).
		Render(fmt.Sprintf("%d", s.RemainingCounter))

	right := baseStyle.Render("Remaining ") + counter + baseStyle.Render(fmt.Sprintf(" / %d", game.LossThreshold))
	if id := shortRoundID(s.RoundID); id != "" && width >= 60 {
		right = baseStyle.Foreground(ColorGray).Render("round "+id+"  ") + right
	}

	left := baseStyle.Render(" ") + renderBranding()
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		gap = 1
	}
	return left + baseStyle.Render(strings.Repeat(" ", gap)) + right + baseStyle.Render(" ")
}

// renderCountdown renders the seconds left, or "Time's up" at zero.
func renderCountdown(remaining int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)
	if remaining <= 2 {
		style = style.Foreground(ColorOrange)
	}
	if remaining <= 0 {
		return style.Foreground(ColorRed).Render("Time's up")
	}
	return style.Render(fmt.Sprintf("%ds", remaining))
}

// renderFeedback renders the verdict for the last answer together with the
// worked problem in decimal.
func renderFeedback(a *game.Answer) string {
	if a == nil {
		return ""
	}
	var verdict string
	switch {
	case a.Correct:
		verdict = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true).Render("Correct!")
	case a.TimedOut:
		verdict = lipgloss.NewStyle().Foreground(ColorRed).Bold(true).
			Render(fmt.Sprintf("Time's up! The answer is %d", a.Problem.Answer))
	default:
		verdict = lipgloss.NewStyle().Foreground(ColorRed).Bold(true).
			Render(fmt.Sprintf("Wrong! The answer is %d", a.Problem.Answer))
	}
	decimal := lipgloss.NewStyle().Foreground(ColorGray).Render(a.Problem.Decimal())
	return lipgloss.JoinVertical(lipgloss.Center, verdict, decimal)
}

func shortRoundID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
