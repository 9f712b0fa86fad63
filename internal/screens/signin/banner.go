package signin

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rshetty/quizly/internal/ui/theme"
)

const bannerArt = ` ██████  ██    ██ ██ ███████ ██   ██    ██
██    ██ ██    ██ ██    ███  ██    ██  ██
██    ██ ██    ██ ██   ███   ██     ████
██ ▄▄ ██ ██    ██ ██  ███    ██      ██
 ██████   ██████  ██ ███████ ███████ ██
    ▀▀`

const bannerCompact = "Q U I Z L Y"

// RenderBanner renders the wordmark, falling back to plain text when
// the terminal is too narrow for the block art.
func RenderBanner(width int) string {
	art := bannerArt
	if width < 50 {
		art = bannerCompact
	}

	lines := strings.Split(art, "\n")
	var b strings.Builder
	for i, line := range lines {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)))
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
