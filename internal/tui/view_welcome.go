package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xtreme16/asri/internal/agent"
)

const logo = `
  █████╗ ███████╗██████╗ ██╗
 ██╔══██╗██╔════╝██╔══██╗██║
 ███████║███████╗██████╔╝██║
 ██╔══██║╚════██║██╔══██╗██║
 ██║  ██║███████║██║  ██║██║
 ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝
`

func (a *App) renderWelcome() string {
	logoRendered := styleLogo.Render(logo)

	subtitle := styleSubtitle.Render("Asisten SDM di terminal Anda")

	capabilities := styleBox.
		Width(min(64, max(20, a.width-4))).
		Render(agent.WelcomeText)

	inputBox := styleBox.
		Width(min(64, max(20, a.width-4))).
		BorderForeground(colorPrimary).
		Render(a.state.input.View())

	statusBar := styleStatusBar.Render("[Enter] Kirim  [Esc] Keluar  /help")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		"",
		capabilities,
		"",
		inputBox,
	)

	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}

// centerVertically pads content so it sits in the middle of the screen.
func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	topPad := (a.height - lines) / 2
	if topPad < 0 {
		topPad = 0
	}
	return strings.Repeat("\n", topPad) + content
}
