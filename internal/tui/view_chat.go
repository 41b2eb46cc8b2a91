package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderChat() string {
	boxWidth := min(70, max(20, a.width-4))
	leftPad := (a.width - boxWidth) / 2
	if leftPad < 2 {
		leftPad = 2
	}
	indent := strings.Repeat(" ", leftPad)

	headerHeight := 3
	inputHeight := 4

	availableHeight := a.height - headerHeight - inputHeight
	if availableHeight < 5 {
		availableHeight = 5
	}

	// === HEADER ===
	var header strings.Builder
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("ASRI")
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	header.WriteString("\n")
	subtitle := styleSubtitle.Render("Asisten SDM")
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, subtitle))
	header.WriteString("\n\n")

	// === MESSAGE LINES ===
	var messageLines []string

	for _, msg := range a.state.history {
		content := wrapText(msg.content, boxWidth-4)
		lines := strings.Split(content, "\n")
		if msg.role == roleUser {
			for j, line := range lines {
				prefix := "> "
				if j > 0 {
					prefix = "  "
				}
				styled := lipgloss.NewStyle().
					Foreground(colorSecondary).
					Render(prefix + line)
				messageLines = append(messageLines, indent+styled)
			}
		} else {
			for _, line := range lines {
				styled := lipgloss.NewStyle().
					Foreground(colorWhite).
					Render("  " + line)
				messageLines = append(messageLines, indent+styled)
			}
		}
		messageLines = append(messageLines, "")
	}

	if a.state.thinking {
		thinkingLine := lipgloss.NewStyle().
			Foreground(colorPrimary).
			Render("* Memproses...")
		messageLines = append(messageLines, indent+thinkingLine)
	}

	// === SCROLL ===
	totalLines := len(messageLines)
	maxScroll := totalLines - availableHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if a.state.scrollOffset > maxScroll {
		a.state.scrollOffset = maxScroll
	}

	endIdx := totalLines - a.state.scrollOffset
	startIdx := endIdx - availableHeight
	if startIdx < 0 {
		startIdx = 0
	}

	var visibleLines []string
	if startIdx < endIdx {
		visibleLines = messageLines[startIdx:endIdx]
	}

	// === INPUT / STATUS ===
	var footer strings.Builder
	inputBox := styleBox.
		Width(boxWidth).
		BorderForeground(colorMuted).
		Render(a.state.input.View())
	footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	footer.WriteString("\n")

	var statusParts []string
	if a.state.scrollOffset > 0 {
		statusParts = append(statusParts, "[scroll]")
	}
	statusParts = append(statusParts, "[↑/↓] Scroll  [Esc] Keluar  /help")
	status := styleStatusBar.Render(strings.Join(statusParts, "  "))
	footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	// === COMBINE ===
	var messageArea strings.Builder
	for i, line := range visibleLines {
		messageArea.WriteString(line)
		if i < len(visibleLines)-1 {
			messageArea.WriteString("\n")
		}
	}

	padding := availableHeight - len(visibleLines)
	if padding > 0 {
		if len(visibleLines) > 0 {
			messageArea.WriteString("\n")
		}
		messageArea.WriteString(strings.Repeat("\n", padding-1))
	}

	return header.String() + messageArea.String() + "\n" + footer.String()
}

// wrapText wraps text to fit within maxWidth, preserving words and
// existing line breaks.
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 60
	}

	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		if len(paragraph) <= maxWidth {
			out = append(out, paragraph)
			continue
		}

		var line strings.Builder
		lineLen := 0
		for _, word := range strings.Fields(paragraph) {
			if lineLen > 0 && lineLen+1+len(word) > maxWidth {
				out = append(out, line.String())
				line.Reset()
				lineLen = 0
			}
			if lineLen > 0 {
				line.WriteString(" ")
				lineLen++
			}
			line.WriteString(word)
			lineLen += len(word)
		}
		if line.Len() > 0 {
			out = append(out, line.String())
		}
	}
	return strings.Join(out, "\n")
}
