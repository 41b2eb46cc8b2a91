package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Bantuan")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	examples := []string{
		"  Contoh pertanyaan:",
		"    siapa manajer Rina?",
		"    sisa cuti Budi berapa?",
		"    apa jabatan Citra?",
		"",
		"  Contoh perintah:",
		"    ajukan cuti sakit Budi dari 1-3 januari",
		"    jadwalkan review performa Budi dengan Rina Wati",
		"    lapor pengeluaran makan 50 ribu untuk Citra",
		"    cek status cuti Budi",
	}

	examplesBox := styleBox.
		Width(56).
		Render(strings.Join(examples, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, examplesBox))
	b.WriteString("\n\n")

	commands := []string{
		"  /help, /h      Tampilkan bantuan ini",
		"  /quit, /q      Keluar",
		"",
		"  keluar/exit/quit juga mengakhiri sesi",
	}

	commandsBox := styleBox.
		Width(56).
		Render(strings.Join(commands, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, commandsBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Kembali")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
