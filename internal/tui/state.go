package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/xtreme16/asri/internal/agent"
)

const (
	roleUser      = "user"
	roleAssistant = "assistant"
)

type state struct {
	engine *agent.Engine

	// Chat
	history      []message
	thinking     bool
	scrollOffset int

	// Input
	input textinput.Model
}

type message struct {
	role    string
	content string
}

func newState(engine *agent.Engine) *state {
	input := textinput.New()
	input.Placeholder = "Ketik pertanyaan atau perintah... ('keluar' untuk mengakhiri)"
	input.CharLimit = 500
	input.Width = 60

	return &state{
		engine: engine,
		input:  input,
	}
}
