package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xtreme16/asri/internal/agent"
)

type view int

const (
	viewWelcome view = iota
	viewChat
	viewHelp
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp(engine *agent.Engine) *App {
	return &App{
		view:  viewWelcome,
		state: newState(engine),
	}
}

func (a *App) Init() tea.Cmd {
	a.state.input.Focus()
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

type replyMsg struct {
	text string
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case replyMsg:
		a.state.thinking = false
		a.state.history = append(a.state.history, message{role: roleAssistant, content: msg.text})
		a.state.scrollOffset = 0
		return a, nil
	}

	// The input stays live on the welcome and chat views.
	if a.view == viewWelcome || a.view == viewChat {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		if a.view == viewHelp {
			a.view = viewChat
			if len(a.state.history) == 0 {
				a.view = viewWelcome
			}
			return nil
		}
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Enter):
		if !a.state.thinking {
			return a.handleInput()
		}
		return nil

	case key.Matches(msg, keys.Up):
		if a.view == viewChat {
			a.state.scrollOffset++
		}
		return nil

	case key.Matches(msg, keys.Down):
		if a.view == viewChat && a.state.scrollOffset > 0 {
			a.state.scrollOffset--
		}
		return nil
	}

	return nil
}

func (a *App) handleInput() tea.Cmd {
	input := strings.TrimSpace(a.state.input.Value())
	a.state.input.Reset()

	if agent.IsExit(input) {
		a.quitting = true
		return tea.Quit
	}

	if strings.HasPrefix(input, "/") {
		switch strings.ToLower(input) {
		case "/help", "/h":
			a.view = viewHelp
			return nil
		case "/quit", "/q":
			a.quitting = true
			return tea.Quit
		}
	}

	a.view = viewChat

	if input == "" {
		a.state.history = append(a.state.history, message{role: roleAssistant, content: agent.RepromptText})
		return nil
	}

	a.state.history = append(a.state.history, message{role: roleUser, content: input})
	a.state.thinking = true
	a.state.scrollOffset = 0
	return a.ask(input)
}

// ask runs the engine off the update loop and delivers the reply as a
// message.
func (a *App) ask(utterance string) tea.Cmd {
	engine := a.state.engine
	return func() tea.Msg {
		return replyMsg{text: engine.Respond(utterance)}
	}
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewWelcome:
		return a.renderWelcome()
	case viewChat:
		return a.renderChat()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderWelcome()
	}
}
