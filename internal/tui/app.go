package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ced-it/promptforge/internal/apiclient"
	"github.com/ced-it/promptforge/internal/config"
	"github.com/ced-it/promptforge/internal/history"
	"github.com/ced-it/promptforge/internal/prompt"
	"github.com/ced-it/promptforge/internal/saas"
)

type view int

const (
	viewForm view = iota
	viewSubmitting
	viewResult
	viewHistory
	viewHelp
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp(cfg *config.ClientConfig, api *apiclient.Client, saasClient *saas.Client, store *history.Store) *App {
	s := newState(cfg, api, saasClient, store)

	if cfg != nil {
		for i, l := range prompt.Languages {
			if string(l.ID) == cfg.Language {
				s.languageIdx = i
			}
		}
	}

	return &App{
		view:  viewForm,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.WindowSize(),
		textinput.Blink,
		a.checkHealth(),
		a.checkAccess(),
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := a.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case spinner.TickMsg:
		if a.state.phase == phaseSubmitting {
			var cmd tea.Cmd
			a.state.spin, cmd = a.state.spin.Update(msg)
			cmds = append(cmds, cmd)
		}

	case healthCheckedMsg:
		if msg.err == nil {
			a.state.serverMode = msg.health.Mode
		}
		return a, nil

	case accessCheckedMsg:
		a.handleAccessChecked(msg)
		return a, nil

	case generateDoneMsg:
		a.state.phase = phaseIdle
		if msg.err != nil {
			// Terminal failure for this submission; nothing is committed.
			a.state.notice = "Erreur lors de la génération. Vérifiez que le serveur est lancé."
			a.view = viewForm
			return a, nil
		}
		a.state.result = msg.result
		a.state.notice = ""
		a.view = viewResult
		if cmd := a.recordSuccess(a.state.buildRequest()); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case creditUsedMsg:
		a.handleCreditUsed(msg)
		return a, nil
	}

	// Feed everything else to the focused text input
	if a.view == viewForm && a.state.phase == phaseIdle {
		var cmd tea.Cmd
		switch a.state.focus {
		case sectionIdea:
			a.state.idea, cmd = a.state.idea.Update(msg)
		case sectionNegative:
			a.state.negative, cmd = a.state.negative.Update(msg)
		case sectionArtist:
			a.state.artist, cmd = a.state.artist.Update(msg)
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		if a.view == viewHelp || a.view == viewHistory || a.view == viewResult {
			a.view = viewForm
			return nil
		}
		if a.view == viewSubmitting {
			// No cancellation: the request runs to completion
			return nil
		}
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Help):
		a.view = viewHelp
		return nil

	case key.Matches(msg, keys.History):
		if a.view == viewForm && a.state.phase == phaseIdle {
			a.state.historyIdx = 0
			a.view = viewHistory
		}
		return nil
	}

	switch a.view {
	case viewForm:
		return a.handleFormKey(msg)
	case viewResult:
		return a.handleResultKey(msg)
	case viewHistory:
		return a.handleHistoryKey(msg)
	}

	return nil
}

func (a *App) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state
	if s.phase == phaseSubmitting {
		return nil
	}

	switch {
	case key.Matches(msg, keys.Enter):
		return a.startSubmit()
	case key.Matches(msg, keys.Tab):
		s.nextFocus()
		return nil
	case key.Matches(msg, keys.BackTab):
		s.prevFocus()
		return nil
	}

	switch s.focus {
	case sectionCategory:
		switch {
		case key.Matches(msg, keys.Left):
			s.cycleCategory(-1)
		case key.Matches(msg, keys.Right):
			s.cycleCategory(1)
		}
	case sectionStyle:
		switch {
		case key.Matches(msg, keys.Left):
			s.styleIdx = (s.styleIdx + len(prompt.Styles) - 1) % len(prompt.Styles)
		case key.Matches(msg, keys.Right):
			s.styleIdx = (s.styleIdx + 1) % len(prompt.Styles)
		}
	case sectionLanguage:
		switch {
		case key.Matches(msg, keys.Left), key.Matches(msg, keys.Right):
			s.languageIdx = (s.languageIdx + 1) % len(prompt.Languages)
		}
	case sectionAttachments:
		switch {
		case key.Matches(msg, keys.Space), key.Matches(msg, keys.Left), key.Matches(msg, keys.Right):
			s.hasAttachments = !s.hasAttachments
		}
	case sectionTags:
		switch {
		case key.Matches(msg, keys.Space):
			s.toggleTag()
		case key.Matches(msg, keys.Up):
			s.moveTagCursor(0, -1)
		case key.Matches(msg, keys.Down):
			s.moveTagCursor(0, 1)
		case key.Matches(msg, keys.Left):
			s.moveTagCursor(-1, 0)
		case key.Matches(msg, keys.Right):
			s.moveTagCursor(1, 0)
		}
	case sectionRatio:
		switch {
		case key.Matches(msg, keys.Left):
			s.ratioIdx = (s.ratioIdx + len(prompt.AspectRatios)) % (len(prompt.AspectRatios) + 1)
		case key.Matches(msg, keys.Right):
			s.ratioIdx = (s.ratioIdx + 1) % (len(prompt.AspectRatios) + 1)
		}
	case sectionVariants:
		switch {
		case key.Matches(msg, keys.Left):
			s.variantIdx = (s.variantIdx + len(prompt.VariantChoices) - 1) % len(prompt.VariantChoices)
		case key.Matches(msg, keys.Right):
			s.variantIdx = (s.variantIdx + 1) % len(prompt.VariantChoices)
		}
	}

	return nil
}

// startSubmit fires the generation when the form allows it. The submit
// action stays disabled until the in-flight request terminates.
func (a *App) startSubmit() tea.Cmd {
	s := a.state
	ok, reason := s.canSubmit()
	if !ok {
		s.notice = reason
		return nil
	}

	s.notice = ""
	s.phase = phaseSubmitting
	a.view = viewSubmitting
	return tea.Batch(s.spin.Tick, a.submitGenerate(s.buildRequest()))
}

func (a *App) handleResultKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "n", "enter":
		a.state.notice = ""
		a.view = viewForm
	case "c":
		if a.state.result != nil {
			if err := clipboard.WriteAll(a.state.result.Prompt); err == nil {
				a.state.notice = "Prompt copié"
			}
		}
	}
	return nil
}

func (a *App) handleHistoryKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state
	switch {
	case key.Matches(msg, keys.Up):
		if s.historyIdx > 0 {
			s.historyIdx--
		}
	case key.Matches(msg, keys.Down):
		if s.historyIdx < len(s.entries)-1 {
			s.historyIdx++
		}
	case key.Matches(msg, keys.Enter):
		if s.historyIdx < len(s.entries) {
			s.applyHistory(s.entries[s.historyIdx])
			a.view = viewForm
		}
	case msg.String() == "x":
		if s.store != nil && s.store.Clear() == nil {
			s.entries = nil
		}
	}
	return nil
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewForm:
		return a.renderForm()
	case viewSubmitting:
		return a.renderSubmitting()
	case viewResult:
		return a.renderResult()
	case viewHistory:
		return a.renderHistory()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderForm()
	}
}
