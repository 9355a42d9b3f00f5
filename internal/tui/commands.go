package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ced-it/promptforge/internal/apiclient"
	"github.com/ced-it/promptforge/internal/prompt"
	"github.com/ced-it/promptforge/internal/saas"
)

type accessCheckedMsg struct {
	access *saas.Access
	err    error
}

type healthCheckedMsg struct {
	health *apiclient.Health
	err    error
}

type generateDoneMsg struct {
	result *prompt.Result
	err    error
}

type creditUsedMsg struct {
	balance *saas.CreditBalance
	err     error
}

func (a *App) checkAccess() tea.Cmd {
	s := a.state
	if s.saas == nil || s.cfg == nil || s.cfg.Token == "" {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		access, err := s.saas.Verify(ctx, s.cfg.Token)
		return accessCheckedMsg{access: access, err: err}
	}
}

func (a *App) checkHealth() tea.Cmd {
	s := a.state
	if s.api == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h, err := s.api.Health(ctx)
		return healthCheckedMsg{health: h, err: err}
	}
}

func (a *App) submitGenerate(req prompt.Request) tea.Cmd {
	s := a.state
	return func() tea.Msg {
		res, err := s.api.Generate(context.Background(), &req)
		return generateDoneMsg{result: res, err: err}
	}
}

func (a *App) useCredit() tea.Cmd {
	s := a.state
	if s.saas == nil || s.cfg == nil || s.cfg.Token == "" {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		balance, err := s.saas.UseCredit(ctx, s.cfg.Token)
		return creditUsedMsg{balance: balance, err: err}
	}
}

// recordSuccess commits the post-success side effects: history entry,
// counter bump, and the credit deduction when a balance is tracked. Only a
// confirmed success reaches this point.
func (a *App) recordSuccess(req prompt.Request) tea.Cmd {
	s := a.state
	if s.store != nil {
		if _, err := s.store.Add(req); err == nil {
			if entries, listErr := s.store.List(); listErr == nil {
				s.entries = entries
			}
		}
		if n, err := s.store.Increment(); err == nil {
			s.genCount = n
		}
	}
	if s.credits != nil {
		return a.useCredit()
	}
	return nil
}

func (a *App) handleAccessChecked(msg accessCheckedMsg) {
	s := a.state
	if msg.err != nil {
		if errors.Is(msg.err, saas.ErrUnauthorized) {
			s.accessNote = "accès refusé — " + s.saas.LoginURL("promptforge://callback")
			return
		}
		// Network trouble: keep going unverified rather than locking the
		// user out, as the browser client does with a non-expired token.
		s.accessNote = "accès non vérifié"
		return
	}
	s.access = msg.access
	s.credits = msg.access.CreditsRemaining
	s.accessNote = ""
}

func (a *App) handleCreditUsed(msg creditUsedMsg) {
	s := a.state
	if msg.err != nil {
		if errors.Is(msg.err, saas.ErrNoCredits) {
			zero := 0
			s.credits = &zero
			s.notice = "Plus de crédits — rechargez sur " + s.saas.PurchaseURL()
		}
		// Other failures surface nowhere: the generation already succeeded.
		return
	}
	s.credits = &msg.balance.CreditsRemaining
}
