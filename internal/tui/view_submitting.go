package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderSubmitting() string {
	var b strings.Builder
	s := a.state

	title := styleLogo.Render("Génération en cours")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	idea := styleSubtitle.Render("> " + truncate(strings.TrimSpace(s.idea.Value()), 55))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, idea))
	b.WriteString("\n\n")

	spin := s.spin.View() + " " + styleSubtitle.Render("Le serveur interroge le modèle...")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, spin))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("La requête court jusqu'à son terme")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
