package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderResult() string {
	var b strings.Builder
	s := a.state

	title := styleLogo.Render("Prompt généré")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	if s.result == nil {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleSubtitle.Render("Aucun résultat")))
		return a.centerVertically(b.String())
	}

	boxWidth := min(74, a.width-4)

	promptBox := styleBox.Copy().
		Width(boxWidth).
		BorderForeground(colorPrimary).
		Render(s.result.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, promptBox))
	b.WriteString("\n")

	if len(s.result.Tips) > 0 {
		var lines []string
		lines = append(lines, styleLabel.Render("Conseils"))
		for _, tip := range s.result.Tips {
			lines = append(lines, "  • "+tip)
		}
		tipsBox := styleBox.Copy().
			Width(boxWidth).
			Render(strings.Join(lines, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, tipsBox))
		b.WriteString("\n")
	}

	if len(s.result.Variations) > 0 {
		var lines []string
		lines = append(lines, styleLabel.Render("Variations"))
		for _, v := range s.result.Variations {
			lines = append(lines, "  • "+v)
		}
		varBox := styleBox.Copy().
			Width(boxWidth).
			Render(strings.Join(lines, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, varBox))
		b.WriteString("\n")
	}

	if s.notice != "" {
		notice := lipgloss.NewStyle().Foreground(colorSuccess).Render(s.notice)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	status := styleStatusBar.Render("[c] Copier  [n/Enter] Nouvelle génération  [Ctrl+R] Historique  [Esc] Retour")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return b.String()
}
