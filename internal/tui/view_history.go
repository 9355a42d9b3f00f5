package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ced-it/promptforge/internal/prompt"
)

func (a *App) renderHistory() string {
	var b strings.Builder
	s := a.state

	title := styleLogo.Render("Historique")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	if len(s.entries) == 0 {
		empty := styleSubtitle.Render("Aucune génération enregistrée")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, empty))
		b.WriteString("\n\n")
		status := styleStatusBar.Render("[Esc] Retour")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))
		return a.centerVertically(b.String())
	}

	var lines []string
	for i, e := range s.entries {
		cursor := "  "
		if i == s.historyIdx {
			cursor = "> "
		}
		label := categoryLabel(e.Request.Type)
		line := fmt.Sprintf("%s%-10s %s", cursor, label, truncate(e.Request.Keywords, 45))
		if i == s.historyIdx {
			line = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render(line)
		}
		lines = append(lines, line)
		lines = append(lines, styleSubtitle.Render("    "+e.Timestamp.Format("02/01/2006 15:04")))
	}

	listBox := styleBox.Copy().
		Width(min(70, a.width-4)).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Up/Down] Naviguer  [Enter] Restaurer  [x] Vider  [Esc] Retour")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

func categoryLabel(c prompt.Category) string {
	for _, info := range prompt.Categories {
		if info.ID == c {
			return info.Label
		}
	}
	return string(c)
}
