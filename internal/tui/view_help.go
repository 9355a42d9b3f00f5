package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := styleLogo.Render("Aide")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	sections := []string{
		styleLabel.Render("Formulaire"),
		"  Tab / Shift+Tab   Champ suivant / précédent",
		"  Left / Right      Changer la sélection",
		"  Space             Cocher une option ou un tag",
		"  Enter             Générer le prompt",
		"",
		styleLabel.Render("Navigation"),
		"  Ctrl+R            Historique des générations",
		"  Ctrl+H            Cette aide",
		"  Esc               Retour / Quitter",
		"",
		styleLabel.Render("Notes"),
		"  Les options image (format, négatif, référence, variantes)",
		"  n'apparaissent que pour le type Image.",
		"  Sans clé API côté serveur, les prompts sont générés en",
		"  mode template.",
	}

	helpBox := styleBox.Copy().
		Width(min(64, a.width-4)).
		Render(strings.Join(sections, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, helpBox))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Esc] Retour")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
