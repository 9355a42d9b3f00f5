package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ced-it/promptforge/internal/prompt"
)

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (a *App) renderForm() string {
	var b strings.Builder
	s := a.state

	// Logo
	logo := styleLogo.Render("PromptForge")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, logo))
	b.WriteString("\n")
	subtitle := styleSubtitle.Render("Générateur de Prompts IA")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, subtitle))
	b.WriteString("\n\n")

	boxWidth := min(70, a.width-4)

	// Idea input
	ideaBorder := colorMuted
	if s.focus == sectionIdea {
		ideaBorder = colorPrimary
	}
	ideaBox := styleBox.Copy().
		Width(boxWidth).
		BorderForeground(ideaBorder).
		Render(a.labelFor(sectionIdea, "Votre idée") + "\n" + s.idea.View() +
			"\n" + styleSubtitle.Render(fmt.Sprintf("%d/%d", len(s.idea.Value()), prompt.MaxIdeaChars)))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, ideaBox))
	b.WriteString("\n")

	// Selectors
	var lines []string
	lines = append(lines, a.labelFor(sectionCategory, "Type")+"      "+a.renderCategoryChips())
	lines = append(lines, a.labelFor(sectionStyle, "Style")+"     "+a.renderStyleChips())
	lines = append(lines, a.labelFor(sectionLanguage, "Langue")+"    "+a.renderLanguageChips())
	lines = append(lines, a.labelFor(sectionAttachments, "Fichiers")+"  "+a.renderToggle(s.hasAttachments))

	selectorBox := styleBox.Copy().
		Width(boxWidth).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, selectorBox))
	b.WriteString("\n")

	// Enrichment tag suggestions
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, a.renderTagBox(boxWidth)))
	b.WriteString("\n")

	// Image-only options
	if s.category() == prompt.CategoryImage {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, a.renderImageBox(boxWidth)))
		b.WriteString("\n")
	}

	// Submit + notice
	submit := "  Générer le prompt  "
	if s.focus == sectionSubmit {
		submit = styleSelected.Render("> Générer le prompt <")
	} else {
		submit = styleSubtitle.Render(submit)
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, submit))
	b.WriteString("\n")

	if s.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleNotice.Render(s.notice)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Status bar
	status := styleStatusBar.Render("[Tab] Champ suivant  [Enter] Générer  [Ctrl+R] Historique  [Ctrl+H] Aide  [Esc] Quitter")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleStatusBar.Render(s.statusLine())))

	return b.String()
}

func (a *App) labelFor(sec section, text string) string {
	if a.state.focus == sec {
		return styleLabelFocus.Render(text)
	}
	return styleLabel.Render(text)
}

func (a *App) renderCategoryChips() string {
	var chips []string
	for i, c := range prompt.Categories {
		chip := c.Label
		if i == a.state.categoryIdx {
			chip = styleSelected.Render("[" + chip + "]")
		} else {
			chip = styleSubtitle.Render(" " + chip + " ")
		}
		chips = append(chips, chip)
	}
	return strings.Join(chips, " ")
}

func (a *App) renderStyleChips() string {
	var chips []string
	for i, st := range prompt.Styles {
		chip := st.Label
		if i == a.state.styleIdx {
			chip = styleSelected.Render("[" + chip + "]")
		} else {
			chip = styleSubtitle.Render(" " + chip + " ")
		}
		chips = append(chips, chip)
	}
	return strings.Join(chips, " ")
}

func (a *App) renderLanguageChips() string {
	var chips []string
	for i, l := range prompt.Languages {
		chip := l.Label
		if i == a.state.languageIdx {
			chip = styleSelected.Render("[" + chip + "]")
		} else {
			chip = styleSubtitle.Render(" " + chip + " ")
		}
		chips = append(chips, chip)
	}
	return strings.Join(chips, " ")
}

func (a *App) renderToggle(on bool) string {
	if on {
		return styleSelected.Render("[x] avec fichiers joints")
	}
	return styleSubtitle.Render("[ ] avec fichiers joints")
}

func (a *App) renderTagBox(boxWidth int) string {
	s := a.state
	groups := s.tagGroups()

	var lines []string
	lines = append(lines, a.labelFor(sectionTags, "Enrichissement"))
	for gi, g := range groups {
		var tags []string
		for ti, t := range g.Tags {
			label := t
			if s.tagSelected(t) {
				label = "[x] " + label
			} else {
				label = "[ ] " + label
			}
			if s.focus == sectionTags && gi == s.tagGroupIdx && ti == s.tagIdx {
				label = styleSelected.Render(label)
			} else if s.tagSelected(t) {
				label = lipgloss.NewStyle().Foreground(colorSuccess).Render(label)
			} else {
				label = styleSubtitle.Render(label)
			}
			tags = append(tags, label)
		}
		lines = append(lines, "  "+g.Label+": "+strings.Join(tags, "  "))
	}

	border := colorMuted
	if s.focus == sectionTags {
		border = colorPrimary
	}
	return styleBox.Copy().
		Width(boxWidth).
		BorderForeground(border).
		Render(strings.Join(lines, "\n"))
}

func (a *App) renderImageBox(boxWidth int) string {
	s := a.state

	lines := []string{
		a.labelFor(sectionNegative, "Négatif") + "   " + s.negative.View(),
		a.labelFor(sectionRatio, "Format") + "    " + a.renderRatioChips(),
		a.labelFor(sectionArtist, "Référence") + " " + s.artist.View(),
		a.labelFor(sectionVariants, "Variantes") + " " + a.renderVariantChips(),
	}

	return styleBox.Copy().
		Width(boxWidth).
		Render(strings.Join(lines, "\n"))
}

func (a *App) renderRatioChips() string {
	s := a.state
	chips := append([]string{"auto"}, prompt.AspectRatios...)
	for i, c := range chips {
		if i == s.ratioIdx {
			chips[i] = styleSelected.Render("[" + c + "]")
		} else {
			chips[i] = styleSubtitle.Render(" " + c + " ")
		}
	}
	return strings.Join(chips, " ")
}

func (a *App) renderVariantChips() string {
	s := a.state
	var chips []string
	for i, v := range prompt.VariantChoices {
		chip := fmt.Sprintf("%d", v)
		if i == s.variantIdx {
			chip = styleSelected.Render("[" + chip + "]")
		} else {
			chip = styleSubtitle.Render(" " + chip + " ")
		}
		chips = append(chips, chip)
	}
	return strings.Join(chips, " ")
}
