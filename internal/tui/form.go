package tui

import (
	"fmt"
	"strings"

	"github.com/ced-it/promptforge/internal/history"
	"github.com/ced-it/promptforge/internal/prompt"
)

// sections returns the focus order of the form. The image-only controls are
// part of the cycle only while the image category is selected.
func (s *state) sections() []section {
	base := []section{sectionIdea, sectionCategory, sectionStyle, sectionLanguage, sectionAttachments, sectionTags}
	if s.category() == prompt.CategoryImage {
		base = append(base, sectionNegative, sectionRatio, sectionArtist, sectionVariants)
	}
	return append(base, sectionSubmit)
}

func (s *state) nextFocus() { s.moveFocus(1) }
func (s *state) prevFocus() { s.moveFocus(-1) }

func (s *state) moveFocus(delta int) {
	order := s.sections()
	cur := 0
	for i, sec := range order {
		if sec == s.focus {
			cur = i
			break
		}
	}
	s.setFocus(order[(cur+delta+len(order))%len(order)])
}

func (s *state) setFocus(sec section) {
	s.focus = sec
	s.idea.Blur()
	s.negative.Blur()
	s.artist.Blur()
	switch sec {
	case sectionIdea:
		s.idea.Focus()
	case sectionNegative:
		s.negative.Focus()
	case sectionArtist:
		s.artist.Focus()
	}
}

// setCategory switches the generation domain. Tags are category-scoped and
// meaningless across categories, so any actual switch drops the selection.
func (s *state) setCategory(idx int) {
	if idx < 0 || idx >= len(prompt.Categories) {
		return
	}
	if idx != s.categoryIdx {
		s.selectedTags = nil
		s.tagGroupIdx = 0
		s.tagIdx = 0
	}
	s.categoryIdx = idx
	if s.category() != prompt.CategoryImage && s.focus > sectionTags && s.focus < sectionSubmit {
		s.setFocus(sectionSubmit)
	}
}

func (s *state) cycleCategory(delta int) {
	s.setCategory((s.categoryIdx + delta + len(prompt.Categories)) % len(prompt.Categories))
}

func (s *state) tagGroups() []prompt.TagGroup {
	return prompt.SuggestionsFor(s.category())
}

func (s *state) currentTag() string {
	groups := s.tagGroups()
	if s.tagGroupIdx >= len(groups) {
		return ""
	}
	tags := groups[s.tagGroupIdx].Tags
	if s.tagIdx >= len(tags) {
		return ""
	}
	return tags[s.tagIdx]
}

func (s *state) tagSelected(tag string) bool {
	for _, t := range s.selectedTags {
		if t == tag {
			return true
		}
	}
	return false
}

// toggleTag adds the highlighted suggestion to the selection, or removes it
// when already selected.
func (s *state) toggleTag() {
	tag := s.currentTag()
	if tag == "" {
		return
	}
	for i, t := range s.selectedTags {
		if t == tag {
			s.selectedTags = append(s.selectedTags[:i], s.selectedTags[i+1:]...)
			return
		}
	}
	s.selectedTags = append(s.selectedTags, tag)
}

func (s *state) moveTagCursor(dGroup, dTag int) {
	groups := s.tagGroups()
	if len(groups) == 0 {
		return
	}
	s.tagGroupIdx = (s.tagGroupIdx + dGroup + len(groups)) % len(groups)
	tags := groups[s.tagGroupIdx].Tags
	if len(tags) == 0 {
		s.tagIdx = 0
		return
	}
	s.tagIdx = (s.tagIdx + dTag + len(tags)) % len(tags)
	if s.tagIdx >= len(tags) {
		s.tagIdx = len(tags) - 1
	}
}

// buildRequest snapshots the form into the wire request. Image-only fields
// are included only for the image category; unset optional fields are
// simply absent.
func (s *state) buildRequest() prompt.Request {
	req := prompt.Request{
		Keywords:       strings.TrimSpace(s.idea.Value()),
		Type:           s.category(),
		Style:          s.style(),
		Language:       s.language(),
		HasAttachments: s.hasAttachments,
	}

	if len(s.selectedTags) > 0 {
		req.EnrichmentTags = append([]string(nil), s.selectedTags...)
	}

	if req.Type == prompt.CategoryImage {
		req.NegativeKeywords = strings.TrimSpace(s.negative.Value())
		req.ArtistReference = strings.TrimSpace(s.artist.Value())
		if s.ratioIdx > 0 && s.ratioIdx <= len(prompt.AspectRatios) {
			req.AspectRatio = prompt.AspectRatios[s.ratioIdx-1]
		}
		if v := prompt.VariantChoices[s.variantIdx]; v > 1 {
			req.ImageVariants = v
		}
	}

	return req
}

// canSubmit decides whether the generate action may fire, with a
// user-facing reason when it may not. A tracked balance of zero blocks
// generation entirely; the user is pointed at the purchase page instead.
func (s *state) canSubmit() (bool, string) {
	if s.phase == phaseSubmitting {
		return false, "Génération en cours..."
	}
	if strings.TrimSpace(s.idea.Value()) == "" {
		return false, "Entrez une idée ou des mots-clés"
	}
	if s.credits != nil && *s.credits <= 0 {
		reason := "Plus de crédits disponibles"
		if s.saas != nil {
			reason += " — rechargez sur " + s.saas.PurchaseURL()
		}
		return false, reason
	}
	return true, ""
}

// applyHistory restores every field of a past submission, including the
// category-scoped tags and the image-only options.
func (s *state) applyHistory(e history.Entry) {
	req := e.Request

	s.categoryIdx = 0
	for i, c := range prompt.Categories {
		if c.ID == req.Type {
			s.categoryIdx = i
			break
		}
	}
	s.styleIdx = 0
	for i, st := range prompt.Styles {
		if st.ID == req.Style {
			s.styleIdx = i
			break
		}
	}
	s.languageIdx = 0
	for i, l := range prompt.Languages {
		if l.ID == req.Language {
			s.languageIdx = i
			break
		}
	}

	s.idea.SetValue(req.Keywords)
	s.hasAttachments = req.HasAttachments
	s.negative.SetValue(req.NegativeKeywords)
	s.artist.SetValue(req.ArtistReference)

	s.ratioIdx = 0
	for i, r := range prompt.AspectRatios {
		if r == req.AspectRatio {
			s.ratioIdx = i + 1
			break
		}
	}
	s.variantIdx = 0
	for i, v := range prompt.VariantChoices {
		if v == req.ImageVariants {
			s.variantIdx = i
			break
		}
	}

	s.selectedTags = append([]string(nil), req.EnrichmentTags...)
	s.tagGroupIdx = 0
	s.tagIdx = 0
	s.setFocus(sectionIdea)
}

// statusLine summarizes access and usage for the bottom bar.
func (s *state) statusLine() string {
	parts := []string{fmt.Sprintf("%d générations", s.genCount)}
	if s.serverMode != "" {
		parts = append(parts, "mode "+s.serverMode)
	}
	if s.access != nil {
		parts = append(parts, s.access.AccessType)
	}
	if s.credits != nil {
		parts = append(parts, fmt.Sprintf("%d crédits", *s.credits))
	}
	if s.accessNote != "" {
		parts = append(parts, s.accessNote)
	}
	return strings.Join(parts, "  ·  ")
}
