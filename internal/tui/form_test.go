package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/ced-it/promptforge/internal/history"
	"github.com/ced-it/promptforge/internal/prompt"
	"github.com/ced-it/promptforge/internal/saas"
)

func newTestState(t *testing.T) *state {
	t.Helper()
	return newState(nil, nil, nil, nil)
}

func categoryIndex(t *testing.T, c prompt.Category) int {
	t.Helper()
	for i, info := range prompt.Categories {
		if info.ID == c {
			return i
		}
	}
	t.Fatalf("unknown category %q", c)
	return 0
}

func TestSetCategoryClearsTags(t *testing.T) {
	s := newTestState(t)
	s.selectedTags = []string{"Cyberpunk", "Néon"}
	s.tagGroupIdx = 1
	s.tagIdx = 3

	s.setCategory(categoryIndex(t, prompt.CategoryCode))

	if len(s.selectedTags) != 0 {
		t.Errorf("tags survived a category switch: %v", s.selectedTags)
	}
	if s.tagGroupIdx != 0 || s.tagIdx != 0 {
		t.Errorf("tag cursor not reset: group=%d tag=%d", s.tagGroupIdx, s.tagIdx)
	}
}

func TestSetCategorySameKeepsTags(t *testing.T) {
	s := newTestState(t)
	s.selectedTags = []string{"Cyberpunk"}

	s.setCategory(s.categoryIdx)

	if len(s.selectedTags) != 1 {
		t.Errorf("tags cleared without a category change: %v", s.selectedTags)
	}
}

func TestSetCategoryMovesFocusOffImageSections(t *testing.T) {
	s := newTestState(t)
	s.setFocus(sectionRatio)

	s.setCategory(categoryIndex(t, prompt.CategoryEmail))

	if s.focus == sectionRatio || s.focus == sectionNegative || s.focus == sectionArtist || s.focus == sectionVariants {
		t.Errorf("focus stuck on an image-only section: %v", s.focus)
	}
}

func TestIdeaCharLimit(t *testing.T) {
	s := newTestState(t)
	if s.idea.CharLimit != prompt.MaxIdeaChars {
		t.Fatalf("CharLimit = %d, want %d", s.idea.CharLimit, prompt.MaxIdeaChars)
	}
}

func TestCanSubmitBlankIdea(t *testing.T) {
	s := newTestState(t)
	s.idea.SetValue("   ")

	ok, reason := s.canSubmit()
	if ok {
		t.Fatal("blank idea allowed to submit")
	}
	if reason != "Entrez une idée ou des mots-clés" {
		t.Errorf("reason = %q", reason)
	}
}

func TestCanSubmitZeroCredits(t *testing.T) {
	s := newTestState(t)
	s.saas = saas.NewClient("https://saas.example", "prompt-generator")
	s.idea.SetValue("un dragon")
	zero := 0
	s.credits = &zero

	ok, reason := s.canSubmit()
	if ok {
		t.Fatal("zero credits allowed to submit")
	}
	if !strings.Contains(reason, s.saas.PurchaseURL()) {
		t.Errorf("reason %q does not point at the purchase page", reason)
	}
}

func TestCanSubmitWhileSubmitting(t *testing.T) {
	s := newTestState(t)
	s.idea.SetValue("un dragon")
	s.phase = phaseSubmitting

	if ok, _ := s.canSubmit(); ok {
		t.Fatal("submit allowed while a request is in flight")
	}
}

func TestBuildRequestOmitsImageFieldsForNonImage(t *testing.T) {
	s := newTestState(t)
	s.idea.SetValue("  une newsletter  ")
	s.setCategory(categoryIndex(t, prompt.CategoryEmail))
	s.negative.SetValue("flou")
	s.artist.SetValue("Van Gogh")
	s.ratioIdx = 2
	s.variantIdx = 3

	req := s.buildRequest()

	if req.Keywords != "une newsletter" {
		t.Errorf("Keywords = %q, want trimmed value", req.Keywords)
	}
	if req.NegativeKeywords != "" || req.ArtistReference != "" || req.AspectRatio != "" || req.ImageVariants != 0 {
		t.Errorf("image-only fields leaked into %+v", req)
	}
}

func TestBuildRequestImageFields(t *testing.T) {
	s := newTestState(t)
	s.idea.SetValue("un dragon")
	s.setCategory(categoryIndex(t, prompt.CategoryImage))
	s.negative.SetValue(" flou ")
	s.artist.SetValue("Van Gogh")
	s.ratioIdx = 3 // 1:1
	s.variantIdx = 2
	s.selectedTags = []string{"Cyberpunk", "Néon"}

	req := s.buildRequest()

	if req.AspectRatio != "1:1" {
		t.Errorf("AspectRatio = %q, want 1:1", req.AspectRatio)
	}
	if req.NegativeKeywords != "flou" {
		t.Errorf("NegativeKeywords = %q", req.NegativeKeywords)
	}
	if req.ImageVariants != prompt.VariantChoices[2] {
		t.Errorf("ImageVariants = %d, want %d", req.ImageVariants, prompt.VariantChoices[2])
	}
	if len(req.EnrichmentTags) != 2 {
		t.Errorf("EnrichmentTags = %v", req.EnrichmentTags)
	}
}

func TestBuildRequestSingleVariantOmitted(t *testing.T) {
	s := newTestState(t)
	s.idea.SetValue("un dragon")
	s.setCategory(categoryIndex(t, prompt.CategoryImage))
	s.variantIdx = 0 // one variant

	req := s.buildRequest()
	if req.ImageVariants != 0 {
		t.Errorf("ImageVariants = %d, want omitted for a single variant", req.ImageVariants)
	}
}

func TestToggleTag(t *testing.T) {
	s := newTestState(t)
	s.tagGroupIdx = 0
	s.tagIdx = 1

	want := s.tagGroups()[0].Tags[1]
	s.toggleTag()
	if !s.tagSelected(want) {
		t.Fatalf("%q not selected after toggle", want)
	}
	s.toggleTag()
	if s.tagSelected(want) {
		t.Fatalf("%q still selected after second toggle", want)
	}
}

func TestSectionsGateImageControls(t *testing.T) {
	s := newTestState(t)

	s.setCategory(categoryIndex(t, prompt.CategoryImage))
	image := s.sections()
	s.setCategory(categoryIndex(t, prompt.CategoryDocument))
	document := s.sections()

	contains := func(order []section, sec section) bool {
		for _, o := range order {
			if o == sec {
				return true
			}
		}
		return false
	}

	for _, sec := range []section{sectionNegative, sectionRatio, sectionArtist, sectionVariants} {
		if !contains(image, sec) {
			t.Errorf("image order missing section %v", sec)
		}
		if contains(document, sec) {
			t.Errorf("document order exposes image-only section %v", sec)
		}
	}
}

func TestApplyHistoryRestoresAllFields(t *testing.T) {
	s := newTestState(t)

	e := history.Entry{
		ID:        "abc",
		Timestamp: time.Now(),
		Request: prompt.Request{
			Keywords:         "un chateau dans les nuages",
			Type:             prompt.CategoryImage,
			Style:            prompt.StyleCreative,
			Language:         prompt.LanguageEnglish,
			HasAttachments:   true,
			NegativeKeywords: "flou, sombre",
			AspectRatio:      "9:16",
			ArtistReference:  "Studio Ghibli",
			ImageVariants:    3,
			EnrichmentTags:   []string{"Onirique", "Golden Hour"},
		},
	}

	s.applyHistory(e)

	if got := s.idea.Value(); got != e.Request.Keywords {
		t.Errorf("idea = %q", got)
	}
	if s.category() != prompt.CategoryImage {
		t.Errorf("category = %v", s.category())
	}
	if s.style() != prompt.StyleCreative {
		t.Errorf("style = %v", s.style())
	}
	if s.language() != prompt.LanguageEnglish {
		t.Errorf("language = %v", s.language())
	}
	if !s.hasAttachments {
		t.Error("hasAttachments not restored")
	}

	req := s.buildRequest()
	if req.NegativeKeywords != e.Request.NegativeKeywords {
		t.Errorf("NegativeKeywords = %q", req.NegativeKeywords)
	}
	if req.AspectRatio != e.Request.AspectRatio {
		t.Errorf("AspectRatio = %q", req.AspectRatio)
	}
	if req.ArtistReference != e.Request.ArtistReference {
		t.Errorf("ArtistReference = %q", req.ArtistReference)
	}
	if req.ImageVariants != e.Request.ImageVariants {
		t.Errorf("ImageVariants = %d", req.ImageVariants)
	}
	if len(req.EnrichmentTags) != 2 {
		t.Errorf("EnrichmentTags = %v", req.EnrichmentTags)
	}
}

func TestMoveFocusCycles(t *testing.T) {
	s := newTestState(t)
	s.setCategory(categoryIndex(t, prompt.CategoryDocument))
	s.setFocus(sectionIdea)

	order := s.sections()
	for range order {
		s.nextFocus()
	}
	if s.focus != sectionIdea {
		t.Errorf("focus after a full cycle = %v, want sectionIdea", s.focus)
	}

	s.prevFocus()
	if s.focus != order[len(order)-1] {
		t.Errorf("prevFocus from start = %v, want last section", s.focus)
	}
}
