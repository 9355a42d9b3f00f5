package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/ced-it/promptforge/internal/apiclient"
	"github.com/ced-it/promptforge/internal/config"
	"github.com/ced-it/promptforge/internal/history"
	"github.com/ced-it/promptforge/internal/prompt"
	"github.com/ced-it/promptforge/internal/saas"
)

// phase is the per-submission state machine. A submission in flight runs to
// completion; both terminal transitions land back in phaseIdle.
type phase int

const (
	phaseIdle phase = iota
	phaseSubmitting
)

// section is the currently focused form control.
type section int

const (
	sectionIdea section = iota
	sectionCategory
	sectionStyle
	sectionLanguage
	sectionAttachments
	sectionTags
	sectionNegative
	sectionRatio
	sectionArtist
	sectionVariants
	sectionSubmit
)

type state struct {
	cfg   *config.ClientConfig
	api   *apiclient.Client
	saas  *saas.Client
	store *history.Store

	// Access/credit state (nil credits means untracked/unlimited)
	access     *saas.Access
	credits    *int
	accessNote string

	// Form
	idea           textinput.Model
	categoryIdx    int
	styleIdx       int
	languageIdx    int
	hasAttachments bool
	negative       textinput.Model
	artist         textinput.Model
	ratioIdx       int // 0 = unset, otherwise index+1 into prompt.AspectRatios
	variantIdx     int // index into prompt.VariantChoices
	selectedTags   []string
	tagGroupIdx    int
	tagIdx         int
	focus          section

	// Submission
	phase  phase
	spin   spinner.Model
	notice string

	// Result
	result *prompt.Result

	// History
	entries    []history.Entry
	historyIdx int

	genCount   int
	serverMode string
}

func newState(cfg *config.ClientConfig, api *apiclient.Client, saasClient *saas.Client, store *history.Store) *state {
	idea := textinput.New()
	idea.Placeholder = "Décrivez votre idée..."
	idea.CharLimit = prompt.MaxIdeaChars
	idea.Width = 60

	negative := textinput.New()
	negative.Placeholder = "Mots-clés à exclure..."
	negative.CharLimit = 200
	negative.Width = 50

	artist := textinput.New()
	artist.Placeholder = "Artiste ou style de référence..."
	artist.CharLimit = 100
	artist.Width = 50

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	s := &state{
		cfg:      cfg,
		api:      api,
		saas:     saasClient,
		store:    store,
		idea:     idea,
		negative: negative,
		artist:   artist,
		spin:     spin,
	}
	s.idea.Focus()

	if store != nil {
		if entries, err := store.List(); err == nil {
			s.entries = entries
		}
		if n, err := store.Count(); err == nil {
			s.genCount = n
		}
	}

	return s
}

func (s *state) category() prompt.Category {
	return prompt.Categories[s.categoryIdx].ID
}

func (s *state) style() prompt.Style {
	return prompt.Styles[s.styleIdx].ID
}

func (s *state) language() prompt.Language {
	return prompt.Languages[s.languageIdx].ID
}
