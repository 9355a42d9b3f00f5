package prompt

// Category is the generation domain the user picked. Unknown values fall
// back to CategoryImage everywhere a category is resolved.
type Category string

const (
	CategoryImage    Category = "image"
	CategoryDocument Category = "document"
	CategoryWebpage  Category = "webpage"
	CategoryCode     Category = "code"
	CategoryEmail    Category = "email"
	CategorySocial   Category = "social"
)

// Style is a cross-cutting tone modifier, independent of category.
type Style string

const (
	StyleProfessional Style = "professional"
	StyleCreative     Style = "creative"
	StyleTechnical    Style = "technical"
	StyleCasual       Style = "casual"
)

// Language selects the language of the generated output. Interface
// translations are a client concern; generation only knows fr and en.
type Language string

const (
	LanguageFrench  Language = "fr"
	LanguageEnglish Language = "en"
)

// Request is one generation submission. Field names on the wire match the
// POST /api/generate contract. Every field except Keywords is optional and
// absent-safe: a missing value only drops the corresponding clause.
type Request struct {
	Keywords         string   `json:"keywords"`
	Type             Category `json:"type,omitempty"`
	Style            Style    `json:"style,omitempty"`
	Language         Language `json:"language,omitempty"`
	HasAttachments   bool     `json:"hasAttachments,omitempty"`
	NegativeKeywords string   `json:"negativeKeywords,omitempty"`
	AspectRatio      string   `json:"aspectRatio,omitempty"`
	ArtistReference  string   `json:"artistReference,omitempty"`
	ImageVariants    int      `json:"imageVariants,omitempty"`
	EnrichmentTags   []string `json:"enrichmentTags,omitempty"`
}

// Result is the response contract. All three fields are always present in
// JSON regardless of which path produced them.
type Result struct {
	Prompt     string   `json:"prompt"`
	Tips       []string `json:"tips"`
	Variations []string `json:"variations"`
}

// maxVariants caps imageVariants at the API boundary. The client only
// offers 1..4 but the endpoint is reachable directly.
const maxVariants = 8

// clampVariants normalizes the requested variant count to 1..maxVariants.
func clampVariants(n int) int {
	if n < 1 {
		return 1
	}
	if n > maxVariants {
		return maxVariants
	}
	return n
}
