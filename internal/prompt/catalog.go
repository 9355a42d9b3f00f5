package prompt

// CategoryInfo describes one selectable generation domain for the client.
type CategoryInfo struct {
	ID    Category
	Label string
	Desc  string
}

var Categories = []CategoryInfo{
	{CategoryImage, "Image", "Visuels & illustrations"},
	{CategoryDocument, "Document", "Textes & articles"},
	{CategoryWebpage, "Page Web", "Sites & landing pages"},
	{CategoryCode, "Code", "Dev & programmation"},
	{CategoryEmail, "Email", "Communications"},
	{CategorySocial, "Social", "Réseaux sociaux"},
}

type StyleInfo struct {
	ID    Style
	Label string
}

var Styles = []StyleInfo{
	{StyleProfessional, "Professionnel"},
	{StyleCreative, "Créatif"},
	{StyleTechnical, "Technique"},
	{StyleCasual, "Casual"},
}

type LanguageInfo struct {
	ID    Language
	Label string
}

var Languages = []LanguageInfo{
	{LanguageFrench, "Français"},
	{LanguageEnglish, "English"},
}

// AspectRatios lists the ratios the client offers for image generation.
var AspectRatios = []string{"16:9", "4:3", "1:1", "9:16"}

// VariantChoices lists the variant counts the client offers. The API itself
// accepts a wider range.
var VariantChoices = []int{1, 2, 3, 4}

// MaxIdeaChars is the hard cap on idea text length, enforced at input time.
const MaxIdeaChars = 500

// TagGroup is one labeled group of enrichment-tag suggestions. Tags are
// suggestions only: the server merges whatever strings it receives without
// validating them against the catalog.
type TagGroup struct {
	ID    string
	Label string
	Tags  []string
}

var suggestionCatalog = map[Category][]TagGroup{
	CategoryImage: {
		{"style", "Styles artistiques", []string{
			"Studio Ghibli", "Cyberpunk", "Art Nouveau", "Pixar", "Photoréaliste",
			"Pop Art", "Impressionnisme", "Tim Burton", "Anime", "Aquarelle",
			"Peinture à l'huile", "Vaporwave", "Steampunk", "Art Déco",
			"Surréalisme", "Minimaliste", "Rétro vintage", "Isométrique 3D",
		}},
		{"lighting", "Éclairage", []string{
			"Golden Hour", "Néon", "Studio", "Dramatique", "Clair-obscur",
			"Rim Light", "Contre-jour", "Cinématique", "Volumétrique", "Naturel doux",
		}},
		{"composition", "Composition", []string{
			"Gros plan", "Plan large", "Vue aérienne", "Macro", "Symétrique",
			"Règle des tiers", "Vue plongeante", "Contre-plongée", "Panoramique",
		}},
		{"mood", "Ambiance", []string{
			"Mystérieux", "Épique", "Mélancolique", "Onirique", "Futuriste",
			"Post-apocalyptique", "Féérique", "Dystopique", "Serein", "Sombre",
		}},
	},
	CategoryDocument: {
		{"format", "Format", []string{
			"Article", "Rapport", "Guide pratique", "Tutoriel", "Brief créatif",
			"Livre blanc", "Étude de cas", "Newsletter", "Fiche technique", "Manifeste",
		}},
		{"tone", "Ton", []string{
			"Formel", "Académique", "Persuasif", "Narratif", "Vulgarisé",
			"Journalistique", "Inspirant", "Didactique", "Satirique", "Poétique",
		}},
		{"audience", "Public cible", []string{
			"Débutants", "Experts", "Grand public", "Étudiants",
			"Professionnels", "Décideurs", "Investisseurs", "Développeurs",
		}},
	},
	CategoryWebpage: {
		{"design", "Design", []string{
			"Minimaliste", "Glassmorphism", "Brutalist", "Corporate", "Dark mode",
			"Néomorphisme", "Gradient moderne", "One-page", "Parallax", "Bento Grid",
		}},
		{"sections", "Sections", []string{
			"Hero", "Features", "Témoignages", "Pricing", "FAQ",
			"Blog", "Portfolio", "Contact", "Timeline", "Statistiques",
		}},
		{"tech", "Technologies", []string{
			"HTML/CSS", "React", "Vue.js", "Tailwind CSS", "Next.js",
			"Animations GSAP", "Three.js", "Framer Motion", "Bootstrap",
		}},
	},
	CategoryCode: {
		{"language", "Langage", []string{
			"JavaScript", "TypeScript", "Python", "Java", "C#",
			"Go", "Rust", "PHP", "Swift", "Kotlin",
		}},
		{"pattern", "Patterns & Architecture", []string{
			"MVC", "REST API", "GraphQL", "Microservices", "Clean Architecture",
			"TDD", "SOLID", "CQRS", "Event-driven", "Hexagonal",
		}},
		{"framework", "Frameworks", []string{
			"React", "Vue", "Angular", "Express", "NestJS",
			"Django", "FastAPI", "Spring Boot", ".NET", "Laravel",
		}},
	},
	CategoryEmail: {
		{"emailType", "Type d'email", []string{
			"Prospection", "Relance", "Newsletter", "Bienvenue", "Transactionnel",
			"Événement", "Promotion", "Feedback", "Partenariat", "Réactivation",
		}},
		{"emailTone", "Ton", []string{
			"B2B", "B2C", "Formel", "Conversationnel", "Urgence",
			"Personnalisé", "Corporate", "Amical", "Exclusif",
		}},
		{"elements", "Éléments clés", []string{
			"CTA puissant", "A/B Test", "Objet accrocheur", "Séquence multi-email",
			"Social proof", "Offre limitée", "Storytelling", "Données chiffrées",
		}},
	},
	CategorySocial: {
		{"platform", "Plateforme", []string{
			"Twitter/X", "LinkedIn", "Instagram", "TikTok",
			"Facebook", "YouTube", "Threads", "Pinterest",
		}},
		{"socialFormat", "Format", []string{
			"Post", "Thread", "Carrousel", "Story", "Reel",
			"Short", "Infographie", "Sondage", "Live", "Behind the scenes",
		}},
		{"strategy", "Stratégie", []string{
			"Hook viral", "Storytelling", "Engagement", "Éducatif",
			"Controverse positive", "Tutorial", "Avant/Après", "Défi/Challenge",
			"Tendance", "UGC",
		}},
	},
}

// SuggestionsFor returns the tag groups for a category, the image catalog
// for anything unknown.
func SuggestionsFor(c Category) []TagGroup {
	if groups, ok := suggestionCatalog[c]; ok {
		return groups
	}
	return suggestionCatalog[CategoryImage]
}
