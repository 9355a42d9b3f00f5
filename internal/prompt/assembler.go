package prompt

import (
	_ "embed"
	"fmt"
	"strings"
)

// SystemPrompt establishes the prompt-engineering persona and the three-field
// JSON contract the completion service must honor.
//
//go:embed system_prompt.md
var SystemPrompt string

const fragmentImage = `TYPE: GÉNÉRATION D'IMAGE
Inclus dans le prompt:
- Style artistique précis (photoréaliste, digital art, aquarelle, 3D render, cinématique...)
- Composition et cadrage (plan large, gros plan, vue aérienne, perspective...)
- Éclairage détaillé (golden hour, néon, studio, naturel, dramatique, rim light...)
- Palette de couleurs dominante
- Ambiance et atmosphère (mystérieux, joyeux, épique, mélancolique...)
- Détails de texture et matériaux
- Résolution et ratio (16:9, 1:1, portrait...)
- Mots-clés de qualité: "highly detailed, 8k, professional, masterpiece"
- Négatifs implicites à éviter`

const fragmentDocument = `TYPE: DOCUMENT / TEXTE
Inclus dans le prompt:
- Structure complète (introduction, sections, conclusion)
- Ton et registre (formel, conversationnel, académique, persuasif...)
- Public cible précis
- Longueur approximative
- Format (article, rapport, guide, tutoriel, brief...)
- Points clés à couvrir obligatoirement
- Style d'écriture (concis, narratif, technique, vulgarisé...)
- Call-to-action si pertinent
- Sources ou références à inclure`

const fragmentWebpage = `TYPE: PAGE WEB / SITE INTERNET
Inclus dans le prompt:
- Layout et structure (hero, features, testimonials, CTA, footer...)
- Stack technique recommandé
- Style visuel (minimaliste, glassmorphism, brutalist, corporate...)
- Responsive design (mobile-first, breakpoints)
- Animations et micro-interactions
- Typographie (font families, hiérarchie)
- Palette de couleurs avec codes hex
- Accessibilité (WCAG)
- SEO (meta tags, structure sémantique)
- Performances (lazy loading, optimisation images)`

const fragmentCode = `TYPE: DÉVELOPPEMENT / CODE
Inclus dans le prompt:
- Langage et framework précis avec versions
- Architecture et design patterns
- Structure des fichiers/dossiers
- Gestion d'erreurs et edge cases
- Types/interfaces si TypeScript
- Tests unitaires et d'intégration
- Documentation inline
- Sécurité (validation, sanitisation)
- Performance et optimisation
- Dépendances recommandées`

const fragmentEmail = `TYPE: EMAIL / COMMUNICATION
Inclus dans le prompt:
- Objet d'email accrocheur (plusieurs options)
- Structure: accroche → corps → CTA → signature
- Ton adapté au contexte (B2B, B2C, interne, formel...)
- Personnalisation (variables dynamiques)
- Longueur optimale
- Call-to-action clair et unique
- Timing d'envoi recommandé
- A/B testing suggestions
- Conformité (RGPD, désabonnement)`

const fragmentSocial = `TYPE: RÉSEAUX SOCIAUX
Inclus dans le prompt:
- Plateforme cible (Twitter/X, LinkedIn, Instagram, TikTok...)
- Format optimal pour la plateforme
- Hook/accroche en première ligne
- Hashtags stratégiques (mix populaires + niche)
- Call-to-action engageant
- Ton et voix de marque
- Longueur optimale par plateforme
- Meilleur moment de publication
- Stratégie d'engagement (questions, polls, débats)
- Viralité: émotions, controverses positives, storytelling`

// categoryFragment returns the type-specific instruction block. The default
// arm is deliberate: an unknown category must degrade to image, never fail.
func categoryFragment(c Category) string {
	switch c {
	case CategoryImage:
		return fragmentImage
	case CategoryDocument:
		return fragmentDocument
	case CategoryWebpage:
		return fragmentWebpage
	case CategoryCode:
		return fragmentCode
	case CategoryEmail:
		return fragmentEmail
	case CategorySocial:
		return fragmentSocial
	default:
		return fragmentImage
	}
}

// styleFragment returns the tone instruction line, defaulting to
// professional for unknown styles.
func styleFragment(s Style) string {
	switch s {
	case StyleProfessional:
		return "STYLE: Professionnel, corporate, élégant. Vocabulaire soutenu, structure claire, ton autoritaire mais accessible."
	case StyleCreative:
		return "STYLE: Créatif, original, audacieux. Métaphores, storytelling, approche non-conventionnelle, surprise."
	case StyleTechnical:
		return "STYLE: Technique, précis, détaillé. Jargon spécialisé, spécifications exactes, approche méthodique."
	case StyleCasual:
		return "STYLE: Décontracté, conversationnel, accessible. Ton amical, exemples du quotidien, humour léger."
	default:
		return "STYLE: Professionnel, corporate, élégant. Vocabulaire soutenu, structure claire, ton autoritaire mais accessible."
	}
}

// languageDirective tells the model which language the whole answer must
// use. Anything that is not explicitly English means French.
func languageDirective(l Language) string {
	if l == LanguageEnglish {
		return "IMPORTANT: Generate the prompt AND all responses in ENGLISH."
	}
	return "IMPORTANT: Génère le prompt ET toutes les réponses en FRANÇAIS."
}

const attachmentClause = `FICHIERS ATTACHÉS: L'utilisateur va joindre des fichiers à analyser avec ce prompt. Le prompt DOIT inclure des instructions claires pour:
- Analyser en détail le contenu des fichiers fournis
- Extraire les informations pertinentes des documents/images/fichiers joints
- Baser la réponse sur le contenu réel des fichiers attachés
- Mentionner explicitement que des fichiers sont fournis et doivent être pris en compte`

// clause is one optional block of the assembled user message. Keeping the
// blocks as an ordered (when, render) list makes the composition order and
// the independence of each block explicit.
type clause struct {
	when   func(*Request) bool
	render func(*Request) string
}

func always(*Request) bool { return true }

var userMessageClauses = []clause{
	{always, func(r *Request) string { return categoryFragment(r.Type) }},
	{always, func(r *Request) string { return styleFragment(r.Style) }},
	{always, func(r *Request) string { return languageDirective(r.Language) }},
	{
		func(r *Request) bool { return len(r.EnrichmentTags) > 0 },
		func(r *Request) string {
			return "MOTS-CLÉS D'ENRICHISSEMENT (sélectionnés par l'utilisateur, à intégrer impérativement dans le prompt): " +
				strings.Join(r.EnrichmentTags, ", ")
		},
	},
	{
		func(r *Request) bool { return r.Type == CategoryImage && hasAdvancedImageOptions(r) },
		renderAdvancedImageOptions,
	},
	{
		func(r *Request) bool { return r.HasAttachments },
		func(*Request) string { return attachmentClause },
	},
	{always, func(r *Request) string {
		return fmt.Sprintf("IDÉE DE L'UTILISATEUR: %q\n\nGénère un prompt ultra-optimisé pour cette idée. Réponds UNIQUEMENT en JSON valide.", r.Keywords)
	}},
}

func hasAdvancedImageOptions(r *Request) bool {
	return r.NegativeKeywords != "" || r.AspectRatio != "" || r.ArtistReference != "" || r.ImageVariants > 1
}

func renderAdvancedImageOptions(r *Request) string {
	var parts []string
	if r.NegativeKeywords != "" {
		parts = append(parts, "MOTS-CLÉS NÉGATIFS (à exclure absolument): "+r.NegativeKeywords)
	}
	if r.AspectRatio != "" {
		parts = append(parts, "RATIO D'IMAGE IMPOSÉ: "+r.AspectRatio)
	}
	if r.ArtistReference != "" {
		parts = append(parts, "STYLE/ARTISTE DE RÉFÉRENCE: "+r.ArtistReference+" - Adapte le prompt pour refléter ce style visuel")
	}
	if r.ImageVariants > 1 {
		parts = append(parts, fmt.Sprintf("NOMBRE DE VARIANTES: Génère %d versions différentes du prompt, chacune avec une approche visuelle distincte (angle, ambiance, palette, composition)", clampVariants(r.ImageVariants)))
	}
	return "OPTIONS AVANCÉES:\n" + strings.Join(parts, "\n")
}

// BuildUserMessage assembles the task instruction sent alongside
// SystemPrompt. Clauses are evaluated in fixed order and joined by blank
// lines; a clause whose trigger does not hold is simply absent.
func BuildUserMessage(req *Request) string {
	var blocks []string
	for _, c := range userMessageClauses {
		if c.when(req) {
			blocks = append(blocks, c.render(req))
		}
	}
	return strings.Join(blocks, "\n\n")
}
