package prompt

import (
	"fmt"
	"strings"
)

// OfflineTip is appended to the fallback tips when the completion service
// failed and the result was produced from templates instead.
const OfflineTip = "⚠️ Généré en mode hors-ligne (templates)"

// fallbackTemplate produces a deterministic result for one category when no
// completion service is available. Tips are static; variations are a
// function of the idea text.
type fallbackTemplate struct {
	prompt     func(keywords string, style Style) string
	tips       []string
	variations func(keywords string) []string
}

var imageTemplate = fallbackTemplate{
	prompt: func(kw string, style Style) string {
		quality := "professional high-quality"
		if style == StyleCreative {
			quality = "stunning and artistic"
		}
		return fmt.Sprintf("Create a %s %s. Style: ultra-detailed digital artwork with cinematic lighting, rich color palette, dramatic composition. Shot in 8K resolution, photorealistic textures, volumetric lighting, depth of field. Trending on ArtStation, masterpiece quality. Aspect ratio 16:9.", quality, kw)
	},
	tips: []string{
		"Ajoutez des mots-clés négatifs pour exclure ce que vous ne voulez pas",
		"Précisez le ratio d'image souhaité (16:9, 1:1, 9:16)",
		"Mentionnez un artiste ou style de référence pour guider l'esthétique",
	},
	variations: func(kw string) []string {
		return []string{
			fmt.Sprintf("Hyperrealistic photograph of %s, shot on Canon EOS R5, 85mm lens, f/1.4, golden hour lighting, shallow depth of field, National Geographic quality, 8K UHD", kw),
			fmt.Sprintf("Minimalist vector illustration of %s, clean lines, flat design, limited color palette of 4 colors, modern geometric shapes, suitable for large format printing", kw),
		}
	},
}

var documentTemplate = fallbackTemplate{
	prompt: func(kw string, style Style) string {
		register := "engageant et accessible"
		if style == StyleProfessional {
			register = "professionnel et structuré"
		}
		tone := "clair et persuasif"
		if style == StyleTechnical {
			tone = "technique et précis"
		}
		return fmt.Sprintf(`Rédige un document %s sur le thème: "%s". Structure: 1) Introduction captivante avec contexte et enjeux, 2) Développement en 3-4 sections avec sous-titres clairs, exemples concrets et données chiffrées, 3) Conclusion avec synthèse et recommandations actionables. Ton: %s. Longueur: 1500-2000 mots. Public: professionnels du secteur.`, register, kw, tone)
	},
	tips: []string{
		"Précisez votre public cible pour adapter le vocabulaire",
		"Ajoutez des données chiffrées pour renforcer la crédibilité",
		"Incluez des exemples concrets et cas pratiques",
	},
	variations: func(kw string) []string {
		return []string{
			fmt.Sprintf(`Crée un guide pratique étape par étape sur "%s" avec des checklists, des encadrés "À retenir", des exemples avant/après, et une FAQ des questions les plus fréquentes. Format: guide actionable de 2000 mots.`, kw),
			fmt.Sprintf(`Rédige un article d'opinion argumenté sur "%s" avec une thèse forte, 5 arguments étayés par des sources, des contre-arguments anticipés, et une conclusion percutante. Style: éditorial engagé.`, kw),
		}
	},
}

var webpageTemplate = fallbackTemplate{
	prompt: func(kw string, style Style) string {
		design := "clean et professionnel avec beaucoup d'espace blanc"
		if style == StyleCreative {
			design = "glassmorphism avec gradients et animations"
		}
		return fmt.Sprintf(`Crée une page web moderne et responsive pour "%s". Structure: Hero section avec titre impactant + CTA principal, Section features avec icônes et descriptions, Section témoignages/social proof, Section pricing si pertinent, FAQ, Footer avec liens et réseaux sociaux. Design: %s. Stack: HTML5 + Tailwind CSS + JavaScript vanilla. Mobile-first, animations au scroll, dark mode support. Typographie: Inter pour le texte, font display pour les titres.`, kw, design)
	},
	tips: []string{
		"Priorisez le mobile-first pour un meilleur responsive",
		"Ajoutez des micro-interactions pour améliorer l'UX",
		"Optimisez les images avec lazy loading et formats WebP",
	},
	variations: func(kw string) []string {
		return []string{
			fmt.Sprintf(`Crée un one-page parallax pour "%s" avec navigation sticky, sections plein écran, animations GSAP au scroll, compteurs animés, formulaire de contact, intégration Google Maps. Design: minimaliste luxueux noir/blanc/or.`, kw),
			fmt.Sprintf(`Crée un dashboard/app web pour "%s" avec sidebar navigation, cards de statistiques, graphiques interactifs, tableau de données filtrable, mode sombre/clair. Stack: React + Tailwind + Recharts.`, kw),
		}
	},
}

var codeTemplate = fallbackTemplate{
	prompt: func(kw string, style Style) string {
		focus := "Privilégie la lisibilité et la maintenabilité."
		if style == StyleTechnical {
			focus = "Optimise pour la performance et la scalabilité."
		}
		return fmt.Sprintf("Développe %s avec les bonnes pratiques suivantes: Architecture clean avec séparation des responsabilités, Gestion d'erreurs complète avec try/catch et messages explicites, Validation des inputs, Types TypeScript si applicable, Commentaires JSDoc sur les fonctions publiques, Tests unitaires pour les cas nominaux et edge cases, Code DRY et SOLID, Nommage explicite des variables et fonctions. %s", kw, focus)
	},
	tips: []string{
		"Ajoutez des tests unitaires pour chaque fonction critique",
		"Utilisez TypeScript pour une meilleure maintenabilité",
		"Documentez les décisions d'architecture importantes",
	},
	variations: func(kw string) []string {
		return []string{
			fmt.Sprintf("Crée %s en suivant le pattern TDD: 1) Écrire les tests d'abord, 2) Implémenter le code minimal pour les faire passer, 3) Refactorer. Inclure: tests unitaires, tests d'intégration, mocks pour les dépendances externes.", kw),
			fmt.Sprintf("Développe %s avec une architecture hexagonale: ports et adapters, injection de dépendances, domain-driven design. Inclure un README avec diagramme d'architecture et instructions de setup.", kw),
		}
	},
}

var emailTemplate = fallbackTemplate{
	prompt: func(kw string, style Style) string {
		register := "engageant"
		if style == StyleProfessional {
			register = "professionnel"
		}
		tone := "professionnel mais humain"
		if style == StyleCasual {
			tone = "amical et direct"
		}
		return fmt.Sprintf(`Rédige un email %s concernant: "%s". Objet: [3 propositions d'objets accrocheurs]. Structure: Accroche personnalisée (1 ligne), Contexte bref (2-3 lignes), Proposition de valeur claire, Preuve sociale ou donnée chiffrée, Call-to-action unique et clair, Signature professionnelle. Ton: %s. Longueur: max 150 mots pour le corps.`, register, kw, tone)
	},
	tips: []string{
		"L'objet doit faire moins de 50 caractères pour être lu en entier sur mobile",
		"Un seul CTA par email pour maximiser les conversions",
		"Personnalisez avec le prénom du destinataire",
	},
	variations: func(kw string) []string {
		return []string{
			fmt.Sprintf(`Email de relance concernant "%s": Objet court et intrigant, rappel discret du premier contact, nouvelle valeur ajoutée, CTA différent du premier email. Ton: bienveillant, pas insistant. PS: avec un bonus ou une deadline.`, kw),
			fmt.Sprintf(`Email séquence de 3 pour "%s": Email 1: Introduction et valeur, Email 2: Social proof et cas pratique, Email 3: Urgence et offre finale. Chaque email avec objet, corps et CTA optimisés.`, kw),
		}
	},
}

var socialTemplate = fallbackTemplate{
	prompt: func(kw string, style Style) string {
		approach := "Approche: expertise et autorité, données factuelles."
		if style == StyleCreative {
			approach = "Approche: storytelling personnel, ton authentique."
		}
		return fmt.Sprintf(`Crée un post pour les réseaux sociaux sur: "%s". Hook: première ligne ultra-accrocheuse (question, statistique choc, ou déclaration audacieuse). Corps: développement en 3-5 points avec emojis stratégiques, storytelling et valeur actionable. CTA: question engageante ou appel à l'action. Hashtags: 5 hashtags mix (2 populaires + 2 niche + 1 branded). %s`, kw, approach)
	},
	tips: []string{
		"La première ligne détermine 80% de l'engagement",
		"Postez aux heures de pic d'activité de votre audience",
		"Répondez aux commentaires dans les 30 premières minutes",
	},
	variations: func(kw string) []string {
		return []string{
			fmt.Sprintf(`Thread Twitter/X de 5 tweets sur "%s": Tweet 1: hook viral + promesse, Tweets 2-4: contenu actionable avec exemples, Tweet 5: résumé + CTA retweet. Format: phrases courtes, emojis bullet points, chiffres ronds.`, kw),
			fmt.Sprintf(`Post LinkedIn storytelling sur "%s": Début: anecdote personnelle ou échec, Milieu: leçon apprise et framework, Fin: conseil actionable + question d'engagement. Format: une phrase par ligne, max 1300 caractères.`, kw),
		}
	},
}

// templateFor resolves the fallback template with the same defensive default
// as categoryFragment: unknown categories get the image template.
func templateFor(c Category) fallbackTemplate {
	switch c {
	case CategoryImage:
		return imageTemplate
	case CategoryDocument:
		return documentTemplate
	case CategoryWebpage:
		return webpageTemplate
	case CategoryCode:
		return codeTemplate
	case CategoryEmail:
		return emailTemplate
	case CategorySocial:
		return socialTemplate
	default:
		return imageTemplate
	}
}

// FallbackResult builds the full template-mode result for a request. The
// optional clauses are appended to the prompt in fixed order: enrichment
// tags, then the image options (ratio, artist, negative, variants), then
// the attachment instruction.
func FallbackResult(req *Request) Result {
	tpl := templateFor(req.Type)

	var b strings.Builder
	b.WriteString(tpl.prompt(req.Keywords, req.Style))

	if len(req.EnrichmentTags) > 0 {
		b.WriteString(" Key elements: " + strings.Join(req.EnrichmentTags, ", ") + ".")
	}

	if req.Type == CategoryImage {
		if req.AspectRatio != "" {
			b.WriteString(" Aspect ratio " + req.AspectRatio + ".")
		}
		if req.ArtistReference != "" {
			b.WriteString(" Style inspired by " + req.ArtistReference + ".")
		}
		if req.NegativeKeywords != "" {
			b.WriteString(" Negative prompt: " + req.NegativeKeywords + ".")
		}
		if req.ImageVariants > 1 {
			fmt.Fprintf(&b, " Generate %d distinct visual variations.", clampVariants(req.ImageVariants))
		}
	}

	if req.HasAttachments {
		b.WriteString(" Analyse attentivement les fichiers joints ci-dessous et base ta réponse sur leur contenu. Extrais les informations clés de chaque document/image fourni.")
	}

	tips := make([]string, len(tpl.tips))
	copy(tips, tpl.tips)

	return Result{
		Prompt:     b.String(),
		Tips:       tips,
		Variations: tpl.variations(req.Keywords),
	}
}
