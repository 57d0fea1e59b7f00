package rewriting

import "strings"

// Language is a target output language for a rewritten résumé.
type Language string

const (
	LangPortuguese Language = "pt-BR"
	LangEnglish    Language = "en"
	LangFrench     Language = "fr"
)

// ParseLanguage normalizes a client-supplied language code. Unknown or empty
// values fall back to Portuguese without error, so stale clients keep
// working.
func ParseLanguage(code string) Language {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "en", "en-us", "english":
		return LangEnglish
	case "fr", "fr-fr", "français", "frances":
		return LangFrench
	case "pt", "pt-br", "português", "portugues":
		return LangPortuguese
	default:
		return LangPortuguese
	}
}

// Instruction returns the mandatory language directive embedded in the
// rewrite prompt.
func (l Language) Instruction() string {
	switch l {
	case LangEnglish:
		return "Escreva TODO o conteúdo em INGLÊS (US English). Traduza cada campo legível: cargos, bullets, resumo, status de formação, certificações, níveis de idioma e descrições de projetos."
	case LangFrench:
		return "Escreva TODO o conteúdo em FRANCÊS. Traduza cada campo legível: cargos, bullets, resumo, status de formação, certificações, níveis de idioma e descrições de projetos."
	default:
		return "Escreva TODO o conteúdo em PORTUGUÊS DO BRASIL."
	}
}

// VerbInstruction returns the per-language action-verb guidance. Portuguese
// needs none because the base persona already carries Portuguese verbs.
func (l Language) VerbInstruction() string {
	switch l {
	case LangEnglish:
		return "VERBOS DE AÇÃO EM INGLÊS (use variados): Architected, Developed, Implemented, Designed, Built, Optimized, Led, Coordinated, Managed, Delivered, Achieved, Reduced, Increased, Automated, Scaled."
	case LangFrench:
		return "VERBES D'ACTION EN FRANÇAIS (variez-les): Conçu, Développé, Implémenté, Construit, Optimisé, Dirigé, Coordonné, Géré, Livré, Réduit, Augmenté, Automatisé."
	default:
		return ""
	}
}

// CurrentMarker returns the localized end-date marker for an ongoing role.
func (l Language) CurrentMarker() string {
	switch l {
	case LangEnglish:
		return "Present"
	case LangFrench:
		return "Présent"
	default:
		return "Atual"
	}
}
