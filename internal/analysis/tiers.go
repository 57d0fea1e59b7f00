package analysis

// TierForScore maps a 0-100 score to the compatibility tier reported in a
// full analysis. Boundaries are inclusive.
func TierForScore(score int) string {
	switch {
	case score >= 85:
		return "Excelente"
	case score >= 70:
		return "Alto"
	case score >= 55:
		return "Médio"
	case score >= 40:
		return "Baixo"
	default:
		return "Não recomendado"
	}
}

// BadgeForScore maps a score to the coarse three-level badge shown by
// clients next to history entries.
func BadgeForScore(score int) string {
	switch {
	case score >= 80:
		return "alto"
	case score >= 60:
		return "medio"
	default:
		return "baixo"
	}
}

// ClampScore forces a model-produced score into the 0-100 range.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
