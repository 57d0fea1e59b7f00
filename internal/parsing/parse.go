// Package parsing extracts JSON payloads from generative responses that may
// be wrapped in markdown fences, truncated mid-object, or otherwise
// malformed.
package parsing

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// StripFences removes markdown code-fence wrappers from a response. LLMs
// often wrap JSON in ```json ... ``` blocks even when instructed not to.
func StripFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier on the first line, if any.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

// DecodeObject strips fences and decodes the response into dst. It returns a
// *ParseError carrying the raw text when decoding fails.
func DecodeObject(raw string, dst any) error {
	cleaned := StripFences(raw)
	if err := json.Unmarshal([]byte(cleaned), dst); err != nil {
		return &ParseError{
			Message: "failed to decode JSON response",
			Raw:     raw,
			Cause:   err,
		}
	}
	return nil
}

// QuickRecovery is the minimal object reconstructed from a truncated
// quick-analysis response.
type QuickRecovery struct {
	Score   int    `json:"score"`
	Fit     string `json:"fit"`
	Summary string `json:"resumo"`
}

var (
	scoreRe   = regexp.MustCompile(`"score"\s*:\s*(\d+)`)
	fitRe     = regexp.MustCompile(`"fit"\s*:\s*"([^"]+)"`)
	summaryRe = regexp.MustCompile(`"resumo"\s*:\s*"([^"]*)`)
)

// RecoverQuickAnalysis attempts to reconstruct a quick-analysis object from a
// response the token limit cut mid-string. It only applies when a summary key
// is present and the object is visibly unterminated; unextractable fields get
// defaults. The second return value reports whether recovery applied.
//
// This path is deliberately bounded to quick analysis, where a degraded
// result beats total failure.
func RecoverQuickAnalysis(raw string) (*QuickRecovery, bool) {
	cleaned := StripFences(raw)
	if !strings.Contains(cleaned, `"resumo":`) && !strings.Contains(cleaned, `"resumo" :`) {
		return nil, false
	}
	if strings.HasSuffix(strings.TrimSpace(cleaned), "}") {
		return nil, false
	}

	recovered := &QuickRecovery{
		Score:   50,
		Fit:     "Médio",
		Summary: "Análise parcial - resposta truncada",
	}
	if m := scoreRe.FindStringSubmatch(cleaned); m != nil {
		if score, err := strconv.Atoi(m[1]); err == nil {
			recovered.Score = score
		}
	}
	if m := fitRe.FindStringSubmatch(cleaned); m != nil {
		recovered.Fit = m[1]
	}
	if m := summaryRe.FindStringSubmatch(cleaned); m != nil {
		recovered.Summary = m[1] + "..."
	}
	return recovered, true
}
