package analysis

// Strength is a candidate strength the evaluator wants emphasized.
type Strength struct {
	Point     string `json:"ponto"`
	Relevance string `json:"relevancia"` // Alta | Média
}

// Gap is a technical or behavioral gap against the posting.
type Gap struct {
	Description     string `json:"gap"`
	Criticality     string `json:"criticidade"` // Crítico | Importante | Menor
	SuggestedAction string `json:"sugestao_acao"`
}

// KeywordMatch splits posting keywords into those present in the résumé and
// those missing from it.
type KeywordMatch struct {
	Present []string `json:"presentes"`
	Absent  []string `json:"ausentes"`
}

// Result is the full job-fit analysis. Immutable once returned.
type Result struct {
	Score                  int          `json:"score"`
	CompatibilityTier      string       `json:"nivel_compatibilidade"`
	ExecutiveSummary       string       `json:"resumo_executivo"`
	Strengths              []Strength   `json:"pontos_fortes"`
	Gaps                   []Gap        `json:"gaps_identificados"`
	Keywords               KeywordMatch `json:"keywords_match"`
	AdaptationTips         []string     `json:"recomendacoes_adaptacao"`
	ExperiencesToHighlight []string     `json:"experiencias_destacar"`
	InterviewProbability   string       `json:"probabilidade_entrevista"`
}

// QuickResult is the reduced result of the fast analysis path.
type QuickResult struct {
	Score   int    `json:"score"`
	Fit     string `json:"fit"`
	Summary string `json:"resumo"`
}

// CandidateInfo is extracted from an uploaded external résumé.
type CandidateInfo struct {
	Name            string `json:"nome"`
	CurrentTitle    string `json:"cargo_atual"`
	ExperienceYears string `json:"experiencia_anos"`
}

// ExternalResult is the analysis of an uploaded résumé file.
type ExternalResult struct {
	Score                int           `json:"score"`
	CompatibilityTier    string        `json:"nivel_compatibilidade"`
	ExecutiveSummary     string        `json:"resumo_executivo"`
	Candidate            CandidateInfo `json:"candidato_identificado"`
	Strengths            []Strength    `json:"pontos_fortes"`
	Gaps                 []Gap         `json:"gaps_identificados"`
	Keywords             KeywordMatch  `json:"keywords_match"`
	AdaptationTips       []string      `json:"recomendacoes_adaptacao"`
	InterviewProbability string        `json:"probabilidade_entrevista"`
}
