package rewriting

// RewrittenExperience is one experience entry as rewritten for the target
// posting. Period carries the display range; ordering is enforced after
// decoding, not trusted from the model.
type RewrittenExperience struct {
	Company string   `json:"empresa"`
	Title   string   `json:"cargo"`
	Period  string   `json:"periodo"`
	Bullets []string `json:"bullets"`
}

// RewrittenEducation is one education entry in the target language.
type RewrittenEducation struct {
	Institution string `json:"instituicao"`
	Title       string `json:"titulo"`
	Status      string `json:"status"`
}

// RewrittenCourse is one course or certification entry.
type RewrittenCourse struct {
	Title  string `json:"titulo"`
	Issuer string `json:"emissor"`
}

// RewrittenLanguage is one spoken-language entry.
type RewrittenLanguage struct {
	Language string `json:"idioma"`
	Level    string `json:"nivel"`
}

// RewrittenProject is one personal-project entry.
type RewrittenProject struct {
	Name        string `json:"nome"`
	Description string `json:"descricao"`
}

// TechnicalSkills splits technologies by relevance to the posting.
type TechnicalSkills struct {
	Primary   []string `json:"principais"`
	Secondary []string `json:"secundarias"`
}

// RewrittenResume is the full posting-tailored résumé produced by the
// rewriter. Portuguese field names are the wire contract shared with the
// browser clients.
type RewrittenResume struct {
	ProfessionalTitle   string                `json:"cargo_profissional"`
	ProfessionalSummary string                `json:"resumo_profissional"`
	Experiences         []RewrittenExperience `json:"experiencias"`
	Education           []RewrittenEducation  `json:"formacao"`
	Courses             []RewrittenCourse     `json:"cursos_certificacoes"`
	Languages           []RewrittenLanguage   `json:"idiomas"`
	Projects            []RewrittenProject    `json:"projetos"`
	Skills              TechnicalSkills       `json:"habilidades_tecnicas"`
	Differentiators     []string              `json:"diferenciais"`
	OptimizedKeywords   []string              `json:"keywords_otimizadas"`
}
