package resume

// Issue is a single completeness problem found while validating the résumé.
type Issue struct {
	Field       string `json:"campo"`
	Message     string `json:"mensagem"`
	Criticality string `json:"criticidade"` // alta | media | baixa
}

// Validation is the result of a résumé completeness check.
type Validation struct {
	Valid        bool    `json:"valido"`
	Complete     bool    `json:"completo"`
	Issues       []Issue `json:"issues"`
	Completeness int     `json:"completude"` // 0-100
}

// Validate checks the résumé for missing data and scores its completeness.
// A résumé is valid when no high-criticality issue remains; complete when no
// issue remains at all.
func Validate(full *FullResume) *Validation {
	issues := make([]Issue, 0)

	if full.Profile == nil {
		issues = append(issues, Issue{Field: "Perfil", Message: "Perfil não cadastrado", Criticality: "alta"})
	} else {
		if full.Profile.FullName == "" {
			issues = append(issues, Issue{Field: "Nome", Message: "Nome não informado", Criticality: "alta"})
		}
		if full.Profile.Email == "" {
			issues = append(issues, Issue{Field: "Email", Message: "Email não informado", Criticality: "alta"})
		}
		if full.Profile.BaseSummary == "" {
			issues = append(issues, Issue{Field: "Resumo", Message: "Resumo profissional não informado", Criticality: "media"})
		}
	}
	if len(full.Experiences) == 0 {
		issues = append(issues, Issue{Field: "Experiências", Message: "Nenhuma experiência cadastrada", Criticality: "media"})
	}
	if len(full.Education) == 0 {
		issues = append(issues, Issue{Field: "Formação", Message: "Nenhuma formação cadastrada", Criticality: "baixa"})
	}

	high := 0
	for _, issue := range issues {
		if issue.Criticality == "alta" {
			high++
		}
	}

	return &Validation{
		Valid:        high == 0,
		Complete:     len(issues) == 0,
		Issues:       issues,
		Completeness: completeness(full),
	}
}

// completeness scores how filled-in the résumé is. Section weights:
// profile 30, experiences 35, education 15, courses 10, languages 10.
func completeness(full *FullResume) int {
	filled := 0

	if full.Profile != nil {
		p := full.Profile
		if p.FullName != "" {
			filled += 5
		}
		if p.Email != "" {
			filled += 5
		}
		if p.Phone != "" {
			filled += 3
		}
		if p.Location != "" {
			filled += 2
		}
		if p.LinkedIn != "" {
			filled += 3
		}
		if p.GitHub != "" {
			filled += 2
		}
		if p.BaseSummary != "" {
			filled += 10
		}
	}
	filled += capAt(len(full.Experiences)*15, 35)
	filled += capAt(len(full.Education)*7, 15)
	filled += capAt(len(full.Courses)*3, 10)
	filled += capAt(len(full.Languages)*5, 10)

	return filled
}

func capAt(value, limit int) int {
	if value > limit {
		return limit
	}
	return value
}
