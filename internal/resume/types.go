// Package resume defines the candidate data model and the aggregator that
// assembles the full résumé view consumed by the AI pipeline.
package resume

import "strings"

// CurrentSentinel is the stored end-date value for an ongoing role.
const CurrentSentinel = "Atual"

// Profile is the singleton candidate profile.
type Profile struct {
	ID          int64  `json:"id"`
	FullName    string `json:"nome_completo"`
	Email       string `json:"email"`
	Phone       string `json:"telefone"`
	Location    string `json:"localizacao"`
	LinkedIn    string `json:"linkedin"`
	GitHub      string `json:"github"`
	BaseSummary string `json:"resumo_base"`
	BirthDate   string `json:"data_nascimento,omitempty"`
}

// Experience is a single professional experience entry.
type Experience struct {
	ID           int64  `json:"id"`
	Company      string `json:"empresa"`
	Title        string `json:"cargo"`
	StartDate    string `json:"data_inicio"`
	EndDate      string `json:"data_fim"` // empty or CurrentSentinel for an ongoing role
	Activities   string `json:"descricao_atividades"`
	Achievements string `json:"principais_conquistas"`
	Category     string `json:"categoria"`
	Tags         string `json:"tags_tecnicas"`
}

// Current reports whether the experience is an ongoing role.
func (e Experience) Current() bool {
	end := strings.TrimSpace(e.EndDate)
	return end == "" || strings.EqualFold(end, CurrentSentinel) || strings.EqualFold(end, "Present") || strings.EqualFold(end, "Présent")
}

// FormattedExperience is the derived view of an experience with its
// multi-line text fields split into display lines.
type FormattedExperience struct {
	Experience
	ActivityLines    []string `json:"atividades_lista"`
	AchievementLines []string `json:"conquistas_lista"`
}

// Format derives the formatted view of an experience.
func (e Experience) Format() FormattedExperience {
	return FormattedExperience{
		Experience:       e,
		ActivityLines:    splitLines(e.Activities),
		AchievementLines: splitLines(e.Achievements),
	}
}

// splitLines breaks a free-text block into trimmed, non-empty lines.
func splitLines(text string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// EducationProject kinds. The same physical record holds either an education
// entry or a personal project, discriminated by Kind.
const (
	KindEducation = "Educação"
	KindProject   = "Projeto"
)

// EducationProject is a tagged union of an education entry and a project.
type EducationProject struct {
	ID          int64  `json:"id"`
	Kind        string `json:"tipo"`
	Institution string `json:"instituicao_projeto"` // institution or project name
	CourseTitle string `json:"titulo_curso"`        // course or project title
	Status      string `json:"status"`
	Description string `json:"descricao_detalhada"`
}

// IsEducation reports whether the record is an education entry.
func (ep EducationProject) IsEducation() bool {
	return ep.Kind == KindEducation
}

// Course is a course or certification entry.
type Course struct {
	ID          int64  `json:"id"`
	Issuer      string `json:"emissor_instituicao"`
	Title       string `json:"titulo_do_curso"`
	Description string `json:"descricao"`
	Highlighted string `json:"destaque"` // "Sim" / "Não"
}

// LanguageSkill is a spoken-language proficiency entry.
type LanguageSkill struct {
	ID            int64  `json:"id"`
	Language      string `json:"idioma"`
	CEFRLevel     string `json:"nivel_cefr"`
	Certification string `json:"certificacao_exame,omitempty"`
	SchoolHistory string `json:"historico_de_escolas,omitempty"`
}

// FullResume is the normalized view assembled from all collections.
// It is a read-only snapshot: the AI pipeline never mutates it.
type FullResume struct {
	Profile     *Profile              `json:"perfil"`
	Experiences []FormattedExperience `json:"experiencias"`
	Education   []EducationProject    `json:"formacao"`
	Projects    []EducationProject    `json:"projetos"`
	Courses     []Course              `json:"cursos_certificacoes"`
	Languages   []LanguageSkill       `json:"idiomas"`
}

// JobPosting is the ephemeral per-request job description. It is never
// persisted on its own.
type JobPosting struct {
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
	Company     string `json:"empresa,omitempty"`
}
