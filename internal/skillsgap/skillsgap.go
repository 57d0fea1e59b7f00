// Package skillsgap builds a career-development roadmap comparing the
// candidate's current skills with a target role.
package skillsgap

import (
	"context"
	"fmt"
	"strings"

	"github.com/AndradeTK/BryanAI/internal/llm"
	"github.com/AndradeTK/BryanAI/internal/parsing"
	"github.com/AndradeTK/BryanAI/internal/prompts"
	"github.com/AndradeTK/BryanAI/internal/resume"
)

const promptFile = "skillsgap.json"

// GenerationError wraps failures when producing a skills-gap roadmap.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("skillsgap: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("skillsgap: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Overview summarizes the candidate's distance from the target role.
type Overview struct {
	CompatibilityScore int    `json:"score_compatibilidade"`
	CurrentLevel       string `json:"nivel_atual"`
	TargetLevel        string `json:"nivel_alvo"`
	TransitionEstimate string `json:"tempo_estimado_transicao"`
	Summary            string `json:"resumo"`
}

// CurrentSkills groups what the candidate already has.
type CurrentSkills struct {
	Technical  []string `json:"tecnicas"`
	SoftSkills []string `json:"soft_skills"`
}

// Gap is one missing or underdeveloped skill.
type Gap struct {
	Category    string `json:"categoria"`
	Skill       string `json:"habilidade"`
	Importance  string `json:"importancia"`
	Description string `json:"descricao"`
	TimeToLearn string `json:"tempo_para_desenvolver"`
}

// Resource is a concrete learning resource inside a roadmap phase.
type Resource struct {
	Kind string `json:"tipo"`
	Name string `json:"nome"`
	Link string `json:"link,omitempty"`
	Time string `json:"tempo"`
}

// Phase is one stage of the development roadmap.
type Phase struct {
	Title      string     `json:"titulo"`
	Duration   string     `json:"duracao"`
	Objectives []string   `json:"objetivos"`
	Resources  []Resource `json:"recursos"`
}

// Certification is a recommended certification.
type Certification struct {
	Name     string `json:"nome"`
	Issuer   string `json:"emissor"`
	Priority string `json:"prioridade"`
}

// Project is a suggested practice project.
type Project struct {
	Kind            string   `json:"tipo"`
	Description     string   `json:"descricao"`
	SkillsDeveloped []string `json:"habilidades_desenvolvidas"`
}

// NextStep is a short-horizon concrete action.
type NextStep struct {
	Deadline string `json:"prazo"`
	Action   string `json:"acao"`
}

// Roadmap is the full skills-gap analysis result.
type Roadmap struct {
	Overview                  Overview        `json:"analise_geral"`
	CurrentSkills             CurrentSkills   `json:"habilidades_atuais"`
	Gaps                      []Gap           `json:"gaps_identificados"`
	Phases                    []Phase         `json:"roadmap"`
	RecommendedCertifications []Certification `json:"certificacoes_recomendadas"`
	SuggestedProjects         []Project       `json:"projetos_sugeridos"`
	NextSteps                 []NextStep      `json:"proximos_passos"`
}

// Analyzer produces skills-gap roadmaps through the generative backend.
type Analyzer struct {
	client llm.Client
}

// NewAnalyzer creates an Analyzer backed by the given client.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze compares the candidate with the target role and returns the
// development roadmap. There is no recovery path: a malformed response is
// an error.
func (a *Analyzer) Analyze(ctx context.Context, full *resume.FullResume, targetTitle, targetDescription string) (*Roadmap, error) {
	if strings.TrimSpace(targetTitle) == "" {
		return nil, &GenerationError{Message: "target title is required"}
	}

	name := ""
	if full.Profile != nil {
		name = full.Profile.FullName
	}
	if targetDescription != "" {
		targetDescription = "Descrição:\n" + targetDescription
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "analyze"), map[string]string{
		"Name":              name,
		"Experiences":       formatExperiences(full.Experiences),
		"Education":         formatEducation(full.Education),
		"Courses":           formatCourses(full.Courses),
		"Languages":         formatLanguages(full.Languages),
		"TargetTitle":       targetTitle,
		"TargetDescription": targetDescription,
	})

	raw, err := a.client.GenerateContent(ctx, prompt, llm.OpSkillsGap)
	if err != nil {
		return nil, &GenerationError{Message: "skills gap generation failed", Cause: err}
	}

	var roadmap Roadmap
	if err := parsing.DecodeObject(raw, &roadmap); err != nil {
		return nil, &GenerationError{Message: "failed to parse skills gap response", Cause: err}
	}
	return &roadmap, nil
}

func formatExperiences(experiences []resume.FormattedExperience) string {
	var b strings.Builder
	for _, exp := range experiences {
		fmt.Fprintf(&b, "- %s em %s (%s a %s)\n", exp.Title, exp.Company, exp.StartDate, exp.EndDate)
		if exp.Tags != "" {
			fmt.Fprintf(&b, "  Tecnologias: %s\n", exp.Tags)
		}
	}
	return b.String()
}

func formatEducation(entries []resume.EducationProject) string {
	var b strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&b, "- %s: %s (%s)\n", entry.Institution, entry.CourseTitle, entry.Status)
	}
	return b.String()
}

func formatCourses(courses []resume.Course) string {
	var b strings.Builder
	for _, course := range courses {
		fmt.Fprintf(&b, "- %s (%s)\n", course.Title, course.Issuer)
	}
	return b.String()
}

func formatLanguages(languages []resume.LanguageSkill) string {
	var b strings.Builder
	for _, lang := range languages {
		fmt.Fprintf(&b, "- %s: %s\n", lang.Language, lang.CEFRLevel)
	}
	return b.String()
}
