package resume

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Store is the persistence surface the aggregator reads from.
type Store interface {
	GetProfile(ctx context.Context) (*Profile, error)
	ListExperiences(ctx context.Context) ([]Experience, error)
	ListEducationProjects(ctx context.Context) ([]EducationProject, error)
	ListCourses(ctx context.Context) ([]Course, error)
	ListLanguages(ctx context.Context) ([]LanguageSkill, error)
}

// Aggregator assembles the full résumé view from the independent collections.
type Aggregator struct {
	store Store
}

// NewAggregator creates an aggregator backed by the given store.
func NewAggregator(store Store) *Aggregator {
	return &Aggregator{store: store}
}

// FullResume loads every collection concurrently and assembles the normalized
// view. Education and projects come from the same physical collection, split
// by kind.
func (a *Aggregator) FullResume(ctx context.Context) (*FullResume, error) {
	var (
		profile     *Profile
		experiences []Experience
		edu         []EducationProject
		courses     []Course
		languages   []LanguageSkill
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = a.store.GetProfile(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		experiences, err = a.store.ListExperiences(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		edu, err = a.store.ListEducationProjects(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		courses, err = a.store.ListCourses(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		languages, err = a.store.ListLanguages(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to assemble resume: %w", err)
	}

	full := &FullResume{
		Profile:     profile,
		Experiences: make([]FormattedExperience, 0, len(experiences)),
		Education:   make([]EducationProject, 0),
		Projects:    make([]EducationProject, 0),
		Courses:     courses,
		Languages:   languages,
	}
	for _, exp := range experiences {
		full.Experiences = append(full.Experiences, exp.Format())
	}
	for _, ep := range edu {
		if ep.IsEducation() {
			full.Education = append(full.Education, ep)
		} else {
			full.Projects = append(full.Projects, ep)
		}
	}
	return full, nil
}

// Summary is the condensed view used for quick analysis and listings.
type Summary struct {
	Name           string   `json:"nome"`
	BaseSummary    string   `json:"resumo"`
	Experiences    []string `json:"experiencias"`
	Skills         []string `json:"skills"`
	Education      []string `json:"formacao"`
	Certifications []string `json:"certificacoes"`
	Languages      []string `json:"idiomas"`
}

// Summarize condenses a full résumé into one-line-per-entry summaries.
func Summarize(full *FullResume) *Summary {
	s := &Summary{}
	if full.Profile != nil {
		s.Name = full.Profile.FullName
		s.BaseSummary = full.Profile.BaseSummary
	}

	seen := make(map[string]bool)
	for _, exp := range full.Experiences {
		s.Experiences = append(s.Experiences,
			fmt.Sprintf("%s @ %s (%s - %s)", exp.Title, exp.Company, exp.StartDate, exp.EndDate))
		for _, tag := range strings.Split(exp.Tags, ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" && !seen[tag] {
				seen[tag] = true
				s.Skills = append(s.Skills, tag)
			}
		}
	}
	for _, ed := range full.Education {
		s.Education = append(s.Education, ed.CourseTitle)
	}
	for _, c := range full.Courses {
		s.Certifications = append(s.Certifications, c.Title)
	}
	for _, l := range full.Languages {
		s.Languages = append(s.Languages, fmt.Sprintf("%s (%s)", l.Language, l.CEFRLevel))
	}
	return s
}
