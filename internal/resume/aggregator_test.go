package resume

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	profile     *Profile
	experiences []Experience
	education   []EducationProject
	courses     []Course
	languages   []LanguageSkill
	err         error
}

func (f *fakeStore) GetProfile(context.Context) (*Profile, error) {
	return f.profile, f.err
}

func (f *fakeStore) ListExperiences(context.Context) ([]Experience, error) {
	return f.experiences, f.err
}

func (f *fakeStore) ListEducationProjects(context.Context) ([]EducationProject, error) {
	return f.education, f.err
}

func (f *fakeStore) ListCourses(context.Context) ([]Course, error) {
	return f.courses, f.err
}

func (f *fakeStore) ListLanguages(context.Context) ([]LanguageSkill, error) {
	return f.languages, f.err
}

func TestFullResume(t *testing.T) {
	store := &fakeStore{
		profile: &Profile{FullName: "Bryan Andrade"},
		experiences: []Experience{
			{Company: "TechCorp", Title: "Dev", Activities: "APIs\nFilas", Achievements: "Reduzi custos"},
		},
		education: []EducationProject{
			{Kind: KindEducation, Institution: "UFMG", CourseTitle: "Computação"},
			{Kind: KindProject, Institution: "bryan-cli", CourseTitle: "Ferramenta CLI"},
		},
		courses:   []Course{{Title: "Go Avançado"}},
		languages: []LanguageSkill{{Language: "Inglês", CEFRLevel: "C1"}},
	}

	full, err := NewAggregator(store).FullResume(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bryan Andrade", full.Profile.FullName)
	require.Len(t, full.Experiences, 1)
	assert.Equal(t, []string{"APIs", "Filas"}, full.Experiences[0].ActivityLines)
	assert.Equal(t, []string{"Reduzi custos"}, full.Experiences[0].AchievementLines)

	// Education and projects come from one collection, split by kind.
	require.Len(t, full.Education, 1)
	require.Len(t, full.Projects, 1)
	assert.Equal(t, "UFMG", full.Education[0].Institution)
	assert.Equal(t, "bryan-cli", full.Projects[0].Institution)
}

func TestFullResumeStoreError(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}

	_, err := NewAggregator(store).FullResume(context.Background())
	require.Error(t, err)
}

func TestFullResumeEmptyStore(t *testing.T) {
	full, err := NewAggregator(&fakeStore{}).FullResume(context.Background())
	require.NoError(t, err)

	assert.Nil(t, full.Profile)
	assert.Empty(t, full.Experiences)
	assert.NotNil(t, full.Education)
	assert.NotNil(t, full.Projects)
}

func TestSummarizeDeduplicatesSkills(t *testing.T) {
	full := &FullResume{
		Profile: &Profile{FullName: "Bryan", BaseSummary: "Dev"},
		Experiences: []FormattedExperience{
			Experience{Company: "A", Title: "Dev", Tags: "Go, Docker"}.Format(),
			Experience{Company: "B", Title: "Dev", Tags: "Go, PostgreSQL"}.Format(),
		},
	}

	summary := Summarize(full)
	assert.Equal(t, []string{"Go", "Docker", "PostgreSQL"}, summary.Skills)
}

func TestExperienceCurrent(t *testing.T) {
	assert.True(t, Experience{EndDate: ""}.Current())
	assert.True(t, Experience{EndDate: "Atual"}.Current())
	assert.True(t, Experience{EndDate: "atual"}.Current())
	assert.True(t, Experience{EndDate: "Present"}.Current())
	assert.True(t, Experience{EndDate: "Présent"}.Current())
	assert.False(t, Experience{EndDate: "12/2023"}.Current())
}
