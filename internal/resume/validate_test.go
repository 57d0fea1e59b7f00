package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullProfile() *Profile {
	return &Profile{
		FullName:    "Bryan Andrade",
		Email:       "bryan@example.com",
		Phone:       "+55 31 99999-0000",
		Location:    "Belo Horizonte",
		LinkedIn:    "linkedin.com/in/bryan",
		GitHub:      "github.com/bryan",
		BaseSummary: "Desenvolvedor backend.",
	}
}

func TestValidateMissingProfile(t *testing.T) {
	v := Validate(&FullResume{})

	assert.False(t, v.Valid)
	assert.False(t, v.Complete)
	require.NotEmpty(t, v.Issues)
	assert.Equal(t, "alta", v.Issues[0].Criticality)
	assert.Equal(t, 0, v.Completeness)
}

func TestValidateCompleteResume(t *testing.T) {
	full := &FullResume{
		Profile: fullProfile(),
		Experiences: []FormattedExperience{
			Experience{Company: "A", Title: "Dev"}.Format(),
			Experience{Company: "B", Title: "Dev"}.Format(),
			Experience{Company: "C", Title: "Dev"}.Format(),
		},
		Education: []EducationProject{
			{Kind: KindEducation, Institution: "UFMG"},
			{Kind: KindEducation, Institution: "PUC"},
			{Kind: KindEducation, Institution: "USP"},
		},
		Courses:   []Course{{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"}},
		Languages: []LanguageSkill{{Language: "Inglês"}, {Language: "Francês"}},
	}

	v := Validate(full)
	assert.True(t, v.Valid)
	assert.True(t, v.Complete)
	assert.Empty(t, v.Issues)
	assert.Equal(t, 100, v.Completeness)
}

func TestCompletenessSectionCaps(t *testing.T) {
	// Ten experiences still only count for the 35-point section.
	full := &FullResume{Profile: fullProfile()}
	for i := 0; i < 10; i++ {
		full.Experiences = append(full.Experiences, Experience{Company: "X", Title: "Dev"}.Format())
	}

	v := Validate(full)
	assert.Equal(t, 30+35, v.Completeness)
}

func TestValidateMediumIssuesKeepValid(t *testing.T) {
	// Missing summary and experiences are not blocking, only incomplete.
	profile := fullProfile()
	profile.BaseSummary = ""
	v := Validate(&FullResume{Profile: profile})

	assert.True(t, v.Valid)
	assert.False(t, v.Complete)
}
