package rewriting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortExperiencesCurrentFirst(t *testing.T) {
	experiences := []RewrittenExperience{
		{Company: "Antiga", Period: "01/2018 - 06/2020"},
		{Company: "Atual", Period: "03/2021 - Atual"},
		{Company: "Recente", Period: "07/2020 - 02/2021"},
	}

	sortExperiences(experiences)

	assert.Equal(t, "Atual", experiences[0].Company)
	assert.Equal(t, "Recente", experiences[1].Company)
	assert.Equal(t, "Antiga", experiences[2].Company)
}

func TestSortExperiencesCurrentBeatsLaterStart(t *testing.T) {
	// An ongoing role started before a finished one still leads.
	experiences := []RewrittenExperience{
		{Company: "Encerrada", Period: "01/2023 - 12/2023"},
		{Company: "EmCurso", Period: "06/2019 - Atual"},
	}

	sortExperiences(experiences)
	assert.Equal(t, "EmCurso", experiences[0].Company)
}

func TestSortExperiencesTieBrokenByStart(t *testing.T) {
	experiences := []RewrittenExperience{
		{Company: "MaisAntiga", Period: "01/2019 - 12/2021"},
		{Company: "MaisNova", Period: "06/2020 - 12/2021"},
	}

	sortExperiences(experiences)
	assert.Equal(t, "MaisNova", experiences[0].Company)
}

func TestSortExperiencesLocalizedMarkers(t *testing.T) {
	experiences := []RewrittenExperience{
		{Company: "Fechada", Period: "01/2020 - 12/2024"},
		{Company: "Presente", Period: "01/2022 - Present"},
	}

	sortExperiences(experiences)
	assert.Equal(t, "Presente", experiences[0].Company)
}

func TestPeriodBounds(t *testing.T) {
	start, end := periodBounds("03/2022 - Atual")
	assert.Equal(t, 202203, start)
	assert.Greater(t, end, 999999)

	start, end = periodBounds("2019 - 2021")
	assert.Equal(t, 201900, start)
	assert.Equal(t, 202100, end)

	start, end = periodBounds("01/2020")
	assert.Equal(t, 202001, start)
	assert.Equal(t, start, end)
}

func TestDateKeyUnparseable(t *testing.T) {
	require.Equal(t, 0, dateKey("desconhecido"))
}
