package evidence

import (
	"testing"

	"github.com/jonathan/ats-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cvDoc(sections ...types.Section) *types.Document {
	return &types.Document{Sections: sections}
}

func recordFor(t *testing.T, analysis *types.EvidenceAnalysis, skill string) types.EvidenceRecord {
	t.Helper()
	for _, r := range analysis.Records {
		if r.Skill == skill {
			return r
		}
	}
	t.Fatalf("no evidence record for %q", skill)
	return types.EvidenceRecord{}
}

func TestAnalyze_StrongNeedsMetricAndOwnership(t *testing.T) {
	cv := cvDoc(types.Section{
		Label: types.SectionExperience,
		Raw:   "Led migration to Kubernetes, reducing deploy time by 40%.",
	})
	got := Analyze(cv, []string{"kubernetes"})

	rec := recordFor(t, got, "kubernetes")
	assert.Equal(t, types.EvidenceStrong, rec.Strength)
	assert.Contains(t, rec.SupportingContext, "Kubernetes")
	assert.Equal(t, 1, got.StrongCount)
	assert.InDelta(t, 1.0, got.AverageStrength, 1e-9)
}

func TestAnalyze_SingleSignalIsModerate(t *testing.T) {
	cv := cvDoc(types.Section{
		Label: types.SectionExperience,
		Raw:   "Built services in Python for the data team.",
	})
	got := Analyze(cv, []string{"python"})

	rec := recordFor(t, got, "python")
	assert.Equal(t, types.EvidenceModerate, rec.Strength)
	assert.Equal(t, 1, got.ModerateCount)
	assert.InDelta(t, 0.5, got.AverageStrength, 1e-9)
}

func TestAnalyze_SkillsListOnlyIsWeak(t *testing.T) {
	cv := cvDoc(
		types.Section{Label: types.SectionSkills, Raw: "Python, Docker, Kubernetes"},
		types.Section{Label: types.SectionExperience, Raw: "Maintained internal tooling"},
	)
	got := Analyze(cv, []string{"docker"})

	rec := recordFor(t, got, "docker")
	assert.Equal(t, types.EvidenceWeak, rec.Strength)
	assert.Empty(t, rec.SupportingContext)
	assert.Equal(t, 1, got.WeakCount)
	assert.Zero(t, got.AverageStrength)
}

func TestAnalyze_BestSentenceWins(t *testing.T) {
	cv := cvDoc(types.Section{
		Label: types.SectionExperience,
		Raw: "Worked with Python on various things. " +
			"Delivered a Python pipeline cutting costs by 30%.",
	})
	got := Analyze(cv, []string{"python"})

	rec := recordFor(t, got, "python")
	assert.Equal(t, types.EvidenceStrong, rec.Strength)
	assert.Contains(t, rec.SupportingContext, "30")
}

func TestAnalyze_AcronymFormCountsAsEvidence(t *testing.T) {
	cv := cvDoc(types.Section{
		Label: types.SectionExperience,
		Raw:   "Owned the ML pipeline serving 2 million predictions daily.",
	})
	got := Analyze(cv, []string{"machine learning"})

	rec := recordFor(t, got, "machine learning")
	assert.Equal(t, types.EvidenceStrong, rec.Strength)
}

func TestAnalyze_AverageOverMixedStrengths(t *testing.T) {
	cv := cvDoc(
		types.Section{Label: types.SectionSkills, Raw: "Python, Docker, Terraform"},
		types.Section{
			Label: types.SectionExperience,
			Raw: "Led Terraform rollout across 3 teams. " +
				"Wrote Python utilities handling 200 reports a day.",
		},
	)
	got := Analyze(cv, []string{"terraform", "python", "docker"})

	require.Len(t, got.Records, 3)
	// terraform strong (1.0), python moderate (0.5), docker weak (0).
	assert.InDelta(t, 0.5, got.AverageStrength, 1e-9)
	assert.Equal(t, 1, got.StrongCount)
	assert.Equal(t, 1, got.ModerateCount)
	assert.Equal(t, 1, got.WeakCount)
}

func TestAnalyze_NoSkills(t *testing.T) {
	got := Analyze(cvDoc(), nil)
	assert.Empty(t, got.Records)
	assert.Zero(t, got.AverageStrength)
}

func TestAnalyze_RecordsSortedBySkill(t *testing.T) {
	cv := cvDoc(types.Section{Label: types.SectionSkills, Raw: "Python, Docker"})
	got := Analyze(cv, []string{"python", "docker", "python"})

	require.Len(t, got.Records, 2)
	assert.Equal(t, "docker", got.Records[0].Skill)
	assert.Equal(t, "python", got.Records[1].Skill)
}
