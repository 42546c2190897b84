package engine

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/lexical"
	"github.com/jonathan/ats-engine/internal/normalize"
	"github.com/jonathan/ats-engine/internal/schemas"
	"github.com/jonathan/ats-engine/internal/scoring"
	"github.com/jonathan/ats-engine/internal/semantic"
	"github.com/jonathan/ats-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hashProvider derives a deterministic vector from the text content, so
// repeated runs embed identically without a live backend.
type hashProvider struct{}

func (hashProvider) Embed(_ context.Context, text string) ([]float32, error) {
	sum := sha256.Sum256([]byte(text))
	vec := make([]float32, 8)
	for i := range vec {
		vec[i] = float32(sum[i]) / 255
	}
	return vec, nil
}

// constProvider embeds everything onto the same vector, pinning the
// semantic score so other signals can be tested in isolation.
type constProvider struct{}

func (constProvider) Embed(_ context.Context, _ string) ([]float32, error) {
	return []float32{1, 1, 1}, nil
}

type downProvider struct{}

func (downProvider) Embed(_ context.Context, _ string) ([]float32, error) {
	return nil, semantic.ErrProviderUnavailable
}

const acmeJD = "Must have Python and AWS. Nice to have Docker. 5+ years experience required. Company: Acme Corp."

const acmeCV = "Senior Engineer at Beta Inc, 2018-2024. Used Python to automate deployments on AWS, reducing cost by 20%."

func analyze(t *testing.T, provider semantic.Provider, req AnalyzeRequest) *types.ATSAnalysisResult {
	t.Helper()
	result, err := New(nil, provider).Analyze(context.Background(), req)
	require.NoError(t, err)
	return result
}

func TestAnalyze_ExampleScenario(t *testing.T) {
	result := analyze(t, constProvider{}, AnalyzeRequest{CVText: acmeCV, JDText: acmeJD})

	critical := result.ScoresByCategory[types.CategoryCriticalKeywords]
	assert.Contains(t, critical.ItemsMatched, "python")
	assert.Contains(t, critical.ItemsMatched, "amazon web services")
	assert.Empty(t, critical.ItemsMissing)

	preferred := result.ScoresByCategory[types.CategoryPreferred]
	assert.Contains(t, preferred.ItemsMissing, "docker")

	for _, kw := range append(result.MatchedKeywords, result.MissingKeywords...) {
		assert.NotContains(t, kw, "acme")
		assert.NotContains(t, kw, "corp")
	}

	assert.Equal(t, 6, result.GapAnalysis.ExperienceGaps.CVYears)
	assert.Equal(t, 5, result.GapAnalysis.ExperienceGaps.JDYears)
	assert.Zero(t, result.GapAnalysis.ExperienceGaps.Gap)

	// Docker is preferred, not critical, so eligibility is not capped.
	assert.NotEqual(t, types.NotEligible, result.Eligibility)
	assert.Empty(t, result.GapAnalysis.CriticalGaps)
	assert.Equal(t, types.Eligible, result.Eligibility)
}

func TestAnalyze_ScoreRangeAndCategoryInvariant(t *testing.T) {
	result := analyze(t, hashProvider{}, AnalyzeRequest{CVText: acmeCV, JDText: acmeJD})

	assert.GreaterOrEqual(t, result.Score, 0.0)
	assert.LessOrEqual(t, result.Score, 100.0)
	for cat, score := range result.ScoresByCategory {
		assert.Equal(t, score.Matched, len(score.ItemsMatched), "category %s", cat)
		assert.Equal(t, score.Missing, len(score.ItemsMissing), "category %s", cat)
	}
	assert.Equal(t, result.Matched+len(result.MissingKeywords), result.Total)
}

func TestAnalyze_Idempotence(t *testing.T) {
	eng := New(nil, hashProvider{})
	req := AnalyzeRequest{CVText: acmeCV, JDText: acmeJD}

	first, err := eng.Analyze(context.Background(), req)
	require.NoError(t, err)
	second, err := eng.Analyze(context.Background(), req)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestAnalyze_Monotonicity(t *testing.T) {
	jd := "Must have Python and Docker."
	before := "SKILLS\nPython\n\nEXPERIENCE\nBuilt services in Python serving 1 million users.\n"
	after := before + "Led Docker rollout, reducing deploy time by 30%.\n"

	eng := New(nil, constProvider{})
	resultBefore, err := eng.Analyze(context.Background(), AnalyzeRequest{CVText: before, JDText: jd})
	require.NoError(t, err)
	resultAfter, err := eng.Analyze(context.Background(), AnalyzeRequest{CVText: after, JDText: jd})
	require.NoError(t, err)

	critBefore := resultBefore.ScoresByCategory[types.CategoryCriticalKeywords]
	critAfter := resultAfter.ScoresByCategory[types.CategoryCriticalKeywords]
	assert.Contains(t, critBefore.ItemsMissing, "docker")
	assert.Contains(t, critAfter.ItemsMatched, "docker")
	assert.NotContains(t, critAfter.ItemsMissing, "docker")
	assert.GreaterOrEqual(t, resultAfter.Score, resultBefore.Score)
}

func TestAnalyze_CompanyNameNeverInKeywords(t *testing.T) {
	jd := "Join Citi as a Software Engineer. Must have Python. Citi offers great benefits."
	cv := "Worked at Citi for years. Skilled in Python."

	result := analyze(t, constProvider{}, AnalyzeRequest{
		CVText:      cv,
		JDText:      jd,
		CompanyName: "Citi",
	})

	assert.NotContains(t, result.MatchedKeywords, "citi")
	assert.NotContains(t, result.MissingKeywords, "citi")
}

func TestAnalyze_AcronymEquivalence(t *testing.T) {
	result := analyze(t, constProvider{}, AnalyzeRequest{
		CVText: "SKILLS\nMachine Learning, statistics\n",
		JDText: "Must have ML experience.",
	})
	hard := result.ScoresByCategory[types.CategoryHardSkills]
	assert.Contains(t, hard.ItemsMatched, "machine learning")

	reverse := analyze(t, constProvider{}, AnalyzeRequest{
		CVText: "SKILLS\nML, statistics\n",
		JDText: "Must have Machine Learning experience.",
	})
	hard = reverse.ScoresByCategory[types.CategoryHardSkills]
	assert.Contains(t, hard.ItemsMatched, "machine learning")
}

func TestAnalyze_DegradationOnProviderFailure(t *testing.T) {
	result := analyze(t, downProvider{}, AnalyzeRequest{CVText: acmeCV, JDText: acmeJD})

	assert.False(t, result.SemanticAnalysis.Available)
	assert.Zero(t, result.HybridScoring.SemanticContribution)
	assert.Zero(t, result.HybridScoring.SemanticWeight)
	assert.InDelta(t, 1.0, result.HybridScoring.LexicalWeight+result.HybridScoring.EvidenceWeight, 1e-9)
	assert.NotEmpty(t, result.Warnings)
}

func TestAnalyze_NilProviderDegrades(t *testing.T) {
	result := analyze(t, nil, AnalyzeRequest{CVText: acmeCV, JDText: acmeJD})
	assert.False(t, result.SemanticAnalysis.Available)
	assert.InDelta(t, 1.0, result.HybridScoring.LexicalWeight+result.HybridScoring.EvidenceWeight, 1e-9)
}

func TestAnalyze_EmptyInputsNeverError(t *testing.T) {
	result := analyze(t, nil, AnalyzeRequest{CVText: "", JDText: ""})
	assert.GreaterOrEqual(t, result.Score, 0.0)
	assert.Zero(t, result.Total)
}

func TestAnalyze_InputTooLarge(t *testing.T) {
	huge := strings.Repeat("a", normalize.MaxDocumentBytes+1)
	_, err := New(nil, nil).Analyze(context.Background(), AnalyzeRequest{CVText: huge, JDText: "x"})

	var tooLarge *normalize.InputTooLargeError
	require.ErrorAs(t, err, &tooLarge)
}

func TestAnalyze_UnknownPresetErrors(t *testing.T) {
	_, err := New(nil, nil).Analyze(context.Background(), AnalyzeRequest{
		CVText: "x", JDText: "y", Preset: "wizard",
	})
	assert.Error(t, err)
}

func TestAnalyze_ExplicitWeightsNormalizedWithWarning(t *testing.T) {
	weights := lexical.PresetTechnical
	weights.HardSkills *= 4

	result := analyze(t, nil, AnalyzeRequest{
		CVText:  acmeCV,
		JDText:  acmeJD,
		Weights: &weights,
	})

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "normalized") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAnalyze_HybridWeightsNormalizedWithWarning(t *testing.T) {
	cfg := config.Default()
	cfg.HybridWeights = &scoring.HybridWeights{Lexical: 1, Semantic: 1, Evidence: 1}

	result, err := New(cfg, constProvider{}).Analyze(context.Background(), AnalyzeRequest{
		CVText: acmeCV,
		JDText: acmeJD,
	})
	require.NoError(t, err)

	assert.LessOrEqual(t, result.Score, 100.0)
	hs := result.HybridScoring
	assert.InDelta(t, 1.0, hs.LexicalWeight+hs.SemanticWeight+hs.EvidenceWeight, 1e-9)

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "hybrid weights summed to 3.000") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAnalyze_ConfigPresetApplies(t *testing.T) {
	cfg := config.Default()
	cfg.Preset = "junior"
	_, err := New(cfg, nil).Analyze(context.Background(), AnalyzeRequest{CVText: acmeCV, JDText: acmeJD})
	assert.NoError(t, err)
}

func TestAnalyze_ResultMatchesContractSchema(t *testing.T) {
	result := analyze(t, hashProvider{}, AnalyzeRequest{CVText: acmeCV, JDText: acmeJD})
	assert.NoError(t, schemas.ValidateAnalysisResult(result))

	degraded := analyze(t, downProvider{}, AnalyzeRequest{CVText: acmeCV, JDText: acmeJD})
	assert.NoError(t, schemas.ValidateAnalysisResult(degraded))
}
