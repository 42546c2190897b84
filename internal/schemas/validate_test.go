package schemas

import (
	"errors"
	"testing"

	"github.com/jonathan/ats-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalResult() *types.ATSAnalysisResult {
	return &types.ATSAnalysisResult{
		Score:            72.5,
		Matched:          2,
		Total:            3,
		MatchedKeywords:  []string{"aws", "python"},
		MissingKeywords:  []string{"docker"},
		ScoresByCategory: map[types.Category]types.CategoryScore{},
		HybridScoring: types.HybridScoring{
			LexicalScore:      66.7,
			LexicalWeight:     0.55,
			SemanticScore:     80,
			SemanticWeight:    0.35,
			EvidenceScore:     100,
			EvidenceWeight:    0.10,
			FinalScore:        72.5,
			SemanticAvailable: true,
		},
		SemanticAnalysis: types.SemanticAnalysis{Available: true, Score: 80},
		Eligibility:      types.AtRisk,
	}
}

func TestResolveSchemaPath_FindsShippedSchema(t *testing.T) {
	path := ResolveSchemaPath(AnalysisSchemaFile)
	require.NotEmpty(t, path)
}

func TestValidateAnalysisResult_Valid(t *testing.T) {
	assert.NoError(t, ValidateAnalysisResult(minimalResult()))
}

func TestValidateAnalysisResult_DegradedRun(t *testing.T) {
	result := minimalResult()
	result.SemanticAnalysis = types.SemanticAnalysis{Available: false}
	result.HybridScoring.SemanticAvailable = false
	result.HybridScoring.SemanticWeight = 0
	result.Warnings = []string{"semantic scoring unavailable"}
	assert.NoError(t, ValidateAnalysisResult(result))
}

func TestValidateAnalysisJSON_RejectsBadEligibility(t *testing.T) {
	err := ValidateAnalysisJSON(`{
		"score": 50, "matched": 0, "total": 0,
		"missing_keywords": [], "matched_keywords": [],
		"scores_by_category": {},
		"section_analysis": {"not_found_in_cv": [], "cv_sections_detected": 1, "jd_sections_detected": 1},
		"evidence_analysis": {"strong_evidence_count": 0, "moderate_evidence_count": 0, "weak_evidence_count": 0, "average_strength": 0},
		"parsed_entities": {"cv_years_experience": 0, "jd_years_required": 0},
		"hybrid_scoring": {"lexical_score": 0, "lexical_weight": 1, "semantic_score": 0, "semantic_weight": 0, "evidence_score": 0, "evidence_weight": 0, "final_score": 0, "semantic_available": false},
		"semantic_analysis": {"available": false, "score": 0, "entity_support_ratio": 0, "high_value_match_count": 0},
		"gap_analysis": {"experience_gaps": {"cv_years": 0, "jd_years": 0, "gap": 0}},
		"eligibility": "maybe"
	}`)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateAnalysisJSON_RejectsOutOfRangeScore(t *testing.T) {
	result := minimalResult()
	result.Score = 250
	err := ValidateAnalysisResult(result)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateJSONString_SchemaLoadError(t *testing.T) {
	err := ValidateJSONString(`{"type": "unknowntype"}`, `{}`)
	var le *SchemaLoadError
	assert.True(t, errors.As(err, &le))
}
