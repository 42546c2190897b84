package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/ats-engine/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleResult() *types.ATSAnalysisResult {
	return &types.ATSAnalysisResult{
		Score:       72.5,
		Matched:     2,
		Total:       3,
		Eligibility: types.AtRisk,
		HybridScoring: types.HybridScoring{
			LexicalScore:      66.7,
			LexicalWeight:     0.55,
			SemanticAvailable: true,
			SemanticScore:     80,
			SemanticWeight:    0.35,
			EvidenceScore:     100,
			EvidenceWeight:    0.10,
			FinalScore:        72.5,
		},
		ScoresByCategory: map[types.Category]types.CategoryScore{
			types.CategoryCriticalKeywords: {
				Matched:      1,
				Missing:      1,
				ItemsMatched: []string{"python"},
				ItemsMissing: []string{"docker"},
			},
		},
		GapAnalysis: types.GapAnalysis{
			CriticalGaps: []string{"docker"},
			ActionableSuggestions: []types.Suggestion{{
				Skill:              "docker",
				Priority:           types.CategoryCriticalKeywords,
				RecommendedSection: types.SectionExperience,
				Reason:             "listed as a must-have in the job description",
			}},
		},
	}
}

func TestPrintScoreSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreSummary(sampleResult())

	out := buf.String()
	assert.Contains(t, out, "ATS MATCH SCORE")
	assert.Contains(t, out, "72.5")
	assert.Contains(t, out, "at_risk")
	assert.Contains(t, out, "2 of 3")
}

func TestPrintScoreSummary_DegradedSemantic(t *testing.T) {
	result := sampleResult()
	result.HybridScoring.SemanticAvailable = false

	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreSummary(result)
	assert.Contains(t, buf.String(), "unavailable")
}

func TestPrintCategoryBreakdown(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCategoryBreakdown(sampleResult())

	out := buf.String()
	assert.Contains(t, out, "CATEGORY BREAKDOWN")
	assert.Contains(t, out, "critical_keywords")
	assert.Contains(t, out, "1/2")
	assert.Contains(t, out, "docker")
}

func TestPrintGaps(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintGaps(sampleResult())

	out := buf.String()
	assert.Contains(t, out, "GAP ANALYSIS")
	assert.Contains(t, out, "Critical gaps: docker")
	assert.Contains(t, out, `add "docker" to experience`)
}

func TestPrint_NilResultWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.PrintScoreSummary(nil)
	p.PrintCategoryBreakdown(nil)
	p.PrintGaps(nil)
	assert.Zero(t, buf.Len())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
