// Package scoring composes the lexical, semantic and evidence sub-scores
// into one final score, applies eligibility gates, and derives gap views.
package scoring

import (
	"math"

	"github.com/jonathan/ats-engine/internal/types"
)

// Default hybrid split between the three sub-scores.
const (
	DefaultLexicalWeight  = 0.55
	DefaultSemanticWeight = 0.35
	DefaultEvidenceWeight = 0.10

	// DefaultExperienceTolerance is how many years short of the JD's
	// requirement a candidate may be while still counting as eligible.
	DefaultExperienceTolerance = 0
)

// HybridWeights is the lexical/semantic/evidence split. The category
// sub-weights inside the lexical score are an independent configuration
// layer, not part of this split.
type HybridWeights struct {
	Lexical  float64 `json:"lexical" validate:"gte=0"`
	Semantic float64 `json:"semantic" validate:"gte=0"`
	Evidence float64 `json:"evidence" validate:"gte=0"`
}

// DefaultHybridWeights returns the standard 0.55/0.35/0.10 split.
func DefaultHybridWeights() HybridWeights {
	return HybridWeights{
		Lexical:  DefaultLexicalWeight,
		Semantic: DefaultSemanticWeight,
		Evidence: DefaultEvidenceWeight,
	}
}

// Sum is the raw total of the three weights before normalization.
func (w HybridWeights) Sum() float64 {
	return w.Lexical + w.Semantic + w.Evidence
}

// Normalized scales the weights to sum to 1.0. The second return reports
// whether scaling was needed, which the engine surfaces as a ConfigWarning.
func (w HybridWeights) Normalized() (HybridWeights, bool) {
	total := w.Sum()
	if total <= 0 {
		return DefaultHybridWeights(), true
	}
	if math.Abs(total-1.0) < 1e-9 {
		return w, false
	}
	return HybridWeights{
		Lexical:  w.Lexical / total,
		Semantic: w.Semantic / total,
		Evidence: w.Evidence / total,
	}, true
}

// Compose combines the sub-scores under the given weights. Weights not
// summing to 1.0 are normalized first, so the final score stays within
// the 0..100 range of its sub-scores. When the
// semantic score is unavailable its weight is redistributed proportionally
// onto lexical and evidence so the remaining weights still sum to 1.0;
// the result records SemanticAvailable=false rather than failing or
// silently inflating.
func Compose(lex *types.LexicalResult, sem *types.SemanticAnalysis, ev *types.EvidenceAnalysis, w HybridWeights) types.HybridScoring {
	w, _ = w.Normalized()
	evidenceScore := round1(ev.AverageStrength * 100)

	wl, ws, we := w.Lexical, w.Semantic, w.Evidence
	if !sem.Available {
		remainder := wl + we
		if remainder <= 0 {
			wl, we = DefaultLexicalWeight, DefaultEvidenceWeight
			remainder = wl + we
		}
		wl /= remainder
		we /= remainder
		ws = 0
	}

	composed := types.HybridScoring{
		LexicalScore:         lex.Score,
		LexicalWeight:        wl,
		LexicalContribution:  round1(lex.Score * wl),
		SemanticScore:        sem.Score,
		SemanticWeight:       ws,
		SemanticContribution: round1(sem.Score * ws),
		EvidenceScore:        evidenceScore,
		EvidenceWeight:       we,
		EvidenceContribution: round1(evidenceScore * we),
		SemanticAvailable:    sem.Available,
	}
	composed.FinalScore = round1(lex.Score*wl + sem.Score*ws + evidenceScore*we)
	return composed
}

// Gate derives the eligibility label from missing critical requirements
// and the experience shortfall. Gates never touch the score itself, so
// scores stay continuous and comparable across re-runs.
func Gate(missingCritical int, experience types.ExperienceGap, tolerance int) types.Eligibility {
	switch {
	case missingCritical == 0 && experience.Gap <= tolerance:
		return types.Eligible
	case missingCritical >= 1 && experience.Gap > 2:
		return types.NotEligible
	default:
		return types.AtRisk
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
