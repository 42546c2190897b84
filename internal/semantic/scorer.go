package semantic

import (
	"context"
	"math"
	"regexp"
	"sort"
	"time"

	"github.com/jonathan/ats-engine/internal/types"
)

// DefaultEmbedTimeout bounds the only suspension point in a scoring run.
// A provider slower than this is treated as unavailable, never awaited
// indefinitely.
const DefaultEmbedTimeout = 10 * time.Second

var digitRe = regexp.MustCompile(`\d`)

// Scorer pairs every JD section with its most similar CV section and
// aggregates the similarities into a 0-100 semantic score with safety
// rails applied.
type Scorer struct {
	provider Provider
	timeout  time.Duration
}

// NewScorer builds a scorer on the given provider. A zero timeout selects
// DefaultEmbedTimeout. A nil provider yields degraded (unavailable)
// results rather than an error.
func NewScorer(provider Provider, timeout time.Duration) *Scorer {
	if timeout <= 0 {
		timeout = DefaultEmbedTimeout
	}
	return &Scorer{provider: provider, timeout: timeout}
}

// Analyze embeds the sections of both documents and scores their best
// pairings. Provider failure or timeout returns Available=false with a
// zero score; the HybridScorer then redistributes the semantic weight.
func (s *Scorer) Analyze(ctx context.Context, jd, cv *types.Document, cvEntities *types.ExtractedEntities) *types.SemanticAnalysis {
	if s.provider == nil {
		return &types.SemanticAnalysis{Available: false}
	}

	jdSections := embeddableSections(jd)
	cvSections := embeddableSections(cv)
	if len(jdSections) == 0 || len(cvSections) == 0 {
		return &types.SemanticAnalysis{Available: true}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	vectors := make(map[string][]float32)
	for _, sec := range append(append([]types.Section{}, jdSections...), cvSections...) {
		if _, ok := vectors[sec.Text]; ok {
			continue
		}
		vec, err := s.provider.Embed(ctx, sec.Text)
		if err != nil {
			// Timeout and unreachable degrade identically.
			return &types.SemanticAnalysis{Available: false}
		}
		vectors[sec.Text] = vec
	}

	hardSections := hardEntitySections(cv, cvEntities)

	analysis := &types.SemanticAnalysis{
		Available:           true,
		SectionSimilarities: make(map[types.SectionLabel]float64, len(jdSections)),
	}

	supported := 0
	effectiveSum := 0.0
	for _, jdSec := range jdSections {
		best := types.SemanticMatch{JDSection: jdSec.Label, Similarity: -1}
		for _, cvSec := range cvSections {
			sim := cosine(vectors[jdSec.Text], vectors[cvSec.Text])
			if sim > best.Similarity {
				best.CVSection = cvSec.Label
				best.Similarity = sim
			}
		}
		if best.Similarity < 0 {
			continue
		}
		best.HighValue = isHighValue(best.CVSection)

		if prev, ok := analysis.SectionSimilarities[jdSec.Label]; !ok || best.Similarity > prev {
			analysis.SectionSimilarities[jdSec.Label] = best.Similarity
		}

		// Safety rail: full weight only for high-value CV sections or
		// matches co-located with a hard entity; otherwise halved.
		effective := best.Similarity
		if best.HighValue || hardSections[best.CVSection] {
			supported++
		} else {
			effective /= 2
		}
		effectiveSum += effective

		if best.HighValue {
			analysis.HighValueMatches++
		}
		analysis.Matches = append(analysis.Matches, best)
	}

	if len(analysis.Matches) == 0 {
		return analysis
	}

	sort.SliceStable(analysis.Matches, func(i, j int) bool {
		return analysis.Matches[i].Similarity > analysis.Matches[j].Similarity
	})

	analysis.EntitySupportRatio = float64(supported) / float64(len(analysis.Matches))
	analysis.Score = math.Round(effectiveSum/float64(len(analysis.Matches))*1000) / 10
	return analysis
}

func isHighValue(label types.SectionLabel) bool {
	return label == types.SectionExperience || label == types.SectionProjects
}

func embeddableSections(doc *types.Document) []types.Section {
	var out []types.Section
	for _, sec := range doc.Sections {
		if sec.Text != "" {
			out = append(out, sec)
		}
	}
	return out
}

// hardEntitySections marks CV sections holding at least one hard entity
// (hard skill, tool, certification) or a bare number.
func hardEntitySections(cv *types.Document, entities *types.ExtractedEntities) map[types.SectionLabel]bool {
	marked := make(map[types.SectionLabel]bool)
	if entities != nil {
		for _, e := range entities.Entities {
			switch e.Kind {
			case types.KindHardSkill, types.KindTool, types.KindCertification:
				marked[e.Section] = true
			}
		}
	}
	for _, sec := range cv.Sections {
		if digitRe.MatchString(sec.Text) {
			marked[sec.Label] = true
		}
	}
	return marked
}

// cosine computes cosine similarity clamped to [0,1]; mismatched or
// zero-norm vectors score 0.
func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}
