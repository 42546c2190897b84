package scoring

import (
	"fmt"
	"sort"

	"github.com/jonathan/ats-engine/internal/types"
)

// SemanticGapFloor is the minimum JD-section similarity for a missing
// keyword to count as "implied but unstated" rather than simply absent.
const SemanticGapFloor = 0.4

// Suggestion caps keep the action list actionable instead of exhaustive.
const (
	maxSuggestions            = 10
	maxSuggestionsPerCategory = 5
)

// GapInputs are the upstream outputs GapAnalyzer derives its views from.
// No text is re-scanned here.
type GapInputs struct {
	Lexical  *types.LexicalResult
	Semantic *types.SemanticAnalysis
	Evidence *types.EvidenceAnalysis
	JD       *types.ExtractedEntities
	CVYears  int
	JDYears  int
}

// AnalyzeGaps derives the read-only gap views over one scoring run.
func AnalyzeGaps(in GapInputs) types.GapAnalysis {
	gaps := types.GapAnalysis{
		CriticalGaps:   criticalGaps(in.Lexical),
		EvidenceGaps:   evidenceGaps(in.Evidence),
		SemanticGaps:   semanticGaps(in),
		ExperienceGaps: experienceGap(in.CVYears, in.JDYears),
	}
	gaps.ActionableSuggestions = suggestions(in)
	return gaps
}

// criticalGaps is the dedup union of missing items across the critical
// categories.
func criticalGaps(lex *types.LexicalResult) []string {
	set := make(map[string]bool)
	for _, cat := range []types.Category{types.CategoryCriticalKeywords, types.CategoryRequired} {
		for _, item := range lex.ByCategory[cat].ItemsMissing {
			set[item] = true
		}
	}
	out := make([]string, 0, len(set))
	for item := range set {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

func evidenceGaps(ev *types.EvidenceAnalysis) []string {
	var out []string
	for _, rec := range ev.Records {
		if rec.Strength == types.EvidenceWeak {
			out = append(out, rec.Skill)
		}
	}
	sort.Strings(out)
	return out
}

// semanticGaps lists missing keywords whose JD section still resonates
// with some CV section above the floor: concepts the CV implies without
// stating.
func semanticGaps(in GapInputs) []string {
	if !in.Semantic.Available || len(in.Semantic.SectionSimilarities) == 0 {
		return nil
	}

	sections := termSections(in.JD)
	set := make(map[string]bool)
	for _, term := range in.Lexical.MissingKeywords {
		for _, label := range sections[term] {
			if in.Semantic.SectionSimilarities[label] >= SemanticGapFloor {
				set[term] = true
				break
			}
		}
	}
	out := make([]string, 0, len(set))
	for term := range set {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}

func experienceGap(cvYears, jdYears int) types.ExperienceGap {
	gap := jdYears - cvYears
	if gap < 0 {
		gap = 0
	}
	return types.ExperienceGap{CVYears: cvYears, JDYears: jdYears, Gap: gap}
}

// suggestions builds placement recommendations for gap skills in category
// priority order, recommending the CV section most semantically aligned
// with the skill's JD section.
func suggestions(in GapInputs) []types.Suggestion {
	sections := termSections(in.JD)
	bestCV := bestCVSections(in.Semantic)

	var out []types.Suggestion
	suggested := make(map[string]bool)
	for _, cat := range types.Categories {
		perCategory := 0
		for _, skill := range in.Lexical.ByCategory[cat].ItemsMissing {
			if len(out) >= maxSuggestions {
				return out
			}
			if perCategory >= maxSuggestionsPerCategory || suggested[skill] {
				continue
			}
			suggested[skill] = true
			perCategory++
			out = append(out, types.Suggestion{
				Skill:              skill,
				Priority:           cat,
				RecommendedSection: recommendSection(skill, sections, bestCV),
				Reason:             suggestionReason(cat),
			})
		}
	}
	return out
}

func recommendSection(skill string, sections map[string][]types.SectionLabel, bestCV map[types.SectionLabel]types.SectionLabel) types.SectionLabel {
	for _, jdLabel := range sections[skill] {
		if cvLabel, ok := bestCV[jdLabel]; ok {
			return cvLabel
		}
	}
	return types.SectionExperience
}

// bestCVSections maps each JD section to the CV section of its strongest
// semantic match.
func bestCVSections(sem *types.SemanticAnalysis) map[types.SectionLabel]types.SectionLabel {
	best := make(map[types.SectionLabel]types.SectionLabel)
	sim := make(map[types.SectionLabel]float64)
	for _, m := range sem.Matches {
		if cur, ok := sim[m.JDSection]; !ok || m.Similarity > cur {
			sim[m.JDSection] = m.Similarity
			best[m.JDSection] = m.CVSection
		}
	}
	return best
}

// termSections maps each canonical JD term to the sections it appears in,
// in document order.
func termSections(jd *types.ExtractedEntities) map[string][]types.SectionLabel {
	out := make(map[string][]types.SectionLabel)
	if jd == nil {
		return out
	}
	for _, e := range jd.Entities {
		out[e.CanonicalForm] = append(out[e.CanonicalForm], e.Section)
	}
	return out
}

func suggestionReason(cat types.Category) string {
	switch cat {
	case types.CategoryCriticalKeywords, types.CategoryRequired:
		return "listed as a must-have in the job description"
	case types.CategoryPreferred:
		return "a nice-to-have that would strengthen the application"
	case types.CategoryCertifications:
		return "a certification the job description calls out"
	case types.CategoryIndustryTerms:
		return "industry context the job description emphasizes"
	default:
		return fmt.Sprintf("appears in the job description under %s", cat)
	}
}
