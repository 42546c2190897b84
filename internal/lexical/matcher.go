// Package lexical scores exact-keyword overlap between a job description
// and a CV across fixed, weighted categories.
package lexical

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/ats-engine/internal/stopwords"
	"github.com/jonathan/ats-engine/internal/types"
)

// TopTermsPerCategory caps each category universe at the JD's most frequent
// terms so a rambling posting cannot dilute the score with its long tail.
const TopTermsPerCategory = 30

// Matcher tests JD category universes against the CV's canonical entity
// set. Stopword filtering is applied to the JD side before ranking, so a
// company name never surfaces as a keyword in either direction.
type Matcher struct {
	stops   *stopwords.Set
	weights Weights
	warning string
}

// NewMatcher builds a matcher with the given stopword set and category
// weights. Weights not summing to 1.0 are normalized and the warning is
// attached to every result the matcher produces.
func NewMatcher(stops *stopwords.Set, weights Weights) *Matcher {
	normalized, adjusted := weights.Normalized()
	m := &Matcher{stops: stops, weights: normalized}
	if adjusted {
		m.warning = fmt.Sprintf(
			"category weights summed to %.3f, normalized to 1.0", weights.sum())
	}
	return m
}

// Match computes per-category matched/missing lists and the weighted
// lexical score for one JD/CV pair.
func (m *Matcher) Match(jd, cv *types.ExtractedEntities) *types.LexicalResult {
	cvSet := cv.CanonicalSet()
	result := &types.LexicalResult{
		ByCategory: make(map[types.Category]types.CategoryScore, len(types.Categories)),
	}
	if m.warning != "" {
		result.Warnings = append(result.Warnings, m.warning)
	}

	matchedSet := make(map[string]bool)
	missingSet := make(map[string]bool)
	weightedSum := 0.0
	activeWeight := 0.0

	for _, cat := range types.Categories {
		universe := m.universe(jd, cat)
		score := types.CategoryScore{}
		for _, term := range universe {
			if cvSet[term] {
				score.Matched++
				score.ItemsMatched = append(score.ItemsMatched, term)
				matchedSet[term] = true
			} else {
				score.Missing++
				score.ItemsMissing = append(score.ItemsMissing, term)
				missingSet[term] = true
			}
		}
		result.ByCategory[cat] = score

		// Categories the JD never populates carry no weight; the
		// remaining weights are renormalized below.
		if len(universe) > 0 {
			w := m.weights.of(cat)
			weightedSum += w * float64(score.Matched) / float64(len(universe))
			activeWeight += w
		}
	}

	// A term matched in one category must not also be reported missing
	// from another.
	for term := range matchedSet {
		delete(missingSet, term)
	}

	result.MatchedKeywords = sortedKeys(matchedSet)
	result.MissingKeywords = sortedKeys(missingSet)
	result.Matched = len(result.MatchedKeywords)
	result.Total = len(result.MatchedKeywords) + len(result.MissingKeywords)
	if activeWeight > 0 {
		result.Score = round1(weightedSum / activeWeight * 100)
	}
	return result
}

// universe derives the JD-side term universe for one category: canonical,
// stopword-filtered, ranked by JD frequency (ties alphabetical) and capped
// at TopTermsPerCategory.
func (m *Matcher) universe(jd *types.ExtractedEntities, cat types.Category) []string {
	freq := make(map[string]int)
	add := func(term string, f int) {
		if !m.allowed(term) {
			return
		}
		if f < 1 {
			f = 1
		}
		if f > freq[term] {
			freq[term] = f
		}
	}

	switch cat {
	case types.CategoryCriticalKeywords:
		for _, r := range jd.Requirements {
			if r.Strength == types.StrengthCritical {
				add(r.CanonicalForm, r.Frequency)
			}
		}
	case types.CategoryRequired:
		for _, r := range jd.Requirements {
			if r.Strength == types.StrengthCritical && isSkillKind(r.Kind) {
				add(r.CanonicalForm, r.Frequency)
			}
		}
	case types.CategoryPreferred:
		for _, r := range jd.Requirements {
			if r.Strength == types.StrengthPreferred {
				add(r.CanonicalForm, r.Frequency)
			}
		}
	default:
		kinds := categoryKinds[cat]
		for _, r := range jd.Requirements {
			if kinds[r.Kind] {
				add(r.CanonicalForm, r.Frequency)
			}
		}
	}

	terms := make([]string, 0, len(freq))
	for t := range freq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > TopTermsPerCategory {
		terms = terms[:TopTermsPerCategory]
	}
	return terms
}

// categoryKinds maps the entity-derived categories to their kinds.
var categoryKinds = map[types.Category]map[types.EntityKind]bool{
	types.CategoryHardSkills: {
		types.KindHardSkill: true,
		types.KindTool:      true,
	},
	types.CategorySoftSkills: {
		types.KindSoftSkill: true,
	},
	types.CategoryCertifications: {
		types.KindCertification: true,
	},
	types.CategoryIndustryTerms: {
		types.KindDomain:      true,
		types.KindMethodology: true,
	},
}

func isSkillKind(kind types.EntityKind) bool {
	return kind == types.KindHardSkill || kind == types.KindSoftSkill || kind == types.KindTool
}

// allowed rejects terms swallowed by the stopword set: the term itself, or
// a phrase whose every word is a stopword (covers multi-word company names).
func (m *Matcher) allowed(term string) bool {
	if m.stops.Contains(term) {
		return false
	}
	words := strings.Fields(term)
	if len(words) < 2 {
		return true
	}
	for _, w := range words {
		if !m.stops.Contains(w) {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
