// Package evidence classifies how well a CV substantiates each matched
// hard skill: a quantified outcome plus ownership language beats a bare
// mention in a skills list.
package evidence

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/ats-engine/internal/extract"
	"github.com/jonathan/ats-engine/internal/types"
)

var (
	// Quantified outcomes: percentages, currency, or bare numbers.
	metricRe = regexp.MustCompile(`[%$€£]|\b\d+(?:\.\d+)?\b`)

	ownershipRe = regexp.MustCompile(`(?i)\b(?:led|delivered|owned|built|drove|managed|launched|shipped|designed|implemented|architected|automated|reduced|increased|improved)\b`)

	sentenceSplitRe = regexp.MustCompile(`[.!?\n]+`)
)

// strengthRank orders strengths for best-sentence selection and drives the
// numeric average (weak 0, moderate 0.5, strong 1).
var strengthRank = map[types.EvidenceStrengthLevel]float64{
	types.EvidenceWeak:     0,
	types.EvidenceModerate: 0.5,
	types.EvidenceStrong:   1,
}

// Analyze classifies evidence strength for each lexically-matched hard
// skill. Skills absent from the CV are the caller's gaps, not weak
// evidence, so only matched skills are passed in. The strongest supporting
// sentence found in Experience or Projects wins; a skill seen nowhere but
// a skills list stays weak with no context.
func Analyze(cv *types.Document, matchedHardSkills []string) *types.EvidenceAnalysis {
	analysis := &types.EvidenceAnalysis{}
	skills := dedupSorted(matchedHardSkills)
	if len(skills) == 0 {
		return analysis
	}

	sentences := supportSentences(cv)
	total := 0.0
	for _, skill := range skills {
		re := extract.MatchPattern(skill)
		record := types.EvidenceRecord{Skill: skill, Strength: types.EvidenceWeak}
		found := false
		for _, sentence := range sentences {
			if !re.MatchString(sentence) {
				continue
			}
			strength := classifySentence(sentence)
			if !found || strengthRank[strength] > strengthRank[record.Strength] {
				record.Strength = strength
				record.SupportingContext = sentence
			}
			found = true
		}

		analysis.Records = append(analysis.Records, record)
		total += strengthRank[record.Strength]
		switch record.Strength {
		case types.EvidenceStrong:
			analysis.StrongCount++
		case types.EvidenceModerate:
			analysis.ModerateCount++
		default:
			analysis.WeakCount++
		}
	}

	analysis.AverageStrength = total / float64(len(skills))
	return analysis
}

// classifySentence applies the two-signal rule: metric and ownership verb
// together are strong, either alone is moderate, neither is weak.
func classifySentence(sentence string) types.EvidenceStrengthLevel {
	hasMetric := metricRe.MatchString(sentence)
	hasOwnership := ownershipRe.MatchString(sentence)
	switch {
	case hasMetric && hasOwnership:
		return types.EvidenceStrong
	case hasMetric || hasOwnership:
		return types.EvidenceModerate
	default:
		return types.EvidenceWeak
	}
}

// supportSentences collects trimmed sentences from the CV's Experience and
// Projects sections, preferring the raw text so supporting context reads
// like the candidate wrote it.
func supportSentences(cv *types.Document) []string {
	var out []string
	for _, sec := range cv.Sections {
		if sec.Label != types.SectionExperience && sec.Label != types.SectionProjects {
			continue
		}
		body := sec.Raw
		if body == "" {
			body = sec.Text
		}
		for _, s := range sentenceSplitRe.Split(body, -1) {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func dedupSorted(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, it := range items {
		if it != "" && !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	sort.Strings(out)
	return out
}
