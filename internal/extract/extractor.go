package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

// termMatcher holds the compiled pattern for one canonical taxonomy term,
// covering the term and every acronym/alias form that folds onto it.
type termMatcher struct {
	canonical string
	kind      types.EntityKind
	re        *regexp.Regexp
}

// matchers is built once at init in deterministic order: kinds in taxonomy
// order, terms sorted within each kind.
var matchers = buildMatchers()

func buildMatchers() []termMatcher {
	var out []termMatcher
	for _, kt := range kindTaxonomy {
		terms := make([]string, 0, len(kt.terms))
		for t := range kt.terms {
			terms = append(terms, t)
		}
		sort.Strings(terms)
		for _, t := range terms {
			out = append(out, termMatcher{
				canonical: t,
				kind:      kt.kind,
				re:        termPattern(EquivalentForms(t)),
			})
		}
	}
	return out
}

// termPattern compiles an alternation of all forms with word boundaries
// where the form starts/ends with a word character.
func termPattern(forms []string) *regexp.Regexp {
	alts := make([]string, 0, len(forms))
	for _, f := range forms {
		quoted := regexp.QuoteMeta(f)
		if isWordChar(f[0]) {
			quoted = `\b` + quoted
		}
		if isWordChar(f[len(f)-1]) {
			quoted += `\b`
		}
		alts = append(alts, quoted)
	}
	return regexp.MustCompile(`(?i)(?:` + strings.Join(alts, "|") + `)`)
}

func isWordChar(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// FromDocument extracts entities and years of experience from a normalized
// CV. Recognition runs per section over the canonical stream, so aliases
// and UK spellings have already been folded.
func FromDocument(doc *types.Document) *types.ExtractedEntities {
	result := &types.ExtractedEntities{}
	seen := make(map[string]bool)

	for _, section := range doc.Sections {
		for _, m := range matchers {
			loc := m.re.FindString(section.Text)
			if loc == "" {
				continue
			}
			key := m.canonical + "|" + string(m.kind) + "|" + string(section.Label)
			if seen[key] {
				continue
			}
			seen[key] = true
			result.Entities = append(result.Entities, types.Entity{
				SurfaceForm:   loc,
				CanonicalForm: m.canonical,
				Kind:          m.kind,
				Section:       section.Label,
			})
		}
	}

	years, lowConfidence := yearsFromExperience(doc)
	result.YearsExperience = years
	result.YearsLowConfidence = lowConfidence
	return result
}

// Trigger phrases for requirement-strength classification. Absence of any
// trigger defaults a requirement to preferred.
var (
	criticalTriggerRe  = regexp.MustCompile(`must[- ]have|required|essential|minimum \d+\+? years?|proven experience`)
	preferredTriggerRe = regexp.MustCompile(`nice[- ]to[- ]have|bonus|preferred|advantageous`)
	sentenceSplitRe    = regexp.MustCompile(`[.!?\n]+`)
)

// FromJD extracts entities from a normalized job description and annotates
// each as a Requirement with strength and frequency.
func FromJD(doc *types.Document) *types.ExtractedEntities {
	result := FromDocument(doc)
	result.YearsExperience = yearsRequired(doc.CanonicalText)
	result.YearsLowConfidence = false

	strengths := classifyStrengths(doc.CanonicalText)

	seen := make(map[string]bool)
	for _, e := range result.Entities {
		if seen[e.CanonicalForm] {
			continue
		}
		seen[e.CanonicalForm] = true

		strength, ok := strengths[e.CanonicalForm]
		if !ok {
			strength = types.StrengthPreferred
		}
		result.Requirements = append(result.Requirements, types.Requirement{
			Entity:    e,
			Strength:  strength,
			Frequency: countOccurrences(doc.CanonicalText, e.CanonicalForm),
		})
	}
	return result
}

// classifyStrengths scans JD sentences for trigger phrases and assigns each
// term found in a triggered sentence its strength. Critical wins when a
// term appears in both kinds of sentence.
func classifyStrengths(canonicalText string) map[string]types.RequirementStrength {
	strengths := make(map[string]types.RequirementStrength)

	for _, sentence := range sentenceSplitRe.Split(canonicalText, -1) {
		var strength types.RequirementStrength
		switch {
		case criticalTriggerRe.MatchString(sentence):
			strength = types.StrengthCritical
		case preferredTriggerRe.MatchString(sentence):
			strength = types.StrengthPreferred
		default:
			continue
		}

		for _, m := range matchers {
			if !m.re.MatchString(sentence) {
				continue
			}
			if strength == types.StrengthCritical || strengths[m.canonical] == "" {
				strengths[m.canonical] = strength
			}
		}
	}
	return strengths
}

func countOccurrences(text, canonical string) int {
	return len(MatchPattern(canonical).FindAllString(text, -1))
}

// MatchPattern compiles a case-insensitive matcher covering term and every
// alias/acronym form that folds onto the same canonical.
func MatchPattern(term string) *regexp.Regexp {
	return termPattern(EquivalentForms(term))
}
