package normalize

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

// sectionVocabulary maps each section label to the closed set of heading
// synonyms that select it. Matching is whole-heading, case-insensitive,
// after stripping trailing colons and bullet markers.
var sectionVocabulary = map[types.SectionLabel][]string{
	types.SectionSummary: {
		"summary", "professional summary", "profile", "objective",
		"about me", "personal statement", "career summary", "executive summary",
	},
	types.SectionSkills: {
		"skills", "core skills", "technical skills", "key skills",
		"competencies", "expertise", "technologies", "proficiencies",
		"technical proficiencies", "core competencies",
	},
	types.SectionExperience: {
		"experience", "work experience", "professional experience",
		"employment", "employment history", "work history", "career history",
		"professional background",
	},
	types.SectionEducation: {
		"education", "educational background", "academic background",
		"academic qualifications", "degrees", "qualifications",
	},
	types.SectionCertifications: {
		"certifications", "certification", "credentials",
		"professional certifications", "licenses and certifications",
		"accreditations",
	},
	types.SectionProjects: {
		"projects", "key projects", "selected projects", "notable projects",
		"portfolio", "achievements", "personal projects",
	},
	types.SectionTools: {
		"tools", "tools and technologies", "tools & technologies", "software",
	},
}

var headingStripRe = regexp.MustCompile(`^[\d\.\-\*\x{2022}#\s]+|[:\s]+$`)

// matchHeading returns the section label for a heading-like line, or
// SectionOther with ok=false when the line matches no vocabulary entry.
func matchHeading(line string) (types.SectionLabel, bool) {
	cleaned := headingStripRe.ReplaceAllString(line, "")
	cleaned = strings.ToLower(strings.TrimSpace(cleaned))
	if cleaned == "" {
		return types.SectionOther, false
	}
	for label, synonyms := range sectionVocabulary {
		for _, syn := range synonyms {
			if cleaned == syn {
				return label, true
			}
		}
	}
	return types.SectionOther, false
}

// isHeadingLike reports whether a line has the shape of a section heading:
// short, and either all-caps, title-cased, or colon-terminated.
func isHeadingLike(line string) bool {
	stripped := strings.TrimSpace(line)
	if stripped == "" || len(stripped) > 80 {
		return false
	}
	if len(strings.Fields(stripped)) > 6 {
		return false
	}
	if stripped == strings.ToUpper(stripped) && stripped != strings.ToLower(stripped) {
		return true
	}
	if strings.HasSuffix(stripped, ":") {
		return true
	}
	return isTitleCased(stripped)
}

func isTitleCased(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		r := rune(w[0])
		if r < 'A' || r > 'Z' {
			// Connectives are allowed lowercase ("Tools and Technologies").
			if w != "and" && w != "&" && w != "of" {
				return false
			}
		}
	}
	return true
}

// detectSections scans cleaned text for heading lines and assigns all text
// until the next heading to that section. Text before the first heading
// becomes Summary; a document with no headings at all becomes one Other
// section. Never fails, only degrades granularity.
func detectSections(cleaned string) []types.Section {
	if cleaned == "" {
		return []types.Section{{Label: types.SectionOther, Text: "", StartOffset: 0}}
	}

	lines := strings.Split(cleaned, "\n")
	type pending struct {
		label  types.SectionLabel
		title  string
		start  int
		bodies []string
	}

	var sections []types.Section
	flush := func(p *pending) {
		raw := strings.TrimSpace(strings.Join(p.bodies, "\n"))
		sections = append(sections, types.Section{
			Label:       p.label,
			Title:       p.title,
			Text:        Canonicalize(raw),
			Raw:         raw,
			StartOffset: p.start,
		})
	}

	current := &pending{label: types.SectionSummary, start: 0}
	sawHeading := false
	offset := 0

	for _, line := range lines {
		if isHeadingLike(line) {
			if label, ok := matchHeading(line); ok {
				if sawHeading || len(strings.TrimSpace(strings.Join(current.bodies, ""))) > 0 {
					flush(current)
				} else {
					sections = sections[:0]
				}
				sawHeading = true
				current = &pending{label: label, title: strings.TrimSpace(line), start: offset + len(line) + 1}
				offset += len(line) + 1
				continue
			}
		}
		current.bodies = append(current.bodies, line)
		offset += len(line) + 1
	}
	flush(current)

	if !sawHeading {
		whole := strings.TrimSpace(cleaned)
		return []types.Section{{
			Label:       types.SectionOther,
			Text:        Canonicalize(whole),
			Raw:         whole,
			StartOffset: 0,
		}}
	}
	return sections
}
