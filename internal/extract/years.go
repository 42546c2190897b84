package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/ats-engine/internal/types"
)

var (
	dateRangeRe     = regexp.MustCompile(`\b((?:19|20)\d{2})\s*(?:[-–—]|to)\s*((?:19|20)\d{2}|present|current|now)\b`)
	dateCandidateRe = regexp.MustCompile(`\b(?:19|20)\d{2}\s*(?:[-–—]|to)\s*\S+`)

	jdYearsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s+)?(?:experience|exp)\b`),
		regexp.MustCompile(`(?:minimum|min|at least)\s*(\d+)\s*(?:years?|yrs?)`),
		regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)\s*(?:experience|exp)?\s*(?:required|needed|necessary)`),
		regexp.MustCompile(`(?:over|more than)\s*(\d+)\s*(?:years?|yrs?)`),
	}
)

type span struct{ start, end int }

// yearsFromExperience sums non-overlapping dated spans found in the CV's
// Experience and Projects sections (falling back to the whole document when
// neither exists). Unparsable ranges are skipped; when more than half of
// the dated entries fail to parse the result is flagged low-confidence.
func yearsFromExperience(doc *types.Document) (int, bool) {
	text := doc.SectionText(types.SectionExperience)
	if projects := doc.SectionText(types.SectionProjects); projects != "" {
		text = strings.TrimSpace(text + " " + projects)
	}
	if text == "" {
		text = doc.CanonicalText
	}

	candidates := len(dateCandidateRe.FindAllString(text, -1))
	currentYear := time.Now().Year()

	var spans []span
	for _, m := range dateRangeRe.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := currentYear
		if m[2] != "present" && m[2] != "current" && m[2] != "now" {
			end, err = strconv.Atoi(m[2])
			if err != nil {
				continue
			}
		}
		if end < start || end > currentYear+1 {
			// Malformed range: skipped, never an error.
			continue
		}
		spans = append(spans, span{start: start, end: end})
	}

	lowConfidence := candidates > 0 && len(spans)*2 < candidates
	return sumNonOverlapping(spans), lowConfidence
}

// sumNonOverlapping merges overlapping year spans so concurrent roles count
// once, then sums their lengths.
func sumNonOverlapping(spans []span) int {
	if len(spans) == 0 {
		return 0
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end < spans[j].end
	})

	total := 0
	current := spans[0]
	for _, s := range spans[1:] {
		if s.start <= current.end {
			if s.end > current.end {
				current.end = s.end
			}
			continue
		}
		total += current.end - current.start
		current = s
	}
	total += current.end - current.start
	return total
}

// yearsRequired extracts the maximum years-of-experience demand from JD text.
func yearsRequired(canonicalText string) int {
	max := 0
	for _, re := range jdYearsPatterns {
		for _, m := range re.FindAllStringSubmatch(canonicalText, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > max {
				max = n
			}
		}
	}
	return max
}
