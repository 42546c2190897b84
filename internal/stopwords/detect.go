package stopwords

import (
	"regexp"
	"strings"
)

// Detection is the result of company-name detection against JD text.
// Found is false when no rule matched; callers treat that as a clean
// degradation, never an error.
type Detection struct {
	Found bool
	Name  string
	Rule  string
}

// detectionRule pairs a name with a pattern whose first capture group is a
// capitalized phrase. Rules are evaluated in priority order; the first
// match wins.
type detectionRule struct {
	name    string
	pattern *regexp.Regexp
}

var detectionRules = []detectionRule{
	{
		name:    "labelled",
		pattern: regexp.MustCompile(`(?m)(?:[Cc]ompany|[Oo]rganization|[Ee]mployer):\s*([A-Z][A-Za-z\s&]+?)(?:\n|\.|,)`),
	},
	{
		name:    "join-at",
		pattern: regexp.MustCompile(`(?:[Jj]oin|[Aa]t)\s+([A-Z][A-Za-z\s&]+?)\s+(?:as|in|for)\b`),
	},
	{
		name:    "is-seeking",
		pattern: regexp.MustCompile(`(?m)^([A-Z][A-Za-z\s&]+?)\s+is\s+(?:seeking|looking|hiring)`),
	},
}

// DetectCompany runs the ordered detection rules against JD text. Captures
// longer than four words are rejected as unlikely company names.
func DetectCompany(jdText string) Detection {
	for _, rule := range detectionRules {
		m := rule.pattern.FindStringSubmatch(jdText)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" || len(strings.Fields(name)) > 4 {
			continue
		}
		return Detection{Found: true, Name: name, Rule: rule.name}
	}
	return Detection{}
}
