// Package stopwords builds the effective stopword set for a scoring run.
//
// A Set is an immutable value assembled once per run from three tiers: base
// grammar/function words, job-board UI and posting boilerplate, and dynamic
// company-name variants. It is advisory to keyword ranking only and is never
// applied when extracting employment entities from a CV.
package stopwords

import (
	"regexp"
	"strings"
)

// base covers articles, prepositions, pronouns and common verbs, plus the
// job-posting boilerplate words that appear in nearly every listing.
var base = wordSet(
	"the a an and or but in on at to for of with by from as is was are were be",
	"been being have has had do does did will would could should may might must",
	"can this that these those i you he she it we they us them what which who",
	"when where why how all each every both few more most some such into through",
	"above below between under over out up down off then than so just also very",
	"too any only own same no not now",
	// posting boilerplate
	"responsibilities responsibility requirements requirement qualifications",
	"qualification preferred required candidate candidates position role",
	"opportunity looking seeking hiring join team company ideal strong excellent",
	"good great best ability able skills skill experience experienced knowledge",
	"understanding familiar familiarity work working environment based including",
	"includes well within across using used use ensure ensuring provide providing",
	"support supporting develop developing development create creating etc other",
	"others various multiple different minimum maximum least plus years year",
	"full time part remote onsite hybrid office salary benefits compensation",
	"package competitive equal employer employment applicants applicant",
)

// ui covers job-board navigation chrome.
var ui = wordSet(
	"apply job save show view click here read more less back next previous",
	"search filter sort share print email download upload submit send post",
	"date ago day week month new updated end start while during about our",
	"your their its my",
)

// legalSuffixes are appended to every dynamic company expansion.
var legalSuffixes = []string{
	"ltd", "limited", "inc", "incorporated", "corp", "corporation",
	"llc", "plc", "group", "holdings", "company", "co",
}

// Set is the effective stopword set for one run. Build it with Resolve;
// never mutate it afterwards.
type Set struct {
	words   map[string]bool
	dynamic []string
	company string
}

// Resolve builds the Set for a run. companyName may be empty, in which case
// detection against the JD text is attempted; when both fail the Set
// degrades to base+ui only, which is not an error.
func Resolve(companyName, jdText string) *Set {
	s := &Set{words: make(map[string]bool, len(base)+len(ui)+16)}
	for w := range base {
		s.words[w] = true
	}
	for w := range ui {
		s.words[w] = true
	}

	name := companyName
	if name == "" {
		if det := DetectCompany(jdText); det.Found {
			name = det.Name
		}
	}
	if name != "" {
		s.company = name
		s.addCompanyVariants(name)
	}
	return s
}

// addCompanyVariants expands a company name into its lowercase form, its
// constituent words and the fixed legal suffixes.
func (s *Set) addCompanyVariants(name string) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return
	}
	add := func(w string) {
		if !s.words[w] {
			s.words[w] = true
			s.dynamic = append(s.dynamic, w)
		}
	}

	add(lower)
	for _, word := range strings.Fields(lower) {
		if len(word) > 2 {
			add(word)
		}
	}
	for _, suffix := range legalSuffixes {
		add(suffix)
	}
}

// Contains reports whether a lowercase token is a stopword.
func (s *Set) Contains(token string) bool {
	return s.words[token]
}

// Company returns the explicit or detected company name, or "".
func (s *Set) Company() string {
	return s.company
}

// DynamicWords returns the dynamic-tier words in insertion order, for
// diagnostics.
func (s *Set) DynamicWords() []string {
	out := make([]string, len(s.dynamic))
	copy(out, s.dynamic)
	return out
}

// Filter returns the tokens that are not stopwords and are at least two
// characters long.
func (s *Set) Filter(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) >= 2 && !s.Contains(tok) {
			out = append(out, tok)
		}
	}
	return out
}

var fieldSplitRe = regexp.MustCompile(`\s+`)

func wordSet(lines ...string) map[string]bool {
	set := make(map[string]bool)
	for _, line := range lines {
		for _, w := range fieldSplitRe.Split(strings.TrimSpace(line), -1) {
			if w != "" {
				set[w] = true
			}
		}
	}
	return set
}
