package normalize

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

// ukToUS maps UK spelling variants to the canonical US form used by all
// downstream matching. Applied to the canonical stream only; raw text is
// never rewritten.
var ukToUS = map[string]string{
	"optimise":       "optimize",
	"optimised":      "optimized",
	"optimisation":   "optimization",
	"organise":       "organize",
	"organised":      "organized",
	"organisation":   "organization",
	"analyse":        "analyze",
	"analysed":       "analyzed",
	"specialise":     "specialize",
	"specialised":    "specialized",
	"specialisation": "specialization",
	"utilise":        "utilize",
	"utilised":       "utilized",
	"utilisation":    "utilization",
	"prioritise":     "prioritize",
	"prioritised":    "prioritized",
	"prioritisation": "prioritization",
	"visualise":      "visualize",
	"visualisation":  "visualization",
	"standardise":    "standardize",
	"standardised":   "standardized",
	"modelling":      "modeling",
	"modelled":       "modeled",
	"programme":      "program",
	"programmes":     "programs",
	"centre":         "center",
	"centres":        "centers",
	"colour":         "color",
	"behaviour":      "behavior",
	"behavioural":    "behavioral",
	"labour":         "labor",
	"licence":        "license",
	"licences":       "licenses",
	"catalogue":      "catalog",
	"catalogues":     "catalogs",
	"fulfil":         "fulfill",
	"fulfilment":     "fulfillment",
}

var wordRe = regexp.MustCompile(`[a-zA-Z]+`)

// detectVariant counts UK-variant occurrences in lowered text. One hit is
// enough to tag the document UK; the default is US.
func detectVariant(lowered string) types.LanguageVariant {
	hits := 0
	for _, w := range wordRe.FindAllString(lowered, -1) {
		if _, ok := ukToUS[w]; ok {
			hits++
		}
	}
	if hits > 0 {
		return types.VariantUK
	}
	return types.VariantUS
}

// applyUSSpelling rewrites UK variants in lowered text to the US form.
func applyUSSpelling(lowered string) string {
	return wordRe.ReplaceAllStringFunc(lowered, func(w string) string {
		if us, ok := ukToUS[w]; ok {
			return us
		}
		return w
	})
}

// Punctuation variants the original matching collapses before tokenizing.
var punctVariants = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`\.js\b`), "js"},
	{regexp.MustCompile(`\.net\b`), "dotnet"},
	{regexp.MustCompile(`\bci/cd\b`), "cicd"},
	{regexp.MustCompile(`\bc\+\+`), "cpp"},
	{regexp.MustCompile(`\bc#`), "csharp"},
	{regexp.MustCompile(`\bf#`), "fsharp"},
}

// Canonicalize lowercases text, applies US spelling and collapses the
// punctuation variants above. It is the shared entry point for building a
// canonical stream from any raw text.
func Canonicalize(text string) string {
	lowered := strings.ToLower(text)
	lowered = applyUSSpelling(lowered)
	for _, pv := range punctVariants {
		lowered = pv.re.ReplaceAllString(lowered, pv.repl)
	}
	return lowered
}
