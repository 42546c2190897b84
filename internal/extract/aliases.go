package extract

import (
	"sort"
	"strings"
)

// canonicalAliases maps surface variants, acronyms and role-suffix forms to
// the canonical taxonomy term. Acronym equivalence is achieved by mapping
// both directions onto one canonical form, so "ML" in a JD and "Machine
// Learning" in a CV canonicalize identically.
var canonicalAliases = map[string]string{
	// acronyms and expansions
	"ml":            "machine learning",
	"ai":            "artificial intelligence",
	"dl":            "deep learning",
	"nlp":           "natural language processing",
	"seo":           "search engine optimization",
	"aws":           "amazon web services",
	"gcp":           "google cloud platform",
	"google cloud":  "google cloud platform",
	"azure":         "microsoft azure",
	"k8s":           "kubernetes",
	"js":            "javascript",
	"ts":            "typescript",
	"etl":           "extract transform load",
	"bi":            "business intelligence",
	"sre":           "site reliability engineering",
	"tdd":           "test driven development",
	"bdd":           "behavior driven development",
	"ddd":           "domain driven design",
	"oop":           "object oriented programming",
	"jwt":           "json web token",
	"sso":           "single sign-on",
	"llm":           "large language models",
	"llms":          "large language models",
	"cka":           "certified kubernetes administrator",
	"pmp":           "project management professional",
	"csm":           "certified scrum master",
	"ceh":           "certified ethical hacker",
	"xp":            "extreme programming",
	"iac":           "infrastructure as code",
	"ci/cd":         "cicd",
	"rest":          "rest api",
	"restful":       "rest api",
	"pm":            "project management",
	"hr":            "human resources",

	// product-name variants
	"ms excel":         "excel",
	"microsoft excel":  "excel",
	"golang":           "go",
	"node":             "nodejs",
	"node.js":          "nodejs",
	"react.js":         "reactjs",
	"vuejs":            "vue",
	"vue.js":           "vue",
	"postgres":         "postgresql",
	"psql":             "postgresql",
	"mongo":            "mongodb",
	"elastic":          "elasticsearch",
	"sklearn":          "scikit-learn",
	"tf":               "tensorflow",
	"vscode":           "visual studio code",
	"gh actions":       "github actions",
	"springboot":       "spring boot",
	"asp.net":          "dotnet",
	".net":             "dotnet",
	"ec2":              "amazon web services",
	"s3":               "amazon web services",
	"lambda":           "amazon web services",
}

// roleVariations fold common role-suffix forms onto one canonical token so
// "manager" in a JD matches "management" in a CV.
var roleVariations = map[string]string{
	"manager":        "management",
	"managing":       "management",
	"engineer":       "engineering",
	"developer":      "development",
	"developing":     "development",
	"analyst":        "analysis",
	"analytics":      "analysis",
	"analyzing":      "analysis",
	"architect":      "architecture",
	"architecting":   "architecture",
	"administrator":  "administration",
	"admin":          "administration",
	"consultant":     "consulting",
	"consultancy":    "consulting",
	"lead":           "leadership",
	"leader":         "leadership",
	"leading":        "leadership",
	"coordinator":    "coordination",
	"coordinating":   "coordination",
	"supervisor":     "supervision",
	"supervising":    "supervision",
}

// CanonicalForm maps a surface term to its canonical form. Unknown terms
// keep the (lowercased, trimmed) surface form.
func CanonicalForm(surface string) string {
	term := strings.ToLower(strings.TrimSpace(surface))
	if canonical, ok := canonicalAliases[term]; ok {
		return canonical
	}
	if canonical, ok := roleVariations[term]; ok {
		return canonical
	}
	return term
}

// EquivalentForms returns all surface forms that canonicalize to the same
// term as the input, the canonical form first. Used by keyword matching to
// honor acronym equivalence in either direction.
func EquivalentForms(term string) []string {
	canonical := CanonicalForm(term)
	forms := []string{canonical}
	for alias, c := range canonicalAliases {
		if c == canonical {
			forms = append(forms, alias)
		}
	}
	for variant, c := range roleVariations {
		if c == canonical {
			forms = append(forms, variant)
		}
	}
	// Deterministic order for everything derived from map iteration.
	sort.Strings(forms[1:])
	return forms
}
