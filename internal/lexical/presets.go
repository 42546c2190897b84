package lexical

import (
	"fmt"
	"math"

	"github.com/jonathan/ats-engine/internal/types"
)

// Weights assigns a relative weight to each scoring category. Callers pick
// a preset or supply explicit weights; weights that do not sum to 1.0 are
// normalized with a warning rather than rejected.
type Weights struct {
	CriticalKeywords float64 `json:"critical_keywords" validate:"gte=0"`
	Required         float64 `json:"required" validate:"gte=0"`
	HardSkills       float64 `json:"hard_skills" validate:"gte=0"`
	SoftSkills       float64 `json:"soft_skills" validate:"gte=0"`
	Preferred        float64 `json:"preferred" validate:"gte=0"`
	Certifications   float64 `json:"certifications" validate:"gte=0"`
	IndustryTerms    float64 `json:"industry_terms" validate:"gte=0"`
}

// Named presets. Technical leans on hard skills, leadership on soft skills
// and industry context, junior rewards certifications and nice-to-haves a
// junior candidate can realistically show.
var (
	PresetTechnical = Weights{
		CriticalKeywords: 0.20,
		Required:         0.15,
		HardSkills:       0.30,
		SoftSkills:       0.05,
		Preferred:        0.10,
		Certifications:   0.10,
		IndustryTerms:    0.10,
	}

	PresetLeadership = Weights{
		CriticalKeywords: 0.20,
		Required:         0.15,
		HardSkills:       0.10,
		SoftSkills:       0.25,
		Preferred:        0.10,
		Certifications:   0.05,
		IndustryTerms:    0.15,
	}

	PresetJunior = Weights{
		CriticalKeywords: 0.15,
		Required:         0.10,
		HardSkills:       0.20,
		SoftSkills:       0.10,
		Preferred:        0.20,
		Certifications:   0.20,
		IndustryTerms:    0.05,
	}
)

// PresetByName returns the named preset, defaulting to technical for an
// empty name. Unknown names return an error so a typo does not silently
// score with the wrong profile.
func PresetByName(name string) (Weights, error) {
	switch name {
	case "", "technical":
		return PresetTechnical, nil
	case "leadership":
		return PresetLeadership, nil
	case "junior":
		return PresetJunior, nil
	default:
		return Weights{}, fmt.Errorf("unknown weight preset %q", name)
	}
}

func (w Weights) of(cat types.Category) float64 {
	switch cat {
	case types.CategoryCriticalKeywords:
		return w.CriticalKeywords
	case types.CategoryRequired:
		return w.Required
	case types.CategoryHardSkills:
		return w.HardSkills
	case types.CategorySoftSkills:
		return w.SoftSkills
	case types.CategoryPreferred:
		return w.Preferred
	case types.CategoryCertifications:
		return w.Certifications
	case types.CategoryIndustryTerms:
		return w.IndustryTerms
	}
	return 0
}

func (w Weights) sum() float64 {
	total := 0.0
	for _, cat := range types.Categories {
		total += w.of(cat)
	}
	return total
}

// Normalized scales the weights to sum to 1.0. The second return reports
// whether scaling was needed, which the matcher surfaces as a ConfigWarning.
func (w Weights) Normalized() (Weights, bool) {
	total := w.sum()
	if total <= 0 {
		return PresetTechnical, true
	}
	if math.Abs(total-1.0) < 1e-9 {
		return w, false
	}
	return Weights{
		CriticalKeywords: w.CriticalKeywords / total,
		Required:         w.Required / total,
		HardSkills:       w.HardSkills / total,
		SoftSkills:       w.SoftSkills / total,
		Preferred:        w.Preferred / total,
		Certifications:   w.Certifications / total,
		IndustryTerms:    w.IndustryTerms / total,
	}, true
}
