package types

// EntityKind classifies an extracted entity.
type EntityKind string

const (
	KindHardSkill     EntityKind = "hard_skill"
	KindSoftSkill     EntityKind = "soft_skill"
	KindTitle         EntityKind = "title"
	KindCertification EntityKind = "certification"
	KindDomain        EntityKind = "domain"
	KindMethodology   EntityKind = "methodology"
	KindTool          EntityKind = "tool"
)

// Entity is a recognized term with its canonical form. Unknown terms keep
// the surface form as canonical.
type Entity struct {
	SurfaceForm   string       `json:"surface_form"`
	CanonicalForm string       `json:"canonical_form"`
	Kind          EntityKind   `json:"kind"`
	Section       SectionLabel `json:"section,omitempty"`
}

// RequirementStrength marks how strongly a JD demands a requirement.
type RequirementStrength string

const (
	StrengthCritical  RequirementStrength = "critical"
	StrengthPreferred RequirementStrength = "preferred"
)

// Requirement is a JD-only entity annotated with demand strength and the
// number of stopword-filtered occurrences in the JD.
type Requirement struct {
	Entity
	Strength  RequirementStrength `json:"strength"`
	Frequency int                 `json:"frequency"`
}

// ExtractedEntities is the EntityExtractor output for one document.
type ExtractedEntities struct {
	Entities []Entity `json:"entities"`
	// Requirements is populated only for JDs.
	Requirements []Requirement `json:"requirements,omitempty"`
	// YearsExperience is the sum of non-overlapping dated spans in
	// Experience entries (CV), or the years demanded by the JD.
	YearsExperience int `json:"years_experience"`
	// YearsLowConfidence is set when more than half of the dated entries
	// failed to parse.
	YearsLowConfidence bool `json:"years_low_confidence,omitempty"`
}

// CanonicalSet returns the set of canonical forms, lowercased.
func (x *ExtractedEntities) CanonicalSet() map[string]bool {
	set := make(map[string]bool, len(x.Entities))
	for _, e := range x.Entities {
		set[e.CanonicalForm] = true
	}
	return set
}

// ByKind returns all entities of the given kind.
func (x *ExtractedEntities) ByKind(kind EntityKind) []Entity {
	var out []Entity
	for _, e := range x.Entities {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
