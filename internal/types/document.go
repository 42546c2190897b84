// Package types provides type definitions for structured data used throughout the ats-engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionLabel identifies a detected document section. The label set is
// closed: unknown headings fall into SectionOther.
type SectionLabel string

const (
	SectionSummary        SectionLabel = "summary"
	SectionSkills         SectionLabel = "skills"
	SectionExperience     SectionLabel = "experience"
	SectionEducation      SectionLabel = "education"
	SectionCertifications SectionLabel = "certifications"
	SectionProjects       SectionLabel = "projects"
	SectionTools          SectionLabel = "tools"
	SectionOther          SectionLabel = "other"
)

// LanguageVariant is the detected spelling variant of a document.
type LanguageVariant string

const (
	VariantUS LanguageVariant = "us"
	VariantUK LanguageVariant = "uk"
)

// Section is a contiguous region of a document assigned to one label.
// StartOffset indexes into the cleaned text the sections were detected on,
// not the original raw bytes; Raw carries the section body before
// canonicalization so evidence lookups can recover the author's wording.
type Section struct {
	Label       SectionLabel `json:"label"`
	Title       string       `json:"title,omitempty"`
	Text        string       `json:"text"`
	StartOffset int          `json:"start_offset"`
	// Raw is the section body before canonicalization, used for evidence
	// context lookups. Not part of the serialized contract.
	Raw string `json:"-"`
}

// Document is a normalized CV or JD. Immutable once produced: RawText keeps
// the original bytes, CanonicalText is the parallel lowercased stream with
// US spelling applied, and Sections partition the canonical stream.
type Document struct {
	RawText       string          `json:"-"`
	CanonicalText string          `json:"-"`
	Variant       LanguageVariant `json:"variant"`
	Sections      []Section       `json:"sections"`
}

// SectionText returns the combined canonical text of all sections carrying
// the given label, or "" when the label is absent.
func (d *Document) SectionText(label SectionLabel) string {
	var combined string
	for _, s := range d.Sections {
		if s.Label != label {
			continue
		}
		if combined != "" {
			combined += " "
		}
		combined += s.Text
	}
	return combined
}

// HasSection reports whether at least one section carries the given label.
func (d *Document) HasSection(label SectionLabel) bool {
	for _, s := range d.Sections {
		if s.Label == label {
			return true
		}
	}
	return false
}
