package types

// Category identifies one of the fixed lexical scoring categories.
type Category string

const (
	CategoryCriticalKeywords Category = "critical_keywords"
	CategoryRequired         Category = "required"
	CategoryHardSkills       Category = "hard_skills"
	CategorySoftSkills       Category = "soft_skills"
	CategoryPreferred        Category = "preferred"
	CategoryCertifications   Category = "certifications"
	CategoryIndustryTerms    Category = "industry_terms"
)

// Categories lists all scoring categories in stable report order.
var Categories = []Category{
	CategoryCriticalKeywords,
	CategoryRequired,
	CategoryHardSkills,
	CategorySoftSkills,
	CategoryPreferred,
	CategoryCertifications,
	CategoryIndustryTerms,
}

// CategoryScore records matched/missing counts and item lists for one
// category. Invariant: Matched+Missing equals the size of the category's
// JD universe.
type CategoryScore struct {
	Matched      int      `json:"matched"`
	Missing      int      `json:"missing"`
	ItemsMatched []string `json:"items_matched"`
	ItemsMissing []string `json:"items_missing"`
}

// LexicalResult is the LexicalMatcher output.
type LexicalResult struct {
	Score           float64                    `json:"score"`
	Matched         int                        `json:"matched"`
	Total           int                        `json:"total"`
	MatchedKeywords []string                   `json:"matched_keywords"`
	MissingKeywords []string                   `json:"missing_keywords"`
	ByCategory      map[Category]CategoryScore `json:"scores_by_category"`
	Warnings        []string                   `json:"warnings,omitempty"`
}

// SemanticMatch is one JD-section to CV-section similarity pairing.
// HighValue is true iff the CV section is Experience or Projects.
type SemanticMatch struct {
	JDSection  SectionLabel `json:"jd_section"`
	CVSection  SectionLabel `json:"cv_section"`
	Similarity float64      `json:"similarity"`
	HighValue  bool         `json:"is_high_value"`
}

// SemanticAnalysis is the SemanticMatcher output. Available is false when
// the embedding provider was unreachable; Score is then 0 and its weight is
// redistributed by the HybridScorer.
type SemanticAnalysis struct {
	Available           bool                     `json:"available"`
	Score               float64                  `json:"score"`
	Matches             []SemanticMatch          `json:"top_matches"`
	SectionSimilarities map[SectionLabel]float64 `json:"section_similarities,omitempty"`
	EntitySupportRatio  float64                  `json:"entity_support_ratio"`
	HighValueMatches    int                      `json:"high_value_match_count"`
}

// EvidenceStrengthLevel classifies contextual support for a matched skill.
type EvidenceStrengthLevel string

const (
	EvidenceWeak     EvidenceStrengthLevel = "weak"
	EvidenceModerate EvidenceStrengthLevel = "moderate"
	EvidenceStrong   EvidenceStrengthLevel = "strong"
)

// EvidenceRecord is the evidence classification for one matched hard skill.
type EvidenceRecord struct {
	Skill             string                `json:"skill"`
	Strength          EvidenceStrengthLevel `json:"strength"`
	SupportingContext string                `json:"supporting_context,omitempty"`
}

// EvidenceAnalysis aggregates evidence records over the matched hard skills.
// Skills absent from the CV are gaps, not weak evidence, and are excluded
// from AverageStrength.
type EvidenceAnalysis struct {
	Records         []EvidenceRecord `json:"records"`
	StrongCount     int              `json:"strong_evidence_count"`
	ModerateCount   int              `json:"moderate_evidence_count"`
	WeakCount       int              `json:"weak_evidence_count"`
	AverageStrength float64          `json:"average_strength"`
}

// HybridScoring is the composed score breakdown.
type HybridScoring struct {
	LexicalScore         float64 `json:"lexical_score"`
	LexicalWeight        float64 `json:"lexical_weight"`
	LexicalContribution  float64 `json:"lexical_contribution"`
	SemanticScore        float64 `json:"semantic_score"`
	SemanticWeight       float64 `json:"semantic_weight"`
	SemanticContribution float64 `json:"semantic_contribution"`
	EvidenceScore        float64 `json:"evidence_score"`
	EvidenceWeight       float64 `json:"evidence_weight"`
	EvidenceContribution float64 `json:"evidence_contribution"`
	FinalScore           float64 `json:"final_score"`
	SemanticAvailable    bool    `json:"semantic_available"`
}

// Eligibility is the gated eligibility label. Gates never zero the score;
// they only set this label so scores stay comparable across re-runs.
type Eligibility string

const (
	Eligible    Eligibility = "eligible"
	AtRisk      Eligibility = "at_risk"
	NotEligible Eligibility = "not_eligible"
)

// SectionAnalysis summarizes where JD skills were found in the CV.
type SectionAnalysis struct {
	ExperienceMatches  []string `json:"experience_matches"`
	SkillsMatches      []string `json:"skills_matches"`
	ProjectsMatches    []string `json:"projects_matches"`
	NotFoundInCV       []string `json:"not_found_in_cv"`
	CVSectionsDetected int      `json:"cv_sections_detected"`
	JDSectionsDetected int      `json:"jd_sections_detected"`
}

// ParsedEntitiesSummary exposes the extracted entities a caller may render.
type ParsedEntitiesSummary struct {
	CVHardSkills      []string `json:"cv_hard_skills"`
	CVSoftSkills      []string `json:"cv_soft_skills"`
	JDRequiredSkills  []string `json:"jd_required_skills"`
	JDPreferredSkills []string `json:"jd_preferred_skills"`
	CVYearsExperience int      `json:"cv_years_experience"`
	JDYearsRequired   int      `json:"jd_years_required"`
}

// ExperienceGap compares CV years against JD years.
type ExperienceGap struct {
	CVYears int `json:"cv_years"`
	JDYears int `json:"jd_years"`
	Gap     int `json:"gap"`
}

// Suggestion is one actionable placement recommendation for a gap skill.
type Suggestion struct {
	Skill              string       `json:"skill"`
	Priority           Category     `json:"priority"`
	RecommendedSection SectionLabel `json:"recommended_section"`
	Reason             string       `json:"reason"`
}

// GapAnalysis is a read-only derived view over an ATSAnalysisResult.
type GapAnalysis struct {
	CriticalGaps          []string      `json:"critical_gaps"`
	EvidenceGaps          []string      `json:"evidence_gaps"`
	SemanticGaps          []string      `json:"semantic_gaps"`
	ExperienceGaps        ExperienceGap `json:"experience_gaps"`
	ActionableSuggestions []Suggestion  `json:"actionable_suggestions"`
}

// ATSAnalysisResult is the complete output of one scoring run. Produced
// fresh each run and never mutated in place; a caller may diff results
// across re-runs (match history is the caller's responsibility).
type ATSAnalysisResult struct {
	Score            float64                    `json:"score"`
	Matched          int                        `json:"matched"`
	Total            int                        `json:"total"`
	MissingKeywords  []string                   `json:"missing_keywords"`
	MatchedKeywords  []string                   `json:"matched_keywords"`
	ScoresByCategory map[Category]CategoryScore `json:"scores_by_category"`
	SectionAnalysis  SectionAnalysis            `json:"section_analysis"`
	EvidenceAnalysis EvidenceAnalysis           `json:"evidence_analysis"`
	ParsedEntities   ParsedEntitiesSummary      `json:"parsed_entities"`
	HybridScoring    HybridScoring              `json:"hybrid_scoring"`
	SemanticAnalysis SemanticAnalysis           `json:"semantic_analysis"`
	GapAnalysis      GapAnalysis                `json:"gap_analysis"`
	Eligibility      Eligibility                `json:"eligibility"`
	Warnings         []string                   `json:"warnings,omitempty"`
}
