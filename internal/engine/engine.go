// Package engine wires the full scoring pipeline: normalize both
// documents, resolve stopwords, extract entities, then run the lexical,
// semantic and evidence analyzers concurrently and compose their outputs
// into one explainable result.
package engine

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/evidence"
	"github.com/jonathan/ats-engine/internal/extract"
	"github.com/jonathan/ats-engine/internal/lexical"
	"github.com/jonathan/ats-engine/internal/logger"
	"github.com/jonathan/ats-engine/internal/normalize"
	"github.com/jonathan/ats-engine/internal/scoring"
	"github.com/jonathan/ats-engine/internal/semantic"
	"github.com/jonathan/ats-engine/internal/stopwords"
	"github.com/jonathan/ats-engine/internal/types"
)

// AnalyzeRequest is one CV/JD scoring request. CompanyName is optional;
// when empty the company is detected from the JD text. Weights, when set,
// override the preset.
type AnalyzeRequest struct {
	CVText      string
	JDText      string
	CompanyName string
	Preset      string
	Weights     *lexical.Weights
}

// Engine scores CV/JD pairs. A single Engine is safe for concurrent use;
// each run is a pure function of its inputs plus the embedding call, and
// the embedding cache is the only state shared between runs.
type Engine struct {
	cfg      *config.Config
	provider semantic.Provider
}

// New builds an engine. A nil config selects defaults; a nil provider
// disables semantic scoring through the degraded-weights path. Real
// providers are wrapped in a content-hash cache so re-scoring a lightly
// edited CV does not re-embed unchanged sections.
func New(cfg *config.Config, provider semantic.Provider) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	if provider != nil {
		if _, ok := provider.(*semantic.Cache); !ok {
			provider = semantic.NewCache(provider)
		}
	}
	return &Engine{cfg: cfg, provider: provider}
}

// Analyze runs the full pipeline for one CV/JD pair. It errors only on
// oversized input or an unknown preset; low-quality input degrades to a
// low-scoring result instead of failing.
func (e *Engine) Analyze(ctx context.Context, req AnalyzeRequest) (*types.ATSAnalysisResult, error) {
	weights, err := e.resolveWeights(req)
	if err != nil {
		return nil, err
	}

	cvDoc, err := normalize.Document(req.CVText)
	if err != nil {
		return nil, fmt.Errorf("normalize cv: %w", err)
	}
	jdDoc, err := normalize.Document(req.JDText)
	if err != nil {
		return nil, fmt.Errorf("normalize jd: %w", err)
	}

	stops := stopwords.Resolve(req.CompanyName, req.JDText)
	jdEntities := extract.FromJD(jdDoc)
	cvEntities := extract.FromDocument(cvDoc)

	logger.Debug().
		Str("company", stops.Company()).
		Int("jd_entities", len(jdEntities.Entities)).
		Int("cv_entities", len(cvEntities.Entities)).
		Msg("entities extracted")

	// The three analyzers are independent of each other; evidence works
	// off the entity overlap rather than the lexical output so all three
	// can fork here.
	matcher := lexical.NewMatcher(stops, weights)
	scorer := semantic.NewScorer(e.provider, e.cfg.EmbedTimeout())
	evidenceSkills := matchedHardSkills(jdEntities, cvEntities, stops)

	var (
		lex *types.LexicalResult
		sem *types.SemanticAnalysis
		ev  *types.EvidenceAnalysis
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lex = matcher.Match(jdEntities, cvEntities)
		return nil
	})
	g.Go(func() error {
		sem = scorer.Analyze(gctx, jdDoc, cvDoc, cvEntities)
		return nil
	})
	g.Go(func() error {
		ev = evidence.Analyze(cvDoc, evidenceSkills)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	hybridW, hybridWarning := e.hybridWeights()
	hybrid := scoring.Compose(lex, sem, ev, hybridW)
	gaps := scoring.AnalyzeGaps(scoring.GapInputs{
		Lexical:  lex,
		Semantic: sem,
		Evidence: ev,
		JD:       jdEntities,
		CVYears:  cvEntities.YearsExperience,
		JDYears:  jdEntities.YearsExperience,
	})
	eligibility := scoring.Gate(len(gaps.CriticalGaps), gaps.ExperienceGaps, e.cfg.ExperienceTolerance)

	result := &types.ATSAnalysisResult{
		Score:            hybrid.FinalScore,
		Matched:          lex.Matched,
		Total:            lex.Total,
		MissingKeywords:  lex.MissingKeywords,
		MatchedKeywords:  lex.MatchedKeywords,
		ScoresByCategory: lex.ByCategory,
		SectionAnalysis:  sectionAnalysis(lex, cvEntities, cvDoc, jdDoc),
		EvidenceAnalysis: *ev,
		ParsedEntities:   parsedEntities(cvEntities, jdEntities),
		HybridScoring:    hybrid,
		SemanticAnalysis: *sem,
		GapAnalysis:      gaps,
		Eligibility:      eligibility,
		Warnings:         warnings(lex, sem, cvEntities, hybridWarning),
	}

	logger.Debug().
		Float64("score", result.Score).
		Str("eligibility", string(result.Eligibility)).
		Msg("analysis complete")
	return result, nil
}

func (e *Engine) resolveWeights(req AnalyzeRequest) (lexical.Weights, error) {
	if req.Weights != nil {
		return *req.Weights, nil
	}
	if e.cfg.CategoryWeights != nil {
		return *e.cfg.CategoryWeights, nil
	}
	preset := req.Preset
	if preset == "" {
		preset = e.cfg.Preset
	}
	return lexical.PresetByName(preset)
}

// hybridWeights resolves the lexical/semantic/evidence split, normalizing
// a configured split that does not sum to 1.0 and reporting the warning.
func (e *Engine) hybridWeights() (scoring.HybridWeights, string) {
	w := scoring.DefaultHybridWeights()
	if e.cfg.HybridWeights != nil {
		w = *e.cfg.HybridWeights
	}
	normalized, adjusted := w.Normalized()
	if adjusted {
		return normalized, fmt.Sprintf(
			"hybrid weights summed to %.3f, normalized to 1.0", w.Sum())
	}
	return normalized, ""
}

// matchedHardSkills is the canonical hard-skill/tool overlap between JD
// and CV, the population the evidence analyzer classifies.
func matchedHardSkills(jd, cv *types.ExtractedEntities, stops *stopwords.Set) []string {
	cvSet := cv.CanonicalSet()
	seen := make(map[string]bool)
	var out []string
	for _, e := range jd.Entities {
		if e.Kind != types.KindHardSkill && e.Kind != types.KindTool {
			continue
		}
		term := e.CanonicalForm
		if seen[term] || stops.Contains(term) || !cvSet[term] {
			continue
		}
		seen[term] = true
		out = append(out, term)
	}
	return out
}

func sectionAnalysis(lex *types.LexicalResult, cvEntities *types.ExtractedEntities, cvDoc, jdDoc *types.Document) types.SectionAnalysis {
	bySection := make(map[types.SectionLabel]map[string]bool)
	for _, e := range cvEntities.Entities {
		if bySection[e.Section] == nil {
			bySection[e.Section] = make(map[string]bool)
		}
		bySection[e.Section][e.CanonicalForm] = true
	}

	pick := func(label types.SectionLabel) []string {
		var out []string
		for _, term := range lex.MatchedKeywords {
			if bySection[label][term] {
				out = append(out, term)
			}
		}
		return out
	}

	return types.SectionAnalysis{
		ExperienceMatches:  pick(types.SectionExperience),
		SkillsMatches:      pick(types.SectionSkills),
		ProjectsMatches:    pick(types.SectionProjects),
		NotFoundInCV:       lex.MissingKeywords,
		CVSectionsDetected: len(cvDoc.Sections),
		JDSectionsDetected: len(jdDoc.Sections),
	}
}

func parsedEntities(cv, jd *types.ExtractedEntities) types.ParsedEntitiesSummary {
	collect := func(x *types.ExtractedEntities, kinds ...types.EntityKind) []string {
		want := make(map[types.EntityKind]bool, len(kinds))
		for _, k := range kinds {
			want[k] = true
		}
		seen := make(map[string]bool)
		var out []string
		for _, e := range x.Entities {
			if want[e.Kind] && !seen[e.CanonicalForm] {
				seen[e.CanonicalForm] = true
				out = append(out, e.CanonicalForm)
			}
		}
		sort.Strings(out)
		return out
	}

	byStrength := func(strength types.RequirementStrength) []string {
		seen := make(map[string]bool)
		var out []string
		for _, r := range jd.Requirements {
			if r.Strength == strength && !seen[r.CanonicalForm] {
				seen[r.CanonicalForm] = true
				out = append(out, r.CanonicalForm)
			}
		}
		sort.Strings(out)
		return out
	}

	return types.ParsedEntitiesSummary{
		CVHardSkills:      collect(cv, types.KindHardSkill, types.KindTool),
		CVSoftSkills:      collect(cv, types.KindSoftSkill),
		JDRequiredSkills:  byStrength(types.StrengthCritical),
		JDPreferredSkills: byStrength(types.StrengthPreferred),
		CVYearsExperience: cv.YearsExperience,
		JDYearsRequired:   jd.YearsExperience,
	}
}

func warnings(lex *types.LexicalResult, sem *types.SemanticAnalysis, cvEntities *types.ExtractedEntities, hybridWarning string) []string {
	var out []string
	out = append(out, lex.Warnings...)
	if hybridWarning != "" {
		out = append(out, hybridWarning)
	}
	if !sem.Available {
		out = append(out, "semantic scoring unavailable; its weight was redistributed to lexical and evidence")
	}
	if cvEntities.YearsLowConfidence {
		out = append(out, "cv years of experience is low confidence: most dated entries failed to parse")
	}
	return out
}
