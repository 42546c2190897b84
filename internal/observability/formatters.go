// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreSummary outputs a human-readable summary of the hybrid score.
func (p *Printer) PrintScoreSummary(result *types.ATSAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Final score:  %.1f / 100\n", result.Score))
	sb.WriteString(fmt.Sprintf("Eligibility:  %s\n", result.Eligibility))
	sb.WriteString(fmt.Sprintf("Keywords:     %d of %d matched\n", result.Matched, result.Total))
	sb.WriteString("\n")

	h := result.HybridScoring
	sb.WriteString(fmt.Sprintf("Lexical:   %.1f × %.2f = %.1f\n", h.LexicalScore, h.LexicalWeight, h.LexicalContribution))
	if h.SemanticAvailable {
		sb.WriteString(fmt.Sprintf("Semantic:  %.1f × %.2f = %.1f\n", h.SemanticScore, h.SemanticWeight, h.SemanticContribution))
	} else {
		sb.WriteString("Semantic:  unavailable (weight redistributed)\n")
	}
	sb.WriteString(fmt.Sprintf("Evidence:  %.1f × %.2f = %.1f", h.EvidenceScore, h.EvidenceWeight, h.EvidenceContribution))

	p.printBox("ATS MATCH SCORE", sb.String())
}

// PrintCategoryBreakdown outputs matched/missing counts per category.
func (p *Printer) PrintCategoryBreakdown(result *types.ATSAnalysisResult) {
	if result == nil || len(result.ScoresByCategory) == 0 {
		return
	}

	var sb strings.Builder
	for i, cat := range types.Categories {
		score, ok := result.ScoresByCategory[cat]
		if !ok || score.Matched+score.Missing == 0 {
			continue
		}
		if i > 0 && sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%-18s %d/%d", cat, score.Matched, score.Matched+score.Missing))
		if len(score.ItemsMissing) > 0 {
			missing := strings.Join(score.ItemsMissing, ", ")
			if len(missing) > 30 {
				missing = missing[:27] + "..."
			}
			sb.WriteString(fmt.Sprintf("  missing: %s", missing))
		}
	}
	if sb.Len() == 0 {
		return
	}

	p.printBox("CATEGORY BREAKDOWN", sb.String())
}

// PrintGaps outputs the gap analysis with placement suggestions.
func (p *Printer) PrintGaps(result *types.ATSAnalysisResult) {
	if result == nil {
		return
	}
	gaps := result.GapAnalysis

	var sb strings.Builder
	if len(gaps.CriticalGaps) > 0 {
		sb.WriteString(fmt.Sprintf("Critical gaps: %s\n", strings.Join(gaps.CriticalGaps, ", ")))
	}
	if len(gaps.EvidenceGaps) > 0 {
		sb.WriteString(fmt.Sprintf("Weak evidence: %s\n", strings.Join(gaps.EvidenceGaps, ", ")))
	}
	if gaps.ExperienceGaps.Gap > 0 {
		sb.WriteString(fmt.Sprintf("Experience:    %d years short (%d vs %d required)\n",
			gaps.ExperienceGaps.Gap, gaps.ExperienceGaps.CVYears, gaps.ExperienceGaps.JDYears))
	}

	if len(gaps.ActionableSuggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := len(gaps.ActionableSuggestions)
		if count > maxItemsToShow {
			count = maxItemsToShow
		}
		for i := 0; i < count; i++ {
			s := gaps.ActionableSuggestions[i]
			sb.WriteString(fmt.Sprintf("  • add %q to %s\n", s.Skill, s.RecommendedSection))
		}
		if len(gaps.ActionableSuggestions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(gaps.ActionableSuggestions)-maxItemsToShow))
		}
	}

	if sb.Len() == 0 {
		return
	}
	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}
