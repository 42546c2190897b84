package normalize

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

// MaxDocumentBytes is the practical size bound for a single document.
const MaxDocumentBytes = 200 * 1024

var (
	multiSpaceRe = regexp.MustCompile(`\s+`)
	blankLinesRe = regexp.MustCompile(`\n\n\n+`)
	pageNumberRe = regexp.MustCompile(`(?i)^\s*(page\s+\d+(\s+of\s+\d+)?|\d+\s*/\s*\d+|-\s*\d+\s*-)\s*$`)
)

// Document normalizes raw text into a types.Document: whitespace cleanup,
// header/footer stripping, spelling canonicalization and section detection.
// It degrades rather than fails: the only error is InputTooLargeError.
// A document without recognizable headings becomes a single Other section.
func Document(raw string) (*types.Document, error) {
	if len(raw) > MaxDocumentBytes {
		return nil, &InputTooLargeError{Size: len(raw), Limit: MaxDocumentBytes}
	}

	cleaned := CleanText(raw)
	variant := detectVariant(strings.ToLower(cleaned))
	sections := detectSections(cleaned)

	doc := &types.Document{
		RawText:       raw,
		CanonicalText: Canonicalize(cleaned),
		Variant:       variant,
		Sections:      sections,
	}
	return doc, nil
}

// CleanText cleans and normalizes text content while preserving structure:
// line endings, trailing whitespace, repeated page headers/footers and page
// numbers, and excessive blank lines.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	repeated := repeatedLines(lines)

	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if pageNumberRe.MatchString(line) {
			continue
		}
		if trimmed != "" && repeated[trimmed] {
			continue
		}
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = blankLinesRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// repeatedLines flags short lines that occur three or more times; those are
// almost always page headers or footers leaking out of a PDF extraction.
func repeatedLines(lines []string) map[string]bool {
	counts := make(map[string]int)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || len(trimmed) > 60 {
			continue
		}
		counts[trimmed]++
	}

	flagged := make(map[string]bool)
	for line, n := range counts {
		if n >= 3 {
			flagged[line] = true
		}
	}
	return flagged
}

// cleanLine trims trailing whitespace and collapses runs of spaces while
// preserving leading indentation and bullet markers.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	indent := len(line) - len(trimmed)
	content := multiSpaceRe.ReplaceAllString(trimmed, " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}
