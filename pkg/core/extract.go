package core

import (
	"strings"
	"unicode/utf8"
)

// Keywords flagging a markdown cell as an insight.
var MarkdownKeywords = []string{
	"objective", "conclusion", "insight", "finding",
	"result", "summary", "analysis", "introduction",
}

// Keywords flagging a code output as an insight.
var OutputKeywords = []string{
	"accuracy", "score", "best", "performance",
}

// Excerpt limits, in characters.
const (
	MarkdownExcerptLimit = 500
	OutputExcerptLimit   = 300
)

// ellipsis is appended to excerpts that were cut.
const ellipsis = "..."

// Extract scans the notebook cells in order and returns the insights they carry.
// Matching is a case-insensitive substring test, so "unsummarized" matches "summary".
func Extract(nb Notebook) []Insight {
	insights := []Insight{}
	for i, cell := range nb.Cells {
		switch cell.Type {
		case CellMarkdown:
			if containsAny(cell.Source, MarkdownKeywords) {
				insights = append(insights, Insight{
					CellIndex: i,
					Content:   Truncate(cell.Source, MarkdownExcerptLimit),
				})
			}
		case CellCode:
			for _, out := range cell.Outputs {
				if !out.HasText {
					continue
				}
				if containsAny(out.Text, OutputKeywords) {
					insights = append(insights, Insight{
						CellIndex: i,
						Type:      InsightOutput,
						Content:   Truncate(out.Text, OutputExcerptLimit),
					})
				}
			}
		}
	}
	return insights
}

// Truncate cuts s to limit characters and appends an ellipsis if anything was cut.
// Word boundaries are ignored.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i] + ellipsis
		}
		n++
	}
	return s
}

func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
