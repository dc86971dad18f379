package analysis

import (
	"strings"

	"jumpshot-backend/internal/catalog"
)

// Connectives that usually start a new complaint inside one sentence.
var clauseBreaks = []string{" when ", " while ", " but ", " and ", " because "}

// ExtractDetails pulls, for each issue, the clause of the description that
// mentions it. The clause is matched on the issue display name or its id
// spelled with spaces. Issues never mentioned verbatim map to an empty
// string and are omitted.
func ExtractDetails(description string, issues []catalog.Issue) map[string]string {
	clauses := splitClauses(description)
	out := make(map[string]string)
	for _, issue := range issues {
		nameLower := strings.ToLower(issue.Name)
		readableID := strings.ReplaceAll(issue.ID, "-", " ")
		for _, clause := range clauses {
			lower := strings.ToLower(clause)
			if strings.Contains(lower, nameLower) || strings.Contains(lower, readableID) {
				out[issue.ID] = clause
				break
			}
		}
	}
	return out
}

func splitClauses(description string) []string {
	sentences := strings.FieldsFunc(description, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	})

	var clauses []string
	for _, sentence := range sentences {
		parts := []string{sentence}
		for _, sep := range clauseBreaks {
			var next []string
			for _, part := range parts {
				next = append(next, splitKeepingSeparatorless(part, sep)...)
			}
			parts = next
		}
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				clauses = append(clauses, trimmed)
			}
		}
	}
	return clauses
}

func splitKeepingSeparatorless(text, sep string) []string {
	var parts []string
	for {
		idx := indexFold(text, sep)
		if idx < 0 {
			return append(parts, text)
		}
		parts = append(parts, text[:idx])
		text = text[idx+len(sep):]
	}
}

// indexFold finds sep in text case-insensitively, returning a byte offset
// into text itself. Lowercasing the whole string first does not work here:
// some runes change byte length under ToLower, so offsets into the lowered
// copy do not line up with the original.
func indexFold(text, sep string) int {
	for i := 0; i+len(sep) <= len(text); i++ {
		if strings.EqualFold(text[i:i+len(sep)], sep) {
			return i
		}
	}
	return -1
}
