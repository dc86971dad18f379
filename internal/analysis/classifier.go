package analysis

import (
	"sort"
	"strings"

	"jumpshot-backend/internal/catalog"
)

const maxIdentifiedIssues = 5

// Terms that signal a shooting problem without naming a specific issue.
var distressTerms = []string{
	"inconsistent", "poor", "problem", "issue", "struggle", "bad", "trouble",
}

// Issue ids returned when the text describes distress but matches nothing
// specific.
var fallbackIssueIDs = []string{"consistency", "balance-issues", "rhythm"}

// Classifier scores free text against the issue catalog.
type Classifier struct {
	catalog *catalog.Catalog
}

// NewClassifier constructs a Classifier over the given catalog.
func NewClassifier(c *catalog.Catalog) *Classifier {
	return &Classifier{catalog: c}
}

type scoredIssue struct {
	issue catalog.Issue
	score int
	index int
}

// Classify returns up to five issues matched in the description, ordered by
// descending match score with catalog order as the tie-break. When nothing
// matches but the text contains generic distress terms, a fixed fallback set
// is returned instead of an empty result.
func (cl *Classifier) Classify(description string) []catalog.Issue {
	normalized := strings.ToLower(description)
	phrases := slidingPhrases(normalized)

	scored := make([]scoredIssue, 0, maxIdentifiedIssues)
	for i, issue := range cl.catalog.Issues() {
		score := scoreIssue(issue, normalized, phrases)
		if score > 0 {
			scored = append(scored, scoredIssue{issue: issue, score: score, index: i})
		}
	}

	if len(scored) == 0 {
		if containsAny(normalized, distressTerms) {
			return cl.resolveIDs(fallbackIssueIDs)
		}
		return nil
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})
	if len(scored) > maxIdentifiedIssues {
		scored = scored[:maxIdentifiedIssues]
	}

	out := make([]catalog.Issue, 0, len(scored))
	for _, item := range scored {
		out = append(out, item.issue)
	}
	return out
}

// Score scores a single issue against the description. Exposed for tests
// asserting the weighting contract.
func (cl *Classifier) Score(issue catalog.Issue, description string) int {
	normalized := strings.ToLower(description)
	return scoreIssue(issue, normalized, slidingPhrases(normalized))
}

func scoreIssue(issue catalog.Issue, normalized string, phrases []string) int {
	score := 0
	for _, keyword := range issue.Keywords {
		keywordLower := strings.ToLower(keyword)
		for _, phrase := range phrases {
			if strings.Contains(phrase, keywordLower) {
				score++
			}
		}
	}

	// Naming the issue outright is a strong signal.
	if strings.Contains(normalized, strings.ToLower(issue.Name)) {
		score += 3
	}
	readableID := strings.ReplaceAll(issue.ID, "-", " ")
	if strings.Contains(normalized, readableID) {
		score += 2
	}
	return score
}

// slidingPhrases generates all 1-, 2-, and 3-word windows over the text.
func slidingPhrases(normalized string) []string {
	words := strings.Fields(normalized)
	phrases := make([]string, 0, len(words)*3)
	for i := range words {
		phrases = append(phrases, words[i])
		if i+1 < len(words) {
			phrases = append(phrases, words[i]+" "+words[i+1])
		}
		if i+2 < len(words) {
			phrases = append(phrases, words[i]+" "+words[i+1]+" "+words[i+2])
		}
	}
	return phrases
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func (cl *Classifier) resolveIDs(ids []string) []catalog.Issue {
	out := make([]catalog.Issue, 0, len(ids))
	for _, id := range ids {
		if issue, ok := cl.catalog.IssueByID(id); ok {
			out = append(out, issue)
		}
	}
	return out
}
