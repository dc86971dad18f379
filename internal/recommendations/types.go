package recommendations

import "jumpshot-backend/internal/catalog"

// Kind discriminates repeatable practice content from conceptual videos.
type Kind string

const (
	KindDrill       Kind = "drill"
	KindExplanation Kind = "explanation"
)

// Recommendation is one scored catalog entry targeted at one or more of the
// caller's issues.
type Recommendation struct {
	Title       string
	Video       catalog.Video
	Kind        Kind
	Role        catalog.Role
	Complexity  int
	Relevance   float64
	IssueIDs    []string
	Explanation string
}

// Addresses reports whether the recommendation targets the given issue.
func (r Recommendation) Addresses(issueID string) bool {
	for _, id := range r.IssueIDs {
		if id == issueID {
			return true
		}
	}
	return false
}

// Pool is the engine output, both lists sorted by descending relevance.
type Pool struct {
	Drills       []Recommendation
	Explanations []Recommendation
}
