package recommendations

import (
	"fmt"
	"net/url"
	"sort"

	"jumpshot-backend/internal/catalog"
)

// Engine maps ranked issues to scored catalog content for one skill level.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine constructs an Engine over the given catalog.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Recommend builds the drill and explanation pools for the ranked issue
// list. Earlier issues and earlier progression positions score higher:
// each occurrence adds max(1, 3-issueRank) * max(1, 5-position)/5, and a
// title seen under a second issue merges at half weight instead of
// duplicating. Explanation content is included only when it addresses at
// least one of the stated issues.
func (e *Engine) Recommend(issues []catalog.Issue, level catalog.SkillLevel) Pool {
	byTitle := make(map[string]*Recommendation)
	var order []string

	for rank, issue := range issues {
		for pos, title := range e.catalog.ProgressionFor(issue.ID, level) {
			contribution := weight(rank, pos)
			if existing, seen := byTitle[title]; seen {
				e.merge(existing, issue, contribution)
				continue
			}
			rec := e.newRecommendation(title, issue)
			rec.Relevance = contribution
			byTitle[title] = rec
			order = append(order, title)
		}
	}

	// Conceptual videos are looked up by the issues they document, not by
	// progression position.
	for _, title := range e.catalog.ExplanationTitles() {
		targets := e.catalog.ExplanationTargets(title)
		for rank, issue := range issues {
			if !containsID(targets, issue.ID) {
				continue
			}
			contribution := weight(rank, 0)
			if existing, seen := byTitle[title]; seen {
				e.merge(existing, issue, contribution)
				continue
			}
			rec := e.newRecommendation(title, issue)
			rec.Relevance = contribution
			byTitle[title] = rec
			order = append(order, title)
		}
	}

	var pool Pool
	for _, title := range order {
		rec := byTitle[title]
		if rec.Kind == KindExplanation {
			pool.Explanations = append(pool.Explanations, *rec)
		} else {
			pool.Drills = append(pool.Drills, *rec)
		}
	}
	sortByRelevance(pool.Drills)
	sortByRelevance(pool.Explanations)
	return pool
}

func weight(issueRank, position int) float64 {
	issueWeight := 3 - issueRank
	if issueWeight < 1 {
		issueWeight = 1
	}
	positionWeight := 5 - position
	if positionWeight < 1 {
		positionWeight = 1
	}
	return float64(issueWeight) * float64(positionWeight) / 5
}

func (e *Engine) newRecommendation(title string, issue catalog.Issue) *Recommendation {
	video, ok := e.catalog.VideoByTitle(title)
	if !ok {
		// A progression title with no catalog entry still has to yield a
		// complete recommendation.
		video = placeholderVideo(title)
	}

	kind := KindDrill
	role := e.catalog.RoleFor(title)
	if e.catalog.IsExplanation(title) {
		kind = KindExplanation
		role = catalog.RoleExplanation
	}

	explanation, ok := e.catalog.DrillExplanation(title, issue.ID)
	if !ok {
		explanation = fmt.Sprintf("%s builds the habits that correct %s through focused repetition.", title, issue.Name)
	}

	return &Recommendation{
		Title:       title,
		Video:       video,
		Kind:        kind,
		Role:        role,
		Complexity:  e.catalog.ComplexityFor(title),
		IssueIDs:    []string{issue.ID},
		Explanation: explanation,
	}
}

func containsID(ids []string, id string) bool {
	for _, have := range ids {
		if have == id {
			return true
		}
	}
	return false
}

func (e *Engine) merge(rec *Recommendation, issue catalog.Issue, contribution float64) {
	if rec.Addresses(issue.ID) {
		return
	}
	rec.Relevance += contribution / 2
	rec.IssueIDs = append(rec.IssueIDs, issue.ID)
	rec.Explanation = fmt.Sprintf("%s This also helps with %s.", rec.Explanation, issue.Name)
}

func placeholderVideo(title string) catalog.Video {
	return catalog.Video{
		Title: title,
		URL:   "https://www.youtube.com/results?search_query=" + url.QueryEscape(title),
		Type:  "youtube",
	}
}

func sortByRelevance(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Relevance > recs[j].Relevance
	})
}
