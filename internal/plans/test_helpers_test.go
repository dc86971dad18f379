package plans

import (
	"testing"

	"jumpshot-backend/internal/catalog"
	"jumpshot-backend/internal/recommendations"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c
}

func testIssues(t *testing.T, c *catalog.Catalog, ids ...string) []catalog.Issue {
	t.Helper()
	out := make([]catalog.Issue, 0, len(ids))
	for _, id := range ids {
		issue, ok := c.IssueByID(id)
		if !ok {
			t.Fatalf("issue %s missing from catalog", id)
		}
		out = append(out, issue)
	}
	return out
}

func testPool(t *testing.T, c *catalog.Catalog, level catalog.SkillLevel, issueIDs ...string) ([]catalog.Issue, recommendations.Pool) {
	t.Helper()
	issues := testIssues(t, c, issueIDs...)
	return issues, recommendations.NewEngine(c).Recommend(issues, level)
}

func isWatchOnly(entry DrillEntry) bool {
	return entry.Sets == WatchSets
}
