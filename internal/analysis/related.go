package analysis

import "jumpshot-backend/internal/catalog"

const maxRelatedIssues = 3

// Expander widens an identified issue set with catalog-linked related issues.
type Expander struct {
	catalog *catalog.Catalog
}

// NewExpander constructs an Expander over the given catalog.
func NewExpander(c *catalog.Catalog) *Expander {
	return &Expander{catalog: c}
}

// Expand returns up to three issues related to the identified set. Issues
// already identified are excluded and results follow catalog definition
// order regardless of how often an id was referenced. Related ids that do
// not resolve in the catalog are skipped.
func (e *Expander) Expand(identified []catalog.Issue) []catalog.Issue {
	if len(identified) == 0 {
		return nil
	}

	have := make(map[string]bool, len(identified))
	for _, issue := range identified {
		have[issue.ID] = true
	}

	wanted := make(map[string]bool)
	for _, issue := range identified {
		for _, id := range issue.Related {
			if !have[id] {
				wanted[id] = true
			}
		}
	}
	if len(wanted) == 0 {
		return nil
	}

	out := make([]catalog.Issue, 0, maxRelatedIssues)
	for _, issue := range e.catalog.Issues() {
		if !wanted[issue.ID] {
			continue
		}
		out = append(out, issue)
		if len(out) == maxRelatedIssues {
			break
		}
	}
	return out
}
