package plans

import (
	"strings"

	"jumpshot-backend/internal/analysis"
	"jumpshot-backend/internal/catalog"
	"jumpshot-backend/internal/recommendations"
)

// Issue ids used when classification finds nothing to work with. The
// contract is to always produce a full plan, never an empty one.
var genericIssueIDs = []string{"consistency", "balance-issues", "rhythm"}

// GenerateOptions carries per-request policy overrides.
type GenerateOptions struct {
	// IncludeRelatedIssues overrides the generator default for whether
	// related issues appear in the visible issues list. Related issues
	// always widen the drill pool either way.
	IncludeRelatedIssues *bool
}

// Generation is the full output of one pipeline run.
type Generation struct {
	Plan       TrainingPlan
	Identified []catalog.Issue
	Related    []catalog.Issue
	Level      catalog.SkillLevel
	Details    map[string]string
}

// Generator runs the classification, expansion, recommendation and
// scheduling pipeline. It is stateless across calls and safe for
// concurrent use.
type Generator struct {
	Catalog              *catalog.Catalog
	Classifier           *analysis.Classifier
	Expander             *analysis.Expander
	Engine               *recommendations.Engine
	Scheduler            *Scheduler
	IncludeRelatedIssues bool
}

// NewGenerator constructs a Generator over the given catalog.
func NewGenerator(c *catalog.Catalog, includeRelatedIssues bool) *Generator {
	return &Generator{
		Catalog:              c,
		Classifier:           analysis.NewClassifier(c),
		Expander:             analysis.NewExpander(c),
		Engine:               recommendations.NewEngine(c),
		Scheduler:            NewScheduler(c),
		IncludeRelatedIssues: includeRelatedIssues,
	}
}

// Generate produces a complete 14-day plan from free-text issue fragments.
// Empty input is the only error; everything downstream degrades to
// deterministic fallbacks.
func (g *Generator) Generate(playerName string, rawIssues []string, skillLevel string, opts GenerateOptions) (Generation, error) {
	joined := joinFragments(rawIssues)
	if joined == "" {
		return Generation{}, ErrEmptyInput
	}

	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		playerName = "Player"
	}
	level := catalog.NormalizeSkillLevel(skillLevel)

	identified := g.Classifier.Classify(joined)
	if len(identified) == 0 && len(rawIssues) > 1 {
		// Retry on the first fragment alone before giving up on the text.
		identified = g.Classifier.Classify(strings.TrimSpace(rawIssues[0]))
	}
	if len(identified) == 0 {
		identified = g.resolveIssues(genericIssueIDs)
	}
	related := g.Expander.Expand(identified)

	addressed := make([]catalog.Issue, 0, len(identified)+len(related))
	addressed = append(addressed, identified...)
	addressed = append(addressed, related...)

	pool := g.Engine.Recommend(addressed, level)
	days := g.Scheduler.Schedule(playerName, addressed, pool, level)

	visible := identified
	if g.includeRelated(opts) {
		visible = addressed
	}

	return Generation{
		Plan:       Assemble(playerName, visible, days),
		Identified: identified,
		Related:    related,
		Level:      level,
		Details:    analysis.ExtractDetails(joined, identified),
	}, nil
}

func (g *Generator) includeRelated(opts GenerateOptions) bool {
	if opts.IncludeRelatedIssues != nil {
		return *opts.IncludeRelatedIssues
	}
	return g.IncludeRelatedIssues
}

func (g *Generator) resolveIssues(ids []string) []catalog.Issue {
	out := make([]catalog.Issue, 0, len(ids))
	for _, id := range ids {
		if issue, ok := g.Catalog.IssueByID(id); ok {
			out = append(out, issue)
		}
	}
	return out
}

func joinFragments(fragments []string) string {
	parts := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		if trimmed := strings.TrimSpace(fragment); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, ". ")
}
