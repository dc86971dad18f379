package plans

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"jumpshot-backend/internal/analysis"
	"jumpshot-backend/internal/catalog"
	"jumpshot-backend/internal/shared/metrics"
	"jumpshot-backend/internal/shared/telemetry"
	"jumpshot-backend/internal/shared/util"
)

// Service runs plan generation and persists the results.
type Service struct {
	Repo      Repo
	Generator *Generator
}

// NewService constructs a Service.
func NewService(repo Repo, generator *Generator) *Service {
	return &Service{Repo: repo, Generator: generator}
}

// Generate runs the pipeline and stores the resulting plan.
func (s *Service) Generate(ctx context.Context, playerName string, rawIssues []string, skillLevel string, opts GenerateOptions) (Plan, error) {
	start := metrics.NowMillis()

	generation, err := s.Generator.Generate(playerName, rawIssues, skillLevel, opts)
	if err != nil {
		metrics.IncPlanFailed()
		return Plan{}, err
	}

	issueIDs := make([]string, 0, len(generation.Identified)+len(generation.Related))
	for _, issue := range generation.Identified {
		issueIDs = append(issueIDs, issue.ID)
	}
	for _, issue := range generation.Related {
		issueIDs = append(issueIDs, issue.ID)
	}

	plan := Plan{
		ID:             uuid.NewString(),
		PlayerName:     strings.TrimSpace(playerName),
		SkillLevel:     string(generation.Level),
		InputText:      joinFragments(rawIssues),
		IssueIDs:       issueIDs,
		Document:       generation.Plan,
		CatalogVersion: s.Generator.Catalog.Version(),
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, plan); err != nil {
		metrics.IncPlanFailed()
		return Plan{}, err
	}

	metrics.IncPlanGenerated()
	metrics.ObservePlanGenerationMs(metrics.NowMillis() - start)
	telemetry.Info("plan.generated", map[string]any{
		"planId":     plan.ID,
		"skillLevel": plan.SkillLevel,
		"issues":     issueIDs,
		"days":       len(plan.Document.Days),
		"inputHash":  util.HashInput(plan.InputText),
	})
	return plan, nil
}

// Get returns a stored plan by ID.
func (s *Service) Get(ctx context.Context, planID string) (Plan, error) {
	return s.Repo.GetByID(ctx, planID)
}

// List returns stored plans, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Plan, error) {
	return s.Repo.List(ctx, limit, offset)
}

// Analyze runs classification only, without building or storing a plan.
func (s *Service) Analyze(rawIssues []string) (identified, related []catalog.Issue, details map[string]string, err error) {
	joined := joinFragments(rawIssues)
	if joined == "" {
		return nil, nil, nil, ErrEmptyInput
	}
	identified = s.Generator.Classifier.Classify(joined)
	related = s.Generator.Expander.Expand(identified)
	details = analysis.ExtractDetails(joined, identified)
	return identified, related, details, nil
}
