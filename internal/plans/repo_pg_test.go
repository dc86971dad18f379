package plans

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	plan := Plan{
		ID:             "plan-1",
		PlayerName:     "Jordan",
		SkillLevel:     "intermediate",
		InputText:      "flat shot",
		IssueIDs:       []string{"low-arc"},
		Document:       TrainingPlan{Title: "Two-Week Low Arc Improvement Program"},
		CatalogVersion: "2024-05-01",
		CreatedAt:      time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO plans").
		WithArgs(
			plan.ID,
			plan.PlayerName,
			plan.SkillLevel,
			plan.InputText,
			sqlmock.AnyArg(), // issues jsonb
			sqlmock.AnyArg(), // document jsonb
			plan.CatalogVersion,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), plan); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC().Truncate(time.Second)
	rows := sqlmock.NewRows([]string{
		"id", "player_name", "skill_level", "input_text", "issues", "document", "catalog_version", "created_at",
	}).AddRow(
		"plan-1", "Jordan", "intermediate", "flat shot",
		[]byte(`["low-arc"]`),
		[]byte(`{"title":"Two-Week Low Arc Improvement Program","introduction":"","issues":["Low Arc"],"days":[]}`),
		"2024-05-01", created,
	)
	mock.ExpectQuery("SELECT id, player_name").
		WithArgs("plan-1").
		WillReturnRows(rows)

	plan, err := repo.GetByID(context.Background(), "plan-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if plan.ID != "plan-1" || plan.PlayerName != "Jordan" {
		t.Fatalf("plan = %+v", plan)
	}
	if len(plan.IssueIDs) != 1 || plan.IssueIDs[0] != "low-arc" {
		t.Fatalf("issue ids = %v", plan.IssueIDs)
	}
	if plan.Document.Title == "" {
		t.Fatalf("document not decoded")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, player_name").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "player_name", "skill_level", "input_text", "issues", "document", "catalog_version", "created_at",
		}))

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
