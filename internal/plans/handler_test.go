package plans

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupPlanRouter(t *testing.T) (*gin.Engine, *MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := NewMemoryRepo()
	svc := NewService(repo, NewGenerator(testCatalog(t), false))
	handler := NewHandler(svc)

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router, repo
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestGeneratePlanEndpoint(t *testing.T) {
	router, _ := setupPlanRouter(t)

	resp := postJSON(t, router, "/api/v1/plans", GeneratePlanRequest{
		PlayerName: "Jordan",
		Issues:     []string{"my guide hand pushes the ball and I have a flat shot"},
		SkillLevel: "intermediate",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created Plan
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("response missing plan id")
	}
	if len(created.Document.Days) != PlanDays {
		t.Fatalf("got %d days, want %d", len(created.Document.Days), PlanDays)
	}

	get := httptest.NewRequest(http.MethodGet, "/api/v1/plans/"+created.ID, nil)
	getResp := httptest.NewRecorder()
	router.ServeHTTP(getResp, get)
	if getResp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", getResp.Code)
	}
}

func TestGeneratePlanRejectsEmptyIssues(t *testing.T) {
	router, _ := setupPlanRouter(t)

	resp := postJSON(t, router, "/api/v1/plans", GeneratePlanRequest{
		PlayerName: "Jordan",
		Issues:     []string{"   "},
		SkillLevel: "beginner",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	if body.Error.Code != "validation_error" {
		t.Fatalf("error code = %q", body.Error.Code)
	}
}

func TestGeneratePlanRejectsBadPlayerName(t *testing.T) {
	router, _ := setupPlanRouter(t)

	resp := postJSON(t, router, "/api/v1/plans", GeneratePlanRequest{
		PlayerName: "<script>alert(1)</script>",
		Issues:     []string{"flat shot"},
		SkillLevel: "beginner",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestGetPlanNotFound(t *testing.T) {
	router, _ := setupPlanRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/missing-id", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestListPlansEndpoint(t *testing.T) {
	router, _ := setupPlanRouter(t)

	for i := 0; i < 2; i++ {
		resp := postJSON(t, router, "/api/v1/plans", GeneratePlanRequest{
			PlayerName: "Jordan",
			Issues:     []string{"flat shot"},
			SkillLevel: "beginner",
		})
		if resp.Code != http.StatusCreated {
			t.Fatalf("seed plan %d: status %d", i, resp.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans?limit=1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var body struct {
		Plans []Plan `json:"plans"`
		Limit int    `json:"limit"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(body.Plans) != 1 || body.Limit != 1 {
		t.Fatalf("got %d plans, limit %d", len(body.Plans), body.Limit)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	router, _ := setupPlanRouter(t)

	resp := postJSON(t, router, "/api/v1/analyses", AnalyzeRequest{
		Issues: []string{"my guide hand pushes the ball and I have a flat shot"},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body AnalyzeResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(body.Issues) == 0 {
		t.Fatalf("expected identified issues")
	}
	if body.Issues[0].ID != "guide-hand-interference" {
		t.Fatalf("top issue = %s", body.Issues[0].ID)
	}
}

func TestListVideosByLevel(t *testing.T) {
	router, _ := setupPlanRouter(t)

	all := httptest.NewRecorder()
	router.ServeHTTP(all, httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil))
	if all.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", all.Code)
	}
	var allBody struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(all.Body.Bytes(), &allBody); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	beginner := httptest.NewRecorder()
	router.ServeHTTP(beginner, httptest.NewRequest(http.MethodGet, "/api/v1/videos?level=beginner", nil))
	if beginner.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", beginner.Code)
	}
	var beginnerBody struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(beginner.Body.Bytes(), &beginnerBody); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if beginnerBody.Count == 0 || beginnerBody.Count >= allBody.Count {
		t.Fatalf("beginner count = %d, all = %d", beginnerBody.Count, allBody.Count)
	}
}

func TestAnalyzeEndpointRejectsEmpty(t *testing.T) {
	router, _ := setupPlanRouter(t)

	resp := postJSON(t, router, "/api/v1/analyses", AnalyzeRequest{Issues: []string{""}})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}
