package plans

// GeneratePlanRequest is the POST /plans body.
type GeneratePlanRequest struct {
	PlayerName           string   `json:"playerName"`
	Issues               []string `json:"issues"`
	SkillLevel           string   `json:"skillLevel"`
	IncludeRelatedIssues *bool    `json:"includeRelatedIssues,omitempty"`
}

// AnalyzeRequest is the POST /analyses body.
type AnalyzeRequest struct {
	Issues []string `json:"issues"`
}

// IssueView is the API shape of a catalogued issue.
type IssueView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Detail      string `json:"detail,omitempty"`
}

// AnalyzeResponse is the POST /analyses reply.
type AnalyzeResponse struct {
	Issues        []IssueView `json:"issues"`
	RelatedIssues []IssueView `json:"relatedIssues"`
}
