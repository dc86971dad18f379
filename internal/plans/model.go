package plans

import "time"

// PlanDays is the fixed length of every generated schedule.
const PlanDays = 14

// Sentinel volume values for watch-only content.
const (
	WatchSets = "N/A"
	WatchReps = "Watch & Understand"
)

// VideoRef points a drill entry at its catalog video.
type VideoRef struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type,omitempty"`
}

// DrillEntry is one scheduled content item inside a day. Explanation items
// carry the watch-only sentinels in Sets and Reps.
type DrillEntry struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Sets        string    `json:"sets"`
	Reps        string    `json:"reps"`
	Focus       string    `json:"focus"`
	Explanation string    `json:"explanation"`
	Video       *VideoRef `json:"video,omitempty"`
}

// DayPlan is one of the fourteen scheduled days.
type DayPlan struct {
	Day         int          `json:"day"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Drills      []DrillEntry `json:"drills"`
	Notes       string       `json:"notes"`
}

// TrainingPlan is the document handed to rendering clients.
type TrainingPlan struct {
	Title        string    `json:"title"`
	Introduction string    `json:"introduction"`
	Issues       []string  `json:"issues"`
	Days         []DayPlan `json:"days"`
}

// Plan is the persistence envelope around a generated TrainingPlan.
type Plan struct {
	ID             string       `json:"id"`
	PlayerName     string       `json:"playerName"`
	SkillLevel     string       `json:"skillLevel"`
	InputText      string       `json:"inputText"`
	IssueIDs       []string     `json:"issueIds"`
	Document       TrainingPlan `json:"document"`
	CatalogVersion string       `json:"catalogVersion"`
	CreatedAt      time.Time    `json:"createdAt"`
}
