package plans

import (
	"fmt"
	"strings"

	"jumpshot-backend/internal/catalog"
)

// Assemble packages the day list into the final plan document. The title
// leads with the top-ranked issue and the introduction templates the player
// name over the full issue list.
func Assemble(playerName string, issues []catalog.Issue, days []DayPlan) TrainingPlan {
	names := make([]string, 0, len(issues))
	for _, issue := range issues {
		names = append(names, issue.Name)
	}

	topIssue := "Jump Shot"
	if len(names) > 0 {
		topIssue = names[0]
	}

	intro := fmt.Sprintf(
		"Welcome to your personalized jump shot training program, %s! This 2-week course is specifically designed to address your shooting issues: %s. Each day targets specific issues with targeted drills and video demonstrations. The program progresses from fundamental mechanics in Week 1 to game application in Week 2, ensuring you build proper form before applying it under pressure.",
		playerName, strings.Join(names, ", "),
	)

	return TrainingPlan{
		Title:        fmt.Sprintf("Two-Week %s Improvement Program", topIssue),
		Introduction: intro,
		Issues:       names,
		Days:         days,
	}
}
