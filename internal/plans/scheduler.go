package plans

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"jumpshot-backend/internal/catalog"
	"jumpshot-backend/internal/recommendations"
)

// Days with an explanation slot: start of foundation, start of application,
// final day.
var explanationDays = map[int]bool{1: true, 8: true, 14: true}

const dayMakesTarget = 100

// Scheduler assembles the 14-day workout sequence from a recommendation
// pool. State lives only for one Schedule call: a rotation pointer over the
// issue list and a used-title set that prevents repeats within one plan.
type Scheduler struct {
	catalog *catalog.Catalog
}

// NewScheduler constructs a Scheduler over the given catalog.
func NewScheduler(c *catalog.Catalog) *Scheduler {
	return &Scheduler{catalog: c}
}

// Schedule builds exactly 14 day plans. Day n's primary issue rotates
// through the issue list; drills fill a fixed role sequence per day and are
// never repeated within the plan unless the pool runs out.
func (s *Scheduler) Schedule(playerName string, issues []catalog.Issue, pool recommendations.Pool, level catalog.SkillLevel) []DayPlan {
	if len(issues) == 0 {
		issues = s.resolveGenericIssues()
	}
	used := make(map[string]bool)
	days := make([]DayPlan, 0, PlanDays)
	for day := 1; day <= PlanDays; day++ {
		days = append(days, s.buildDay(day, playerName, issues, pool, level, used))
	}
	return days
}

// resolveGenericIssues keeps the day rotation well-defined when no issues
// reach the scheduler at all.
func (s *Scheduler) resolveGenericIssues() []catalog.Issue {
	out := make([]catalog.Issue, 0, len(genericIssueIDs))
	for _, id := range genericIssueIDs {
		if issue, ok := s.catalog.IssueByID(id); ok {
			out = append(out, issue)
		}
	}
	if len(out) == 0 {
		out = []catalog.Issue{{ID: "consistency", Name: "Consistency"}}
	}
	return out
}

func (s *Scheduler) buildDay(day int, playerName string, issues []catalog.Issue, pool recommendations.Pool, level catalog.SkillLevel, used map[string]bool) DayPlan {
	foundation := day <= 7
	primary := issues[(day-1)%len(issues)]
	secondary := make([]catalog.Issue, 0, len(issues)-1)
	for _, issue := range issues {
		if issue.ID != primary.ID {
			secondary = append(secondary, issue)
		}
	}

	var selected []recommendations.Recommendation
	if explanationDays[day] {
		if rec, ok := pickExplanation(pool.Explanations, used, primary, secondary); ok {
			used[rec.Title] = true
			selected = append(selected, rec)
		}
	}
	selected = append(selected, s.pickDrills(foundation, primary, secondary, pool.Drills, used)...)

	sortByRolePrecedence(selected)

	drillCount := 0
	for _, rec := range selected {
		if rec.Kind == recommendations.KindDrill {
			drillCount++
		}
	}
	sets, reps := volume(drillCount, foundation)

	title, description := s.dayVocabulary(primary, foundation)
	title = fmt.Sprintf("Day %d: %s", day, title)
	entries := make([]DrillEntry, 0, len(selected))
	for _, rec := range selected {
		entries = append(entries, s.entry(rec, day, foundation, playerName, primary, level, sets, reps))
	}

	return DayPlan{
		Day:         day,
		Title:       title,
		Description: description,
		Drills:      entries,
		Notes:       dayNotes(day, foundation, primary, playerName),
	}
}

// pickExplanation honors the slot gate: the pool must contain an entry
// targeting the day's primary or secondary issues at all, and selection
// prefers primary, then secondaries in order, then any unused entry.
func pickExplanation(explanations []recommendations.Recommendation, used map[string]bool, primary catalog.Issue, secondary []catalog.Issue) (recommendations.Recommendation, bool) {
	relevant := false
	for _, rec := range explanations {
		if rec.Addresses(primary.ID) {
			relevant = true
			break
		}
		for _, issue := range secondary {
			if rec.Addresses(issue.ID) {
				relevant = true
				break
			}
		}
	}
	if !relevant {
		return recommendations.Recommendation{}, false
	}

	for _, rec := range explanations {
		if !used[rec.Title] && rec.Addresses(primary.ID) {
			return rec, true
		}
	}
	for _, issue := range secondary {
		for _, rec := range explanations {
			if !used[rec.Title] && rec.Addresses(issue.ID) {
				return rec, true
			}
		}
	}
	for _, rec := range explanations {
		if !used[rec.Title] {
			return rec, true
		}
	}
	return recommendations.Recommendation{}, false
}

func (s *Scheduler) pickDrills(foundation bool, primary catalog.Issue, secondary []catalog.Issue, drills []recommendations.Recommendation, used map[string]bool) []recommendations.Recommendation {
	roles := []catalog.Role{catalog.RoleWarmup, catalog.RoleSkill, catalog.RoleSkill, catalog.RoleFinisher}
	target := 4
	if !foundation {
		roles = []catalog.Role{catalog.RoleWarmup, catalog.RoleSkill, catalog.RoleSkill, catalog.RoleSkill, catalog.RoleFinisher}
		target = 5
	}

	if len(drills) == 0 {
		return s.genericFallback()
	}

	var selected []recommendations.Recommendation
	inDay := make(map[string]bool)
	take := func(rec recommendations.Recommendation) {
		used[rec.Title] = true
		inDay[rec.Title] = true
		selected = append(selected, rec)
	}

	for _, role := range roles {
		if rec, ok := pickDrillForRole(drills, used, role, primary, secondary); ok {
			take(rec)
		}
	}

	// Backfill ignoring role until the day is full.
	for len(selected) < target {
		rec, ok := firstUnused(drills, used)
		if !ok {
			break
		}
		take(rec)
	}

	// Pool exhausted: reuse already-used titles rather than leaving the day
	// under-filled.
	for len(selected) < target {
		reused := false
		for _, rec := range drills {
			if !inDay[rec.Title] {
				inDay[rec.Title] = true
				selected = append(selected, rec)
				reused = true
				break
			}
		}
		if !reused {
			break
		}
	}
	return selected
}

func pickDrillForRole(drills []recommendations.Recommendation, used map[string]bool, role catalog.Role, primary catalog.Issue, secondary []catalog.Issue) (recommendations.Recommendation, bool) {
	for _, rec := range drills {
		if !used[rec.Title] && rec.Role == role && rec.Addresses(primary.ID) {
			return rec, true
		}
	}
	for _, issue := range secondary {
		for _, rec := range drills {
			if !used[rec.Title] && rec.Role == role && rec.Addresses(issue.ID) {
				return rec, true
			}
		}
	}
	for _, rec := range drills {
		if !used[rec.Title] && rec.Role == role {
			return rec, true
		}
	}
	return recommendations.Recommendation{}, false
}

func firstUnused(drills []recommendations.Recommendation, used map[string]bool) (recommendations.Recommendation, bool) {
	for _, rec := range drills {
		if !used[rec.Title] {
			return rec, true
		}
	}
	return recommendations.Recommendation{}, false
}

// genericFallback keeps a day functional when the pool is entirely empty.
func (s *Scheduler) genericFallback() []recommendations.Recommendation {
	titles := []struct {
		title string
		role  catalog.Role
	}{
		{"Form Shooting", catalog.RoleWarmup},
		{"1 Hand Shooting", catalog.RoleSkill},
		{"Free Throws", catalog.RoleFinisher},
	}
	out := make([]recommendations.Recommendation, 0, len(titles))
	for _, t := range titles {
		video, _ := s.catalog.VideoByTitle(t.title)
		out = append(out, recommendations.Recommendation{
			Title:       t.title,
			Video:       video,
			Kind:        recommendations.KindDrill,
			Role:        t.role,
			Complexity:  s.catalog.ComplexityFor(t.title),
			Explanation: fmt.Sprintf("%s keeps your mechanics honest when working through the fundamentals.", t.title),
		})
	}
	return out
}

func rolePrecedence(rec recommendations.Recommendation) int {
	switch rec.Role {
	case catalog.RoleExplanation:
		return 1
	case catalog.RoleWarmup:
		return 2
	case catalog.RoleSkill:
		return 3
	case catalog.RoleFinisher:
		return 4
	default:
		return 3
	}
}

func sortByRolePrecedence(recs []recommendations.Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return rolePrecedence(recs[i]) < rolePrecedence(recs[j])
	})
}

// volume sizes sets and reps so the day lands near 100 total makes.
// Foundation days favor more short sets, application days fewer long ones.
func volume(drillCount int, foundation bool) (sets, reps int) {
	if drillCount == 0 {
		return 0, 0
	}
	perDrill := float64(dayMakesTarget) / float64(drillCount)
	if foundation {
		sets = int(perDrill / 8)
		if sets < 3 {
			sets = 3
		}
	} else {
		sets = int(perDrill / 12)
		if sets < 2 {
			sets = 2
		}
	}
	reps = int(math.Ceil(perDrill / float64(sets)))
	return sets, reps
}

func (s *Scheduler) dayVocabulary(primary catalog.Issue, foundation bool) (title, description string) {
	if t, d, ok := s.catalog.DayVocabulary(primary.ID, foundation); ok {
		return t, d
	}
	if foundation {
		return fmt.Sprintf("%s Fundamentals", primary.Name),
			fmt.Sprintf("Focused foundation work on %s with controlled repetitions.", strings.ToLower(primary.Name))
	}
	return fmt.Sprintf("%s at Game Speed", primary.Name),
		fmt.Sprintf("Applying your %s work under game-like conditions.", strings.ToLower(primary.Name))
}

func dayNotes(day int, foundation bool, primary catalog.Issue, playerName string) string {
	focus := fmt.Sprintf("Applying improved %s under game-like conditions", strings.ToLower(primary.Name))
	if foundation {
		focus = fmt.Sprintf("Building proper mechanics to address %s", strings.ToLower(primary.Name))
	}
	return fmt.Sprintf("Day %d focus: %s. Remember to focus on quality repetitions rather than quantity, %s.", day, focus, playerName)
}

func (s *Scheduler) entry(rec recommendations.Recommendation, day int, foundation bool, playerName string, primary catalog.Issue, level catalog.SkillLevel, sets, reps int) DrillEntry {
	target := primary
	if !rec.Addresses(primary.ID) && len(rec.IssueIDs) > 0 {
		if issue, ok := s.catalog.IssueByID(rec.IssueIDs[0]); ok {
			target = issue
		}
	}

	entry := DrillEntry{
		Name:        rec.Title,
		Description: fmt.Sprintf("%s - %s", rec.Title, rec.Explanation),
		Focus:       fmt.Sprintf("Improving %s", target.Name),
		Explanation: s.personalizedExplanation(rec.Title, rec.Explanation, target, playerName, level, foundation, day),
	}
	if rec.Kind == recommendations.KindExplanation {
		entry.Sets = WatchSets
		entry.Reps = WatchReps
	} else {
		entry.Sets = strconv.Itoa(sets)
		entry.Reps = fmt.Sprintf("%d makes per set", reps)
	}
	if rec.Video.URL != "" {
		entry.Video = &VideoRef{Title: rec.Video.Title, URL: rec.Video.URL, Type: rec.Video.Type}
	}
	return entry
}

// personalizedExplanation assembles the coaching paragraph: skill phrase,
// base drill explanation, phase phrase, outcome, coaching-wisdom line. The
// skill and phase phrases end mid-clause and take the issue name as their
// object. Phrase choice is pseudo-random but seeded from the day, title and
// player so repeated generations are identical.
func (s *Scheduler) personalizedExplanation(title, baseExplanation string, issue catalog.Issue, playerName string, level catalog.SkillLevel, foundation bool, day int) string {
	rng := rand.New(rand.NewSource(seed(day, title, playerName)))
	issueName := strings.ToLower(issue.Name)

	skill := pickPhrase(rng, s.catalog.SkillPhrases(level))
	phase := pickPhrase(rng, s.catalog.PhasePhrases(foundation))
	outcome := pickPhrase(rng, s.catalog.OutcomePhrases())
	outcome = strings.ReplaceAll(outcome, "{player}", playerName)
	outcome = strings.ReplaceAll(outcome, "{issue}", issueName)
	wisdom := pickPhrase(rng, s.catalog.WisdomPhrases())

	parts := make([]string, 0, 5)
	if skill != "" {
		parts = append(parts, fmt.Sprintf("%s %s.", skill, issueName))
	}
	if baseExplanation != "" {
		parts = append(parts, baseExplanation)
	}
	if phase != "" {
		parts = append(parts, fmt.Sprintf("%s %s.", phase, issueName))
	}
	for _, p := range []string{outcome, wisdom} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func pickPhrase(rng *rand.Rand, phrases []string) string {
	if len(phrases) == 0 {
		return ""
	}
	return phrases[rng.Intn(len(phrases))]
}

func seed(day int, title, playerName string) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%s|%s", day, title, playerName)
	return int64(h.Sum64())
}
