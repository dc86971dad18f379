package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed data/*.json
var dataFiles embed.FS

// SkillLevel identifies a progression tier.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// NormalizeSkillLevel maps raw caller input to a known skill level.
// "pro" is treated as advanced; anything unrecognized falls back to
// intermediate, matching the historical default.
func NormalizeSkillLevel(raw string) SkillLevel {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "beginner":
		return SkillBeginner
	case "intermediate":
		return SkillIntermediate
	case "advanced", "pro":
		return SkillAdvanced
	default:
		return SkillIntermediate
	}
}

// Role is a drill's position in a workout's arc.
type Role string

const (
	RoleWarmup   Role = "warmup"
	RoleSkill    Role = "skill"
	RoleFinisher Role = "finisher"

	// RoleExplanation marks conceptual video content; it never appears in
	// the role table, which maps drills only.
	RoleExplanation Role = "explanation"
)

// Issue is a catalogued shooting mechanics problem.
type Issue struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Related     []string `json:"related"`
}

// Video is a drill or explanation catalog entry.
type Video struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Progression holds the ordered drill titles for one issue per skill level.
type Progression struct {
	Beginner     []string `json:"beginner"`
	Intermediate []string `json:"intermediate"`
	Advanced     []string `json:"advanced"`
}

// ForLevel returns the ordered title list for a skill level.
func (p Progression) ForLevel(level SkillLevel) []string {
	switch level {
	case SkillBeginner:
		return p.Beginner
	case SkillAdvanced:
		return p.Advanced
	default:
		return p.Intermediate
	}
}

// ExplanationEntry marks a catalog title as conceptual explanation content
// and records which issues it addresses.
type ExplanationEntry struct {
	Title  string   `json:"title"`
	Issues []string `json:"issues"`
}

type phraseTables struct {
	Version                 string              `json:"version"`
	FoundationTitles        map[string]string   `json:"foundationTitles"`
	FoundationDescriptions  map[string]string   `json:"foundationDescriptions"`
	ApplicationTitles       map[string]string   `json:"applicationTitles"`
	ApplicationDescriptions map[string]string   `json:"applicationDescriptions"`
	SkillPhrases            map[string][]string `json:"skillPhrases"`
	PhasePhrases            map[string][]string `json:"phasePhrases"`
	OutcomePhrases          []string            `json:"outcomePhrases"`
	WisdomPhrases           []string            `json:"wisdomPhrases"`
}

// Catalog is the loaded, immutable reference data set. All lookups are
// read-only; a Catalog is safe for concurrent use.
type Catalog struct {
	version string

	issues    []Issue
	issueByID map[string]int

	videos       []Video
	videoByTitle map[string]int

	progressions map[string]Progression

	explanationOrder  []string
	explanationIssues map[string][]string

	roles      map[string]Role
	complexity map[string]int

	drillExplanations map[string]map[string]string

	phrases phraseTables
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the process-wide catalog loaded from embedded data.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load()
	})
	return defaultCatalog, defaultErr
}

// Load parses and validates the embedded reference tables.
func Load() (*Catalog, error) {
	var issuesDoc struct {
		Version string  `json:"version"`
		Issues  []Issue `json:"issues"`
	}
	if err := readData("data/issues.json", &issuesDoc); err != nil {
		return nil, err
	}

	var videosDoc struct {
		Version string  `json:"version"`
		Videos  []Video `json:"videos"`
	}
	if err := readData("data/videos.json", &videosDoc); err != nil {
		return nil, err
	}

	var progressionsDoc struct {
		Version      string                 `json:"version"`
		Progressions map[string]Progression `json:"progressions"`
	}
	if err := readData("data/progressions.json", &progressionsDoc); err != nil {
		return nil, err
	}

	var contentDoc struct {
		Version      string             `json:"version"`
		Explanations []ExplanationEntry `json:"explanations"`
		Roles        map[string]string  `json:"roles"`
		Complexity   map[string]int     `json:"complexity"`
	}
	if err := readData("data/content.json", &contentDoc); err != nil {
		return nil, err
	}

	var explanationsDoc struct {
		Version      string                       `json:"version"`
		Explanations map[string]map[string]string `json:"explanations"`
	}
	if err := readData("data/explanations.json", &explanationsDoc); err != nil {
		return nil, err
	}

	var phrases phraseTables
	if err := readData("data/phrases.json", &phrases); err != nil {
		return nil, err
	}

	c := &Catalog{
		version:           issuesDoc.Version,
		issues:            issuesDoc.Issues,
		issueByID:         make(map[string]int, len(issuesDoc.Issues)),
		videos:            videosDoc.Videos,
		videoByTitle:      make(map[string]int, len(videosDoc.Videos)),
		progressions:      progressionsDoc.Progressions,
		explanationIssues: make(map[string][]string, len(contentDoc.Explanations)),
		roles:             make(map[string]Role, len(contentDoc.Roles)),
		complexity:        contentDoc.Complexity,
		drillExplanations: explanationsDoc.Explanations,
		phrases:           phrases,
	}

	for i, issue := range c.issues {
		if _, dup := c.issueByID[issue.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate issue id %q", issue.ID)
		}
		c.issueByID[issue.ID] = i
	}
	for i, video := range c.videos {
		if _, dup := c.videoByTitle[video.Title]; dup {
			return nil, fmt.Errorf("catalog: duplicate video title %q", video.Title)
		}
		c.videoByTitle[video.Title] = i
	}
	for _, entry := range contentDoc.Explanations {
		c.explanationOrder = append(c.explanationOrder, entry.Title)
		c.explanationIssues[entry.Title] = entry.Issues
	}
	for title, raw := range contentDoc.Roles {
		c.roles[title] = Role(raw)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func readData(name string, out any) error {
	raw, err := dataFiles.ReadFile(name)
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", name, err)
	}
	return nil
}

func (c *Catalog) validate() error {
	if strings.TrimSpace(c.version) == "" {
		return fmt.Errorf("catalog: issues table missing version")
	}
	for _, issue := range c.issues {
		if issue.ID == "" || issue.Name == "" {
			return fmt.Errorf("catalog: issue with empty id or name")
		}
		if len(issue.Keywords) == 0 {
			return fmt.Errorf("catalog: issue %q has no keywords", issue.ID)
		}
		if len(issue.Related) > 4 {
			return fmt.Errorf("catalog: issue %q has more than 4 related ids", issue.ID)
		}
		for _, rel := range issue.Related {
			if _, ok := c.issueByID[rel]; !ok {
				return fmt.Errorf("catalog: issue %q references unknown related id %q", issue.ID, rel)
			}
		}
	}
	for _, video := range c.videos {
		if video.URL == "" || video.Type == "" {
			return fmt.Errorf("catalog: video %q missing url or type", video.Title)
		}
	}
	for issueID := range c.progressions {
		if _, ok := c.issueByID[issueID]; !ok {
			return fmt.Errorf("catalog: progression for unknown issue %q", issueID)
		}
	}
	for title, issues := range c.explanationIssues {
		if _, ok := c.videoByTitle[title]; !ok {
			return fmt.Errorf("catalog: explanation entry %q has no video", title)
		}
		for _, id := range issues {
			if _, ok := c.issueByID[id]; !ok {
				return fmt.Errorf("catalog: explanation %q addresses unknown issue %q", title, id)
			}
		}
	}
	for title, role := range c.roles {
		switch role {
		case RoleWarmup, RoleSkill, RoleFinisher:
		default:
			return fmt.Errorf("catalog: title %q has invalid role %q", title, role)
		}
	}
	for title, score := range c.complexity {
		if score < 1 || score > 10 {
			return fmt.Errorf("catalog: title %q complexity %d out of range", title, score)
		}
	}
	return nil
}

// Version reports the reference data version.
func (c *Catalog) Version() string { return c.version }

// Issues returns all issue definitions in catalog order.
func (c *Catalog) Issues() []Issue { return c.issues }

// IssueByID looks up an issue definition.
func (c *Catalog) IssueByID(id string) (Issue, bool) {
	i, ok := c.issueByID[id]
	if !ok {
		return Issue{}, false
	}
	return c.issues[i], true
}

// Videos returns all catalog entries in definition order.
func (c *Catalog) Videos() []Video { return c.videos }

// VideoByTitle looks up a catalog entry by its unique title.
func (c *Catalog) VideoByTitle(title string) (Video, bool) {
	i, ok := c.videoByTitle[title]
	if !ok {
		return Video{}, false
	}
	return c.videos[i], true
}

// ProgressionFor returns the ordered drill titles for an issue at a skill
// level. Missing issues yield an empty list.
func (c *Catalog) ProgressionFor(issueID string, level SkillLevel) []string {
	return c.progressions[issueID].ForLevel(level)
}

// IsExplanation reports whether a title is conceptual explanation content
// rather than a repeatable drill.
func (c *Catalog) IsExplanation(title string) bool {
	_, ok := c.explanationIssues[title]
	return ok
}

// ExplanationTargets returns the issue ids an explanation title addresses.
func (c *Catalog) ExplanationTargets(title string) []string {
	return c.explanationIssues[title]
}

// ExplanationTitles returns all explanation titles in definition order.
func (c *Catalog) ExplanationTitles() []string { return c.explanationOrder }

// RoleFor returns a drill's training role; unmapped titles are skill work.
func (c *Catalog) RoleFor(title string) Role {
	if role, ok := c.roles[title]; ok {
		return role
	}
	return RoleSkill
}

// ComplexityFor returns a title's 1-10 complexity score, defaulting to 5.
func (c *Catalog) ComplexityFor(title string) int {
	if score, ok := c.complexity[title]; ok {
		return score
	}
	return 5
}

// DrillExplanation returns the explanation string for a title/issue pair,
// falling back to the title's default entry.
func (c *Catalog) DrillExplanation(title, issueID string) (string, bool) {
	byIssue, ok := c.drillExplanations[title]
	if !ok {
		return "", false
	}
	if text, ok := byIssue[issueID]; ok {
		return text, true
	}
	if text, ok := byIssue["default"]; ok {
		return text, true
	}
	return "", false
}

// DayVocabulary returns the phase-specific day title and description for an
// issue, if the phrase tables define them.
func (c *Catalog) DayVocabulary(issueID string, foundation bool) (title, description string, ok bool) {
	if foundation {
		title, ok = c.phrases.FoundationTitles[issueID]
		description = c.phrases.FoundationDescriptions[issueID]
		return title, description, ok
	}
	title, ok = c.phrases.ApplicationTitles[issueID]
	description = c.phrases.ApplicationDescriptions[issueID]
	return title, description, ok
}

// SkillPhrases returns the explanation lead-ins for a skill level.
func (c *Catalog) SkillPhrases(level SkillLevel) []string {
	return c.phrases.SkillPhrases[string(level)]
}

// PhasePhrases returns the explanation phase sentences.
func (c *Catalog) PhasePhrases(foundation bool) []string {
	if foundation {
		return c.phrases.PhasePhrases["foundation"]
	}
	return c.phrases.PhasePhrases["application"]
}

// OutcomePhrases returns the personalized outcome templates. Templates use
// {player} and {issue} placeholders.
func (c *Catalog) OutcomePhrases() []string { return c.phrases.OutcomePhrases }

// WisdomPhrases returns the rotating coaching-wisdom sentences.
func (c *Catalog) WisdomPhrases() []string { return c.phrases.WisdomPhrases }
