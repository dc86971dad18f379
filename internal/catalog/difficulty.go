package catalog

import "strings"

// Title/description patterns used to bucket uncategorized drills by
// difficulty. Advanced patterns are checked first since they are the most
// specific.
var (
	beginnerPatterns = []string{
		"form shooting", "1 hand", "guide hand", "ball raises", "wide stance",
		"free throws", "stabilize", "basic", "foundation", "beginner", "fundamentals",
	}
	intermediatePatterns = []string{
		"1 2 through", "ball does not stop", "catch and shoot", "jump turns",
		"momentum shots", "1 foot drops", "pullback", "dribble 1 2 step",
		"intermediate", "dds", "elevator",
	}
	advancedPatterns = []string{
		"sprint", "fake pass", "lateral movement", "180 degree", "advanced",
		"pro", "elite", "game speed", "full court", "gauntlet", "2 dribble", "reaction",
	}
)

// DifficultyFor buckets a catalog entry into a skill level based on its
// title and description.
func DifficultyFor(title, description string) SkillLevel {
	searchText := strings.ToLower(title + " " + description)

	for _, pattern := range advancedPatterns {
		if strings.Contains(searchText, pattern) {
			return SkillAdvanced
		}
	}
	for _, pattern := range intermediatePatterns {
		if strings.Contains(searchText, pattern) {
			return SkillIntermediate
		}
	}
	for _, pattern := range beginnerPatterns {
		if strings.Contains(searchText, pattern) {
			return SkillBeginner
		}
	}

	// Compound titles suggest added movement complexity.
	lower := strings.ToLower(title)
	if strings.Contains(lower, "with") || strings.Contains(lower, "turn") || strings.Contains(lower, "drop") {
		return SkillIntermediate
	}
	return SkillBeginner
}

// VideosForLevel returns catalog entries accessible at a skill level.
// Higher levels include everything below them; advanced players get the
// full catalog.
func (c *Catalog) VideosForLevel(level SkillLevel) []Video {
	if level == SkillAdvanced {
		out := make([]Video, len(c.videos))
		copy(out, c.videos)
		return out
	}
	out := make([]Video, 0, len(c.videos))
	for _, video := range c.videos {
		switch DifficultyFor(video.Title, video.Description) {
		case SkillBeginner:
			out = append(out, video)
		case SkillIntermediate:
			if level == SkillIntermediate {
				out = append(out, video)
			}
		}
	}
	return out
}
