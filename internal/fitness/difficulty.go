package fitness

import "strings"

const DefaultDifficultyLevel = 3

// difficultyMarkers are checked in order, the first match wins.
var difficultyMarkers = []struct {
	substrings []string
	level      int
}{
	{[]string{"легк", "начина", "начал", "beginner", "easy"}, 1},
	{[]string{"низк", "low"}, 1},
	{[]string{"средн", "medium", "intermediate"}, 3},
	{[]string{"сложн", "продви", "hard", "advanced"}, 5},
	{[]string{"эксперт", "профес", "expert"}, 5},
	{[]string{"высок", "high"}, 4},
}

// DifficultyLevel maps a free text difficulty label to an ordinal in [1, 5].
func DifficultyLevel(label string) int {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return DefaultDifficultyLevel
	}

	for _, m := range difficultyMarkers {
		for _, s := range m.substrings {
			if strings.Contains(label, s) {
				return m.level
			}
		}
	}

	return DefaultDifficultyLevel
}
