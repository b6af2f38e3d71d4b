package domain

import "strings"

type RecordID string

// Difficulty is how hard the user rates the topic.
type Difficulty string

const (
	DifficultyVeryHard Difficulty = "Very Hard"
	DifficultyHard     Difficulty = "Hard"
	DifficultyMedium   Difficulty = "Medium"
	DifficultyEasy     Difficulty = "Easy"
)

// ParseDifficulty maps free-form user input to a Difficulty.
// Unrecognized values fall through to Easy so downstream heuristics
// always have a branch to take.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "very hard":
		return DifficultyVeryHard
	case "hard", "difficult":
		return DifficultyHard
	case "medium", "okay":
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}

// Mood is the user's current energy/mood.
type Mood string

const (
	MoodFocused       Mood = "Focused"
	MoodTired         Mood = "Tired"
	MoodStressed      Mood = "Stressed"
	MoodLowMotivation Mood = "Low Motivation"
)

// ParseMood maps free-form user input to a Mood, defaulting to Focused.
func ParseMood(s string) Mood {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tired":
		return MoodTired
	case "stressed":
		return MoodStressed
	case "low motivation", "low":
		return MoodLowMotivation
	default:
		return MoodFocused
	}
}

// IsLow reports whether the mood calls for rest and short sessions first.
func (m Mood) IsLow() bool {
	return m == MoodTired || m == MoodStressed || m == MoodLowMotivation
}

// TimeBucket groups the available minutes into the three session styles
// the plan heuristics distinguish.
type TimeBucket string

const (
	BucketMicro TimeBucket = "micro" // under 30 min
	BucketFocus TimeBucket = "focus" // 30 to 89 min
	BucketDeep  TimeBucket = "deep"  // 90 min and up
)

// BucketForMinutes returns the TimeBucket for the given minutes.
func BucketForMinutes(minutes int) TimeBucket {
	switch {
	case minutes < 30:
		return BucketMicro
	case minutes < 90:
		return BucketFocus
	default:
		return BucketDeep
	}
}
