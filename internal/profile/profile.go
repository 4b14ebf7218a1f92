package profile

import "fmt"

// Level names one of the fixed quality/size tradeoff profiles.
type Level string

const (
	HighQuality Level = "high_quality"
	Balanced    Level = "balanced"
	Aggressive  Level = "aggressive"
)

// DefaultLevel is used when the caller does not pick a profile.
const DefaultLevel = Balanced

// Profile is a resolved (resolution, quality) parameter pair.
// Resolution is the rasterization density in dots per inch; Quality is the
// JPEG quality in [1,100].
type Profile struct {
	Level      Level
	Resolution int
	Quality    int
}

var table = map[Level]Profile{
	HighQuality: {Level: HighQuality, Resolution: 150, Quality: 90},
	Balanced:    {Level: Balanced, Resolution: 120, Quality: 70},
	Aggressive:  {Level: Aggressive, Resolution: 100, Quality: 50},
}

// Resolve maps a level to its fixed parameters. Unknown or empty levels
// fall back to Balanced, so there is no error path.
func Resolve(level Level) Profile {
	if p, ok := table[level]; ok {
		return p
	}
	return table[DefaultLevel]
}

// Levels returns the known levels in descending quality order.
func Levels() []Level {
	return []Level{HighQuality, Balanced, Aggressive}
}

// Parse validates a user-supplied profile name. An empty string selects the
// default; anything outside the closed set is rejected so typos on the CLI
// or in a request do not silently compress at the wrong settings.
func Parse(s string) (Level, error) {
	switch Level(s) {
	case "":
		return DefaultLevel, nil
	case HighQuality, Balanced, Aggressive:
		return Level(s), nil
	default:
		return "", fmt.Errorf("unknown profile %q (want one of high_quality, balanced, aggressive)", s)
	}
}
