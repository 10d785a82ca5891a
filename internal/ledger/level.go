package ledger

// Level is the rank shown next to a user's points.
type Level string

const (
	LevelBeginner Level = "Beginner"
	LevelExplorer Level = "Explorer"
	LevelAchiever Level = "Achiever"
	LevelMaster   Level = "Master"
	LevelLegend   Level = "Legend"
)

var thresholds = []struct {
	below int64
	level Level
}{
	{100, LevelBeginner},
	{500, LevelExplorer},
	{1000, LevelAchiever},
	{2500, LevelMaster},
}

// LevelFor maps a point total to its level.
func LevelFor(points int64) Level {
	for _, t := range thresholds {
		if points < t.below {
			return t.level
		}
	}
	return LevelLegend
}

// NextLevelAt returns the total needed for the next level, or 0 at Legend.
func NextLevelAt(points int64) int64 {
	for _, t := range thresholds {
		if points < t.below {
			return t.below
		}
	}
	return 0
}
