package progression

// Level describes one tier of the membership ladder.
type Level struct {
	Level         int
	Title         string
	NextThreshold int64
}

// The experience ladder, highest tier first. Upper bound wins.
var ladder = []struct {
	minExp int64
	level  int
	title  string
}{
	{2500, 6, "Sunny bright newcomer"},
	{1000, 5, "Time-travel addict"},
	{500, 4, "Parallel-universe pioneer"},
	{250, 3, "Hero with plot-armor"},
	{100, 2, "Fearless explorer"},
	{0, 1, "Newly joined adventurer"},
}

// LevelInfo maps accumulated experience to its ladder tier. This is the single
// source of truth for level; no other component may decide level on its own.
// Negative input is clamped to zero.
func LevelInfo(totalExp int64) Level {
	if totalExp < 0 {
		totalExp = 0
	}
	for i, tier := range ladder {
		if totalExp >= tier.minExp {
			next := tier.minExp
			if i > 0 {
				next = ladder[i-1].minExp
			}
			return Level{Level: tier.level, Title: tier.title, NextThreshold: next}
		}
	}
	// Unreachable: the bottom tier starts at zero.
	last := ladder[len(ladder)-1]
	return Level{Level: last.level, Title: last.title, NextThreshold: ladder[len(ladder)-2].minExp}
}

// MaxLevel is the top of the ladder.
const MaxLevel = 6
