package progression

// JoinResult reports the outcome of a successful session join.
type JoinResult struct {
	ExpAwarded  int64
	NewTotalExp int64
	LeveledUp   bool
	NewLevel    int
}
