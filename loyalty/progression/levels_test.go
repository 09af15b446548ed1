package progression

import (
	"reflect"
	"testing"
)

func TestLevelInfo(t *testing.T) {
	tests := []struct {
		name     string
		totalExp int64
		want     Level
	}{
		{
			name:     "ZeroExperience",
			totalExp: 0,
			want:     Level{Level: 1, Title: "Newly joined adventurer", NextThreshold: 100},
		},
		{
			name:     "JustBelowSecondTier",
			totalExp: 99,
			want:     Level{Level: 1, Title: "Newly joined adventurer", NextThreshold: 100},
		},
		{
			name:     "ExactSecondTierBoundary",
			totalExp: 100,
			want:     Level{Level: 2, Title: "Fearless explorer", NextThreshold: 250},
		},
		{
			name:     "MidThirdTier",
			totalExp: 300,
			want:     Level{Level: 3, Title: "Hero with plot-armor", NextThreshold: 500},
		},
		{
			name:     "FourthTier",
			totalExp: 500,
			want:     Level{Level: 4, Title: "Parallel-universe pioneer", NextThreshold: 1000},
		},
		{
			name:     "FifthTier",
			totalExp: 1200,
			want:     Level{Level: 5, Title: "Time-travel addict", NextThreshold: 2500},
		},
		{
			name:     "TopTierBoundary",
			totalExp: 2500,
			want:     Level{Level: 6, Title: "Sunny bright newcomer", NextThreshold: 2500},
		},
		{
			name:     "FarBeyondTopTier",
			totalExp: 999999,
			want:     Level{Level: 6, Title: "Sunny bright newcomer", NextThreshold: 2500},
		},
		{
			name:     "NegativeClampsToZero",
			totalExp: -50,
			want:     Level{Level: 1, Title: "Newly joined adventurer", NextThreshold: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LevelInfo(tt.totalExp)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LevelInfo(%d) = %+v, want %+v", tt.totalExp, got, tt.want)
			}
		})
	}
}

func TestLevelInfo_Monotonic(t *testing.T) {
	prev := LevelInfo(0).Level
	for exp := int64(1); exp <= 3000; exp++ {
		cur := LevelInfo(exp).Level
		if cur < prev {
			t.Fatalf("level dropped from %d to %d at exp %d", prev, cur, exp)
		}
		prev = cur
	}
	if prev != MaxLevel {
		t.Errorf("level at exp 3000 = %d, want %d", prev, MaxLevel)
	}
}
