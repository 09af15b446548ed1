package history

import "testing"

func historyFixture() []Entry {
	return []Entry{
		{ID: 1, Title: "Midnight Harbor"},
		{ID: 2, Title: "Silent Orchard"},
		{ID: 3, Title: "Harbor Lights"},
		{ID: 4, Title: "The Last Train"},
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantIDs []int64
	}{
		{
			name:    "EmptyQueryReturnsAll",
			query:   "",
			wantIDs: []int64{1, 2, 3, 4},
		},
		{
			name:    "WhitespaceQueryReturnsAll",
			query:   "   ",
			wantIDs: []int64{1, 2, 3, 4},
		},
		{
			name:    "CaseInsensitiveMatch",
			query:   "HARBOR",
			wantIDs: []int64{3, 1},
		},
		{
			name:    "FuzzyAbbreviation",
			query:   "slt",
			wantIDs: []int64{2},
		},
		{
			name:    "NoMatch",
			query:   "zzzz",
			wantIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(historyFixture(), tt.query)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Search(%q) returned %d entries, want %d", tt.query, len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].ID != want {
					t.Errorf("Search(%q)[%d].ID = %d, want %d", tt.query, i, got[i].ID, want)
				}
			}
		})
	}
}
