package history

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/limelight-tw/loyalty/loyalty/database/models"
)

func TestProjector_Project_Fallbacks(t *testing.T) {
	playTime := time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		row  *models.ParticipationRecord
		want Entry
	}{
		{
			name: "FullyPopulatedRow",
			row: &models.ParticipationRecord{
				ID:               1,
				ExperienceGained: 80,
				Comment:          "great table",
				Session: &models.Session{
					HostName:        "GM Chen",
					PlayTime:        &playTime,
					BranchName:      "Riverside 2.0",
					NarrativeMemory: "the lighthouse run",
					Script: &models.Script{
						Title:    "Midnight Harbor",
						CoverURL: "https://cdn.example/midnight.jpg",
					},
				},
			},
			want: Entry{
				ID:              1,
				Title:           "Midnight Harbor",
				CoverURL:        "https://cdn.example/midnight.jpg",
				PlayedAt:        "2026-03-14 19:30",
				HostName:        "GM Chen",
				Experience:      80,
				BranchName:      "Riverside 2.0",
				NarrativeMemory: "the lighthouse run",
				Comment:         "great table",
			},
		},
		{
			name: "OrphanedRowGetsEveryFallback",
			row:  &models.ParticipationRecord{ID: 2},
			want: Entry{
				ID:         2,
				Title:      "Unknown script",
				CoverURL:   placeholderCoverURL,
				PlayedAt:   "unknown time",
				HostName:   "unknown GM",
				Experience: 50,
				BranchName: "Main venue 1.0",
			},
		},
		{
			name: "SessionWithoutScript",
			row: &models.ParticipationRecord{
				ID:               3,
				ExperienceGained: 60,
				Session: &models.Session{
					HostName: "GM Lin",
				},
			},
			want: Entry{
				ID:         3,
				Title:      "Unknown script",
				CoverURL:   placeholderCoverURL,
				PlayedAt:   "unknown time",
				HostName:   "GM Lin",
				Experience: 60,
				BranchName: "Main venue 1.0",
			},
		},
		{
			name: "BlankCoverURLFallsBack",
			row: &models.ParticipationRecord{
				ID:               4,
				ExperienceGained: 70,
				Session: &models.Session{
					Script: &models.Script{Title: "Silent Orchard", CoverURL: "   "},
				},
			},
			want: Entry{
				ID:         4,
				Title:      "Silent Orchard",
				CoverURL:   placeholderCoverURL,
				PlayedAt:   "unknown time",
				HostName:   "unknown GM",
				Experience: 70,
				BranchName: "Main venue 1.0",
			},
		},
	}

	p := NewProjector(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.projectRow(context.Background(), tt.row)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("projectRow() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProjector_Project_PreservesOrder(t *testing.T) {
	rows := []*models.ParticipationRecord{
		{ID: 30, ExperienceGained: 50},
		{ID: 20, ExperienceGained: 50},
		{ID: 10, ExperienceGained: 50},
	}

	got := NewProjector(nil).Project(context.Background(), rows)
	if len(got) != 3 {
		t.Fatalf("Project() returned %d entries, want 3", len(got))
	}
	for i, wantID := range []int64{30, 20, 10} {
		if got[i].ID != wantID {
			t.Errorf("Project()[%d].ID = %d, want %d", i, got[i].ID, wantID)
		}
	}
}

func TestProjector_ProjectCoupons_DerivedStatus(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -1, 0)
	future := now.AddDate(0, 1, 0)
	redeemed := now.AddDate(0, -2, 0)

	coupons := []*models.Coupon{
		{ID: 1, Title: "fresh", Status: models.CouponStatusAvailable, ExpiryDate: &future},
		{ID: 2, Title: "stale", Status: models.CouponStatusAvailable, ExpiryDate: &past},
		{ID: 3, Title: "spent", Status: models.CouponStatusUsed, ExpiryDate: &past, RedeemedAt: &redeemed},
		{ID: 4, Title: "open-ended", Status: models.CouponStatusAvailable},
	}

	got := NewProjector(nil).ProjectCoupons(coupons, now)
	wantStatus := []string{
		models.CouponStatusAvailable,
		models.CouponStatusExpired,
		models.CouponStatusUsed,
		models.CouponStatusAvailable,
	}
	for i, want := range wantStatus {
		if got[i].Status != want {
			t.Errorf("ProjectCoupons()[%d].Status = %q, want %q", i, got[i].Status, want)
		}
	}
}

// stubCoverResolver serves canned cover lookups keyed by script title.
type stubCoverResolver struct {
	covers map[string]string
	calls  []string
}

func (s *stubCoverResolver) CoverURL(_ context.Context, scriptTitle string) string {
	s.calls = append(s.calls, scriptTitle)
	return s.covers[scriptTitle]
}

func TestProjector_Project_CoverResolver(t *testing.T) {
	rowWith := func(title, coverURL string) *models.ParticipationRecord {
		return &models.ParticipationRecord{
			ID:               1,
			ExperienceGained: 50,
			Session: &models.Session{
				Script: &models.Script{Title: title, CoverURL: coverURL},
			},
		}
	}

	tests := []struct {
		name      string
		row       *models.ParticipationRecord
		wantCover string
		wantCalls int
	}{
		{
			name:      "BlankStoredURLResolvedFromStorage",
			row:       rowWith("Midnight Harbor", ""),
			wantCover: "https://covers.example/midnight_harbor.jpg",
			wantCalls: 1,
		},
		{
			name:      "StorageMissFallsBackToPlaceholder",
			row:       rowWith("Silent Orchard", ""),
			wantCover: placeholderCoverURL,
			wantCalls: 1,
		},
		{
			name:      "StoredURLSkipsResolver",
			row:       rowWith("Midnight Harbor", "https://cdn.example/stored.jpg"),
			wantCover: "https://cdn.example/stored.jpg",
			wantCalls: 0,
		},
		{
			name:      "UntitledScriptSkipsResolver",
			row:       rowWith("", ""),
			wantCover: placeholderCoverURL,
			wantCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &stubCoverResolver{covers: map[string]string{
				"Midnight Harbor": "https://covers.example/midnight_harbor.jpg",
			}}

			got := NewProjector(resolver).projectRow(context.Background(), tt.row)
			if got.CoverURL != tt.wantCover {
				t.Errorf("projectRow() CoverURL = %q, want %q", got.CoverURL, tt.wantCover)
			}
			if len(resolver.calls) != tt.wantCalls {
				t.Errorf("resolver calls = %d, want %d", len(resolver.calls), tt.wantCalls)
			}
		})
	}
}
