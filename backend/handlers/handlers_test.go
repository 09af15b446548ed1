package handlers

import (
	"testing"
	"time"

	dbmodels "github.com/limelight-tw/loyalty/loyalty/database/models"
)

func TestDaysJoined(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		want      int
	}{
		{name: "ZeroCreatedAt", createdAt: time.Time{}, want: 0},
		{name: "SameInstant", createdAt: now, want: 0},
		{name: "PartialDayRoundsUp", createdAt: now.Add(-3 * time.Hour), want: 1},
		{name: "ExactWeek", createdAt: now.AddDate(0, 0, -7), want: 7},
		{name: "ClockSkewStillPositive", createdAt: now.Add(2 * time.Hour), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := daysJoined(tt.createdAt, now); got != tt.want {
				t.Errorf("daysJoined() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMemberView_TitleAndThreshold(t *testing.T) {
	w := &WebApp{}

	tests := []struct {
		name          string
		member        *dbmodels.Member
		wantTitle     string
		wantThreshold int64
	}{
		{
			name: "LadderTitle",
			member: &dbmodels.Member{
				ID:              "m-1",
				Level:           2,
				TotalExperience: 120,
			},
			wantTitle:     "Fearless explorer",
			wantThreshold: 250,
		},
		{
			name: "OverrideTitleWins",
			member: &dbmodels.Member{
				ID:              "m-2",
				Level:           2,
				TotalExperience: 120,
				OverrideTitle:   "Founding patron",
			},
			wantTitle:     "Founding patron",
			wantThreshold: 250,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := w.memberView(tt.member)
			if view.Title != tt.wantTitle {
				t.Errorf("memberView().Title = %q, want %q", view.Title, tt.wantTitle)
			}
			if view.NextThreshold != tt.wantThreshold {
				t.Errorf("memberView().NextThreshold = %d, want %d", view.NextThreshold, tt.wantThreshold)
			}
		})
	}
}
