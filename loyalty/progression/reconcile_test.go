package progression

import (
	"context"
	"errors"
	"testing"

	"github.com/limelight-tw/loyalty/internal/mocks"
	"github.com/limelight-tw/loyalty/loyalty/database/models"
	"go.uber.org/mock/gomock"
)

func TestGuard_Reconcile(t *testing.T) {
	tests := []struct {
		name       string
		member     *models.Member
		persistErr error
		wantLevel  int
		wantUpdate bool
	}{
		{
			name:       "NoDrift",
			member:     &models.Member{ID: "m-1", Level: 2, TotalExperience: 120},
			wantLevel:  2,
			wantUpdate: false,
		},
		{
			name:       "UpwardDrift",
			member:     &models.Member{ID: "m-2", Level: 1, TotalExperience: 300},
			wantLevel:  3,
			wantUpdate: true,
		},
		{
			name:       "DownwardDrift",
			member:     &models.Member{ID: "m-3", Level: 5, TotalExperience: 120},
			wantLevel:  2,
			wantUpdate: true,
		},
		{
			name:       "PersistFailureKeepsStoredLevel",
			member:     &models.Member{ID: "m-4", Level: 1, TotalExperience: 300},
			persistErr: errors.New("connection reset"),
			wantLevel:  1,
			wantUpdate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			members := mocks.NewMockMemberRepository(ctrl)

			if tt.wantUpdate {
				expected := LevelInfo(tt.member.TotalExperience).Level
				members.EXPECT().
					UpdateLevel(gomock.Any(), tt.member.ID, expected).
					Return(tt.persistErr)
			}

			expBefore := tt.member.TotalExperience
			got := NewGuard(members).Reconcile(context.Background(), tt.member)

			if got.Level != tt.wantLevel {
				t.Errorf("Reconcile() level = %d, want %d", got.Level, tt.wantLevel)
			}
			if got.TotalExperience != expBefore {
				t.Errorf("Reconcile() altered experience: %d, want %d", got.TotalExperience, expBefore)
			}
		})
	}
}
