package identity

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/limelight-tw/loyalty/internal/mocks"
	"github.com/limelight-tw/loyalty/loyalty/database/models"
	"github.com/limelight-tw/loyalty/loyalty/database/repositories"
	"go.uber.org/mock/gomock"
)

func TestResolver_Resolve_ExistingMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	members := mocks.NewMockMemberRepository(ctrl)

	stored := &models.Member{
		ID:              "plat-77",
		DisplayName:     "old name",
		SequenceNumber:  "00000042",
		Level:           3,
		TotalExperience: 310,
	}
	members.EXPECT().GetByID(gomock.Any(), "plat-77").Return(stored, nil)

	r := NewResolver(members)
	got, created, err := r.Resolve(context.Background(), PlatformProfile{
		MemberID:    "plat-77",
		DisplayName: "new name",
		AvatarURL:   "https://cdn.example/new.png",
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if created {
		t.Error("Resolve() created = true for existing member")
	}
	if got != stored {
		t.Errorf("Resolve() = %+v, want stored member unchanged", got)
	}
	if got.DisplayName != "old name" {
		t.Errorf("Resolve() overwrote display name to %q", got.DisplayName)
	}
}

func TestResolver_Resolve_FirstLoginRegisters(t *testing.T) {
	tests := []struct {
		name    string
		maxSeq  string
		wantSeq string
	}{
		{name: "EmptyTable", maxSeq: "", wantSeq: "00000001"},
		{name: "IncrementsMax", maxSeq: "00000041", wantSeq: "00000042"},
		{name: "UnparsableRestartsCount", maxSeq: "GM-SPECIAL", wantSeq: "00000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			members := mocks.NewMockMemberRepository(ctrl)

			members.EXPECT().GetByID(gomock.Any(), "plat-9").Return(nil, repositories.ErrMemberNotFound)
			members.EXPECT().MaxSequenceNumber(gomock.Any()).Return(tt.maxSeq, nil)

			var inserted *models.Member
			members.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, m *models.Member) error {
					inserted = m
					return nil
				})

			r := NewResolver(members)
			got, created, err := r.Resolve(context.Background(), PlatformProfile{
				MemberID:    "plat-9",
				DisplayName: "Riko",
				AvatarURL:   "https://cdn.example/riko.png",
			})
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if !created {
				t.Error("Resolve() created = false for first login")
			}
			if got.SequenceNumber != tt.wantSeq {
				t.Errorf("Resolve() sequence = %q, want %q", got.SequenceNumber, tt.wantSeq)
			}
			if got.Level != 1 || got.TotalExperience != 0 {
				t.Errorf("Resolve() new member level=%d exp=%d, want 1/0", got.Level, got.TotalExperience)
			}
			if inserted != got {
				t.Error("Resolve() returned a different member than it inserted")
			}
		})
	}
}

func TestResolver_Resolve_RegistrationFailureIsTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	members := mocks.NewMockMemberRepository(ctrl)

	members.EXPECT().GetByID(gomock.Any(), "plat-10").Return(nil, repositories.ErrMemberNotFound)
	members.EXPECT().MaxSequenceNumber(gomock.Any()).Return("00000009", nil)
	members.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("unique violation"))

	r := NewResolver(members)
	got, created, err := r.Resolve(context.Background(), PlatformProfile{MemberID: "plat-10"})
	if err == nil {
		t.Fatal("Resolve() error = nil, want registration failure")
	}
	if got != nil || created {
		t.Errorf("Resolve() = (%v, %v), want (nil, false)", got, created)
	}
}

func TestResolver_Resolve_WrappedNotFoundStillRegisters(t *testing.T) {
	ctrl := gomock.NewController(t)
	members := mocks.NewMockMemberRepository(ctrl)

	members.EXPECT().
		GetByID(gomock.Any(), "plat-11").
		Return(nil, fmt.Errorf("query members: %w", repositories.ErrMemberNotFound))
	members.EXPECT().MaxSequenceNumber(gomock.Any()).Return("00000002", nil)
	members.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	r := NewResolver(members)
	got, created, err := r.Resolve(context.Background(), PlatformProfile{MemberID: "plat-11"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !created {
		t.Error("Resolve() created = false, want registration on wrapped not-found")
	}
	if got.SequenceNumber != "00000003" {
		t.Errorf("Resolve() sequence = %q, want 00000003", got.SequenceNumber)
	}
}
