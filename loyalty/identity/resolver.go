package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/limelight-tw/loyalty/loyalty/database/models"
	"github.com/limelight-tw/loyalty/loyalty/database/repositories"
)

// sequenceWidth is the fixed width of the human-facing member number.
const sequenceWidth = 8

// PlatformProfile is the triple handed over by the external identity platform.
// The resolver treats it strictly as input and never re-derives or validates
// it against the platform.
type PlatformProfile struct {
	MemberID    string
	DisplayName string
	AvatarURL   string
}

// Resolver finds or registers a member for a platform profile.
type Resolver struct {
	memberRepo repositories.MemberRepository
}

func NewResolver(memberRepo repositories.MemberRepository) *Resolver {
	return &Resolver{memberRepo: memberRepo}
}

// Resolve returns the member for the profile, registering one on first login.
// The created flag signals a first-time registration so the caller can show
// one-time welcome messaging; the resolver itself never messages anyone.
// Existing members are returned unchanged, a login performs no writes.
func (r *Resolver) Resolve(ctx context.Context, profile PlatformProfile) (*models.Member, bool, error) {
	member, err := r.memberRepo.GetByID(ctx, profile.MemberID)
	if err == nil {
		slog.Debug("Existing member resolved",
			slog.String("member_id", member.ID),
			slog.String("sequence_number", member.SequenceNumber))
		return member, false, nil
	}
	if !errors.Is(err, repositories.ErrMemberNotFound) {
		return nil, false, fmt.Errorf("member lookup failed: %w", err)
	}

	seq, err := r.nextSequenceNumber(ctx)
	if err != nil {
		return nil, false, err
	}

	member = &models.Member{
		ID:              profile.MemberID,
		DisplayName:     profile.DisplayName,
		AvatarURL:       profile.AvatarURL,
		SequenceNumber:  seq,
		Level:           1,
		TotalExperience: 0,
	}

	// Insertion failure is terminal for the entry path: no partial member may
	// exist.
	if err := r.memberRepo.Create(ctx, member); err != nil {
		return nil, false, fmt.Errorf("member registration failed: %w", err)
	}

	slog.Info("New member registered",
		slog.String("member_id", member.ID),
		slog.String("sequence_number", seq))

	return member, true, nil
}

// nextSequenceNumber reads the current maximum, parses it and re-encodes the
// increment as a fixed-width zero-padded decimal. An empty table or an
// unparsable stored value both restart the count at 1.
func (r *Resolver) nextSequenceNumber(ctx context.Context) (string, error) {
	maxSeq, err := r.memberRepo.MaxSequenceNumber(ctx)
	if err != nil {
		return "", fmt.Errorf("sequence assignment failed: %w", err)
	}

	next := int64(1)
	if maxSeq != "" {
		if current, parseErr := strconv.ParseInt(maxSeq, 10, 64); parseErr == nil {
			next = current + 1
		} else {
			slog.Warn("Unparsable sequence number, restarting count",
				slog.String("stored_value", maxSeq))
		}
	}

	return fmt.Sprintf("%0*d", sequenceWidth, next), nil
}
