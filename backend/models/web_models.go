package models

import "github.com/limelight-tw/loyalty/loyalty/history"

// ProfileRequest is the body of PUT /api/me/profile.
type ProfileRequest struct {
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
	BirthDate   string `json:"birth_date"`
}

// MemberView is the member as rendered to the client.
type MemberView struct {
	ID              string `json:"id"`
	DisplayName     string `json:"display_name"`
	AvatarURL       string `json:"avatar_url,omitempty"`
	SequenceNumber  string `json:"sequence_number"`
	Level           int    `json:"level"`
	Title           string `json:"title"`
	NextThreshold   int64  `json:"next_threshold"`
	TotalExperience int64  `json:"total_experience"`
	Phone           string `json:"phone,omitempty"`
	BirthDate       string `json:"birth_date,omitempty"`
	DaysJoined      int    `json:"days_joined"`
}

// JoinOutcome reports what happened to the deep-linked session join. Entry
// resolution continues even when the join itself fails; the outcome carries
// the user-visible result.
type JoinOutcome struct {
	Attempted  bool   `json:"attempted"`
	OK         bool   `json:"ok"`
	ExpAwarded int64  `json:"exp_awarded,omitempty"`
	LeveledUp  bool   `json:"leveled_up,omitempty"`
	NewLevel   int    `json:"new_level,omitempty"`
	ErrorCode  string `json:"error_code,omitempty"`
	Message    string `json:"message,omitempty"`
}

// EntryResponse is the payload of POST /api/entry.
type EntryResponse struct {
	Member         MemberView           `json:"member"`
	FirstLogin     bool                 `json:"first_login"`
	WelcomeMessage string               `json:"welcome_message,omitempty"`
	Join           *JoinOutcome         `json:"join,omitempty"`
	History        []history.Entry      `json:"history"`
	Coupons        []history.CouponView `json:"coupons"`
}

// ProfileResponse is the payload of PUT /api/me/profile.
type ProfileResponse struct {
	Member       MemberView `json:"member"`
	CouponIssued bool       `json:"coupon_issued"`
}
