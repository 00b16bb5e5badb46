package model

import "time"

// Role is a closed set. Gating sites switch exhaustively on it so adding a
// third role forces every check to be revisited.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "scheduled"
	MeetingStatusCompleted MeetingStatus = "completed"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

func (s MeetingStatus) Valid() bool {
	switch s {
	case MeetingStatusScheduled, MeetingStatusCompleted, MeetingStatusCancelled:
		return true
	}
	return false
}

// Account is the credential record owned by the account service. The
// application never reads PasswordHash outside of internal/account.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AccountProfile maps an authenticated account to application-level role and
// state. PasscodeValidated starts false for admins and flips to true exactly
// once, on the first successful passcode check.
type AccountProfile struct {
	ID                string    `json:"id"`
	AccountID         string    `json:"account_id"`
	Email             string    `json:"email"`
	Username          string    `json:"username"`
	Role              Role      `json:"role"`
	PasscodeValidated bool      `json:"passcode_validated"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Meeting is a scheduled counseling slot. Date is "2006-01-02", Time is
// "15:04" in the server's local time; no timezone is encoded.
type Meeting struct {
	ID        string        `json:"id"`
	AdminID   string        `json:"admin_id"`
	UserEmail string        `json:"user_email"`
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	Status    MeetingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Conversation is a chat session opened by a user. Opening one is gated by
// the meeting schedule; its content lives elsewhere.
type Conversation struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
