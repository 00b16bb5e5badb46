package store

import (
	"context"
	"errors"

	"github.com/saideepoki/counselling-app/internal/model"
)

var (
	ErrNotFound = errors.New("not_found")
	ErrConflict = errors.New("conflict")
)

type MeetingFilter struct {
	AdminID   string
	UserEmail string
	Status    model.MeetingStatus
}

type ConversationFilter struct {
	UserEmail string
}

type Store interface {
	CreateAccount(ctx context.Context, a model.Account) (model.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)

	CreateProfile(ctx context.Context, p model.AccountProfile) (model.AccountProfile, error)
	GetProfileByAccountID(ctx context.Context, accountID string) (*model.AccountProfile, error)
	// SetProfilePasscodeValidated flips the flag to true. The flip is not
	// transactional with the passcode check; concurrent first logins may both
	// validate, which is accepted.
	SetProfilePasscodeValidated(ctx context.Context, id string) (*model.AccountProfile, error)

	CreateMeeting(ctx context.Context, m model.Meeting) (model.Meeting, error)
	QueryMeetings(ctx context.Context, f MeetingFilter) ([]model.Meeting, error)
	// UpdateMeetingStatus is scoped to the owning admin.
	UpdateMeetingStatus(ctx context.Context, id, adminID string, status model.MeetingStatus) (*model.Meeting, error)

	CreateConversation(ctx context.Context, c model.Conversation) (model.Conversation, error)
	ListConversations(ctx context.Context, f ConversationFilter) ([]model.Conversation, error)
}
