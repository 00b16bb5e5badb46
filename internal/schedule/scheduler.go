package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/saideepoki/counselling-app/internal/model"
	"github.com/saideepoki/counselling-app/internal/store"
)

var ErrForbidden = errors.New("forbidden")

// Scheduler enforces admin-only write access to meeting records and derives
// per-role query scope. Authorization failures are terminal, never retried.
type Scheduler struct {
	store store.Store
}

func NewScheduler(st store.Store) *Scheduler {
	return &Scheduler{store: st}
}

func requireAdmin(caller model.AccountProfile) error {
	switch caller.Role {
	case model.RoleAdmin:
		return nil
	case model.RoleUser:
		return ErrForbidden
	}
	return ErrForbidden
}

// CreateMeeting persists a new scheduled meeting owned by the caller. Only
// admins may create meetings; nothing is persisted on a role mismatch.
func (s *Scheduler) CreateMeeting(ctx context.Context, caller model.AccountProfile, userEmail, date, timeOfDay string) (model.Meeting, error) {
	if err := requireAdmin(caller); err != nil {
		return model.Meeting{}, err
	}

	userEmail = strings.TrimSpace(strings.ToLower(userEmail))
	if userEmail == "" {
		return model.Meeting{}, fmt.Errorf("user email is required")
	}
	if _, err := time.ParseInLocation(dateLayout, date, time.Local); err != nil {
		return model.Meeting{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
	}
	if _, err := time.ParseInLocation(timeLayout, timeOfDay, time.Local); err != nil {
		return model.Meeting{}, fmt.Errorf("invalid time %q: want HH:MM", timeOfDay)
	}

	return s.store.CreateMeeting(ctx, model.Meeting{
		AdminID:   caller.ID,
		UserEmail: userEmail,
		Date:      date,
		Time:      timeOfDay,
		Status:    model.MeetingStatusScheduled,
	})
}

// ListMeetingsForAdmin returns only the caller's own meetings.
func (s *Scheduler) ListMeetingsForAdmin(ctx context.Context, caller model.AccountProfile) ([]model.Meeting, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.store.QueryMeetings(ctx, store.MeetingFilter{AdminID: caller.ID})
}

// ListMeetingsForUser returns meetings addressed to the given email. Any
// signed-in identity may see meetings for its own email; the caller is
// responsible for passing its own address.
func (s *Scheduler) ListMeetingsForUser(ctx context.Context, email string) ([]model.Meeting, error) {
	return s.store.QueryMeetings(ctx, store.MeetingFilter{
		UserEmail: strings.TrimSpace(strings.ToLower(email)),
	})
}

// UpdateMeetingStatus records an externally driven status transition on one
// of the caller's meetings.
func (s *Scheduler) UpdateMeetingStatus(ctx context.Context, caller model.AccountProfile, meetingID string, status model.MeetingStatus) (*model.Meeting, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	return s.store.UpdateMeetingStatus(ctx, meetingID, caller.ID, status)
}
