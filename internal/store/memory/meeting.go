package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/saideepoki/counselling-app/internal/model"
	"github.com/saideepoki/counselling-app/internal/store"
)

func (s *Store) CreateMeeting(_ context.Context, m model.Meeting) (model.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	m.ID = newID()
	m.UserEmail = strings.TrimSpace(strings.ToLower(m.UserEmail))
	if m.Status == "" {
		m.Status = model.MeetingStatusScheduled
	}
	m.CreatedAt = now
	m.UpdatedAt = now
	s.meetings[m.ID] = m
	return m, nil
}

func (s *Store) QueryMeetings(_ context.Context, f store.MeetingFilter) ([]model.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []model.Meeting{}
	for _, m := range s.meetings {
		if f.AdminID != "" && m.AdminID != f.AdminID {
			continue
		}
		if f.UserEmail != "" && !strings.EqualFold(m.UserEmail, f.UserEmail) {
			continue
		}
		if f.Status != "" && m.Status != f.Status {
			continue
		}
		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) UpdateMeetingStatus(_ context.Context, id, adminID string, status model.MeetingStatus) (*model.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.meetings[id]
	if !ok || m.AdminID != adminID {
		return nil, store.ErrNotFound
	}
	m.Status = status
	m.UpdatedAt = time.Now().UTC()
	s.meetings[id] = m
	out := m
	return &out, nil
}
