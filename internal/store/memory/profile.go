package memory

import (
	"context"
	"strings"
	"time"

	"github.com/saideepoki/counselling-app/internal/model"
	"github.com/saideepoki/counselling-app/internal/store"
)

func (s *Store) CreateProfile(_ context.Context, p model.AccountProfile) (model.AccountProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(p.AccountID) == "" {
		return model.AccountProfile{}, store.ErrConflict
	}
	for _, existing := range s.profiles {
		if existing.AccountID == p.AccountID {
			return model.AccountProfile{}, store.ErrConflict
		}
	}

	now := time.Now().UTC()
	p.ID = newID()
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))
	p.CreatedAt = now
	p.UpdatedAt = now
	s.profiles[p.ID] = p
	return p, nil
}

func (s *Store) GetProfileByAccountID(_ context.Context, accountID string) (*model.AccountProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.profiles {
		if p.AccountID == accountID {
			out := p
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) SetProfilePasscodeValidated(_ context.Context, id string) (*model.AccountProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	p.PasscodeValidated = true
	p.UpdatedAt = time.Now().UTC()
	s.profiles[id] = p
	out := p
	return &out, nil
}
