package memory

import (
	"context"
	"strings"
	"time"

	"github.com/saideepoki/counselling-app/internal/model"
	"github.com/saideepoki/counselling-app/internal/store"
)

func (s *Store) CreateAccount(_ context.Context, a model.Account) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.TrimSpace(strings.ToLower(a.Email))
	if email == "" {
		return model.Account{}, store.ErrConflict
	}
	for _, existing := range s.accounts {
		if strings.EqualFold(existing.Email, email) {
			return model.Account{}, store.ErrConflict
		}
	}

	now := time.Now().UTC()
	a.ID = newID()
	a.Email = email
	a.CreatedAt = now
	a.UpdatedAt = now
	s.accounts[a.ID] = a
	return a, nil
}

func (s *Store) GetAccountByEmail(_ context.Context, email string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if strings.EqualFold(a.Email, email) {
			out := a
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}
