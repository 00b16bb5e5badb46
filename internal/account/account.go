// Package account models the managed account service the app authenticates
// against. The rest of the code only sees the Service interface, so the
// store-backed implementation can be swapped for a real provider client.
package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/saideepoki/counselling-app/internal/model"
	"github.com/saideepoki/counselling-app/internal/store"
)

// ErrAuthenticationFailed covers both unknown identity and bad password, so
// callers cannot enumerate accounts.
var ErrAuthenticationFailed = errors.New("authentication failed")

type Service interface {
	// Create registers a new account with hashed credentials.
	Create(ctx context.Context, email, username, password string) (model.Account, error)
	// Authenticate returns the account ID for valid credentials.
	Authenticate(ctx context.Context, email, password string) (string, error)
}

type StoreService struct {
	store store.Store
}

func NewStoreService(st store.Store) *StoreService {
	return &StoreService{store: st}
}

func (s *StoreService) Create(ctx context.Context, email, username, password string) (model.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.Account{}, fmt.Errorf("hash password: %w", err)
	}
	return s.store.CreateAccount(ctx, model.Account{
		Email:        strings.TrimSpace(strings.ToLower(email)),
		Username:     strings.TrimSpace(username),
		PasswordHash: string(hash),
	})
}

func (s *StoreService) Authenticate(ctx context.Context, email, password string) (string, error) {
	a, err := s.store.GetAccountByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrAuthenticationFailed
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return "", ErrAuthenticationFailed
	}
	return a.ID, nil
}
