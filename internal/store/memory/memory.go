// Package memory is an in-memory Store used for development and tests.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/saideepoki/counselling-app/internal/model"
)

type Store struct {
	mu sync.Mutex

	accounts      map[string]model.Account
	profiles      map[string]model.AccountProfile
	meetings      map[string]model.Meeting
	conversations map[string]model.Conversation
}

func NewStore() *Store {
	return &Store{
		accounts:      make(map[string]model.Account),
		profiles:      make(map[string]model.AccountProfile),
		meetings:      make(map[string]model.Meeting),
		conversations: make(map[string]model.Conversation),
	}
}

func newID() string { return uuid.NewString() }
