package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/saideepoki/counselling-app/internal/model"
	"github.com/saideepoki/counselling-app/internal/store"
)

func (s *Store) CreateConversation(_ context.Context, c model.Conversation) (model.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = newID()
	c.UserEmail = strings.TrimSpace(strings.ToLower(c.UserEmail))
	c.CreatedAt = time.Now().UTC()
	s.conversations[c.ID] = c
	return c, nil
}

func (s *Store) ListConversations(_ context.Context, f store.ConversationFilter) ([]model.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []model.Conversation{}
	for _, c := range s.conversations {
		if f.UserEmail != "" && !strings.EqualFold(c.UserEmail, f.UserEmail) {
			continue
		}
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
