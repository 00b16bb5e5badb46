package postgres

import (
	"context"
	"strings"

	"github.com/saideepoki/counselling-app/internal/model"
	"github.com/saideepoki/counselling-app/internal/store"
)

func (s *Store) CreateConversation(ctx context.Context, c model.Conversation) (model.Conversation, error) {
	var out model.Conversation
	err := s.pool.QueryRow(ctx, `
		insert into conversations (user_email, title)
		values (lower($1), $2)
		returning id::text, user_email, title, created_at
	`, strings.TrimSpace(c.UserEmail), c.Title).Scan(
		&out.ID,
		&out.UserEmail,
		&out.Title,
		&out.CreatedAt,
	)
	if err != nil {
		return model.Conversation{}, mapPgErr(err)
	}
	return out, nil
}

func (s *Store) ListConversations(ctx context.Context, f store.ConversationFilter) ([]model.Conversation, error) {
	q := `
		select id::text, user_email, title, created_at
		from conversations
	`
	var args []any
	if f.UserEmail != "" {
		q += " where lower(user_email) = lower($1)"
		args = append(args, f.UserEmail)
	}
	q += " order by created_at, id"

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, mapPgErr(err)
	}
	defer rows.Close()

	out := []model.Conversation{}
	for rows.Next() {
		var c model.Conversation
		if err := rows.Scan(&c.ID, &c.UserEmail, &c.Title, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
