package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/saideepoki/counselling-app/internal/model"
	"github.com/saideepoki/counselling-app/internal/store"
)

func (s *Store) CreateAccount(ctx context.Context, a model.Account) (model.Account, error) {
	var out model.Account
	err := s.pool.QueryRow(ctx, `
		insert into accounts (email, username, password_hash)
		values (lower($1), $2, $3)
		returning id::text, email, username, password_hash, created_at, updated_at
	`, strings.TrimSpace(a.Email), a.Username, a.PasswordHash).Scan(
		&out.ID,
		&out.Email,
		&out.Username,
		&out.PasswordHash,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		return model.Account{}, mapPgErr(err)
	}
	return out, nil
}

func (s *Store) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	var a model.Account
	err := s.pool.QueryRow(ctx, `
		select id::text, email, username, password_hash, created_at, updated_at
		from accounts
		where lower(email) = lower($1)
	`, email).Scan(
		&a.ID,
		&a.Email,
		&a.Username,
		&a.PasswordHash,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, mapPgErr(err)
	}
	return &a, nil
}
