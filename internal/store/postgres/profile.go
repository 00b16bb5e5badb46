package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/saideepoki/counselling-app/internal/model"
	"github.com/saideepoki/counselling-app/internal/store"
)

func (s *Store) CreateProfile(ctx context.Context, p model.AccountProfile) (model.AccountProfile, error) {
	var out model.AccountProfile
	err := s.pool.QueryRow(ctx, `
		insert into profiles (account_id, email, username, role, passcode_validated)
		values ($1::uuid, lower($2), $3, $4, $5)
		returning id::text, account_id::text, email, username, role, passcode_validated, created_at, updated_at
	`, p.AccountID, p.Email, p.Username, string(p.Role), p.PasscodeValidated).Scan(
		&out.ID,
		&out.AccountID,
		&out.Email,
		&out.Username,
		&out.Role,
		&out.PasscodeValidated,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		return model.AccountProfile{}, mapPgErr(err)
	}
	return out, nil
}

func (s *Store) GetProfileByAccountID(ctx context.Context, accountID string) (*model.AccountProfile, error) {
	var p model.AccountProfile
	err := s.pool.QueryRow(ctx, `
		select id::text, account_id::text, email, username, role, passcode_validated, created_at, updated_at
		from profiles
		where account_id = $1::uuid
	`, accountID).Scan(
		&p.ID,
		&p.AccountID,
		&p.Email,
		&p.Username,
		&p.Role,
		&p.PasscodeValidated,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, mapPgErr(err)
	}
	return &p, nil
}

func (s *Store) SetProfilePasscodeValidated(ctx context.Context, id string) (*model.AccountProfile, error) {
	var p model.AccountProfile
	err := s.pool.QueryRow(ctx, `
		update profiles
		set passcode_validated = true,
		    updated_at = now()
		where id = $1::uuid
		returning id::text, account_id::text, email, username, role, passcode_validated, created_at, updated_at
	`, id).Scan(
		&p.ID,
		&p.AccountID,
		&p.Email,
		&p.Username,
		&p.Role,
		&p.PasscodeValidated,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, mapPgErr(err)
	}
	return &p, nil
}
