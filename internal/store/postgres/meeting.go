package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/saideepoki/counselling-app/internal/model"
	"github.com/saideepoki/counselling-app/internal/store"
)

func (s *Store) CreateMeeting(ctx context.Context, m model.Meeting) (model.Meeting, error) {
	status := m.Status
	if status == "" {
		status = model.MeetingStatusScheduled
	}

	var out model.Meeting
	err := s.pool.QueryRow(ctx, `
		insert into meetings (admin_id, user_email, meeting_date, meeting_time, status)
		values ($1::uuid, lower($2), $3, $4, $5)
		returning id::text, admin_id::text, user_email, meeting_date, meeting_time, status, created_at, updated_at
	`, m.AdminID, strings.TrimSpace(m.UserEmail), m.Date, m.Time, string(status)).Scan(
		&out.ID,
		&out.AdminID,
		&out.UserEmail,
		&out.Date,
		&out.Time,
		&out.Status,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		return model.Meeting{}, mapPgErr(err)
	}
	return out, nil
}

func (s *Store) QueryMeetings(ctx context.Context, f store.MeetingFilter) ([]model.Meeting, error) {
	q := `
		select id::text, admin_id::text, user_email, meeting_date, meeting_time, status, created_at, updated_at
		from meetings
	`
	var conds []string
	var args []any

	if f.AdminID != "" {
		args = append(args, f.AdminID)
		conds = append(conds, "admin_id = $"+strconv.Itoa(len(args))+"::uuid")
	}
	if f.UserEmail != "" {
		args = append(args, f.UserEmail)
		conds = append(conds, "lower(user_email) = lower($"+strconv.Itoa(len(args))+")")
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		q += " where " + strings.Join(conds, " and ")
	}
	q += " order by meeting_date, meeting_time, id"

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, mapPgErr(err)
	}
	defer rows.Close()

	out := []model.Meeting{}
	for rows.Next() {
		var m model.Meeting
		if err := rows.Scan(
			&m.ID,
			&m.AdminID,
			&m.UserEmail,
			&m.Date,
			&m.Time,
			&m.Status,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) UpdateMeetingStatus(ctx context.Context, id, adminID string, status model.MeetingStatus) (*model.Meeting, error) {
	var m model.Meeting
	err := s.pool.QueryRow(ctx, `
		update meetings
		set status = $3,
		    updated_at = now()
		where id = $1::uuid
		  and admin_id = $2::uuid
		returning id::text, admin_id::text, user_email, meeting_date, meeting_time, status, created_at, updated_at
	`, id, adminID, string(status)).Scan(
		&m.ID,
		&m.AdminID,
		&m.UserEmail,
		&m.Date,
		&m.Time,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, mapPgErr(err)
	}
	return &m, nil
}
