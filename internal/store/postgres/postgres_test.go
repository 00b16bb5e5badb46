package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saideepoki/counselling-app/internal/model"
	"github.com/saideepoki/counselling-app/internal/store"
)

// setupTestDB connects to DATABASE_URL, resets the schema, and applies the
// embedded migrations. Tests are skipped when DATABASE_URL is not set.
func setupTestDB(t *testing.T) *Store {
	t.Helper()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL not set, skipping PostgreSQL tests")
	}

	st, err := NewStore(databaseURL)
	require.NoError(t, err)
	t.Cleanup(st.Close)

	ctx := context.Background()
	_, err = st.pool.Exec(ctx, `
		drop schema public cascade;
		create schema public;
	`)
	require.NoError(t, err)

	require.NoError(t, Migrate(ctx, databaseURL))
	return st
}

func seedAdmin(t *testing.T, st *Store) model.AccountProfile {
	t.Helper()
	ctx := context.Background()

	a, err := st.CreateAccount(ctx, model.Account{Email: "admin@org.com", Username: "admin", PasswordHash: "h"})
	require.NoError(t, err)

	p, err := st.CreateProfile(ctx, model.AccountProfile{
		AccountID: a.ID,
		Email:     a.Email,
		Username:  a.Username,
		Role:      model.RoleAdmin,
	})
	require.NoError(t, err)
	return p
}

func TestAccounts(t *testing.T) {
	st := setupTestDB(t)
	ctx := context.Background()

	a, err := st.CreateAccount(ctx, model.Account{Email: "Alice@Org.com", Username: "alice", PasswordHash: "h"})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "alice@org.com", a.Email)

	_, err = st.CreateAccount(ctx, model.Account{Email: "ALICE@org.com", Username: "dup", PasswordHash: "h"})
	assert.ErrorIs(t, err, store.ErrConflict)

	got, err := st.GetAccountByEmail(ctx, "alice@org.com")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = st.GetAccountByEmail(ctx, "nobody@org.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProfiles(t *testing.T) {
	st := setupTestDB(t)
	ctx := context.Background()

	p := seedAdmin(t, st)
	assert.False(t, p.PasscodeValidated)

	// One profile per account.
	_, err := st.CreateProfile(ctx, model.AccountProfile{AccountID: p.AccountID, Email: p.Email, Username: p.Username, Role: model.RoleAdmin})
	assert.ErrorIs(t, err, store.ErrConflict)

	got, err := st.GetProfileByAccountID(ctx, p.AccountID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, model.RoleAdmin, got.Role)

	flipped, err := st.SetProfilePasscodeValidated(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, flipped.PasscodeValidated)
}

func TestMeetings(t *testing.T) {
	st := setupTestDB(t)
	ctx := context.Background()

	admin := seedAdmin(t, st)

	m, err := st.CreateMeeting(ctx, model.Meeting{
		AdminID:   admin.ID,
		UserEmail: "User@Org.com",
		Date:      "2024-03-10",
		Time:      "14:00",
	})
	require.NoError(t, err)
	assert.Equal(t, model.MeetingStatusScheduled, m.Status)
	assert.Equal(t, "user@org.com", m.UserEmail)

	byAdmin, err := st.QueryMeetings(ctx, store.MeetingFilter{AdminID: admin.ID})
	require.NoError(t, err)
	assert.Len(t, byAdmin, 1)

	byEmail, err := st.QueryMeetings(ctx, store.MeetingFilter{UserEmail: "USER@org.com"})
	require.NoError(t, err)
	assert.Len(t, byEmail, 1)

	none, err := st.QueryMeetings(ctx, store.MeetingFilter{UserEmail: "other@org.com"})
	require.NoError(t, err)
	assert.Empty(t, none)

	updated, err := st.UpdateMeetingStatus(ctx, m.ID, admin.ID, model.MeetingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, model.MeetingStatusCancelled, updated.Status)

	// Wrong admin does not match.
	other := model.AccountProfile{ID: "00000000-0000-0000-0000-000000000000"}
	_, err = st.UpdateMeetingStatus(ctx, m.ID, other.ID, model.MeetingStatusCompleted)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestConversations(t *testing.T) {
	st := setupTestDB(t)
	ctx := context.Background()

	c, err := st.CreateConversation(ctx, model.Conversation{UserEmail: "User@Org.com", Title: "first"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "user@org.com", c.UserEmail)

	mine, err := st.ListConversations(ctx, store.ConversationFilter{UserEmail: "user@org.com"})
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, "first", mine[0].Title)
}
