package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saideepoki/counselling-app/internal/model"
	"github.com/saideepoki/counselling-app/internal/store"
	"github.com/saideepoki/counselling-app/internal/store/memory"
)

func adminCaller() model.AccountProfile {
	return model.AccountProfile{ID: "adm-1", Email: "admin@org.com", Role: model.RoleAdmin}
}

func userCaller() model.AccountProfile {
	return model.AccountProfile{ID: "usr-1", Email: "user@org.com", Role: model.RoleUser}
}

func TestCreateMeeting_Admin(t *testing.T) {
	st := memory.NewStore()
	sched := NewScheduler(st)
	ctx := context.Background()

	m, err := sched.CreateMeeting(ctx, adminCaller(), "User@Org.com", "2024-03-10", "14:00")
	assert.NoError(t, err)
	assert.Equal(t, "adm-1", m.AdminID)
	assert.Equal(t, "user@org.com", m.UserEmail)
	assert.Equal(t, model.MeetingStatusScheduled, m.Status)
}

func TestCreateMeeting_UserForbidden(t *testing.T) {
	st := memory.NewStore()
	sched := NewScheduler(st)
	ctx := context.Background()

	_, err := sched.CreateMeeting(ctx, userCaller(), "user@org.com", "2024-03-10", "14:00")
	assert.ErrorIs(t, err, ErrForbidden)

	// No persistence side effect
	all, err := st.QueryMeetings(ctx, store.MeetingFilter{})
	assert.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateMeeting_Validation(t *testing.T) {
	sched := NewScheduler(memory.NewStore())
	ctx := context.Background()

	_, err := sched.CreateMeeting(ctx, adminCaller(), "", "2024-03-10", "14:00")
	assert.Error(t, err)

	_, err = sched.CreateMeeting(ctx, adminCaller(), "user@org.com", "10/03/2024", "14:00")
	assert.Error(t, err)

	_, err = sched.CreateMeeting(ctx, adminCaller(), "user@org.com", "2024-03-10", "2pm")
	assert.Error(t, err)
}

func TestListMeetingsForAdmin_ScopedToOwner(t *testing.T) {
	st := memory.NewStore()
	sched := NewScheduler(st)
	ctx := context.Background()

	_, err := sched.CreateMeeting(ctx, adminCaller(), "user@org.com", "2024-03-10", "14:00")
	assert.NoError(t, err)

	other := model.AccountProfile{ID: "adm-2", Email: "other-admin@org.com", Role: model.RoleAdmin}
	_, err = sched.CreateMeeting(ctx, other, "user@org.com", "2024-03-11", "15:00")
	assert.NoError(t, err)

	mine, err := sched.ListMeetingsForAdmin(ctx, adminCaller())
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, "adm-1", mine[0].AdminID)

	_, err = sched.ListMeetingsForAdmin(ctx, userCaller())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListMeetingsForUser(t *testing.T) {
	st := memory.NewStore()
	sched := NewScheduler(st)
	ctx := context.Background()

	_, err := sched.CreateMeeting(ctx, adminCaller(), "user@org.com", "2024-03-10", "14:00")
	assert.NoError(t, err)
	_, err = sched.CreateMeeting(ctx, adminCaller(), "other@org.com", "2024-03-10", "16:00")
	assert.NoError(t, err)

	// No role restriction; scope is the email itself.
	got, err := sched.ListMeetingsForUser(ctx, "USER@org.com")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "user@org.com", got[0].UserEmail)
}

func TestUpdateMeetingStatus(t *testing.T) {
	st := memory.NewStore()
	sched := NewScheduler(st)
	ctx := context.Background()

	m, err := sched.CreateMeeting(ctx, adminCaller(), "user@org.com", "2024-03-10", "14:00")
	assert.NoError(t, err)

	got, err := sched.UpdateMeetingStatus(ctx, adminCaller(), m.ID, model.MeetingStatusCompleted)
	assert.NoError(t, err)
	assert.Equal(t, model.MeetingStatusCompleted, got.Status)

	_, err = sched.UpdateMeetingStatus(ctx, userCaller(), m.ID, model.MeetingStatusCancelled)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = sched.UpdateMeetingStatus(ctx, adminCaller(), m.ID, model.MeetingStatus("paused"))
	assert.Error(t, err)
}
