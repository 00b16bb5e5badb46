package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/saideepoki/counselling-app/internal/clock"
	"github.com/saideepoki/counselling-app/internal/model"
)

func meetingAt(date, timeOfDay string) model.Meeting {
	return model.Meeting{
		ID:        "m1",
		AdminID:   "a1",
		UserEmail: "user@org.com",
		Date:      date,
		Time:      timeOfDay,
		Status:    model.MeetingStatusScheduled,
	}
}

func guardAt(hour, minute int) *Guard {
	now := time.Date(2024, 3, 10, hour, minute, 0, 0, time.Local)
	return NewGuard(clock.Fixed{Instant: now}, 30*time.Minute)
}

func TestPermittedNow_WithinGrace(t *testing.T) {
	g := guardAt(14, 25)
	assert.True(t, g.PermittedNow(meetingAt("2024-03-10", "14:00")))
}

func TestPermittedNow_AtExactEnd(t *testing.T) {
	g := guardAt(14, 30)
	assert.True(t, g.PermittedNow(meetingAt("2024-03-10", "14:00")))
}

func TestPermittedNow_PastGrace(t *testing.T) {
	g := guardAt(14, 31)
	assert.False(t, g.PermittedNow(meetingAt("2024-03-10", "14:00")))
}

// There is no lower bound by default: access an hour before the scheduled
// instant is permitted. This documents current contract, not aspiration.
func TestPermittedNow_BeforeMeeting_NoLowerBound(t *testing.T) {
	g := guardAt(13, 0)
	assert.True(t, g.PermittedNow(meetingAt("2024-03-10", "14:00")))
}

func TestPermittedNow_EnforcedStart(t *testing.T) {
	now := time.Date(2024, 3, 10, 13, 0, 0, 0, time.Local)
	g := NewGuard(clock.Fixed{Instant: now}, 30*time.Minute, WithEnforcedStart(30*time.Minute))

	assert.False(t, g.PermittedNow(meetingAt("2024-03-10", "14:00")))
	assert.True(t, g.PermittedNow(meetingAt("2024-03-10", "13:15")))
}

func TestPermittedNow_CancelledNeverGrants(t *testing.T) {
	g := guardAt(14, 25)
	m := meetingAt("2024-03-10", "14:00")
	m.Status = model.MeetingStatusCancelled
	assert.False(t, g.PermittedNow(m))
}

func TestPermittedNow_MalformedDateTime(t *testing.T) {
	g := guardAt(14, 0)
	assert.False(t, g.PermittedNow(meetingAt("March 10", "14:00")))
	assert.False(t, g.PermittedNow(meetingAt("2024-03-10", "2pm")))
}

func TestAnyPermittedNow(t *testing.T) {
	g := guardAt(14, 25)

	assert.True(t, g.AnyPermittedNow([]model.Meeting{
		meetingAt("2024-03-09", "14:00"), // yesterday, expired
		meetingAt("2024-03-10", "14:00"),
	}))
	assert.False(t, g.AnyPermittedNow([]model.Meeting{
		meetingAt("2024-03-09", "14:00"),
	}))
	assert.False(t, g.AnyPermittedNow(nil))
}
