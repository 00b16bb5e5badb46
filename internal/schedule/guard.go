// Package schedule holds the meeting-time access guard and the role-gated
// scheduler that creates and lists meetings.
package schedule

import (
	"time"

	"github.com/saideepoki/counselling-app/internal/clock"
	"github.com/saideepoki/counselling-app/internal/model"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Guard decides whether "now" falls inside a meeting's permitted access
// interval. Access is allowed up to Grace past the scheduled instant; by
// default there is no lower bound, so a user may also open arbitrarily early.
// EnforceStart turns the lower bound on, allowing at most EarlyJoinLead before
// the scheduled instant.
type Guard struct {
	clk           clock.Clock
	grace         time.Duration
	enforceStart  bool
	earlyJoinLead time.Duration
}

type GuardOption func(*Guard)

func WithEnforcedStart(lead time.Duration) GuardOption {
	return func(g *Guard) {
		g.enforceStart = true
		g.earlyJoinLead = lead
	}
}

func NewGuard(clk clock.Clock, grace time.Duration, opts ...GuardOption) *Guard {
	if clk == nil {
		clk = clock.System{}
	}
	if grace <= 0 {
		grace = 30 * time.Minute
	}
	g := &Guard{clk: clk, grace: grace, earlyJoinLead: 30 * time.Minute}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// MeetingInstant combines a meeting's date and time in the server's local
// time. No timezone normalization is performed.
func MeetingInstant(m model.Meeting) (time.Time, bool) {
	d, err := time.ParseInLocation(dateLayout, m.Date, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(timeLayout, m.Time, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), true
}

// PermittedNow reports whether the meeting currently grants access. Cancelled
// meetings never do; malformed date/time fields never match.
func (g *Guard) PermittedNow(m model.Meeting) bool {
	if m.Status == model.MeetingStatusCancelled {
		return false
	}
	instant, ok := MeetingInstant(m)
	if !ok {
		return false
	}
	now := g.clk.Now()
	if now.After(instant.Add(g.grace)) {
		return false
	}
	if g.enforceStart && now.Before(instant.Add(-g.earlyJoinLead)) {
		return false
	}
	return true
}

// AnyPermittedNow reports whether any meeting in the list grants access.
func (g *Guard) AnyPermittedNow(meetings []model.Meeting) bool {
	for _, m := range meetings {
		if g.PermittedNow(m) {
			return true
		}
	}
	return false
}
