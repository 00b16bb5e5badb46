package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saideepoki/counselling-app/internal/model"
	"github.com/saideepoki/counselling-app/internal/schedule"
	"github.com/saideepoki/counselling-app/internal/store"
)

type createMeetingRequest struct {
	UserEmail string `json:"user_email"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

type updateMeetingStatusRequest struct {
	Status string `json:"status"`
}

// callerProfile resolves the authenticated caller's profile or writes the
// error response itself.
func (s *Server) callerProfile(w http.ResponseWriter, r *http.Request) (*model.AccountProfile, bool) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid credentials")
		return nil, false
	}

	p, err := s.store.GetProfileByAccountID(r.Context(), claims.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.log.Error(r.Context(), "token subject has no profile", "account_id", claims.AccountID)
			writeError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid credentials")
			return nil, false
		}
		writeError(w, http.StatusInternalServerError, "internal", "failed to load profile")
		return nil, false
	}
	return p, true
}

func (s *Server) handleMeetings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleMeetingsCreate(w, r)
	case http.MethodGet:
		s.handleMeetingsList(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "GET or POST only")
	}
}

func (s *Server) handleMeetingsCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.callerProfile(w, r)
	if !ok {
		return
	}

	var req createMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON")
		return
	}

	m, err := s.sched.CreateMeeting(r.Context(), *caller, req.UserEmail, req.Date, req.Time)
	if err != nil {
		if errors.Is(err, schedule.ErrForbidden) {
			writeError(w, http.StatusForbidden, "forbidden", "only admins can schedule meetings")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"meeting": m})
}

func (s *Server) handleMeetingsList(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.callerProfile(w, r)
	if !ok {
		return
	}

	var meetings []model.Meeting
	var err error
	switch caller.Role {
	case model.RoleAdmin:
		meetings, err = s.sched.ListMeetingsForAdmin(r.Context(), *caller)
	case model.RoleUser:
		meetings, err = s.sched.ListMeetingsForUser(r.Context(), caller.Email)
	default:
		writeError(w, http.StatusForbidden, "forbidden", "unknown role")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "failed to list meetings")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"meetings": meetings})
}

func (s *Server) handleMeetingStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "POST only")
		return
	}

	caller, ok := s.callerProfile(w, r)
	if !ok {
		return
	}

	var req updateMeetingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON")
		return
	}

	m, err := s.sched.UpdateMeetingStatus(r.Context(), *caller, r.PathValue("id"), model.MeetingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrForbidden):
			writeError(w, http.StatusForbidden, "forbidden", "only admins can update meetings")
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found", "meeting not found")
		default:
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"meeting": m})
}
