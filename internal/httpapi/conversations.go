package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/saideepoki/counselling-app/internal/model"
	"github.com/saideepoki/counselling-app/internal/store"
)

type createConversationRequest struct {
	Title string `json:"title"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleConversations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleConversationsCreate(w, r)
	case http.MethodGet:
		s.handleConversationsList(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "GET or POST only")
	}
}

// permittedMeetings returns the meetings whose schedule is checked before the
// caller may open a conversation. Users are matched by email, admins by the
// meetings they own.
func (s *Server) permittedMeetings(r *http.Request, caller *model.AccountProfile) ([]model.Meeting, error) {
	switch caller.Role {
	case model.RoleAdmin:
		return s.store.QueryMeetings(r.Context(), store.MeetingFilter{AdminID: caller.ID})
	case model.RoleUser:
		return s.store.QueryMeetings(r.Context(), store.MeetingFilter{UserEmail: caller.Email})
	}
	return nil, nil
}

func (s *Server) handleConversationsCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.callerProfile(w, r)
	if !ok {
		return
	}

	var req createConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "title is required")
		return
	}

	meetings, err := s.permittedMeetings(r, caller)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "failed to load meetings")
		return
	}
	if !s.guard.AnyPermittedNow(meetings) {
		writeError(w, http.StatusForbidden, "schedule_window", "you are not within your scheduled meeting time")
		return
	}

	conv, err := s.store.CreateConversation(r.Context(), model.Conversation{
		UserEmail: caller.Email,
		Title:     req.Title,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "failed to create conversation")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"conversation": conv})
}

func (s *Server) handleConversationsList(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.callerProfile(w, r)
	if !ok {
		return
	}

	convs, err := s.store.ListConversations(r.Context(), store.ConversationFilter{UserEmail: caller.Email})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "failed to list conversations")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"conversations": convs})
}
