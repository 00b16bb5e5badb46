package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"unicode"

	"github.com/saideepoki/counselling-app/internal/model"
	"github.com/saideepoki/counselling-app/internal/session"
	"github.com/saideepoki/counselling-app/internal/store"
)

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type registerResponse struct {
	Profile        model.AccountProfile `json:"profile"`
	PasscodeIssued bool                 `json:"passcode_issued"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Passcode string `json:"passcode"`
}

type loginResponse struct {
	Token   string               `json:"token"`
	Profile model.AccountProfile `json:"profile"`
}

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validatePassword(pw string) string {
	if len(pw) < 6 {
		return "password must be at least 6 characters"
	}
	hasUpper := false
	hasSpecial := false
	for _, r := range pw {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			hasSpecial = true
		}
	}
	if !hasUpper {
		return "password must contain at least one uppercase letter"
	}
	if !hasSpecial {
		return "password must contain at least one special character"
	}
	return ""
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "POST only")
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if !emailRegex.MatchString(req.Email) {
		writeError(w, http.StatusBadRequest, "invalid_email", "a valid email address is required")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		writeError(w, http.StatusBadRequest, "invalid_username", "username is required")
		return
	}
	if msg := validatePassword(req.Password); msg != "" {
		writeError(w, http.StatusBadRequest, "invalid_password", msg)
		return
	}

	role := model.Role(req.Role)
	if req.Role == "" {
		role = model.RoleUser
	}
	if !role.Valid() {
		writeError(w, http.StatusBadRequest, "invalid_role", "role must be user or admin")
		return
	}

	res, err := s.sessions.Register(r.Context(), req.Email, req.Username, req.Password, role)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "conflict", "email already registered")
			return
		}
		s.log.Error(r.Context(), "register failed", "email", req.Email, "err", err)
		writeError(w, http.StatusInternalServerError, "internal", "failed to register")
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{
		Profile:        res.Profile,
		PasscodeIssued: res.PasscodeIssued,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "POST only")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "email and password are required")
		return
	}

	sess, err := s.sessions.Login(r.Context(), req.Email, req.Password, req.Passcode)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrAuthenticationFailed):
			writeError(w, http.StatusUnauthorized, "unauthorized", "invalid email or password")
		case errors.Is(err, session.ErrProfileNotFound):
			// Data-integrity fault; deliberately generic to the caller.
			writeError(w, http.StatusUnauthorized, "unauthorized", "login failed")
		case errors.Is(err, session.ErrPasscodeRequired):
			writeError(w, http.StatusForbidden, "passcode_required", "first admin login requires the organization passcode")
		case errors.Is(err, session.ErrInvalidPasscode):
			writeError(w, http.StatusForbidden, "invalid_passcode", "invalid or expired passcode")
		default:
			s.log.Error(r.Context(), "login failed", "email", req.Email, "err", err)
			writeError(w, http.StatusInternalServerError, "internal", "login failed")
		}
		return
	}

	token, err := s.tokens.issue(sess.Profile)
	if err != nil {
		s.log.Error(r.Context(), "token issue failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal", "failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, Profile: sess.Profile})
}
