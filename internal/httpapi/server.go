package httpapi

import (
	"net/http"

	"github.com/saideepoki/counselling-app/internal/config"
	"github.com/saideepoki/counselling-app/internal/logging"
	"github.com/saideepoki/counselling-app/internal/schedule"
	"github.com/saideepoki/counselling-app/internal/session"
	"github.com/saideepoki/counselling-app/internal/store"
)

type Server struct {
	cfg      config.Config
	store    store.Store
	sessions *session.Resolver
	sched    *schedule.Scheduler
	guard    *schedule.Guard
	tokens   *tokenCodec
	log      logging.Logger
	mux      *http.ServeMux
}

func NewServer(cfg config.Config, st store.Store, sessions *session.Resolver, sched *schedule.Scheduler, guard *schedule.Guard, log logging.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		store:    st,
		sessions: sessions,
		sched:    sched,
		guard:    guard,
		tokens:   newTokenCodec(cfg.JWTSecret),
		log:      log,
		mux:      http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	h = s.recoverMiddleware(h)
	h = requestIDMiddleware(h)
	h = s.loggingMiddleware(h)
	h = s.authMiddleware(h)
	return h
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)

	s.mux.HandleFunc("/v1/auth/register", s.handleRegister)
	s.mux.HandleFunc("/v1/auth/login", s.handleLogin)

	s.mux.HandleFunc("/v1/meetings", s.handleMeetings)
	s.mux.HandleFunc("/v1/meetings/{id}/status", s.handleMeetingStatus)

	s.mux.HandleFunc("/v1/conversations", s.handleConversations)
}
