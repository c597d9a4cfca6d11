package server

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/simfrisk/SleepJournal/auth"
	"github.com/simfrisk/SleepJournal/internal/config"
	"github.com/simfrisk/SleepJournal/settings"
	"github.com/simfrisk/SleepJournal/sleep"
	"github.com/simfrisk/SleepJournal/token"
	"github.com/simfrisk/SleepJournal/users"
)

// Repos holds all repository dependencies for the Server
type Repos struct {
	Users    users.UserRepo
	Weeks    sleep.Repo
	Settings settings.Repo
}

type Server struct {
	env           string
	mux           *http.ServeMux
	routes        []string
	config        config.Config
	repos         Repos
	sessions      *auth.SessionService
	codec         *token.Codec
	refreshCookie *RefreshCookie
}

func New(cfg config.Config, repos Repos) (*Server, error) {
	if repos.Users == nil {
		return nil, errors.New("[Server New] Users repo is required")
	}
	if repos.Weeks == nil {
		return nil, errors.New("[Server New] Weeks repo is required")
	}
	if repos.Settings == nil {
		return nil, errors.New("[Server New] Settings repo is required")
	}

	codec := token.NewCodec(token.NewHMACSigner(cfg.GetJWTSecret()))
	issuer := token.NewIssuer(codec, token.WithTokenExpiry(cfg.GetAccessTokenTTL(), cfg.GetRefreshTokenTTL()))

	sessionService, err := auth.NewSessionService(repos.Users, issuer, codec)
	if err != nil {
		return nil, errors.Wrap(err, "[Server New] failed to create session service")
	}

	s := &Server{
		env:           cfg.GetEnv(),
		mux:           http.NewServeMux(),
		config:        cfg,
		repos:         repos,
		sessions:      sessionService,
		codec:         codec,
		refreshCookie: NewRefreshCookie(issuer.RefreshTTL(), cfg.IsProduction()),
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "development" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		log.Info().Str("route", route).Msg("registered")
	}
}
