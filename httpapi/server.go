// Package httpapi exposes the game engine over the JSON HTTP API:
// map listing/lookup, joining a game, reading player/session state,
// and issuing move or tick commands.
package httpapi

import (
	"net/http"
	"regexp"

	"github.com/sirupsen/logrus"

	"dogworld/app"
	"dogworld/players"
)

const (
	pathMaps   = "/api/v1/maps"
	pathMap    = "/api/v1/maps/"
	pathJoin   = "/api/v1/game/join"
	pathPlayer = "/api/v1/game/players"
	pathState  = "/api/v1/game/state"
	pathAction = "/api/v1/game/player/action"
	pathTick   = "/api/v1/game/tick"
)

var bearerTokenPattern = regexp.MustCompile(`(?i)^Bearer\s+([0-9a-fA-F]{32})$`)

// Server wires an *app.Application to a mux of JSON API handlers.
// allowTick controls whether POST /api/v1/game/tick is reachable - it
// exists only for test/manual-tick deployments without a ticker.
type Server struct {
	app       *app.Application
	log       *logrus.Logger
	allowTick bool
}

func New(application *app.Application, log *logrus.Logger, allowTick bool) *Server {
	return &Server{app: application, log: log, allowTick: allowTick}
}

// Register attaches every API route to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc(pathMaps, s.withLogging(s.handleMaps))
	mux.HandleFunc(pathMap, s.withLogging(s.handleMapByID))
	mux.HandleFunc(pathJoin, s.withLogging(s.handleJoin))
	mux.HandleFunc(pathPlayer, s.withLogging(s.handlePlayers))
	mux.HandleFunc(pathState, s.withLogging(s.handleState))
	mux.HandleFunc(pathAction, s.withLogging(s.handleAction))
	mux.HandleFunc(pathTick, s.withLogging(s.handleTick))
	mux.HandleFunc("/api/", s.withLogging(s.handleUnknownAPIRoute))
}

func (s *Server) handleUnknownAPIRoute(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusBadRequest, "badRequest", "Bad request")
}

// extractToken pulls a bearer token out of the Authorization header,
// the same `^Bearer\s+([0-9a-fA-F]{32})$` (case-insensitive) pattern
// the original server's TryExtractToken matches.
func extractToken(r *http.Request) (players.Token, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	match := bearerTokenPattern.FindStringSubmatch(header)
	if match == nil {
		return "", false
	}
	return players.Token(match[1]), true
}

// authorize extracts and resolves the bearer token on r, writing the
// matching 401 response and returning ok=false if it is missing or
// unknown. A missing or malformed header never reaches Application -
// it is rejected here, the same way the original's TryExtractToken
// never touches application.h's Application.
func (s *Server) authorize(w http.ResponseWriter, r *http.Request) (*players.Player, bool) {
	token, ok := extractToken(r)
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "invalidToken", "Authorization header is required")
		return nil, false
	}
	player, err := s.app.ResolveToken(token)
	if err != nil {
		writeError(w, r, http.StatusUnauthorized, "unknownToken", "Player token has not been found")
		return nil, false
	}
	return player, true
}
