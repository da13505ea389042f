package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"dogworld/app"
	"dogworld/model"
)

func (s *Server) handleMaps(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeMethodNotAllowed(w, r, "GET, HEAD")
		return
	}

	maps := s.app.ListMaps()
	out := make([]mapSummaryJSON, len(maps))
	for i, m := range maps {
		out[i] = mapToSummaryJSON(m)
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) handleMapByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeMethodNotAllowed(w, r, "GET, HEAD")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, pathMap)
	m := s.app.FindMap(model.MapID(id))
	if m == nil {
		writeError(w, r, http.StatusNotFound, "mapNotFound", "Map not found")
		return
	}
	writeJSON(w, r, http.StatusOK, mapToDetailJSON(m))
}

type joinRequest struct {
	UserName string  `json:"userName"`
	MapID    *string `json:"mapId"`
}

type joinResponse struct {
	AuthToken string `json:"authToken"`
	PlayerID  int64  `json:"playerId"`
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, r, "POST")
		return
	}

	req, err := decodeJSON[joinRequest](r)
	if err != nil || req.UserName == "" || req.MapID == nil {
		writeError(w, r, http.StatusBadRequest, "invalidArgument", "Join game request parse error")
		return
	}

	result, err := s.app.JoinGame(model.MapID(*req.MapID), req.UserName)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, joinResponse{
			AuthToken: string(result.Token),
			PlayerID:  int64(result.DogID),
		})
	case errors.Is(err, app.ErrMapNotFound):
		writeError(w, r, http.StatusNotFound, "mapNotFound", "Map not found")
	default:
		writeError(w, r, http.StatusBadRequest, "invalidArgument", "Invalid name")
	}
}

func (s *Server) handlePlayers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeMethodNotAllowed(w, r, "GET, HEAD")
		return
	}

	player, ok := s.authorize(w, r)
	if !ok {
		return
	}

	dogs := s.app.SessionDogs(player)
	out := make(map[string]dogNameJSON, len(dogs))
	for _, d := range dogs {
		out[strconv.FormatUint(uint64(d.ID()), 10)] = dogNameJSON{Name: d.Name()}
	}
	writeJSON(w, r, http.StatusOK, out)
}

type stateResponse struct {
	Players map[string]dogJSON `json:"players"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeMethodNotAllowed(w, r, "GET, HEAD")
		return
	}

	player, ok := s.authorize(w, r)
	if !ok {
		return
	}

	dogs := s.app.SessionDogs(player)
	out := make(map[string]dogJSON, len(dogs))
	for _, d := range dogs {
		out[strconv.FormatUint(uint64(d.ID()), 10)] = dogToJSON(d)
	}
	writeJSON(w, r, http.StatusOK, stateResponse{Players: out})
}

type actionRequest struct {
	Move string `json:"move"`
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, r, "POST")
		return
	}
	if !hasJSONContentType(r) {
		writeError(w, r, http.StatusBadRequest, "invalidArgument", "Invalid content type")
		return
	}

	player, ok := s.authorize(w, r)
	if !ok {
		return
	}

	req, err := decodeJSON[actionRequest](r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalidArgument", "Failed to parse action")
		return
	}

	if err := s.app.MovePlayer(player, req.Move); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalidArgument", "Failed to parse action")
		return
	}
	writeJSON(w, r, http.StatusOK, struct{}{})
}

type tickRequest struct {
	TimeDelta int64 `json:"timeDelta"`
}

func (s *Server) handleTick(w http.ResponseWriter, r *http.Request) {
	if !s.allowTick {
		writeError(w, r, http.StatusBadRequest, "badRequest", "Invalid endpoint")
		return
	}
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, r, "POST")
		return
	}
	if !hasJSONContentType(r) {
		writeError(w, r, http.StatusBadRequest, "invalidArgument", "Invalid content type")
		return
	}

	req, err := decodeJSON[tickRequest](r)
	if err != nil || req.TimeDelta < 0 {
		writeError(w, r, http.StatusBadRequest, "invalidArgument", "Failed to parse tick request JSON")
		return
	}

	s.app.Tick(millisecondsToDuration(req.TimeDelta))
	writeJSON(w, r, http.StatusOK, struct{}{})
}

func hasJSONContentType(r *http.Request) bool {
	return strings.EqualFold(strings.TrimSpace(r.Header.Get("Content-Type")), "application/json")
}
