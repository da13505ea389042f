package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dogworld/app"
	"dogworld/logging"
	"dogworld/model"
	"dogworld/players"
)

func newTestServer(t *testing.T, allowTick bool) (*httptest.Server, *app.Application) {
	t.Helper()
	game := model.NewGame()
	m := model.NewMap("m0", "Town")
	m.AddRoad(model.NewHorizontalRoad(model.Point{X: 0, Y: 0}, 10))
	if err := game.AddMap(m); err != nil {
		t.Fatalf("AddMap: %v", err)
	}

	a := app.NewApplication(game, players.NewRegistry(), logging.Init("error", "text"))
	go a.Run()
	t.Cleanup(a.Stop)

	mux := http.NewServeMux()
	New(a, logging.Init("error", "text"), allowTick).Register(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, a
}

func doRequest(t *testing.T, method, url, body string, headers map[string]string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	return resp
}

func TestGetMapsListsRegisteredMaps(t *testing.T) {
	server, _ := newTestServer(t, false)

	resp := doRequest(t, http.MethodGet, server.URL+pathMaps, "", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var maps []mapSummaryJSON
	if err := json.NewDecoder(resp.Body).Decode(&maps); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(maps) != 1 || maps[0].ID != "m0" {
		t.Fatalf("maps = %+v, want one m0", maps)
	}
}

func TestGetMapsRejectsPost(t *testing.T) {
	server, _ := newTestServer(t, false)

	resp := doRequest(t, http.MethodPost, server.URL+pathMaps, "", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
	if allow := resp.Header.Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("Allow = %q, want %q", allow, "GET, HEAD")
	}
}

func TestGetMapByIDNotFound(t *testing.T) {
	server, _ := newTestServer(t, false)

	resp := doRequest(t, http.MethodGet, server.URL+pathMap+"missing", "", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	var body errorBody
	json.NewDecoder(resp.Body).Decode(&body)
	if body.Code != "mapNotFound" {
		t.Fatalf("code = %q, want mapNotFound", body.Code)
	}
}

func TestGetMapByIDReturnsDetail(t *testing.T) {
	server, _ := newTestServer(t, false)

	resp := doRequest(t, http.MethodGet, server.URL+pathMap+"m0", "", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var detail mapDetailJSON
	json.NewDecoder(resp.Body).Decode(&detail)
	if len(detail.Roads) != 1 {
		t.Fatalf("roads = %d, want 1", len(detail.Roads))
	}
}

func TestJoinGameSucceeds(t *testing.T) {
	server, _ := newTestServer(t, false)

	resp := doRequest(t, http.MethodPost, server.URL+pathJoin, `{"userName":"alice","mapId":"m0"}`, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var joined joinResponse
	json.NewDecoder(resp.Body).Decode(&joined)
	if len(joined.AuthToken) != 32 {
		t.Fatalf("authToken = %q, want 32 hex chars", joined.AuthToken)
	}
}

func TestJoinGameEmptyNameIsBadRequest(t *testing.T) {
	server, _ := newTestServer(t, false)

	resp := doRequest(t, http.MethodPost, server.URL+pathJoin, `{"userName":"","mapId":"m0"}`, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestJoinGameUnknownMapIsNotFound(t *testing.T) {
	server, _ := newTestServer(t, false)

	resp := doRequest(t, http.MethodPost, server.URL+pathJoin, `{"userName":"alice","mapId":"missing"}`, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestJoinGameMissingMapIDFieldIsBadRequest(t *testing.T) {
	server, _ := newTestServer(t, false)

	resp := doRequest(t, http.MethodPost, server.URL+pathJoin, `{"userName":"alice"}`, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestJoinGameEmptyMapIDFieldIsNotFound(t *testing.T) {
	server, _ := newTestServer(t, false)

	resp := doRequest(t, http.MethodPost, server.URL+pathJoin, `{"userName":"alice","mapId":""}`, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func joinAndGetToken(t *testing.T, server *httptest.Server) string {
	t.Helper()
	resp := doRequest(t, http.MethodPost, server.URL+pathJoin, `{"userName":"alice","mapId":"m0"}`, nil)
	defer resp.Body.Close()
	var joined joinResponse
	json.NewDecoder(resp.Body).Decode(&joined)
	return joined.AuthToken
}

func TestPlayersRequiresAuthorization(t *testing.T) {
	server, _ := newTestServer(t, false)

	resp := doRequest(t, http.MethodGet, server.URL+pathPlayer, "", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestPlayersRejectsUnknownToken(t *testing.T) {
	server, _ := newTestServer(t, false)

	resp := doRequest(t, http.MethodGet, server.URL+pathPlayer, "", map[string]string{
		"Authorization": "Bearer " + strings.Repeat("a", 32),
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestPlayersListsSessionDogs(t *testing.T) {
	server, _ := newTestServer(t, false)
	token := joinAndGetToken(t, server)

	resp := doRequest(t, http.MethodGet, server.URL+pathPlayer, "", map[string]string{
		"Authorization": "Bearer " + token,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out map[string]dogNameJSON
	json.NewDecoder(resp.Body).Decode(&out)
	if len(out) != 1 {
		t.Fatalf("players = %+v, want one entry", out)
	}
}

func TestStateReturnsPositions(t *testing.T) {
	server, _ := newTestServer(t, false)
	token := joinAndGetToken(t, server)

	resp := doRequest(t, http.MethodGet, server.URL+pathState, "", map[string]string{
		"Authorization": "Bearer " + token,
	})
	defer resp.Body.Close()
	var state stateResponse
	json.NewDecoder(resp.Body).Decode(&state)
	if len(state.Players) != 1 {
		t.Fatalf("players = %+v, want one entry", state.Players)
	}
}

func TestActionMovesPlayer(t *testing.T) {
	server, a := newTestServer(t, false)
	token := joinAndGetToken(t, server)

	resp := doRequest(t, http.MethodPost, server.URL+pathAction, `{"move":"R"}`, map[string]string{
		"Authorization": "Bearer " + token,
		"Content-Type":  "application/json",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	player := a.FindByToken(players.Token(token))
	if player.Dog().Speed().U <= 0 {
		t.Fatalf("speed.U = %v, want positive after moving right", player.Dog().Speed().U)
	}
}

func TestActionRequiresJSONContentType(t *testing.T) {
	server, _ := newTestServer(t, false)
	token := joinAndGetToken(t, server)

	resp := doRequest(t, http.MethodPost, server.URL+pathAction, `{"move":"R"}`, map[string]string{
		"Authorization": "Bearer " + token,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestTickDisabledByDefaultIsBadRequest(t *testing.T) {
	server, _ := newTestServer(t, false)

	resp := doRequest(t, http.MethodPost, server.URL+pathTick, `{"timeDelta":100}`, map[string]string{
		"Content-Type": "application/json",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestTickAdvancesWhenEnabled(t *testing.T) {
	server, _ := newTestServer(t, true)
	token := joinAndGetToken(t, server)
	_ = doRequest(t, http.MethodPost, server.URL+pathAction, `{"move":"R"}`, map[string]string{
		"Authorization": "Bearer " + token,
		"Content-Type":  "application/json",
	}).Body.Close()

	resp := doRequest(t, http.MethodPost, server.URL+pathTick, `{"timeDelta":1000}`, map[string]string{
		"Content-Type": "application/json",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	stateResp := doRequest(t, http.MethodGet, server.URL+pathState, "", map[string]string{
		"Authorization": "Bearer " + token,
	})
	defer stateResp.Body.Close()
	var state stateResponse
	json.NewDecoder(stateResp.Body).Decode(&state)
	for _, d := range state.Players {
		if d.Pos[0] <= 0 {
			t.Fatalf("pos = %+v, want positive x after a tick", d.Pos)
		}
	}
}

func TestUnknownAPIRouteIsBadRequest(t *testing.T) {
	server, _ := newTestServer(t, false)

	resp := doRequest(t, http.MethodGet, server.URL+"/api/v1/bogus", "", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
