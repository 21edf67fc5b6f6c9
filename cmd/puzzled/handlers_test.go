package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// setupTestServer serves the full handler chain with the archive disabled and
// live progress on every expansion.
func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	config = &Config{Version: configVersion, Addr: ":0", ProgressEvery: 1}
	pg = nil
	srv := httptest.NewServer(buildHandler())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, v any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
}

func postSolve(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "text/plain", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestKindsEndpoint(t *testing.T) {
	srv := setupTestServer(t)

	var infos []kindInfo
	getJSON(t, srv.URL+"/v1/kinds", &infos)
	if len(infos) != 4 {
		t.Fatalf("got %d kinds; want 4", len(infos))
	}
	if infos[0].Kind != "mnpuzzle" {
		t.Errorf("first kind = %q; want \"mnpuzzle\"", infos[0].Kind)
	}
	for _, info := range infos {
		if info.Description == "" {
			t.Errorf("kind %q has no description", info.Kind)
		}
	}
}

func TestSolveEndpoint_BFS(t *testing.T) {
	srv := setupTestServer(t)

	resp := postSolve(t, srv.URL+"/v1/solve?kind=wordladder&strategy=bfs",
		"cat dog cat cot cog dog")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d; want 200", resp.StatusCode)
	}
	var sr solveResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatal(err)
	}
	if !sr.Solved || sr.Moves != 3 {
		t.Errorf("solved %v in %d moves; want solved in 3", sr.Solved, sr.Moves)
	}
	if sr.Strategy != "bfs" {
		t.Errorf("strategy = %q; want \"bfs\"", sr.Strategy)
	}
	if len(sr.Path) != 4 {
		t.Errorf("path holds %d states; want 4", len(sr.Path))
	}
	if sr.Stats.Expanded == 0 {
		t.Error("stats report zero expansions")
	}
}

func TestSolveEndpoint_BothStrategies(t *testing.T) {
	srv := setupTestServer(t)

	// bat/bag/bog is a longer detour that depth-first commits to
	resp := postSolve(t, srv.URL+"/v1/solve?kind=wordladder",
		"cat dog cat bat bag bog dog cot cog")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d; want 200", resp.StatusCode)
	}
	var cr compareResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		t.Fatal(err)
	}
	if cr.BFS == nil || cr.DFS == nil {
		t.Fatal("compare response is missing a side")
	}
	if cr.BFS.Moves != 3 {
		t.Errorf("bfs moves = %d; want 3", cr.BFS.Moves)
	}
	if cr.DFS.Moves != 4 {
		t.Errorf("dfs moves = %d; want 4", cr.DFS.Moves)
	}
}

func TestSolveEndpoint_NoSolutionIsOK(t *testing.T) {
	srv := setupTestServer(t)

	resp := postSolve(t, srv.URL+"/v1/solve?kind=wordladder&strategy=bfs",
		"cat dog cat cot")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d; an unsolvable puzzle is not a client error", resp.StatusCode)
	}
	var sr solveResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatal(err)
	}
	if sr.Solved || sr.Moves != -1 {
		t.Errorf("solved %v, moves %d; want unsolved with -1", sr.Solved, sr.Moves)
	}
	if len(sr.Path) != 0 {
		t.Errorf("unsolved response carries a %d-state path", len(sr.Path))
	}
}

func TestSolveEndpoint_NoPath(t *testing.T) {
	srv := setupTestServer(t)

	resp := postSolve(t, srv.URL+"/v1/solve?kind=wordladder&strategy=bfs&no_path=true",
		"cat dog cat cot cog dog")
	var sr solveResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatal(err)
	}
	if !sr.Solved || sr.Moves != 3 {
		t.Errorf("solved %v in %d moves; want solved in 3", sr.Solved, sr.Moves)
	}
	if len(sr.Path) != 0 {
		t.Errorf("no_path=true still returned %d states", len(sr.Path))
	}
}

func TestSolveEndpoint_ClientErrors(t *testing.T) {
	srv := setupTestServer(t)

	cases := []struct {
		name  string
		query string
		body  string
	}{
		{"MissingKind", "", "cat dog"},
		{"UnknownKind", "?kind=chess", "cat dog"},
		{"UnknownStrategy", "?kind=wordladder&strategy=a-star", "cat dog cat"},
		{"MalformedPuzzle", "?kind=sudoku&strategy=bfs", "12\n21"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postSolve(t, srv.URL+"/v1/solve"+tc.query, tc.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d; want 400", resp.StatusCode)
			}
		})
	}
}

func TestSolveEndpoint_DepthCap(t *testing.T) {
	srv := setupTestServer(t)
	config.MaxDepthCap = 2

	// the shortest ladder needs three moves, one past the cap
	resp := postSolve(t, srv.URL+"/v1/solve?kind=wordladder&strategy=bfs",
		"cat dog cat cot cog dog")
	var sr solveResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatal(err)
	}
	if sr.Solved {
		t.Error("solved past the configured depth cap")
	}
}

func TestRecordsEndpoints_ArchiveDisabled(t *testing.T) {
	srv := setupTestServer(t)

	for _, path := range []string{"/v1/records", "/v1/records/1"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("GET %s status = %d; want 503", path, resp.StatusCode)
		}
	}
}

func TestCORSAllowsAnyOriginByDefault(t *testing.T) {
	srv := setupTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/v1/kinds", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Origin", "http://puzzles.example.com")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://puzzles.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q; want the request origin", got)
	}
}

// liveEnvelope covers every live-solve event shape for decoding.
type liveEnvelope struct {
	Type     string         `json:"type"`
	Expanded int            `json:"expanded"`
	Frontier int            `json:"frontier"`
	Result   *solveResponse `json:"result"`
	Error    string         `json:"error"`
}

func dialLive(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/solve/live"
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { c.Close() })
	c.SetReadDeadline(time.Now().Add(5 * time.Second))
	return c
}

func TestLiveSolveEndpoint(t *testing.T) {
	srv := setupTestServer(t)
	c := dialLive(t, srv)

	err := c.WriteJSON(liveRequest{
		Kind:     "wordladder",
		Strategy: "bfs",
		Puzzle:   "cat dog cat cot cog dog",
	})
	if err != nil {
		t.Fatal(err)
	}

	var progress int
	for i := 0; i < 100; i++ {
		var env liveEnvelope
		if err := c.ReadJSON(&env); err != nil {
			t.Fatalf("read event: %v", err)
		}
		switch env.Type {
		case "progress":
			progress++
		case "result":
			if progress == 0 {
				t.Error("result arrived without any progress events")
			}
			if env.Result == nil || !env.Result.Solved || env.Result.Moves != 3 {
				t.Fatalf("result = %+v; want solved in 3 moves", env.Result)
			}
			if len(env.Result.Path) != 4 {
				t.Errorf("result path holds %d states; want 4", len(env.Result.Path))
			}
			return
		case "error":
			t.Fatalf("live solve failed: %s", env.Error)
		default:
			t.Fatalf("unknown event type %q", env.Type)
		}
	}
	t.Fatal("no result event after 100 reads")
}

func TestLiveSolveEndpoint_UnknownKind(t *testing.T) {
	srv := setupTestServer(t)
	c := dialLive(t, srv)

	if err := c.WriteJSON(liveRequest{Kind: "chess", Puzzle: ""}); err != nil {
		t.Fatal(err)
	}
	var env liveEnvelope
	if err := c.ReadJSON(&env); err != nil {
		t.Fatalf("read event: %v", err)
	}
	if env.Type != "error" || env.Error == "" {
		t.Errorf("event = %+v; want an error event", env)
	}
}

func TestLiveSolveEndpoint_OriginRestricted(t *testing.T) {
	srv := setupTestServer(t)
	config.AllowedOrigins = []string{"http://puzzles.example.com"}

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/solve/live"

	header := http.Header{"Origin": {"http://evil.example.com"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	if err == nil {
		t.Fatal("handshake succeeded from an origin outside the allow-list")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("handshake error = %v; want a 403 response", err)
	}
	resp.Body.Close()

	header = http.Header{"Origin": {"http://puzzles.example.com"}}
	c, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		t.Fatalf("dial from the allowed origin: %v", err)
	}
	c.Close()
}
