package main

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/chenjie/puzzlesearch/internal/catalog"
	"github.com/chenjie/puzzlesearch/puzzle"
	"github.com/chenjie/puzzlesearch/solver"
)

// The upgrader mirrors the CORS policy on the REST routes: an empty
// allow-list admits every origin, and non-browser clients send no Origin
// header at all.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		log.Debug("\tws origin: ", origin)
		if origin == "" || len(config.AllowedOrigins) == 0 {
			return true
		}
		for _, allowed := range config.AllowedOrigins {
			if allowed == "*" || strings.EqualFold(allowed, origin) {
				return true
			}
		}
		return false
	},
}

// liveRequest is the single message a live-solve client sends after
// connecting. Strategy is "bfs" or "dfs"; empty picks bfs.
type liveRequest struct {
	Kind     string `json:"kind"`
	Strategy string `json:"strategy"`
	Puzzle   string `json:"puzzle"`
	MaxDepth int    `json:"max_depth"`
	Prune    *bool  `json:"prune"`
}

type liveProgress struct {
	Type     string `json:"type"` // "progress"
	Expanded int    `json:"expanded"`
	Depth    int    `json:"depth"`
	Frontier int    `json:"frontier"`
}

type liveResult struct {
	Type   string         `json:"type"` // "result"
	Result *solveResponse `json:"result"`
}

type liveError struct {
	Type  string `json:"type"` // "error"
	Error string `json:"error"`
}

// handleLiveSolve runs one solve per connection and streams progress events
// every config.ProgressEvery expansions, followed by a final result event.
// All writes happen on this goroutine (hooks run inside the solver call); a
// side goroutine only reads, so a client disconnect cancels the solve.
func handleLiveSolve(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("upgrade: ", err)
		return
	}
	defer c.Close()

	var req liveRequest
	if err := c.ReadJSON(&req); err != nil {
		log.Warn("live request: ", err)
		return
	}

	kind, err := catalog.ParseKind(req.Kind)
	if err != nil {
		c.WriteJSON(liveError{Type: "error", Error: err.Error()})
		return
	}
	initial, err := catalog.Parse(kind, req.Puzzle)
	if err != nil {
		c.WriteJSON(liveError{Type: "error", Error: err.Error()})
		return
	}
	strat := solver.StrategyBFS
	if req.Strategy != "" && !strings.EqualFold(req.Strategy, "bfs") {
		if strat, err = solver.ParseStrategy(req.Strategy); err != nil {
			c.WriteJSON(liveError{Type: "error", Error: err.Error()})
			return
		}
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		// the client sends nothing after the request; a read error means
		// the connection is gone and the solve should stop
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	prune := true
	if req.Prune != nil {
		prune = *req.Prune
	}
	var expanded, enqueued int
	res, err := solver.Solve(initial,
		solver.WithContext(ctx),
		solver.WithStrategy(strat),
		solver.WithMaxDepth(config.ClampDepth(req.MaxDepth)),
		solver.WithPruning(prune),
		solver.WithOnEnqueue(func(puzzle.State, int) { enqueued++ }),
		solver.WithOnExpand(func(_ puzzle.State, depth int) error {
			expanded++
			if expanded%config.ProgressEvery != 0 {
				return nil
			}
			return c.WriteJSON(liveProgress{
				Type:     "progress",
				Expanded: expanded,
				Depth:    depth,
				Frontier: enqueued - expanded,
			})
		}),
	)
	if errors.Is(err, context.Canceled) {
		log.Debug("live solve canceled by client")
		return
	} else if err != nil {
		c.WriteJSON(liveError{Type: "error", Error: err.Error()})
		return
	}

	archiveResult(kind, initial, res)
	if err := c.WriteJSON(liveResult{
		Type:   "result",
		Result: buildSolveResponse(kind, res, true),
	}); err != nil {
		log.Error("write: ", err)
	}
}
