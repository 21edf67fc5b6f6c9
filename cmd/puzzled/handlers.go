package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/chenjie/puzzlesearch/internal/catalog"
	"github.com/chenjie/puzzlesearch/puzzle"
	"github.com/chenjie/puzzlesearch/solver"
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

type SolveParams struct {
	Kind     string `schema:"kind,required"`
	Strategy string `schema:"strategy"`
	MaxDepth int    `schema:"max_depth"`
	Prune    *bool  `schema:"prune"`
	NoPath   bool   `schema:"no_path"`
}

type RecordsParams struct {
	Kind     string `schema:"kind"`
	Strategy string `schema:"strategy"`
	Solved   *bool  `schema:"solved"`
	Limit    int    `schema:"limit"`
}

type solveResponse struct {
	Kind     string       `json:"kind"`
	Strategy string       `json:"strategy"`
	Solved   bool         `json:"solved"`
	Moves    int          `json:"moves"`
	Path     []string     `json:"path,omitempty"`
	Stats    statsPayload `json:"stats"`
}

type statsPayload struct {
	Expanded    int   `json:"expanded"`
	Generated   int   `json:"generated"`
	Discovered  int   `json:"discovered"`
	Pruned      int   `json:"pruned"`
	MaxFrontier int   `json:"max_frontier"`
	MaxDepth    int   `json:"max_depth"`
	DurationMs  int64 `json:"duration_ms"`
}

type compareResponse struct {
	Kind string         `json:"kind"`
	BFS  *solveResponse `json:"bfs"`
	DFS  *solveResponse `json:"dfs"`
}

type kindInfo struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

func handleKinds(w http.ResponseWriter, r *http.Request) {
	kinds := catalog.Kinds()
	infos := make([]kindInfo, len(kinds))
	for i, k := range kinds {
		infos[i] = kindInfo{Kind: string(k), Description: catalog.Describe(k)}
	}
	sendJSON(w, infos)
}

// handleSolve reads the puzzle text from the request body, runs the engine
// picked by the strategy parameter ("both" races the two), and responds with
// the rendered path and counters. "No solution" is a 200 with solved=false;
// only malformed input is a client error.
func handleSolve(w http.ResponseWriter, r *http.Request) {
	var params SolveParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}
	kind, err := catalog.ParseKind(params.Kind)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	initial, err := catalog.Parse(kind, string(body))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}

	prune := true
	if params.Prune != nil {
		prune = *params.Prune
	}
	opts := []solver.Option{
		solver.WithContext(r.Context()),
		solver.WithMaxDepth(config.ClampDepth(params.MaxDepth)),
		solver.WithPruning(prune),
	}
	includePath := !params.NoPath

	if params.Strategy == "" || strings.EqualFold(params.Strategy, "both") {
		cmp, err := solver.Compare(initial, opts...)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			log.Error("compare failed: ", err)
			return
		}
		archiveResult(kind, initial, cmp.BFS)
		archiveResult(kind, initial, cmp.DFS)
		sendJSON(w, compareResponse{
			Kind: string(kind),
			BFS:  buildSolveResponse(kind, cmp.BFS, includePath),
			DFS:  buildSolveResponse(kind, cmp.DFS, includePath),
		})
		return
	}

	strat, err := solver.ParseStrategy(params.Strategy)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}
	res, err := solver.Solve(initial, append(opts, solver.WithStrategy(strat))...)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error("solve failed: ", err)
		return
	}
	archiveResult(kind, initial, res)
	sendJSON(w, buildSolveResponse(kind, res, includePath))
}

func buildSolveResponse(kind catalog.Kind, res *solver.Result, includePath bool) *solveResponse {
	resp := &solveResponse{
		Kind:     string(kind),
		Strategy: res.Strategy.String(),
		Solved:   res.Solved,
		Moves:    res.Moves,
		Stats: statsPayload{
			Expanded:    res.Stats.Expanded,
			Generated:   res.Stats.Generated,
			Discovered:  res.Stats.Discovered,
			Pruned:      res.Stats.Pruned,
			MaxFrontier: res.Stats.MaxFrontier,
			MaxDepth:    res.Stats.MaxDepth,
			DurationMs:  res.Stats.Duration.Milliseconds(),
		},
	}
	if includePath && res.Solved {
		resp.Path = make([]string, len(res.Path))
		for i, s := range res.Path {
			resp.Path[i] = fmt.Sprint(s)
		}
	}
	return resp
}

// archiveResult stores a finished run, keyed (kind, strategy, puzzle_key).
// A duplicate means this exact run was archived before; that is not an
// error, and nothing here may fail the request that triggered it.
func archiveResult(kind catalog.Kind, initial puzzle.State, res *solver.Result) {
	if pg == nil {
		return
	}
	rec := &SolveRecord{
		Kind:        string(kind),
		Strategy:    res.Strategy.String(),
		PuzzleKey:   initial.Key(),
		Solved:      res.Solved,
		Moves:       res.Moves,
		Expanded:    res.Stats.Expanded,
		Generated:   res.Stats.Generated,
		Pruned:      res.Stats.Pruned,
		MaxFrontier: res.Stats.MaxFrontier,
		DurationMs:  res.Stats.Duration.Milliseconds(),
	}
	_, err := pg.InsertSolveRecord(context.Background(), rec)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		log.Debugf("solve already archived: %s/%s", kind, res.Strategy)
		return
	} else if err != nil {
		log.Error("unable to archive solve: ", err)
		return
	}
	log.WithField("solve_record_id", rec.SolveRecordId).Debug("solve archived")
}

func handleGetRecords(w http.ResponseWriter, r *http.Request) {
	if pg == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("solve archive disabled"))
		return
	}
	var params RecordsParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}
	if params.Limit <= 0 {
		params.Limit = 50
	} else if params.Limit > 500 {
		params.Limit = 500
	}
	records, err := pg.ListSolveRecords(r.Context(), params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error("unable to list solve records: ", err)
		return
	}
	sendJSON(w, records)
}

func handleGetRecord(w http.ResponseWriter, r *http.Request) {
	if pg == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("solve archive disabled"))
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	rec, err := pg.GetSolveRecord(r.Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error("unable to load solve record: ", err)
		return
	}
	sendJSON(w, rec)
}
