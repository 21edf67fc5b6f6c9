package main

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgres struct {
	db *pgxpool.Pool
}

// NewPostgres opens a connection pool for the solve archive, verifies it with
// a ping, and creates the schema when it does not exist yet.
func NewPostgres(ctx context.Context, dbUrl string) (*postgres, error) {
	poolConfig, err := pgxpool.ParseConfig(dbUrl)
	if err != nil {
		return nil, err
	}
	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}
	pg := &postgres{db}
	if err := pg.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := pg.createSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return pg, nil
}

func (pg *postgres) Ping(ctx context.Context) error {
	return pg.db.Ping(ctx)
}

func (pg *postgres) Close() {
	pg.db.Close()
}

// createSchema sets up the single archive table. The unique key makes
// re-archiving the same run a detectable conflict instead of a duplicate row.
func (pg *postgres) createSchema(ctx context.Context) error {
	_, err := pg.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS solve_record (
			solve_record_id BIGSERIAL PRIMARY KEY,
			kind            TEXT NOT NULL,
			strategy        TEXT NOT NULL,
			puzzle_key      TEXT NOT NULL,
			solved          BOOLEAN NOT NULL,
			moves           INTEGER NOT NULL,
			expanded        INTEGER NOT NULL,
			generated       INTEGER NOT NULL,
			pruned          INTEGER NOT NULL,
			max_frontier    INTEGER NOT NULL,
			duration_ms     BIGINT NOT NULL,
			solved_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (kind, strategy, puzzle_key)
		);
		CREATE INDEX IF NOT EXISTS idx_solve_record_kind
			ON solve_record (kind, solved_at DESC);`)
	return err
}

// SolveRecord is one archived solver run.
type SolveRecord struct {
	SolveRecordId int64     `json:"solve_record_id"`
	Kind          string    `json:"kind"`
	Strategy      string    `json:"strategy"`
	PuzzleKey     string    `json:"puzzle_key"`
	Solved        bool      `json:"solved"`
	Moves         int       `json:"moves"`
	Expanded      int       `json:"expanded"`
	Generated     int       `json:"generated"`
	Pruned        int       `json:"pruned"`
	MaxFrontier   int       `json:"max_frontier"`
	DurationMs    int64     `json:"duration_ms"`
	SolvedAt      time.Time `json:"solved_at"`
}

func (pg *postgres) InsertSolveRecord(
	ctx context.Context, rec *SolveRecord,
) (*SolveRecord, error) {
	if err := pg.db.QueryRow(ctx, `
		INSERT INTO solve_record (
			kind, strategy, puzzle_key, solved, moves,
			expanded, generated, pruned, max_frontier, duration_ms
		)
		VALUES (
			@kind, @strategy, @puzzle_key, @solved, @moves,
			@expanded, @generated, @pruned, @max_frontier, @duration_ms
		)
		RETURNING solve_record_id, solved_at;`,
		pgx.NamedArgs{
			"kind":         rec.Kind,
			"strategy":     rec.Strategy,
			"puzzle_key":   rec.PuzzleKey,
			"solved":       rec.Solved,
			"moves":        rec.Moves,
			"expanded":     rec.Expanded,
			"generated":    rec.Generated,
			"pruned":       rec.Pruned,
			"max_frontier": rec.MaxFrontier,
			"duration_ms":  rec.DurationMs,
		}).Scan(&rec.SolveRecordId, &rec.SolvedAt); err != nil {
		return nil, err
	}
	return rec, nil
}

// whereClause assembles the optional archive filters into SQL.
func (p RecordsParams) whereClause() (string, pgx.NamedArgs) {
	args := pgx.NamedArgs{}
	clauses := []string{}
	if p.Kind != "" {
		args["kind"] = p.Kind
		clauses = append(clauses, "kind = @kind")
	}
	if p.Strategy != "" {
		args["strategy"] = p.Strategy
		clauses = append(clauses, "strategy = @strategy")
	}
	if p.Solved != nil {
		args["solved"] = *p.Solved
		clauses = append(clauses, "solved = @solved")
	}
	if len(clauses) == 0 {
		return "", args
	}
	return strings.Join(clauses, " AND "), args
}

func (pg *postgres) ListSolveRecords(
	ctx context.Context, params RecordsParams,
) ([]SolveRecord, error) {
	sql := `
	SELECT
		solve_record_id, kind, strategy, puzzle_key, solved, moves,
		expanded, generated, pruned, max_frontier, duration_ms, solved_at
	FROM solve_record`

	whereClause, args := params.whereClause()
	if whereClause != "" {
		sql += " WHERE " + whereClause
	}

	sql += " ORDER BY solved_at DESC LIMIT @limit"
	args["limit"] = params.Limit

	rows, err := pg.db.Query(ctx, sql, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[SolveRecord])
}

func (pg *postgres) GetSolveRecord(
	ctx context.Context, id int64,
) (*SolveRecord, error) {
	rows, err := pg.db.Query(ctx, `
		SELECT
			solve_record_id, kind, strategy, puzzle_key, solved, moves,
			expanded, generated, pruned, max_frontier, duration_ms, solved_at
		FROM solve_record
		WHERE solve_record_id = $1;`,
		id)
	if err != nil {
		return nil, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[SolveRecord])
}
