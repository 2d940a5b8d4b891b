// Package store is the SQLite-backed data collaborator for the decision
// pipeline: override rules, signal weights, per-game risk history, and the
// append-only decision ledger.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielpatrickdp/launchgate/internal/decision"
	"github.com/danielpatrickdp/launchgate/internal/ledger"
	"github.com/danielpatrickdp/launchgate/internal/rules"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS decision_rules (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	rule_key     TEXT NOT NULL,
	min_value    REAL,
	max_value    REAL,
	decision     TEXT NOT NULL,
	priority     INTEGER NOT NULL,
	active       INTEGER NOT NULL DEFAULT 1,
	description  TEXT
);

CREATE TABLE IF NOT EXISTS signal_weights (
	signal_key   TEXT PRIMARY KEY,
	weight       REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS decision_history (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id      TEXT NOT NULL,
	risk_score   REAL NOT NULL,
	decision     TEXT NOT NULL,
	created_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_decision_history_game
ON decision_history(game_id, created_at DESC);

CREATE TABLE IF NOT EXISTS decision_ledger (
	entry_id     TEXT PRIMARY KEY,
	game_id      TEXT NOT NULL,
	player_id    TEXT NOT NULL,
	session_id   TEXT NOT NULL,
	decision     TEXT NOT NULL,
	source       TEXT NOT NULL,
	risk_score   REAL,
	confidence   REAL NOT NULL,
	explanation  TEXT,
	trend        TEXT,
	volatility   REAL,
	shock        INTEGER,
	playtime     REAL NOT NULL DEFAULT 0,
	deaths       INTEGER NOT NULL DEFAULT 0,
	restarts     INTEGER NOT NULL DEFAULT 0,
	early_quit   INTEGER NOT NULL DEFAULT 0,
	created_at   TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct
// Store wraps the SQLite database holding rules, weights, history, and the
// ledger. One Store is safe for concurrent pipeline invocations: reads are
// plain queries and the two write paths are append-only inserts.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens the SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region rules
// ActiveRules returns all active rules ordered by ascending priority.
// Priority ties resolve by insertion order, which is stable.
func (s *Store) ActiveRules(ctx context.Context) ([]rules.Definition, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT rule_key, min_value, max_value, decision, priority, description
		 FROM decision_rules WHERE active = 1
		 ORDER BY priority ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query rules: %w", err)
	}
	defer rows.Close()

	var defs []rules.Definition
	for rows.Next() {
		var def rules.Definition
		var minV, maxV sql.NullFloat64
		var desc sql.NullString
		var verdict string
		if err := rows.Scan(&def.RuleKey, &minV, &maxV, &verdict, &def.Priority, &desc); err != nil {
			return nil, fmt.Errorf("scan rule: %w", err)
		}
		if minV.Valid {
			def.MinValue = &minV.Float64
		}
		if maxV.Valid {
			def.MaxValue = &maxV.Float64
		}
		if desc.Valid {
			def.Description = desc.String
		}
		def.Decision = decision.Verdict(verdict)
		def.Active = true
		defs = append(defs, def)
	}
	return defs, rows.Err()
}

// AddRule inserts one rule definition. Used by seeding and tests; the core
// pipeline never writes rules.
func (s *Store) AddRule(ctx context.Context, def rules.Definition) error {
	active := 0
	if def.Active {
		active = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO decision_rules (rule_key, min_value, max_value, decision, priority, active, description)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		def.RuleKey, nullFloat(def.MinValue), nullFloat(def.MaxValue),
		string(def.Decision), def.Priority, active, nullString(def.Description),
	)
	if err != nil {
		return fmt.Errorf("insert rule: %w", err)
	}
	return nil
}

// #endregion rules

// #region weights
// SignalWeights returns the per-signal confidence weights.
func (s *Store) SignalWeights(ctx context.Context) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT signal_key, weight FROM signal_weights`)
	if err != nil {
		return nil, fmt.Errorf("query weights: %w", err)
	}
	defer rows.Close()

	weights := make(map[string]float64)
	for rows.Next() {
		var key string
		var w float64
		if err := rows.Scan(&key, &w); err != nil {
			return nil, fmt.Errorf("scan weight: %w", err)
		}
		weights[key] = w
	}
	return weights, rows.Err()
}

// SetSignalWeight upserts one signal weight.
func (s *Store) SetSignalWeight(ctx context.Context, key string, weight float64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO signal_weights (signal_key, weight) VALUES (?, ?)
		 ON CONFLICT(signal_key) DO UPDATE SET weight = excluded.weight`,
		key, weight,
	)
	if err != nil {
		return fmt.Errorf("upsert weight: %w", err)
	}
	return nil
}

// #endregion weights

// #region history
// History returns up to limit prior scored decisions for a game, newest
// first.
func (s *Store) History(ctx context.Context, gameID string, limit int) ([]decision.HistoryRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT risk_score, decision, created_at
		 FROM decision_history WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []decision.HistoryRecord
	for rows.Next() {
		var rec decision.HistoryRecord
		var verdict, createdStr string
		if err := rows.Scan(&rec.RiskScore, &verdict, &createdStr); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		rec.Decision = decision.Verdict(verdict)
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// AppendHistory records one scored decision for future temporal analysis.
func (s *Store) AppendHistory(ctx context.Context, gameID string, riskScore float64, verdict decision.Verdict) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO decision_history (game_id, risk_score, decision, created_at)
		 VALUES (?, ?, ?, ?)`,
		gameID, riskScore, string(verdict), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}

// #endregion history

// #region ledger
// AppendLedger persists one audit entry. Inserts only: the entry_id primary
// key makes duplicate appends fail instead of overwriting.
func (s *Store) AppendLedger(ctx context.Context, e ledger.Entry) error {
	shock := sql.NullInt64{}
	if e.Shock != nil {
		shock.Valid = true
		if *e.Shock {
			shock.Int64 = 1
		}
	}
	earlyQuit := 0
	if e.Snapshot.EarlyQuit {
		earlyQuit = 1
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO decision_ledger
		 (entry_id, game_id, player_id, session_id, decision, source, risk_score,
		  confidence, explanation, trend, volatility, shock,
		  playtime, deaths, restarts, early_quit, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.EntryID, e.GameID, e.PlayerID, e.SessionID,
		string(e.Decision), string(e.Source), nullFloat(e.RiskScore),
		e.Confidence, nullString(e.Explanation), nullStringPtr(e.Trend), nullFloat(e.Volatility), shock,
		e.Snapshot.Playtime, e.Snapshot.Deaths, e.Snapshot.Restarts, earlyQuit,
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append ledger: %w", err)
	}
	return nil
}

// ListLedger returns the most recent ledger entries, optionally filtered by
// game. gameID of "" means all games.
func (s *Store) ListLedger(ctx context.Context, gameID string, limit int) ([]ledger.Entry, error) {
	query := `SELECT entry_id, game_id, player_id, session_id, decision, source, risk_score,
	                 confidence, explanation, trend, volatility, shock,
	                 playtime, deaths, restarts, early_quit, created_at
	          FROM decision_ledger`
	args := []interface{}{}
	if gameID != "" {
		query += ` WHERE game_id = ?`
		args = append(args, gameID)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ledger: %w", err)
	}
	defer rows.Close()

	var entries []ledger.Entry
	for rows.Next() {
		e, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetLedgerEntry retrieves one ledger entry by id.
func (s *Store) GetLedgerEntry(ctx context.Context, entryID string) (ledger.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT entry_id, game_id, player_id, session_id, decision, source, risk_score,
		        confidence, explanation, trend, volatility, shock,
		        playtime, deaths, restarts, early_quit, created_at
		 FROM decision_ledger WHERE entry_id = ?`, entryID)
	if err != nil {
		return ledger.Entry{}, fmt.Errorf("query ledger entry: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return ledger.Entry{}, fmt.Errorf("query ledger entry: %w", err)
		}
		return ledger.Entry{}, fmt.Errorf("ledger entry %s not found", entryID)
	}
	return scanLedgerEntry(rows)
}

func scanLedgerEntry(rows *sql.Rows) (ledger.Entry, error) {
	var e ledger.Entry
	var verdict, source, createdStr string
	var risk, volatility sql.NullFloat64
	var explanation, trend sql.NullString
	var shock sql.NullInt64
	var earlyQuit int

	err := rows.Scan(&e.EntryID, &e.GameID, &e.PlayerID, &e.SessionID,
		&verdict, &source, &risk,
		&e.Confidence, &explanation, &trend, &volatility, &shock,
		&e.Snapshot.Playtime, &e.Snapshot.Deaths, &e.Snapshot.Restarts, &earlyQuit,
		&createdStr)
	if err != nil {
		return ledger.Entry{}, fmt.Errorf("scan ledger entry: %w", err)
	}

	e.Decision = decision.Verdict(verdict)
	e.Source = ledger.Source(source)
	if risk.Valid {
		e.RiskScore = &risk.Float64
	}
	if explanation.Valid {
		e.Explanation = explanation.String
	}
	if trend.Valid {
		e.Trend = &trend.String
	}
	if volatility.Valid {
		e.Volatility = &volatility.Float64
	}
	if shock.Valid {
		b := shock.Int64 == 1
		e.Shock = &b
	}
	e.Snapshot.EarlyQuit = earlyQuit == 1
	e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return e, nil
}

// #endregion ledger

// #region helpers
func nullFloat(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullStringPtr(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// #endregion helpers
