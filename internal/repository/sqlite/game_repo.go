// Package sqlite stores finished games in a local SQLite file. It is used
// when no Postgres URL is configured.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/iamasit07/arcade/backend/internal/domain"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

type GameRepo struct {
	db *sql.DB
}

// Open creates the database file if needed and applies the schema.
// Pass ":memory:" for a throwaway store.
func Open(path string) (*GameRepo, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one writer at a time; also keeps a :memory: database on a single connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	log.Info().Str("component", "sqlite").Str("path", path).Msg("game store ready")
	return &GameRepo{db: db}, nil
}

func (r *GameRepo) Close() error {
	return r.db.Close()
}

const gameColumns = `game_id, kind, difficulty, human_side, vs_bot, result, reason, moves,
	total_moves, duration_seconds, final_board, created_at, finished_at`

func (r *GameRepo) SaveGame(ctx context.Context, rec *domain.GameRecord) error {
	moves := rec.Moves
	if moves == nil {
		moves = []string{}
	}
	movesJSON, err := json.Marshal(moves)
	if err != nil {
		return fmt.Errorf("failed to marshal moves: %w", err)
	}
	boardJSON, err := json.Marshal(rec.FinalBoard)
	if err != nil {
		return fmt.Errorf("failed to marshal board state: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
	INSERT OR REPLACE INTO games (`+gameColumns+`)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.GameID, string(rec.Kind), string(rec.Difficulty), int(rec.HumanSide), rec.VsBot,
		rec.Result, rec.Reason, string(movesJSON), rec.TotalMoves, rec.DurationSeconds,
		string(boardJSON), rec.CreatedAt.UTC(), rec.FinishedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to save game record: %w", err)
	}
	return nil
}

func (r *GameRepo) GetGame(ctx context.Context, gameID string) (*domain.GameRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+gameColumns+` FROM games WHERE game_id = ?`, gameID)
	rec, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game by ID: %w", err)
	}
	return rec, nil
}

func (r *GameRepo) ListGames(ctx context.Context, kind domain.GameKind, limit int) ([]domain.GameRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+gameColumns+` FROM games
	WHERE (? = '' OR kind = ?)
	ORDER BY finished_at DESC
	LIMIT ?`, string(kind), string(kind), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query game history: %w", err)
	}
	defer rows.Close()

	games := []domain.GameRecord{}
	for rows.Next() {
		rec, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}
		games = append(games, *rec)
	}
	return games, rows.Err()
}

func (r *GameRepo) DeleteGamesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM games WHERE finished_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete old games: %w", err)
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(s scanner) (*domain.GameRecord, error) {
	var (
		rec       domain.GameRecord
		kind      string
		diff      string
		side      int
		movesJSON string
		boardJSON sql.NullString
	)
	err := s.Scan(&rec.GameID, &kind, &diff, &side, &rec.VsBot, &rec.Result, &rec.Reason,
		&movesJSON, &rec.TotalMoves, &rec.DurationSeconds, &boardJSON,
		&rec.CreatedAt, &rec.FinishedAt)
	if err != nil {
		return nil, err
	}
	rec.Kind = domain.GameKind(kind)
	rec.Difficulty = domain.Difficulty(diff)
	rec.HumanSide = domain.Side(side)
	if err := json.Unmarshal([]byte(movesJSON), &rec.Moves); err != nil {
		return nil, fmt.Errorf("failed to unmarshal moves: %w", err)
	}
	if boardJSON.Valid && boardJSON.String != "" {
		if err := json.Unmarshal([]byte(boardJSON.String), &rec.FinalBoard); err != nil {
			return nil, fmt.Errorf("failed to unmarshal board state: %w", err)
		}
	}
	return &rec, nil
}
