package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iamasit07/arcade/backend/internal/domain"
	"github.com/lib/pq"
)

type GameRepo struct {
	DB *sql.DB
}

func NewGameRepo(db *sql.DB) *GameRepo {
	return &GameRepo{DB: db}
}

const gameColumns = `game_id, kind, difficulty, human_side, vs_bot, result, reason, moves,
	total_moves, duration_seconds, final_board, created_at, finished_at`

// SaveGame upserts a finished game record
func (r *GameRepo) SaveGame(ctx context.Context, rec *domain.GameRecord) error {
	boardJSON, err := json.Marshal(rec.FinalBoard)
	if err != nil {
		return fmt.Errorf("failed to marshal board state: %w", err)
	}

	query := `
	INSERT INTO games (` + gameColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (game_id) DO UPDATE SET
		result = EXCLUDED.result,
		reason = EXCLUDED.reason,
		moves = EXCLUDED.moves,
		total_moves = EXCLUDED.total_moves,
		duration_seconds = EXCLUDED.duration_seconds,
		final_board = EXCLUDED.final_board,
		finished_at = EXCLUDED.finished_at;
	`

	moves := rec.Moves
	if moves == nil {
		moves = []string{}
	}
	_, err = r.DB.ExecContext(ctx, query,
		rec.GameID, string(rec.Kind), string(rec.Difficulty), int(rec.HumanSide), rec.VsBot,
		rec.Result, rec.Reason, pq.Array(moves), rec.TotalMoves, rec.DurationSeconds,
		boardJSON, rec.CreatedAt, rec.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert game record: %w", err)
	}
	return nil
}

// GetGame returns a stored game or domain.ErrGameNotFound
func (r *GameRepo) GetGame(ctx context.Context, gameID string) (*domain.GameRecord, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+gameColumns+` FROM games WHERE game_id = $1;`, gameID)
	rec, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game by ID: %w", err)
	}
	return rec, nil
}

// ListGames returns the most recently finished games, optionally for one kind
func (r *GameRepo) ListGames(ctx context.Context, kind domain.GameKind, limit int) ([]domain.GameRecord, error) {
	query := `SELECT ` + gameColumns + ` FROM games
	WHERE ($1 = '' OR kind = $1)
	ORDER BY finished_at DESC
	LIMIT $2;`

	rows, err := r.DB.QueryContext(ctx, query, string(kind), limit)
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

// DeleteGamesBefore removes records finished before cutoff
func (r *GameRepo) DeleteGamesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM games WHERE finished_at < $1;`, cutoff)
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
		boardJSON []byte
	)
	err := s.Scan(&rec.GameID, &kind, &diff, &side, &rec.VsBot, &rec.Result, &rec.Reason,
		pq.Array(&rec.Moves), &rec.TotalMoves, &rec.DurationSeconds, &boardJSON,
		&rec.CreatedAt, &rec.FinishedAt)
	if err != nil {
		return nil, err
	}
	rec.Kind = domain.GameKind(kind)
	rec.Difficulty = domain.Difficulty(diff)
	rec.HumanSide = domain.Side(side)
	if len(boardJSON) > 0 {
		if err := json.Unmarshal(boardJSON, &rec.FinalBoard); err != nil {
			return nil, fmt.Errorf("failed to unmarshal board state: %w", err)
		}
	}
	return &rec, nil
}
