package sqlite

const schema = `
CREATE TABLE IF NOT EXISTS games (
    game_id          TEXT PRIMARY KEY,
    kind             TEXT    NOT NULL,
    difficulty       TEXT    NOT NULL DEFAULT '',
    human_side       INTEGER NOT NULL DEFAULT 0,
    vs_bot           INTEGER NOT NULL DEFAULT 0,
    result           TEXT    NOT NULL,
    reason           TEXT    NOT NULL DEFAULT '',
    moves            TEXT    NOT NULL DEFAULT '[]',
    total_moves      INTEGER NOT NULL DEFAULT 0,
    duration_seconds INTEGER NOT NULL DEFAULT 0,
    final_board      TEXT,
    created_at       DATETIME NOT NULL,
    finished_at      DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_games_kind_finished ON games (kind, finished_at DESC);
`
