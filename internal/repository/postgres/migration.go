package postgres

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// schemaPaths are checked in order so the binary works from the backend
// root, from cmd/api, or from the repository root.
var schemaPaths = []string{
	"script/migration/schema.sql",
	"../script/migration/schema.sql",
	"../../script/migration/schema.sql",
	"backend/script/migration/schema.sql",
}

// RunMigrations executes schema.sql to initialize the database
func RunMigrations(db *sql.DB) error {
	schemaPath := schemaPaths[0]
	for _, path := range schemaPaths {
		if _, err := os.Stat(path); err == nil {
			schemaPath = path
			break
		}
	}

	content, err := os.ReadFile(schemaPath)
	if err != nil {
		wd, _ := os.Getwd()
		return fmt.Errorf("failed to read migration file %q (wd %s): %w", schemaPath, wd, err)
	}

	if _, err := db.Exec(string(content)); err != nil {
		return fmt.Errorf("failed to execute schema.sql: %w", err)
	}

	log.Info().Str("component", "postgres").Str("path", schemaPath).Msg("database migration completed")
	return nil
}
