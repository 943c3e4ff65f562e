package database

import (
	"fmt"
	"os"

	"todo-service/config"

	"github.com/jmoiron/sqlx"
	"github.com/umakantv/go-utils/db"
	"github.com/umakantv/go-utils/db/migrations"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// InitializeDatabase opens the SQLite database and runs pending migrations.
func InitializeDatabase(cfg config.Config) *sqlx.DB {
	dbConn := db.GetDBConnection(db.DatabaseConfig{
		DRIVER: "sqlite3",
		DB:     cfg.DatabaseFile,
	})

	// SQLite allows a single writer; serializing connections avoids
	// SQLITE_BUSY storms under overlapping requests.
	dbConn.SetMaxOpenConns(1)
	dbConn.SetMaxIdleConns(1)

	if err := ApplyPragmas(dbConn); err != nil {
		logger.Error("Error while applying pragmas", zap.Error(err))
		os.Exit(1)
	}

	err := migrations.Migrate(dbConn, cfg.MigrationsDir)
	if err != nil {
		logger.Error("Error while running migration", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Database initialized successfully")
	return dbConn
}

// ApplyPragmas sets the SQLite configuration every connection relies on.
// Foreign key enforcement backs the category delete guard and the
// ownership links between users, tasks, and categories.
func ApplyPragmas(dbConn *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := dbConn.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	return nil
}
