package repository

import (
	"database/sql"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// NewDB creates a new MySQL database connection pool with the given DSN.
// The DSN must include parseTime=true so DATETIME columns scan into time.Time.
func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		slog.Warn("database ping failed — continuing without DB", "error", err)
	}

	return db, nil
}

// EnsureSchema creates the users and todos tables if they do not exist.
// The DDL is idempotent so it runs unconditionally at startup.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id       VARCHAR(12)  NOT NULL PRIMARY KEY,
			username      VARCHAR(20)  NOT NULL,
			password_hash VARCHAR(100) NOT NULL,
			phone_no      VARCHAR(20)  NOT NULL,
			email         VARCHAR(255) NOT NULL,
			created_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS todos (
			id          BIGINT       NOT NULL AUTO_INCREMENT PRIMARY KEY,
			user_id     VARCHAR(12)  NOT NULL,
			title       VARCHAR(255) NOT NULL,
			description TEXT         NOT NULL,
			status      VARCHAR(20)  NOT NULL DEFAULT 'PENDING',
			created_at  DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at  DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			INDEX idx_todos_user_id (user_id)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
