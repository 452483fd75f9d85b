package statsdb

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent schema statements, run in order.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS genres (
		id   INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS movies (
		id       INTEGER PRIMARY KEY,
		title    TEXT NOT NULL,
		genre_id INTEGER NOT NULL REFERENCES genres(id),
		rating   REAL NOT NULL CHECK(rating >= 0 AND rating <= 10),
		budget   INTEGER NOT NULL CHECK(budget >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS actors (
		id   INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS roles (
		movie_id INTEGER NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
		actor_id INTEGER NOT NULL REFERENCES actors(id) ON DELETE CASCADE,
		PRIMARY KEY (movie_id, actor_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movies_genre ON movies(genre_id)`,
	`CREATE INDEX IF NOT EXISTS idx_roles_actor ON roles(actor_id)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
