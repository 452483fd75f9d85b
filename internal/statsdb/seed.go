package statsdb

import (
	"database/sql"
	"fmt"
)

// Seed fills an empty database with the development movie dataset.
// A database that already has genres is left untouched.
func Seed(db *sql.DB) error {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM genres`).Scan(&n); err != nil {
		return fmt.Errorf("checking seed state: %w", err)
	}
	if n > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting seed transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	stmts := []string{
		`INSERT INTO genres (id, name) VALUES
			(1, 'Drama'), (2, 'Komedie'), (3, 'Actie')`,
		`INSERT INTO movies (id, title, genre_id, rating, budget) VALUES
			(1, 'De Stilte',    1, 9.2, 20000000),
			(2, 'Nachtlicht',   1, 8.8, 15000000),
			(3, 'Glasstad',     1, 9.0, 18000000),
			(4, 'Lachwerk',     2, 7.0,  5000000),
			(5, 'Dubbel Feest', 2, 6.8,  4000000),
			(6, 'Vuurlinie',    3, 8.0, 60000000),
			(7, 'Staalregen',   3, 7.4, 55000000)`,
		`INSERT INTO actors (id, name) VALUES
			(1, 'Femke de Boer'),
			(2, 'Daan Visser'),
			(3, 'Ruben Smit'),
			(4, 'Lotte Jansen')`,
		`INSERT INTO roles (movie_id, actor_id) VALUES
			(1, 1), (2, 1), (3, 1),
			(1, 2), (6, 2),
			(4, 3), (5, 3),
			(6, 4), (7, 4)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("seeding: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	committed = true
	return nil
}
