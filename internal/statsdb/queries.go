package statsdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrUnknownQuery is returned for a query id outside "1".."5".
var ErrUnknownQuery = errors.New("unknown query id")

// Answer runs the statistics query with the given id and formats the
// result as a Dutch sentence. The ids correspond one-to-one to the
// catalog's remote-query payloads.
func Answer(ctx context.Context, db *sql.DB, id string) (string, error) {
	switch id {
	case "1":
		return topRatedGenre(ctx, db)
	case "2":
		return topActorInHighRatedMovies(ctx, db)
	case "3":
		return topActorInBestGenre(ctx, db)
	case "4":
		return topBudgetGenre(ctx, db)
	case "5":
		return mostEfficientGenre(ctx, db)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownQuery, id)
	}
}

func topRatedGenre(ctx context.Context, db *sql.DB) (string, error) {
	var name string
	var avg float64
	err := db.QueryRowContext(ctx, `
		SELECT g.name, AVG(m.rating) AS avg_rating
		FROM movies m
		JOIN genres g ON g.id = m.genre_id
		GROUP BY g.id
		ORDER BY avg_rating DESC, g.name
		LIMIT 1`).Scan(&name, &avg)
	if err != nil {
		return "", fmt.Errorf("querying top rated genre: %w", err)
	}
	return fmt.Sprintf("Het genre met gemiddeld de hoogste rating is %s (%.1f).", name, avg), nil
}

func topActorInHighRatedMovies(ctx context.Context, db *sql.DB) (string, error) {
	var name string
	var count int
	err := db.QueryRowContext(ctx, `
		SELECT a.name, COUNT(*) AS n
		FROM roles r
		JOIN movies m ON m.id = r.movie_id
		JOIN actors a ON a.id = r.actor_id
		WHERE m.rating >= 9.0
		GROUP BY a.id
		ORDER BY n DESC, a.name
		LIMIT 1`).Scan(&name, &count)
	if err != nil {
		return "", fmt.Errorf("querying actors in high rated movies: %w", err)
	}
	return fmt.Sprintf("%s heeft in de meeste films met een rating van 9 of hoger gespeeld (%d films).", name, count), nil
}

func topActorInBestGenre(ctx context.Context, db *sql.DB) (string, error) {
	var actor, genre string
	var count int
	err := db.QueryRowContext(ctx, `
		WITH best_genre AS (
			SELECT g.id, g.name
			FROM movies m
			JOIN genres g ON g.id = m.genre_id
			GROUP BY g.id
			ORDER BY AVG(m.rating) DESC, g.name
			LIMIT 1
		)
		SELECT a.name, bg.name, COUNT(*) AS n
		FROM roles r
		JOIN movies m ON m.id = r.movie_id
		JOIN best_genre bg ON bg.id = m.genre_id
		JOIN actors a ON a.id = r.actor_id
		GROUP BY a.id
		ORDER BY n DESC, a.name
		LIMIT 1`).Scan(&actor, &genre, &count)
	if err != nil {
		return "", fmt.Errorf("querying top actor in best genre: %w", err)
	}
	return fmt.Sprintf("%s heeft in de meeste films binnen het hoogst gewaardeerde genre (%s) gespeeld (%d films).", actor, genre, count), nil
}

func topBudgetGenre(ctx context.Context, db *sql.DB) (string, error) {
	var name string
	var avg float64
	err := db.QueryRowContext(ctx, `
		SELECT g.name, AVG(m.budget) AS avg_budget
		FROM movies m
		JOIN genres g ON g.id = m.genre_id
		GROUP BY g.id
		ORDER BY avg_budget DESC, g.name
		LIMIT 1`).Scan(&name, &avg)
	if err != nil {
		return "", fmt.Errorf("querying top budget genre: %w", err)
	}
	return fmt.Sprintf("Het genre met gemiddeld het hoogste budget is %s ($%.0f).", name, avg), nil
}

func mostEfficientGenre(ctx context.Context, db *sql.DB) (string, error) {
	var name string
	err := db.QueryRowContext(ctx, `
		SELECT g.name
		FROM movies m
		JOIN genres g ON g.id = m.genre_id
		GROUP BY g.id
		ORDER BY AVG(m.budget) / AVG(m.rating) ASC, g.name
		LIMIT 1`).Scan(&name)
	if err != nil {
		return "", fmt.Errorf("querying most efficient genre: %w", err)
	}
	return fmt.Sprintf("Het genre dat in verhouding het minste budget nodig heeft voor de hoogste rating is %s.", name), nil
}
