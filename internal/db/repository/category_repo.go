package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/udacitrivia/trivia-api/internal/trivia"
)

// CategoryRepository exposes typed DB operations for categories.
type CategoryRepository struct {
	db DBTX
}

// NewCategoryRepository wraps a pgx connection for category access.
func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns every category ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]trivia.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var cats []trivia.Category
	for rows.Next() {
		var c trivia.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// Get fetches one category by id, reporting trivia.ErrNotFound when absent.
func (r *CategoryRepository) Get(ctx context.Context, id int) (trivia.Category, error) {
	var c trivia.Category
	err := r.db.QueryRow(ctx, `SELECT id, type FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Type)
	if errors.Is(err, pgx.ErrNoRows) {
		return trivia.Category{}, trivia.ErrNotFound
	}
	if err != nil {
		return trivia.Category{}, fmt.Errorf("get category %d: %w", id, err)
	}
	return c, nil
}
