package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/campushq/project-review-api/internal/models"
)

// WeightageRepository persists the singleton weightage configuration.
type WeightageRepository struct {
	db *sqlx.DB
}

// NewWeightageRepository constructs the repository.
func NewWeightageRepository(db *sqlx.DB) *WeightageRepository {
	return &WeightageRepository{db: db}
}

// Upsert writes the weightage row, creating it on first use and updating in
// place afterwards.
func (r *WeightageRepository) Upsert(ctx context.Context, w *models.Weightage) error {
	if w.ID == 0 {
		w.ID = models.WeightageID
	}
	w.UpdatedAt = time.Now().UTC()
	const query = `INSERT INTO weightages (id, first_review, second_review, third_review, guide_marks, updated_at)
        VALUES (:id, :first_review, :second_review, :third_review, :guide_marks, :updated_at)
        ON CONFLICT (id)
        DO UPDATE SET first_review = EXCLUDED.first_review, second_review = EXCLUDED.second_review,
            third_review = EXCLUDED.third_review, guide_marks = EXCLUDED.guide_marks, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, w); err != nil {
		return fmt.Errorf("upsert weightage: %w", err)
	}
	return nil
}

// FindByID fetches the weightage row. sql.ErrNoRows passes through.
func (r *WeightageRepository) FindByID(ctx context.Context, id int) (*models.Weightage, error) {
	const query = `SELECT id, first_review, second_review, third_review, guide_marks, updated_at
        FROM weightages WHERE id = $1`
	var w models.Weightage
	if err := r.db.GetContext(ctx, &w, query, id); err != nil {
		return nil, err
	}
	return &w, nil
}
