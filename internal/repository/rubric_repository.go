package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campushq/project-review-api/internal/models"
)

// RubricRepository persists rubric form templates.
type RubricRepository struct {
	db *sqlx.DB
}

// NewRubricRepository constructs the repository.
func NewRubricRepository(db *sqlx.DB) *RubricRepository {
	return &RubricRepository{db: db}
}

// Create inserts a new rubric form. form_title carries a unique constraint;
// a duplicate title surfaces as a pq unique violation for the caller to map.
func (r *RubricRepository) Create(ctx context.Context, form *models.RubricForm) error {
	if form.ID == "" {
		form.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	form.CreatedAt = now
	form.UpdatedAt = now
	const query = `INSERT INTO rubric_forms (id, form_title, review_type, form_parameters, created_at, updated_at)
        VALUES (:id, :form_title, :review_type, :form_parameters, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, form); err != nil {
		return fmt.Errorf("create rubric form: %w", err)
	}
	return nil
}

// List returns every rubric form, newest first.
func (r *RubricRepository) List(ctx context.Context) ([]models.RubricForm, error) {
	const query = `SELECT id, form_title, review_type, form_parameters, created_at, updated_at
        FROM rubric_forms ORDER BY created_at DESC`
	var forms []models.RubricForm
	if err := r.db.SelectContext(ctx, &forms, query); err != nil {
		return nil, fmt.Errorf("list rubric forms: %w", err)
	}
	return forms, nil
}

// FindByTitle fetches one rubric form by its title. sql.ErrNoRows passes
// through so callers can branch on the not-found case.
func (r *RubricRepository) FindByTitle(ctx context.Context, title string) (*models.RubricForm, error) {
	const query = `SELECT id, form_title, review_type, form_parameters, created_at, updated_at
        FROM rubric_forms WHERE form_title = $1`
	var form models.RubricForm
	if err := r.db.GetContext(ctx, &form, query, title); err != nil {
		return nil, err
	}
	return &form, nil
}
