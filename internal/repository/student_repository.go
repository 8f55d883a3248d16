package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campushq/project-review-api/internal/models"
)

// StudentRepository reads the roster projection synced from the identity
// and project registry.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs the repository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns roster entries matching the filter.
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	query := `SELECT roll_no, name, guide_name, project_title, created_at, updated_at
        FROM students WHERE 1=1`
	var args []interface{}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (roll_no ILIKE $%d OR name ILIKE $%d)", len(args)+1, len(args)+1)
		args = append(args, "%"+filter.Search+"%")
	}
	if filter.GuideName != "" {
		query += fmt.Sprintf(" AND guide_name = $%d", len(args)+1)
		args = append(args, filter.GuideName)
	}
	query += " ORDER BY roll_no"
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// FindByRoll fetches one roster entry. sql.ErrNoRows passes through.
func (r *StudentRepository) FindByRoll(ctx context.Context, rollNo string) (*models.Student, error) {
	const query = `SELECT roll_no, name, guide_name, project_title, created_at, updated_at
        FROM students WHERE roll_no = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, rollNo); err != nil {
		return nil, err
	}
	return &student, nil
}
