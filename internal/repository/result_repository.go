package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campushq/project-review-api/internal/models"
)

// ResultRepository persists aggregated final results. The unique constraint
// on student_roll_no backs the atomic upsert.
type ResultRepository struct {
	db *sqlx.DB
}

// NewResultRepository constructs the repository.
func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// Upsert inserts or overwrites the final result for a student. It reports
// whether a new row was created.
func (r *ResultRepository) Upsert(ctx context.Context, result *models.FinalResult) (bool, error) {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	if result.ComputedAt.IsZero() {
		result.ComputedAt = time.Now().UTC()
	}
	const query = `INSERT INTO final_results (id, student_roll_no, first_review, second_review, third_review, guide_marks, total_marks, computed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (student_roll_no)
        DO UPDATE SET first_review = EXCLUDED.first_review, second_review = EXCLUDED.second_review,
            third_review = EXCLUDED.third_review, guide_marks = EXCLUDED.guide_marks,
            total_marks = EXCLUDED.total_marks, computed_at = EXCLUDED.computed_at
        RETURNING id, (xmax = 0) AS inserted`
	var (
		id       string
		inserted bool
	)
	row := r.db.QueryRowxContext(ctx, query,
		result.ID, result.StudentRollNo, result.FirstReview, result.SecondReview,
		result.ThirdReview, result.GuideMarks, result.TotalMarks, result.ComputedAt)
	if err := row.Scan(&id, &inserted); err != nil {
		return false, fmt.Errorf("upsert final result: %w", err)
	}
	result.ID = id
	return inserted, nil
}

// UpdateByRoll overwrites the stored result for a student. Missing rows
// surface as sql.ErrNoRows.
func (r *ResultRepository) UpdateByRoll(ctx context.Context, result *models.FinalResult) error {
	result.ComputedAt = time.Now().UTC()
	const query = `UPDATE final_results
        SET first_review = :first_review, second_review = :second_review, third_review = :third_review,
            guide_marks = :guide_marks, total_marks = :total_marks, computed_at = :computed_at
        WHERE student_roll_no = :student_roll_no`
	res, err := r.db.NamedExecContext(ctx, query, result)
	if err != nil {
		return fmt.Errorf("update final result: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update final result rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Exists reports whether a final result row is present for the student.
func (r *ResultRepository) Exists(ctx context.Context, rollNo string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM final_results WHERE student_roll_no = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, rollNo); err != nil {
		return false, fmt.Errorf("check final result exists: %w", err)
	}
	return exists, nil
}

// FindByRoll fetches the stored result for a student. sql.ErrNoRows passes
// through.
func (r *ResultRepository) FindByRoll(ctx context.Context, rollNo string) (*models.FinalResult, error) {
	const query = `SELECT id, student_roll_no, first_review, second_review, third_review, guide_marks, total_marks, computed_at
        FROM final_results WHERE student_roll_no = $1`
	var result models.FinalResult
	if err := r.db.GetContext(ctx, &result, query, rollNo); err != nil {
		return nil, err
	}
	return &result, nil
}

// Distribution aggregates min/max/average of the stored totals.
func (r *ResultRepository) Distribution(ctx context.Context) (*models.ResultDistribution, error) {
	const query = `SELECT COUNT(total_marks) AS count, MIN(total_marks) AS min, MAX(total_marks) AS max, AVG(total_marks) AS average
        FROM final_results`
	var dist models.ResultDistribution
	if err := r.db.GetContext(ctx, &dist, query); err != nil {
		return nil, fmt.Errorf("result distribution: %w", err)
	}
	return &dist, nil
}

// Rows returns per-student result lines with cohort rank.
func (r *ResultRepository) Rows(ctx context.Context) ([]models.ResultRow, error) {
	const query = `SELECT fr.student_roll_no, COALESCE(st.name, fr.student_roll_no) AS student_name, fr.total_marks,
        CASE WHEN fr.total_marks IS NULL THEN NULL ELSE RANK() OVER (ORDER BY fr.total_marks DESC) END AS rank
        FROM final_results fr
        LEFT JOIN students st ON st.roll_no = fr.student_roll_no
        ORDER BY rank NULLS LAST, student_name`
	var rows []models.ResultRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("result rows: %w", err)
	}
	return rows, nil
}
