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

// EvaluationRepository persists evaluator submissions. Both evaluator
// classes share one table; the unique constraint on
// (roll_no, review_type, evaluator_class) backs the atomic upsert so
// concurrent resubmissions can never produce duplicate rows.
type EvaluationRepository struct {
	db *sqlx.DB
}

// NewEvaluationRepository constructs the repository.
func NewEvaluationRepository(db *sqlx.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

const evaluationColumns = `id, roll_no, student_name, form_title, form_parameters, form_values,
        review_type, evaluator_class, remarks, total_marks, marks_origin, created_at, updated_at`

// Upsert inserts or fully overwrites the submission for the record's
// (roll_no, review_type, evaluator_class) key. It reports whether a new row
// was created. xmax = 0 distinguishes an insert from a conflict-update.
func (r *EvaluationRepository) Upsert(ctx context.Context, eval *models.Evaluation) (bool, error) {
	if eval.ID == "" {
		eval.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	const query = `INSERT INTO evaluations (id, roll_no, student_name, form_title, form_parameters, form_values,
            review_type, evaluator_class, remarks, total_marks, marks_origin, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
        ON CONFLICT (roll_no, review_type, evaluator_class)
        DO UPDATE SET student_name = EXCLUDED.student_name, form_title = EXCLUDED.form_title,
            form_parameters = EXCLUDED.form_parameters, form_values = EXCLUDED.form_values,
            remarks = EXCLUDED.remarks, total_marks = EXCLUDED.total_marks,
            marks_origin = EXCLUDED.marks_origin, updated_at = EXCLUDED.updated_at
        RETURNING id, created_at, (xmax = 0) AS inserted`
	var (
		id        string
		createdAt time.Time
		inserted  bool
	)
	row := r.db.QueryRowxContext(ctx, query,
		eval.ID, eval.RollNo, eval.StudentName, eval.FormTitle, eval.Parameters, eval.Values,
		eval.ReviewType, eval.EvaluatorClass, eval.Remarks, eval.TotalMarks, eval.MarksOrigin, now)
	if err := row.Scan(&id, &createdAt, &inserted); err != nil {
		return false, fmt.Errorf("upsert evaluation: %w", err)
	}
	eval.ID = id
	eval.CreatedAt = createdAt
	eval.UpdatedAt = now
	return inserted, nil
}

// FindByRollAndReview returns the submission for one student, round and
// evaluator class. sql.ErrNoRows passes through; a miss is the normal
// "create branch" signal of the upsert protocol, not an error.
func (r *EvaluationRepository) FindByRollAndReview(ctx context.Context, class models.EvaluatorClass, rollNo string, reviewType models.ReviewType) (*models.Evaluation, error) {
	query := fmt.Sprintf(`SELECT %s FROM evaluations
        WHERE roll_no = $1 AND review_type = $2 AND evaluator_class = $3`, evaluationColumns)
	var eval models.Evaluation
	if err := r.db.GetContext(ctx, &eval, query, rollNo, reviewType, class); err != nil {
		return nil, err
	}
	return &eval, nil
}

// FindByID fetches a submission by primary key within one evaluator class.
func (r *EvaluationRepository) FindByID(ctx context.Context, class models.EvaluatorClass, id string) (*models.Evaluation, error) {
	query := fmt.Sprintf(`SELECT %s FROM evaluations WHERE id = $1 AND evaluator_class = $2`, evaluationColumns)
	var eval models.Evaluation
	if err := r.db.GetContext(ctx, &eval, query, id, class); err != nil {
		return nil, err
	}
	return &eval, nil
}

// UpdateByID overwrites an existing submission in place.
func (r *EvaluationRepository) UpdateByID(ctx context.Context, eval *models.Evaluation) error {
	eval.UpdatedAt = time.Now().UTC()
	const query = `UPDATE evaluations
        SET roll_no = :roll_no, student_name = :student_name, form_title = :form_title,
            form_parameters = :form_parameters, form_values = :form_values, review_type = :review_type,
            remarks = :remarks, total_marks = :total_marks, marks_origin = :marks_origin, updated_at = :updated_at
        WHERE id = :id AND evaluator_class = :evaluator_class`
	result, err := r.db.NamedExecContext(ctx, query, eval)
	if err != nil {
		return fmt.Errorf("update evaluation: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update evaluation rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// FindFirstByRoll returns any submission for a student within one evaluator
// class, earliest round first. Used by the guide-marks projection.
func (r *EvaluationRepository) FindFirstByRoll(ctx context.Context, class models.EvaluatorClass, rollNo string) (*models.Evaluation, error) {
	query := fmt.Sprintf(`SELECT %s FROM evaluations
        WHERE roll_no = $1 AND evaluator_class = $2 ORDER BY created_at ASC LIMIT 1`, evaluationColumns)
	var eval models.Evaluation
	if err := r.db.GetContext(ctx, &eval, query, rollNo, class); err != nil {
		return nil, err
	}
	return &eval, nil
}

// ExistsByRoll reports whether a student has any submission in the class.
func (r *EvaluationRepository) ExistsByRoll(ctx context.Context, class models.EvaluatorClass, rollNo string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM evaluations WHERE roll_no = $1 AND evaluator_class = $2)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, rollNo, class); err != nil {
		return false, fmt.Errorf("check evaluation exists: %w", err)
	}
	return exists, nil
}
