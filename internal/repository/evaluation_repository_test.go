package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/project-review-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func sampleEvaluation() *models.Evaluation {
	return &models.Evaluation{
		RollNo:      "21CS042",
		StudentName: "Priya Raman",
		FormTitle:   "Final Presentation",
		Parameters: models.ParameterList{
			{Title: "Clarity", SubParameters: []models.SubParameter{{Name: "Content", MaxMarks: "50"}}, TotalMarks: 50},
		},
		Values: models.MarksList{
			{Title: "Clarity", SubParameterMarks: []string{"45"}},
		},
		ReviewType:     models.ReviewFirst,
		EvaluatorClass: models.EvaluatorPanel,
		TotalMarks:     45,
		MarksOrigin:    models.MarksComputed,
	}
}

func TestEvaluationRepositoryUpsertInsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEvaluationRepository(db)

	rows := sqlmock.NewRows([]string{"id", "created_at", "inserted"}).
		AddRow("eval-1", time.Now(), true)
	mock.ExpectQuery("INSERT INTO evaluations").
		WithArgs(sqlmock.AnyArg(), "21CS042", "Priya Raman", "Final Presentation",
			sqlmock.AnyArg(), sqlmock.AnyArg(), "FIRST", "PANEL", "", 45, "COMPUTED", sqlmock.AnyArg()).
		WillReturnRows(rows)

	eval := sampleEvaluation()
	created, err := repo.Upsert(context.Background(), eval)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "eval-1", eval.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEvaluationRepositoryUpsertConflictUpdates(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEvaluationRepository(db)

	createdAt := time.Now().Add(-time.Hour)
	rows := sqlmock.NewRows([]string{"id", "created_at", "inserted"}).
		AddRow("eval-1", createdAt, false)
	mock.ExpectQuery("INSERT INTO evaluations").
		WillReturnRows(rows)

	eval := sampleEvaluation()
	created, err := repo.Upsert(context.Background(), eval)

	require.NoError(t, err)
	assert.False(t, created)
	assert.WithinDuration(t, createdAt, eval.CreatedAt, time.Second)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEvaluationRepositoryFindByRollAndReviewMiss(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEvaluationRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM evaluations").
		WithArgs("21CS042", "FIRST", "PANEL").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByRollAndReview(context.Background(), models.EvaluatorPanel, "21CS042", models.ReviewFirst)

	assert.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEvaluationRepositoryFindByRollAndReviewScansJSONColumns(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEvaluationRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "roll_no", "student_name", "form_title", "form_parameters", "form_values",
		"review_type", "evaluator_class", "remarks", "total_marks", "marks_origin", "created_at", "updated_at"}).
		AddRow("eval-1", "21CS042", "Priya Raman", "Final Presentation",
			[]byte(`[{"parameterTitle":"Clarity","subParameters":[{"subParameterName":"Content","subParameterMaxMarks":"50"}],"parameterTotalMarks":50}]`),
			[]byte(`[{"parameterTitle":"Clarity","subParameterMarks":["45"]}]`),
			"FIRST", "PANEL", "", 45, "COMPUTED", now, now)
	mock.ExpectQuery("SELECT (.+) FROM evaluations").
		WithArgs("21CS042", "FIRST", "PANEL").
		WillReturnRows(rows)

	eval, err := repo.FindByRollAndReview(context.Background(), models.EvaluatorPanel, "21CS042", models.ReviewFirst)

	require.NoError(t, err)
	require.Len(t, eval.Values, 1)
	assert.Equal(t, []string{"45"}, eval.Values[0].SubParameterMarks)
	assert.Equal(t, 45, eval.TotalMarks)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEvaluationRepositoryUpdateByIDMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEvaluationRepository(db)

	mock.ExpectExec("UPDATE evaluations").
		WillReturnResult(sqlmock.NewResult(0, 0))

	eval := sampleEvaluation()
	eval.ID = "missing-id"
	err := repo.UpdateByID(context.Background(), eval)

	assert.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEvaluationRepositoryExistsByRoll(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEvaluationRepository(db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("21CS042", "GUIDE").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByRoll(context.Background(), models.EvaluatorGuide, "21CS042")

	require.NoError(t, err)
	assert.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}
