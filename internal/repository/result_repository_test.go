package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/project-review-api/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestResultRepositoryUpsertInsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	mock.ExpectQuery("INSERT INTO final_results").
		WithArgs(sqlmock.AnyArg(), "21CS042", 80.0, 90.0, 70.0, 100.0, 85.0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "inserted"}).AddRow("result-1", true))

	result := &models.FinalResult{
		StudentRollNo: "21CS042",
		FirstReview:   floatPtr(80),
		SecondReview:  floatPtr(90),
		ThirdReview:   floatPtr(70),
		GuideMarks:    floatPtr(100),
		TotalMarks:    floatPtr(85),
	}
	created, err := repo.Upsert(context.Background(), result)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "result-1", result.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepositoryUpsertConflictKeepsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	mock.ExpectQuery("INSERT INTO final_results").
		WillReturnRows(sqlmock.NewRows([]string{"id", "inserted"}).AddRow("existing-id", false))

	result := &models.FinalResult{StudentRollNo: "21CS042", TotalMarks: floatPtr(85)}
	created, err := repo.Upsert(context.Background(), result)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "existing-id", result.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepositoryUpdateByRollMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	mock.ExpectExec("UPDATE final_results").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateByRoll(context.Background(), &models.FinalResult{StudentRollNo: "21CS042"})

	assert.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepositoryFindByRollNullParts(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	rows := sqlmock.NewRows([]string{"id", "student_roll_no", "first_review", "second_review", "third_review", "guide_marks", "total_marks", "computed_at"}).
		AddRow("result-1", "21CS042", 80.0, nil, nil, 100.0, 90.0, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM final_results").
		WithArgs("21CS042").
		WillReturnRows(rows)

	result, err := repo.FindByRoll(context.Background(), "21CS042")

	require.NoError(t, err)
	assert.Nil(t, result.SecondReview)
	assert.Nil(t, result.ThirdReview)
	require.NotNil(t, result.TotalMarks)
	assert.InDelta(t, 90.0, *result.TotalMarks, 1e-9)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepositoryDistribution(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	rows := sqlmock.NewRows([]string{"count", "min", "max", "average"}).
		AddRow(3, 62.5, 91.0, 78.5)
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(rows)

	dist, err := repo.Distribution(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, dist.Count)
	assert.InDelta(t, 62.5, *dist.Min, 1e-9)
	assert.InDelta(t, 91.0, *dist.Max, 1e-9)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepositoryRows(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	rows := sqlmock.NewRows([]string{"student_roll_no", "student_name", "total_marks", "rank"}).
		AddRow("21CS042", "Priya Raman", 85.0, 1).
		AddRow("21CS077", "Arun Nair", 72.5, 2)
	mock.ExpectQuery("SELECT fr.student_roll_no").
		WillReturnRows(rows)

	result, err := repo.Rows(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Priya Raman", result[0].StudentName)
	require.NotNil(t, result[0].Rank)
	assert.Equal(t, 1, *result[0].Rank)
	require.NoError(t, mock.ExpectationsWereMet())
}
