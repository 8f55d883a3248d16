package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/project-review-api/internal/models"
	appErrors "github.com/campushq/project-review-api/pkg/errors"
)

type mockWeightageRepo struct {
	stored *models.Weightage
}

func (m *mockWeightageRepo) Upsert(ctx context.Context, w *models.Weightage) error {
	copied := *w
	m.stored = &copied
	return nil
}

func (m *mockWeightageRepo) FindByID(ctx context.Context, id int) (*models.Weightage, error) {
	if m.stored == nil || m.stored.ID != id {
		return nil, sql.ErrNoRows
	}
	return m.stored, nil
}

func TestSetWeightageCreatesSingletonRow(t *testing.T) {
	repo := &mockWeightageRepo{}
	svc := NewWeightageService(repo, nil, nil)

	w, err := svc.Set(context.Background(), SetWeightageRequest{
		FirstReview:  0.25,
		SecondReview: 0.25,
		ThirdReview:  0.25,
		GuideMarks:   0.25,
	})

	require.NoError(t, err)
	assert.Equal(t, models.WeightageID, w.ID)
	require.NotNil(t, repo.stored)
	assert.InDelta(t, 0.25, repo.stored.GuideMarks, 1e-9)
}

func TestSetWeightageOverwritesInPlace(t *testing.T) {
	repo := &mockWeightageRepo{}
	svc := NewWeightageService(repo, nil, nil)

	_, err := svc.Set(context.Background(), SetWeightageRequest{FirstReview: 0.25, SecondReview: 0.25, ThirdReview: 0.25, GuideMarks: 0.25})
	require.NoError(t, err)
	_, err = svc.Set(context.Background(), SetWeightageRequest{FirstReview: 0.1, SecondReview: 0.2, ThirdReview: 0.3, GuideMarks: 0.4})
	require.NoError(t, err)

	assert.Equal(t, models.WeightageID, repo.stored.ID)
	assert.InDelta(t, 0.4, repo.stored.GuideMarks, 1e-9)
}

func TestSetWeightageRejectsNegativeWeight(t *testing.T) {
	svc := NewWeightageService(&mockWeightageRepo{}, nil, nil)

	_, err := svc.Set(context.Background(), SetWeightageRequest{FirstReview: -0.1})

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestGetWeightageMissing(t *testing.T) {
	svc := NewWeightageService(&mockWeightageRepo{}, nil, nil)

	_, err := svc.Get(context.Background(), models.WeightageID)

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
