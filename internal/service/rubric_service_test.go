package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/project-review-api/internal/models"
	appErrors "github.com/campushq/project-review-api/pkg/errors"
)

type mockRubricRepo struct {
	stored map[string]models.RubricForm
}

func (m *mockRubricRepo) Create(ctx context.Context, form *models.RubricForm) error {
	if m.stored == nil {
		m.stored = make(map[string]models.RubricForm)
	}
	if _, exists := m.stored[form.FormTitle]; exists {
		return &pq.Error{Code: "23505"}
	}
	form.ID = uuid.NewString()
	m.stored[form.FormTitle] = *form
	return nil
}

func (m *mockRubricRepo) List(ctx context.Context) ([]models.RubricForm, error) {
	forms := make([]models.RubricForm, 0, len(m.stored))
	for _, form := range m.stored {
		forms = append(forms, form)
	}
	return forms, nil
}

func (m *mockRubricRepo) FindByTitle(ctx context.Context, title string) (*models.RubricForm, error) {
	form, ok := m.stored[title]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &form, nil
}

func createRubricRequest() CreateRubricRequest {
	return CreateRubricRequest{
		FormTitle:  "Final Presentation",
		ReviewType: models.ReviewFirst,
		FormParameters: models.ParameterList{
			{
				Title: "Clarity",
				SubParameters: []models.SubParameter{
					{Name: "Content", MaxMarks: "50"},
					{Name: "Delivery", MaxMarks: "50"},
				},
			},
			{
				Title: "Depth",
				SubParameters: []models.SubParameter{
					{Name: "Research", MaxMarks: "20"},
				},
			},
		},
	}
}

func newRubricService(repo *mockRubricRepo) *RubricService {
	return NewRubricService(repo, nil, nil, nil)
}

func TestCreateRubricComputesTotals(t *testing.T) {
	repo := &mockRubricRepo{}
	svc := newRubricService(repo)

	view, err := svc.Create(context.Background(), createRubricRequest())

	require.NoError(t, err)
	assert.Equal(t, 100, view.Parameters[0].TotalMarks)
	assert.Equal(t, 20, view.Parameters[1].TotalMarks)
	assert.Equal(t, 120, view.OverallTotalMarks)
}

func TestCreateRubricNonNumericMaxContributesZero(t *testing.T) {
	repo := &mockRubricRepo{}
	svc := newRubricService(repo)
	req := createRubricRequest()
	req.FormParameters[0].SubParameters[1].MaxMarks = "n/a"

	view, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 50, view.Parameters[0].TotalMarks)
	assert.Equal(t, 70, view.OverallTotalMarks)
}

func TestCreateRubricDuplicateTitle(t *testing.T) {
	repo := &mockRubricRepo{}
	svc := newRubricService(repo)
	_, err := svc.Create(context.Background(), createRubricRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), createRubricRequest())

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
}

func TestCreateRubricRejectsEmptyParameters(t *testing.T) {
	svc := newRubricService(&mockRubricRepo{})
	req := createRubricRequest()
	req.FormParameters = models.ParameterList{}

	_, err := svc.Create(context.Background(), req)

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestCreateRubricRejectsParameterWithoutSubParameters(t *testing.T) {
	svc := newRubricService(&mockRubricRepo{})
	req := createRubricRequest()
	req.FormParameters[1].SubParameters = nil

	_, err := svc.Create(context.Background(), req)

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "Depth")
}

func TestCreateRubricRejectsUnknownReviewType(t *testing.T) {
	svc := newRubricService(&mockRubricRepo{})
	req := createRubricRequest()
	req.ReviewType = "MIDTERM"

	_, err := svc.Create(context.Background(), req)

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestGetByTitleMissingForm(t *testing.T) {
	svc := newRubricService(&mockRubricRepo{})

	_, err := svc.GetByTitle(context.Background(), "Missing Form")

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestGetByTitleReturnsOverallMax(t *testing.T) {
	repo := &mockRubricRepo{}
	svc := newRubricService(repo)
	_, err := svc.Create(context.Background(), createRubricRequest())
	require.NoError(t, err)

	view, err := svc.GetByTitle(context.Background(), "Final Presentation")

	require.NoError(t, err)
	assert.Equal(t, 120, view.OverallTotalMarks)
	assert.Equal(t, models.ReviewFirst, view.ReviewType)
}

func TestListRubrics(t *testing.T) {
	repo := &mockRubricRepo{}
	svc := newRubricService(repo)
	_, err := svc.Create(context.Background(), createRubricRequest())
	require.NoError(t, err)

	forms, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, forms, 1)
}
