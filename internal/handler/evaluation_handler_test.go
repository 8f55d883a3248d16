package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/project-review-api/internal/models"
	"github.com/campushq/project-review-api/internal/service"
	"github.com/campushq/project-review-api/pkg/response"
)

type evalKey struct {
	roll   string
	review models.ReviewType
	class  models.EvaluatorClass
}

type evaluationRepoMock struct {
	stored map[evalKey]models.Evaluation
}

func (m *evaluationRepoMock) Upsert(ctx context.Context, eval *models.Evaluation) (bool, error) {
	if m.stored == nil {
		m.stored = make(map[evalKey]models.Evaluation)
	}
	key := evalKey{eval.RollNo, eval.ReviewType, eval.EvaluatorClass}
	existing, existed := m.stored[key]
	if existed {
		eval.ID = existing.ID
	} else {
		eval.ID = uuid.NewString()
		eval.CreatedAt = time.Now()
	}
	m.stored[key] = *eval
	return !existed, nil
}

func (m *evaluationRepoMock) FindByRollAndReview(ctx context.Context, class models.EvaluatorClass, rollNo string, reviewType models.ReviewType) (*models.Evaluation, error) {
	eval, ok := m.stored[evalKey{rollNo, reviewType, class}]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &eval, nil
}

func (m *evaluationRepoMock) FindByID(ctx context.Context, class models.EvaluatorClass, id string) (*models.Evaluation, error) {
	for _, eval := range m.stored {
		if eval.ID == id && eval.EvaluatorClass == class {
			return &eval, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *evaluationRepoMock) UpdateByID(ctx context.Context, eval *models.Evaluation) error {
	for key, existing := range m.stored {
		if existing.ID == eval.ID && existing.EvaluatorClass == eval.EvaluatorClass {
			m.stored[key] = *eval
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *evaluationRepoMock) FindFirstByRoll(ctx context.Context, class models.EvaluatorClass, rollNo string) (*models.Evaluation, error) {
	for _, eval := range m.stored {
		if eval.RollNo == rollNo && eval.EvaluatorClass == class {
			return &eval, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *evaluationRepoMock) ExistsByRoll(ctx context.Context, class models.EvaluatorClass, rollNo string) (bool, error) {
	for _, eval := range m.stored {
		if eval.RollNo == rollNo && eval.EvaluatorClass == class {
			return true, nil
		}
	}
	return false, nil
}

func submissionBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(service.SubmitEvaluationRequest{
		RollNo:      "21CS042",
		StudentName: "Priya Raman",
		FormTitle:   "Final Presentation",
		FormParameters: models.ParameterList{
			{Title: "Clarity", SubParameters: []models.SubParameter{{Name: "Content", MaxMarks: "50"}}, TotalMarks: 50},
		},
		FormValues: models.MarksList{
			{Title: "Clarity", SubParameterMarks: []string{"45"}},
		},
		ReviewType: models.ReviewFirst,
	})
	require.NoError(t, err)
	return body
}

func newEvaluationHandler(repo *evaluationRepoMock) *EvaluationHandler {
	svc := service.NewEvaluationService(repo, nil, nil, nil, nil)
	return NewEvaluationHandler(svc)
}

func postSubmission(t *testing.T, handler *EvaluationHandler, class string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, "/evaluations/"+class, bytes.NewReader(submissionBody(t)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "evaluatorClass", Value: class}}
	handler.Submit(c)
	return w
}

func TestEvaluationHandlerSubmitCreates(t *testing.T) {
	handler := newEvaluationHandler(&evaluationRepoMock{})

	w := postSubmission(t, handler, "panel")

	require.Equal(t, http.StatusCreated, w.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Nil(t, envelope.Error)
}

func TestEvaluationHandlerResubmitReturnsOK(t *testing.T) {
	repo := &evaluationRepoMock{}
	handler := newEvaluationHandler(repo)

	first := postSubmission(t, handler, "panel")
	require.Equal(t, http.StatusCreated, first.Code)

	second := postSubmission(t, handler, "panel")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Len(t, repo.stored, 1)
}

func TestEvaluationHandlerSubmitUnknownClass(t *testing.T) {
	handler := newEvaluationHandler(&evaluationRepoMock{})

	w := postSubmission(t, handler, "registrar")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEvaluationHandlerCheckMiss(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newEvaluationHandler(&evaluationRepoMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, "/evaluations/panel/check?rollNo=21CS042&reviewType=FIRST", nil)
	require.NoError(t, err)
	c.Request = req
	c.Params = gin.Params{{Key: "evaluatorClass", Value: "panel"}}

	handler.Check(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEvaluationHandlerSubmitInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newEvaluationHandler(&evaluationRepoMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, "/evaluations/panel", bytes.NewReader([]byte(`not-json`)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "evaluatorClass", Value: "panel"}}

	handler.Submit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
