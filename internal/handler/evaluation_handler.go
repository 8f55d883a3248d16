package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campushq/project-review-api/internal/models"
	"github.com/campushq/project-review-api/internal/service"
	appErrors "github.com/campushq/project-review-api/pkg/errors"
	"github.com/campushq/project-review-api/pkg/response"
)

// EvaluationHandler exposes the submission endpoints for both evaluator
// classes plus the student- and guide-facing projections.
type EvaluationHandler struct {
	evaluations *service.EvaluationService
}

// NewEvaluationHandler constructs handler.
func NewEvaluationHandler(evaluations *service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evaluations: evaluations}
}

func evaluatorClassParam(c *gin.Context) (models.EvaluatorClass, error) {
	class := models.EvaluatorClass(strings.ToUpper(c.Param("evaluatorClass")))
	if !class.Valid() {
		return "", appErrors.Clone(appErrors.ErrValidation, "unknown evaluator class")
	}
	return class, nil
}

// Submit godoc
// @Summary Submit an evaluation
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param evaluatorClass path string true "Evaluator class (panel|guide)"
// @Param payload body service.SubmitEvaluationRequest true "Submission payload"
// @Success 200 {object} response.Envelope
// @Success 201 {object} response.Envelope
// @Router /evaluations/{evaluatorClass} [post]
func (h *EvaluationHandler) Submit(c *gin.Context) {
	class, err := evaluatorClassParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.SubmitEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.evaluations.Submit(c.Request.Context(), class, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if result.Created {
		response.Created(c, result)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Check godoc
// @Summary Check whether a submission exists
// @Tags Evaluations
// @Produce json
// @Param evaluatorClass path string true "Evaluator class (panel|guide)"
// @Param rollNo query string true "Student roll number"
// @Param reviewType query string true "Review round"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /evaluations/{evaluatorClass}/check [get]
func (h *EvaluationHandler) Check(c *gin.Context) {
	class, err := evaluatorClassParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	eval, err := h.evaluations.Check(c.Request.Context(), class,
		c.Query("rollNo"), models.ReviewType(strings.ToUpper(c.Query("reviewType"))))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, eval)
}

// Update godoc
// @Summary Update an existing submission by id
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param evaluatorClass path string true "Evaluator class (panel|guide)"
// @Param id path string true "Submission id"
// @Param payload body service.SubmitEvaluationRequest true "Submission payload"
// @Success 200 {object} response.Envelope
// @Router /evaluations/{evaluatorClass}/{id} [put]
func (h *EvaluationHandler) Update(c *gin.Context) {
	class, err := evaluatorClassParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.SubmitEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	eval, err := h.evaluations.Update(c.Request.Context(), class, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, eval)
}

// Detail godoc
// @Summary Student-facing panel evaluation detail
// @Tags Evaluations
// @Produce json
// @Param rollNo query string true "Student roll number"
// @Param reviewType query string true "Review round"
// @Success 200 {object} response.Envelope
// @Router /evaluations [get]
func (h *EvaluationHandler) Detail(c *gin.Context) {
	eval, err := h.evaluations.PanelByRollAndReview(c.Request.Context(),
		c.Query("rollNo"), models.ReviewType(strings.ToUpper(c.Query("reviewType"))))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, eval)
}

// GuideMarks godoc
// @Summary Guide submission for a student
// @Tags Guide
// @Produce json
// @Param rollNo query string true "Student roll number"
// @Success 200 {object} response.Envelope
// @Router /guide/marks [get]
func (h *EvaluationHandler) GuideMarks(c *gin.Context) {
	eval, err := h.evaluations.GuideMarks(c.Request.Context(), c.Query("rollNo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, eval)
}

// GuideCompleted godoc
// @Summary Whether the guide has scored a student
// @Tags Guide
// @Produce json
// @Param rollNo query string true "Student roll number"
// @Success 200 {object} response.Envelope
// @Router /guide/completed [get]
func (h *EvaluationHandler) GuideCompleted(c *gin.Context) {
	completion, err := h.evaluations.GuideCompleted(c.Request.Context(), c.Query("rollNo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, completion)
}
