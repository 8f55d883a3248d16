package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/project-review-api/internal/service"
	appErrors "github.com/campushq/project-review-api/pkg/errors"
	"github.com/campushq/project-review-api/pkg/response"
)

// ResultHandler exposes final result aggregation and read endpoints.
type ResultHandler struct {
	results *service.ResultService
}

// NewResultHandler constructs handler.
func NewResultHandler(results *service.ResultService) *ResultHandler {
	return &ResultHandler{results: results}
}

// Aggregate godoc
// @Summary Recompute and store the weighted final result
// @Tags Results
// @Produce json
// @Param rollNo path string true "Student roll number"
// @Success 200 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /results/{rollNo}/aggregate [post]
func (h *ResultHandler) Aggregate(c *gin.Context) {
	result, err := h.results.Aggregate(c.Request.Context(), c.Param("rollNo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Exists godoc
// @Summary Check whether a final result is stored
// @Tags Results
// @Produce json
// @Param rollNo query string true "Student roll number"
// @Success 200 {object} response.Envelope
// @Router /results/exists [get]
func (h *ResultHandler) Exists(c *gin.Context) {
	existence, err := h.results.Exists(c.Request.Context(), c.Query("rollNo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, existence)
}

// Save godoc
// @Summary Store a client-computed final result
// @Tags Results
// @Accept json
// @Produce json
// @Param payload body service.FinalResultInput true "Result payload"
// @Success 200 {object} response.Envelope
// @Success 201 {object} response.Envelope
// @Router /results [post]
func (h *ResultHandler) Save(c *gin.Context) {
	var input service.FinalResultInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	outcome, err := h.results.Save(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	if outcome.Created {
		response.Created(c, outcome)
		return
	}
	response.JSON(c, http.StatusOK, outcome)
}

// Update godoc
// @Summary Overwrite the stored final result
// @Tags Results
// @Accept json
// @Produce json
// @Param rollNo path string true "Student roll number"
// @Param payload body service.FinalResultInput true "Result payload"
// @Success 200 {object} response.Envelope
// @Router /results/{rollNo} [put]
func (h *ResultHandler) Update(c *gin.Context) {
	var input service.FinalResultInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.results.Update(c.Request.Context(), c.Param("rollNo"), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Breakdown godoc
// @Summary Stored result breakdown for a student
// @Tags Results
// @Produce json
// @Param rollNo query string true "Student roll number"
// @Success 200 {object} response.Envelope
// @Router /results [get]
func (h *ResultHandler) Breakdown(c *gin.Context) {
	breakdown, err := h.results.Breakdown(c.Request.Context(), c.Query("rollNo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, breakdown)
}

// Summary godoc
// @Summary Cohort result summary with ranks
// @Tags Results
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /results/summary [get]
func (h *ResultHandler) Summary(c *gin.Context) {
	summary, err := h.results.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}
