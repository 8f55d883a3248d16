package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushq/project-review-api/internal/models"
	"github.com/campushq/project-review-api/internal/service"
	appErrors "github.com/campushq/project-review-api/pkg/errors"
	"github.com/campushq/project-review-api/pkg/response"
)

// WeightageHandler exposes the singleton weightage configuration.
type WeightageHandler struct {
	weightages *service.WeightageService
}

// NewWeightageHandler constructs handler.
func NewWeightageHandler(weightages *service.WeightageService) *WeightageHandler {
	return &WeightageHandler{weightages: weightages}
}

// Set godoc
// @Summary Set review weightages
// @Tags Weightage
// @Accept json
// @Produce json
// @Param payload body service.SetWeightageRequest true "Weightage payload"
// @Success 200 {object} response.Envelope
// @Router /weightage [put]
func (h *WeightageHandler) Set(c *gin.Context) {
	var req service.SetWeightageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	w, err := h.weightages.Set(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, w)
}

// Get godoc
// @Summary Get review weightages
// @Tags Weightage
// @Produce json
// @Param id query int false "Weightage id (defaults to the singleton)"
// @Success 200 {object} response.Envelope
// @Router /weightage [get]
func (h *WeightageHandler) Get(c *gin.Context) {
	id := models.WeightageID
	if raw := c.Query("id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid weightage id"))
			return
		}
		id = parsed
	}
	w, err := h.weightages.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, w)
}
