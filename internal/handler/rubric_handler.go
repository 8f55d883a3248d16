package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/project-review-api/internal/service"
	appErrors "github.com/campushq/project-review-api/pkg/errors"
	"github.com/campushq/project-review-api/pkg/response"
)

// RubricHandler exposes rubric form endpoints.
type RubricHandler struct {
	rubrics *service.RubricService
}

// NewRubricHandler constructs handler.
func NewRubricHandler(rubrics *service.RubricService) *RubricHandler {
	return &RubricHandler{rubrics: rubrics}
}

// Create godoc
// @Summary Create rubric form
// @Tags Forms
// @Accept json
// @Produce json
// @Param payload body service.CreateRubricRequest true "Rubric payload"
// @Success 201 {object} response.Envelope
// @Router /forms [post]
func (h *RubricHandler) Create(c *gin.Context) {
	var req service.CreateRubricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	form, err := h.rubrics.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, form)
}

// List godoc
// @Summary List rubric forms
// @Tags Forms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /forms [get]
func (h *RubricHandler) List(c *gin.Context) {
	forms, err := h.rubrics.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, forms)
}

// GetByTitle godoc
// @Summary Get rubric form by title
// @Tags Forms
// @Produce json
// @Param formTitle path string true "Form title"
// @Success 200 {object} response.Envelope
// @Router /forms/{formTitle} [get]
func (h *RubricHandler) GetByTitle(c *gin.Context) {
	form, err := h.rubrics.GetByTitle(c.Request.Context(), c.Param("formTitle"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, form)
}
