package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/project-review-api/internal/models"
	"github.com/campushq/project-review-api/internal/service"
	"github.com/campushq/project-review-api/pkg/response"
)

// StudentHandler exposes the read-only roster.
type StudentHandler struct {
	students *service.StudentService
}

// NewStudentHandler constructs handler.
func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List godoc
// @Summary List roster students
// @Tags Students
// @Produce json
// @Param search query string false "Match roll number or name"
// @Param guideName query string false "Filter by guide"
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	filter := models.StudentFilter{Search: c.Query("search"), GuideName: c.Query("guideName")}
	students, err := h.students.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Get godoc
// @Summary Get one roster student
// @Tags Students
// @Produce json
// @Param rollNo path string true "Student roll number"
// @Success 200 {object} response.Envelope
// @Router /students/{rollNo} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.students.Get(c.Request.Context(), c.Param("rollNo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}
