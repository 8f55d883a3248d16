package service

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/campushq/project-review-api/internal/models"
	appErrors "github.com/campushq/project-review-api/pkg/errors"
)

type studentRepo interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error)
	FindByRoll(ctx context.Context, rollNo string) (*models.Student, error)
}

// StudentService serves the roster projection consumed by the evaluator
// screens.
type StudentService struct {
	students studentRepo
	logger   *zap.Logger
}

// NewStudentService constructs StudentService.
func NewStudentService(students studentRepo, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{students: students, logger: logger}
}

// List returns roster entries matching the filter.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	students, err := s.students.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// Get fetches one roster entry by roll number.
func (s *StudentService) Get(ctx context.Context, rollNo string) (*models.Student, error) {
	if rollNo == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "roll number required")
	}
	student, err := s.students.FindByRoll(ctx, rollNo)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}
