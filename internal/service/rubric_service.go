package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/campushq/project-review-api/internal/models"
	appErrors "github.com/campushq/project-review-api/pkg/errors"
)

const pqUniqueViolation = "23505"

type rubricRepo interface {
	Create(ctx context.Context, form *models.RubricForm) error
	List(ctx context.Context) ([]models.RubricForm, error)
	FindByTitle(ctx context.Context, title string) (*models.RubricForm, error)
}

// CreateRubricRequest is the authoring payload.
type CreateRubricRequest struct {
	FormTitle      string               `json:"formTitle" validate:"required"`
	ReviewType     models.ReviewType    `json:"reviewType" validate:"required"`
	FormParameters models.ParameterList `json:"formParameters" validate:"required,min=1"`
}

// RubricFormView is a rubric with its display maximum, computed once when
// the form is loaded.
type RubricFormView struct {
	models.RubricForm
	OverallTotalMarks int `json:"overallTotalMarks"`
}

// RubricService manages authoring and retrieval of scoring templates.
type RubricService struct {
	rubrics   rubricRepo
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRubricService constructs RubricService.
func NewRubricService(rubrics rubricRepo, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *RubricService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RubricService{rubrics: rubrics, cache: cache, validator: validate, logger: logger}
}

// Create validates and stores a new rubric form. Parameter totals are
// recomputed bottom-up before persistence; non-numeric maxes contribute 0.
func (s *RubricService) Create(ctx context.Context, req CreateRubricRequest) (*RubricFormView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid rubric payload")
	}
	if !req.ReviewType.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown review type")
	}
	params := make(models.ParameterList, len(req.FormParameters))
	for i, param := range req.FormParameters {
		if strings.TrimSpace(param.Title) == "" {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("parameter %d missing title", i+1))
		}
		if len(param.SubParameters) == 0 {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("parameter %q has no sub-parameters", param.Title))
		}
		for j, sub := range param.SubParameters {
			if strings.TrimSpace(sub.Name) == "" {
				return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("parameter %q sub-parameter %d missing name", param.Title, j+1))
			}
		}
		param.TotalMarks = AuthoredParameterTotal(param)
		params[i] = param
	}

	form := &models.RubricForm{
		FormTitle:  strings.TrimSpace(req.FormTitle),
		ReviewType: req.ReviewType,
		Parameters: params,
	}
	if err := s.rubrics.Create(ctx, form); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, appErrors.Clone(appErrors.ErrConflict, "a form with this title already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create rubric form")
	}
	if err := s.cache.Invalidate(ctx, "rubrics:*"); err != nil {
		s.logger.Warn("rubric cache invalidation failed", zap.Error(err))
	}
	return &RubricFormView{RubricForm: *form, OverallTotalMarks: FormOverallMax(form.Parameters)}, nil
}

// List returns every rubric form.
func (s *RubricService) List(ctx context.Context) ([]models.RubricForm, error) {
	var cached []models.RubricForm
	if hit, _ := s.cache.Get(ctx, "rubrics:list", &cached); hit {
		return cached, nil
	}
	forms, err := s.rubrics.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rubric forms")
	}
	_ = s.cache.Set(ctx, "rubrics:list", forms, 0)
	return forms, nil
}

// GetByTitle loads one rubric with its display maximum. Forms are immutable
// once referenced, so the read-through cache is safe.
func (s *RubricService) GetByTitle(ctx context.Context, title string) (*RubricFormView, error) {
	if strings.TrimSpace(title) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "form title required")
	}
	key := "rubrics:title:" + title
	var cached RubricFormView
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return &cached, nil
	}
	form, err := s.rubrics.FindByTitle(ctx, title)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "rubric form not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load rubric form")
	}
	view := &RubricFormView{RubricForm: *form, OverallTotalMarks: FormOverallMax(form.Parameters)}
	_ = s.cache.Set(ctx, key, view, 0)
	return view, nil
}
