package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushq/project-review-api/internal/models"
	appErrors "github.com/campushq/project-review-api/pkg/errors"
)

type weightageRepo interface {
	Upsert(ctx context.Context, w *models.Weightage) error
	FindByID(ctx context.Context, id int) (*models.Weightage, error)
}

// SetWeightageRequest carries the four weights. They conventionally sum to
// 1.0 but that is not enforced, matching the admin screen's behavior.
type SetWeightageRequest struct {
	FirstReview  float64 `json:"firstReview" validate:"gte=0"`
	SecondReview float64 `json:"secondReview" validate:"gte=0"`
	ThirdReview  float64 `json:"thirdReview" validate:"gte=0"`
	GuideMarks   float64 `json:"guideMarks" validate:"gte=0"`
}

// WeightageService manages the singleton weightage configuration.
type WeightageService struct {
	weightages weightageRepo
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewWeightageService constructs WeightageService.
func NewWeightageService(weightages weightageRepo, validate *validator.Validate, logger *zap.Logger) *WeightageService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WeightageService{weightages: weightages, validator: validate, logger: logger}
}

// Set creates the weightage row on first write and updates it in place
// afterwards.
func (s *WeightageService) Set(ctx context.Context, req SetWeightageRequest) (*models.Weightage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid weightage payload")
	}
	w := &models.Weightage{
		ID:           models.WeightageID,
		FirstReview:  req.FirstReview,
		SecondReview: req.SecondReview,
		ThirdReview:  req.ThirdReview,
		GuideMarks:   req.GuideMarks,
	}
	if err := s.weightages.Upsert(ctx, w); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to set weightage")
	}
	s.logger.Info("weightage updated",
		zap.Float64("first_review", w.FirstReview),
		zap.Float64("second_review", w.SecondReview),
		zap.Float64("third_review", w.ThirdReview),
		zap.Float64("guide_marks", w.GuideMarks))
	return w, nil
}

// Get fetches the weightage row by id.
func (s *WeightageService) Get(ctx context.Context, id int) (*models.Weightage, error) {
	w, err := s.weightages.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "weightage not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load weightage")
	}
	return w, nil
}
