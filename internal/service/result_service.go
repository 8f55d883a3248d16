package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushq/project-review-api/internal/models"
	appErrors "github.com/campushq/project-review-api/pkg/errors"
)

type resultRepo interface {
	Upsert(ctx context.Context, result *models.FinalResult) (bool, error)
	UpdateByRoll(ctx context.Context, result *models.FinalResult) error
	Exists(ctx context.Context, rollNo string) (bool, error)
	FindByRoll(ctx context.Context, rollNo string) (*models.FinalResult, error)
	Distribution(ctx context.Context) (*models.ResultDistribution, error)
	Rows(ctx context.Context) ([]models.ResultRow, error)
}

type evaluationTotalsReader interface {
	FindByRollAndReview(ctx context.Context, class models.EvaluatorClass, rollNo string, reviewType models.ReviewType) (*models.Evaluation, error)
	FindFirstByRoll(ctx context.Context, class models.EvaluatorClass, rollNo string) (*models.Evaluation, error)
}

type weightageReader interface {
	FindByID(ctx context.Context, id int) (*models.Weightage, error)
}

// FinalResultInput is the direct write payload for clients that compute the
// aggregate themselves.
type FinalResultInput struct {
	StudentRollNo string   `json:"studentRollNo" validate:"required"`
	FirstReview   *float64 `json:"firstReview"`
	SecondReview  *float64 `json:"secondReview"`
	ThirdReview   *float64 `json:"thirdReview"`
	GuideMarks    *float64 `json:"guideMarks"`
	TotalMarks    *float64 `json:"totalMarks"`
}

// SaveResultOutcome reports a persisted result and whether it was created.
type SaveResultOutcome struct {
	Result  *models.FinalResult `json:"result"`
	Created bool                `json:"created"`
}

// ResultService combines per-round totals into one weighted final score and
// persists it idempotently. Aggregation is explicitly invoked; a stale
// result stands until the next recomputation.
type ResultService struct {
	results     resultRepo
	evaluations evaluationTotalsReader
	weightages  weightageReader
	metrics     *MetricsService
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewResultService constructs ResultService.
func NewResultService(results resultRepo, evaluations evaluationTotalsReader, weightages weightageReader, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *ResultService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResultService{results: results, evaluations: evaluations, weightages: weightages, metrics: metrics, validator: validate, logger: logger}
}

// WeightedAverage renormalizes over the rounds that are present: missing
// rounds neither count nor penalize, so a student with a single scored
// round still gets a proportionate average. parts is ordered first, second,
// third, guide. The second return value is the accumulated weight;
// callers detect the no-data case by totalWeight == 0.
func WeightedAverage(parts [4]*float64, w models.Weightage) (float64, float64) {
	weights := [4]float64{w.FirstReview, w.SecondReview, w.ThirdReview, w.GuideMarks}
	weightedSum := 0.0
	totalWeight := 0.0
	for i, part := range parts {
		if part == nil {
			continue
		}
		weightedSum += *part * weights[i]
		totalWeight += weights[i]
	}
	if totalWeight == 0 {
		return 0, 0
	}
	return weightedSum / totalWeight, totalWeight
}

// Aggregate reads the three panel rounds, the guide submission and the
// weightage config, computes the weighted final score and upserts it. The
// weightage is re-read on every run, never cached.
func (s *ResultService) Aggregate(ctx context.Context, rollNo string) (*models.FinalResult, error) {
	if rollNo == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "roll number required")
	}
	weightage, err := s.weightages.FindByID(ctx, models.WeightageID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "weightage not configured")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load weightage")
	}

	var parts [4]*float64
	for i, reviewType := range models.ReviewTypes {
		total, err := s.roundTotal(ctx, rollNo, reviewType)
		if err != nil {
			return nil, err
		}
		parts[i] = total
	}
	guideTotal, err := s.guideTotal(ctx, rollNo)
	if err != nil {
		return nil, err
	}
	parts[3] = guideTotal

	total, totalWeight := WeightedAverage(parts, *weightage)
	if totalWeight == 0 {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "no scored rounds to aggregate")
	}

	result := &models.FinalResult{
		StudentRollNo: rollNo,
		FirstReview:   parts[0],
		SecondReview:  parts[1],
		ThirdReview:   parts[2],
		GuideMarks:    parts[3],
		TotalMarks:    &total,
	}
	if _, err := s.results.Upsert(ctx, result); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save final result")
	}
	s.metrics.RecordAggregation()
	s.logger.Info("final result aggregated",
		zap.String("roll_no", rollNo),
		zap.Float64("total_marks", total),
		zap.Float64("total_weight", totalWeight))
	return result, nil
}

// Exists reports whether a final result is stored for the student.
func (s *ResultService) Exists(ctx context.Context, rollNo string) (*models.ResultExistence, error) {
	if rollNo == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "roll number required")
	}
	exists, err := s.results.Exists(ctx, rollNo)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check final result")
	}
	return &models.ResultExistence{Exists: exists}, nil
}

// Save persists a client-computed result, creating on first write.
func (s *ResultService) Save(ctx context.Context, input FinalResultInput) (*SaveResultOutcome, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid result payload")
	}
	result := resultFromInput(input)
	created, err := s.results.Upsert(ctx, result)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save final result")
	}
	return &SaveResultOutcome{Result: result, Created: created}, nil
}

// Update overwrites the stored result for a student.
func (s *ResultService) Update(ctx context.Context, rollNo string, input FinalResultInput) (*models.FinalResult, error) {
	if rollNo == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "roll number required")
	}
	input.StudentRollNo = rollNo
	result := resultFromInput(input)
	if err := s.results.UpdateByRoll(ctx, result); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "final result not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update final result")
	}
	return result, nil
}

// Breakdown returns the stored result fields for a student. A missing row
// yields the all-null breakdown so the UI renders "not available" rather
// than a fake zero.
func (s *ResultService) Breakdown(ctx context.Context, rollNo string) (*models.ResultBreakdown, error) {
	if rollNo == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "roll number required")
	}
	result, err := s.results.FindByRoll(ctx, rollNo)
	if err != nil {
		if err == sql.ErrNoRows {
			return &models.ResultBreakdown{}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load final result")
	}
	return &models.ResultBreakdown{
		TotalMarks:   result.TotalMarks,
		FirstReview:  result.FirstReview,
		SecondReview: result.SecondReview,
		ThirdReview:  result.ThirdReview,
		GuideMarks:   result.GuideMarks,
	}, nil
}

// Summary aggregates cohort performance for the panel dashboard.
func (s *ResultService) Summary(ctx context.Context) (*models.ResultSummary, error) {
	rows, err := s.results.Rows(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load result rows")
	}
	distribution, err := s.results.Distribution(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to aggregate results")
	}
	return &models.ResultSummary{Distribution: distribution, Students: rows}, nil
}

func (s *ResultService) roundTotal(ctx context.Context, rollNo string, reviewType models.ReviewType) (*float64, error) {
	eval, err := s.evaluations.FindByRollAndReview(ctx, models.EvaluatorPanel, rollNo, reviewType)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load panel evaluation")
	}
	total := float64(eval.TotalMarks)
	return &total, nil
}

func (s *ResultService) guideTotal(ctx context.Context, rollNo string) (*float64, error) {
	eval, err := s.evaluations.FindFirstByRoll(ctx, models.EvaluatorGuide, rollNo)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load guide evaluation")
	}
	total := float64(eval.TotalMarks)
	return &total, nil
}

func resultFromInput(input FinalResultInput) *models.FinalResult {
	return &models.FinalResult{
		StudentRollNo: input.StudentRollNo,
		FirstReview:   input.FirstReview,
		SecondReview:  input.SecondReview,
		ThirdReview:   input.ThirdReview,
		GuideMarks:    input.GuideMarks,
		TotalMarks:    input.TotalMarks,
	}
}
