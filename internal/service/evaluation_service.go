package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushq/project-review-api/internal/models"
	appErrors "github.com/campushq/project-review-api/pkg/errors"
)

type evaluationRepo interface {
	Upsert(ctx context.Context, eval *models.Evaluation) (bool, error)
	FindByRollAndReview(ctx context.Context, class models.EvaluatorClass, rollNo string, reviewType models.ReviewType) (*models.Evaluation, error)
	FindByID(ctx context.Context, class models.EvaluatorClass, id string) (*models.Evaluation, error)
	UpdateByID(ctx context.Context, eval *models.Evaluation) error
	FindFirstByRoll(ctx context.Context, class models.EvaluatorClass, rollNo string) (*models.Evaluation, error)
	ExistsByRoll(ctx context.Context, class models.EvaluatorClass, rollNo string) (bool, error)
}

type rosterReader interface {
	FindByRoll(ctx context.Context, rollNo string) (*models.Student, error)
}

// SubmitEvaluationRequest carries a complete scoring submission. The rubric
// snapshot travels with the payload; marks are the raw entered strings.
// calculatedTotalMarks, when present and different from the server-side
// computation, is honored as a manual override.
type SubmitEvaluationRequest struct {
	RollNo               string               `json:"rollNo" validate:"required"`
	StudentName          string               `json:"studentName"`
	FormTitle            string               `json:"formTitle" validate:"required"`
	FormParameters       models.ParameterList `json:"formParameters" validate:"required,min=1"`
	FormValues           models.MarksList     `json:"formValues" validate:"required"`
	ReviewType           models.ReviewType    `json:"reviewType" validate:"required"`
	Remarks              string               `json:"remarks"`
	CalculatedTotalMarks *int                 `json:"calculatedTotalMarks"`
}

// SubmitEvaluationResult reports the persisted record and whether it was
// newly created or an overwrite of an earlier submission.
type SubmitEvaluationResult struct {
	Evaluation *models.Evaluation `json:"evaluation"`
	Created    bool               `json:"created"`
}

// EvaluationService owns the submission lifecycle: validation, the
// authoritative total computation, and the at-most-one-record-per-key
// upsert for both evaluator classes.
type EvaluationService struct {
	evaluations evaluationRepo
	roster      rosterReader
	metrics     *MetricsService
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewEvaluationService constructs EvaluationService.
func NewEvaluationService(evaluations evaluationRepo, roster rosterReader, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *EvaluationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvaluationService{evaluations: evaluations, roster: roster, metrics: metrics, validator: validate, logger: logger}
}

// Submit validates and persists a submission for one (student, round,
// evaluator class) key. Resubmissions overwrite the existing record; the
// database constraint guarantees no duplicates even under concurrent
// identical requests.
func (s *EvaluationService) Submit(ctx context.Context, class models.EvaluatorClass, req SubmitEvaluationRequest) (*SubmitEvaluationResult, error) {
	eval, err := s.buildRecord(ctx, class, req)
	if err != nil {
		return nil, err
	}
	created, err := s.evaluations.Upsert(ctx, eval)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save evaluation")
	}
	s.metrics.RecordSubmission(string(class), created)
	s.logger.Info("evaluation saved",
		zap.String("roll_no", eval.RollNo),
		zap.String("review_type", string(eval.ReviewType)),
		zap.String("evaluator_class", string(class)),
		zap.Bool("created", created))
	return &SubmitEvaluationResult{Evaluation: eval, Created: created}, nil
}

// Check returns the existing submission for the key, or a not-found error.
// The 404 branch is the normal "create" signal of the upsert protocol.
func (s *EvaluationService) Check(ctx context.Context, class models.EvaluatorClass, rollNo string, reviewType models.ReviewType) (*models.Evaluation, error) {
	if !class.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown evaluator class")
	}
	if rollNo == "" || !reviewType.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "roll number and review type required")
	}
	eval, err := s.evaluations.FindByRollAndReview(ctx, class, rollNo, reviewType)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "evaluation entry not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check evaluation entry")
	}
	return eval, nil
}

// Update overwrites an existing submission by id, kept for contract
// compatibility with clients that drive the check-then-update flow.
func (s *EvaluationService) Update(ctx context.Context, class models.EvaluatorClass, id string, req SubmitEvaluationRequest) (*models.Evaluation, error) {
	existing, err := s.evaluations.FindByID(ctx, class, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "evaluation entry not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load evaluation entry")
	}
	eval, err := s.buildRecord(ctx, class, req)
	if err != nil {
		return nil, err
	}
	eval.ID = existing.ID
	eval.CreatedAt = existing.CreatedAt
	if err := s.evaluations.UpdateByID(ctx, eval); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "evaluation entry not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update evaluation entry")
	}
	return eval, nil
}

// PanelByRollAndReview is the student-facing result detail view.
func (s *EvaluationService) PanelByRollAndReview(ctx context.Context, rollNo string, reviewType models.ReviewType) (*models.Evaluation, error) {
	return s.Check(ctx, models.EvaluatorPanel, rollNo, reviewType)
}

// GuideMarks returns the student's guide submission regardless of round.
func (s *EvaluationService) GuideMarks(ctx context.Context, rollNo string) (*models.Evaluation, error) {
	if rollNo == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "roll number required")
	}
	eval, err := s.evaluations.FindFirstByRoll(ctx, models.EvaluatorGuide, rollNo)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "guide evaluation not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load guide evaluation")
	}
	return eval, nil
}

// GuideCompleted reports whether the guide has scored the student at all.
func (s *EvaluationService) GuideCompleted(ctx context.Context, rollNo string) (*models.GuideCompletion, error) {
	if rollNo == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "roll number required")
	}
	exists, err := s.evaluations.ExistsByRoll(ctx, models.EvaluatorGuide, rollNo)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check guide evaluation")
	}
	return &models.GuideCompletion{Completed: exists}, nil
}

func (s *EvaluationService) buildRecord(ctx context.Context, class models.EvaluatorClass, req SubmitEvaluationRequest) (*models.Evaluation, error) {
	if !class.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown evaluator class")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid evaluation payload")
	}
	if !req.ReviewType.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown review type")
	}
	if err := validateMarksAlignment(req.FormParameters, req.FormValues); err != nil {
		return nil, err
	}

	studentName := strings.TrimSpace(req.StudentName)
	if studentName == "" && s.roster != nil {
		student, err := s.roster.FindByRoll(ctx, req.RollNo)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, appErrors.Clone(appErrors.ErrValidation, "student not found in roster")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve student")
		}
		studentName = student.Name
	}

	computed := SubmissionTotal(req.FormParameters, req.FormValues)
	total := computed
	origin := models.MarksComputed
	if req.CalculatedTotalMarks != nil && *req.CalculatedTotalMarks != computed {
		total = *req.CalculatedTotalMarks
		origin = models.MarksManual
	}

	return &models.Evaluation{
		RollNo:         req.RollNo,
		StudentName:    studentName,
		FormTitle:      req.FormTitle,
		Parameters:     req.FormParameters,
		Values:         req.FormValues,
		ReviewType:     req.ReviewType,
		EvaluatorClass: class,
		Remarks:        req.Remarks,
		TotalMarks:     total,
		MarksOrigin:    origin,
	}, nil
}

// validateMarksAlignment enforces the all-or-nothing submission rule: every
// rubric parameter needs a marks entry covering each sub-parameter. The
// offending field is named so the UI can surface it inline.
func validateMarksAlignment(params models.ParameterList, values models.MarksList) error {
	if len(values) != len(params) {
		return appErrors.Clone(appErrors.ErrIncompleteMarks,
			fmt.Sprintf("expected marks for %d parameters, got %d", len(params), len(values)))
	}
	for i, param := range params {
		entry := values[i]
		if len(entry.SubParameterMarks) != len(param.SubParameters) {
			return appErrors.Clone(appErrors.ErrIncompleteMarks,
				fmt.Sprintf("parameter %q expects %d marks, got %d", param.Title, len(param.SubParameters), len(entry.SubParameterMarks)))
		}
		for j, mark := range entry.SubParameterMarks {
			if strings.TrimSpace(mark) == "" {
				return appErrors.Clone(appErrors.ErrIncompleteMarks,
					fmt.Sprintf("parameter %q sub-parameter %q has no mark", param.Title, param.SubParameters[j].Name))
			}
		}
	}
	return nil
}
