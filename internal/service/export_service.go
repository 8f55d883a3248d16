package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/campushq/project-review-api/internal/models"
	appErrors "github.com/campushq/project-review-api/pkg/errors"
	"github.com/campushq/project-review-api/pkg/export"
)

// ExportFormat selects the rendered output type.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

type resultRowsReader interface {
	Rows(ctx context.Context) ([]models.ResultRow, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	Enabled       bool
	Establishment string
}

// ExportFile is a rendered result sheet ready to stream to the caller.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders the ranked result sheet as CSV or PDF.
type ExportService struct {
	results resultRowsReader
	csv     csvRenderer
	pdf     pdfRenderer
	cfg     ExportConfig
	logger  *zap.Logger
	now     func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(results resultRowsReader, cfg ExportConfig, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		results: results,
		csv:     csv,
		pdf:     pdf,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// Generate builds the result-sheet dataset and renders it in the requested format.
func (s *ExportService) Generate(ctx context.Context, format ExportFormat) (*ExportFile, error) {
	if !s.cfg.Enabled {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "exports are disabled")
	}
	if format != ExportFormatCSV && format != ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	rows, err := s.results.Rows(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load result rows")
	}
	dataset := s.buildDataset(rows)

	title := "Project Review Results"
	if s.cfg.Establishment != "" {
		title = s.cfg.Establishment + " - " + title
	}

	var payload []byte
	var contentType string
	switch format {
	case ExportFormatCSV:
		payload, err = s.csv.Render(dataset)
		contentType = "text/csv"
	case ExportFormatPDF:
		payload, err = s.pdf.Render(dataset, title)
		contentType = "application/pdf"
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render result sheet")
	}

	file := &ExportFile{
		Filename:    fmt.Sprintf("results-%s.%s", s.now().Format("20060102-150405"), format),
		ContentType: contentType,
		Payload:     payload,
	}
	s.logger.Info("result sheet exported",
		zap.String("format", string(format)),
		zap.Int("rows", len(rows)),
		zap.Int("bytes", len(file.Payload)))
	return file, nil
}

func (s *ExportService) buildDataset(rows []models.ResultRow) export.Dataset {
	headers := []string{"Rank", "Roll No", "Student Name", "Total Marks"}
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		rank := ""
		if row.Rank != nil {
			rank = strconv.Itoa(*row.Rank)
		}
		total := ""
		if row.TotalMarks != nil {
			total = strconv.FormatFloat(*row.TotalMarks, 'f', 2, 64)
		}
		out = append(out, map[string]string{
			"Rank":         rank,
			"Roll No":      row.StudentRollNo,
			"Student Name": row.StudentName,
			"Total Marks":  total,
		})
	}
	return export.Dataset{Headers: headers, Rows: out}
}
