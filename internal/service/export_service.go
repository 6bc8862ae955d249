package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/healing-center/counseling-api/internal/models"
	appErrors "github.com/healing-center/counseling-api/pkg/errors"
	"github.com/healing-center/counseling-api/pkg/export"
)

// ExportFormat identifies a supported download format.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

type consultationLister interface {
	List(ctx context.Context, filter models.ConsultationFilter) ([]models.Consultation, int, error)
}

type reviewLister interface {
	List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, int, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportPayload is a rendered download ready to stream to the client.
type ExportPayload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders consultation and review datasets as CSV or PDF
// downloads for administrators.
type ExportService struct {
	consultations consultationLister
	reviews       reviewLister
	csv           csvRenderer
	pdf           pdfRenderer
	logger        *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(consultations consultationLister, reviews reviewLister, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
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
		consultations: consultations,
		reviews:       reviews,
		csv:           csv,
		pdf:           pdf,
		logger:        logger,
	}
}

// ExportConsultations renders the full consultation list in the requested
// format. An optional status narrows the export.
func (s *ExportService) ExportConsultations(ctx context.Context, format ExportFormat, status string) (*ExportPayload, error) {
	filter := models.ConsultationFilter{Limit: 100}
	if status != "" {
		parsed := models.ConsultationStatus(status)
		if !models.ValidConsultationStatus(parsed) {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown consultation status %q", status))
		}
		filter.Status = &parsed
	}

	var all []models.Consultation
	for {
		page, total, err := s.consultations.List(ctx, filter)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list consultations for export")
		}
		all = append(all, page...)
		if len(all) >= total || len(page) == 0 {
			break
		}
		filter.Offset += len(page)
	}

	rows := make([]map[string]string, 0, len(all))
	for _, c := range all {
		rows = append(rows, map[string]string{
			"ID":             c.ID,
			"Contact Name":   c.ContactName,
			"Contact Phone":  c.ContactPhone,
			"Type":           string(c.Type),
			"Urgency":        string(c.Urgency),
			"Method":         string(c.Method),
			"Preferred Date": c.PreferredDate.Format("2006-01-02"),
			"Preferred Time": c.PreferredTime,
			"Status":         string(c.Status),
			"Created At":     c.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	dataset := export.Dataset{
		Headers: []string{"ID", "Contact Name", "Contact Phone", "Type", "Urgency", "Method", "Preferred Date", "Preferred Time", "Status", "Created At"},
		Rows:    rows,
	}

	return s.render(dataset, "Consultation Report", "consultations", format)
}

// ExportReviews renders the review list in the requested format.
func (s *ExportService) ExportReviews(ctx context.Context, format ExportFormat) (*ExportPayload, error) {
	filter := models.ReviewFilter{Limit: 100}

	var all []models.Review
	for {
		page, total, err := s.reviews.List(ctx, filter)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list reviews for export")
		}
		all = append(all, page...)
		if len(all) >= total || len(page) == 0 {
			break
		}
		filter.Offset += len(page)
	}

	rows := make([]map[string]string, 0, len(all))
	for _, r := range all {
		counselorID := ""
		if r.CounselorID != nil {
			counselorID = *r.CounselorID
		}
		rows = append(rows, map[string]string{
			"ID":           r.ID,
			"Counselor ID": counselorID,
			"Author":       r.DisplayName(),
			"Rating":       fmt.Sprintf("%d", r.Rating),
			"Title":        r.Title,
			"Approved":     fmt.Sprintf("%t", r.IsApproved),
			"Views":        fmt.Sprintf("%d", r.ViewCount),
			"Created At":   r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	dataset := export.Dataset{
		Headers: []string{"ID", "Counselor ID", "Author", "Rating", "Title", "Approved", "Views", "Created At"},
		Rows:    rows,
	}

	return s.render(dataset, "Review Report", "reviews", format)
}

func (s *ExportService) render(dataset export.Dataset, title, prefix string, format ExportFormat) (*ExportPayload, error) {
	timestamp := time.Now().UTC().Format("20060102_150405")
	switch format {
	case ExportFormatCSV:
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportPayload{
			Filename:    fmt.Sprintf("%s_%s.csv", prefix, timestamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	case ExportFormatPDF:
		data, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportPayload{
			Filename:    fmt.Sprintf("%s_%s.pdf", prefix, timestamp),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}
