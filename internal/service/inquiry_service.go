package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/nextstop-api/internal/models"
	appErrors "github.com/noah-isme/nextstop-api/pkg/errors"
	"github.com/noah-isme/nextstop-api/pkg/export"
)

const (
	// InquirySubmittedMessage is shown to the visitor after a successful submission.
	InquirySubmittedMessage = "Your inquiry has been submitted successfully! We'll contact you within 24 hours."

	msgSubmitFailed       = "Failed to submit inquiry. Please try again or contact us via WhatsApp."
	msgListInquiryFailed  = "Failed to fetch inquiries"
	msgExportFailed       = "Failed to export inquiries"
	msgUnsupportedFormat  = "format must be csv or pdf"
	inquiryExportTitle    = "NextStopRussia student inquiries"
	inquiryExportBaseName = "inquiries"
)

type inquiryRepository interface {
	ListInquiries(ctx context.Context) ([]models.Inquiry, error)
	CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error
	CountInquiriesSince(ctx context.Context, since time.Time) (int, error)
}

type datasetRenderer interface {
	Render(data export.Dataset) ([]byte, error)
	ContentType() string
}

// ExportFile is a rendered lead export.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// InquiryService accepts contact form submissions and serves them back to staff.
type InquiryService struct {
	repo      inquiryRepository
	validator *validator.Validate
	notifier  LeadNotifier
	metrics   *MetricsService
	logger    *zap.Logger
	renderers map[models.InquiryExportFormat]datasetRenderer
	now       func() time.Time
}

// NewInquiryService constructs an InquiryService. A nil notifier logs leads
// through logger.
func NewInquiryService(repo inquiryRepository, validate *validator.Validate, notifier LeadNotifier, metrics *MetricsService, logger *zap.Logger) *InquiryService {
	if validate == nil {
		validate = validator.New()
	}
	configureValidator(validate)
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = NewLogNotifier(logger)
	}
	return &InquiryService{
		repo:      repo,
		validator: validate,
		notifier:  notifier,
		metrics:   metrics,
		logger:    logger,
		renderers: map[models.InquiryExportFormat]datasetRenderer{
			models.InquiryExportCSV: export.NewCSVExporter(),
			models.InquiryExportPDF: export.NewPDFExporter(),
		},
		now: time.Now,
	}
}

// Submit validates req, stores it and announces the new lead.
func (s *InquiryService) Submit(ctx context.Context, req CreateInquiryRequest) (*models.Inquiry, error) {
	inquiry, err := ValidateInquiry(s.validator, req)
	if err != nil {
		var fe *FieldError
		if errors.As(err, &fe) {
			s.metrics.InquiryRejected(fe.Field)
		} else {
			s.metrics.InquiryRejected("")
		}
		return nil, err
	}

	if err := s.repo.CreateInquiry(ctx, inquiry); err != nil {
		s.logger.Error("failed to store inquiry", zap.Error(err))
		return nil, appErrors.Internal(err, msgSubmitFailed)
	}

	s.metrics.InquirySubmitted()
	s.notifier.Notify(ctx, *inquiry)
	return inquiry, nil
}

// List returns every stored inquiry in insertion order.
func (s *InquiryService) List(ctx context.Context) ([]models.Inquiry, error) {
	inquiries, err := s.repo.ListInquiries(ctx)
	if err != nil {
		s.logger.Error("failed to list inquiries", zap.Error(err))
		return nil, appErrors.Internal(err, msgListInquiryFailed)
	}
	if inquiries == nil {
		inquiries = []models.Inquiry{}
	}
	return inquiries, nil
}

// CountSince reports how many inquiries arrived at or after since.
func (s *InquiryService) CountSince(ctx context.Context, since time.Time) (int, error) {
	count, err := s.repo.CountInquiriesSince(ctx, since)
	if err != nil {
		return 0, appErrors.Internal(err, msgListInquiryFailed)
	}
	return count, nil
}

// ParseExportFormat resolves a format query value, defaulting to CSV.
func ParseExportFormat(raw string) (models.InquiryExportFormat, error) {
	switch models.InquiryExportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", models.InquiryExportCSV:
		return models.InquiryExportCSV, nil
	case models.InquiryExportPDF:
		return models.InquiryExportPDF, nil
	default:
		return "", appErrors.Validation(msgUnsupportedFormat)
	}
}

// Export renders all inquiries in the requested format.
func (s *InquiryService) Export(ctx context.Context, format models.InquiryExportFormat) (*ExportFile, error) {
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Validation(msgUnsupportedFormat)
	}

	inquiries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	body, err := renderer.Render(inquiryDataset(inquiries))
	if err != nil {
		s.logger.Error("failed to render inquiry export", zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, msgExportFailed)
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("%s-%s.%s", inquiryExportBaseName, s.now().UTC().Format("20060102-150405"), format),
		ContentType: renderer.ContentType(),
		Body:        body,
	}, nil
}

func inquiryDataset(inquiries []models.Inquiry) export.Dataset {
	rows := make([]map[string]string, 0, len(inquiries))
	for _, inq := range inquiries {
		message := ""
		if inq.Message != nil {
			message = *inq.Message
		}
		rows = append(rows, map[string]string{
			"createdAt":       inq.CreatedAt.UTC().Format(time.RFC3339),
			"name":            inq.Name,
			"email":           inq.Email,
			"phone":           inq.Phone,
			"country":         inq.Country,
			"programInterest": inq.ProgramInterest,
			"educationLevel":  inq.EducationLevel,
			"message":         message,
		})
	}
	return export.Dataset{
		Title: inquiryExportTitle,
		Columns: []export.Column{
			{Key: "createdAt", Title: "Submitted", Width: 1.6},
			{Key: "name", Title: "Name", Width: 1.4},
			{Key: "email", Title: "Email", Width: 2},
			{Key: "phone", Title: "Phone", Width: 1.3},
			{Key: "country", Title: "Country", Width: 1},
			{Key: "programInterest", Title: "Program", Width: 1.2},
			{Key: "educationLevel", Title: "Education", Width: 1.2},
			{Key: "message", Title: "Message", Width: 2.5},
		},
		Rows: rows,
	}
}
