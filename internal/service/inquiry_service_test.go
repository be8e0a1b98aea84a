package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noah-isme/nextstop-api/internal/models"
	"github.com/noah-isme/nextstop-api/internal/repository"
	appErrors "github.com/noah-isme/nextstop-api/pkg/errors"
)

type failingInquiryRepo struct {
	err error
}

func (r *failingInquiryRepo) ListInquiries(context.Context) ([]models.Inquiry, error) {
	return nil, r.err
}

func (r *failingInquiryRepo) CreateInquiry(context.Context, *models.Inquiry) error {
	return r.err
}

func (r *failingInquiryRepo) CountInquiriesSince(context.Context, time.Time) (int, error) {
	return 0, r.err
}

type recordingNotifier struct {
	mu        sync.Mutex
	inquiries []models.Inquiry
}

func (n *recordingNotifier) Notify(_ context.Context, inquiry models.Inquiry) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.inquiries = append(n.inquiries, inquiry)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.inquiries)
}

func TestInquiryServiceSubmitStoresAndNotifies(t *testing.T) {
	store := repository.NewMemoryStore()
	notifier := &recordingNotifier{}
	metrics := NewMetricsService()
	svc := NewInquiryService(store, nil, notifier, metrics, zap.NewNop())

	inquiry, err := svc.Submit(context.Background(), validInquiryRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, inquiry.ID)
	assert.False(t, inquiry.CreatedAt.IsZero())

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, inquiry.ID, listed[0].ID)
	assert.Equal(t, "rahul@example.com", listed[0].Email)

	require.Equal(t, 1, notifier.count())
	assert.Equal(t, inquiry.ID, notifier.inquiries[0].ID)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.inquiriesSubmitted))
}

func TestInquiryServiceSubmitRejectsInvalid(t *testing.T) {
	store := repository.NewMemoryStore()
	notifier := &recordingNotifier{}
	metrics := NewMetricsService()
	svc := NewInquiryService(store, nil, notifier, metrics, nil)

	req := validInquiryRequest()
	req.Email = text("not-an-email")
	_, err := svc.Submit(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, "Please enter a valid email address", appErrors.FromError(err).Message)

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listed)
	assert.Zero(t, notifier.count())
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.inquiriesRejected.WithLabelValues("email")))
}

func TestInquiryServiceSubmitStoreFailure(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewInquiryService(&failingInquiryRepo{err: errors.New("disk full")}, nil, notifier, nil, nil)

	_, err := svc.Submit(context.Background(), validInquiryRequest())
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "Failed to submit inquiry. Please try again or contact us via WhatsApp.", appErr.Message)
	assert.Zero(t, notifier.count())
}

func TestInquiryServiceListFailure(t *testing.T) {
	svc := NewInquiryService(&failingInquiryRepo{err: errors.New("boom")}, nil, nil, nil, nil)

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch inquiries", appErrors.FromError(err).Message)
}

func TestInquiryServiceLogsLeadOnce(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	svc := NewInquiryService(repository.NewMemoryStore(), nil, nil, nil, zap.New(core))

	inquiry, err := svc.Submit(context.Background(), validInquiryRequest())
	require.NoError(t, err)

	entries := logs.FilterMessage("new student inquiry received").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "leads", entries[0].LoggerName)
	fields := entries[0].ContextMap()
	assert.Equal(t, inquiry.ID, fields["inquiry_id"])
	assert.Equal(t, "Rahul", fields["name"])
	assert.Equal(t, "MBBS", fields["program_interest"])
	assert.Equal(t, "N/A", fields["message"])
}

func TestInquiryServiceConcurrentSubmits(t *testing.T) {
	store := repository.NewMemoryStore()
	notifier := &recordingNotifier{}
	svc := NewInquiryService(store, nil, notifier, nil, nil)

	const total = 50
	var wg sync.WaitGroup
	ids := make(chan string, total)
	for i := 0; i < total; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inquiry, err := svc.Submit(context.Background(), validInquiryRequest())
			if assert.NoError(t, err) {
				ids <- inquiry.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	unique := map[string]struct{}{}
	for id := range ids {
		unique[id] = struct{}{}
	}
	assert.Len(t, unique, total)

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, total)
	assert.Equal(t, total, notifier.count())
}

func TestParseExportFormat(t *testing.T) {
	format, err := ParseExportFormat("")
	require.NoError(t, err)
	assert.Equal(t, models.InquiryExportCSV, format)

	format, err = ParseExportFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, models.InquiryExportPDF, format)

	_, err = ParseExportFormat("xlsx")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestInquiryServiceExportCSV(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewInquiryService(store, nil, &recordingNotifier{}, nil, nil)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC) }

	msg := "Hostel details please"
	req := validInquiryRequest()
	req.Message = &msg
	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	file, err := svc.Export(context.Background(), models.InquiryExportCSV)
	require.NoError(t, err)
	assert.Equal(t, "inquiries-20240501-103000.csv", file.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)

	records, err := csv.NewReader(bytes.NewReader(file.Body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Submitted", records[0][0])
	assert.Equal(t, "Rahul", records[1][1])
	assert.Equal(t, "Hostel details please", records[1][7])
}

func TestInquiryServiceExportPDF(t *testing.T) {
	svc := NewInquiryService(repository.NewMemoryStore(), nil, &recordingNotifier{}, nil, nil)
	_, err := svc.Submit(context.Background(), validInquiryRequest())
	require.NoError(t, err)

	file, err := svc.Export(context.Background(), models.InquiryExportPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Body, []byte("%PDF-")))
}

func TestInquiryServiceExportUnknownFormat(t *testing.T) {
	svc := NewInquiryService(repository.NewMemoryStore(), nil, nil, nil, nil)

	_, err := svc.Export(context.Background(), models.InquiryExportFormat("xml"))
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}
