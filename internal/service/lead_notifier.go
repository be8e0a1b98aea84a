package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/nextstop-api/internal/models"
	"github.com/noah-isme/nextstop-api/pkg/jobs"
)

const (
	leadLogMessage = "new student inquiry received"
	leadJobType    = "inquiry.notify"
)

// LeadNotifier announces a stored inquiry to the admissions team.
type LeadNotifier interface {
	Notify(ctx context.Context, inquiry models.Inquiry)
}

// LogNotifier writes one structured log entry per inquiry.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier builds a notifier logging through a child logger named "leads".
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger.Named("leads")}
}

// Notify implements LeadNotifier.
func (n *LogNotifier) Notify(_ context.Context, inquiry models.Inquiry) {
	message := "N/A"
	if inquiry.Message != nil && *inquiry.Message != "" {
		message = *inquiry.Message
	}
	n.logger.Info(leadLogMessage,
		zap.String("inquiry_id", inquiry.ID),
		zap.String("name", inquiry.Name),
		zap.String("email", inquiry.Email),
		zap.String("phone", inquiry.Phone),
		zap.String("country", inquiry.Country),
		zap.String("program_interest", inquiry.ProgramInterest),
		zap.String("education_level", inquiry.EducationLevel),
		zap.String("message", message),
		zap.Time("submitted_at", inquiry.CreatedAt),
	)
}

type leadQueue interface {
	Enqueue(job jobs.Job) error
}

// QueuedNotifier defers notification to a background queue. When the queue
// rejects a job the inquiry is announced inline instead, so every stored
// inquiry is announced once.
type QueuedNotifier struct {
	queue    leadQueue
	delegate LeadNotifier
	logger   *zap.Logger
}

// NewQueuedNotifier wires delegate behind queue.
func NewQueuedNotifier(queue leadQueue, delegate LeadNotifier, logger *zap.Logger) *QueuedNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueuedNotifier{queue: queue, delegate: delegate, logger: logger}
}

// LeadJobHandler adapts delegate to a jobs.Handler. It never returns an error,
// so a job is never retried after the delegate ran.
func LeadJobHandler(delegate LeadNotifier, logger *zap.Logger) jobs.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context, job jobs.Job) error {
		inquiry, ok := job.Payload.(models.Inquiry)
		if !ok {
			logger.Error("unexpected lead job payload", zap.String("job_id", job.ID), zap.String("type", job.Type))
			return nil
		}
		delegate.Notify(ctx, inquiry)
		return nil
	}
}

// Notify implements LeadNotifier.
func (n *QueuedNotifier) Notify(ctx context.Context, inquiry models.Inquiry) {
	err := n.queue.Enqueue(jobs.Job{
		ID:       inquiry.ID,
		Type:     leadJobType,
		Payload:  inquiry,
		Enqueued: time.Now().UTC(),
	})
	if err == nil {
		return
	}
	if errors.Is(err, jobs.ErrQueueFull) {
		n.logger.Warn("lead queue full, notifying inline", zap.String("inquiry_id", inquiry.ID))
	} else {
		n.logger.Warn("lead queue unavailable, notifying inline", zap.String("inquiry_id", inquiry.ID), zap.Error(err))
	}
	n.delegate.Notify(ctx, inquiry)
}
