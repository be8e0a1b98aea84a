package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const digestTimeout = 30 * time.Second

type inquiryCounter interface {
	CountSince(ctx context.Context, since time.Time) (int, error)
}

// LeadDigest periodically logs how many inquiries arrived since its previous run.
type LeadDigest struct {
	cron     *cron.Cron
	counter  inquiryCounter
	schedule string
	logger   *zap.Logger
	now      func() time.Time

	mu      sync.Mutex
	lastRun time.Time
}

// NewLeadDigest validates schedule (standard five-field cron syntax or a
// descriptor such as "@daily") and prepares the job.
func NewLeadDigest(counter inquiryCounter, schedule string, logger *zap.Logger) (*LeadDigest, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("parse lead digest schedule %q: %w", schedule, err)
	}
	d := &LeadDigest{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		counter:  counter,
		schedule: schedule,
		logger:   logger.Named("leads"),
		now:      time.Now,
	}
	if _, err := d.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
		defer cancel()
		if _, err := d.Run(ctx); err != nil {
			d.logger.Error("lead digest failed", zap.Error(err))
		}
	}); err != nil {
		return nil, fmt.Errorf("register lead digest: %w", err)
	}
	return d, nil
}

// Start begins the schedule. The first window opens now.
func (d *LeadDigest) Start() {
	d.mu.Lock()
	d.lastRun = d.now().UTC()
	d.mu.Unlock()
	d.cron.Start()
	d.logger.Info("lead digest scheduled", zap.String("schedule", d.schedule))
}

// Stop halts the schedule and waits for a running digest to finish.
func (d *LeadDigest) Stop() {
	<-d.cron.Stop().Done()
}

// Run counts inquiries received since the previous run and logs the total.
func (d *LeadDigest) Run(ctx context.Context) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	until := d.now().UTC()
	since := d.lastRun
	count, err := d.counter.CountSince(ctx, since)
	if err != nil {
		return 0, err
	}
	d.lastRun = until
	d.logger.Info("lead digest",
		zap.Int("inquiries", count),
		zap.Time("since", since),
		zap.Time("until", until),
	)
	return count, nil
}
