package reaper

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tullab/tullab/internal/app/models"
	"github.com/tullab/tullab/internal/pkg/dates"
)

// SweepInterval is the fixed period between purge runs. The first run
// happens one full interval after Start, not immediately.
const SweepInterval = 24 * time.Hour

// ExamStore is the slice of storage the reaper needs.
type ExamStore interface {
	ListExams(ctx context.Context) ([]models.Exam, error)
	DeleteExam(ctx context.Context, id int64) (bool, error)
}

// Reaper deletes exams whose cutoff instant has passed. One Reaper is
// started at process startup and stopped on shutdown. Sweep can also be
// called directly; that is how tests drive it without waiting on the clock.
type Reaper struct {
	store    ExamStore
	logger   zerolog.Logger
	interval time.Duration
	nowFunc  func() time.Time

	runMu sync.Mutex // serializes sweeps, two can never run at once

	mu      sync.Mutex
	running bool
	quit    chan struct{}
	done    chan struct{}
}

// New creates a Reaper over the given store.
func New(store ExamStore, logger zerolog.Logger) *Reaper {
	return &Reaper{
		store:    store,
		logger:   logger,
		interval: SweepInterval,
		nowFunc:  time.Now,
	}
}

// Start launches the periodic sweep goroutine. Calling Start on a running
// Reaper is a no-op.
func (r *Reaper) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true
	r.quit = make(chan struct{})
	r.done = make(chan struct{})

	go r.loop(r.quit, r.done)
	r.logger.Info().Dur("interval", r.interval).Msg("Exam reaper started")
}

// Stop halts the timer and waits for an in-flight sweep to finish. The
// timer is simply not rearmed; a running store call is not cancelled.
func (r *Reaper) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	quit, done := r.quit, r.done
	r.mu.Unlock()

	close(quit)
	<-done
	r.logger.Info().Msg("Exam reaper stopped")
}

func (r *Reaper) loop(quit <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			r.Sweep(context.Background())
		}
	}
}

// Sweep runs one purge pass: list every exam, judge each against a single
// reference instant, delete the expired ones. A failure listing aborts the
// pass until the next tick; a failure parsing or deleting one exam is
// logged and does not stop the rest. Effects are observable only through
// the store.
func (r *Reaper) Sweep(ctx context.Context) {
	r.runMu.Lock()
	defer r.runMu.Unlock()

	now := r.nowFunc()

	exams, err := r.store.ListExams(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("Exam sweep aborted: listing exams failed")
		return
	}

	var deleted, skipped, failed int
	for _, exam := range exams {
		expired, err := dates.Expired(exam.Date, now)
		if err != nil {
			skipped++
			r.logger.Warn().Err(err).Int64("examId", exam.ID).Str("date", exam.Date).
				Msg("Skipping exam with unreadable date")
			continue
		}
		if !expired {
			continue
		}

		removed, err := r.store.DeleteExam(ctx, exam.ID)
		if err != nil {
			failed++
			r.logger.Error().Err(err).Int64("examId", exam.ID).
				Msg("Failed to delete expired exam, leaving it for the next sweep")
			continue
		}
		if !removed {
			// Already gone, nothing to do.
			continue
		}
		deleted++
		r.logger.Info().Int64("examId", exam.ID).Str("subject", string(exam.Subject)).
			Str("date", exam.Date).Msg("Deleted expired exam")
	}

	r.logger.Info().
		Int("examined", len(exams)).
		Int("deleted", deleted).
		Int("skipped", skipped).
		Int("failed", failed).
		Time("now", now).
		Msg("Exam sweep complete")
}
