package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"ordenes_taller/internal/domain/entities"
	"ordenes_taller/internal/infrastructure/metrics"
	"ordenes_taller/internal/usecase"

	"github.com/robfig/cron/v3"
)

var specParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// AlertSweepScheduler fires the alert sweep on a cron schedule and serialises every run,
// scheduled or manual, so two sweeps never overlap.
type AlertSweepScheduler struct {
	sweep   usecase.IAlertSweepUseCase
	cron    *cron.Cron
	spec    string
	timeout time.Duration

	running  sync.Mutex
	base     context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

var _ usecase.IAlertSweepUseCase = (*AlertSweepScheduler)(nil)

// NewAlertSweepScheduler validates spec (standard 5-field cron or a descriptor such as
// "@hourly" / "@every 30m"); nothing runs until Start.
func NewAlertSweepScheduler(sweep usecase.IAlertSweepUseCase, spec string, timeout time.Duration) (*AlertSweepScheduler, error) {
	if _, err := specParser.Parse(spec); err != nil {
		return nil, fmt.Errorf("invalid alert sweep schedule %q: %w", spec, err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid alert sweep timeout %s", timeout)
	}

	logger := cron.PrintfLogger(log.Default())
	c := cron.New(
		cron.WithParser(specParser),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		cron.WithLogger(logger),
	)

	base, cancel := context.WithCancel(context.Background())
	return &AlertSweepScheduler{
		sweep:   sweep,
		cron:    c,
		spec:    spec,
		timeout: timeout,
		base:    base,
		cancel:  cancel,
	}, nil
}

func (s *AlertSweepScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.tick); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("[sweep][scheduler] started schedule=%q timeout=%s", s.spec, s.timeout)
	return nil
}

// Stop cancels an in-flight sweep and waits for it to return, or for ctx to expire.
func (s *AlertSweepScheduler) Stop(ctx context.Context) {
	s.stopOnce.Do(func() {
		s.cancel()
		done := s.cron.Stop()
		select {
		case <-done.Done():
			log.Printf("[sweep][scheduler] stopped")
		case <-ctx.Done():
			log.Printf("[sweep][scheduler] stop timed out err=%v", ctx.Err())
		}
	})
}

// RunSweep runs one sweep unless another is already running, in which case it returns
// usecase.ErrSweepInProgress without waiting.
func (s *AlertSweepScheduler) RunSweep(ctx context.Context) (entities.SweepResult, error) {
	if !s.running.TryLock() {
		metrics.SweepsTotal.WithLabelValues(metrics.SweepResultSkipped).Inc()
		return entities.SweepResult{}, usecase.ErrSweepInProgress
	}
	defer s.running.Unlock()

	start := time.Now()
	res, err := s.sweep.RunSweep(ctx)
	elapsed := time.Since(start)
	metrics.ObserveSweep(res, err, elapsed)

	log.Printf("[sweep][scheduler] done result=%s rojas=%d amarillas=%d creadas=%d errores=%d took=%s",
		metrics.SweepOutcome(err), res.AlertasRojas, res.AlertasAmarillas, res.NotificacionesCreadas, res.Errores, elapsed)
	return res, err
}

func (s *AlertSweepScheduler) tick() {
	ctx, cancel := context.WithTimeout(s.base, s.timeout)
	defer cancel()

	if _, err := s.RunSweep(ctx); err != nil {
		if errors.Is(err, usecase.ErrSweepInProgress) {
			log.Printf("[sweep][scheduler] skipped tick, previous sweep still running")
			return
		}
		log.Printf("[sweep][scheduler] sweep failed err=%v", err)
	}
}
