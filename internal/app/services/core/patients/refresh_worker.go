package patients

import (
	"context"

	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const fallbackRefreshCronSpec = "@hourly"

type PatientRefresher interface {
	RefreshPatients(ctx context.Context) ([]models.Patient, error)
}

// RefreshWorker reloads the patient list on a cron schedule so dashboards
// pick up changes made outside this service.
type RefreshWorker struct {
	log       *zap.Logger
	refresher PatientRefresher
	spec      string
	cron      *cron.Cron
	runCtx    context.Context
	cancel    context.CancelFunc
}

func NewRefreshWorker(log *zap.Logger, refresher PatientRefresher, spec string) *RefreshWorker {
	return &RefreshWorker{log: log, refresher: refresher, spec: spec}
}

func (w *RefreshWorker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(w.spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("patients.RefreshWorker invalid cron spec, falling back",
			zap.String("cron_spec", w.spec),
			zap.String("fallback", fallbackRefreshCronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackRefreshCronSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c

	w.log.Info("patients.RefreshWorker started",
		zap.Int("entries", len(c.Entries())),
	)
}

// Stop cancels an in-flight refresh and waits for it to return.
func (w *RefreshWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *RefreshWorker) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	patients, err := w.refresher.RefreshPatients(ctx)
	if err != nil {
		w.log.Warn("patients.RefreshWorker scheduled refresh failed", zap.Error(err))
		return
	}
	w.log.Debug("patients.RefreshWorker scheduled refresh succeeded",
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
}
