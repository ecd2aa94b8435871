package alertworker

import (
	"context"
	"time"
	"workforce-backend/config"
	"workforce-backend/lib/compliance"
	baseworker "workforce-backend/lib/utils/base-worker"
)

// StartWorker запускает периодическую генерацию уведомлений
// по истекающим документам и правовым статусам
func StartWorker(ctx context.Context) {
	interval := time.Duration(config.Conf.Alerts.ScanIntervalMin) * time.Minute
	worker := baseworker.New("alert_generator", time.Minute, interval)
	go worker.Run(ctx, func(ctx context.Context) error {
		created, updated, err := compliance.Instance.GenerateAlerts(ctx)
		if err != nil {
			return err
		}
		worker.GetLogger().
			WithField("created", created).
			WithField("updated", updated).
			Info("уведомления актуализированы")
		return nil
	})
}
