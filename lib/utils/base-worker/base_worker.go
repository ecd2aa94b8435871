package baseworker

import (
	"context"
	"runtime/debug"
	"time"

	log "github.com/sirupsen/logrus"
)

// Job выполняет одну итерацию фоновой задачи
type Job func(ctx context.Context) error

type Worker struct {
	name       string
	startDelay time.Duration
	interval   time.Duration
}

func New(name string, startDelay, interval time.Duration) *Worker {
	return &Worker{
		name:       name,
		startDelay: startDelay,
		interval:   interval,
	}
}

func (w Worker) GetLogger() *log.Entry {
	return log.WithField("worker_name", w.name)
}

// Run выполняет job по расписанию до завершения контекста.
// Паника внутри итерации не останавливает воркер
func (w Worker) Run(ctx context.Context, job Job) {
	logger := w.GetLogger()
	wait := w.startDelay
	for {
		select {
		case <-ctx.Done():
			logger.Info("Задача остановлена")
			return
		case <-time.After(wait):
			w.runOnce(ctx, job)
		}
		wait = w.interval
	}
}

func (w Worker) runOnce(ctx context.Context, job Job) {
	logger := w.GetLogger()
	defer func() {
		if r := recover(); r != nil {
			logger.
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
		}
	}()
	logger.Info("Задача запущена")
	if err := job(ctx); err != nil {
		logger.WithError(err).Error("Задача завершилась с ошибкой")
		return
	}
	logger.Info("Задача выполнена")
}
