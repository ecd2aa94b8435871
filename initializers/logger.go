package initializers

import (
	log "github.com/sirupsen/logrus"
	"workforce-backend/fiberlog"
)

func jsonFormatter() *log.JSONFormatter {
	return &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
}

// InitLogger настраивает глобальный логгер и возвращает
// конфигурацию логирования http запросов
func InitLogger() *fiberlog.Config {
	log.SetFormatter(jsonFormatter())
	log.SetLevel(log.InfoLevel)

	httpLogger := log.New()
	httpLogger.SetFormatter(jsonFormatter())
	httpLogger.SetLevel(log.DebugLevel)
	return &fiberlog.Config{
		Logger: httpLogger,
		Tags: []string{
			fiberlog.TagBody,
			fiberlog.TagResBody,
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.RequestID,
		},
	}
}
