package fiberlog

import "github.com/sirupsen/logrus"

// Config настраивает логгер и набор тегов записи
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}
