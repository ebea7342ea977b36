package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"poi-finder/internal/config"
)

// Logger - обёртка над logrus, общая для всех сервисов
type Logger struct {
	*logrus.Logger
}

// New создаёт логгер с уровнем и форматом из конфигурации
func New(cfg *config.LoggerConfig) *Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	return &Logger{Logger: log}
}

// NewTest создаёт логгер, который ничего не пишет
func NewTest() *Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Logger{Logger: log}
}
