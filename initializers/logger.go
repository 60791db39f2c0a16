package initializers

import (
	"broilink-backend/fiberlog"

	log "github.com/sirupsen/logrus"
)

func jsonFormatter() *log.JSONFormatter {
	return &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
}

// InitLogger - level tidak dikenal jatuh ke info. Log permintaan api memakai logger sendiri.
func InitLogger(level string) *fiberlog.Config {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	log.SetFormatter(jsonFormatter())
	log.SetLevel(parsed)
	if err != nil {
		log.WithField("level", level).Warn("level log tidak dikenal, memakai info")
	}

	requestLogger := log.New()
	requestLogger.SetFormatter(jsonFormatter())
	requestLogger.SetLevel(log.InfoLevel)
	return &fiberlog.Config{
		Logger: requestLogger,
		Tags: []string{
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.TagIP,
			fiberlog.TagUserID,
			fiberlog.TagBody,
			fiberlog.RequestID,
		},
		SkipPaths: []string{"/metrics", "/health"},
	}
}
