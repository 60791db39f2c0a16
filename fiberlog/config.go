package fiberlog

import "github.com/sirupsen/logrus"

// Config - konfigurasi middleware
type Config struct {
	Logger *logrus.Logger
	Tags   []string
	// SkipPaths - path yang tidak dicatat (mis. /metrics)
	SkipPaths []string
}

// ConfigDefault - konfigurasi bawaan
var ConfigDefault Config = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}
