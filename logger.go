package main

import (
	"go.uber.org/zap"
)

// newLogger builds the process logger: human-readable console output in
// development, JSON in anything else.
func newLogger(environment string) *zap.SugaredLogger {
	var logger *zap.Logger
	var err error
	if environment == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		// zap's presets only fail on invalid config, which these are not.
		panic(err)
	}
	return logger.Sugar()
}
