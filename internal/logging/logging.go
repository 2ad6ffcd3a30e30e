// Package logging builds the shared pipeline logger.
package logging

import "go.uber.org/zap"

// New returns a sugared zap logger with console output. The batch jobs run
// under cron/CI where the log is read by humans, so no JSON encoding.
func New() *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return log.Sugar()
}
