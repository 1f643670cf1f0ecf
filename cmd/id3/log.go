package main

import (
	"go.uber.org/zap"
)

type logger struct {
	s *zap.SugaredLogger
}

// newLogger returns a logger writing to STDERR if verbose, discarding
// everything otherwise
func newLogger(verbose bool) logger {
	if !verbose {
		return logger{zap.NewNop().Sugar()}
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		return logger{zap.NewNop().Sugar()}
	}
	return logger{l.Sugar()}
}

func (l logger) Logf(format string, a ...interface{}) {
	l.s.Infof(format, a...)
}

func (l logger) Sync() {
	_ = l.s.Sync()
}
