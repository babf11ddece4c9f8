package util

import (
	"strings"

	"github.com/rs/zerolog"
)

// RestyLogger routes resty's internal logging through zerolog.
type RestyLogger struct {
	logger zerolog.Logger
}

func NewRestyLogger(logger zerolog.Logger) *RestyLogger {
	return &RestyLogger{logger: logger.With().Str("component", "resty").Logger()}
}

func (l *RestyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error().Msgf(strings.TrimSpace(format), v...)
}

func (l *RestyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn().Msgf(strings.TrimSpace(format), v...)
}

func (l *RestyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug().Msgf(strings.TrimSpace(format), v...)
}
