package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the small leveled surface the rest of the app logs through.
type Logger interface {
	Debug(msg string, msgArgs ...any)
	Info(msg string, msgArgs ...any)
	Warn(msg string, msgArgs ...any)
	Error(msg string, msgArgs ...any)
}

// ZLBasedLogger - 'Zerolog' based implementation of Logger interface.
type ZLBasedLogger struct {
	logger *zerolog.Logger
}

func NewLogger(lvl string) *ZLBasedLogger {
	return NewLoggerTo(os.Stdout, lvl)
}

// NewLoggerTo writes JSON log lines to w at the given level. Unknown or
// empty levels fall back to info.
func NewLoggerTo(w io.Writer, lvl string) *ZLBasedLogger {
	level, err := zerolog.ParseLevel(strings.ToLower(lvl))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		CallerWithSkipFrameCount(3).
		Logger()

	return &ZLBasedLogger{
		logger: &logger,
	}
}

func (l *ZLBasedLogger) Debug(msg string, msgArgs ...any) {
	l.logger.Debug().Msgf(msg, msgArgs...)
}

func (l *ZLBasedLogger) Info(msg string, msgArgs ...any) {
	l.logger.Info().Msgf(msg, msgArgs...)
}

func (l *ZLBasedLogger) Warn(msg string, msgArgs ...any) {
	l.logger.Warn().Msgf(msg, msgArgs...)
}

func (l *ZLBasedLogger) Error(msg string, msgArgs ...any) {
	l.logger.Error().Msgf(msg, msgArgs...)
}
