package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"lpixmove/internal/domain"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger interface {
	Log() *zerolog.Event
	Fatal() *zerolog.Event
	Err(err error) *zerolog.Event
	Error() *zerolog.Event
	Warn() *zerolog.Event
	Info() *zerolog.Event
	Trace() *zerolog.Event
	Debug() *zerolog.Event
	With() zerolog.Context
	WithStr(key, value string) Logger
	SetLogLevel(level string)
	Level() zerolog.Level
}

// DefaultLogger is safe for concurrent use, the level may change while other goroutines log.
type DefaultLogger struct {
	mu      sync.RWMutex
	log     zerolog.Logger
	level   zerolog.Level
	writers []io.Writer
}

// New builds a logger writing to stderr and, if cfg.LogPath is set, to a rotating log file.
func New(cfg *domain.Config) Logger {
	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime},
	}

	if cfg.LogPath != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.LogPath,
			MaxSize:    cfg.LogMaxSize,
			MaxBackups: cfg.LogMaxBackups,
		})
	}

	return newWithWriters(cfg.LogLevel, writers...)
}

// NewWithWriter is New without the stderr console, used to capture output.
func NewWithWriter(level string, w io.Writer) Logger {
	return newWithWriters(level, w)
}

// Nop discards everything.
func Nop() Logger {
	return &DefaultLogger{
		log:   zerolog.Nop(),
		level: zerolog.Disabled,
	}
}

func newWithWriters(level string, writers ...io.Writer) *DefaultLogger {
	zerolog.TimeFieldFormat = time.RFC3339

	l := &DefaultLogger{
		writers: writers,
		level:   parseLevel(level),
	}

	l.log = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Logger().
		Level(l.level)

	return l
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "ERROR":
		return zerolog.ErrorLevel
	case "WARN":
		return zerolog.WarnLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "TRACE":
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *DefaultLogger) SetLogLevel(level string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = parseLevel(level)
	l.log = l.log.Level(l.level)
}

func (l *DefaultLogger) Level() zerolog.Level {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.level
}

func (l *DefaultLogger) current() *zerolog.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	lg := l.log
	return &lg
}

func (l *DefaultLogger) Log() *zerolog.Event {
	return l.current().Log()
}

func (l *DefaultLogger) Fatal() *zerolog.Event {
	return l.current().Fatal()
}

func (l *DefaultLogger) Err(err error) *zerolog.Event {
	return l.current().Err(err)
}

func (l *DefaultLogger) Error() *zerolog.Event {
	return l.current().Error()
}

func (l *DefaultLogger) Warn() *zerolog.Event {
	return l.current().Warn()
}

func (l *DefaultLogger) Info() *zerolog.Event {
	return l.current().Info()
}

func (l *DefaultLogger) Trace() *zerolog.Event {
	return l.current().Trace()
}

func (l *DefaultLogger) Debug() *zerolog.Event {
	return l.current().Debug()
}

func (l *DefaultLogger) With() zerolog.Context {
	return l.current().With()
}

// WithStr returns a child logger that adds key to every event.
func (l *DefaultLogger) WithStr(key, value string) Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return &DefaultLogger{
		log:     l.log.With().Str(key, value).Logger(),
		level:   l.level,
		writers: l.writers,
	}
}
