// Package logging is the process-wide leveled logger. Printf-style helpers cover quick
// messages; Info/Debug/... return events that take structured Fields.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

// LogLevel represents severity.
type LogLevel int32

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]LogLevel{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

// Config configures the logger.
type Config struct {
	// Level is the minimum level (debug, info, warn, error).
	Level string
	// Format is json or console.
	Format string
	// Output defaults to stderr.
	Output io.Writer
}

// DefaultConfig logs info and above to stderr in console format.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "console", Output: os.Stderr}
}

var (
	mu           sync.RWMutex
	logger       *bolt.Logger
	currentLevel = int32(LevelInfo)
)

func toBolt(l LogLevel) bolt.Level {
	switch l {
	case LevelDebug:
		return bolt.DEBUG
	case LevelWarn:
		return bolt.WARN
	case LevelError:
		return bolt.ERROR
	default:
		return bolt.INFO
	}
}

func parseLevel(s string) (LogLevel, bool) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	return l, ok
}

// Init replaces the process logger. Unknown levels fall back to info.
func Init(cfg Config) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	var handler bolt.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = bolt.NewJSONHandler(out)
	} else {
		handler = bolt.NewConsoleHandler(out)
	}
	lvl, ok := parseLevel(cfg.Level)
	if !ok {
		lvl = LevelInfo
	}
	l := bolt.New(handler).SetLevel(toBolt(lvl))

	mu.Lock()
	logger = l
	mu.Unlock()
	atomic.StoreInt32(&currentLevel, int32(lvl))
}

// Get returns the process logger, initializing it with DefaultConfig on first use.
func Get() *bolt.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		cfg := DefaultConfig()
		lvl := LogLevel(atomic.LoadInt32(&currentLevel))
		logger = bolt.New(bolt.NewConsoleHandler(cfg.Output)).SetLevel(toBolt(lvl))
	}
	return logger
}

// SetLogLevel parses and sets the global level. Unknown names are ignored.
func SetLogLevel(s string) {
	l, ok := parseLevel(s)
	if !ok {
		return
	}
	atomic.StoreInt32(&currentLevel, int32(l))
	Get().SetLevel(toBolt(l))
}

// GetLogLevel returns the current global level.
func GetLogLevel() LogLevel { return LogLevel(atomic.LoadInt32(&currentLevel)) }

// Enabled reports whether messages at l are written.
func Enabled(l LogLevel) bool { return GetLogLevel() <= l }

func logf(l LogLevel, format string, args ...interface{}) {
	if !Enabled(l) {
		return
	}
	// Only format when there are args so literal % in preformatted text survives.
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	event(l).Msg(msg)
}

func event(l LogLevel) *bolt.Event {
	lg := Get()
	switch l {
	case LevelDebug:
		return lg.Debug()
	case LevelWarn:
		return lg.Warn()
	case LevelError:
		return lg.Error()
	default:
		return lg.Info()
	}
}

func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// TimeTrack logs how long a phase took, at debug level.
//
//	defer logging.TimeTrack(time.Now(), "render ratings")
func TimeTrack(start time.Time, label string) {
	if !Enabled(LevelDebug) {
		return
	}
	Debug().Add(Duration(time.Since(start))).Msg(label + " done")
}

// LogEvent carries a pending event so Fields can be chained onto it.
type LogEvent struct {
	event *bolt.Event
	skip  bool
}

// Add applies a field to the event.
func (l *LogEvent) Add(f Field) *LogEvent {
	if l.skip {
		return l
	}
	l.event = f(l.event)
	return l
}

// Msg sends the event with a message.
func (l *LogEvent) Msg(msg string) {
	if l.skip {
		return
	}
	l.event.Msg(msg)
}

func newEvent(l LogLevel) *LogEvent {
	if !Enabled(l) {
		return &LogEvent{skip: true}
	}
	return &LogEvent{event: event(l)}
}

func Debug() *LogEvent { return newEvent(LevelDebug) }
func Info() *LogEvent  { return newEvent(LevelInfo) }
func Warn() *LogEvent  { return newEvent(LevelWarn) }
func Error() *LogEvent { return newEvent(LevelError) }
