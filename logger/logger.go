package logger

import (
	"log"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const knownFrames = 2

// The Logger interface defines the levels a logging can occur at.
type Logger interface {
	Debug(msg string, ctx *LogContext)
	Error(msg string, ctx *LogContext)
	Fatal(msg string, ctx *LogContext)
	Info(msg string, ctx *LogContext)
	Warn(msg string, ctx *LogContext)

	LogLevel() LogLevel
}

// The SkipLogger interface defines a Logger that scrolls back
// the number of frames provided in order to ascertain the call site.
type SkipLogger interface {
	AddSkip(i int) SkipLogger
	Skip() int
	Logger
}

type LogLevel int

const (
	LogLevelUnk LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

// NewLogLevel parses val, ignoring case, into a LogLevel.
func NewLogLevel(val string) LogLevel {
	switch strings.ToUpper(val) {
	case "DEBUG":
		return LogLevelDebug
	case "INFO":
		return LogLevelInfo
	case "WARN":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	case "FATAL":
		return LogLevelFatal
	default:
		return LogLevelUnk
	}
}

// levels maps each LogLevel to its label and the color it prints in.
var levels = map[LogLevel]struct {
	label    string
	colorize func(string, ...any) string
}{
	LogLevelDebug: {"[DEBUG]", color.WhiteString},
	LogLevelInfo:  {"[INFO]", color.BlueString},
	LogLevelWarn:  {"[WARN]", color.YellowString},
	LogLevelError: {"[ERROR]", color.RedString},
	LogLevelFatal: {"[FATAL]", color.MagentaString},
}

func (ll LogLevel) String() string {
	if lvl, ok := levels[ll]; ok {
		return lvl.label
	}

	return "[UNK]"
}

// StdLogger implements Logger using log.
type StdLogger struct {
	skip int
	env  string
	l    *log.Logger
	ll   LogLevel
}

// New constructs a Logger.
//
// Logs are printed to os.Stdout by default, using the std lib log pkg.
// The default environment is DEVELOPMENT.
// The default log level is INFO.
//
// If SENTRY_DSN is set, the *StdLogger is wrapped in a *SentryLogger.
func New(opts ...LoggerOptFn) Logger {
	l := NewStdLogger(opts...)
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		l.Info("SENTRY_DSN set, configuring SentryLogger", nil)
		return NewSentryLogger(l, dsn)
	}

	return l
}

// NewStdLogger constructs a *StdLogger without consulting the environment for Sentry.
func NewStdLogger(opts ...LoggerOptFn) *StdLogger {
	l := &StdLogger{
		env: getEnvOrString("ENVIRONMENT", "DEVELOPMENT"),
		l:   log.New(os.Stdout, "", log.LstdFlags),
		ll:  LogLevelInfo,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// AddSkip replaces the current number of frames to scroll back
// when logging a message.
//
// Use Skip to get the current skip amount
// when needing to add to it with AddSkip.
func (l *StdLogger) AddSkip(i int) SkipLogger {
	newl := *l
	newl.skip = i
	return &newl
}

// Debug writes a debug log.
func (l *StdLogger) Debug(msg string, ctx *LogContext) { l.log(LogLevelDebug, msg, ctx) }

// Error writes an error log.
func (l *StdLogger) Error(msg string, ctx *LogContext) { l.log(LogLevelError, msg, ctx) }

// Fatal writes a fatal log.
//
// Fatal does not exit; callers decide whether the process survives.
func (l *StdLogger) Fatal(msg string, ctx *LogContext) { l.log(LogLevelFatal, msg, ctx) }

// Info writes an info log.
func (l *StdLogger) Info(msg string, ctx *LogContext) { l.log(LogLevelInfo, msg, ctx) }

// Warn writes a warning log.
func (l *StdLogger) Warn(msg string, ctx *LogContext) { l.log(LogLevelWarn, msg, ctx) }

// LogLevel returns the LogLevel set for the StdLogger.
func (l *StdLogger) LogLevel() LogLevel { return l.ll }

// Skip returns the current amount of frames to scroll back
// when logging a message.
func (l *StdLogger) Skip() int { return l.skip }

// log prints msg when level meets the StdLogger's LogLevel,
// including ctx if available.
func (l *StdLogger) log(level LogLevel, msg string, ctx *LogContext) {
	if level < l.ll {
		return
	}

	site := ctx.caller()
	if site == "" {
		// NOTE: skip the frames of the StdLogger itself
		// and however many the StdLogger is configured with
		_, file, line, _ := runtime.Caller(knownFrames + l.skip)
		site = formatCaller(file, line)
	}

	out := levels[level].colorize("%s %s '%s'", level, site, msg)
	if ctx == nil {
		l.l.Println(out)
		return
	}

	l.l.Println(out, "log_context:", ctx)
}

// formatCaller prints the file and the directory it is in, e.g.:
//
//	/home/dev/my-project/main.go => my-project/main.go:12
func formatCaller(file string, line int) string {
	dir, name := path.Split(file)
	return path.Base(dir) + "/" + name + ":" + strconv.Itoa(line)
}

func getEnvOrString(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}
