package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

const timestampFormat = "2006-01-02T15:04:05.000Z07:00"

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// sink is shared by a logger and every child derived from it.
type sink struct {
	mu  sync.Mutex
	out io.Writer
}

func (s *sink) write(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.out, line+"\n")
}

type Logger struct {
	level  LogLevel
	format string
	mode   string
	fields map[string]interface{}
	out    *sink
}

type Config struct {
	Level  LogLevel
	Output io.Writer
	Format string // "json" or "text" (default)
	Mode   string // "server", "worker", "cli" or empty
}

func New() *Logger {
	return NewWithConfig(Config{
		Level:  INFO,
		Output: os.Stdout,
		Format: "text",
	})
}

func NewWithConfig(config Config) *Logger {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	format := strings.ToLower(config.Format)
	if format != "json" {
		format = "text"
	}

	return &Logger{
		level:  config.Level,
		format: format,
		mode:   config.Mode,
		fields: make(map[string]interface{}),
		out:    &sink{out: config.Output},
	}
}

func (l *Logger) clone() *Logger {
	c := &Logger{
		level:  l.level,
		format: l.format,
		mode:   l.mode,
		fields: make(map[string]interface{}, len(l.fields)),
		out:    l.out,
	}
	for k, v := range l.fields {
		c.fields[k] = v
	}
	return c
}

// WithFields returns a child logger carrying the given key/value pairs.
// A trailing key without a value is ignored.
func (l *Logger) WithFields(keyVals ...interface{}) *Logger {
	c := l.clone()
	for i := 0; i+1 < len(keyVals); i += 2 {
		c.fields[fmt.Sprintf("%v", keyVals[i])] = keyVals[i+1]
	}
	return c
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(key, value)
}

func (l *Logger) WithMode(mode string) *Logger {
	c := l.clone()
	c.mode = mode
	return c
}

func (l *Logger) Mode() string {
	return l.mode
}

func (l *Logger) Debug(msg string, kv ...interface{}) {
	l.log(DEBUG, msg, kv...)
}

func (l *Logger) Info(msg string, kv ...interface{}) {
	l.log(INFO, msg, kv...)
}

func (l *Logger) Warn(msg string, kv ...interface{}) {
	l.log(WARN, msg, kv...)
}

func (l *Logger) Error(msg string, kv ...interface{}) {
	l.log(ERROR, msg, kv...)
}

func (l *Logger) Fatal(msg string, kv ...interface{}) {
	l.log(ERROR, msg, kv...)
	os.Exit(1)
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.log(ERROR, fmt.Sprintf(format, args...))
	os.Exit(1)
}

func (l *Logger) log(level LogLevel, msg string, kv ...interface{}) {
	if level < l.level {
		return
	}

	fields := make(map[string]interface{}, len(l.fields)+len(kv)/2)
	for k, v := range l.fields {
		fields[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		fields[fmt.Sprintf("%v", kv[i])] = kv[i+1]
	}

	ts := time.Now().Format(timestampFormat)
	if l.format == "json" {
		l.out.write(l.formatJSON(ts, level, msg, fields))
		return
	}
	l.out.write(l.formatText(ts, level, msg, fields))
}

func (l *Logger) formatText(ts string, level LogLevel, msg string, fields map[string]interface{}) string {
	parts := []string{"[" + ts + "]", "[" + level.String() + "]"}
	if l.mode != "" {
		parts = append(parts, "["+l.mode+"]")
	}
	parts = append(parts, msg)

	if len(fields) > 0 {
		keys := sortedKeys(fields)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, k+"="+formatValue(fields[k]))
		}
		parts = append(parts, "| "+strings.Join(pairs, " "))
	}
	return strings.Join(parts, " ")
}

func (l *Logger) formatJSON(ts string, level LogLevel, msg string, fields map[string]interface{}) string {
	entry := make(map[string]interface{}, len(fields)+4)
	for k, v := range fields {
		switch tv := v.(type) {
		case error:
			entry[k] = tv.Error()
		case time.Duration:
			entry[k] = tv.String()
		default:
			entry[k] = v
		}
	}
	entry["ts"] = ts
	entry["level"] = level.String()
	entry["msg"] = msg
	if l.mode != "" {
		entry["mode"] = l.mode
	}

	b, err := json.Marshal(entry)
	if err != nil {
		return l.formatText(ts, level, msg, fields)
	}
	return string(b)
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		if strings.ContainsAny(v, " \t\n") {
			return fmt.Sprintf("%q", v)
		}
		return v
	case error:
		return fmt.Sprintf("%q", v.Error())
	case time.Duration:
		return v.String()
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
}

func (l *Logger) GetLevel() LogLevel {
	return l.level
}

func (l *Logger) IsDebugEnabled() bool {
	return l.level <= DEBUG
}

// global logger instance for the convenience
var globalLogger = New()

// SetGlobal replaces the process-wide logger, typically once at startup.
func SetGlobal(l *Logger) {
	if l != nil {
		globalLogger = l
	}
}

func Global() *Logger {
	return globalLogger
}

func Debug(msg string, keyvals ...interface{}) {
	globalLogger.Debug(msg, keyvals...)
}

func Info(msg string, keyvals ...interface{}) {
	globalLogger.Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	globalLogger.Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	globalLogger.Error(msg, keyvals...)
}

func Fatal(msg string, keyvals ...interface{}) {
	globalLogger.Fatal(msg, keyvals...)
}

func Fatalf(format string, args ...interface{}) {
	globalLogger.Fatalf(format, args...)
}

func WithFields(keyvals ...interface{}) *Logger {
	return globalLogger.WithFields(keyvals...)
}

func WithField(key string, value interface{}) *Logger {
	return globalLogger.WithField(key, value)
}

func WithMode(mode string) *Logger {
	return globalLogger.WithMode(mode)
}

func SetLevel(level LogLevel) {
	globalLogger.SetLevel(level)
}

func ParseLevel(level string) (LogLevel, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("unknown log level: %s", level)
	}
}
