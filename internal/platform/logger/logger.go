package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

// Fields son los pares clave/valor de cada línea.
type Fields map[string]any

type Logger interface {
	With(fields Fields) Logger

	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, fields Fields)
}

type Options struct {
	Level  Level
	Format Format
	App    string

	// Out es stdout si viene nil.
	Out io.Writer
}

// sink es lo que comparten un logger y sus derivados de With.
type sink struct {
	mu     sync.Mutex
	std    *log.Logger
	level  Level
	format Format
	now    func() time.Time
}

// StdLogger escribe una línea por entrada, en texto clave=valor o JSON.
type StdLogger struct {
	sink *sink
	base Fields
}

func New(opts Options) Logger {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	base := Fields{}
	if app := strings.TrimSpace(opts.App); app != "" {
		base["app"] = app
	}

	return &StdLogger{
		sink: &sink{
			std:    log.New(out, "", 0),
			level:  opts.Level,
			format: format,
			now:    time.Now,
		},
		base: base,
	}
}

// Nop descarta todo; para tests y defaults.
func Nop() Logger {
	return New(Options{Level: Error + 1, Out: io.Discard})
}

func (l *StdLogger) With(fields Fields) Logger {
	if len(fields) == 0 {
		return l
	}
	return &StdLogger{sink: l.sink, base: merge(l.base, fields)}
}

func (l *StdLogger) Debug(msg string, fields Fields) { l.log(Debug, msg, fields) }
func (l *StdLogger) Info(msg string, fields Fields)  { l.log(Info, msg, fields) }
func (l *StdLogger) Warn(msg string, fields Fields)  { l.log(Warn, msg, fields) }
func (l *StdLogger) Error(msg string, fields Fields) { l.log(Error, msg, fields) }

func (l *StdLogger) log(lvl Level, msg string, fields Fields) {
	if lvl < l.sink.level {
		return
	}

	entry := merge(l.base, fields)
	entry["ts"] = l.sink.now().Format(time.RFC3339Nano)
	entry["level"] = lvl.String()
	entry["msg"] = msg
	if err, ok := entry["err"].(error); ok {
		entry["err"] = err.Error()
	}

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	switch l.sink.format {
	case FormatJSON:
		b, _ := json.Marshal(entry)
		l.sink.std.Println(string(b))
	default:
		l.sink.std.Println(formatText(entry))
	}
}

func merge(a, b Fields) Fields {
	out := make(Fields, len(a)+len(b)+3)
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if strings.TrimSpace(k) == "" {
			continue
		}
		out[k] = v
	}
	return out
}

func formatText(m Fields) string {
	// keys ordenadas para salida estable
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, m[k]))
	}
	return strings.Join(parts, " ")
}
