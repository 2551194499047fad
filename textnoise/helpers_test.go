package textnoise

import (
	"sync"

	"github.com/wudi/noisekit/observability"
)

// scriptedRand replays vals in order and returns 0 once they run out.
type scriptedRand struct {
	vals  []int
	calls int
}

func script(vals ...int) *scriptedRand { return &scriptedRand{vals: vals} }

func (s *scriptedRand) IntN(n int) int {
	s.calls++
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, msg string, fields []observability.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e := logEntry{level: level, msg: msg, fields: make(map[string]interface{}, len(fields))}
	for _, f := range fields {
		e.fields[f.Key()] = f.Value()
	}
	l.entries = append(l.entries, e)
}

func (l *recordingLogger) Debug(msg string, fields ...observability.Field) {
	l.record("debug", msg, fields)
}
func (l *recordingLogger) Info(msg string, fields ...observability.Field) {
	l.record("info", msg, fields)
}
func (l *recordingLogger) Warn(msg string, fields ...observability.Field) {
	l.record("warn", msg, fields)
}
func (l *recordingLogger) Error(msg string, fields ...observability.Field) {
	l.record("error", msg, fields)
}
func (l *recordingLogger) With(...observability.Field) observability.Logger { return l }

func (l *recordingLogger) byLevel(level string) []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []logEntry
	for _, e := range l.entries {
		if e.level == level {
			out = append(out, e)
		}
	}
	return out
}
