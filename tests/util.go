package testutil

import (
	"io"
	"testing"

	"github.com/trezcool/scoretable/core/gradebook"
)

// ScriptedReader replays canned lines and records the prompts it was asked with.
// It returns io.EOF once all lines are consumed.
type ScriptedReader struct {
	Lines   []string
	Prompts []string
}

func NewScriptedReader(lines ...string) *ScriptedReader {
	return &ScriptedReader{Lines: lines}
}

func (r *ScriptedReader) ReadLine(prompt string) (string, error) {
	r.Prompts = append(r.Prompts, prompt)
	if len(r.Lines) == 0 {
		return "", io.EOF
	}
	line := r.Lines[0]
	r.Lines = r.Lines[1:]
	return line, nil
}

// Remaining returns the number of lines not read yet.
func (r *ScriptedReader) Remaining() int { return len(r.Lines) }

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}
func (NopLogger) Fatal(string, ...interface{}) {}

// MemLogger keeps messages by level.
type MemLogger struct {
	Messages map[string][]string
}

func NewMemLogger() *MemLogger {
	return &MemLogger{Messages: make(map[string][]string)}
}

func (l *MemLogger) add(level, msg string) { l.Messages[level] = append(l.Messages[level], msg) }

func (l *MemLogger) Debug(msg string, _ ...interface{}) { l.add("debug", msg) }
func (l *MemLogger) Info(msg string, _ ...interface{})  { l.add("info", msg) }
func (l *MemLogger) Warn(msg string, _ ...interface{})  { l.add("warn", msg) }
func (l *MemLogger) Error(msg string, _ ...interface{}) { l.add("error", msg) }
func (l *MemLogger) Fatal(msg string, _ ...interface{}) { l.add("fatal", msg) }

// NewDataset builds a valid gradebook.Dataset; scores[i][j] is student i's score for subjects[j].
func NewDataset(t *testing.T, subjects []string, names []string, scores [][]float64) gradebook.Dataset {
	t.Helper()

	ds := gradebook.Dataset{Subjects: subjects}
	for i, name := range names {
		rec := gradebook.StudentRecord{Name: name, Scores: make(map[string]float64, len(subjects))}
		for j, subj := range subjects {
			rec.Scores[subj] = scores[i][j]
		}
		ds.Students = append(ds.Students, rec)
	}
	if err := ds.Validate(); err != nil {
		t.Fatalf("NewDataset() invalid dataset: %v", err)
	}
	return ds
}

// ScenarioA is the two students, two subjects fixture: Alice 80/90, Bob 70/100.
func ScenarioA(t *testing.T) gradebook.Dataset {
	return NewDataset(t,
		[]string{"Korean", "Math"},
		[]string{"Alice", "Bob"},
		[][]float64{{80, 90}, {70, 100}},
	)
}
