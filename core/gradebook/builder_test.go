package gradebook_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/scoretable/core"
	"github.com/trezcool/scoretable/core/gradebook"
	"github.com/trezcool/scoretable/core/input"
	"github.com/trezcool/scoretable/tests"
)

func newBuilder(logger core.Logger, lines ...string) (*gradebook.Builder, *testutil.ScriptedReader, *bytes.Buffer) {
	rdr := testutil.NewScriptedReader(lines...)
	var diag bytes.Buffer
	acq := input.NewAcquirer(rdr, &diag, logger)
	return gradebook.NewBuilder(acq, gradebook.BuilderConfig{}, logger), rdr, &diag
}

func TestBuilder_Build_scenarioA(t *testing.T) {
	b, rdr, diag := newBuilder(testutil.NopLogger{}, "2", "Korean,Math", "Alice", "80", "90", "Bob", "70", "100")

	ds, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, testutil.ScenarioA(t), ds)
	assert.Empty(t, diag.String())
	assert.Equal(t, []string{
		"Number of students (default 5): ",
		"Subjects, comma separated (default: Korean,Math,Science): ",
		"Name of student #1: ",
		"Alice's Korean score (0-100): ",
		"Alice's Math score (0-100): ",
		"Name of student #2: ",
		"Bob's Korean score (0-100): ",
		"Bob's Math score (0-100): ",
	}, rdr.Prompts)
}

func TestBuilder_Build_defaults(t *testing.T) {
	// empty count and subjects: 5 students, default subjects
	lines := []string{"", ""}
	names := []string{"A", "B", "C", "D", "E"}
	for _, name := range names {
		lines = append(lines, name, "10", "20", "30")
	}
	b, rdr, _ := newBuilder(testutil.NopLogger{}, lines...)

	ds, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, gradebook.DefaultSubjects, ds.Subjects)
	require.Len(t, ds.Students, 5)
	for i, rec := range ds.Students {
		assert.Equal(t, names[i], rec.Name)
		assert.Equal(t, map[string]float64{"Korean": 10, "Math": 20, "Science": 30}, rec.Scores)
	}
	// N*(|subjects|+1)+2 acquisitions
	assert.Len(t, rdr.Prompts, 5*(3+1)+2)
}

func TestBuilder_Build_customDefaults(t *testing.T) {
	rdr := testutil.NewScriptedReader("", "", "Solo", "55")
	acq := input.NewAcquirer(rdr, &bytes.Buffer{}, nil)
	b := gradebook.NewBuilder(acq, gradebook.BuilderConfig{DefaultCount: 1, DefaultSubjects: []string{"Art"}}, nil)

	ds, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"Art"}, ds.Subjects)
	assert.Equal(t, []gradebook.StudentRecord{{Name: "Solo", Scores: map[string]float64{"Art": 55}}}, ds.Students)
	assert.Equal(t, "Number of students (default 1): ", rdr.Prompts[0])
	assert.Equal(t, "Subjects, comma separated (default: Art): ", rdr.Prompts[1])
}

func TestBuilder_Build_rejections(t *testing.T) {
	b, _, diag := newBuilder(testutil.NopLogger{},
		"0", "3.5", "1", // count
		"Math,Math", "Math", // subjects
		"  ", "Zoe", // name
		"abc", "150", "85", // score
	)

	ds, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"Math"}, ds.Subjects)
	assert.Equal(t, 85.0, ds.Students[0].Score("Math"))
	assert.Equal(t, "student count must be a positive integer\n"+
		"student count must be an integer\n"+
		"subjects must not contain duplicates\n"+
		"name cannot be empty\n"+
		"score must be a number, e.g. 85 or 92.5\n"+
		"score must be between 0 and 100\n", diag.String())
}

func TestBuilder_Build_exhausted(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{name: "no input"},
		{name: "after count", lines: []string{"2"}},
		{name: "after subjects", lines: []string{"2", "Korean"}},
		{name: "mid scores", lines: []string{"2", "Korean,Math", "Alice", "80"}},
		{name: "second student", lines: []string{"2", "Korean,Math", "Alice", "80", "90", "Bob", "70"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _, _ := newBuilder(testutil.NopLogger{}, tt.lines...)
			ds, err := b.Build()
			require.Error(t, err)
			assert.True(t, core.IsInputExhausted(err))
			assert.Equal(t, gradebook.Dataset{}, ds)
		})
	}
}

func TestBuilder_Build_similarSubjects(t *testing.T) {
	logger := testutil.NewMemLogger()
	b, _, _ := newBuilder(logger, "1", "Math,Maths,History,history", "X", "1", "2", "3", "4")

	_, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"subjects look alike", "subjects differ only by case"}, logger.Messages["warn"])
}
