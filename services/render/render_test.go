package rendersvc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/scoretable/core/report"
)

var (
	studentTbl = report.Table{
		Title:   report.StudentTitle,
		Columns: []string{"name", "Korean", "Math", "total", "average"},
		Rows: []report.Row{
			{Cells: []string{"Alice", "80.00", "90.00", "170.00", "85.00"}},
			{Cells: []string{"Bob <b>", "70.00", "100.00", "170.00", "85.00"}},
		},
	}
	subjectTbl = report.Table{
		Title:       report.SubjectTitle,
		LabelHeader: "subject",
		Columns:     []string{"mean", "median", "standardDeviation"},
		Rows: []report.Row{
			{Label: "Korean", Cells: []string{"75.00", "75.00", "5.00"}},
			{Label: "Math", Cells: []string{"95.00", "95.00", "5.00"}},
		},
	}
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		want    interface{}
		wantErr bool
	}{
		{name: "", want: &textRenderer{}},
		{name: "text", want: &textRenderer{}},
		{name: "html", want: &htmlRenderer{}},
		{name: "json", want: &jsonRenderer{}},
		{name: "pdf", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.name, &bytes.Buffer{})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, r)
		})
	}
}

func TestTextRenderer(t *testing.T) {
	var out bytes.Buffer
	r := NewTextRenderer(&out)
	require.NoError(t, r.RenderTable(studentTbl))
	require.NoError(t, r.RenderTable(subjectTbl))

	lines := strings.Split(out.String(), "\n")
	assert.Contains(t, lines, report.StudentTitle)
	assert.Contains(t, lines, report.SubjectTitle)

	var header, alice, korean string
	for _, line := range lines {
		switch {
		case strings.Contains(line, "average"):
			header = line
		case strings.Contains(line, "Alice"):
			alice = line
		case strings.Contains(line, "Korean") && !strings.Contains(line, "name"):
			korean = line
		}
	}
	assert.Equal(t, []string{"name", "Korean", "Math", "total", "average"}, cells(header))
	assert.Equal(t, []string{"Alice", "80.00", "90.00", "170.00", "85.00"}, cells(alice))
	assert.Equal(t, []string{"Korean", "75.00", "75.00", "5.00"}, cells(korean))
}

func TestTextRenderer_tabInCell(t *testing.T) {
	tbl := report.Table{
		Title:   report.StudentTitle,
		Columns: []string{"name", "Math", "total"},
		Rows:    []report.Row{{Cells: []string{"Ann\tLee", "90.00", "90.00"}}},
	}
	var out bytes.Buffer
	require.NoError(t, NewTextRenderer(&out).RenderTable(tbl))

	var row string
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.Contains(line, "Ann") {
			row = line
		}
	}
	assert.Equal(t, []string{"Ann Lee", "90.00", "90.00"}, cells(row))
}

// cells splits a tabwriter debug line on its "|" separators.
func cells(line string) []string {
	parts := strings.Split(line, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func TestHTMLRenderer(t *testing.T) {
	var out bytes.Buffer
	r := NewHTMLRenderer(&out)
	require.NoError(t, r.RenderTable(studentTbl))
	require.NoError(t, r.RenderTable(subjectTbl))

	html := out.String()
	assert.Contains(t, html, "<h4>"+report.StudentTitle+"</h4>")
	assert.Contains(t, html, "<h4>"+report.SubjectTitle+"</h4>")
	assert.Contains(t, html, `<th style="text-align: center">standardDeviation</th>`)
	assert.Contains(t, html, `<td style="text-align: center">Korean</td><td style="text-align: center">75.00</td>`)
	assert.Contains(t, html, "Bob &lt;b&gt;")
	assert.NotContains(t, html, "Bob <b>")
	assert.Equal(t, 2, strings.Count(html, "<table>"))
}

func TestJSONRenderer(t *testing.T) {
	var out bytes.Buffer
	r := NewJSONRenderer(&out)
	require.NoError(t, r.RenderTable(studentTbl))
	require.NoError(t, r.RenderTable(subjectTbl))

	dec := json.NewDecoder(&out)
	for _, want := range []report.Table{studentTbl, subjectTbl} {
		var got report.Table
		require.NoError(t, dec.Decode(&got))
		assert.Equal(t, want, got)
	}
}
