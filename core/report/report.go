// Package report turns a gradebook.Dataset and its Statistics into display-ready tables.
//
// Every numeric cell is formatted with FormatFixed, i.e. correctly rounded from the
// binary value with ties going to the even digit (0.125 -> "0.12", 0.375 -> "0.38").
package report

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/trezcool/scoretable/core/gradebook"
)

// Places is the number of decimals of every numeric cell.
const Places = 2

// Column labels
const (
	ColName    = "name"
	ColTotal   = "total"
	ColAverage = "average"
	ColMean    = "mean"
	ColMedian  = "median"
	ColStdDev  = "standardDeviation"
	ColSubject = "subject"
)

// Table titles
const (
	StudentTitle = "Scores by student"
	SubjectTitle = "Statistics by subject"
)

type (
	Row struct {
		Label string   `json:"label,omitempty"`
		Cells []string `json:"cells"`
	}

	// Table is a rendering-agnostic table description: labels and pre-formatted cells.
	// When LabelHeader is set, every Row carries a Label shown before its cells.
	Table struct {
		Title       string   `json:"title"`
		LabelHeader string   `json:"label_header,omitempty"`
		Columns     []string `json:"columns"`
		Rows        []Row    `json:"rows"`
	}

	// Renderer is any collaborator that can display a Table.
	Renderer interface {
		RenderTable(t Table) error
	}
)

// Labeled reports whether rows carry a label column.
func (t Table) Labeled() bool { return t.LabelHeader != "" }

// Header returns the column labels including the label column, if any.
func (t Table) Header() []string {
	if !t.Labeled() {
		return append([]string(nil), t.Columns...)
	}
	return append([]string{t.LabelHeader}, t.Columns...)
}

// Values returns the row's cells prefixed with its label when the table is labeled.
func (t Table) Values(r Row) []string {
	if !t.Labeled() {
		return r.Cells
	}
	return append([]string{r.Label}, r.Cells...)
}

// FormatFixed formats v with exactly places decimals.
func FormatFixed(v float64, places int) string {
	return strconv.FormatFloat(v, 'f', places, 64)
}

// StudentTable lists every student's scores, total and average, in Dataset order.
func StudentTable(ds gradebook.Dataset, st gradebook.Statistics) Table {
	cols := make([]string, 0, len(ds.Subjects)+3)
	cols = append(cols, ColName)
	cols = append(cols, ds.Subjects...)
	cols = append(cols, ColTotal, ColAverage)

	tbl := Table{Title: StudentTitle, Columns: cols, Rows: make([]Row, 0, len(ds.Students))}
	for i, rec := range ds.Students {
		cells := make([]string, 0, len(cols))
		cells = append(cells, rec.Name)
		for _, subj := range ds.Subjects {
			cells = append(cells, FormatFixed(rec.Score(subj), Places))
		}
		agg := st.Students[i]
		cells = append(cells, FormatFixed(agg.Total, Places), FormatFixed(agg.Average, Places))
		tbl.Rows = append(tbl.Rows, Row{Cells: cells})
	}
	return tbl
}

// SubjectTable lists the mean, median and standard deviation of every subject, in subject order.
func SubjectTable(st gradebook.Statistics) Table {
	tbl := Table{
		Title:       SubjectTitle,
		LabelHeader: ColSubject,
		Columns:     []string{ColMean, ColMedian, ColStdDev},
		Rows:        make([]Row, 0, len(st.Subjects)),
	}
	for _, ss := range st.Subjects {
		tbl.Rows = append(tbl.Rows, Row{
			Label: ss.Subject,
			Cells: []string{
				FormatFixed(ss.Mean, Places),
				FormatFixed(ss.Median, Places),
				FormatFixed(ss.StdDev, Places),
			},
		})
	}
	return tbl
}

// Formatter hands both tables to a Renderer.
type Formatter struct {
	r Renderer
}

func NewFormatter(r Renderer) *Formatter {
	return &Formatter{r: r}
}

// Render renders the per-student table, then the per-subject table.
func (f *Formatter) Render(ds gradebook.Dataset, st gradebook.Statistics) error {
	if len(st.Students) != len(ds.Students) || len(st.Subjects) != len(ds.Subjects) {
		return errors.New("report.Render: statistics do not match dataset")
	}
	if err := f.r.RenderTable(StudentTable(ds, st)); err != nil {
		return errors.Wrap(err, "report.Render: students")
	}
	if err := f.r.RenderTable(SubjectTable(st)); err != nil {
		return errors.Wrap(err, "report.Render: subjects")
	}
	return nil
}
