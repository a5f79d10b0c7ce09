package gradebook

import "github.com/trezcool/scoretable/core"

// Score bounds, inclusive.
const (
	MinScore = 0.0
	MaxScore = 100.0
)

// DefaultSubjects is used when the subject list is left empty.
var DefaultSubjects = []string{"Korean", "Math", "Science"}

// StudentRecord holds one score per subject of the Dataset it belongs to.
type StudentRecord struct {
	Name   string             `json:"name" validate:"notblank"`
	Scores map[string]float64 `json:"scores" validate:"dive,keys,notblank,endkeys,inrange=0:100"`
}

// Score returns the student's score for subject.
func (r StudentRecord) Score(subject string) float64 {
	return r.Scores[subject]
}

// ScoreList returns the scores in subjects order.
func (r StudentRecord) ScoreList(subjects []string) []float64 {
	scores := make([]float64, 0, len(subjects))
	for _, subj := range subjects {
		scores = append(scores, r.Scores[subj])
	}
	return scores
}

// Dataset is built once per run and never mutated afterwards.
type Dataset struct {
	Subjects []string        `json:"subjects" validate:"required,min=1,unique,dive,notblank"`
	Students []StudentRecord `json:"students" validate:"required,min=1,dive"`
}

// Validate checks the Dataset invariants: every record has exactly one in-range score per subject.
func (ds Dataset) Validate() error { return core.ValidateStruct(ds) }

// SubjectScores returns every student's score for subject, in Dataset order.
func (ds Dataset) SubjectScores(subject string) []float64 {
	scores := make([]float64, 0, len(ds.Students))
	for _, rec := range ds.Students {
		scores = append(scores, rec.Scores[subject])
	}
	return scores
}
