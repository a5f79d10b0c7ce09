package gradebook

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// StudentAggregate is derived from one StudentRecord.
type StudentAggregate struct {
	Name    string  `json:"name"`
	Total   float64 `json:"total"`
	Average float64 `json:"average"` // Total / number of subjects
}

// SubjectStatistic describes one subject's scores across all students.
type SubjectStatistic struct {
	Subject string  `json:"subject"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	StdDev  float64 `json:"standard_deviation"` // population: divides by N
}

type Statistics struct {
	Students []StudentAggregate `json:"students"` // Dataset order
	Subjects []SubjectStatistic `json:"subjects"` // subject order
}

// Compute derives the Statistics of ds. It never mutates ds.
func Compute(ds Dataset) Statistics {
	st := Statistics{
		Students: make([]StudentAggregate, 0, len(ds.Students)),
		Subjects: make([]SubjectStatistic, 0, len(ds.Subjects)),
	}

	for _, rec := range ds.Students {
		total := stats.Sample{Xs: rec.ScoreList(ds.Subjects)}.Sum()
		st.Students = append(st.Students, StudentAggregate{
			Name:    rec.Name,
			Total:   total,
			Average: total / float64(len(ds.Subjects)),
		})
	}

	for _, subj := range ds.Subjects {
		scores := ds.SubjectScores(subj)
		mean := stats.Sample{Xs: scores}.Mean()
		st.Subjects = append(st.Subjects, SubjectStatistic{
			Subject: subj,
			Mean:    mean,
			Median:  Median(scores),
			StdDev:  PopulationStdDev(scores, mean),
		})
	}
	return st
}

// Median returns the middle value of xs, or the mean of the two middle values when len(xs) is even.
// xs is not modified. It returns NaN for an empty slice.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// PopulationStdDev returns sqrt(sum((x - mean)^2) / N). It returns NaN for an empty slice.
func PopulationStdDev(xs []float64, mean float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	var sumSq float64
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(xs)))
}
