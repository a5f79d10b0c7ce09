package gradebook

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/scoretable/core"
	"github.com/trezcool/scoretable/core/input"
)

// subjects whose labels are at least this similar get a warning
const subjectMaxSim = .8

// BuilderConfig holds the defaults offered to the user.
type BuilderConfig struct {
	DefaultCount    int
	DefaultSubjects []string
}

// Builder drives the input.Acquirer to collect a Dataset.
type Builder struct {
	acq  *input.Acquirer
	conf BuilderConfig
	log  core.Logger
}

func NewBuilder(acq *input.Acquirer, conf BuilderConfig, logger core.Logger) *Builder {
	if conf.DefaultCount <= 0 {
		conf.DefaultCount = 5
	}
	if len(conf.DefaultSubjects) == 0 {
		conf.DefaultSubjects = DefaultSubjects
	}
	return &Builder{acq: acq, conf: conf, log: logger}
}

// Build asks for the student count, the subject list, then every student's name and scores.
// It returns nothing but the error when an acquisition fails: there is no partial Dataset.
func (b *Builder) Build() (Dataset, error) {
	defCount := b.conf.DefaultCount
	count, err := b.acq.Int(
		fmt.Sprintf("Number of students (default %d): ", defCount),
		input.PositiveInt{Field: "student count", Default: &defCount},
	)
	if err != nil {
		return Dataset{}, errors.Wrap(err, "gradebook.Build: student count")
	}

	subjects, err := b.acq.List(
		fmt.Sprintf("Subjects, comma separated (default: %s): ", strings.Join(b.conf.DefaultSubjects, ",")),
		input.List{Field: "subjects", Sep: ",", Default: b.conf.DefaultSubjects},
	)
	if err != nil {
		return Dataset{}, errors.Wrap(err, "gradebook.Build: subjects")
	}
	b.warnSimilarSubjects(subjects)

	ds := Dataset{
		Subjects: subjects,
		Students: make([]StudentRecord, 0, count),
	}
	for i := 1; i <= count; i++ {
		rec, err := b.buildRecord(i, subjects)
		if err != nil {
			return Dataset{}, errors.Wrapf(err, "gradebook.Build: student #%d", i)
		}
		ds.Students = append(ds.Students, rec)
	}

	if err := ds.Validate(); err != nil {
		return Dataset{}, errors.Wrap(err, "gradebook.Build")
	}
	return ds, nil
}

func (b *Builder) buildRecord(idx int, subjects []string) (StudentRecord, error) {
	name, err := b.acq.Text(fmt.Sprintf("Name of student #%d: ", idx), input.Text{Field: "name"})
	if err != nil {
		return StudentRecord{}, err
	}

	rec := StudentRecord{Name: name, Scores: make(map[string]float64, len(subjects))}
	kind := input.BoundedFloat{Field: "score", Min: MinScore, Max: MaxScore}
	for _, subj := range subjects {
		score, err := b.acq.Float(fmt.Sprintf("%s's %s score (0-100): ", name, subj), kind)
		if err != nil {
			return StudentRecord{}, err
		}
		rec.Scores[subj] = score
	}
	return rec, nil
}

// warnSimilarSubjects logs subject labels that look like typos of each other, e.g. "Math" and "Maths".
func (b *Builder) warnSimilarSubjects(subjects []string) {
	if b.log == nil {
		return
	}
	for i := 0; i < len(subjects); i++ {
		for j := i + 1; j < len(subjects); j++ {
			a, c := strings.ToLower(subjects[i]), strings.ToLower(subjects[j])
			if a == c {
				b.log.Warn("subjects differ only by case", map[string]interface{}{"subjects": []string{subjects[i], subjects[j]}})
				continue
			}
			ratio := difflib.NewMatcher(strings.Split(a, ""), strings.Split(c, "")).Ratio()
			if ratio >= subjectMaxSim {
				b.log.Warn("subjects look alike", map[string]interface{}{"subjects": []string{subjects[i], subjects[j]}, "ratio": ratio})
			}
		}
	}
}
