package gradebook

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/scoretable/core"
)

var (
	scoreKeysTag  = "scorekeys"
	scoreKeysText = "{0} must have exactly one score per subject"
)

func init() {
	core.Validate.RegisterStructValidation(datasetStructValidation, Dataset{})
	core.RegisterCustomTranslation(scoreKeysTag, scoreKeysText)
}

// datasetStructValidation checks that every record's score keys equal the subject list.
func datasetStructValidation(sl validator.StructLevel) {
	ds, ok := sl.Current().Interface().(Dataset)
	if !ok {
		return
	}
	for _, rec := range ds.Students {
		if !sameKeys(rec.Scores, ds.Subjects) {
			sl.ReportError(rec.Scores, "scores", "Scores", scoreKeysTag, rec.Name)
			return
		}
	}
}

func sameKeys(scores map[string]float64, subjects []string) bool {
	if len(scores) != len(subjects) {
		return false
	}
	for _, subj := range subjects {
		if _, ok := scores[subj]; !ok {
			return false
		}
	}
	return true
}
