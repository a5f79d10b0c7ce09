package core

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	// custom validation tags & texts. {0} is always the field label.
	notBlankTag  = "notblank"
	notBlankText = "{0} cannot be empty"

	// inrange=min:max, bounds inclusive
	inRangeTag  = "inrange"
	inRangeText = "{0} must be between {1} and {2}"

	positiveTag  = "gt"
	positiveText = "{0} must be a positive integer"

	uniqueTag  = "unique"
	uniqueText = "{0} must not contain duplicates"

	// parse failures, reported without a validator tag
	NotIntegerKey  = "notinteger"
	notIntegerText = "{0} must be an integer"
	NotNumberKey   = "notnumber"
	notNumberText  = "{0} must be a number, e.g. 85 or 92.5"
)

// Instantiate the validator for use.
func init() {
	Validate = validator.New()

	// Register the english error messages for validation errors.
	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// register custom validators
	_ = Validate.RegisterValidation(notBlankTag, notBlankValidation)
	_ = Validate.RegisterValidation(inRangeTag, inRangeValidation)

	RegisterCustomTranslation(notBlankTag, notBlankText)
	RegisterCustomTranslation(inRangeTag, inRangeText)
	RegisterCustomTranslation(positiveTag, positiveText, true)
	RegisterCustomTranslation(uniqueTag, uniqueText, true)
	_ = Translator.Add(NotIntegerKey, notIntegerText, false)
	_ = Translator.Add(NotNumberKey, notNumberText, false)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
// The translated text receives the field label as {0}, followed by the tag params split on ":".
func RegisterCustomTranslation(tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = Validate.RegisterTranslation(
		tag, Translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			return Translate(tag, fe.Field(), tagParams(fe.Param())...)
		},
	)
}

// Translate returns the registered text for key, filled with the field label and params.
func Translate(key, field string, params ...string) string {
	s, err := Translator.T(key, append([]string{field}, params...)...)
	if err != nil {
		return field + ": invalid value"
	}
	return s
}

// ValidateVar validates a single input value against the validation tag.
// A failure is returned as a *ValidationError whose message is the translated diagnostic for field.
func ValidateVar(field string, value interface{}, tag string) error {
	err := Validate.Var(value, tag)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	flds := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		flds = append(flds, FieldError{Field: field, Error: Translate(fe.Tag(), field, tagParams(fe.Param())...)})
	}
	return NewValidationError(errors.New(flds[0].Error), flds...)
}

// ValidateStruct validates s against its struct tags and registered struct validations.
// Failures are returned as a *ValidationError carrying one translated FieldError per violation.
func ValidateStruct(s interface{}) error {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	flds := make([]FieldError, 0, len(verrs))
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Translate(Translator)
		flds = append(flds, FieldError{Field: fe.Namespace(), Error: msg})
		msgs = append(msgs, msg)
	}
	return NewValidationError(errors.New(strings.Join(msgs, "; ")), flds...)
}

// NewFieldError builds a *ValidationError for field from a registered translation key.
func NewFieldError(key, field string, params ...string) error {
	msg := Translate(key, field, params...)
	return NewValidationError(errors.New(msg), FieldError{Field: field, Error: msg})
}

// InRangeTag returns the "inrange" validation tag for the inclusive bounds.
func InRangeTag(min, max float64) string {
	return inRangeTag + "=" + FormatBound(min) + ":" + FormatBound(max)
}

// FormatBound formats a bound with as few digits as possible: 0, 100, 2.5.
func FormatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func tagParams(param string) []string {
	if param == "" {
		return nil
	}
	return strings.Split(param, ":")
}

// Custom Global Validators

// notBlankValidation rejects strings made only of whitespace.
func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

// inRangeValidation checks min <= value <= max for "inrange=min:max". NaN is never in range.
func inRangeValidation(fl validator.FieldLevel) bool {
	bounds := tagParams(fl.Param())
	if len(bounds) != 2 {
		return false
	}
	min, err := strconv.ParseFloat(bounds[0], 64)
	if err != nil {
		return false
	}
	max, err := strconv.ParseFloat(bounds[1], 64)
	if err != nil {
		return false
	}

	var f float64
	switch fld := fl.Field(); fld.Kind() {
	case reflect.Float32, reflect.Float64:
		f = fld.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f = float64(fld.Int())
	default:
		return false
	}
	if math.IsNaN(f) {
		return false
	}
	return f >= min && f <= max
}
