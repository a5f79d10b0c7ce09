package input

import (
	"math"
	"strconv"

	"github.com/trezcool/scoretable/core"
)

// Kind parses and validates one cleaned line of raw input.
// A rejected value is reported as a *core.ValidationError.
type Kind interface {
	Parse(raw string) (interface{}, error)
}

var (
	_ Kind = PositiveInt{}
	_ Kind = Text{}
	_ Kind = BoundedFloat{}
	_ Kind = List{}
)

// PositiveInt accepts integers > 0. When Default is set, an empty input returns it unparsed.
type PositiveInt struct {
	Field   string
	Default *int
}

func (k PositiveInt) Parse(raw string) (interface{}, error) {
	if raw == "" && k.Default != nil {
		return *k.Default, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, core.NewFieldError(core.NotIntegerKey, k.Field)
	}
	if err := core.ValidateVar(k.Field, n, "gt=0"); err != nil {
		return nil, err
	}
	return n, nil
}

// Text accepts any non-blank text.
type Text struct {
	Field string
}

func (k Text) Parse(raw string) (interface{}, error) {
	if err := core.ValidateVar(k.Field, raw, "notblank"); err != nil {
		return nil, err
	}
	return raw, nil
}

// BoundedFloat accepts finite numbers in [Min, Max].
type BoundedFloat struct {
	Field    string
	Min, Max float64
}

func (k BoundedFloat) Parse(raw string) (interface{}, error) {
	if err := core.ValidateVar(k.Field, raw, "notblank"); err != nil {
		return nil, err
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, core.NewFieldError(core.NotNumberKey, k.Field)
	}
	if err := core.ValidateVar(k.Field, f, core.InRangeTag(k.Min, k.Max)); err != nil {
		return nil, err
	}
	return f, nil
}

// List accepts a Sep separated list of labels; empty fragments are dropped.
// When nothing is left, a copy of Default is returned; duplicate labels are rejected.
type List struct {
	Field   string
	Sep     string
	Default []string
}

func (k List) Parse(raw string) (interface{}, error) {
	sep := k.Sep
	if sep == "" {
		sep = ","
	}
	list := core.SplitList(raw, sep)
	if len(list) == 0 {
		return append([]string(nil), k.Default...), nil
	}
	if err := core.ValidateVar(k.Field, list, "unique"); err != nil {
		return nil, err
	}
	return list, nil
}
