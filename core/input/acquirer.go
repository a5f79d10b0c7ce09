// Package input asks the user for values until they are valid.
package input

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/trezcool/scoretable/core"
)

// LineReader reads one line of raw text, showing prompt first.
// It returns io.EOF once the source is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Acquirer reads lines until one parses as the requested Kind.
// Every rejected line writes exactly one diagnostic line to diag before re-prompting.
type Acquirer struct {
	rdr  LineReader
	diag io.Writer
	log  core.Logger
}

func NewAcquirer(rdr LineReader, diag io.Writer, logger core.Logger) *Acquirer {
	return &Acquirer{rdr: rdr, diag: diag, log: logger}
}

// Acquire blocks until a valid value is read. There is no retry limit: it returns
// core.ErrInputExhausted (wrapped) when the reader runs out of lines.
func (a *Acquirer) Acquire(prompt string, kind Kind) (interface{}, error) {
	for attempt := 1; ; attempt++ {
		raw, err := a.rdr.ReadLine(prompt)
		if err != nil {
			if errors.Cause(err) == io.EOF {
				return nil, errors.Wrapf(core.ErrInputExhausted, "reading %q", prompt)
			}
			return nil, errors.Wrapf(err, "reading %q", prompt)
		}

		val, err := kind.Parse(core.CleanString(raw))
		if err == nil {
			return val, nil
		}
		if !core.IsValidationError(err) {
			return nil, err
		}
		if a.log != nil {
			a.log.Debug("input rejected", map[string]interface{}{"prompt": prompt, "attempt": attempt, "error": err.Error()})
		}
		if _, err := fmt.Fprintln(a.diag, err.Error()); err != nil {
			return nil, errors.Wrap(err, "writing diagnostic")
		}
	}
}

// Int acquires a PositiveInt.
func (a *Acquirer) Int(prompt string, kind PositiveInt) (int, error) {
	val, err := a.Acquire(prompt, kind)
	if err != nil {
		return 0, err
	}
	return val.(int), nil
}

// Text acquires a non-blank, trimmed Text.
func (a *Acquirer) Text(prompt string, kind Text) (string, error) {
	val, err := a.Acquire(prompt, kind)
	if err != nil {
		return "", err
	}
	return val.(string), nil
}

// Float acquires a BoundedFloat.
func (a *Acquirer) Float(prompt string, kind BoundedFloat) (float64, error) {
	val, err := a.Acquire(prompt, kind)
	if err != nil {
		return 0, err
	}
	return val.(float64), nil
}

// List acquires a List.
func (a *Acquirer) List(prompt string, kind List) ([]string, error) {
	val, err := a.Acquire(prompt, kind)
	if err != nil {
		return nil, err
	}
	return val.([]string), nil
}
