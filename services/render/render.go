// Package rendersvc displays report tables on a console, as HTML or as JSON.
package rendersvc

import (
	"io"

	"github.com/pkg/errors"

	"github.com/trezcool/scoretable/core"
	"github.com/trezcool/scoretable/core/report"
)

// New returns the renderer registered under name (see core.Renderer* constants).
func New(name string, out io.Writer) (report.Renderer, error) {
	switch name {
	case core.RendererText, "":
		return NewTextRenderer(out), nil
	case core.RendererHTML:
		return NewHTMLRenderer(out), nil
	case core.RendererJSON:
		return NewJSONRenderer(out), nil
	default:
		return nil, errors.Errorf("rendersvc: unknown renderer %q", name)
	}
}
