package rendersvc

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/trezcool/scoretable/core/report"
)

// jsonRenderer writes one JSON document per table.
type jsonRenderer struct {
	enc *json.Encoder
}

var _ report.Renderer = (*jsonRenderer)(nil)

func NewJSONRenderer(out io.Writer) report.Renderer {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return &jsonRenderer{enc: enc}
}

func (r jsonRenderer) RenderTable(t report.Table) error {
	return errors.Wrap(r.enc.Encode(t), "rendersvc.json")
}
