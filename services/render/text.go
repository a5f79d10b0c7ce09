package rendersvc

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/trezcool/scoretable/core/report"
)

// textRenderer prints tables as aligned console grids.
type textRenderer struct {
	out io.Writer
}

var _ report.Renderer = (*textRenderer)(nil)

func NewTextRenderer(out io.Writer) report.Renderer {
	return &textRenderer{out: out}
}

func (r textRenderer) RenderTable(t report.Table) error {
	if _, err := fmt.Fprintf(r.out, "\n%s\n\n", t.Title); err != nil {
		return errors.Wrap(err, "rendersvc.text")
	}

	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', tabwriter.AlignRight|tabwriter.Debug)
	header := t.Header()
	writeCells(tw, header)
	writeCells(tw, rule(header))
	for _, row := range t.Rows {
		writeCells(tw, t.Values(row))
	}
	return errors.Wrap(tw.Flush(), "rendersvc.text")
}

// cellEscaper keeps tabwriter separators out of cell text.
var cellEscaper = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ", "\v", " ", "\f", " ")

func writeCells(w io.Writer, cells []string) {
	for _, c := range cells {
		fmt.Fprint(w, cellEscaper.Replace(c), "\t")
	}
	fmt.Fprintln(w)
}

func rule(header []string) []string {
	dashes := make([]string, len(header))
	for i, h := range header {
		dashes[i] = strings.Repeat("-", len([]rune(h)))
	}
	return dashes
}
