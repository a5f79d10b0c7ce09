package rendersvc

import (
	"html/template"
	"io"

	"github.com/pkg/errors"

	"github.com/trezcool/scoretable/core/report"
)

var tableTmpl = template.Must(template.New("table").Parse(`<h4>{{ .Title }}</h4>
<table>
  <thead>
    <tr>{{ range .Header }}<th style="text-align: center">{{ . }}</th>{{ end }}</tr>
  </thead>
  <tbody>
{{- range .Rows }}
    <tr>{{ range . }}<td style="text-align: center">{{ . }}</td>{{ end }}</tr>
{{- end }}
  </tbody>
</table>
<br>
`))

// htmlRenderer writes tables as HTML fragments, cells centered.
type htmlRenderer struct {
	out io.Writer
}

var _ report.Renderer = (*htmlRenderer)(nil)

func NewHTMLRenderer(out io.Writer) report.Renderer {
	return &htmlRenderer{out: out}
}

func (r htmlRenderer) RenderTable(t report.Table) error {
	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rows = append(rows, t.Values(row))
	}
	data := struct {
		Title  string
		Header []string
		Rows   [][]string
	}{t.Title, t.Header(), rows}

	return errors.Wrap(tableTmpl.Execute(r.out, data), "rendersvc.html")
}
