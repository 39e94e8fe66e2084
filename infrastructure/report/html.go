package report

import (
	"fmt"
	"html/template"
	"io"
	"math"
)

// htmlFuncs are the helpers available inside the report template.
var htmlFuncs = template.FuncMap{
	"percent":   percent,
	"scorecell": scoreCell,
	"rank":      func(i int) int { return i + 1 },
}

// percent renders a score in [0, 1] as a percentage with one decimal.
func percent(score float64) string {
	return fmt.Sprintf("%.1f%%", score*100)
}

// scoreCell maps a score to a background color on a red-to-green
// gradient, so the score tables read at a glance. Scores outside [0, 1]
// are clamped for coloring only; the printed number keeps its value.
func scoreCell(score float64) template.CSS {
	clamped := math.Min(1, math.Max(0, score))
	hue := int(clamped * 120)
	return template.CSS(fmt.Sprintf("background-color: hsl(%d, 65%%, 55%%)", hue))
}

var htmlTemplate = template.Must(template.New("report").Funcs(htmlFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Ranking: {{.Final}}</title>
<style>
  body { font-family: sans-serif; margin: 2em; color: #222; }
  h1 { font-size: 1.4em; }
  h2 { font-size: 1.1em; margin-top: 2em; }
  table { border-collapse: collapse; margin-top: 0.5em; }
  th, td { border: 1px solid #999; padding: 0.3em 0.8em; text-align: right; }
  th { background-color: #eee; }
  td.name, th.name { text-align: left; }
  .footer { margin-top: 3em; font-size: 0.8em; color: #777; }
</style>
</head>
<body>
<h1>Ranking by {{.Final}}</h1>

<table>
  <tr><th>Rank</th><th class="name">Choice</th><th>Score</th></tr>
  {{- range $i, $e := .Ranking}}
  <tr>
    <td>{{rank $i}}</td>
    <td class="name">{{$e.Choice}}</td>
    <td style="{{scorecell $e.Score}}">{{percent $e.Score}}</td>
  </tr>
  {{- end}}
</table>

<h2>Scores</h2>
<table>
  <tr>
    <th class="name">Choice</th>
    {{- range .Nodes}}<th>{{.}}</th>{{end}}
  </tr>
  {{- range $choice := .Choices}}
  <tr>
    <td class="name">{{$choice}}</td>
    {{- range $node := $.Nodes}}
    <td style="{{scorecell ($.Score $choice $node)}}">{{percent ($.Score $choice $node)}}</td>
    {{- end}}
  </tr>
  {{- end}}
</table>

<h2>Raw values</h2>
<table>
  <tr>
    <th class="name">Choice</th>
    {{- range .Measures}}<th>{{.Name}}</th>{{end}}
  </tr>
  {{- range $choice := .Choices}}
  <tr>
    <td class="name">{{$choice}}</td>
    {{- range $m := $.Measures}}
    <td>{{$.Raw $choice $m.Name}}</td>
    {{- end}}
  </tr>
  {{- end}}
</table>

{{- if .Measures}}
<h2>Measures</h2>
<table>
  <tr><th class="name">Measure</th><th class="name">Source</th><th class="name">Scoring</th></tr>
  {{- range .Measures}}
  <tr>
    <td class="name">{{.Name}}</td>
    <td class="name">{{.Source}}</td>
    <td class="name">{{.Doc}}</td>
  </tr>
  {{- end}}
</table>
{{- end}}

<div class="footer">Generated {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}</div>
</body>
</html>
`))

// WriteHTML renders the report as a standalone HTML page.
func WriteHTML(w io.Writer, r *Report) error {
	if err := htmlTemplate.Execute(w, r); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}
	return nil
}
