package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/story-atlas/pkg/models/domain"
)

type TableConfig struct {
	LabelWidth int
	ValueWidth int
	NoteWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth: 32,
		ValueWidth: 28,
		NoteWidth:  24,
	}
}

// Row is one line of a scene table: a KPI or a chart data point.
type Row struct {
	Label string
	Value string
	Note  string
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

const storyTemplate = `
{{.Title}} ({{.RecordCount}} records)
{{range .Scenes}}
=== {{.Title}} ===
{{if .Subtitle}}{{.Subtitle}}
{{end}}{{if .KPIs}}
{{separator}}
{{formatRow "KPI" "Value" "Accent"}}
{{separator}}
{{range .KPIs}}{{formatRow .Label .Value (print .Accent)}}
{{end}}{{separator}}
{{end}}{{if not .Chart.IsEmpty}}
Chart: {{.Chart.Title}} [{{.Chart.Kind}}]
{{separator}}
{{range chartRows .Chart}}{{formatRow .Label .Value .Note}}
{{end}}{{separator}}
{{end}}{{end}}`

func (c *Reporter) Handle(story domain.Story) error {
	funcMap := template.FuncMap{
		"formatRow": func(label, value, note string) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s |",
				c.config.LabelWidth, truncate(label, c.config.LabelWidth),
				c.config.ValueWidth, truncate(value, c.config.ValueWidth),
				c.config.NoteWidth, truncate(note, c.config.NoteWidth))
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", c.config.LabelWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.NoteWidth+2))
		},
		"chartRows": ChartRows,
	}

	t, err := template.New("story").Funcs(funcMap).Parse(storyTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, story)
}

// ChartRows flattens a chart into table rows. Category charts yield one row per point
// and series; scatter charts yield one summary row per series.
func ChartRows(chart domain.ChartSpec) []Row {
	var rows []Row
	for _, series := range chart.Series {
		for _, p := range series.Data {
			rows = append(rows, Row{Label: p.Label, Value: p.Value.StringFixed(2), Note: series.Name})
		}
		if len(series.Points) > 0 {
			rows = append(rows, Row{
				Label: series.Name,
				Value: fmt.Sprintf("%d points", len(series.Points)),
				Note:  chart.XLabel + " vs " + chart.YLabel,
			})
		}
	}
	return rows
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
