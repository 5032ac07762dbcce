package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/story-atlas/pkg/models/domain"
)

// Reporter prints a compact outline of the story: scene titles and their KPIs.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(story domain.Story) error {
	tmpl := `{{.Title}}
{{range $i, $scene := .Scenes}}
{{$i}}. {{$scene.Title}}
{{range $scene.KPIs}}   {{.Label}}: {{.Value}}
{{end}}{{end}}`
	t, err := template.New("outline").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, story)
}
