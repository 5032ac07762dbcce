package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/story-atlas/pkg/adapters"
	"github.com/de-tools/story-atlas/pkg/models/domain"
)

// JSONExporter writes the story in the same shape the HTTP API serves.
type JSONExporter struct {
	writer io.Writer
	indent bool
}

func NewJSONExporter(writer io.Writer, indent bool) *JSONExporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &JSONExporter{writer: writer, indent: indent}
}

func (e *JSONExporter) Handle(story domain.Story) error {
	enc := json.NewEncoder(e.writer)
	if e.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(adapters.MapDomainStoryToApi(story)); err != nil {
		return fmt.Errorf("failed to encode story: %w", err)
	}
	return nil
}
