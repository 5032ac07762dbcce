// Package csvfile reads Superstore-style CSV exports into store rows.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/de-tools/story-atlas/pkg/models/store"
	"github.com/de-tools/story-atlas/pkg/store/tabular"
	"golang.org/x/text/encoding/charmap"
)

// DefaultEncoding is assumed when no encoding is named; Superstore exports are Latin-1.
const DefaultEncoding = "latin-1"

// Decode wraps r so that it yields UTF-8 text for the named source encoding.
func Decode(r io.Reader, encoding string) (io.Reader, error) {
	if strings.TrimSpace(encoding) == "" {
		encoding = DefaultEncoding
	}
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "utf-8", "utf8":
		return r, nil
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		return charmap.ISO8859_1.NewDecoder().Reader(r), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder().Reader(r), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}
}

// ReadRows parses a header line followed by data rows. An empty stream yields no rows.
func ReadRows(r io.Reader, encoding string) ([]store.TransactionRow, error) {
	decoded, err := Decode(r, encoding)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	names, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []store.TransactionRow{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	header, err := tabular.ResolveHeader(names)
	if err != nil {
		return nil, err
	}

	rows := make([]store.TransactionRow, 0)
	for line := 1; ; line++ {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		rows = append(rows, header.Row(line, cells))
	}
	return rows, nil
}

// ReadFile opens path and parses it. A missing file reports store.ErrSourceUnavailable.
func ReadFile(path, encoding string) ([]store.TransactionRow, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", store.ErrSourceUnavailable, path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return ReadRows(f, encoding)
}
