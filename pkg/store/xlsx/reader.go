// Package xlsx reads transaction rows from spreadsheet workbooks.
package xlsx

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/de-tools/story-atlas/pkg/models/store"
	"github.com/de-tools/story-atlas/pkg/store/tabular"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook parses the named sheet, or the first sheet when sheet is empty.
func ReadWorkbook(r io.Reader, sheet string) ([]store.TransactionRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return []store.TransactionRow{}, nil
		}
		sheet = sheets[0]
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(cells) == 0 {
		return []store.TransactionRow{}, nil
	}

	header, err := tabular.ResolveHeader(cells[0])
	if err != nil {
		return nil, err
	}

	rows := make([]store.TransactionRow, 0, len(cells)-1)
	for i, row := range cells[1:] {
		if isBlank(row) {
			continue
		}
		rows = append(rows, header.Row(i+1, row))
	}
	return rows, nil
}

func ReadFile(path, sheet string) ([]store.TransactionRow, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", store.ErrSourceUnavailable, path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return ReadWorkbook(f, sheet)
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
