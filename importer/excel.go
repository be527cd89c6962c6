package importer

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ParseExcel reads the first sheet of an xlsx workbook into a Dataset.
// The first non-blank row is the header; shorter data rows are padded
// with empty cells and longer ones truncated so the result stays
// rectangular.
func ParseExcel(data []byte) (*Result, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("importer: falha ao abrir planilha: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrUnparseable
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("importer: falha ao ler planilha %q: %w", sheet, err)
	}

	var header []string
	var body [][]string
	for _, row := range rows {
		if allBlank(row) {
			continue
		}
		if header == nil {
			header = row
			continue
		}
		body = append(body, padRow(row, len(header)))
	}

	if header == nil || len(header) <= 1 || len(body) == 0 {
		return nil, ErrUnparseable
	}

	return &Result{
		Dataset:  &Dataset{Columns: normalizeHeader(header), Rows: body},
		Encoding: "xlsx",
	}, nil
}

func padRow(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}
