package extractor

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// sheet is one worksheet in workbook order.
type sheet struct {
	name string
	rows [][]string
}

func extractXLSX(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	names := f.GetSheetList()
	sheets := make([]sheet, 0, len(names))
	for _, name := range names {
		rows, err := f.GetRows(name)
		if err != nil {
			return "", fmt.Errorf("read sheet %q: %w", name, err)
		}
		sheets = append(sheets, sheet{name: name, rows: rows})
	}
	return renderSheets(sheets)
}

func extractXLS(data []byte) (string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return "", fmt.Errorf("open xls: %w", err)
	}

	sheets := make([]sheet, 0, wb.NumSheets())
	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			continue
		}
		s := sheet{name: ws.Name}
		for r := 0; r <= int(ws.MaxRow); r++ {
			row := ws.Row(r)
			if row == nil {
				s.rows = append(s.rows, nil)
				continue
			}
			cells := make([]string, 0, row.LastCol())
			for c := 0; c < row.LastCol(); c++ {
				cells = append(cells, row.Col(c))
			}
			s.rows = append(s.rows, cells)
		}
		sheets = append(sheets, s)
	}
	return renderSheets(sheets)
}

// renderSheets writes "Sheet: <name>" followed by the CSV rendering of each
// sheet, separating blocks with a blank line.
func renderSheets(sheets []sheet) (string, error) {
	blocks := make([]string, 0, len(sheets))
	for _, s := range sheets {
		body, err := sheetToCSV(s.rows)
		if err != nil {
			return "", fmt.Errorf("render sheet %q: %w", s.name, err)
		}
		block := "Sheet: " + s.name
		if body != "" {
			block += "\n" + body
		}
		blocks = append(blocks, block)
	}
	return strings.TrimSpace(strings.Join(blocks, "\n\n")), nil
}

// sheetToCSV pads every row to the widest row so columns line up, then writes
// RFC 4180 CSV without a trailing newline.
func sheetToCSV(rows [][]string) (string, error) {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range rows {
		record := make([]string, width)
		copy(record, row)
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
