package excel

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"sheetdesk/domain/core"
	"sheetdesk/models"
)

// readXLSX reads the first worksheet of an OOXML workbook with excelize.
// Numbers styled as dates are reported as date text.
func readXLSX(data []byte) (*rawSheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, core.ErrNoSheets
	}
	name := sheets[0]

	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	dates, err := newDateStyles(f, name)
	if err != nil {
		return nil, err
	}

	sheet := &rawSheet{Name: name, Rows: make([][]models.Cell, len(rows))}
	for i, row := range rows {
		cells := make([]models.Cell, len(row))
		for j, raw := range row {
			if raw == "" {
				cells[j] = models.EmptyCell()
				continue
			}
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(name, ref)
			if err != nil {
				return nil, err
			}
			if cellType == excelize.CellTypeNumber || cellType == excelize.CellTypeUnset {
				isDate, err := dates.isDate(ref)
				if err != nil {
					return nil, err
				}
				if isDate {
					if cell, ok := dateCell(raw, dates.date1904); ok {
						cells[j] = cell
						continue
					}
				}
			}
			cells[j] = xlsxCell(cellType, raw)
		}
		sheet.Rows[i] = cells
	}
	return sheet, nil
}
