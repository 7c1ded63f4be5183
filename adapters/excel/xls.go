package excel

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/extrame/xls"

	"sheetdesk/domain/core"
	"sheetdesk/models"
)

// BIFF8 worksheets are at most 256 columns wide
const maxXLSColumns = 256

var errNoWorkbookStream = errors.New("xls file has no workbook stream")

// readXLS reads the first worksheet of a legacy BIFF workbook. The xls parser
// panics on some malformed inputs, so panics are converted into errors.
func readXLS(data []byte) (sheet *rawSheet, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			sheet = nil
			err = fmt.Errorf("corrupt xls workbook: %v", rec)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if wb == nil {
		return nil, errNoWorkbookStream
	}
	if wb.NumSheets() == 0 {
		return nil, core.ErrNoSheets
	}
	ws := wb.GetSheet(0)
	if ws == nil {
		return nil, core.ErrNoSheets
	}

	sheet = &rawSheet{Name: ws.Name, Rows: make([][]models.Cell, 0, int(ws.MaxRow)+1)}
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := rowAt(ws, i)
		if row == nil {
			sheet.Rows = append(sheet.Rows, nil)
			continue
		}
		// rows built from cell records alone carry no column bounds
		width := row.LastCol()
		if width <= 0 || width > maxXLSColumns {
			width = maxXLSColumns
		}
		cells := make([]models.Cell, width)
		for j := range cells {
			cells[j] = coerceText(row.Col(j))
		}
		sheet.Rows = append(sheet.Rows, cells)
	}
	return sheet, nil
}

// rowAt returns nil for row indexes the sheet holds no record for. The
// library's accessor dereferences the missing entry.
func rowAt(ws *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return ws.Row(i)
}
