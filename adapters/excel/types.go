package excel

import "sheetdesk/models"

// Workbook formats recognised by content signature
const (
	FormatXLSX = "xlsx"
	FormatXLS  = "xls"
)

// rawSheet is the first worksheet of a workbook before header handling.
// Rows keep their sheet positions; a missing row is an empty slice.
type rawSheet struct {
	Name string
	Rows [][]models.Cell
}
