package ports

import (
	"context"

	"sheetdesk/models"
)

// WorkbookReader parses spreadsheet bytes into headers and records.
// Only the first sheet is read and its first row supplies the headers.
type WorkbookReader interface {
	ReadWorkbook(ctx context.Context, data []byte) (*models.Workbook, error)
}
