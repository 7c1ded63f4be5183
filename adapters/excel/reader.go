package excel

import (
	"bytes"
	"context"
	"time"

	"sheetdesk/domain/core"
	"sheetdesk/internal"
	"sheetdesk/models"
	"sheetdesk/ports"
)

var (
	zipSignature  = []byte{0x50, 0x4B, 0x03, 0x04}
	ole2Signature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// Reader parses uploaded spreadsheets held in memory
type Reader struct {
	logger *internal.Logger
}

var _ ports.WorkbookReader = (*Reader)(nil)

// NewReader creates a workbook reader
func NewReader(logger *internal.Logger) *Reader {
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	return &Reader{logger: logger}
}

// DetectFormat identifies the workbook container from its leading bytes.
// The file name is not consulted: an .xls upload holding OOXML content is read as xlsx.
func DetectFormat(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, zipSignature):
		return FormatXLSX, nil
	case bytes.HasPrefix(data, ole2Signature):
		return FormatXLS, nil
	default:
		return "", core.ErrUnknownFormat
	}
}

// ReadWorkbook parses the first sheet of data. Parser errors are returned unwrapped
// so their text reaches the caller as produced by the parser.
func (r *Reader) ReadWorkbook(ctx context.Context, data []byte) (*models.Workbook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format, err := DetectFormat(data)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	var sheet *rawSheet
	switch format {
	case FormatXLSX:
		sheet, err = readXLSX(data)
	case FormatXLS:
		sheet, err = readXLS(data)
	}
	if err != nil {
		return nil, err
	}
	r.logger.Debug("[Reader] %s sheet %q read in %.2fms (%d rows)",
		format, sheet.Name, float64(time.Since(startTime).Nanoseconds())/1e6, len(sheet.Rows))

	wb := buildWorkbook(sheet)
	wb.Format = format

	r.logger.Debug("[Reader] %s workbook processed (%d columns, %d records)", format, len(wb.Headers), len(wb.Records))
	return wb, nil
}
