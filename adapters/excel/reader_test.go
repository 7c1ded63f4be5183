package excel

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"sheetdesk/domain/core"
	"sheetdesk/models"
)

// buildXLSX writes cells (keyed by A1 reference) into Sheet1 and returns the file bytes
func buildXLSX(t *testing.T, cells map[string]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for ref, value := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", ref, value))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func readBytes(t *testing.T, data []byte) (*models.Workbook, error) {
	t.Helper()
	return NewReader(nil).ReadWorkbook(context.Background(), data)
}

func TestReadWorkbookNameAge(t *testing.T) {
	data := buildXLSX(t, map[string]interface{}{
		"A1": "Name", "B1": "Age",
		"A2": "Alice", "B2": 30,
		"A3": "Bob", "B3": 25,
	})

	wb, err := readBytes(t, data)
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", wb.Sheet)
	assert.Equal(t, FormatXLSX, wb.Format)
	assert.Equal(t, []string{"Name", "Age"}, wb.Headers)

	encoded, err := json.Marshal(wb.Records)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"Name":"Alice","Age":30},{"Name":"Bob","Age":25}]`, string(encoded))
	assert.Equal(t, `[{"Name":"Alice","Age":30},{"Name":"Bob","Age":25}]`, string(encoded))
}

func TestReadWorkbookCellKinds(t *testing.T) {
	data := buildXLSX(t, map[string]interface{}{
		"A1": "text", "B1": "float", "C1": "flag", "D1": "gap", "E1": "tail",
		"A2": "x", "B2": 1.5, "C2": true, "E2": "end",
		"A3": "y", "B3": -2, "C3": false,
	})

	wb, err := readBytes(t, data)
	require.NoError(t, err)
	require.Len(t, wb.Records, 2)

	first := wb.Records[0]
	cell, ok := first.Get("text")
	require.True(t, ok)
	assert.Equal(t, models.TextCell("x"), cell)

	cell, _ = first.Get("float")
	assert.Equal(t, models.NumberCell(1.5), cell)

	cell, _ = first.Get("flag")
	assert.Equal(t, models.BoolCell(true), cell)

	cell, _ = first.Get("gap")
	assert.True(t, cell.IsEmpty())

	second := wb.Records[1]
	cell, _ = second.Get("tail")
	assert.True(t, cell.IsEmpty(), "short rows are padded with empty cells")
	cell, _ = second.Get("flag")
	assert.Equal(t, models.BoolCell(false), cell)

	encoded, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"y","float":-2,"flag":false,"gap":null,"tail":null}`, string(encoded))
}

func TestReadWorkbookDateCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"When", "At", "Custom", "Amount"}))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", time.Date(2024, 1, 2, 13, 30, 0, 0, time.UTC)))
	require.NoError(t, f.SetCellValue("Sheet1", "C2", 45293))
	require.NoError(t, f.SetCellValue("Sheet1", "D2", 45293))

	code := "yyyy-mm-dd"
	custom, err := f.NewStyle(&excelize.Style{CustomNumFmt: &code})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Sheet1", "C2", "C2", custom))
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Sheet1", "D2", "D2", money))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	wb, err := readBytes(t, buf.Bytes())
	require.NoError(t, err)

	encoded, err := json.Marshal(wb.Records)
	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"When": "Tue, 02 Jan 2024 00:00:00 GMT",
		"At": "Tue, 02 Jan 2024 13:30:00 GMT",
		"Custom": "Tue, 02 Jan 2024 00:00:00 GMT",
		"Amount": 45293
	}]`, string(encoded))
}

func TestReadWorkbookHeaderNaming(t *testing.T) {
	data := buildXLSX(t, map[string]interface{}{
		"A1": "id", "C1": "id", "D1": "id", "E1": 2024,
		"A2": 1, "B2": "b", "C2": 2, "D2": 3, "E2": 4,
	})

	wb, err := readBytes(t, data)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "Unnamed: 1", "id.1", "id.2", "2024"}, wb.Headers)
}

func TestReadWorkbookSkipsBlankRows(t *testing.T) {
	data := buildXLSX(t, map[string]interface{}{
		"A2": "Name",
		"A3": "Alice",
		"A5": "Bob",
	})

	wb, err := readBytes(t, data)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name"}, wb.Headers)
	require.Len(t, wb.Records, 2)
	cell, _ := wb.Records[1].Get("Name")
	assert.Equal(t, models.TextCell("Bob"), cell)
}

func TestReadWorkbookEmptySheet(t *testing.T) {
	wb, err := readBytes(t, buildXLSX(t, nil))
	require.NoError(t, err)
	assert.Empty(t, wb.Headers)
	assert.Empty(t, wb.Records)

	encoded, err := json.Marshal(wb)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sheet":"Sheet1","format":"xlsx","headers":[],"data":[]}`, string(encoded))
}

func TestReadWorkbookHeaderOnly(t *testing.T) {
	wb, err := readBytes(t, buildXLSX(t, map[string]interface{}{"A1": "Name", "B1": "Age"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age"}, wb.Headers)
	assert.Empty(t, wb.Records)
}

func TestReadWorkbookUsesFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "People"))
	_, err := f.NewSheet("Other")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("People", "A1", "Name"))
	require.NoError(t, f.SetCellValue("People", "A2", "Alice"))
	require.NoError(t, f.SetCellValue("Other", "A1", "Ignored"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	wb, err := readBytes(t, buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "People", wb.Sheet)
	assert.Equal(t, []string{"Name"}, wb.Headers)
}

func TestReadWorkbookCorruptInput(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"truncated zip", append([]byte{0x50, 0x4B, 0x03, 0x04}, []byte("not really a zip archive")...)},
		{"zip without workbook", []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb, err := readBytes(t, tt.data)
			assert.Nil(t, wb)
			require.Error(t, err)
			assert.NotEmpty(t, err.Error())
		})
	}
}

func TestReadWorkbookUnknownFormat(t *testing.T) {
	wb, err := readBytes(t, []byte("Name,Age\nAlice,30\n"))
	assert.Nil(t, wb)
	assert.ErrorIs(t, err, core.ErrUnknownFormat)

	_, err = readBytes(t, nil)
	assert.ErrorIs(t, err, core.ErrUnknownFormat)
}

func TestReadWorkbookCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewReader(nil).ReadWorkbook(ctx, buildXLSX(t, nil))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDetectFormat(t *testing.T) {
	format, err := DetectFormat([]byte{0x50, 0x4B, 0x03, 0x04, 0x00})
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, format)

	format, err = DetectFormat([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0x00})
	require.NoError(t, err)
	assert.Equal(t, FormatXLS, format)

	_, err = DetectFormat([]byte{0x50, 0x4B})
	assert.ErrorIs(t, err, core.ErrUnknownFormat)
}
