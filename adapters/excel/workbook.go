package excel

import (
	"fmt"
	"strconv"

	"sheetdesk/models"
)

// buildWorkbook turns the raw sheet into headers and records. The first non-blank
// row supplies the headers; fully blank data rows are dropped.
func buildWorkbook(sheet *rawSheet) *models.Workbook {
	wb := &models.Workbook{
		Sheet:   sheet.Name,
		Headers: []string{},
		Records: []models.Record{},
	}

	rows := make([][]models.Cell, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		if row = trimRow(row); len(row) > 0 {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return wb
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	wb.Headers = headerNames(rows[0], width)
	for _, row := range rows[1:] {
		fields := make([]models.Field, width)
		for i, header := range wb.Headers {
			value := models.EmptyCell()
			if i < len(row) {
				value = row[i]
			}
			fields[i] = models.Field{Header: header, Value: value}
		}
		wb.Records = append(wb.Records, models.Record{Fields: fields})
	}
	return wb
}

// trimRow drops trailing empty cells; a blank row becomes nil
func trimRow(row []models.Cell) []models.Cell {
	end := len(row)
	for end > 0 && row[end-1].IsEmpty() {
		end--
	}
	if end == 0 {
		return nil
	}
	return row[:end]
}

// headerNames renders the header row as unique strings. Blank headers become
// "Unnamed: <index>". A repeated name gets the next ".N" suffix that no other
// header in the row already uses.
func headerNames(row []models.Cell, width int) []string {
	names := make([]string, width)
	used := make(map[string]bool, width)
	for i := range names {
		if i < len(row) && !row[i].IsEmpty() {
			names[i] = headerText(row[i])
		} else {
			names[i] = fmt.Sprintf("Unnamed: %d", i)
		}
		used[names[i]] = true
	}

	seen := make(map[string]bool, width)
	counts := make(map[string]int, width)
	for i, name := range names {
		if !seen[name] {
			seen[name] = true
			continue
		}
		n := counts[name]
		candidate := name
		for used[candidate] {
			n++
			candidate = fmt.Sprintf("%s.%d", name, n)
		}
		counts[name] = n
		used[candidate] = true
		seen[candidate] = true
		names[i] = candidate
	}
	return names
}

func headerText(cell models.Cell) string {
	switch cell.Kind {
	case models.CellNumber:
		return strconv.FormatFloat(cell.Number, 'f', -1, 64)
	case models.CellBool:
		return strconv.FormatBool(cell.Bool)
	default:
		return cell.Text
	}
}
