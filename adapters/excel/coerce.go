package excel

import (
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"sheetdesk/models"
)

// coerceText converts an untyped cell string into a typed cell.
// Numeric is tried first, then boolean, then the value is kept as text.
func coerceText(s string) models.Cell {
	if s == "" {
		return models.EmptyCell()
	}
	if cell, ok := tryParseNumeric(s); ok {
		return cell
	}
	switch s {
	case "TRUE":
		return models.BoolCell(true)
	case "FALSE":
		return models.BoolCell(false)
	}
	return models.TextCell(s)
}

func tryParseNumeric(s string) (models.Cell, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return models.Cell{}, false
	}
	return models.NumberCell(f), true
}

// xlsxCell converts a raw OOXML cell value using the cell's declared type.
// Numeric cells carry no type attribute, so CellTypeUnset is treated as numeric.
func xlsxCell(cellType excelize.CellType, raw string) models.Cell {
	if raw == "" {
		return models.EmptyCell()
	}

	switch cellType {
	case excelize.CellTypeBool:
		switch {
		case raw == "1" || strings.EqualFold(raw, "TRUE"):
			return models.BoolCell(true)
		case raw == "0" || strings.EqualFold(raw, "FALSE"):
			return models.BoolCell(false)
		}
		return models.TextCell(raw)
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if cell, ok := tryParseNumeric(raw); ok {
			return cell
		}
		return models.TextCell(raw)
	default:
		return models.TextCell(raw)
	}
}
