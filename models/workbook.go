package models

import (
	"bytes"
	"encoding/json"
)

// CellKind identifies which variant a Cell holds
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellBool
)

// Cell is a single spreadsheet value: text, number, boolean or empty.
// Only the field matching Kind is meaningful.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Bool   bool
}

// EmptyCell returns a cell that serializes to null
func EmptyCell() Cell { return Cell{Kind: CellEmpty} }

// TextCell returns a text cell
func TextCell(s string) Cell { return Cell{Kind: CellText, Text: s} }

// NumberCell returns a numeric cell
func NumberCell(f float64) Cell { return Cell{Kind: CellNumber, Number: f} }

// BoolCell returns a boolean cell
func BoolCell(b bool) Cell { return Cell{Kind: CellBool, Bool: b} }

// IsEmpty reports whether the cell carries no value
func (c Cell) IsEmpty() bool { return c.Kind == CellEmpty }

// Value returns the cell as a plain Go value (string, float64, bool or nil)
func (c Cell) Value() interface{} {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return c.Number
	case CellBool:
		return c.Bool
	default:
		return nil
	}
}

// MarshalJSON encodes the cell as a JSON string, number, boolean or null
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Value())
}

// Field is one header/value pair of a Record
type Field struct {
	Header string
	Value  Cell
}

// Record is one data row keyed by header. Fields keep the header order of the sheet.
type Record struct {
	Fields []Field
}

// Get returns the value stored under header
func (r Record) Get(header string) (Cell, bool) {
	for _, f := range r.Fields {
		if f.Header == header {
			return f.Value, true
		}
	}
	return Cell{}, false
}

// MarshalJSON encodes the record as a JSON object whose keys follow header order
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Header)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := f.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Workbook is the parsed first sheet of an uploaded spreadsheet
type Workbook struct {
	Sheet   string   `json:"sheet"`
	Format  string   `json:"format"`
	Headers []string `json:"headers"`
	Records []Record `json:"data"`
}
