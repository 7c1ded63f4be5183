package excel

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"sheetdesk/models"
)

// Built-in number format IDs that display a date or a time of day
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

const secondsPerDay = 24 * 60 * 60

// dateStyles answers whether a cell's style renders its number as a date.
// Results are cached per style index.
type dateStyles struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	byStyle  map[int]bool
}

func newDateStyles(f *excelize.File, sheet string) (*dateStyles, error) {
	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, err
	}
	return &dateStyles{
		f:        f,
		sheet:    sheet,
		date1904: props.Date1904 != nil && *props.Date1904,
		byStyle:  make(map[int]bool),
	}, nil
}

func (d *dateStyles) isDate(ref string) (bool, error) {
	idx, err := d.f.GetCellStyle(d.sheet, ref)
	if err != nil {
		return false, err
	}
	if idx == 0 {
		return false, nil
	}
	if known, ok := d.byStyle[idx]; ok {
		return known, nil
	}

	isDate := false
	// an unreadable style leaves the value numeric
	if style, err := d.f.GetStyle(idx); err == nil && style != nil {
		isDate = builtInDateFormats[style.NumFmt]
		if !isDate && style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		}
	}
	d.byStyle[idx] = isDate
	return isDate, nil
}

// isDateFormatCode reports whether a custom number format contains date or time
// tokens outside of quoted literals, escapes and bracketed sections.
func isDateFormatCode(code string) bool {
	// only the positive section decides
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}
	for i := 0; i < len(code); i++ {
		switch c := code[i]; c {
		case '"':
			end := strings.IndexByte(code[i+1:], '"')
			if end < 0 {
				return false
			}
			i += end + 1
		case '\\', '_', '*':
			i++
		case '[':
			end := strings.IndexByte(code[i+1:], ']')
			if end < 0 {
				return false
			}
			// elapsed time such as [h]:mm
			switch strings.ToLower(code[i+1 : i+1+end]) {
			case "h", "hh", "m", "mm", "s", "ss":
				return true
			}
			i += end + 1
		case 'y', 'Y', 'm', 'M', 'd', 'D', 'h', 'H', 's', 'S':
			return true
		}
	}
	return false
}

// dateCell renders an Excel serial the way a JSON API reports datetimes: as an
// HTTP date, or as a clock time when the serial has no date part.
func dateCell(raw string, date1904 bool) (models.Cell, bool) {
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.Cell{}, false
	}
	if serial >= 0 && serial < 1 {
		clock := time.Duration(math.Round(serial*secondsPerDay)) * time.Second
		return models.TextCell(time.Time{}.Add(clock).Format("15:04:05")), true
	}
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return models.Cell{}, false
	}
	return models.TextCell(t.UTC().Format(http.TimeFormat)), true
}
