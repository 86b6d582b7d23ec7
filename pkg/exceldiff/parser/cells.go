package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/exceldiff-go/pkg/exceldiff/models"
	"github.com/xuri/excelize/v2"
)

// ExtractRows reads the typed cell values of a sheet.
// Rows are trimmed to the used range (the bounding box of non-empty cells),
// optionally restricted to limit, and every returned row has the same width.
// The returned area is the range actually read; it is empty when the sheet
// has no data inside the limit.
func ExtractRows(f *excelize.File, sheetName string, limit *models.Area) (models.Worksheet, models.Area, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, models.Area{}, err
	}

	bounds, ok := findDataBounds(rows)
	if !ok {
		return nil, models.Area{}, nil
	}
	if limit != nil {
		bounds = bounds.Intersect(*limit)
	}
	if bounds.Empty() {
		return nil, models.Area{}, nil
	}

	typer := newCellTyper(f, sheetName)
	result := make(models.Worksheet, 0, bounds.Rows())
	for rowNum := bounds.R1; rowNum <= bounds.R2; rowNum++ {
		row := make(models.Row, bounds.Cols())
		var raw []string
		if rowNum-1 < len(rows) {
			raw = rows[rowNum-1]
		}

		for colNum := bounds.C1; colNum <= bounds.C2 && colNum-1 < len(raw); colNum++ {
			cellValue := raw[colNum-1]
			if cellValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colNum, rowNum)
			if err != nil {
				return nil, models.Area{}, err
			}
			v, err := typer.value(cellName, cellValue)
			if err != nil {
				return nil, models.Area{}, err
			}
			row[colNum-bounds.C1] = v
		}

		result = append(result, row)
	}

	return result, bounds, nil
}

// cellTyper resolves the stored type of cells on one sheet.
type cellTyper struct {
	f     *excelize.File
	sheet string
	dates map[int]bool // style index -> uses a date/time number format
}

func newCellTyper(f *excelize.File, sheet string) *cellTyper {
	return &cellTyper{f: f, sheet: sheet, dates: make(map[int]bool)}
}

// value converts the raw text of a non-empty cell to a typed value.
func (t *cellTyper) value(cellName, raw string) (models.CellValue, error) {
	cellType, err := t.f.GetCellType(t.sheet, cellName)
	if err != nil {
		return models.CellValue{}, err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return models.BoolValue(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeError:
		return models.Empty(), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeDate:
		// Formula here means a cached string result; "d" cells hold ISO text.
		return models.StringValue(raw), nil
	}

	isDate, err := t.isDateCell(cellName)
	if err != nil {
		return models.CellValue{}, err
	}
	if isDate {
		if serial, err := strconv.ParseFloat(raw, 64); err == nil {
			return models.DateTimeValue(serial), nil
		}
	}
	return parseValue(raw), nil
}

// isDateCell reports whether the cell's number format renders a date or time.
func (t *cellTyper) isDateCell(cellName string) (bool, error) {
	styleID, err := t.f.GetCellStyle(t.sheet, cellName)
	if err != nil {
		return false, err
	}
	if isDate, ok := t.dates[styleID]; ok {
		return isDate, nil
	}

	style, err := t.f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	isDate := isDateNumFmt(style.NumFmt)
	if style.CustomNumFmt != nil {
		isDate = isDateFormatCode(*style.CustomNumFmt)
	}
	t.dates[styleID] = isDate
	return isDate, nil
}

// parseValue attempts to parse a string value as a number.
// Returns an Int for integers, a Float for decimals, or the original string.
func parseValue(s string) models.CellValue {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.IntValue(i)
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.FloatValue(f)
	}
	// Return as string
	return models.StringValue(s)
}
