package exceldiff

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ukaji3/exceldiff-go/pkg/exceldiff/models"
	"github.com/ukaji3/exceldiff-go/pkg/exceldiff/parser"
	"github.com/xuri/excelize/v2"
)

// Supports reports whether path names a workbook this package can read.
func Supports(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

// SheetNames returns the sheet names of a workbook in workbook order.
func SheetNames(path string) ([]string, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

// ReadSheet reads the typed rows of one sheet of a workbook.
func ReadSheet(path string, opts ReadOptions) (*models.Sheet, error) {
	var limit *models.Area
	if opts.Range != "" {
		area, err := parser.ParseRange(opts.Range)
		if err != nil {
			return nil, NewReadError(path, opts.SheetName, err)
		}
		limit = area
	}

	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName, err := resolveSheet(f, opts.SheetName)
	if err != nil {
		return nil, NewReadError(path, opts.SheetName, err)
	}

	rows, area, err := parser.ExtractRows(f, sheetName, limit)
	if err != nil {
		return nil, NewReadError(path, sheetName, err)
	}

	slog.Debug("sheet read",
		"path", path,
		"sheet", sheetName,
		"range", parser.FormatRange(area),
		"rows", len(rows),
	)

	return &models.Sheet{
		BookName: filepath.Base(path),
		Name:     sheetName,
		Origin:   area,
		Rows:     rows,
	}, nil
}

func openWorkbook(path string) (*excelize.File, error) {
	if !Supports(path) {
		return nil, NewReadError(path, "", ErrUnsupportedFormat)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewReadError(path, "", ErrFileNotFound)
		}
		return nil, NewReadError(path, "", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewReadError(path, "", fmt.Errorf("open workbook: %w", err))
	}
	return f, nil
}

// resolveSheet returns the requested sheet name, or the first sheet when
// name is empty.
func resolveSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if name == "" {
		if len(sheets) == 0 {
			return "", ErrNoSheets
		}
		return sheets[0], nil
	}
	if !slices.Contains(sheets, name) {
		return "", fmt.Errorf("%w: %q (available: %s)", ErrSheetNotFound, name, strings.Join(sheets, ", "))
	}
	return name, nil
}
