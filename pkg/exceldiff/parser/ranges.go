package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/exceldiff-go/pkg/exceldiff/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range string like $A$1:$D$10 or A1:D10 into an Area.
// A single cell reference yields a one-cell area. The corners may be given
// in any order.
func ParseRange(rangeStr string) (*models.Area, error) {
	// Remove $ signs
	cleaned := strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")
	if cleaned == "" {
		return nil, fmt.Errorf("empty range")
	}

	// Split by :
	parts := strings.Split(cleaned, ":")
	if len(parts) > 2 {
		return nil, fmt.Errorf("invalid range %q", rangeStr)
	}
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}

	return &models.Area{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}

// FormatRange returns the A1-style reference of an area, e.g. "A1:D10".
func FormatRange(area models.Area) string {
	if area.Empty() {
		return ""
	}
	start, err := excelize.CoordinatesToCellName(area.C1, area.R1)
	if err != nil {
		return area.String()
	}
	end, err := excelize.CoordinatesToCellName(area.C2, area.R2)
	if err != nil {
		return area.String()
	}
	return start + ":" + end
}
