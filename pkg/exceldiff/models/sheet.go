package models

// Sheet represents the typed contents of a single worksheet.
type Sheet struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Name is the sheet name.
	Name string `json:"name"`
	// Origin is the range the rows were read from; empty when the sheet has no data.
	Origin Area `json:"origin"`
	// Rows contains the rectangular cell values of Origin.
	Rows Worksheet `json:"rows,omitempty"`
}
