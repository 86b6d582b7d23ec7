package output

import "github.com/xuri/excelize/v2"

type fillKind int

const (
	fillNone fillKind = iota
	fillRemoved
	fillAdded
)

// styleKey identifies a combination of formatting applied to a cell.
type styleKey struct {
	fill     fillKind
	changed  bool
	dateTime bool
}

// styleSet lazily registers styles with the workbook.
type styleSet struct {
	f   *excelize.File
	ids map[styleKey]int
}

func newStyleSet(f *excelize.File) *styleSet {
	return &styleSet{f: f, ids: map[styleKey]int{{}: 0}}
}

func (s *styleSet) get(key styleKey) (int, error) {
	if id, ok := s.ids[key]; ok {
		return id, nil
	}
	id, err := s.f.NewStyle(key.style())
	if err != nil {
		return 0, err
	}
	s.ids[key] = id
	return id, nil
}

func (k styleKey) style() *excelize.Style {
	style := &excelize.Style{}
	if k.changed {
		style.Font = &excelize.Font{Color: modifiedFontColor}
	}
	switch k.fill {
	case fillRemoved:
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{removedFillColor}}
	case fillAdded:
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{addedFillColor}}
	}
	if k.dateTime {
		format := dateTimeFormat
		style.CustomNumFmt = &format
	}
	return style
}
