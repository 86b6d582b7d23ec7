package parser

import "strings"

// isDateNumFmt reports whether a built-in number format id is a date or
// time format. Ids 27-36 and 50-58 are locale dependent date formats.
func isDateNumFmt(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom number format code contains date
// or time tokens. Quoted literals, escaped characters and bracketed sections
// such as colors or locales are ignored; elapsed time sections ([h], [mm],
// [ss]) count as time tokens.
func isDateFormatCode(code string) bool {
	// Only the first (positive) section decides.
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}

	for i := 0; i < len(code); i++ {
		switch code[i] {
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
			if isElapsedToken(code[i+1 : i+1+end]) {
				return true
			}
			i += end + 1
		case 'y', 'Y', 'm', 'M', 'd', 'D', 'h', 'H', 's', 'S':
			return true
		}
	}
	return false
}

func isElapsedToken(s string) bool {
	if s == "" {
		return false
	}
	first := s[0] | 0x20
	if first != 'h' && first != 'm' && first != 's' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i]|0x20 != first {
			return false
		}
	}
	return true
}
