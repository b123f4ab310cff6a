package menu

import (
	"fmt"
	"strings"
)

// Pattern marks grid cells row by row; true cells receive the fill kind.
type Pattern [][]bool

// ParsePattern reads one string per row. '1' and '#' mark a cell, '0', '.'
// and ' ' leave it untouched. Rows must be exactly Columns wide.
func ParsePattern(rows []string) (Pattern, error) {
	pattern := make(Pattern, 0, len(rows))
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != Columns {
			return nil, fmt.Errorf("pattern row %d has %d columns, want %d: %w", r, len(runes), Columns, ErrDimensionMismatch)
		}
		row := make([]bool, Columns)
		for c, ch := range runes {
			switch ch {
			case '1', '#':
				row[c] = true
			case '0', '.', ' ':
			default:
				return nil, fmt.Errorf("pattern row %d: unexpected %q: %w", r, ch, ErrInvalidArgument)
			}
		}
		pattern = append(pattern, row)
	}
	return pattern, nil
}

// FramePattern marks the outer ring of a rows x Columns grid.
func FramePattern(rows int) Pattern {
	pattern := make(Pattern, rows)
	for r := range pattern {
		row := make([]bool, Columns)
		for c := range row {
			row[c] = r == 0 || r == rows-1 || c == 0 || c == Columns-1
		}
		pattern[r] = row
	}
	return pattern
}

func (p Pattern) fits(rows int) error {
	if len(p) != rows {
		return fmt.Errorf("pattern has %d rows, page has %d: %w", len(p), rows, ErrDimensionMismatch)
	}
	for r, row := range p {
		if len(row) != Columns {
			return fmt.Errorf("pattern row %d has %d columns, want %d: %w", r, len(row), Columns, ErrDimensionMismatch)
		}
	}
	return nil
}

// String renders the pattern with '#' and '.'.
func (p Pattern) String() string {
	var b strings.Builder
	for r, row := range p {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, on := range row {
			if on {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
