package domain

import "fmt"

// SquareName renders a position of an 8x8 board in algebraic form.
// Row 0 is rank 8, column 0 is file a.
func SquareName(p Position) string {
	return fmt.Sprintf("%c%d", 'a'+p.Col, 8-p.Row)
}

// ParseSquare is the inverse of SquareName.
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Position{}, fmt.Errorf("invalid square %q", s)
	}
	return Position{Row: int('8' - s[1]), Col: int(s[0] - 'a')}, nil
}
