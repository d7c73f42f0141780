package chess

import (
	"fmt"

	"github.com/iamasit07/arcade/backend/internal/domain"
)

type Move struct {
	From      domain.Position
	To        domain.Position
	Captured  Piece
	Promotion Kind
}

func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// Notation is the long algebraic form used by UCI: "e2e4", "e7e8q".
func (m Move) Notation() string {
	s := domain.SquareName(m.From) + domain.SquareName(m.To)
	if letter, ok := kindLetters[m.Promotion]; ok {
		s += string(letter)
	}
	return s
}

// ParseMove reads long algebraic notation. The promotion letter is optional
// and only queen promotion exists, so it is not returned.
func ParseMove(s string) (from, to domain.Position, err error) {
	if len(s) != 4 && len(s) != 5 {
		return from, to, fmt.Errorf("invalid move %q", s)
	}
	if from, err = domain.ParseSquare(s[0:2]); err != nil {
		return from, to, err
	}
	if to, err = domain.ParseSquare(s[2:4]); err != nil {
		return from, to, err
	}
	return from, to, nil
}

var (
	knightJumps = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingSteps   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	rookDirs    = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// pawnDir is the row direction color's pawns advance in.
func pawnDir(color domain.Side) int {
	if color == White {
		return -1
	}
	return 1
}

func pawnStartRow(color domain.Side) int {
	if color == White {
		return BoardSize - 2
	}
	return 1
}

func lastRow(color domain.Side) int {
	if color == White {
		return 0
	}
	return BoardSize - 1
}

// PseudoLegalMoves generates moves by piece movement alone, ignoring whether
// the mover's king is left in check.
func PseudoLegalMoves(b Board, player domain.Side) []Move {
	var moves []Move
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if p := b[r][c]; !p.IsEmpty() && p.Color == player {
				moves = pieceMoves(b, domain.Position{Row: r, Col: c}, p, moves)
			}
		}
	}
	return moves
}

func pieceMoves(b Board, from domain.Position, p Piece, moves []Move) []Move {
	switch p.Kind {
	case Pawn:
		return pawnMoves(b, from, p.Color, moves)
	case Knight:
		return stepMoves(b, from, p.Color, knightJumps, moves)
	case King:
		return stepMoves(b, from, p.Color, kingSteps, moves)
	case Bishop:
		return slideMoves(b, from, p.Color, bishopDirs, moves)
	case Rook:
		return slideMoves(b, from, p.Color, rookDirs, moves)
	case Queen:
		moves = slideMoves(b, from, p.Color, rookDirs, moves)
		return slideMoves(b, from, p.Color, bishopDirs, moves)
	}
	return moves
}

func pawnMoves(b Board, from domain.Position, color domain.Side, moves []Move) []Move {
	dir := pawnDir(color)
	add := func(to domain.Position, captured Piece) {
		m := Move{From: from, To: to, Captured: captured}
		if to.Row == lastRow(color) {
			m.Promotion = Queen
		}
		moves = append(moves, m)
	}

	one := from.Add(dir, 0)
	if inBounds(one) && b.At(one).IsEmpty() {
		add(one, Piece{})
		two := from.Add(2*dir, 0)
		if from.Row == pawnStartRow(color) && b.At(two).IsEmpty() {
			add(two, Piece{})
		}
	}
	for _, dc := range []int{-1, 1} {
		to := from.Add(dir, dc)
		if !inBounds(to) {
			continue
		}
		if target := b.At(to); !target.IsEmpty() && target.Color != color {
			add(to, target)
		}
	}
	return moves
}

func stepMoves(b Board, from domain.Position, color domain.Side, offsets [][2]int, moves []Move) []Move {
	for _, o := range offsets {
		to := from.Add(o[0], o[1])
		if !inBounds(to) {
			continue
		}
		target := b.At(to)
		if target.IsEmpty() || target.Color != color {
			moves = append(moves, Move{From: from, To: to, Captured: target})
		}
	}
	return moves
}

func slideMoves(b Board, from domain.Position, color domain.Side, dirs [][2]int, moves []Move) []Move {
	for _, d := range dirs {
		for to := from.Add(d[0], d[1]); inBounds(to); to = to.Add(d[0], d[1]) {
			target := b.At(to)
			if target.IsEmpty() {
				moves = append(moves, Move{From: from, To: to})
				continue
			}
			if target.Color != color {
				moves = append(moves, Move{From: from, To: to, Captured: target})
			}
			break
		}
	}
	return moves
}

// Attacked reports whether any piece of color by attacks sq.
func Attacked(b Board, sq domain.Position, by domain.Side) bool {
	// pawns of by attack diagonally forward, so look one row behind sq
	pr := sq.Row - pawnDir(by)
	for _, dc := range []int{-1, 1} {
		p := domain.Position{Row: pr, Col: sq.Col + dc}
		if inBounds(p) && b.At(p) == (Piece{Color: by, Kind: Pawn}) {
			return true
		}
	}
	if attackedByStep(b, sq, by, knightJumps, Knight) || attackedByStep(b, sq, by, kingSteps, King) {
		return true
	}
	return attackedBySlide(b, sq, by, rookDirs, Rook) || attackedBySlide(b, sq, by, bishopDirs, Bishop)
}

func attackedByStep(b Board, sq domain.Position, by domain.Side, offsets [][2]int, kind Kind) bool {
	for _, o := range offsets {
		p := sq.Add(o[0], o[1])
		if inBounds(p) && b.At(p) == (Piece{Color: by, Kind: kind}) {
			return true
		}
	}
	return false
}

// attackedBySlide also matches queens, which slide along both kinds of line.
func attackedBySlide(b Board, sq domain.Position, by domain.Side, dirs [][2]int, kind Kind) bool {
	for _, d := range dirs {
		for p := sq.Add(d[0], d[1]); inBounds(p); p = p.Add(d[0], d[1]) {
			target := b.At(p)
			if target.IsEmpty() {
				continue
			}
			if target.Color == by && (target.Kind == kind || target.Kind == Queen) {
				return true
			}
			break
		}
	}
	return false
}

// InCheck reports whether color's king is attacked. A board without that king
// is never in check.
func InCheck(b Board, color domain.Side) bool {
	king, ok := FindKing(b, color)
	if !ok {
		return false
	}
	return Attacked(b, king, color.Opponent())
}

// LegalMoves is PseudoLegalMoves minus the moves that leave the mover's own
// king attacked.
func LegalMoves(b Board, player domain.Side) []Move {
	pseudo := PseudoLegalMoves(b, player)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if !InCheck(ApplyMove(b, m, player), player) {
			legal = append(legal, m)
		}
	}
	return legal
}

// ApplyMove moves the piece, replacing whatever stood on the target square,
// and promotes a pawn reaching the last row.
func ApplyMove(b Board, move Move, player domain.Side) Board {
	piece := b.At(move.From)
	if piece.IsEmpty() || piece.Color != player {
		panic(domain.ErrInvalidMove)
	}
	b[move.From.Row][move.From.Col] = Piece{}
	if move.Promotion != NoKind {
		piece.Kind = move.Promotion
	} else if piece.Kind == Pawn && move.To.Row == lastRow(player) {
		piece.Kind = Queen
	}
	b[move.To.Row][move.To.Col] = piece
	return b
}
