package attacks

import (
	"testing"

	"laptudirm.com/x/gambit/pkg/board/bitboard"
	"laptudirm.com/x/gambit/pkg/board/square"
)

// The magic hash tables must agree with the slow ray-wise generators for
// every square and every permutation of the relevant blocker mask.

func TestRookTable(t *testing.T) {
	crossValidate(t, rookAttacks, Rook)
}

func TestBishopTable(t *testing.T) {
	crossValidate(t, bishopAttacks, Bishop)
}

func crossValidate(t *testing.T, slow magicMoveFunc, fast func(square.Square, bitboard.Board) bitboard.Board) {
	t.Helper()

	for s := square.A1; s <= square.H8; s++ {
		blockerMask := slow(s, bitboard.Empty, true)

		blockerMask.Subsets(func(blockers bitboard.Board) {
			want := slow(s, blockers, false)
			if got := fast(s, blockers); got != want {
				t.Errorf(
					"attacks from %s with blockers\n%sgot\n%swant\n%s",
					s, blockers, got, want,
				)
			}
		})
	}
}

type magicMoveFunc func(square.Square, bitboard.Board, bool) bitboard.Board

func TestNonSliderTables(t *testing.T) {
	// a pawn on the edge files only attacks a single square
	if Pawn[0][square.A4] != bitboard.Squares[square.B5] {
		t.Error("white pawn on a4 must attack only b5")
	}

	if Pawn[1][square.H5] != bitboard.Squares[square.G4] {
		t.Error("black pawn on h5 must attack only g4")
	}

	// cornered knights and kings have reduced attack sets
	if Knight[square.A1] != bitboard.Squares[square.B3]|bitboard.Squares[square.C2] {
		t.Error("knight on a1 must attack exactly b3 and c2")
	}

	if King[square.H8].Count() != 3 {
		t.Error("king on h8 must attack exactly 3 squares")
	}

	if Knight[square.D4].Count() != 8 || King[square.D4].Count() != 8 {
		t.Error("centralized knights and kings must attack 8 squares")
	}
}

func TestBetween(t *testing.T) {
	tests := []struct {
		a, b square.Square
		want bitboard.Board
	}{
		{square.A1, square.H8, bitboard.Diagonals[square.A1.Diagonal()] &^
			(bitboard.Squares[square.A1] | bitboard.Squares[square.H8])},
		{square.A1, square.A8, bitboard.FileA &^
			(bitboard.Squares[square.A1] | bitboard.Squares[square.A8])},
		{square.B4, square.G4, bitboard.Squares[square.C4] | bitboard.Squares[square.D4] |
			bitboard.Squares[square.E4] | bitboard.Squares[square.F4]},
		{square.E4, square.E5, bitboard.Empty}, // adjacent squares
		{square.A1, square.B3, bitboard.Empty}, // not collinear
	}

	for _, test := range tests {
		if got := Between[test.a][test.b]; got != test.want {
			t.Errorf("between %s and %s: got\n%swant\n%s", test.a, test.b, got, test.want)
		}
	}

	// between is symmetric in it's arguments
	for a := square.A1; a <= square.H8; a++ {
		for b := square.A1; b <= square.H8; b++ {
			if Between[a][b] != Between[b][a] {
				t.Fatalf("between %s and %s is not symmetric", a, b)
			}
		}
	}
}

func TestLine(t *testing.T) {
	if Line[square.C1][square.F4] != bitboard.Diagonals[square.C1.Diagonal()] {
		t.Error("line through c1 and f4 must be their full diagonal")
	}

	if Line[square.D2][square.D7] != bitboard.FileD {
		t.Error("line through d2 and d7 must be the full d-file")
	}

	if Line[square.A1][square.C2] != bitboard.Empty {
		t.Error("line through non-collinear squares must be empty")
	}

	// a line always contains both of it's defining squares
	for a := square.A1; a <= square.H8; a++ {
		for b := square.A1; b <= square.H8; b++ {
			line := Line[a][b]
			if line == bitboard.Empty {
				continue
			}

			if !line.IsSet(a) || !line.IsSet(b) {
				t.Fatalf("line through %s and %s misses an endpoint", a, b)
			}
		}
	}
}
