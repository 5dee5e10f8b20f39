package bitboard_test

import (
	"testing"

	"laptudirm.com/x/gambit/pkg/board/bitboard"
	"laptudirm.com/x/gambit/pkg/board/piece"
	"laptudirm.com/x/gambit/pkg/board/square"
)

func TestShiftEdgeMasking(t *testing.T) {
	tests := []struct {
		name string
		from bitboard.Board
		want bitboard.Board
		move func(bitboard.Board) bitboard.Board
	}{
		{"east drops h-file", bitboard.FileH, bitboard.Empty, bitboard.Board.East},
		{"west drops a-file", bitboard.FileA, bitboard.Empty, bitboard.Board.West},
		{"north drops rank 8", bitboard.Rank8, bitboard.Empty, bitboard.Board.North},
		{"south drops rank 1", bitboard.Rank1, bitboard.Empty, bitboard.Board.South},
		{"east moves files", bitboard.FileB, bitboard.FileC, bitboard.Board.East},
		{"west moves files", bitboard.FileB, bitboard.FileA, bitboard.Board.West},
		{"north moves ranks", bitboard.Rank4, bitboard.Rank5, bitboard.Board.North},
		{"south moves ranks", bitboard.Rank4, bitboard.Rank3, bitboard.Board.South},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.move(test.from); got != test.want {
				t.Errorf("got\n%swant\n%s", got, test.want)
			}
		})
	}

	// shifting the empty board anywhere keeps it empty
	if bitboard.Empty.North() != bitboard.Empty ||
		bitboard.Empty.South() != bitboard.Empty ||
		bitboard.Empty.East() != bitboard.Empty ||
		bitboard.Empty.West() != bitboard.Empty {
		t.Error("shifting the empty board is not empty")
	}
}

func TestUpDown(t *testing.T) {
	e4 := bitboard.Squares[square.E4]

	if e4.Up(piece.White) != bitboard.Squares[square.E5] {
		t.Error("white up is not towards the 8th rank")
	}

	if e4.Up(piece.Black) != bitboard.Squares[square.E3] {
		t.Error("black up is not towards the 1st rank")
	}

	if e4.Down(piece.White) != e4.Up(piece.Black) {
		t.Error("white down is not black up")
	}
}

func TestSmearUp(t *testing.T) {
	b := bitboard.Squares[square.E3] | bitboard.Squares[square.A7]

	want := b | bitboard.Squares[square.E4] | bitboard.Squares[square.A8]
	if got := b.SmearUp(piece.White); got != want {
		t.Errorf("white smear: got\n%swant\n%s", got, want)
	}

	want = b | bitboard.Squares[square.E2] | bitboard.Squares[square.A6]
	if got := b.SmearUp(piece.Black); got != want {
		t.Errorf("black smear: got\n%swant\n%s", got, want)
	}
}

func TestSubsets(t *testing.T) {
	mask := bitboard.Squares[square.A1] | bitboard.Squares[square.D4] |
		bitboard.Squares[square.D5] | bitboard.Squares[square.H8]

	seen := make(map[bitboard.Board]bool)
	mask.Subsets(func(subset bitboard.Board) {
		if subset&^mask != bitboard.Empty {
			t.Errorf("enumerated %v which is not a subset", subset)
		}

		if seen[subset] {
			t.Errorf("enumerated %v twice", subset)
		}
		seen[subset] = true
	})

	// a set with n elements has 2^n subsets
	if len(seen) != 1<<mask.Count() {
		t.Errorf("enumerated %d subsets, expected %d", len(seen), 1<<mask.Count())
	}

	if !seen[bitboard.Empty] || !seen[mask] {
		t.Error("empty set or full set missing from enumeration")
	}
}

func TestFlips(t *testing.T) {
	if bitboard.Rank1.FlipVertical() != bitboard.Rank8 {
		t.Error("vertical flip of rank 1 is not rank 8")
	}

	if bitboard.FileA.FlipHorizontal() != bitboard.FileH {
		t.Error("horizontal flip of the a-file is not the h-file")
	}

	// both flips are involutions
	b := bitboard.Squares[square.C2] | bitboard.Squares[square.F7] | bitboard.Squares[square.H3]
	if b.FlipVertical().FlipVertical() != b || b.FlipHorizontal().FlipHorizontal() != b {
		t.Error("flipping twice does not restore the original board")
	}

	if got := bitboard.Squares[square.C2].FlipVertical(); got != bitboard.Squares[square.C7] {
		t.Errorf("vertical flip of c2 is %s, not c7", got.FirstOne())
	}

	if got := bitboard.Squares[square.C2].FlipHorizontal(); got != bitboard.Squares[square.F2] {
		t.Errorf("horizontal flip of c2 is %s, not f2", got.FirstOne())
	}
}

func TestPop(t *testing.T) {
	b := bitboard.Squares[square.B1] | bitboard.Squares[square.G5]

	if s := b.Pop(); s != square.B1 {
		t.Errorf("first pop gave %s, expected b1", s)
	}

	if s := b.Pop(); s != square.G5 {
		t.Errorf("second pop gave %s, expected g5", s)
	}

	if b != bitboard.Empty {
		t.Error("board is not empty after popping every square")
	}
}
