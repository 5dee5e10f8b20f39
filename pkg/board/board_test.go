package board_test

import (
	"testing"

	"laptudirm.com/x/gambit/internal/util"
	"laptudirm.com/x/gambit/pkg/board"
	"laptudirm.com/x/gambit/pkg/board/bitboard"
	"laptudirm.com/x/gambit/pkg/board/move/attacks"
	"laptudirm.com/x/gambit/pkg/board/piece"
	"laptudirm.com/x/gambit/pkg/board/square"
	"laptudirm.com/x/gambit/pkg/board/zobrist"
)

// scratchHash recomputes the zobrist hash of the given position from
// scratch. The board's incrementally maintained hash must always be
// equal to this value.
func scratchHash(b *board.Board) zobrist.Key {
	var hash zobrist.Key

	for s := square.A1; s <= square.H8; s++ {
		if p := b.Position[s]; p != piece.NoPiece {
			hash ^= zobrist.PieceSquare[p][s]
		}
	}

	if b.SideToMove == piece.Black {
		hash ^= zobrist.SideToMove
	}

	hash ^= zobrist.Castling[b.CastlingRights]

	if target := b.EnPassantTarget; target != square.None &&
		b.Pawns(b.SideToMove)&attacks.Pawn[b.SideToMove.Other()][target] != 0 {
		hash ^= zobrist.EnPassant[target.File()]
	}

	return hash
}

// verify checks the internal consistency of the given board: the piece
// bitboards must be disjoint and agree with the color bitboards and the
// mailbox, the check and pin information must be sane, and the hash must
// equal the from-scratch computation.
func verify(t *testing.T, b *board.Board) {
	t.Helper()

	var pieceUnion bitboard.Board
	for pt := piece.Pawn; pt <= piece.King; pt++ {
		if pieceUnion&b.PieceBBs[pt] != bitboard.Empty {
			t.Fatalf("piece bitboards are not disjoint\nfen: %s", b.FEN())
		}
		pieceUnion |= b.PieceBBs[pt]
	}

	if pieceUnion != b.Occupied() {
		t.Fatalf("piece bitboards don't match the occupancy\nfen: %s", b.FEN())
	}

	for s := square.A1; s <= square.H8; s++ {
		p := b.Position[s]

		switch {
		case p == piece.NoPiece && b.Occupied().IsSet(s):
			t.Fatalf("mailbox disagrees with bitboards on empty %s\nfen: %s", s, b.FEN())
		case p != piece.NoPiece &&
			b.PieceBBs[p.Type()]&b.ColorBBs[p.Color()]&bitboard.Squares[s] == bitboard.Empty:
			t.Fatalf("mailbox disagrees with bitboards on %s\nfen: %s", s, b.FEN())
		}
	}

	for c := piece.White; c <= piece.Black; c++ {
		if b.King(c).Count() != 1 {
			t.Fatalf("%s does not have exactly one king\nfen: %s", c, b.FEN())
		}
	}

	us := b.SideToMove
	them := us.Other()

	if b.CheckN < 0 || b.CheckN > 2 {
		t.Fatalf("impossible checker count %d\nfen: %s", b.CheckN, b.FEN())
	}

	if b.Checkers.Count() != b.CheckN || b.Checkers&^b.ColorBBs[them] != bitboard.Empty {
		t.Fatalf("checkers bitboard is inconsistent\nfen: %s", b.FEN())
	}

	if b.Pinned()&^b.ColorBBs[us] != bitboard.Empty {
		t.Fatalf("pinned bitboard contains enemy pieces\nfen: %s", b.FEN())
	}

	if b.Hash != scratchHash(b) {
		t.Fatalf("incremental hash diverged from scratch computation\nfen: %s", b.FEN())
	}
}

// TestBoardInvariants plays out deterministic pseudo-random games and
// checks every invariant of the board representation after each move.
func TestBoardInvariants(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	}

	var rng util.PRNG
	rng.Seed(70026)

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			for game := 0; game < 8; game++ {
				b := board.New(fen)
				verify(t, b)

				for ply := 0; ply < 60; ply++ {
					moves := b.GenerateMoves()
					if len(moves) == 0 {
						break
					}

					// no generated move may capture the enemy king
					for _, m := range moves {
						if m.Target() == b.Kings[b.SideToMove.Other()] {
							t.Fatalf("move %s captures the king\nfen: %s", m, b.FEN())
						}
					}

					b.MakeMove(moves[rng.Uint64()%uint64(len(moves))])
					verify(t, b)
				}
			}
		})
	}
}

// TestCloneEquivalence checks that boards are plain values: applying the
// same move to two copies of a position yields identical boards.
func TestCloneEquivalence(t *testing.T) {
	b := board.New(board.StartFEN)

	var rng util.PRNG
	rng.Seed(561275)

	for ply := 0; ply < 40; ply++ {
		moves := b.GenerateMoves()
		if len(moves) == 0 {
			break
		}

		m := moves[rng.Uint64()%uint64(len(moves))]

		clone1, clone2 := *b, *b
		clone1.MakeMove(m)
		clone2.MakeMove(m)

		if clone1 != clone2 {
			t.Fatalf("identical applications diverged after %s\nfen: %s", m, b.FEN())
		}

		*b = clone1
	}
}

// TestTranspositionHash checks that different move orders reaching the
// same position produce the same hash.
func TestTranspositionHash(t *testing.T) {
	lines := [][]string{
		{"g1f3", "g8f6", "b1c3", "b8c6"},
		{"b1c3", "b8c6", "g1f3", "g8f6"},
	}

	var hashes [2]zobrist.Key
	for i, line := range lines {
		b := board.New(board.StartFEN)
		for _, m := range line {
			b.MakeMove(b.NewMoveFromString(m))
		}
		hashes[i] = b.Hash
	}

	if hashes[0] != hashes[1] {
		t.Error("transposed move orders produced different hashes")
	}

	// returning the knights home restores the starting hash
	b := board.New(board.StartFEN)
	for _, m := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
		b.MakeMove(b.NewMoveFromString(m))
	}

	if b.Hash != board.New(board.StartFEN).Hash {
		t.Error("returning to the starting position changed the hash")
	}
}

// TestCastlingRightRevocation checks that moving or capturing a rook or
// moving the king permanently revokes the affected rights.
func TestCastlingRightRevocation(t *testing.T) {
	b := board.New("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	// moving the a1 rook revokes white's queen-side right
	c := *b
	c.MakeMove(c.NewMoveFromString("a1a2"))
	if c.CastlingRights.String() != "Kkq" {
		t.Errorf("rights after a1a2 are %s, expected Kkq", c.CastlingRights)
	}

	// moving the white king revokes both of white's rights
	c = *b
	c.MakeMove(c.NewMoveFromString("e1e2"))
	if c.CastlingRights.String() != "kq" {
		t.Errorf("rights after e1e2 are %s, expected kq", c.CastlingRights)
	}

	// capturing the h8 rook revokes black's king-side right
	c = *b
	c.MakeMove(c.NewMoveFromString("h1h8"))
	if c.CastlingRights.String() != "Qq" {
		t.Errorf("rights after h1xh8 are %s, expected Qq", c.CastlingRights)
	}
}

// TestCastlingApplication checks that applying a castling move also
// relocates the correct rook.
func TestCastlingApplication(t *testing.T) {
	b := board.New("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	b.MakeMove(b.NewMoveFromString("e1g1"))
	if b.PieceAt(square.F1) != piece.WhiteRook || b.PieceAt(square.G1) != piece.WhiteKing {
		t.Errorf("wrong position after white king-side castle\n%s", b)
	}

	b.MakeMove(b.NewMoveFromString("e8c8"))
	if b.PieceAt(square.D8) != piece.BlackRook || b.PieceAt(square.C8) != piece.BlackKing {
		t.Errorf("wrong position after black queen-side castle\n%s", b)
	}

	verify(t, b)
}

// TestEnPassantApplication checks that an en passant capture removes the
// captured pawn from it's actual square.
func TestEnPassantApplication(t *testing.T) {
	b := board.New("4k3/8/8/8/2p5/8/3P4/4K3 w - - 0 1")

	b.MakeMove(b.NewMoveFromString("d2d4"))
	if b.EnPassantTarget != square.D3 {
		t.Fatalf("en passant target is %s, expected d3", b.EnPassantTarget)
	}

	b.MakeMove(b.NewMoveFromString("c4d3"))
	if b.PieceAt(square.D4) != piece.NoPiece {
		t.Error("captured pawn still on d4 after en passant")
	}
	if b.PieceAt(square.D3) != piece.BlackPawn {
		t.Error("capturing pawn did not land on d3")
	}

	verify(t, b)
}
