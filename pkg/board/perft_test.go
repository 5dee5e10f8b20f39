package board_test

import (
	"testing"

	"laptudirm.com/x/gambit/pkg/board"
)

// shortLimit is the largest node count which is still verified when
// running the tests in short mode.
const shortLimit = 1_000_000

// the expected node counts are exact, taken from
// https://www.chessprogramming.org/Perft_Results
var perftTests = []struct {
	name  string
	fen   string
	nodes []uint64 // nodes[d] is the node count at depth d+1
}{
	{
		name:  "startpos",
		fen:   board.StartFEN,
		nodes: []uint64{20, 400, 8_902, 197_281, 4_865_609, 119_060_324},
	},
	{
		name:  "kiwipete",
		fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		nodes: []uint64{48, 2_039, 97_862, 4_085_603, 193_690_690},
	},
	{
		name:  "endgame",
		fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		nodes: []uint64{14, 191, 2_812, 43_238, 674_624, 11_030_083},
	},
	{
		name:  "promotions",
		fen:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		nodes: []uint64{6, 264, 9_467, 422_333, 15_833_292},
	},
	{
		name:  "promotions-mirrored",
		fen:   "r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1",
		nodes: []uint64{6, 264, 9_467, 422_333},
	},
	{
		name:  "talkchess",
		fen:   "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		nodes: []uint64{44, 1_486, 62_379, 2_103_487, 89_941_194},
	},
}

func TestPerft(t *testing.T) {
	for _, test := range perftTests {
		t.Run(test.name, func(t *testing.T) {
			b := board.New(test.fen)

			for d, want := range test.nodes {
				depth := d + 1

				if testing.Short() && want > shortLimit {
					t.Skipf("skipping depth %d and beyond in short mode", depth)
				}

				if nodes := b.Perft(depth); nodes != want {
					t.Errorf("depth %d: %d nodes, expected %d", depth, nodes, want)
				}
			}
		})
	}
}

func BenchmarkPerft(b *testing.B) {
	pos := board.New(board.StartFEN)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pos.Perft(4)
	}
}

func BenchmarkGenerateMoves(b *testing.B) {
	pos := board.New("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pos.GenerateMoves()
	}
}
