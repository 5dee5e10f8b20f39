// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package zobrist provides random keys for hashing chess positions.
// https://www.chessprogramming.org/Zobrist_Hashing
//
// The keys are generated from a fixed seed, so the hash of a position is
// reproducible across runs and processes.
package zobrist

import (
	"laptudirm.com/x/gambit/internal/util"
	"laptudirm.com/x/gambit/pkg/board/move/castling"
	"laptudirm.com/x/gambit/pkg/board/piece"
	"laptudirm.com/x/gambit/pkg/board/square"
)

// Key represents a zobrist key or a zobrist hash.
type Key uint64

// PieceSquare contains keys for every piece-square pair. It is xor-ed
// into the hash whenever a piece is put into or removed from a square.
var PieceSquare [piece.N][square.N]Key

// EnPassant contains keys for every en-passant file. It is xor-ed into
// the hash only when a pawn may actually be captured en passant on that
// file in the current position.
var EnPassant [square.FileN]Key

// Castling contains keys for every possible set of castling rights.
var Castling [castling.N]Key

// SideToMove is xor-ed into the hash whenever it is black's turn.
var SideToMove Key

func init() {
	var rng util.PRNG
	rng.Seed(1070372) // seed used from Stockfish

	// piece square numbers
	for p := 0; p < piece.N; p++ {
		for s := square.A1; s <= square.H8; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	// en passant file numbers
	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	// castling right numbers
	for r := castling.NoCasl; r <= castling.All; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	// black to move number
	SideToMove = Key(rng.Uint64())
}
