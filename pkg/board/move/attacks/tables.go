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

package attacks

import (
	"laptudirm.com/x/gambit/pkg/board/bitboard"
	"laptudirm.com/x/gambit/pkg/board/move/attacks/magic"
	"laptudirm.com/x/gambit/pkg/board/piece"
	"laptudirm.com/x/gambit/pkg/board/square"
)

// King maps each square to the attack set of a king on that square.
var King [square.N]bitboard.Board

// Knight maps each square to the attack set of a knight on that square.
var Knight [square.N]bitboard.Board

// Pawn maps each color and square to the attack set of a pawn of that
// color on that square.
var Pawn [piece.ColorN][square.N]bitboard.Board

// Between maps two squares to the bitboard of the squares strictly
// between them, if they share a rank, file, or diagonal. The bitboard is
// empty otherwise.
var Between [square.N][square.N]bitboard.Board

// Line maps two squares to the bitboard of the full line which passes
// through both of them, if they share a rank, file, or diagonal. The
// bitboard is empty otherwise.
var Line [square.N][square.N]bitboard.Board

// magic hash tables for the sliding pieces
var rookTable *magic.Table
var bishopTable *magic.Table

func init() {
	// standard lookup tables for the non-sliding pieces
	for s := square.A1; s <= square.H8; s++ {
		King[s] = kingAttacksFrom(s)
		Knight[s] = knightAttacksFrom(s)
		Pawn[piece.White][s] = pawnAttacksFrom(s, piece.White)
		Pawn[piece.Black][s] = pawnAttacksFrom(s, piece.Black)
	}

	// magic lookup tables for the sliding pieces
	rookTable = magic.NewTable(4096, rookAttacks)
	bishopTable = magic.NewTable(512, bishopAttacks)

	// between and line tables for pin and check-mask calculation
	for a := square.A1; a <= square.H8; a++ {
		for b := square.A1; b <= square.H8; b++ {
			if a == b {
				continue
			}

			switch {
			case a.Rank() == b.Rank():
				Line[a][b] = bitboard.Ranks[a.Rank()]
			case a.File() == b.File():
				Line[a][b] = bitboard.Files[a.File()]
			case a.Diagonal() == b.Diagonal():
				Line[a][b] = bitboard.Diagonals[a.Diagonal()]
			case a.AntiDiagonal() == b.AntiDiagonal():
				Line[a][b] = bitboard.AntiDiagonals[a.AntiDiagonal()]
			default:
				// the squares don't share a line
				continue
			}

			// the squares strictly between a and b are the ones which
			// are visible from both when the other is the only blocker
			Between[a][b] = bitboard.Hyperbola(a, bitboard.Squares[b], Line[a][b]) &
				bitboard.Hyperbola(b, bitboard.Squares[a], Line[a][b])
		}
	}
}

// pawnAttacksFrom generates an attack bitboard containing all the
// possible squares a pawn of the given color can capture on from the
// given square.
func pawnAttacksFrom(from square.Square, c piece.Color) bitboard.Board {
	pawnUp := bitboard.Squares[from].Up(c)
	return pawnUp.East() | pawnUp.West()
}

// knightAttacksFrom generates an attack bitboard containing all the
// possible squares a knight can move to from the given square.
func knightAttacksFrom(from square.Square) bitboard.Board {
	knight := bitboard.Squares[from]

	knightNorth := knight.North().North()
	knightSouth := knight.South().South()

	knightEast := knight.East().East()
	knightWest := knight.West().West()

	knightAttacks := knightNorth.East() | knightNorth.West()
	knightAttacks |= knightSouth.East() | knightSouth.West()

	knightAttacks |= knightEast.North() | knightEast.South()
	knightAttacks |= knightWest.North() | knightWest.South()

	return knightAttacks
}

// kingAttacksFrom generates an attack bitboard containing all the
// possible squares a king can move to from the given square.
func kingAttacksFrom(from square.Square) bitboard.Board {
	king := bitboard.Squares[from]

	kingNorth := king.North()
	kingSouth := king.South()
	kingEast := king.East()
	kingWest := king.West()

	kingAttacks := kingNorth | kingSouth | kingEast | kingWest

	kingAttacks |= kingNorth.East() | kingNorth.West()
	kingAttacks |= kingSouth.East() | kingSouth.West()

	return kingAttacks
}

// bishopAttacks is the slow move generation function for bishops which
// is used to populate the magic hash tables. When isMask is true it
// returns the relevant blocker mask for the square instead, which drops
// the edge squares since a blocker there can't restrict the ray further.
func bishopAttacks(s square.Square, occ bitboard.Board, isMask bool) bitboard.Board {
	diagonalMask := bitboard.Diagonals[s.Diagonal()]
	diagonalAttacks := bitboard.Hyperbola(s, occ, diagonalMask)

	antiDiagonalMask := bitboard.AntiDiagonals[s.AntiDiagonal()]
	antiDiagonalAttacks := bitboard.Hyperbola(s, occ, antiDiagonalMask)

	attacks := diagonalAttacks | antiDiagonalAttacks
	if isMask {
		attacks &^= bitboard.Rank1 | bitboard.Rank8 | bitboard.FileA | bitboard.FileH
	}

	return attacks
}

// rookAttacks is the slow move generation function for rooks which is
// used to populate the magic hash tables. When isMask is true it returns
// the relevant blocker mask for the square instead, where each ray drops
// it's last square since a blocker there can't restrict the ray further.
func rookAttacks(s square.Square, occ bitboard.Board, isMask bool) bitboard.Board {
	fileMask := bitboard.Files[s.File()]
	fileAttacks := bitboard.Hyperbola(s, occ, fileMask)

	rankMask := bitboard.Ranks[s.Rank()]
	rankAttacks := bitboard.Hyperbola(s, occ, rankMask)

	if isMask {
		fileAttacks &^= bitboard.Rank1 | bitboard.Rank8
		rankAttacks &^= bitboard.FileA | bitboard.FileH
	}

	return fileAttacks | rankAttacks
}
