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

// Package board implements a complete chess board along with legal move
// generation and other related utilities.
package board

import (
	"fmt"

	"laptudirm.com/x/gambit/pkg/board/bitboard"
	"laptudirm.com/x/gambit/pkg/board/mailbox"
	"laptudirm.com/x/gambit/pkg/board/move/attacks"
	"laptudirm.com/x/gambit/pkg/board/move/castling"
	"laptudirm.com/x/gambit/pkg/board/piece"
	"laptudirm.com/x/gambit/pkg/board/square"
	"laptudirm.com/x/gambit/pkg/board/zobrist"
)

// Board represents the state of a chessboard at a given position. It is
// a value type without any internal sharing: assignment makes a deep
// copy and two Boards representing the same position compare equal with
// the == operator.
type Board struct {
	// position data
	Hash     zobrist.Key
	Position mailbox.Board // 8x8 for fast lookup
	PieceBBs [piece.TypeN]bitboard.Board
	ColorBBs [piece.ColorN]bitboard.Board

	Kings [piece.ColorN]square.Square

	SideToMove      piece.Color
	EnPassantTarget square.Square
	CastlingRights  castling.Rights

	// restriction analysis data, kept up to date by MakeMove
	//
	// CheckN is the number of pieces giving check, at most 2. Checkers
	// is the bitboard of those pieces. CheckMask contains the squares a
	// piece can move to in order to resolve all checks, and is universe
	// when the king is not in check. PinnedHV and PinnedD contain the
	// attack rays of enemy sliders which pin a friendly piece to the
	// king, horizontally/vertically and diagonally respectively.
	CheckN    int
	Checkers  bitboard.Board
	CheckMask bitboard.Board
	PinnedHV  bitboard.Board
	PinnedD   bitboard.Board

	// move counters
	DrawClock int
	FullMoves int
}

// String converts a Board into a human readable string.
func (b *Board) String() string {
	return fmt.Sprintf("%s\nFen: %s\nKey: %X\n", b.Position, b.FEN(), b.Hash)
}

// Occupied returns the bitboard of all the occupied squares.
func (b *Board) Occupied() bitboard.Board {
	return b.ColorBBs[piece.White] | b.ColorBBs[piece.Black]
}

// PieceAt returns the piece occupying the given square, or piece.NoPiece
// if the square is empty.
func (b *Board) PieceAt(s square.Square) piece.Piece {
	return b.Position[s]
}

// Pinned returns the bitboard of the side to move's pieces which are
// absolutely pinned to their king.
func (b *Board) Pinned() bitboard.Board {
	return (b.PinnedHV | b.PinnedD) & b.ColorBBs[b.SideToMove]
}

// InCheck checks if the side to move's king is in check.
func (b *Board) InCheck() bool {
	return b.CheckN > 0
}

// ClearSquare removes the piece occupying the given square from all of
// the board's records.
func (b *Board) ClearSquare(s square.Square) {
	p := b.Position[s]

	b.ColorBBs[p.Color()].Unset(s)

	// remove piece from other records
	b.PieceBBs[p.Type()].Unset(s)       // piece bitboard
	b.Position[s] = piece.NoPiece       // mailbox board
	b.Hash ^= zobrist.PieceSquare[p][s] // zobrist hash
}

// FillSquare puts the given piece into the given empty square, updating
// all of the board's records.
func (b *Board) FillSquare(s square.Square, p piece.Piece) {
	c := p.Color()
	t := p.Type()

	b.ColorBBs[c].Set(s)

	if t == piece.King {
		b.Kings[c] = s
	}

	b.PieceBBs[t].Set(s)                // piece bitboard
	b.Position[s] = p                   // mailbox board
	b.Hash ^= zobrist.PieceSquare[p][s] // zobrist hash
}

// IsInCheck checks if the given color's king is in check.
func (b *Board) IsInCheck(c piece.Color) bool {
	return b.IsAttacked(b.Kings[c], c.Other())
}

// IsAttacked checks if the given square is attacked by any piece of the
// given color.
func (b *Board) IsAttacked(s square.Square, them piece.Color) bool {
	occ := b.Occupied()

	if attacks.Pawn[them.Other()][s]&b.Pawns(them) != bitboard.Empty {
		return true
	}

	if attacks.Knight[s]&b.Knights(them) != bitboard.Empty {
		return true
	}

	if attacks.King[s]&b.King(them) != bitboard.Empty {
		return true
	}

	queens := b.Queens(them)

	if attacks.Bishop(s, occ)&(b.Bishops(them)|queens) != bitboard.Empty {
		return true
	}

	return attacks.Rook(s, occ)&(b.Rooks(them)|queens) != bitboard.Empty
}

// Pawns returns the bitboard of the given color's pawns.
func (b *Board) Pawns(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Pawn] & b.ColorBBs[c]
}

// Knights returns the bitboard of the given color's knights.
func (b *Board) Knights(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Knight] & b.ColorBBs[c]
}

// Bishops returns the bitboard of the given color's bishops.
func (b *Board) Bishops(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Bishop] & b.ColorBBs[c]
}

// Rooks returns the bitboard of the given color's rooks.
func (b *Board) Rooks(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Rook] & b.ColorBBs[c]
}

// Queens returns the bitboard of the given color's queens.
func (b *Board) Queens(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Queen] & b.ColorBBs[c]
}

// King returns the bitboard of the given color's king.
func (b *Board) King(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.King] & b.ColorBBs[c]
}

// CalculateCheckmask calculates the check information of the current
// board state: the number of checkers, the checkers bitboard, and the
// check-mask.
//
// A checker is an enemy piece which is directly checking the king. The
// number of checkers can be a maximum of two (double check).
//
// The check-mask is defined as all the squares to which if a friendly
// piece is moved to will block all checks. This is defined as empty for
// double check, the checking piece and, if the checker is a sliding
// piece, the squares between the king and the checker. The bitboard is
// universe if the king is not in check.
func (b *Board) CalculateCheckmask() {
	occ := b.Occupied()

	us := b.SideToMove
	them := us.Other()

	b.CheckN = 0
	b.Checkers = bitboard.Empty
	b.CheckMask = bitboard.Empty

	kingSq := b.Kings[us]

	pawns := b.Pawns(them) & attacks.Pawn[us][kingSq]
	knights := b.Knights(them) & attacks.Knight[kingSq]
	bishops := (b.Bishops(them) | b.Queens(them)) & attacks.Bishop(kingSq, occ)
	rooks := (b.Rooks(them) | b.Queens(them)) & attacks.Rook(kingSq, occ)

	// a pawn and a knight cannot be checking the king at the same time as
	// they are not sliding pieces thus discovered attacks are impossible
	switch {
	case pawns != bitboard.Empty:
		b.Checkers |= pawns
		b.CheckMask |= pawns
		b.CheckN++

	case knights != bitboard.Empty:
		b.Checkers |= knights
		b.CheckMask |= knights
		b.CheckN++
	}

	if bishops != bitboard.Empty {
		bishopSq := bishops.FirstOne()
		b.Checkers |= bitboard.Squares[bishopSq]
		b.CheckMask |= attacks.Between[kingSq][bishopSq] | bitboard.Squares[bishopSq]
		b.CheckN++
	}

	// 2 is the largest possible value for CheckN so short circuit if thats reached
	if b.CheckN < 2 && rooks != bitboard.Empty {
		if b.CheckN == 0 && rooks.Count() > 1 {
			// double check by two rook-like sliders,
			// only the king can move so skip the check-mask
			b.Checkers |= rooks
			b.CheckN += 2
		} else {
			rookSq := rooks.FirstOne()
			b.Checkers |= bitboard.Squares[rookSq]
			b.CheckMask |= attacks.Between[kingSq][rookSq] | bitboard.Squares[rookSq]
			b.CheckN++
		}
	}

	if b.CheckN == 0 {
		// king is not in check so check-mask is universe
		b.CheckMask = bitboard.Universe
	} else if b.CheckN == 2 {
		// no single move blocks two checks, so check-mask is empty
		b.CheckMask = bitboard.Empty
	}
}

// CalculatePinmask calculates the horizontal-vertical and diagonal
// pin-masks. A pin-mask is defined as the mask containing all the attack
// rays of pieces pinning a friendly piece in the given direction.
func (b *Board) CalculatePinmask() {
	us := b.SideToMove
	them := us.Other()

	kingSq := b.Kings[us]

	friends := b.ColorBBs[us]
	enemies := b.ColorBBs[them]

	b.PinnedHV = bitboard.Empty
	b.PinnedD = bitboard.Empty

	// consider enemy rooks and queens which are attacking or would attack
	// the king if not for intervening pieces. The king is considered as a
	// rook and it's attack set is intersected with the rooks and queens.
	for rooks := (b.Rooks(them) | b.Queens(them)) & attacks.Rook(kingSq, enemies); rooks != bitboard.Empty; {
		rook := rooks.Pop()
		possiblePin := attacks.Between[kingSq][rook] | bitboard.Squares[rook]

		// if there is only one friendly piece blocking the ray, it is pinned
		if (possiblePin & friends).Count() == 1 {
			b.PinnedHV |= possiblePin
		}
	}

	// consider enemy bishops and queens which are attacking or would
	// attack the king if not for intervening pieces, similar to above.
	for bishops := (b.Bishops(them) | b.Queens(them)) & attacks.Bishop(kingSq, enemies); bishops != bitboard.Empty; {
		bishop := bishops.Pop()
		possiblePin := attacks.Between[kingSq][bishop] | bitboard.Squares[bishop]

		// if there is only one friendly piece blocking the ray, it is pinned
		if (possiblePin & friends).Count() == 1 {
			b.PinnedD |= possiblePin
		}
	}
}

// SeenSquares returns a bitboard containing all the squares that are
// seen(attacked) by pieces of the given color. The enemy king is not
// considered as a sliding ray blocker by SeenSquares since it has to
// move away from the attack, exposing the blocked squares.
func (b *Board) SeenSquares(by piece.Color) bitboard.Board {
	pawns := b.Pawns(by)
	knights := b.Knights(by)
	bishops := b.Bishops(by)
	rooks := b.Rooks(by)
	queens := b.Queens(by)
	kingSq := b.Kings[by]

	// don't consider the enemy king as a blocker
	blockers := b.Occupied() &^ b.King(by.Other())

	seen := attacks.Pawns(pawns, by)

	for knights != bitboard.Empty {
		from := knights.Pop()
		seen |= attacks.Knight[from]
	}

	for bishops != bitboard.Empty {
		from := bishops.Pop()
		seen |= attacks.Bishop(from, blockers)
	}

	for rooks != bitboard.Empty {
		from := rooks.Pop()
		seen |= attacks.Rook(from, blockers)
	}

	for queens != bitboard.Empty {
		from := queens.Pop()
		seen |= attacks.Queen(from, blockers)
	}

	seen |= attacks.King[kingSq]

	return seen
}
