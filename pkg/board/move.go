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

package board

import (
	"strings"

	"laptudirm.com/x/gambit/internal/util"
	"laptudirm.com/x/gambit/pkg/board/move"
	"laptudirm.com/x/gambit/pkg/board/move/attacks"
	"laptudirm.com/x/gambit/pkg/board/move/castling"
	"laptudirm.com/x/gambit/pkg/board/piece"
	"laptudirm.com/x/gambit/pkg/board/square"
	"laptudirm.com/x/gambit/pkg/board/zobrist"
)

// MakeMove plays the given move on the Board, updating every record
// incrementally, and recalculates the restriction analysis data for the
// new side to move.
//
// The move must have been generated from the current position: the
// behavior of MakeMove on any other move is undefined. Callers which
// need to keep the current position around clone the Board beforehand.
func (b *Board) MakeMove(m move.Move) {
	// update the half-move clock
	// it records the number of plys since the last pawn push or capture
	// for positions which are drawn by the 50-move rule
	b.DrawClock++

	// parse move

	sourceSq := m.Source()
	targetSq := m.Target()
	captureSq := targetSq
	fromPiece := m.FromPiece()
	pieceType := fromPiece.Type()
	toPiece := m.ToPiece()

	isDoublePush := pieceType == piece.Pawn && util.Abs(targetSq-sourceSq) == 16
	isCastling := pieceType == piece.King && util.Abs(targetSq-sourceSq) == 2
	isEnPassant := pieceType == piece.Pawn && targetSq == b.EnPassantTarget
	isCapture := m.IsCapture()

	if pieceType == piece.Pawn {
		b.DrawClock = 0
	}

	// reset the en passant target square
	if target := b.EnPassantTarget; target != square.None {
		if b.Pawns(b.SideToMove)&attacks.Pawn[b.SideToMove.Other()][target] != 0 {
			// the file key was hashed in when the target was set,
			// since the en-passant capture was actually possible
			b.Hash ^= zobrist.EnPassant[target.File()]
		}
		b.EnPassantTarget = square.None
	}

	switch {
	case isDoublePush:
		// double pawn push; set new en passant target
		target := sourceSq
		if b.SideToMove == piece.White {
			target += 8
		} else {
			target -= 8
		}

		b.EnPassantTarget = target

		// the en-passant file only alters the hash when an enemy pawn
		// can actually capture, preserving transposition equality with
		// positions where the double push is of no consequence
		if b.Pawns(b.SideToMove.Other())&attacks.Pawn[b.SideToMove][target] != 0 {
			b.Hash ^= zobrist.EnPassant[target.File()]
		}

	case isCastling:
		// castle the rook
		rookInfo := castling.Rooks[targetSq]
		b.ClearSquare(rookInfo.From)
		b.FillSquare(rookInfo.To, rookInfo.RookType)

	case isEnPassant:
		// capture square is different from target square during en passant
		if b.SideToMove == piece.White {
			captureSq -= 8
		} else {
			captureSq += 8
		}
		fallthrough

	case isCapture:
		// reset the draw clock and remove the captured piece
		b.DrawClock = 0
		b.ClearSquare(captureSq)
	}

	// move the piece
	b.ClearSquare(sourceSq)
	b.FillSquare(targetSq, toPiece)

	b.Hash ^= zobrist.Castling[b.CastlingRights] // remove old rights
	b.CastlingRights &^= castling.RightUpdates[sourceSq]
	b.CastlingRights &^= castling.RightUpdates[targetSq]
	b.Hash ^= zobrist.Castling[b.CastlingRights] // put new rights

	// update side to move
	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.White {
		b.FullMoves++
	}
	b.Hash ^= zobrist.SideToMove // switch in zobrist hash

	// recalculate the restriction analysis data for the new side to move
	b.CalculateCheckmask()
	b.CalculatePinmask()
}

// NewMove returns a new move.Move representing moving a piece from `from`
// to `to` by adding the necessary contextual information from the Board.
// If the move is a promotion, the promotion piece can be set using the
// (move).SetPromotion(piece.Piece) method.
func (b *Board) NewMove(from, to square.Square) move.Move {
	p := b.Position[from]
	return move.New(from, to, p, b.Position[to] != piece.NoPiece)
}

// NewMoveFromString creates a new move.Move from the given move string
// in pure coordinate notation, like "e2e4" or "e7e8q".
func (b *Board) NewMoveFromString(m string) move.Move {
	from := square.NewFromString(m[:2])
	to := square.NewFromString(m[2:4])

	newMove := b.NewMove(from, to)
	if len(m) == 5 {
		pieceID := m[4:]
		if b.SideToMove == piece.White {
			pieceID = strings.ToUpper(pieceID)
		}

		newMove = newMove.SetPromotion(piece.NewFromString(pieceID))
	}

	return newMove
}
