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
	"strconv"
	"strings"

	"laptudirm.com/x/gambit/pkg/board/move/attacks"
	"laptudirm.com/x/gambit/pkg/board/move/castling"
	"laptudirm.com/x/gambit/pkg/board/piece"
	"laptudirm.com/x/gambit/pkg/board/square"
	"laptudirm.com/x/gambit/pkg/board/zobrist"
)

// StartFEN is the fen string of the starting position of a chess game.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// New creates an instance of a *Board from the given fen string.
// https://www.chessprogramming.org/Forsyth-Edwards_Notation
//
// The fen string is assumed to represent a well formed chess position:
// structurally impossible positions are the caller's responsibility to
// reject.
func New(fen string) *Board {
	var board Board

	fields := strings.Fields(fen)

	// side to move
	board.SideToMove = piece.NewColor(fields[1])
	if board.SideToMove == piece.Black {
		board.Hash ^= zobrist.SideToMove
	}

	// generate position
	ranks := strings.Split(fields[0], "/")
	for rankId, rankData := range ranks {
		// fen strings start from the 8th rank
		rank := square.Rank8 - square.Rank(rankId)

		fileId := square.FileA
		for _, id := range rankData {
			if id >= '1' && id <= '8' {
				skip := square.File(id - '0')
				fileId += skip // skip over empty squares
				continue
			}

			// piece string to piece
			p := piece.NewFromString(string(id))
			board.FillSquare(square.New(fileId, rank), p)

			fileId++
		}
	}

	// castling rights
	board.CastlingRights = castling.NewRights(fields[2])
	board.Hash ^= zobrist.Castling[board.CastlingRights]

	// en-passant target square
	board.EnPassantTarget = square.NewFromString(fields[3])
	if target := board.EnPassantTarget; target != square.None &&
		board.Pawns(board.SideToMove)&attacks.Pawn[board.SideToMove.Other()][target] != 0 {
		// the en-passant file is only hashed when a pawn of the side to
		// move can actually capture en passant, so that positions which
		// differ only by an uncapturable double push hash identically
		board.Hash ^= zobrist.EnPassant[target.File()]
	}

	// move counters
	board.DrawClock, _ = strconv.Atoi(fields[4])
	board.FullMoves, _ = strconv.Atoi(fields[5])

	// derived restriction analysis data
	board.CalculateCheckmask()
	board.CalculatePinmask()

	return &board
}

// FEN returns the fen string of the current Board position.
func (b *Board) FEN() string {
	var fenString string
	fenString += b.Position.FEN() + " "
	fenString += b.SideToMove.String() + " "
	fenString += b.CastlingRights.String() + " "
	fenString += b.EnPassantTarget.String() + " "
	fenString += strconv.Itoa(b.DrawClock) + " "
	fenString += strconv.Itoa(b.FullMoves)
	return fenString
}
