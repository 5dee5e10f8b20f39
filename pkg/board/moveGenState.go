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
	"laptudirm.com/x/gambit/pkg/board/bitboard"
	"laptudirm.com/x/gambit/pkg/board/move"
	"laptudirm.com/x/gambit/pkg/board/piece"
	"laptudirm.com/x/gambit/pkg/board/square"
)

// moveGenState stores various utility data used during move generation.
// It is separate from Board since this data only lives for the duration
// of a single generation run.
type moveGenState struct {
	// board from which the moves are generated
	*Board

	// movelist that stores the generated moves
	MoveList []move.Move

	Us, Them piece.Color

	// adding Down to a square gives the square "below" it,
	// where "below" is towards the moving player's own side
	Down square.Square

	// rank where the moving player's pawns get promoted
	PromotionRankBB bitboard.Board

	// rank from which the moving player's pawns capture en passant
	EnPassantRankBB bitboard.Board

	// rank on which the moving player's pawns start, and from which
	// they may push two squares ahead
	HomeRankBB bitboard.Board

	// color bitboards classified by the side to move
	Friends bitboard.Board
	Enemies bitboard.Board

	// precalculated Friends | Enemies
	Occupied bitboard.Board

	// places where pieces can move to,
	// calculated as ^Friends & CheckMask
	Target bitboard.Board

	// king target is special because the king can't
	// be left on a square the enemy pieces see
	KingTarget bitboard.Board

	// squares attacked by enemy pieces, with the friendly
	// king removed from the blocker set
	SeenByEnemy bitboard.Board

	// piece variables containing pieces of the moving color
	Pawn, Knight, Bishop, Rook, Queen, King piece.Piece
}

// AppendMoves appends the given moves to the current state's movelist.
func (s *moveGenState) AppendMoves(m ...move.Move) {
	s.MoveList = append(s.MoveList, m...)
}

// Init initializes the utility bitboards and other fields which are
// necessary for move generation. The check and pin masks themselves are
// maintained on the Board by MakeMove and the fen reader.
func (s *moveGenState) Init() {
	// occupancy bitboards
	s.Friends = s.ColorBBs[s.SideToMove]
	s.Enemies = s.ColorBBs[s.SideToMove.Other()]
	s.Occupied = s.Friends | s.Enemies

	// our and their colors
	s.Us = s.SideToMove
	s.Them = s.Us.Other()

	// side to move dependent variables
	if s.Us == piece.White {
		s.PromotionRankBB = bitboard.Rank8
		s.EnPassantRankBB = bitboard.Rank5
		s.HomeRankBB = bitboard.Rank2

		s.Down = -8

		s.Pawn = piece.WhitePawn
		s.Knight = piece.WhiteKnight
		s.Bishop = piece.WhiteBishop
		s.Rook = piece.WhiteRook
		s.Queen = piece.WhiteQueen
		s.King = piece.WhiteKing
	} else {
		s.PromotionRankBB = bitboard.Rank1
		s.EnPassantRankBB = bitboard.Rank4
		s.HomeRankBB = bitboard.Rank7

		s.Down = 8

		s.Pawn = piece.BlackPawn
		s.Knight = piece.BlackKnight
		s.Bishop = piece.BlackBishop
		s.Rook = piece.BlackRook
		s.Queen = piece.BlackQueen
		s.King = piece.BlackKing
	}

	s.SeenByEnemy = s.SeenSquares(s.Them)

	s.Target = ^s.Friends & s.CheckMask
	s.KingTarget = ^s.Friends &^ s.SeenByEnemy

	// the movelist is preallocated to the maximum number of moves which
	// can be legal in any position, so appends never reallocate it
	s.MoveList = make([]move.Move, 0, move.MaxInPosition)
}
