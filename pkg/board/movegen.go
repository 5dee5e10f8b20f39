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
	"laptudirm.com/x/gambit/pkg/board/move/attacks"
	"laptudirm.com/x/gambit/pkg/board/move/castling"
	"laptudirm.com/x/gambit/pkg/board/piece"
	"laptudirm.com/x/gambit/pkg/board/square"
)

// GenerateMoves generates a move list of all the legal moves in the
// current position. Every move in the list is legal as emitted: there is
// no make-and-filter stage. The list is empty, never nil, for positions
// with no legal moves, and it's ordering is deterministic for a given
// position.
func (b *Board) GenerateMoves() []move.Move {
	s := moveGenState{Board: b}

	// initialize the utility bitboards and lookups
	s.Init()

	s.appendKingMoves()

	if b.CheckN >= 2 {
		// only king moves are possible in double check
		return s.MoveList
	}

	// moves of other pieces
	s.appendKnightMoves()
	s.appendBishopMoves()
	s.appendRookMoves()
	s.appendQueenMoves()
	s.appendPawnMoves()

	return s.MoveList
}

func (s *moveGenState) appendKingMoves() {
	kingSq := s.Kings[s.Us]

	// king can't move to squares occupied by a friend or seen by an enemy
	kingMoves := attacks.King[kingSq] & s.KingTarget
	s.serializeMoves(s.King, kingSq, kingMoves)

	if s.CheckN == 0 {
		// castling can only occur if king is not in check
		s.appendCastlingMoves()
	}
}

func (s *moveGenState) appendKnightMoves() {
	// knights pinned in any direction can't move
	for knights := s.Knights(s.Us) &^ (s.PinnedD | s.PinnedHV); knights != bitboard.Empty; {
		from := knights.Pop()
		knightMoves := attacks.Knight[from] & s.Target
		s.serializeMoves(s.Knight, from, knightMoves)
	}
}

func (s *moveGenState) appendBishopMoves() {
	s.appendBishopTypeMoves(s.Bishop, s.Bishops(s.Us))
}

func (s *moveGenState) appendRookMoves() {
	s.appendRookTypeMoves(s.Rook, s.Rooks(s.Us))
}

func (s *moveGenState) appendQueenMoves() {
	queens := s.Queens(s.Us)

	s.appendBishopTypeMoves(s.Queen, queens)
	s.appendRookTypeMoves(s.Queen, queens)
}

// appendBishopTypeMoves appends the moves of any piece which moves like a bishop.
func (s *moveGenState) appendBishopTypeMoves(bishop piece.Piece, bishops bitboard.Board) {
	// diagonal movement is impossible for pieces pinned horizontally
	// or vertically, so those pieces are removed from the set
	bishops &^= s.PinnedHV

	pinned := bishops & s.PinnedD
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		// pinned bishops can only move inside their pin-mask
		bishopMoves := attacks.Bishop(from, s.Occupied) & s.Target & s.PinnedD
		s.serializeMoves(bishop, from, bishopMoves)
	}

	unpinned := bishops &^ s.PinnedD
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		bishopMoves := attacks.Bishop(from, s.Occupied) & s.Target
		s.serializeMoves(bishop, from, bishopMoves)
	}
}

// appendRookTypeMoves appends the moves of any piece which moves like a rook.
func (s *moveGenState) appendRookTypeMoves(rook piece.Piece, rooks bitboard.Board) {
	// lateral movement is impossible for pieces pinned diagonally,
	// so those pieces are removed from the set
	rooks &^= s.PinnedD

	pinned := rooks & s.PinnedHV
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		// pinned rooks can only move inside their pin-mask
		rookMoves := attacks.Rook(from, s.Occupied) & s.Target & s.PinnedHV
		s.serializeMoves(rook, from, rookMoves)
	}

	unpinned := rooks &^ s.PinnedHV
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		rookMoves := attacks.Rook(from, s.Occupied) & s.Target
		s.serializeMoves(rook, from, rookMoves)
	}
}

func (s *moveGenState) appendPawnMoves() {
	const left, right = square.Square(-1), square.Square(1)

	down := s.Down

	pushTarget := s.CheckMask &^ s.Occupied
	captureTarget := s.Enemies & s.CheckMask

	pawns := s.Pawns(s.Us)

	// pawns pinned horizontally or vertically can never capture
	pawnsThatAttack := pawns &^ s.PinnedHV

	unpinnedPawnsThatAttack := pawnsThatAttack &^ s.PinnedD
	pinnedPawnsThatAttack := pawnsThatAttack & s.PinnedD

	// diagonally pinned pawns can only capture inside their pin-mask,
	// which limits them to capturing the pinning piece itself
	pawnAttacksL := attacks.PawnsLeft(unpinnedPawnsThatAttack, s.Us) & captureTarget
	pawnAttacksL |= attacks.PawnsLeft(pinnedPawnsThatAttack, s.Us) & captureTarget & s.PinnedD

	pawnAttacksR := attacks.PawnsRight(unpinnedPawnsThatAttack, s.Us) & captureTarget
	pawnAttacksR |= attacks.PawnsRight(pinnedPawnsThatAttack, s.Us) & captureTarget & s.PinnedD

	simplePawnAttacksL := pawnAttacksL &^ s.PromotionRankBB
	simplePawnAttacksR := pawnAttacksR &^ s.PromotionRankBB

	for simplePawnAttacksL != bitboard.Empty {
		to := simplePawnAttacksL.Pop()
		from := to + down + right
		s.AppendMoves(move.New(from, to, s.Pawn, true))
	}

	for simplePawnAttacksR != bitboard.Empty {
		to := simplePawnAttacksR.Pop()
		from := to + down + left
		s.AppendMoves(move.New(from, to, s.Pawn, true))
	}

	promotionPawnAttacksL := pawnAttacksL & s.PromotionRankBB
	promotionPawnAttacksR := pawnAttacksR & s.PromotionRankBB

	for promotionPawnAttacksL != bitboard.Empty {
		to := promotionPawnAttacksL.Pop()
		from := to + down + right
		s.appendPromotions(move.New(from, to, s.Pawn, true))
	}

	for promotionPawnAttacksR != bitboard.Empty {
		to := promotionPawnAttacksR.Pop()
		from := to + down + left
		s.appendPromotions(move.New(from, to, s.Pawn, true))
	}

	// pawns pinned diagonally can never push
	pawnsThatPush := pawns &^ s.PinnedD

	unpinnedPawnsThatPush := pawnsThatPush &^ s.PinnedHV
	pinnedPawnsThatPush := pawnsThatPush & s.PinnedHV

	// vertically pinned pawns can only push inside their pin-mask
	pawnPushesSingle := attacks.PawnPush(unpinnedPawnsThatPush, s.Us)
	pawnPushesSingle |= attacks.PawnPush(pinnedPawnsThatPush, s.Us) & s.PinnedHV
	pawnPushesSingle &= pushTarget

	// a double push is blocked by a piece on either of the two squares
	// ahead of the pawn, which is checked by smearing the occupancy one
	// square up towards the moving side
	pawnPushesDouble := attacks.PawnPush(attacks.PawnPush(unpinnedPawnsThatPush&s.HomeRankBB, s.Us), s.Us)
	pawnPushesDouble |= attacks.PawnPush(attacks.PawnPush(pinnedPawnsThatPush&s.HomeRankBB, s.Us), s.Us) & s.PinnedHV
	pawnPushesDouble &= s.CheckMask &^ s.Occupied.SmearUp(s.Us)

	simplePawnPushes := pawnPushesSingle &^ s.PromotionRankBB

	for simplePawnPushes != bitboard.Empty {
		to := simplePawnPushes.Pop()
		from := to + down
		s.AppendMoves(move.New(from, to, s.Pawn, false))
	}

	for pawnPushesDouble != bitboard.Empty {
		to := pawnPushesDouble.Pop()
		from := to + down + down
		s.AppendMoves(move.New(from, to, s.Pawn, false))
	}

	promotionPawnPushes := pawnPushesSingle & s.PromotionRankBB

	for promotionPawnPushes != bitboard.Empty {
		to := promotionPawnPushes.Pop()
		from := to + down
		s.appendPromotions(move.New(from, to, s.Pawn, false))
	}

	if s.EnPassantTarget != square.None {
		epPawn := s.EnPassantTarget + down

		epMask := bitboard.Squares[s.EnPassantTarget] | bitboard.Squares[epPawn]
		// check if the en passant capture can resolve the current check,
		// either by capturing the checker or by blocking it's attack ray
		if s.CheckMask&epMask == 0 {
			return
		}

		kingSq := s.Kings[s.Us]
		kingMask := bitboard.Squares[kingSq] & s.EnPassantRankBB

		enemyRooksQueens := (s.Rooks(s.Them) | s.Queens(s.Them)) & s.EnPassantRankBB

		// if the king and an enemy horizontal sliding piece are on the
		// en passant rank, a horizontal pin may be uncovered since en
		// passant removes two pieces from that rank at once
		isPossiblePin := kingMask != bitboard.Empty && enemyRooksQueens != bitboard.Empty

		for fromBB := attacks.Pawn[s.Them][s.EnPassantTarget] & pawnsThatAttack; fromBB != bitboard.Empty; {
			from := fromBB.Pop()

			// pawn is pinned in a different direction
			if s.PinnedD.IsSet(from) && !s.PinnedD.IsSet(s.EnPassantTarget) {
				continue
			}

			// check for the uncovered horizontal pin by removing both
			// pawns from the blocker set and testing whether a rook ray
			// from the king hits any enemy rook or queen
			pawnsMask := bitboard.Squares[from] | bitboard.Squares[epPawn]
			if isPossiblePin && attacks.Rook(kingSq, s.Occupied&^pawnsMask)&enemyRooksQueens != 0 {
				break
			}

			s.AppendMoves(move.New(from, s.EnPassantTarget, s.Pawn, true))
		}
	}
}

func (s *moveGenState) appendCastlingMoves() {
	// for each castling move the following things are checked:
	// 1. if castling that side is legal (king and rook haven't moved)
	// 2. if pieces are occupying the space between the king and rook
	// 3. if the squares that the king moves through are seen by the enemy
	// if all the conditions are satisfied then castling that side is legal

	switch s.Us {
	case piece.White:
		if s.CastlingRights&castling.WhiteK != 0 &&
			(s.Occupied|s.SeenByEnemy)&bitboard.F1G1 == bitboard.Empty {
			s.AppendMoves(move.New(square.E1, square.G1, piece.WhiteKing, false))
		}

		if s.CastlingRights&castling.WhiteQ != 0 &&
			s.Occupied&bitboard.B1C1D1 == bitboard.Empty &&
			s.SeenByEnemy&bitboard.C1D1 == bitboard.Empty {
			s.AppendMoves(move.New(square.E1, square.C1, piece.WhiteKing, false))
		}
	case piece.Black:
		if s.CastlingRights&castling.BlackK != 0 &&
			(s.Occupied|s.SeenByEnemy)&bitboard.F8G8 == bitboard.Empty {
			s.AppendMoves(move.New(square.E8, square.G8, piece.BlackKing, false))
		}

		if s.CastlingRights&castling.BlackQ != 0 &&
			s.Occupied&bitboard.B8C8D8 == bitboard.Empty &&
			s.SeenByEnemy&bitboard.C8D8 == bitboard.Empty {
			s.AppendMoves(move.New(square.E8, square.C8, piece.BlackKing, false))
		}
	}
}

// serializeMoves serializes the given move bitboard into the movelist.
func (s *moveGenState) serializeMoves(p piece.Piece, from square.Square, moves bitboard.Board) {
	for toBB := moves; toBB != bitboard.Empty; {
		to := toBB.Pop()
		s.AppendMoves(move.New(from, to, p, s.Enemies.IsSet(to)))
	}
}

// appendPromotions appends all four promotion variants of the given move
// to the movelist.
func (s *moveGenState) appendPromotions(m move.Move) {
	for _, promotion := range piece.Promotions {
		s.AppendMoves(m.SetPromotion(piece.New(promotion, s.Us)))
	}
}
