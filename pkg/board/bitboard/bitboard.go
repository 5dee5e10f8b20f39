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

// Package bitboard implements a 64-bit bitboard and other related
// functions for manipulating them.
package bitboard

import (
	"math/bits"

	"laptudirm.com/x/gambit/pkg/board/piece"
	"laptudirm.com/x/gambit/pkg/board/square"
)

// Board is a 64-bit bitboard. Bit 8*rank + file represents the square
// with the given rank and file, so bit 0 is a1 and bit 63 is h8.
type Board uint64

// String returns a string representation of the given BB.
func (b Board) String() string {
	var str string
	for rank := square.Rank8; rank >= square.Rank1; rank-- {
		for file := square.FileA; file <= square.FileH; file++ {
			if b.IsSet(square.New(file, rank)) {
				str += "1"
			} else {
				str += "0"
			}

			if file == square.FileH {
				str += "\n"
			} else {
				str += " "
			}
		}
	}

	return str
}

// Up shifts the given BB up relative to the given color.
func (b Board) Up(c piece.Color) Board {
	switch c {
	case piece.White:
		return b.North()
	case piece.Black:
		return b.South()
	default:
		panic("bad color")
	}
}

// Down shifts the given BB down relative to the given color.
func (b Board) Down(color piece.Color) Board {
	switch color {
	case piece.White:
		return b.South()
	case piece.Black:
		return b.North()
	default:
		panic("bad color")
	}
}

// North shifts the given BB to the north.
func (b Board) North() Board {
	return b << 8
}

// South shifts the given BB to the south.
func (b Board) South() Board {
	return b >> 8
}

// East shifts the given BB to the east. Squares on the h-file are
// dropped before shifting so that they don't wrap around to the a-file.
func (b Board) East() Board {
	return (b &^ FileH) << 1
}

// West shifts the given BB to the west. Squares on the a-file are
// dropped before shifting so that they don't wrap around to the h-file.
func (b Board) West() Board {
	return (b &^ FileA) >> 1
}

// SmearUp returns the union of the given BB and the BB shifted one
// square up relative to the given color.
func (b Board) SmearUp(c piece.Color) Board {
	return b | b.Up(c)
}

// Pop returns the LSB of the given BB and removes it.
func (b *Board) Pop() square.Square {
	sq := b.FirstOne()
	*b &= *b - 1
	return sq
}

// Count returns the number of set bits in the given BB.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// FirstOne returns the LSB of the given BB.
func (b Board) FirstOne() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// Subsets calls yield for every subset of the given BB, including the
// empty board and the board itself. The subsets are enumerated using the
// Carry-Rippler Trick (https://bit.ly/3XlXipd).
func (b Board) Subsets(yield func(Board)) {
	subset := Empty
	for {
		yield(subset)

		subset = (subset - b) & b
		if subset == Empty {
			break
		}
	}
}

// FlipVertical mirrors the given BB along the horizontal axis between
// the 4th and 5th ranks.
func (b Board) FlipVertical() Board {
	return Board(bits.ReverseBytes64(uint64(b)))
}

// FlipHorizontal mirrors the given BB along the vertical axis between
// the d and e files.
func (b Board) FlipHorizontal() Board {
	const k1 Board = 0x5555555555555555
	const k2 Board = 0x3333333333333333
	const k4 Board = 0x0f0f0f0f0f0f0f0f

	b = ((b >> 1) & k1) | ((b & k1) << 1)
	b = ((b >> 2) & k2) | ((b & k2) << 2)
	b = ((b >> 4) & k4) | ((b & k4) << 4)
	return b
}

// IsSet checks whether the given Square is set in the bitboard.
func (b Board) IsSet(index square.Square) bool {
	return b&Squares[index] != 0
}

// Set sets the given Square in the bitboard.
func (b *Board) Set(index square.Square) {
	if index == square.None {
		return
	}

	*b |= Squares[index]
}

// Unset clears the given Square in the bitboard.
func (b *Board) Unset(index square.Square) {
	if index == square.None {
		return
	}

	*b &^= Squares[index]
}
