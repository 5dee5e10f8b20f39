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

// Package castling declares types and tables pertaining to the castling
// rights of the two players.
package castling

import "laptudirm.com/x/gambit/pkg/board/square"

// NewRights creates an instance of Rights from the given fen rights
// string.
func NewRights(r string) Rights {
	var rights Rights

	if r == "-" {
		return NoCasl
	}

	if r != "" && r[0] == 'K' {
		r = r[1:]
		rights |= WhiteK
	}

	if r != "" && r[0] == 'Q' {
		r = r[1:]
		rights |= WhiteQ
	}

	if r != "" && r[0] == 'k' {
		r = r[1:]
		rights |= BlackK
	}

	if r != "" && r[0] == 'q' {
		rights |= BlackQ
	}

	return rights
}

// Rights represents the castling rights of both players as a 4-bit set.
type Rights byte

// constants representing the various castling rights
const (
	NoCasl Rights = 0

	WhiteK Rights = 1 << 0
	WhiteQ Rights = 1 << 1
	BlackK Rights = 1 << 2
	BlackQ Rights = 1 << 3

	WhiteA Rights = WhiteK | WhiteQ
	BlackA Rights = BlackK | BlackQ

	Kingside  Rights = WhiteK | BlackK
	Queenside Rights = WhiteQ | BlackQ

	All Rights = WhiteA | BlackA
)

// N is the number of possible unique castling rights.
const N = 1 << 4 // 4 possible castling sides

// RightUpdates is a map of each chessboard square to the rights that
// need to be removed if a piece moves from or to that square. For
// example, if a piece moves from or to the square a1, either the white
// queen-side rook has moved or it has been captured, so white can no
// longer castle queen-side. A move is therefore able to revoke exactly
// the affected rights with two indexed lookups, one for it's source and
// one for it's target square, without dispatching on what moved.
var RightUpdates = [square.N]Rights{
	WhiteQ, NoCasl, NoCasl, NoCasl, WhiteA, NoCasl, NoCasl, WhiteK,
	NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl,
	NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl,
	NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl,
	NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl,
	NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl,
	NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl,
	BlackQ, NoCasl, NoCasl, NoCasl, BlackA, NoCasl, NoCasl, BlackK,
}

// String converts the given castling.Rights to a readable string.
func (c Rights) String() string {
	var str string

	if c&WhiteK != 0 {
		str += "K"
	}

	if c&WhiteQ != 0 {
		str += "Q"
	}

	if c&BlackK != 0 {
		str += "k"
	}

	if c&BlackQ != 0 {
		str += "q"
	}

	if str == "" {
		str = "-"
	}

	return str
}
