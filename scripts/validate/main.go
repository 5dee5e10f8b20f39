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

// This script validates the move generator differentially against the
// notnil/chess reference implementation. It replays every game found in
// the pgn files under ./data, and at every position cross-checks the
// size of the legal move list, the membership of the played move, and
// the resulting position.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/notnil/chess"
	"laptudirm.com/x/gambit/pkg/board"
	"laptudirm.com/x/gambit/pkg/board/move"
)

func main() {
	games := 0
	positions := 0
	mismatches := 0

	err := filepath.WalkDir("./data", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !strings.HasSuffix(path, ".pgn") {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		scanner := chess.NewScanner(f)
		for scanner.Scan() {
			game := scanner.Next()
			games++

			mismatches += validate(game, &positions)
		}

		return nil
	})

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("validate: %d games, %d positions checked\n", games, positions)

	if mismatches > 0 {
		fmt.Fprintf(os.Stderr, "validate: %d mismatches found\n", mismatches)
		os.Exit(1)
	}
}

// validate replays the given game move by move, comparing the generated
// move list and resulting position against the reference implementation
// at every step. It returns the number of mismatches found.
func validate(game *chess.Game, positions *int) int {
	mismatches := 0

	gameBoard := board.New(board.StartFEN)
	gamePositions := game.Positions()

	for i, gameMove := range game.Moves() {
		*positions++

		ours := gameBoard.GenerateMoves()
		theirs := gamePositions[i].ValidMoves()

		if len(ours) != len(theirs) {
			mismatches++
			fmt.Fprintf(
				os.Stderr, "validate: %d legal moves, reference has %d\nfen: %s\n",
				len(ours), len(theirs), gameBoard.FEN(),
			)
		}

		played := moveString(gameMove)

		boardMove := move.Null
		for _, m := range ours {
			if m.String() == played {
				boardMove = m
				break
			}
		}

		if boardMove == move.Null {
			mismatches++
			fmt.Fprintf(
				os.Stderr, "validate: played move %s not generated\nfen: %s\n",
				played, gameBoard.FEN(),
			)
			break
		}

		gameBoard.MakeMove(boardMove)

		// compare the piece placement, side to move, and castling right
		// fields of the resulting position with the reference. The en
		// passant field and the move counters are not compared.
		own := strings.Fields(gameBoard.FEN())
		ref := strings.Fields(gamePositions[i+1].String())

		if own[0] != ref[0] || own[1] != ref[1] || own[2] != ref[2] {
			mismatches++
			fmt.Fprintf(
				os.Stderr, "validate: position diverged after %s\nown: %s\nref: %s\n",
				played, gameBoard.FEN(), gamePositions[i+1].String(),
			)
			break
		}
	}

	return mismatches
}

// moveString converts a reference move into pure coordinate notation.
func moveString(m *chess.Move) string {
	s := m.S1().String() + m.S2().String()

	switch m.Promo() {
	case chess.Queen:
		s += "q"
	case chess.Rook:
		s += "r"
	case chess.Bishop:
		s += "b"
	case chess.Knight:
		s += "n"
	}

	return s
}
