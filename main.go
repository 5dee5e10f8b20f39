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

// Gambit is a legal chess move generation library. This binary is a
// small command line driver over the library, mainly useful to debug
// positions and to validate move generation with perft counts.
package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"laptudirm.com/x/gambit/internal/build"
	"laptudirm.com/x/gambit/pkg/board"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		// exit with error
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// quiet exit
}

var errUsage = errors.New(
	"usage: gambit <command> [args]\n" +
		"commands:\n" +
		"  d [fen]              display the given position\n" +
		"  moves [fen]          list the legal moves in the given position\n" +
		"  perft <depth> [fen]  count the leaf nodes at the given depth\n" +
		"  divide <depth> [fen] perft broken down by root move",
)

func run(args []string) error {
	fmt.Printf("Gambit %s by Rak Laptudirm\n", build.Version)

	if len(args) == 0 {
		return errUsage
	}

	switch cmd := args[0]; cmd {
	case "d":
		b := boardFrom(args[1:])
		fmt.Println(b)
		return nil

	case "moves":
		b := boardFrom(args[1:])

		moves := b.GenerateMoves()
		strs := make([]string, 0, len(moves))
		for _, m := range moves {
			strs = append(strs, m.String())
		}

		fmt.Printf("%d moves: %s\n", len(moves), strings.Join(strs, " "))
		return nil

	case "perft":
		if len(args) < 2 {
			return errUsage
		}

		depth, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("perft: invalid depth %q", args[1])
		}

		b := boardFrom(args[2:])

		start := time.Now()
		nodes := b.Perft(depth)
		elapsed := time.Since(start)

		fmt.Printf("nodes %d time %s nps %.0f\n", nodes, elapsed, float64(nodes)/elapsed.Seconds())
		return nil

	case "divide":
		if len(args) < 2 {
			return errUsage
		}

		depth, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("divide: invalid depth %q", args[1])
		}

		b := boardFrom(args[2:])

		counts, total := b.Divide(depth)

		// print the moves in a stable order
		moves := make([]string, 0, len(counts))
		for m := range counts {
			moves = append(moves, m)
		}
		sort.Strings(moves)

		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, counts[m])
		}
		fmt.Printf("total %d\n", total)
		return nil

	default:
		return errUsage
	}
}

// boardFrom creates a board from the fen provided in the given trailing
// arguments, or the starting position if there are none.
func boardFrom(args []string) *board.Board {
	if len(args) == 0 {
		return board.New(board.StartFEN)
	}

	return board.New(strings.Join(args, " "))
}
