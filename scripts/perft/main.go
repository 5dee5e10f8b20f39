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

// This script runs the standard perft validation suite against the move
// generator. Any node count deviating from the known value is reported
// as a failure, and a throughput report is rendered to perft-report.html
// once the suite completes.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"
	"laptudirm.com/x/gambit/pkg/board"
)

type perftTest struct {
	name  string
	fen   string
	depth int
	nodes uint64
}

// the expected node counts are exact, taken from
// https://www.chessprogramming.org/Perft_Results
var suite = []perftTest{
	{
		name:  "startpos",
		fen:   board.StartFEN,
		depth: 6,
		nodes: 119_060_324,
	},
	{
		name:  "kiwipete",
		fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		depth: 5,
		nodes: 193_690_690,
	},
	{
		name:  "endgame",
		fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		depth: 6,
		nodes: 11_030_083,
	},
	{
		name:  "promotions",
		fen:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		depth: 5,
		nodes: 15_833_292,
	},
	{
		name:  "promotions-mirrored",
		fen:   "r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1",
		depth: 4,
		nodes: 422_333,
	},
	{
		name:  "talkchess",
		fen:   "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		depth: 5,
		nodes: 89_941_194,
	},
}

func main() {
	progressBar := progressbar.NewOptions(
		len(suite),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("position"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)

	names := make([]string, 0, len(suite))
	npsData := make([]opts.BarData, 0, len(suite))

	failures := 0

	for _, test := range suite {
		b := board.New(test.fen)

		start := time.Now()
		nodes := b.Perft(test.depth)
		elapsed := time.Since(start)

		if nodes != test.nodes {
			failures++
			fmt.Fprintf(
				os.Stderr, "\nperft: %s depth %d: %d nodes, expected %d\n",
				test.name, test.depth, nodes, test.nodes,
			)
		}

		names = append(names, test.name)
		npsData = append(npsData, opts.BarData{Value: float64(nodes) / elapsed.Seconds()})

		_ = progressBar.Add(1)
	}

	_ = progressBar.Close()

	// plot the throughput data for each suite position
	report := charts.NewBar()
	report.SetXAxis(names).AddSeries("nodes/s", npsData)

	reportFile, err := os.Create("perft-report.html")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	_ = report.Render(reportFile)

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "perft: %d suite positions failed\n", failures)
		os.Exit(1)
	}

	fmt.Println("perft: all suite positions passed")
}
