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

// Command perft runs a move-generator node count from a FEN, reporting
// throughput and optionally a depth/nodes-per-second chart.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"github.com/corvidchess/core/pkg/attacks"
	"github.com/corvidchess/core/pkg/board"
	"github.com/corvidchess/core/pkg/movegen"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN of the position to search from")
	depth := flag.Int("depth", 6, "maximum perft depth")
	divide := flag.Bool("divide", false, "report a per-move node count at the maximum depth instead")
	plotFile := flag.String("plot", "", "write a depth/nodes-per-second chart to this HTML file")
	flag.Parse()

	b := board.New(attacks.Init(), *fen)

	if *divide {
		runDivide(b, *depth)
		return
	}

	if err := run(b, *depth, *plotFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDivide(b *board.Board, depth int) {
	counts := movegen.Divide(b, depth)
	total := 0
	for uci, n := range counts {
		fmt.Printf("%s: %d\n", uci, n)
		total += n
	}
	fmt.Printf("\nTotal: %d\n", total)
}

func run(b *board.Board, depth int, plotFile string) error {
	nodesPerSec := make([]opts.LineData, 0, depth)
	depths := make([]string, 0, depth)

	bar := progressbar.NewOptions(
		depth,
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("ply"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)

	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := movegen.Perft(b, d)
		elapsed := time.Since(start)

		nps := float64(nodes) / elapsed.Seconds()
		fmt.Printf("\ndepth %d: %d nodes in %s (%.0f nodes/sec)\n", d, nodes, elapsed, nps)

		depths = append(depths, fmt.Sprintf("%d", d))
		nodesPerSec = append(nodesPerSec, opts.LineData{Value: nps})

		_ = bar.Add(1)
	}

	if plotFile == "" {
		return nil
	}

	file, err := os.Create(plotFile)
	if err != nil {
		return err
	}
	defer file.Close()

	plot := charts.NewLine()
	plot.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "perft nodes/sec by depth"}))
	plot.SetXAxis(depths).AddSeries("nodes/sec", nodesPerSec)
	return plot.Render(file)
}
