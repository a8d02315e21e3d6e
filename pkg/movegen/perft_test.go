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

package movegen_test

import (
	"testing"

	"github.com/corvidchess/core/pkg/attacks"
	"github.com/corvidchess/core/pkg/board"
	"github.com/corvidchess/core/pkg/movegen"
)

// perftCase pairs a FEN with known node counts at increasing depths,
// taken from the standard chessprogramming.org perft suite. These catch
// castling rights, en-passant, pin, and discovered-check bugs that
// shallow positions don't exercise.
type perftCase struct {
	name  string
	fen   string
	nodes []int
}

var perftCases = []perftCase{
	{
		name:  "startpos",
		fen:   board.StartFEN,
		nodes: []int{1, 20, 400, 8902, 197281},
	},
	{
		name:  "kiwipete",
		fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		nodes: []int{1, 48, 2039, 97862},
	},
	{
		name:  "position3",
		fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		nodes: []int{1, 14, 191, 2812, 43238},
	},
	{
		name:  "position4",
		fen:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		nodes: []int{1, 6, 264, 9467},
	},
	{
		name:  "position5",
		fen:   "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		nodes: []int{1, 44, 1486, 62379},
	},
}

func TestPerft(t *testing.T) {
	for _, c := range perftCases {
		t.Run(c.name, func(t *testing.T) {
			b := board.New(attacks.Init(), c.fen)
			for depth, want := range c.nodes {
				got := movegen.Perft(b, depth)
				if got != want {
					t.Errorf("depth %d: got %d nodes, want %d", depth, got, want)
				}
			}
		})
	}
}

// TestMakeUnmakeRestoresHash plays every perft leaf at depth 3 from the
// starting position and confirms the hash and FEN are restored exactly
// once every branch unwinds.
func TestMakeUnmakeRestoresHash(t *testing.T) {
	b := board.New(attacks.Init(), board.StartFEN)
	wantHash := b.Hash
	wantFEN := b.FEN()

	var walk func(depth int)
	walk = func(depth int) {
		if depth == 0 {
			return
		}
		for _, m := range movegen.Generate(b, movegen.All) {
			b.MakeMove(m)
			walk(depth - 1)
			b.UnmakeMove()
		}
	}
	walk(3)

	if b.Hash != wantHash {
		t.Errorf("hash not restored: got %016X, want %016X", uint64(b.Hash), uint64(wantHash))
	}
	if got := b.FEN(); got != wantFEN {
		t.Errorf("fen not restored: got %q, want %q", got, wantFEN)
	}
}
