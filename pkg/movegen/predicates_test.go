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
	"github.com/corvidchess/core/pkg/move"
	"github.com/corvidchess/core/pkg/movegen"
	"github.com/corvidchess/core/pkg/square"
)

func TestIsCheckmate(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"fools-mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", true},
		{"startpos", board.StartFEN, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := board.New(attacks.Init(), test.fen)
			if got := movegen.IsCheckmate(b); got != test.want {
				t.Errorf("IsCheckmate(%q) = %v, want %v", test.fen, got, test.want)
			}
			if test.want && len(movegen.Generate(b, movegen.All)) != 0 {
				t.Errorf("checkmate position generated a non-empty move list")
			}
		})
	}
}

func TestIsDrawnByRule(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"insufficient-material-bare-kings", "8/8/8/4k3/8/8/4K3/8 w - - 0 1", true},
		{"fifty-move-clock", "4r3/8/8/4k3/8/8/4K3/4R3 w - - 50 60", true},
		{"forty-nine-plies-not-yet-drawn", "4r3/8/8/4k3/8/8/4K3/4R3 w - - 49 60", false},
		{"startpos-not-drawn", board.StartFEN, false},
		{"king-and-rook-not-insufficient", "8/8/8/4k3/8/8/3RK3/8 w - - 0 1", false},
		// c5 and d2 are both dark squares: same-colored bishops, insufficient.
		{"same-colored-bishops-insufficient", "8/8/8/2b1k3/8/8/3BK3/8 w - - 0 1", true},
		// d5 is light, d2 is dark: opposite-colored bishops, not insufficient.
		{"opposite-colored-bishops-not-insufficient", "8/8/8/3bk3/8/8/3BK3/8 w - - 0 1", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := board.New(attacks.Init(), test.fen)
			if got := movegen.IsDrawnByRule(b); got != test.want {
				t.Errorf("IsDrawnByRule(%q) = %v, want %v", test.fen, got, test.want)
			}
		})
	}
}

func TestIsLegalMatchesGenerate(t *testing.T) {
	b := board.New(attacks.Init(), "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	for _, m := range movegen.Generate(b, movegen.All) {
		if !movegen.IsLegal(b, m) {
			t.Errorf("IsLegal(%s) = false, but it was generated", m)
		}
	}

	// the white rook cannot jump to a8: not in the generated set, and not legal.
	illegal := move.New(square.A1, square.A8)
	if movegen.IsLegal(b, illegal) {
		t.Errorf("IsLegal(%s) = true, want false", illegal)
	}
}
