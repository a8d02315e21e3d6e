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

package board_test

import (
	"testing"

	"github.com/corvidchess/core/pkg/attacks"
	"github.com/corvidchess/core/pkg/board"
	"github.com/corvidchess/core/pkg/move"
	"github.com/corvidchess/core/pkg/square"
)

// TestHashMatchesRebuild confirms the incrementally-maintained hash
// equals a from-scratch Zobrist rebuild of the same position reached via
// FEN, for a handful of positions with different castling/en-passant
// states.
func TestHashMatchesRebuild(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}

	for _, fen := range fens {
		a := board.New(attacks.Init(), fen)
		b := board.New(attacks.Init(), a.FEN())
		if a.Hash != b.Hash {
			t.Errorf("fen %q: hash %016X, rebuilt from its own FEN gives %016X", fen, uint64(a.Hash), uint64(b.Hash))
		}
	}
}

// TestHashAfterMakeMoveMatchesRebuild plays a single move of each kind
// that touches the hash outside of plain piece movement - double push,
// en-passant capture, castle, plain capture, promotion - and confirms the resulting
// incrementally-updated hash matches a from-scratch rebuild of the FEN it
// reaches, then that UnmakeMove's reversal returns to the original hash.
func TestHashAfterMakeMoveMatchesRebuild(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
	}{
		{"double-push", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", "e2", "e4"},
		{"en-passant", "4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1", "d4", "e3"},
		{"castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1", "g1"},
		{"capture", "4k3/8/8/8/8/8/3pR3/4K3 w - - 0 1", "e2", "d2"},
		{"promotion", "4k3/4P3/8/8/8/8/8/4K3 w - - 0 1", "e7", "e8"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := board.New(attacks.Init(), test.fen)
			wantHash := b.Hash

			m := b.NewMove(square.NewFromString(test.from), square.NewFromString(test.to), move.PromoQueen, test.name == "promotion")
			b.MakeMove(m)

			if rebuilt := board.New(attacks.Init(), b.FEN()); b.Hash != rebuilt.Hash {
				t.Errorf("%s: hash %016X after %s, rebuild from %q gives %016X", test.name, uint64(b.Hash), m, b.FEN(), uint64(rebuilt.Hash))
			}

			b.UnmakeMove()
			if b.Hash != wantHash {
				t.Errorf("%s: hash %016X after unmake, want %016X", test.name, uint64(b.Hash), uint64(wantHash))
			}
		})
	}
}
