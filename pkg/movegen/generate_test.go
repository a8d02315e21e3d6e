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

func sq(s string) square.Square { return square.NewFromString(s) }

func TestGenerateStartposShape(t *testing.T) {
	b := board.New(attacks.Init(), board.StartFEN)
	moves := movegen.Generate(b, movegen.All)

	if len(moves) != 20 {
		t.Fatalf("got %d moves, want 20", len(moves))
	}
	for _, m := range moves {
		if !b.Mailbox[m.To()].IsEmpty() {
			t.Errorf("move %s is a capture in the starting position", m)
		}
	}
}

func TestGenerateEnPassant(t *testing.T) {
	b := board.New(attacks.Init(), "4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1")

	var epMoves []move.Move
	for _, m := range movegen.Generate(b, movegen.All) {
		if m.Kind() == move.EnPassant {
			epMoves = append(epMoves, m)
		}
	}
	if len(epMoves) != 1 {
		t.Fatalf("got %d en-passant moves, want 1", len(epMoves))
	}
	if got := epMoves[0].String(); got != "d4e3" {
		t.Errorf("en-passant move = %s, want d4e3", got)
	}

	b.MakeMove(epMoves[0])
	if !b.Mailbox[sq("e4")].IsEmpty() {
		t.Errorf("white pawn still on e4 after en-passant capture")
	}
	if got := b.Mailbox[sq("e3")]; got.IsEmpty() || got.Piece().Type().String() != "P" {
		t.Errorf("black pawn not on e3 after en-passant capture: %v", got)
	}
}

func TestGenerateCastling(t *testing.T) {
	b := board.New(attacks.Init(), "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	var castles []move.Move
	for _, m := range movegen.Generate(b, movegen.All) {
		if m.Kind() == move.Castle {
			castles = append(castles, m)
		}
	}
	if len(castles) != 2 {
		t.Fatalf("got %d castling moves for white, want 2", len(castles))
	}
}

func TestGenerateDirectionSanity(t *testing.T) {
	b := board.New(attacks.Init(), "8/8/8/8/1k6/8/P7/K7 w - - 0 1")
	illegal := move.NewPromotion(sq("a2"), sq("a1"), move.PromoQueen)
	if movegen.IsLegal(b, illegal) {
		t.Errorf("a2a1=Q reported legal for white, which can only push toward rank 8")
	}
}

// TestNoPseudoLegalEscapes confirms every generated move, once played,
// leaves the mover's own king safe.
func TestNoPseudoLegalEscapes(t *testing.T) {
	for _, c := range perftCases {
		b := board.New(attacks.Init(), c.fen)
		for _, m := range movegen.Generate(b, movegen.All) {
			mover := b.SideToMove
			b.MakeMove(m)
			if b.IsInCheck(mover) {
				t.Errorf("%s: move %s leaves %v's king in check", c.name, m, mover)
			}
			b.UnmakeMove()
		}
	}
}
