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

// Package position derives the per-side-to-move tactical picture of a
// board.Board - checkers, pins, and attacked squares - that the move
// generator (and anything else inspecting the position, e.g. a UI
// highlighting legal squares) needs but board.Board itself does not
// bother caching.
package position

import (
	"github.com/corvidchess/core/pkg/attacks"
	"github.com/corvidchess/core/pkg/bitboard"
	"github.com/corvidchess/core/pkg/board"
	"github.com/corvidchess/core/pkg/piece"
)

// Info is a snapshot of the tactical state of a position from the
// perspective of the side to move.
type Info struct {
	Us, Them piece.Color

	Friends, Enemies, Occupied bitboard.Board

	// CheckN is the number of pieces directly checking the side-to-move's
	// king: 0, 1, or 2 (double check).
	CheckN int
	// CheckMask is the set of squares a friendly piece must move to in
	// order to block every check. It is bitboard.Universe when CheckN is
	// 0, and Empty when CheckN is 2 (nothing but a king move helps).
	CheckMask bitboard.Board

	// PinnedD and PinnedHV hold, respectively, the diagonally- and
	// orthogonally-pinned friendly pieces, each restricted to moving
	// along the line connecting them to their own king.
	PinnedD, PinnedHV bitboard.Board

	// Attacked is the set of squares attacked by Them, not counting the
	// side-to-move's own king as a blocker (since the king must move off
	// of, not just away from, an attacked square).
	Attacked bitboard.Board
}

// Compute derives the tactical picture of b from the side to move. ready
// proves the attack tables this computation probes have finished
// initializing; callers obtain one from attacks.Init().
func Compute(ready attacks.Ready, b *board.Board) Info {
	var i Info

	i.Us = b.SideToMove
	i.Them = i.Us.Other()

	i.Friends = b.ColorBBs[i.Us]
	i.Enemies = b.ColorBBs[i.Them]
	i.Occupied = i.Friends | i.Enemies

	i.calculateCheckmask(b)
	i.calculatePinmask(b)
	i.Attacked = i.seenSquares(b, i.Them)

	return i
}

// calculateCheckmask computes CheckN and CheckMask. A pawn and a knight
// can never check simultaneously since neither is a sliding piece and so
// neither can deliver a discovered check alongside its own.
func (i *Info) calculateCheckmask(b *board.Board) {
	kingSq := b.Kings[i.Us]

	pawns := b.Pawns(i.Them) & attacks.Pawn[i.Us][kingSq]
	knights := b.Knights(i.Them) & attacks.Knight[kingSq]
	bishops := (b.Bishops(i.Them) | b.Queens(i.Them)) & attacks.Bishop(kingSq, i.Occupied)
	rooks := (b.Rooks(i.Them) | b.Queens(i.Them)) & attacks.Rook(kingSq, i.Occupied)

	switch {
	case pawns != bitboard.Empty:
		i.CheckMask |= pawns
		i.CheckN++
	case knights != bitboard.Empty:
		i.CheckMask |= knights
		i.CheckN++
	}

	if bishops != bitboard.Empty {
		sq := bishops.FirstOne()
		i.CheckMask |= attacks.Between[kingSq][sq] | bitboard.Squares[sq]
		i.CheckN += bishops.Count()
	}

	if rooks != bitboard.Empty {
		sq := rooks.FirstOne()
		i.CheckMask |= attacks.Between[kingSq][sq] | bitboard.Squares[sq]
		i.CheckN += rooks.Count()
	}

	switch {
	case i.CheckN == 0:
		i.CheckMask = bitboard.Universe
	case i.CheckN > 1:
		i.CheckMask = bitboard.Empty
	}
}

// calculatePinmask computes PinnedD and PinnedHV: pieces standing alone
// between the king and an enemy slider that attacks along that piece's
// own line, treating the king as if it were itself that slider type to
// find candidate rays cheaply.
func (i *Info) calculatePinmask(b *board.Board) {
	kingSq := b.Kings[i.Us]

	for rooks := (b.Rooks(i.Them) | b.Queens(i.Them)) & attacks.Rook(kingSq, i.Enemies); rooks != bitboard.Empty; {
		sq := rooks.Pop()
		ray := attacks.Between[kingSq][sq] | bitboard.Squares[sq]
		if (ray & i.Friends).Count() == 1 {
			i.PinnedHV |= ray
		}
	}

	for bishops := (b.Bishops(i.Them) | b.Queens(i.Them)) & attacks.Bishop(kingSq, i.Enemies); bishops != bitboard.Empty; {
		sq := bishops.Pop()
		ray := attacks.Between[kingSq][sq] | bitboard.Squares[sq]
		if (ray & i.Friends).Count() == 1 {
			i.PinnedD |= ray
		}
	}
}

// seenSquares returns every square attacked by by, ignoring by's
// opponent's king as a blocker for sliding attacks.
func (i *Info) seenSquares(b *board.Board, by piece.Color) bitboard.Board {
	blockers := i.Occupied &^ b.King(by.Other())

	seen := attacks.PawnsLeft(b.Pawns(by), by) | attacks.PawnsRight(b.Pawns(by), by)

	for knights := b.Knights(by); knights != bitboard.Empty; {
		seen |= attacks.Knight[knights.Pop()]
	}
	for bishops := b.Bishops(by); bishops != bitboard.Empty; {
		seen |= attacks.Bishop(bishops.Pop(), blockers)
	}
	for rooks := b.Rooks(by); rooks != bitboard.Empty; {
		seen |= attacks.Rook(rooks.Pop(), blockers)
	}
	for queens := b.Queens(by); queens != bitboard.Empty; {
		seen |= attacks.Queen(queens.Pop(), blockers)
	}

	seen |= attacks.King[b.Kings[by]]
	return seen
}
