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

package movegen

import (
	"github.com/corvidchess/core/pkg/bitboard"
	"github.com/corvidchess/core/pkg/board"
	"github.com/corvidchess/core/pkg/move"
	"github.com/corvidchess/core/pkg/piece"
)

// IsKingChecked reports whether the side to move's king is in check.
func IsKingChecked(b *board.Board) bool {
	return b.IsInCheck(b.SideToMove)
}

// IsCheckmate reports whether the side to move is checkmated: in check,
// with no legal response.
func IsCheckmate(b *board.Board) bool {
	return b.IsInCheck(b.SideToMove) && len(Generate(b, All)) == 0
}

// IsStalemate reports whether the side to move has no legal move while
// not in check.
func IsStalemate(b *board.Board) bool {
	return !b.IsInCheck(b.SideToMove) && len(Generate(b, All)) == 0
}

// IsLegal reports whether m is one of the legal moves in b's position,
// i.e. whether it would appear in Generate(b, All).
func IsLegal(b *board.Board, m move.Move) bool {
	for _, candidate := range Generate(b, All) {
		if candidate == m {
			return true
		}
	}
	return false
}

// lightSquares and darkSquares are the two checkerboard colorings,
// used by IsDrawnByRule to test for insufficient material.
const (
	lightSquares bitboard.Board = 0x55AA55AA55AA55AA
	darkSquares  bitboard.Board = 0xAA55AA55AA55AA55
)

// IsDrawnByRule reports whether the position is a mechanically-adjudged
// draw: the 50-move rule, or insufficient mating material. Threefold
// repetition is not checked here, since recognizing it requires a
// position history that this package does not own.
func IsDrawnByRule(b *board.Board) bool {
	if b.DrawClock >= 50 {
		return true
	}
	return isInsufficientMaterial(b)
}

// isInsufficientMaterial reports whether neither side has enough material
// to force checkmate: king vs king, king+minor vs king, or king+bishop vs
// king+bishop with both bishops on the same-colored squares.
func isInsufficientMaterial(b *board.Board) bool {
	if b.PieceBBs[piece.Pawn] != bitboard.Empty ||
		b.PieceBBs[piece.Rook] != bitboard.Empty ||
		b.PieceBBs[piece.Queen] != bitboard.Empty {
		return false
	}

	knights := b.PieceBBs[piece.Knight]
	bishops := b.PieceBBs[piece.Bishop]
	minors := knights.Count() + bishops.Count()

	switch {
	case minors == 0:
		return true
	case minors == 1 && knights.Count() <= 1:
		return true
	case knights == bitboard.Empty && bishops.Count() == 2:
		return bishops&lightSquares == bishops || bishops&darkSquares == bishops
	default:
		return false
	}
}
