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

// Package attacks holds the precalculated attack tables the move
// generator probes: non-sliding piece tables, magic bitboard tables for
// the sliding pieces, and the Between/Line tables used for pin and
// check-block detection.
package attacks

import (
	"sync"

	"github.com/corvidchess/core/pkg/bitboard"
	"github.com/corvidchess/core/pkg/piece"
	"github.com/corvidchess/core/pkg/square"
)

// Ready is a zero-size proof that every table in this package has
// finished initializing. The tables are in fact populated by this
// package's own init() functions, which Go guarantees run before any
// other code executes, so Ready is never actually unobtainable; its
// purpose is to let a caller's own API (board.New, say) require proof of
// readiness as a parameter instead of an undocumented import-order
// assumption.
type Ready struct{}

var readyOnce sync.Once

// Init returns a Ready token for this package's tables.
func Init() Ready {
	readyOnce.Do(func() {})
	return Ready{}
}

// Of returns the attack set of piece p standing on s, given occ as the
// board's occupied squares. occ is ignored for the non-sliding pieces.
func Of(p piece.Piece, s square.Square, occ bitboard.Board) bitboard.Board {
	switch p.Type() {
	case piece.Pawn:
		return Pawn[p.Color()][s]
	case piece.Knight:
		return Knight[s]
	case piece.Bishop:
		return Bishop(s, occ)
	case piece.Rook:
		return Rook(s, occ)
	case piece.Queen:
		return Queen(s, occ)
	case piece.King:
		return King[s]
	default:
		panic("attacks: unknown piece type")
	}
}

// PawnPush returns the result of pushing every pawn in pawns one step
// forward for color c.
func PawnPush(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c)
}

// PawnsLeft returns the result of every pawn in pawns capturing towards
// the a-file.
func PawnsLeft(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c).West()
}

// PawnsRight returns the result of every pawn in pawns capturing towards
// the h-file.
func PawnsRight(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c).East()
}

// Between holds, for every pair of squares that share a file, rank,
// diagonal, or anti-diagonal, the set of squares strictly between them
// (exclusive of both endpoints). For any other pair it is Empty. A square
// paired with itself holds its file minus that square.
var Between [square.N][square.N]bitboard.Board

// Line holds, for every pair of squares that share a file, rank,
// diagonal, or anti-diagonal, the full board-spanning line through both
// of them. For any other pair it is Empty.
var Line [square.N][square.N]bitboard.Board

func init() {
	for s1 := square.A1; s1 <= square.H8; s1++ {
		for s2 := square.A1; s2 <= square.H8; s2++ {
			var mask bitboard.Board
			switch {
			case s1.File() == s2.File():
				mask = bitboard.Files[s1.File()]
			case s1.Rank() == s2.Rank():
				mask = bitboard.Ranks[s1.Rank()]
			case s1.Diagonal() == s2.Diagonal():
				mask = bitboard.Diagonals[s1.Diagonal()]
			case s1.AntiDiagonal() == s2.AntiDiagonal():
				mask = bitboard.AntiDiagonals[s1.AntiDiagonal()]
			default:
				continue
			}

			Line[s1][s2] = mask

			sqs := bitboard.Squares[s1] | bitboard.Squares[s2]
			Between[s1][s2] = bitboard.Hyperbola(s1, sqs, mask) & bitboard.Hyperbola(s2, sqs, mask)
		}
	}
}
