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

package attacks

import (
	"github.com/corvidchess/core/pkg/attacks/magic"
	"github.com/corvidchess/core/pkg/bitboard"
	"github.com/corvidchess/core/pkg/square"
)

var bishopTable *magic.Table
var rookTable *magic.Table

func bishopMoves(s square.Square, occ bitboard.Board, isMask bool) bitboard.Board {
	diagonalMask := bitboard.Diagonals[s.Diagonal()]
	diagonalAttacks := bitboard.Hyperbola(s, occ, diagonalMask)

	antiDiagonalMask := bitboard.AntiDiagonals[s.AntiDiagonal()]
	antiDiagonalAttacks := bitboard.Hyperbola(s, occ, antiDiagonalMask)

	attacks := diagonalAttacks | antiDiagonalAttacks
	if isMask {
		attacks &^= bitboard.Rank1 | bitboard.Rank8 | bitboard.FileA | bitboard.FileH
	}
	return attacks
}

func rookMoves(s square.Square, occ bitboard.Board, isMask bool) bitboard.Board {
	fileMask := bitboard.Files[s.File()]
	fileAttacks := bitboard.Hyperbola(s, occ, fileMask)

	rankMask := bitboard.Ranks[s.Rank()]
	rankAttacks := bitboard.Hyperbola(s, occ, rankMask)

	if isMask {
		fileAttacks &^= bitboard.Rank1 | bitboard.Rank8
		rankAttacks &^= bitboard.FileA | bitboard.FileH
	}
	return fileAttacks | rankAttacks
}

// Bishop returns the bishop attack set from s given occ as the occupied
// squares.
func Bishop(s square.Square, occ bitboard.Board) bitboard.Board {
	return bishopTable.Probe(s, occ)
}

// Rook returns the rook attack set from s given occ as the occupied
// squares.
func Rook(s square.Square, occ bitboard.Board) bitboard.Board {
	return rookTable.Probe(s, occ)
}

// Queen returns the queen attack set from s given occ as the occupied
// squares: the union of the bishop and rook attack sets.
func Queen(s square.Square, occ bitboard.Board) bitboard.Board {
	return Bishop(s, occ) | Rook(s, occ)
}

func init() {
	bishopTable = magic.NewTable(bishopMagicNumbers, bishopMoves)
	rookTable = magic.NewTable(rookMagicNumbers, rookMoves)
}
