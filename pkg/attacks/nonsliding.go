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
	"github.com/corvidchess/core/pkg/bitboard"
	"github.com/corvidchess/core/pkg/piece"
	"github.com/corvidchess/core/pkg/square"
)

// King holds the precalculated king attack set for every square.
var King [square.N]bitboard.Board

// Knight holds the precalculated knight attack set for every square.
var Knight [square.N]bitboard.Board

// Pawn holds the precalculated pawn capture set for every (color, square)
// combination.
var Pawn [piece.NColor][square.N]bitboard.Board

func kingAttacksFrom(s square.Square) bitboard.Board {
	king := bitboard.Squares[s]

	n := king.North()
	so := king.South()
	e := king.East()
	w := king.West()

	attacks := n | so | e | w
	attacks |= n.East() | n.West()
	attacks |= so.East() | so.West()
	return attacks
}

func knightAttacksFrom(s square.Square) bitboard.Board {
	knight := bitboard.Squares[s]

	n := knight.North().North()
	so := knight.South().South()
	e := knight.East().East()
	w := knight.West().West()

	attacks := n.East() | n.West()
	attacks |= so.East() | so.West()
	attacks |= e.North() | e.South()
	attacks |= w.North() | w.South()
	return attacks
}

func whitePawnAttacksFrom(s square.Square) bitboard.Board {
	up := bitboard.Squares[s].North()
	return up.East() | up.West()
}

func blackPawnAttacksFrom(s square.Square) bitboard.Board {
	down := bitboard.Squares[s].South()
	return down.East() | down.West()
}

func init() {
	for s := square.A1; s <= square.H8; s++ {
		King[s] = kingAttacksFrom(s)
		Knight[s] = knightAttacksFrom(s)
		Pawn[piece.White][s] = whitePawnAttacksFrom(s)
		Pawn[piece.Black][s] = blackPawnAttacksFrom(s)
	}
}
