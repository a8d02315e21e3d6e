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

package bitboard

import "github.com/corvidchess/core/pkg/square"

// useful whole-board constants.
const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// file bitboards.
const (
	FileA Board = 0x0101010101010101
	FileB Board = 0x0202020202020202
	FileC Board = 0x0404040404040404
	FileD Board = 0x0808080808080808
	FileE Board = 0x1010101010101010
	FileF Board = 0x2020202020202020
	FileG Board = 0x4040404040404040
	FileH Board = 0x8080808080808080
)

// Files indexes the file bitboards by square.File.
var Files = [square.FileN]Board{
	square.FileA: FileA,
	square.FileB: FileB,
	square.FileC: FileC,
	square.FileD: FileD,
	square.FileE: FileE,
	square.FileF: FileF,
	square.FileG: FileG,
	square.FileH: FileH,
}

// rank bitboards.
const (
	Rank1 Board = 0x00000000000000ff
	Rank2 Board = 0x000000000000ff00
	Rank3 Board = 0x0000000000ff0000
	Rank4 Board = 0x00000000ff000000
	Rank5 Board = 0x000000ff00000000
	Rank6 Board = 0x0000ff0000000000
	Rank7 Board = 0x00ff000000000000
	Rank8 Board = 0xff00000000000000
)

// Ranks indexes the rank bitboards by square.Rank.
var Ranks = [square.RankN]Board{
	square.Rank1: Rank1,
	square.Rank2: Rank2,
	square.Rank3: Rank3,
	square.Rank4: Rank4,
	square.Rank5: Rank5,
	square.Rank6: Rank6,
	square.Rank7: Rank7,
	square.Rank8: Rank8,
}

// every square except those on the a-file and on the h-file
// respectively.
const (
	NotFileA = Universe &^ FileA
	NotFileH = Universe &^ FileH
)

// Squares holds the single-bit board for every square.
var Squares [square.N]Board

// Diagonals holds the a1-h8-parallel diagonal board for every diagonal
// index (square.Diagonal).
var Diagonals [square.DiagonalN]Board

// AntiDiagonals holds the a8-h1-parallel diagonal board for every
// anti-diagonal index (square.AntiDiagonal).
var AntiDiagonals [square.AntiDiagonalN]Board

// squares a castling king or rook crosses, used to check that the
// castling path is empty (Occupied) or unattacked (Attacked).
var (
	F1G1   Board
	C1D1   Board
	B1C1D1 Board
	F8G8   Board
	C8D8   Board
	B8C8D8 Board
)

func init() {
	for s := square.A1; s <= square.H8; s++ {
		Squares[s] = Board(1) << s
	}

	for s := square.A1; s <= square.H8; s++ {
		Diagonals[s.Diagonal()] |= Squares[s]
		AntiDiagonals[s.AntiDiagonal()] |= Squares[s]
	}

	F1G1 = Squares[square.F1] | Squares[square.G1]
	C1D1 = Squares[square.C1] | Squares[square.D1]
	B1C1D1 = Squares[square.B1] | C1D1

	F8G8 = Squares[square.F8] | Squares[square.G8]
	C8D8 = Squares[square.C8] | Squares[square.D8]
	B8C8D8 = Squares[square.B8] | C8D8
}
