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

// Package square declares the 0..63 board index type and the file, rank,
// and direction types used to build and decompose it.
//
// Squares are numbered file-major, rank 1 first: A1 is 0, H1 is 7, A8 is
// 56, and H8 is 63 (the standard little-endian rank-file mapping).
package square

// Square represents a single square on a chessboard as an index 0..63.
// The low 3 bits are the file, the next 3 bits are the rank.
type Square int8

// None is a sentinel representing the absence of a square, e.g. an empty
// en-passant target.
const None Square = -1

// N is the number of squares on a chessboard.
const N = 64

// constants representing every square, rank 1 first.
const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 0, 1, 2, 3, 4, 5, 6, 7
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 8, 9, 10, 11, 12, 13, 14, 15
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 16, 17, 18, 19, 20, 21, 22, 23
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 24, 25, 26, 27, 28, 29, 30, 31
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 32, 33, 34, 35, 36, 37, 38, 39
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 40, 41, 42, 43, 44, 45, 46, 47
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 48, 49, 50, 51, 52, 53, 54, 55
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 56, 57, 58, 59, 60, 61, 62, 63
)

// New creates a Square from the given file and rank.
func New(file File, rank Rank) Square {
	return Square(int(rank)<<3 | int(file))
}

// NewFromString parses a square from its algebraic notation, e.g. "e4".
// The string "-" parses to None. It panics on any other malformed input;
// callers at a parse boundary (FEN, move notation) are expected to
// validate length first.
func NewFromString(id string) Square {
	if id == "-" {
		return None
	}
	if len(id) != 2 {
		panic("square: invalid square id " + id)
	}
	return New(FileFrom(id[0:1]), RankFrom(id[1:2]))
}

// String converts a Square to its algebraic notation.
func (s Square) String() string {
	if s == None {
		return "-"
	}
	return s.File().String() + s.Rank().String()
}

// File returns the file of the square.
func (s Square) File() File {
	return File(s) & 7
}

// Rank returns the rank of the square.
func (s Square) Rank() Rank {
	return Rank(s) >> 3
}

// Flip mirrors a square vertically, i.e. across the rank axis: A1 <-> A8.
// Used to translate a position into its color-swapped counterpart.
func (s Square) Flip() Square {
	return s ^ 56
}

// Add offsets a square by a signed delta. The result is assumed to be a
// valid square; callers must ensure the offset does not walk off the
// board (e.g. via a file/rank bound check before calling).
func (s Square) Add(offset int) Square {
	return s + Square(offset)
}

// Diagonal returns the a1-h8-parallel diagonal index of the square, used
// to index the diagonal bitboard tables.
func (s Square) Diagonal() Diagonal {
	return Diagonal(s.Rank()) - Diagonal(s.File()) + 7
}

// AntiDiagonal returns the a8-h1-parallel diagonal index of the square,
// used to index the anti-diagonal bitboard tables.
func (s Square) AntiDiagonal() AntiDiagonal {
	return AntiDiagonal(s.Rank()) + AntiDiagonal(s.File())
}
