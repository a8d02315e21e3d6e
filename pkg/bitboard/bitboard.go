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

// Package bitboard implements the 64-bit set representation used for
// occupancy, attack, and mask data, and the shift/scan operations on it.
package bitboard

import (
	"math/bits"

	"github.com/corvidchess/core/pkg/piece"
	"github.com/corvidchess/core/pkg/square"
)

// Board is a 64-bit set of squares, bit i corresponding to square.Square(i).
type Board uint64

// String renders the board as an 8x8 grid of 1s and 0s, rank 8 first.
func (b Board) String() string {
	var str string
	for r := square.Rank8; r >= square.Rank1; r-- {
		for f := square.FileA; f <= square.FileH; f++ {
			if b.IsSet(square.New(f, r)) {
				str += "1"
			} else {
				str += "0"
			}
			if f == square.FileH {
				str += "\n"
			} else {
				str += " "
			}
		}
	}
	return str
}

// Up shifts the board one rank towards the far side, relative to c.
func (b Board) Up(c piece.Color) Board {
	if c == piece.White {
		return b.North()
	}
	return b.South()
}

// Down shifts the board one rank towards the near side, relative to c.
func (b Board) Down(c piece.Color) Board {
	if c == piece.White {
		return b.South()
	}
	return b.North()
}

// North shifts the board towards rank 8.
func (b Board) North() Board {
	return b << 8
}

// South shifts the board towards rank 1.
func (b Board) South() Board {
	return b >> 8
}

// East shifts the board towards the h-file, clearing wraparound.
func (b Board) East() Board {
	return (b &^ FileH) << 1
}

// West shifts the board towards the a-file, clearing wraparound.
func (b Board) West() Board {
	return (b &^ FileA) >> 1
}

// Pop removes and returns the lowest-indexed set square.
func (b *Board) Pop() square.Square {
	sq := b.FirstOne()
	*b &= *b - 1
	return sq
}

// Count returns the number of set squares.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// FirstOne returns the lowest-indexed set square, or 64 if b is empty.
func (b Board) FirstOne() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// IsSet reports whether s is a member of the board.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != 0
}

// Set adds s to the board. Setting square.None is a no-op, which lets
// callers pass an absent en-passant square through unconditionally.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}
	*b |= Squares[s]
}

// Unset removes s from the board. Unsetting square.None is a no-op.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}
	*b &^= Squares[s]
}
