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

// Package castling provides the 4-bit castling-rights mask and the table
// that maps a touched square to the rights it revokes.
package castling

import "github.com/corvidchess/core/pkg/square"

// Rights is a 4-bit mask: [Black Queen-side][Black King-side]
// [White Queen-side][White King-side].
type Rights byte

// the four individual rights and their unions.
const (
	WhiteKingside  Rights = 1 << 0
	WhiteQueenside Rights = 1 << 1
	BlackKingside  Rights = 1 << 2
	BlackQueenside Rights = 1 << 3

	None Rights = 0

	White Rights = WhiteKingside | WhiteQueenside
	Black Rights = BlackKingside | BlackQueenside

	Kingside  Rights = WhiteKingside | BlackKingside
	Queenside Rights = WhiteQueenside | BlackQueenside

	All Rights = White | Black

	// N is the number of distinct castling-rights masks.
	N = 16
)

// NewRights parses a castling-rights mask from its FEN field, e.g. "KQkq"
// or "-". Letters may appear in any subset of the canonical KQkq order;
// anything else is silently ignored, matching FEN's tolerant field.
func NewRights(r string) Rights {
	var rights Rights
	for _, c := range r {
		switch c {
		case 'K':
			rights |= WhiteKingside
		case 'Q':
			rights |= WhiteQueenside
		case 'k':
			rights |= BlackKingside
		case 'q':
			rights |= BlackQueenside
		}
	}
	return rights
}

// String converts a Rights mask to its FEN field representation.
func (c Rights) String() string {
	var str string

	if c&WhiteKingside != 0 {
		str += "K"
	}
	if c&WhiteQueenside != 0 {
		str += "Q"
	}
	if c&BlackKingside != 0 {
		str += "k"
	}
	if c&BlackQueenside != 0 {
		str += "q"
	}

	if str == "" {
		str = "-"
	}
	return str
}

// RightUpdates maps each board square to the rights that must be cleared
// whenever a move touches it, either as a source or a target square. A
// king square clears its whole side; a rook's home square clears just
// that side's corresponding right. Moving a king or rook away, or
// capturing a rook on its home square, are both covered by checking both
// the move's source and target square against this table. Squares that
// are neither a starting king nor rook square map to None.
var RightUpdates = [square.N]Rights{
	square.A1: WhiteQueenside,
	square.E1: White,
	square.H1: WhiteKingside,
	square.A8: BlackQueenside,
	square.E8: Black,
	square.H8: BlackKingside,
}
