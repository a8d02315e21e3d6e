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

// Package move declares the 16-bit packed Move record, its Kind and
// PromotionPiece fields, and a CastlingRights mask type.
package move

import "github.com/corvidchess/core/pkg/square"

// Move is a 16-bit packed move record:
//
//	bits 0..5:   from-square (0..63)
//	bits 6..11:  to-square (0..63)
//	bits 12..13: Kind
//	bits 14..15: for Kind == Promotion, the Promotion piece;
//	             for Kind == Normal, bit 14 is the double-pawn-push flag
//	             and bit 15 is unused (zero)
type Move uint16

const (
	fromShift = 0
	toShift   = 6
	kindShift = 12
	extShift  = 14

	fromMask = 0x3F
	toMask   = 0x3F
	kindMask = 0x3
	extMask  = 0x3
)

// Invalid is a sentinel Move (all ones) that is never a valid move.
const Invalid Move = 0xFFFF

// Null is the "pass" pseudo-move used by null-move search. It is bit
// pattern zero, which also happens to decode as a1a1 Normal - callers
// must special-case it rather than ever generating or playing it as a
// real move.
const Null Move = 0

// Kind identifies which of the four move shapes a Move encodes.
type Kind uint8

// the four move kinds.
const (
	Normal Kind = iota
	Castle
	Promotion
	EnPassant
)

// PromotionPiece identifies the piece type a pawn promotes to.
type PromotionPiece uint8

// the four promotion pieces.
const (
	PromoQueen PromotionPiece = iota
	PromoKnight
	PromoRook
	PromoBishop
)

// String converts a PromotionPiece to its lower-case notation letter.
func (p PromotionPiece) String() string {
	const s = "qnrb"
	return string(s[p&extMask])
}

func pack(from, to square.Square, kind Kind, ext uint8) Move {
	return Move(from)<<fromShift | Move(to)<<toShift | Move(kind)<<kindShift | Move(ext)<<extShift
}

// New creates a Normal move from source to target, with the double-push
// flag unset.
func New(from, to square.Square) Move {
	return pack(from, to, Normal, 0)
}

// NewDoublePush creates a Normal pawn double-push move, which sets the
// bit make_move inspects to establish the en-passant target square.
func NewDoublePush(from, to square.Square) Move {
	return pack(from, to, Normal, 1)
}

// NewCastle creates a Castle move; to is the king's destination square
// (c1/g1/c8/g8), which also identifies which rook castles.
func NewCastle(from, to square.Square) Move {
	return pack(from, to, Castle, 0)
}

// NewPromotion creates a Promotion move to the given piece.
func NewPromotion(from, to square.Square, p PromotionPiece) Move {
	return pack(from, to, Promotion, uint8(p))
}

// NewEnPassant creates an EnPassant capture move.
func NewEnPassant(from, to square.Square) Move {
	return pack(from, to, EnPassant, 0)
}

// From returns the move's source square.
func (m Move) From() square.Square {
	return square.Square((m >> fromShift) & fromMask)
}

// To returns the move's target square.
func (m Move) To() square.Square {
	return square.Square((m >> toShift) & toMask)
}

// Kind returns the move's kind.
func (m Move) Kind() Kind {
	return Kind((m >> kindShift) & kindMask)
}

// IsDoublePush reports whether a Normal move is a pawn double push.
// Only meaningful when Kind() == Normal.
func (m Move) IsDoublePush() bool {
	return (m>>extShift)&extMask == 1
}

// PromotionPiece returns the promoted-to piece of a Promotion move. Only
// meaningful when Kind() == Promotion.
func (m Move) PromotionPiece() PromotionPiece {
	return PromotionPiece((m >> extShift) & extMask)
}

// String renders a move in UCI-style notation: "e2e4", "e7e8q", "0000"
// for Null.
func (m Move) String() string {
	if m == Null {
		return "0000"
	}

	s := m.From().String() + m.To().String()
	if m.Kind() == Promotion {
		s += m.PromotionPiece().String()
	}
	return s
}
