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

package board

import (
	"github.com/corvidchess/core/pkg/attacks"
	"github.com/corvidchess/core/pkg/castling"
	"github.com/corvidchess/core/pkg/move"
	"github.com/corvidchess/core/pkg/piece"
	"github.com/corvidchess/core/pkg/square"
	"github.com/corvidchess/core/pkg/util"
	"github.com/corvidchess/core/pkg/zobrist"
)

// rookCastleSquares maps a king's castle-move target square to the rook's
// source and destination squares for that side.
var rookCastleSquares = map[square.Square][2]square.Square{
	square.G1: {square.H1, square.F1},
	square.C1: {square.A1, square.D1},
	square.G8: {square.H8, square.F8},
	square.C8: {square.A8, square.D8},
}

// MakeMove plays m, which must be a legal move in the current position.
// Every call must be paired with a later UnmakeMove call, in LIFO order,
// to restore the position.
func (b *Board) MakeMove(m move.Move) {
	h := &b.history[b.Plys]
	h.Move = m
	h.CastlingRights = b.CastlingRights
	h.Captured = piece.Empty
	h.EnPassantTarget = b.EnPassantTarget
	h.DrawClock = b.DrawClock

	b.DrawClock++

	if m == move.Null {
		b.switchTurn()
		return
	}

	from, to := m.From(), m.To()
	moved := b.Mailbox[from].Piece()

	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}
	b.EnPassantTarget = square.None

	if moved.Is(piece.Pawn) {
		b.DrawClock = 0
	}

	switch m.Kind() {
	case move.EnPassant:
		captureSq := to.Add(int(square.South))
		if b.SideToMove == piece.Black {
			captureSq = to.Add(int(square.North))
		}
		h.Captured = b.Mailbox[captureSq]
		b.clearSquare(captureSq)
		b.DrawClock = 0

	case move.Castle:
		rook := rookCastleSquares[to]
		rookPiece := b.Mailbox[rook[0]].Piece()
		b.clearSquare(rook[0])
		b.fillSquare(rook[1], rookPiece)
		b.DrawClock = 0

	default:
		if !b.Mailbox[to].IsEmpty() {
			h.Captured = b.Mailbox[to]
			b.clearSquare(to)
			b.DrawClock = 0
		}

		if m.Kind() == move.Normal && m.IsDoublePush() {
			target := from.Add(int(square.North))
			if b.SideToMove == piece.Black {
				target = from.Add(int(square.South))
			}
			if b.Pawns(b.SideToMove.Other())&attacks.Pawn[b.SideToMove][target] != 0 {
				b.EnPassantTarget = target
				b.Hash ^= zobrist.EnPassant[target.File()]
			}
		}
	}

	b.clearSquare(from)
	if m.Kind() == move.Promotion {
		b.fillSquare(to, piece.New(promotionType(m.PromotionPiece()), b.SideToMove))
	} else {
		b.fillSquare(to, moved)
	}

	b.Hash ^= zobrist.Castling[b.CastlingRights]
	b.CastlingRights &^= castling.RightUpdates[from]
	b.CastlingRights &^= castling.RightUpdates[to]
	b.Hash ^= zobrist.Castling[b.CastlingRights]
	if b.CastlingRights != h.CastlingRights {
		b.DrawClock = 0
	}

	b.switchTurn()
}

func (b *Board) switchTurn() {
	b.Plys++
	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.White {
		b.FullMoves++
	}
	b.Hash ^= zobrist.SideToMove
}

// UnmakeMove reverses the effect of the most recent MakeMove call. It
// rebuilds the hash by reversing the same XOR updates MakeMove applied,
// rather than restoring a stashed value.
func (b *Board) UnmakeMove() {
	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.Black {
		b.FullMoves--
	}
	b.Plys--
	b.Hash ^= zobrist.SideToMove

	h := &b.history[b.Plys]

	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}
	b.EnPassantTarget = h.EnPassantTarget
	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}
	b.DrawClock = h.DrawClock

	b.Hash ^= zobrist.Castling[b.CastlingRights]
	b.CastlingRights = h.CastlingRights
	b.Hash ^= zobrist.Castling[b.CastlingRights]

	m := h.Move
	if m == move.Null {
		return
	}

	from, to := m.From(), m.To()

	var moved piece.Piece
	if m.Kind() == move.Promotion {
		moved = piece.New(piece.Pawn, b.SideToMove)
	} else {
		moved = b.Mailbox[to].Piece()
	}

	b.clearSquare(to)
	b.fillSquare(from, moved)

	switch m.Kind() {
	case move.Castle:
		rook := rookCastleSquares[to]
		rookPiece := b.Mailbox[rook[1]].Piece()
		b.clearSquare(rook[1])
		b.fillSquare(rook[0], rookPiece)

	case move.EnPassant:
		captureSq := to.Add(int(square.South))
		if b.SideToMove == piece.Black {
			captureSq = to.Add(int(square.North))
		}
		b.fillSquare(captureSq, h.Captured.Piece())

	default:
		if !h.Captured.IsEmpty() {
			b.fillSquare(to, h.Captured.Piece())
		}
	}
}

// NewMove builds a move.Move from a from/to square pair as they would be
// written in UCI notation, consulting the current position to work out
// which of Normal/Castle/Promotion/EnPassant it is. promo is only
// consulted when isPromo is set; isPromo alone decides whether the result
// is a Promotion move.
func (b *Board) NewMove(from, to square.Square, promo move.PromotionPiece, isPromo bool) move.Move {
	moved := b.Mailbox[from].Piece()

	switch {
	case isPromo:
		return move.NewPromotion(from, to, promo)

	case moved.Is(piece.King) && from.File() == square.FileE &&
		(to.File() == square.FileG || to.File() == square.FileC) &&
		from.Rank() == to.Rank():
		return move.NewCastle(from, to)

	case moved.Is(piece.Pawn) && to == b.EnPassantTarget && b.EnPassantTarget != square.None:
		return move.NewEnPassant(from, to)

	case moved.Is(piece.Pawn) && util.Abs(from.Rank()-to.Rank()) == 2:
		return move.NewDoublePush(from, to)

	default:
		return move.New(from, to)
	}
}

func promotionType(p move.PromotionPiece) piece.Type {
	switch p {
	case move.PromoQueen:
		return piece.Queen
	case move.PromoRook:
		return piece.Rook
	case move.PromoBishop:
		return piece.Bishop
	default:
		return piece.Knight
	}
}
