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

// Package board implements the bitboard/mailbox chess position along
// with FEN parsing and move make/unmake.
package board

import (
	"fmt"

	"github.com/corvidchess/core/pkg/attacks"
	"github.com/corvidchess/core/pkg/bitboard"
	"github.com/corvidchess/core/pkg/castling"
	"github.com/corvidchess/core/pkg/move"
	"github.com/corvidchess/core/pkg/piece"
	"github.com/corvidchess/core/pkg/square"
	"github.com/corvidchess/core/pkg/zobrist"
)

// maxPlys bounds the length of a single game's move history. It is far
// beyond any game reachable under the 50-move/threefold-repetition rules.
const maxPlys = 1024

// Board is a complete chess position: redundant piece-bitboard and
// mailbox representations of the same occupancy, kept in sync by
// MakeMove/UnmakeMove, plus the state FEN cannot express as a single
// piece placement (side to move, castling rights, en-passant target,
// move counters) and an incremental Zobrist hash.
type Board struct {
	Hash zobrist.Key

	Mailbox  [square.N]piece.SquareContent
	PieceBBs [piece.TypeN]bitboard.Board
	ColorBBs [piece.NColor]bitboard.Board

	Kings [piece.NColor]square.Square

	SideToMove      piece.Color
	EnPassantTarget square.Square
	CastlingRights  castling.Rights

	Plys      int
	FullMoves int
	DrawClock int

	history [maxPlys]undo
}

// undo is the information MakeMove stashes so UnmakeMove can restore the
// position. The hash itself isn't one of these fields: UnmakeMove
// re-derives it by reversing the same XOR updates MakeMove applied.
type undo struct {
	Move            move.Move
	CastlingRights  castling.Rights
	Captured        piece.SquareContent
	EnPassantTarget square.Square
	DrawClock       int
}

// New creates a Board from a FEN string. ready proves the attack tables
// this Board's move generation and check detection will probe have
// finished initializing; callers obtain one from attacks.Init(). New
// panics on a malformed FEN; callers at a trust boundary should validate
// the string first.
func New(ready attacks.Ready, fen string) *Board {
	return ParseFEN(fen)
}

// Occupied returns the set of all occupied squares.
func (b *Board) Occupied() bitboard.Board {
	return b.ColorBBs[piece.White] | b.ColorBBs[piece.Black]
}

// Pawns returns c's pawns.
func (b *Board) Pawns(c piece.Color) bitboard.Board { return b.PieceBBs[piece.Pawn] & b.ColorBBs[c] }

// Knights returns c's knights.
func (b *Board) Knights(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Knight] & b.ColorBBs[c]
}

// Bishops returns c's bishops.
func (b *Board) Bishops(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Bishop] & b.ColorBBs[c]
}

// Rooks returns c's rooks.
func (b *Board) Rooks(c piece.Color) bitboard.Board { return b.PieceBBs[piece.Rook] & b.ColorBBs[c] }

// Queens returns c's queens.
func (b *Board) Queens(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Queen] & b.ColorBBs[c]
}

// King returns c's king as a singleton bitboard.
func (b *Board) King(c piece.Color) bitboard.Board { return b.PieceBBs[piece.King] & b.ColorBBs[c] }

// clearSquare removes whatever piece stands on s from every board record.
// s must currently be occupied.
func (b *Board) clearSquare(s square.Square) {
	p := b.Mailbox[s].Piece()

	b.ColorBBs[p.Color()].Unset(s)
	b.PieceBBs[p.Type()].Unset(s)
	b.Mailbox[s] = piece.Empty
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// fillSquare places p on s, which must currently be empty.
func (b *Board) fillSquare(s square.Square, p piece.Piece) {
	c := p.Color()

	b.ColorBBs[c].Set(s)
	if p.Is(piece.King) {
		b.Kings[c] = s
	}

	b.PieceBBs[p.Type()].Set(s)
	b.Mailbox[s] = p.Content()
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// IsInCheck reports whether c's king is attacked in the current position.
func (b *Board) IsInCheck(c piece.Color) bool {
	return b.IsAttacked(b.Kings[c], c.Other())
}

// IsAttacked reports whether any of by's pieces attacks s.
func (b *Board) IsAttacked(s square.Square, by piece.Color) bool {
	occ := b.Occupied()

	if attacks.Pawn[by.Other()][s]&b.Pawns(by) != bitboard.Empty {
		return true
	}
	if attacks.Knight[s]&b.Knights(by) != bitboard.Empty {
		return true
	}
	if attacks.King[s]&b.King(by) != bitboard.Empty {
		return true
	}

	queens := b.Queens(by)
	if attacks.Bishop(s, occ)&(b.Bishops(by)|queens) != bitboard.Empty {
		return true
	}
	return attacks.Rook(s, occ)&(b.Rooks(by)|queens) != bitboard.Empty
}

// String renders the board as an ASCII diagram followed by its FEN and
// Zobrist hash.
func (b *Board) String() string {
	s := "+---+---+---+---+---+---+---+---+\n"
	for r := square.Rank8; r >= square.Rank1; r-- {
		s += "| "
		for f := square.FileA; f <= square.FileH; f++ {
			s += b.Mailbox[square.New(f, r)].String() + " | "
		}
		s += fmt.Sprintln(int(r) + 1)
		s += "+---+---+---+---+---+---+---+---+\n"
	}
	s += "  a   b   c   d   e   f   g   h\n"
	return fmt.Sprintf("%sFEN: %s\nHash: %016X\n", s, b.FEN(), uint64(b.Hash))
}
