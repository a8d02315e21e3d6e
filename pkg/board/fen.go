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
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidchess/core/pkg/castling"
	"github.com/corvidchess/core/pkg/piece"
	"github.com/corvidchess/core/pkg/square"
	"github.com/corvidchess/core/pkg/zobrist"
)

// StartFEN is the FEN of the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a Board from a FEN string.
// https://www.chessprogramming.org/Forsyth-Edwards_Notation
//
// It panics on a malformed FEN; callers at an external boundary (a UCI
// "position fen" command, a file load) should validate user input before
// calling this.
func ParseFEN(fen string) *Board {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		panic(fmt.Sprintf("board: malformed fen %q", fen))
	}

	var b Board
	for i := range b.Mailbox {
		b.Mailbox[i] = piece.Empty
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		panic(fmt.Sprintf("board: malformed fen %q", fen))
	}
	for i, rankData := range ranks {
		r := square.Rank8 - square.Rank(i)
		f := square.FileA
		for _, id := range rankData {
			if id >= '1' && id <= '8' {
				f += square.File(id - '0')
				continue
			}
			b.fillSquare(square.New(f, r), piece.NewFromString(string(id)))
			f++
		}
	}

	b.SideToMove = piece.NewColor(fields[1])
	if b.SideToMove == piece.Black {
		b.Hash ^= zobrist.SideToMove
	}

	b.CastlingRights = castling.NewRights(fields[2])
	b.Hash ^= zobrist.Castling[b.CastlingRights]

	b.EnPassantTarget = square.NewFromString(fields[3])
	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}

	b.DrawClock, _ = strconv.Atoi(fields[4])
	b.FullMoves, _ = strconv.Atoi(fields[5])
	if b.FullMoves == 0 {
		b.FullMoves = 1
	}

	return &b
}

// FEN renders the current position back to a FEN string.
func (b *Board) FEN() string {
	var sb strings.Builder

	for r := square.Rank8; r >= square.Rank1; r-- {
		empty := 0
		for f := square.FileA; f <= square.FileH; f++ {
			content := b.Mailbox[square.New(f, r)]
			if content.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(content.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != square.Rank1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.SideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(b.CastlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(b.EnPassantTarget.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.DrawClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullMoves))

	return sb.String()
}
