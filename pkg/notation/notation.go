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

// Package notation parses and formats moves in UCI's long algebraic
// notation: four characters of from/to squares, plus an optional
// lower-case promotion letter ("e2e4", "e7e8q", "0000" for a null move).
package notation

import (
	"fmt"

	"github.com/corvidchess/core/pkg/board"
	"github.com/corvidchess/core/pkg/move"
	"github.com/corvidchess/core/pkg/square"
)

// Parse reads a UCI move string against the position in b, resolving it
// to the Castle/EnPassant/double-push/Promotion kind the board's own
// rules dictate. It panics on a malformed string; callers reading from a
// UCI front-end should validate length first.
func Parse(b *board.Board, s string) move.Move {
	if s == "0000" {
		return move.Null
	}
	if len(s) != 4 && len(s) != 5 {
		panic(fmt.Sprintf("notation: malformed move %q", s))
	}

	from := square.NewFromString(s[0:2])
	to := square.NewFromString(s[2:4])

	var promo move.PromotionPiece
	isPromo := len(s) == 5
	if isPromo {
		promo = promotionFromLetter(s[4])
	}

	return b.NewMove(from, to, promo, isPromo)
}

// Format renders m in UCI notation. It is equivalent to m.String(), kept
// here so callers speaking notation don't need to import pkg/move too.
func Format(m move.Move) string {
	return m.String()
}

func promotionFromLetter(c byte) move.PromotionPiece {
	switch c {
	case 'q':
		return move.PromoQueen
	case 'r':
		return move.PromoRook
	case 'b':
		return move.PromoBishop
	case 'n':
		return move.PromoKnight
	default:
		panic(fmt.Sprintf("notation: invalid promotion letter %q", c))
	}
}
