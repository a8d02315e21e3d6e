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

// Package zobrist holds the fixed random key tables used to maintain a
// position's incremental hash across make/unmake.
package zobrist

import (
	"github.com/corvidchess/core/pkg/castling"
	"github.com/corvidchess/core/pkg/piece"
	"github.com/corvidchess/core/pkg/square"
)

// Key is a Zobrist hash value.
type Key uint64

// PieceSquare holds one key per (piece, square) combination.
var PieceSquare [piece.N][square.N]Key

// EnPassant holds one key per en-passant target file.
var EnPassant [square.FileN]Key

// Castling holds one key per possible castling-rights mask.
var Castling [castling.N]Key

// SideToMove is XORed into the hash whenever it is black to move.
var SideToMove Key

func init() {
	var rng PRNG
	rng.Seed(1070372) // seed used by Stockfish

	for p := 0; p < piece.N; p++ {
		for s := square.A1; s <= square.H8; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	for r := castling.None; r <= castling.All; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
}
