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

package movegen

import "github.com/corvidchess/core/pkg/board"

// Perft counts the number of leaf nodes in the legal game tree rooted at
// b, depth plies deep. It exercises MakeMove/UnmakeMove and the
// generator together, and is the standard cross-check of their
// correctness against known node counts for reference positions.
func Perft(b *board.Board, depth int) int {
	if depth == 0 {
		return 1
	}

	moves := Generate(b, All)
	if depth == 1 {
		return len(moves)
	}

	nodes := 0
	for _, m := range moves {
		b.MakeMove(m)
		nodes += Perft(b, depth-1)
		b.UnmakeMove()
	}
	return nodes
}

// Divide runs Perft one ply at a time for every legal move in b,
// reporting the per-move subtree size. It is used to localize a
// move-generation discrepancy against a known-good engine.
func Divide(b *board.Board, depth int) map[string]int {
	counts := make(map[string]int)
	if depth == 0 {
		return counts
	}

	for _, m := range Generate(b, All) {
		b.MakeMove(m)
		counts[m.String()] = Perft(b, depth-1)
		b.UnmakeMove()
	}
	return counts
}
