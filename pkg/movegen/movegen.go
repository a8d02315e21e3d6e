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

// Package movegen generates fully legal moves directly, without
// generating pseudo-legal moves and filtering them afterwards. Every
// move returned by Generate is legal to play as-is.
package movegen

import (
	"github.com/corvidchess/core/pkg/attacks"
	"github.com/corvidchess/core/pkg/bitboard"
	"github.com/corvidchess/core/pkg/board"
	"github.com/corvidchess/core/pkg/castling"
	"github.com/corvidchess/core/pkg/move"
	"github.com/corvidchess/core/pkg/piece"
	"github.com/corvidchess/core/pkg/position"
	"github.com/corvidchess/core/pkg/square"
)

// Mode selects which subset of the legal moves Generate returns.
type Mode int

const (
	// All generates every legal move.
	All Mode = iota
	// CapturesOnly generates captures, en-passant captures, and
	// promotions (including non-capturing ones, since a promotion is as
	// tactically significant as a capture).
	CapturesOnly
	// IncludeChecks generates everything CapturesOnly does, plus quiet
	// moves that give check.
	IncludeChecks
)

// averageBranchingFactor sizes the move-list allocation; it is the
// average number of legal moves in a chess position.
// source: https://chess.stackexchange.com/a/24325/33336
const averageBranchingFactor = 31

// generator bundles the board and derived tactical picture that move
// generation consults repeatedly, so it doesn't have to be threaded
// through every function call.
type generator struct {
	b *board.Board
	i position.Info

	target     bitboard.Board
	kingTarget bitboard.Board
}

// Generate returns every legal move available to the side to move in b,
// restricted to mode.
func Generate(b *board.Board, mode Mode) []move.Move {
	i := position.Compute(attacks.Init(), b)

	g := generator{b: b, i: i}
	if mode == CapturesOnly {
		g.target = i.Enemies & i.CheckMask
		g.kingTarget = i.Enemies &^ i.Attacked
	} else {
		// IncludeChecks needs quiet destinations too, so it is generated
		// like All and filtered afterwards.
		g.target = ^i.Friends & i.CheckMask
		g.kingTarget = ^i.Friends &^ i.Attacked
	}

	moves := make([]move.Move, 0, averageBranchingFactor)

	genMode := mode
	if genMode == IncludeChecks {
		genMode = All
	}

	g.appendKingMoves(&moves, genMode)
	if i.CheckN < 2 {
		g.appendKnightMoves(&moves)
		g.appendBishopTypeMoves(&moves, b.Bishops(i.Us))
		g.appendRookTypeMoves(&moves, b.Rooks(i.Us))
		g.appendBishopTypeMoves(&moves, b.Queens(i.Us))
		g.appendRookTypeMoves(&moves, b.Queens(i.Us))
		g.appendPawnMoves(&moves, genMode)
	}

	if mode != IncludeChecks {
		return moves
	}
	return g.filterChecksAndCaptures(moves)
}

// filterChecksAndCaptures keeps only the captures, promotions, and
// quiet moves that give check, by actually playing each quiet candidate.
func (g *generator) filterChecksAndCaptures(moves []move.Move) []move.Move {
	kept := moves[:0]
	for _, m := range moves {
		if m.Kind() == move.Promotion || !g.b.Mailbox[m.To()].IsEmpty() || m.Kind() == move.EnPassant {
			kept = append(kept, m)
			continue
		}

		g.b.MakeMove(m)
		givesCheck := g.b.IsInCheck(g.b.SideToMove)
		g.b.UnmakeMove()

		if givesCheck {
			kept = append(kept, m)
		}
	}
	return kept
}

func (g *generator) appendKingMoves(moves *[]move.Move, mode Mode) {
	kingSq := g.b.Kings[g.i.Us]
	kingMoves := attacks.King[kingSq] & g.kingTarget

	for kingMoves != bitboard.Empty {
		*moves = append(*moves, move.New(kingSq, kingMoves.Pop()))
	}

	if g.i.CheckN == 0 && mode == All {
		g.appendCastlingMoves(moves, kingSq)
	}
}

func (g *generator) appendCastlingMoves(moves *[]move.Move, kingSq square.Square) {
	occ := g.i.Occupied
	seen := g.i.Attacked
	rights := g.b.CastlingRights

	switch g.i.Us {
	case piece.White:
		if rights&castling.WhiteKingside != 0 && (occ|seen)&bitboard.F1G1 == bitboard.Empty {
			*moves = append(*moves, move.NewCastle(kingSq, square.G1))
		}
		if rights&castling.WhiteQueenside != 0 && occ&bitboard.B1C1D1 == bitboard.Empty && seen&bitboard.C1D1 == bitboard.Empty {
			*moves = append(*moves, move.NewCastle(kingSq, square.C1))
		}
	case piece.Black:
		if rights&castling.BlackKingside != 0 && (occ|seen)&bitboard.F8G8 == bitboard.Empty {
			*moves = append(*moves, move.NewCastle(kingSq, square.G8))
		}
		if rights&castling.BlackQueenside != 0 && occ&bitboard.B8C8D8 == bitboard.Empty && seen&bitboard.C8D8 == bitboard.Empty {
			*moves = append(*moves, move.NewCastle(kingSq, square.C8))
		}
	}
}

func (g *generator) appendKnightMoves(moves *[]move.Move) {
	knights := g.b.Knights(g.i.Us) &^ (g.i.PinnedD | g.i.PinnedHV) // a pinned knight can never move
	for knights != bitboard.Empty {
		from := knights.Pop()
		for targets := attacks.Knight[from] & g.target; targets != bitboard.Empty; {
			*moves = append(*moves, move.New(from, targets.Pop()))
		}
	}
}

func (g *generator) appendBishopTypeMoves(moves *[]move.Move, bishops bitboard.Board) {
	bishops &^= g.i.PinnedHV

	pinned := bishops & g.i.PinnedD
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		for targets := attacks.Bishop(from, g.i.Occupied) & g.target & g.i.PinnedD; targets != bitboard.Empty; {
			*moves = append(*moves, move.New(from, targets.Pop()))
		}
	}

	unpinned := bishops &^ g.i.PinnedD
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		for targets := attacks.Bishop(from, g.i.Occupied) & g.target; targets != bitboard.Empty; {
			*moves = append(*moves, move.New(from, targets.Pop()))
		}
	}
}

func (g *generator) appendRookTypeMoves(moves *[]move.Move, rooks bitboard.Board) {
	rooks &^= g.i.PinnedD

	pinned := rooks & g.i.PinnedHV
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		for targets := attacks.Rook(from, g.i.Occupied) & g.target & g.i.PinnedHV; targets != bitboard.Empty; {
			*moves = append(*moves, move.New(from, targets.Pop()))
		}
	}

	unpinned := rooks &^ g.i.PinnedHV
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		for targets := attacks.Rook(from, g.i.Occupied) & g.target; targets != bitboard.Empty; {
			*moves = append(*moves, move.New(from, targets.Pop()))
		}
	}
}

func appendPromotions(moves *[]move.Move, from, to square.Square) {
	*moves = append(*moves,
		move.NewPromotion(from, to, move.PromoQueen),
		move.NewPromotion(from, to, move.PromoRook),
		move.NewPromotion(from, to, move.PromoBishop),
		move.NewPromotion(from, to, move.PromoKnight),
	)
}

func (g *generator) appendPawnMoves(moves *[]move.Move, mode Mode) {
	us := g.i.Us
	down := square.South
	promotionRank := bitboard.Rank8
	enPassantRank := bitboard.Rank5
	doublePushRank := bitboard.Rank3
	if us == piece.Black {
		down = square.North
		promotionRank = bitboard.Rank1
		enPassantRank = bitboard.Rank4
		doublePushRank = bitboard.Rank6
	}

	pawns := g.b.Pawns(us)
	captureTarget := g.i.Enemies & g.i.CheckMask

	attackers := pawns &^ g.i.PinnedHV
	unpinnedAttackers := attackers &^ g.i.PinnedD
	pinnedAttackers := attackers & g.i.PinnedD

	attacksL := attacks.PawnsLeft(unpinnedAttackers, us) & captureTarget
	attacksL |= attacks.PawnsLeft(pinnedAttackers, us) & captureTarget & g.i.PinnedD

	attacksR := attacks.PawnsRight(unpinnedAttackers, us) & captureTarget
	attacksR |= attacks.PawnsRight(pinnedAttackers, us) & captureTarget & g.i.PinnedD

	left, right := square.West, square.East

	for bb := attacksL &^ promotionRank; bb != bitboard.Empty; {
		to := bb.Pop()
		*moves = append(*moves, move.New(to.Add(int(down)+int(right)), to))
	}
	for bb := attacksR &^ promotionRank; bb != bitboard.Empty; {
		to := bb.Pop()
		*moves = append(*moves, move.New(to.Add(int(down)+int(left)), to))
	}
	for bb := attacksL & promotionRank; bb != bitboard.Empty; {
		to := bb.Pop()
		appendPromotions(moves, to.Add(int(down)+int(right)), to)
	}
	for bb := attacksR & promotionRank; bb != bitboard.Empty; {
		to := bb.Pop()
		appendPromotions(moves, to.Add(int(down)+int(left)), to)
	}

	pushers := pawns &^ g.i.PinnedD
	unpinnedPushers := pushers &^ g.i.PinnedHV
	pinnedPushers := pushers & g.i.PinnedHV

	singleUnpinned := attacks.PawnPush(unpinnedPushers, us)
	singlePinned := attacks.PawnPush(pinnedPushers, us) & g.i.PinnedHV
	single := (singlePinned | singleUnpinned) &^ g.i.Occupied

	double := attacks.PawnPush(single&doublePushRank, us) & g.i.CheckMask &^ g.i.Occupied
	single &= g.i.CheckMask

	if mode == All {
		for bb := single &^ promotionRank; bb != bitboard.Empty; {
			to := bb.Pop()
			*moves = append(*moves, move.New(to.Add(int(down)), to))
		}
		for bb := double; bb != bitboard.Empty; {
			to := bb.Pop()
			*moves = append(*moves, move.NewDoublePush(to.Add(int(down)*2), to))
		}
	}
	for bb := single & promotionRank; bb != bitboard.Empty; {
		to := bb.Pop()
		appendPromotions(moves, to.Add(int(down)), to)
	}

	if g.b.EnPassantTarget == square.None {
		return
	}
	g.appendEnPassant(moves, down, enPassantRank, attackers)
}

func (g *generator) appendEnPassant(moves *[]move.Move, down square.Direction, enPassantRank bitboard.Board, attackers bitboard.Board) {
	ep := g.b.EnPassantTarget
	epPawn := ep.Add(int(down))
	them := g.i.Them

	epMask := bitboard.Squares[ep] | bitboard.Squares[epPawn]
	if g.i.CheckMask&epMask == bitboard.Empty {
		return
	}

	kingSq := g.b.Kings[g.i.Us]
	kingOnRank := bitboard.Squares[kingSq] & enPassantRank
	enemyRooksQueens := (g.b.Rooks(them) | g.b.Queens(them)) & enPassantRank
	possiblePin := kingOnRank != bitboard.Empty && enemyRooksQueens != bitboard.Empty

	for bb := attacks.Pawn[them][ep] & attackers; bb != bitboard.Empty; {
		from := bb.Pop()

		if g.i.PinnedD.IsSet(from) && !g.i.PinnedD.IsSet(ep) {
			continue
		}

		if possiblePin {
			withoutPawns := g.i.Occupied &^ (bitboard.Squares[from] | bitboard.Squares[epPawn])
			if attacks.Rook(kingSq, withoutPawns)&enemyRooksQueens != bitboard.Empty {
				break
			}
		}

		*moves = append(*moves, move.NewEnPassant(from, ep))
	}
}
