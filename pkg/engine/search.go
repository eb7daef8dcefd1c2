package engine

import (
	. "github.com/ChizhovVadim/GobangGo/pkg/common"
)

type searcher struct {
	board     *Board
	me        Cell
	evaluator Evaluator
	tm        *timeManager
	nodes     int64
}

func (s *searcher) evaluate() int {
	return s.evaluator.Evaluate(s.board, s.me)
}

// alphaBeta is a plain minimax with fail-hard cutoffs. My side maximizes.
func (s *searcher) alphaBeta(depth, alpha, beta int, maximizing bool) int {
	s.nodes++
	if s.tm.IsDone() {
		return s.evaluate()
	}
	if depth <= 0 {
		return s.evaluate()
	}
	var ml = Candidates(s.board)
	if len(ml) == 0 {
		return s.evaluate()
	}

	var side = sideToMove(maximizing, s.me)
	var best = valueInfinity
	if maximizing {
		best = -valueInfinity
	}
	for _, m := range ml {
		var score, won = s.makeMove(m, side, depth, alpha, beta, maximizing)
		if won {
			return score
		}
		if maximizing {
			best = Max(best, score)
			alpha = Max(alpha, score)
		} else {
			best = Min(best, score)
			beta = Min(beta, score)
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// makeMove plays m, searches the reply and takes m back on every path.
func (s *searcher) makeMove(m Move, side Cell, depth, alpha, beta int, maximizing bool) (score int, won bool) {
	s.board.Place(m, side)
	defer s.board.Clear(m)
	if IsWinningMove(s.board, m, side) {
		if maximizing {
			return valueWin, true
		}
		return valueLoss, true
	}
	return s.alphaBeta(depth-1, alpha, beta, !maximizing), false
}

// rootScore scores my move m by a full-window search of the replies.
func (s *searcher) rootScore(m Move, depth int) int {
	s.board.Place(m, s.me)
	defer s.board.Clear(m)
	return s.alphaBeta(depth-1, -valueInfinity, valueInfinity, false)
}

func findWinningMove(b *Board, ml []Move, side Cell) (Move, bool) {
	for _, m := range ml {
		if IsWinningMove(b, m, side) {
			return m, true
		}
	}
	return MoveEmpty, false
}
