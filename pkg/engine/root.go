package engine

import (
	. "github.com/ChizhovVadim/GobangGo/pkg/common"
)

type rootResult struct {
	move  Move
	score int
	nodes int64
}

func (e *Engine) selectMove(tm *timeManager) SearchInfo {
	var ml = Candidates(e.board)
	if len(ml) == 0 {
		var center = e.board.Center()
		if e.board.IsLegal(center) {
			return SearchInfo{Move: center}
		}
		return SearchInfo{Move: MoveEmpty}
	}

	if m, ok := findWinningMove(e.board, ml, e.mySide); ok {
		return SearchInfo{Move: m, Score: valueWin, Tactical: true}
	}
	if m, ok := findWinningMove(e.board, ml, e.mySide.Opponent()); ok {
		return SearchInfo{Move: m, Tactical: true}
	}

	var res rootResult
	if e.Options.Threads > 1 && len(ml) > 1 {
		res = e.searchRootParallel(tm, ml)
	} else {
		res = e.searchRoot(tm, ml)
	}
	return SearchInfo{
		Move:  res.move,
		Score: res.score,
		Nodes: res.nodes,
	}
}

func (e *Engine) searchRoot(tm *timeManager, ml []Move) rootResult {
	var s = e.newSearcher(e.board, tm)
	var res = rootResult{
		move:  ml[0],
		score: -valueInfinity,
	}
	for _, m := range ml {
		var score = s.rootScore(m, e.Options.Depth)
		if score > res.score {
			res.score = score
			res.move = m
		}
		if tm.IsDone() {
			break
		}
	}
	res.nodes = s.nodes
	return res
}
