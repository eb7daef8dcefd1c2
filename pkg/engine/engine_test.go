package engine

import (
	"context"
	"testing"
	"time"

	. "github.com/ChizhovVadim/GobangGo/pkg/common"
	eval "github.com/ChizhovVadim/GobangGo/pkg/eval/runlength"
)

func newTestEngine(depth int, rows ...string) *Engine {
	var options = NewOptions(func() Evaluator { return eval.NewEvaluationService() })
	options.Depth = depth
	var e = NewEngine(options)
	if len(rows) != 0 {
		var b, err = NewBoardFromRows(rows...)
		if err != nil {
			panic(err)
		}
		e.SetPosition(b)
	}
	return e
}

func TestEmptyBoardCenter(t *testing.T) {
	for _, size := range []int{DefaultBoardSize, 15} {
		var e = newTestEngine(6)
		e.Options.BoardSize = size
		var m, ok = e.ChooseMove(context.Background(), 50*time.Millisecond)
		if !ok || m != (Move{Row: size / 2, Col: size / 2}) {
			t.Error(size, m, ok)
		}
		if e.Position().At(m) != Black {
			t.Error("chosen move is not on the board")
		}
	}
}

func TestCompletesOwnFour(t *testing.T) {
	var e = newTestEngine(6,
		"............",
		"............",
		"............",
		"............",
		"............",
		"...XXXX.....",
		"............",
		"............",
		"...XOOOO....",
		"............",
		"............",
		"............",
	)
	var si = e.Search(context.Background(), 1800*time.Millisecond)
	if si.Move != (Move{Row: 5, Col: 2}) || !si.Tactical || si.Nodes != 0 {
		t.Error(si)
	}
}

func TestBlocksOpponentFour(t *testing.T) {
	var e = newTestEngine(6,
		"............",
		"............",
		"............",
		"............",
		".XOOOO......",
		"............",
		"........X...",
		"........X...",
		"............",
		"............",
		"............",
		"............",
	)
	var m, ok = e.ChooseMove(context.Background(), 1800*time.Millisecond)
	if !ok || m != (Move{Row: 4, Col: 6}) {
		t.Error(m, ok)
	}
}

func TestWinBeforeBlock(t *testing.T) {
	var e = newTestEngine(6,
		"............",
		"............",
		".OOOO.......",
		"............",
		"............",
		"............",
		"............",
		"............",
		".....XXXX...",
		"............",
		"............",
		"............",
	)
	var si = e.Search(context.Background(), 1800*time.Millisecond)
	if si.Move != (Move{Row: 8, Col: 4}) || si.Score != valueWin {
		t.Error(si)
	}
}

var parityPositions = [][]string{
	{
		".......",
		".......",
		"..XO...",
		"...X...",
		"..O....",
		".......",
		".......",
	},
	{
		".......",
		"...O...",
		"..XX...",
		"..OX...",
		".......",
		".......",
		".......",
	},
	{
		"......",
		".XXO..",
		"..O...",
		"..OX..",
		"......",
		"......",
	},
}

func TestAlphaBetaParity(t *testing.T) {
	for _, depth := range []int{1, 2, 3} {
		for i, rows := range parityPositions {
			var e = newTestEngine(depth, rows...)
			var b = e.Position()
			var ml = Candidates(b)
			if _, ok := findWinningMove(b, ml, Black); ok {
				t.Fatal("position has a tactical shortcut", i)
			}
			if _, ok := findWinningMove(b, ml, White); ok {
				t.Fatal("position has a tactical shortcut", i)
			}
			var wantMove, wantScore = minimaxRoot(b, Black, eval.NewEvaluationService(), depth)
			var si = e.Search(context.Background(), 0)
			if si.Move != wantMove || si.Score != wantScore {
				t.Error(depth, i, si.Move, si.Score, wantMove, wantScore)
			}
		}
	}
}

func TestParallelRootMatchesSequential(t *testing.T) {
	for i, rows := range parityPositions {
		var seq = newTestEngine(3, rows...)
		var par = newTestEngine(3, rows...)
		par.Options.Threads = 4
		var want = seq.Search(context.Background(), 0)
		var got = par.Search(context.Background(), 0)
		if got.Move != want.Move || got.Score != want.Score {
			t.Error(i, got, want)
		}
		if !par.Position().Equal(seq.Position()) {
			t.Error(i, "board changed by parallel search")
		}
	}
}

// minimaxRoot searches every node without pruning.
func minimaxRoot(b *Board, me Cell, ev Evaluator, depth int) (Move, int) {
	var bestMove = MoveEmpty
	var bestScore = -valueInfinity
	for _, m := range Candidates(b) {
		b.Place(m, me)
		var score = minimax(b, me, ev, depth-1, false)
		b.Clear(m)
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
	}
	return bestMove, bestScore
}

func minimax(b *Board, me Cell, ev Evaluator, depth int, maximizing bool) int {
	if depth == 0 {
		return ev.Evaluate(b, me)
	}
	var ml = Candidates(b)
	if len(ml) == 0 {
		return ev.Evaluate(b, me)
	}
	var side = sideToMove(maximizing, me)
	var best = valueInfinity
	if maximizing {
		best = -valueInfinity
	}
	for _, m := range ml {
		b.Place(m, side)
		if IsWinningMove(b, m, side) {
			b.Clear(m)
			if maximizing {
				return valueWin
			}
			return valueLoss
		}
		var score = minimax(b, me, ev, depth-1, !maximizing)
		b.Clear(m)
		if maximizing && score > best || !maximizing && score < best {
			best = score
		}
	}
	return best
}

// steppingClock advances by step on every read.
type steppingClock struct {
	t    time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func TestBoardRestoredAfterSearch(t *testing.T) {
	var rows = []string{
		"............",
		"............",
		"............",
		"....X.......",
		"....OX......",
		"...XOO......",
		"......X.....",
		"............",
		"............",
		"............",
		"............",
		"............",
	}
	var budgets = []time.Duration{time.Millisecond, 5 * time.Millisecond, 200 * time.Millisecond}
	for _, budget := range budgets {
		for _, threads := range []int{1, 3} {
			var e = newTestEngine(4, rows...)
			e.Options.Threads = threads
			if threads == 1 {
				var clock = &steppingClock{t: time.Unix(0, 0), step: time.Millisecond / 10}
				e.SetClock(clock.Now)
			}
			var before = e.Position()
			var si = e.Search(context.Background(), budget)
			if !e.Position().Equal(before) {
				t.Error(budget, threads, "board changed", si)
			}
			if !before.IsLegal(si.Move) {
				t.Error(budget, threads, "illegal move", si)
			}
		}
	}
}

func TestDeadlineStopsRootLoop(t *testing.T) {
	var e = newTestEngine(6,
		"............",
		"............",
		"............",
		"............",
		"............",
		".....X......",
		"......O.....",
		"............",
		"............",
		"............",
		"............",
		"............",
	)
	var start = time.Unix(0, 0)
	var reads = 0
	e.SetClock(func() time.Time {
		reads++
		if reads == 1 {
			return start
		}
		return start.Add(time.Hour)
	})
	var si = e.Search(context.Background(), time.Second)
	var ml = Candidates(e.Position())
	if si.Move != ml[0] || si.Nodes != 1 {
		t.Error(si, ml[0])
	}
}

func TestCancelledContext(t *testing.T) {
	var e = newTestEngine(6, parityPositions[0]...)
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var before = e.Position()
	var m, ok = e.ChooseMove(ctx, 0)
	if !ok || !before.IsLegal(m) {
		t.Error(m, ok)
	}
}

func TestRecordOpponentMove(t *testing.T) {
	var e = newTestEngine(6)
	if err := e.Configure(White); err != nil {
		t.Fatal(err)
	}
	var m = Move{Row: 2, Col: 3}
	if !e.RecordOpponentMove(m) || e.Position().At(m) != Black {
		t.Error("legal move not recorded")
	}
	if e.RecordOpponentMove(m) {
		t.Error("occupied cell accepted")
	}
	if e.RecordOpponentMove(Move{Row: 12, Col: 0}) {
		t.Error("out of range cell accepted")
	}
	if e.Position().Stones() != 1 {
		t.Error(e.Position().Stones())
	}
}

func TestConfigure(t *testing.T) {
	var e = newTestEngine(6)
	if err := e.Configure(Empty); err == nil {
		t.Error("empty side accepted")
	}
	if e.MySide() != Black {
		t.Error(e.MySide())
	}
}

func TestChooseMoveFullBoard(t *testing.T) {
	var e = newTestEngine(2,
		"XOXOX",
		"XOXOX",
		"OXOXO",
		"XOXOX",
		"XOXOX",
	)
	var m, ok = e.ChooseMove(context.Background(), 0)
	if ok || m != MoveEmpty {
		t.Error(m, ok)
	}
}

func TestClear(t *testing.T) {
	var e = newTestEngine(6, parityPositions[0]...)
	e.Clear()
	if e.Position().Stones() != 0 {
		t.Error(e.Position().String())
	}
}
