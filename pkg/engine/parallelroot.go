package engine

import (
	"golang.org/x/sync/errgroup"

	. "github.com/ChizhovVadim/GobangGo/pkg/common"
)

type rootTask struct {
	index int
	move  Move
}

type rootTaskResult struct {
	index int
	score int
}

// searchRootParallel scores root moves on per-worker board copies.
// Results are merged in candidate order, so without deadline pressure the
// choice equals the one of searchRoot.
func (e *Engine) searchRootParallel(tm *timeManager, ml []Move) rootResult {
	var threads = Min(e.Options.Threads, len(ml))
	var tasks = make(chan rootTask)
	var taskResults = make(chan rootTaskResult)
	var workerNodes = make([]int64, threads)

	var g errgroup.Group

	g.Go(func() error {
		defer close(tasks)
		for i, m := range ml {
			if i > 0 && tm.IsDone() {
				break
			}
			tasks <- rootTask{index: i, move: m}
		}
		return nil
	})

	var workers errgroup.Group
	for i := 0; i < threads; i++ {
		var worker = i
		workers.Go(func() error {
			var s = e.newSearcher(e.board.Clone(), tm)
			s.evaluator = e.Options.EvalBuilder()
			for task := range tasks {
				// the first candidate is always scored, as in searchRoot
				if task.index > 0 && tm.IsDone() {
					continue
				}
				var score = s.rootScore(task.move, e.Options.Depth)
				taskResults <- rootTaskResult{index: task.index, score: score}
			}
			workerNodes[worker] = s.nodes
			return nil
		})
	}

	g.Go(func() error {
		defer close(taskResults)
		return workers.Wait()
	})

	var scores = make([]int, len(ml))
	var searched = make([]bool, len(ml))
	for r := range taskResults {
		scores[r.index] = r.score
		searched[r.index] = true
	}
	_ = g.Wait()

	var res = rootResult{
		move:  ml[0],
		score: -valueInfinity,
	}
	for i, m := range ml {
		if searched[i] && scores[i] > res.score {
			res.score = scores[i]
			res.move = m
		}
	}
	for _, n := range workerNodes {
		res.nodes += n
	}
	return res
}
