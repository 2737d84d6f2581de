package weave

import (
	"fmt"
	"slices"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/sets/treeset"
	"go.uber.org/zap"

	"github.com/katalvlaran/hamweave/cycle"
	"github.com/katalvlaran/hamweave/lattice"
)

// edgeComparator orders lattice.Edge values inside gods containers.
func edgeComparator(a, b interface{}) int {
	return lattice.CompareEdges(a.(lattice.Edge), b.(lattice.Edge))
}

// Weave splices every loop of lm into lm[0] and returns the resulting tour.
// The input loops are not modified.
//
// Contract:
//   - The loops of lm are node-disjoint cycles of the lattice described by adj
//     and eadj, and eadj has an entry for every lattice edge.
//
// Complexity: O(R·W·N) for R rounds, W wefts and N nodes.
func Weave(lm []*cycle.Cycle, adj lattice.Adjacency, eadj lattice.EdgeAdjacency, opts ...Option) (*Result, error) {
	if len(lm) == 0 {
		return nil, ErrEmptyLoom
	}
	cfg := newConfig(opts...)

	warp := lm[0].Clone()
	wefts := make(map[int]*cycle.Cycle, len(lm)-1)
	pending := linkedlistqueue.New()
	for i, c := range lm[1:] {
		wefts[i] = c.Clone()
		pending.Enqueue(i)
	}

	res := &Result{}
	stalls := 0
	for !pending.Empty() {
		res.Rounds++
		size, joined := pending.Size(), 0
		for k := 0; k < size; k++ {
			v, _ := pending.Dequeue()
			idx := v.(int)
			weft := wefts[idx]

			ok, err := stitch(warp, weft, adj, eadj)
			if err != nil {
				return nil, fmt.Errorf("weave: weft %d: %w", idx, err)
			}
			if !ok {
				pending.Enqueue(idx)
				continue
			}
			delete(wefts, idx)
			joined++
			res.Joins++
			if len(wefts) == 0 {
				warp.SetClosed()
			}
			cfg.logger.Debug("weft joined",
				zap.Int("weft", idx),
				zap.Int("warp", warp.Len()))
		}

		cfg.logger.Debug("round finished",
			zap.Int("round", res.Rounds),
			zap.Int("joined", joined),
			zap.Int("pending", pending.Size()))
		if joined > 0 {
			stalls = 0
			continue
		}
		stalls++
		if stalls >= cfg.maxStalls {
			cfg.logger.Warn("weaving stalled",
				zap.Int("round", res.Rounds),
				zap.Int("pending", pending.Size()))
			return nil, fmt.Errorf("%w: %d wefts unmerged after %d rounds",
				ErrNoStitch, pending.Size(), res.Rounds)
		}
	}

	res.Tour = warp.Nodes()
	res.Closed = warp.Closed()
	return res, nil
}

// stitch splices weft into warp if a legal splice exists. It reports false,
// leaving both cycles untouched, when there is none.
func stitch(warp, weft *cycle.Cycle, adj lattice.Adjacency, eadj lattice.EdgeAdjacency) (bool, error) {
	partners, err := weft.EdgeAdjs(eadj)
	if err != nil {
		return false, err
	}
	bridge := treeset.NewWith(edgeComparator)
	for e := range warp.Edges().Intersect(partners) {
		bridge.Add(e)
	}
	it := bridge.Iterator()
	if !it.First() {
		return false, nil
	}
	e := it.Value().(lattice.Edge)

	// eadj[e] is sorted, so the first partner on the weft is the smallest.
	weftEdges := weft.Edges()
	i := slices.IndexFunc(eadj[e], weftEdges.Has)
	if i < 0 {
		return false, nil
	}
	f := eadj[e][i]

	if err := warp.Join(e, f, weft, adj); err != nil {
		return false, err
	}
	return true, nil
}
