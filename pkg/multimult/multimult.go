// Package multimult implements a randomized batched multi-scalar
// multiplication evaluator (spec.md §4.4): it evaluates sum(a_i * P_i) with
// far fewer doublings than one scalar multiplication per term, and
// amortizes recurring base points across many Sigma-protocol verifications
// drained into the same evaluator.
package multimult

import (
	"container/heap"
	"encoding/hex"

	"github.com/luxfi/threshold-core/pkg/curve"
)

type entry struct {
	point  *curve.ProjectivePoint
	scalar *curve.Scalar
	known  bool
}

// heapSlice is a max-heap over entries keyed by scalar, maintaining an
// index for every "known" (recurring) base point so MultiMult.Insert can
// find it in O(1) rather than scanning linearly — matching the index map
// kept alongside the heap node's `known` flag in tom256/src/multimult.rs.
type heapSlice struct {
	items []*entry
	index map[string]int
}

func (h heapSlice) Len() int { return len(h.items) }
func (h heapSlice) Less(i, j int) bool {
	return h.items[i].scalar.Cmp(h.items[j].scalar) > 0
}
func (h *heapSlice) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	for k, e := range h.items {
		if e.known {
			h.index[pointKey(e.point)] = k
		}
	}
}
func (h *heapSlice) Push(x any) { h.items = append(h.items, x.(*entry)) }
func (h *heapSlice) Pop() any {
	old := h.items
	n := len(old)
	e := old[n-1]
	h.items = old[:n-1]
	return e
}

func pointKey(p *curve.ProjectivePoint) string {
	a := p.ToAffine()
	if a.IsIdentity() {
		return "∞"
	}
	return hex.EncodeToString(a.X.BytesLE()) + ":" + hex.EncodeToString(a.Y.BytesLE())
}

// MultiMult accumulates (point, scalar) pairs and reduces them to a single
// weighted sum via a Straus-like heap reduction.
type MultiMult struct {
	params *curve.Params
	h      *heapSlice
}

// New creates an empty MultiMult over the given curve.
func New(params *curve.Params) *MultiMult {
	return &MultiMult{params, &heapSlice{index: make(map[string]int)}}
}

// AddKnown reserves a slot for a recurring base point, initializing its
// accumulated scalar to zero. Calling Insert with the same point afterwards
// accumulates into that slot instead of appending a fresh pair.
func (m *MultiMult) AddKnown(p *curve.ProjectivePoint) {
	key := pointKey(p)
	if _, ok := m.h.index[key]; ok {
		return
	}
	e := &entry{point: p, scalar: m.params.ScalarZero(), known: true}
	m.h.index[key] = len(m.h.items)
	heap.Push(m.h, e)
}

// Insert adds a*P to the running relation. If P was registered via
// AddKnown, its accumulated scalar is updated in place; otherwise a new
// pair is appended.
func (m *MultiMult) Insert(p *curve.ProjectivePoint, a *curve.Scalar) {
	key := pointKey(p)
	if idx, ok := m.h.index[key]; ok {
		m.h.items[idx].scalar = m.h.items[idx].scalar.Add(a)
		heap.Fix(m.h, idx)
		return
	}
	heap.Push(m.h, &entry{point: p, scalar: a, known: false})
}

// Evaluate consumes the multimult and returns sum(a_i * P_i), reducing the
// heap by repeatedly combining the two largest-weighted terms until one
// survivor remains (spec.md §4.4). Terminates because the maximum scalar
// strictly decreases each step.
func (m *MultiMult) Evaluate() *curve.ProjectivePoint {
	if m.h.Len() == 0 {
		return m.params.Identity()
	}
	for {
		if m.h.Len() == 1 {
			top := heap.Pop(m.h).(*entry)
			return curve.ScalarMul(top.scalar, top.point)
		}
		a := heap.Pop(m.h).(*entry)
		bIdx := 0 // after popping a, the new top is the current max
		b := m.h.items[bIdx]
		if b.scalar.IsZero() {
			return curve.ScalarMul(a.scalar, a.point)
		}
		combined := a.point.Add(b.point)
		remainder := a.scalar.Sub(b.scalar)
		delete(m.h.index, pointKey(b.point))
		b.point = combined
		b.known = false
		heap.Fix(m.h, bIdx)
		if !remainder.IsZero() {
			heap.Push(m.h, &entry{point: a.point, scalar: remainder, known: false})
		}
	}
}
