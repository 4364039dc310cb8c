/******************************************************************************************[Heap.h]
Copyright (c) 2003-2006, Niklas Een, Niklas Sorensson
Copyright (c) 2007-2010, Niklas Sorensson

Permission is hereby granted, free of charge, to any person obtaining a copy of this software and
associated documentation files (the "Software"), to deal in the Software without restriction,
including without limitation the rights to use, copy, modify, merge, publish, distribute,
sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all copies or
substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT
NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM,
DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT
OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
**************************************************************************************************/

package engine

// varHeap is a decrease/increase-key binary heap over variable activity,
// ported from MiniSat's mtl/Heap.h (by way of gophersat's queue.go).

type varHeap struct {
	activity []float64
	content  []int32
	indices  []int32 // position of var in content, or -1
}

func newVarHeap(activity []float64) varHeap {
	h := varHeap{activity: activity}
	for i := range activity {
		h.insert(int32(i))
	}
	return h
}

func (h *varHeap) less(i, j int32) bool { return h.activity[i] > h.activity[j] }

func heapLeft(i int32) int32   { return i*2 + 1 }
func heapRight(i int32) int32  { return (i + 1) * 2 }
func heapParent(i int32) int32 { return (i - 1) >> 1 }

func (h *varHeap) percolateUp(i int32) {
	x := h.content[i]
	p := heapParent(i)
	for i != 0 && h.less(x, h.content[p]) {
		h.content[i] = h.content[p]
		h.indices[h.content[p]] = i
		i = p
		p = heapParent(p)
	}
	h.content[i] = x
	h.indices[x] = i
}

func (h *varHeap) percolateDown(i int32) {
	x := h.content[i]
	for heapLeft(i) < int32(len(h.content)) {
		child := heapLeft(i)
		if r := heapRight(i); r < int32(len(h.content)) && h.less(h.content[r], h.content[heapLeft(i)]) {
			child = r
		}
		if !h.less(h.content[child], x) {
			break
		}
		h.content[i] = h.content[child]
		h.indices[h.content[i]] = i
		i = child
	}
	h.content[i] = x
	h.indices[x] = i
}

func (h *varHeap) empty() bool { return len(h.content) == 0 }

func (h *varHeap) contains(n int32) bool {
	return n < int32(len(h.indices)) && h.indices[n] >= 0
}

func (h *varHeap) decrease(n int32) { h.percolateUp(h.indices[n]) }

func (h *varHeap) insert(n int32) {
	for int32(len(h.indices)) <= n {
		h.indices = append(h.indices, -1)
	}
	h.indices[n] = int32(len(h.content))
	h.content = append(h.content, n)
	h.percolateUp(h.indices[n])
}

func (h *varHeap) removeMin() int32 {
	x := h.content[0]
	h.content[0] = h.content[len(h.content)-1]
	h.indices[h.content[0]] = 0
	h.indices[x] = -1
	h.content = h.content[:len(h.content)-1]
	if len(h.content) > 1 {
		h.percolateDown(0)
	}
	return x
}

// rebuild discards the current heap and rebuilds it from ns.
func (h *varHeap) rebuild(ns []int32) {
	for _, v := range h.content {
		h.indices[v] = -1
	}
	h.content = h.content[:0]
	for i, v := range ns {
		h.indices[v] = int32(i)
		h.content = append(h.content, v)
	}
	for i := int32(len(h.content))/2 - 1; i >= 0; i-- {
		h.percolateDown(i)
	}
}
