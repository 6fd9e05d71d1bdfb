package lag

import (
	"container/heap"
	"fmt"
	"sort"
)

// Anaphors bind a sub-question to the one immediately before it.
var anaphors = []string{
	"it", "this", "that", "these", "those", "they", "them",
	"each", "both", "former", "latter",
}

// buildDepGraph detects lexical dependencies: a later sub-question depends
// on an earlier one when it carries an anaphor (binds to the nearest
// predecessor) or shares at least two content tokens (binds to every such
// predecessor). Edges always point backwards, so the graph is acyclic by
// construction.
func buildDepGraph(subs []SubQuestion) map[int][]int {
	graph := make(map[int][]int, len(subs))
	for _, s := range subs {
		graph[s.ID] = nil
	}

	concepts := make([]map[string]bool, len(subs))
	for i, s := range subs {
		concepts[i] = contentTokens(tokenize(s.Text))
	}

	for j := 1; j < len(subs); j++ {
		deps := make(map[int]bool)

		if countTerms(tokenize(subs[j].Text), anaphors) > 0 {
			deps[subs[j-1].ID] = true
		}

		for i := 0; i < j; i++ {
			shared := 0
			for tok := range concepts[j] {
				if concepts[i][tok] {
					shared++
				}
			}
			if shared >= 2 {
				deps[subs[i].ID] = true
			}
		}

		ids := make([]int, 0, len(deps))
		for id := range deps {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		graph[subs[j].ID] = ids
	}
	return graph
}

// intHeap is a min-heap of ids for the ascending-id tie-break.
type intHeap []int

func (h intHeap) Len() int            { return len(h) }
func (h intHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *intHeap) Push(x any)         { *h = append(*h, x.(int)) }
func (h *intHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// topoSort returns a topological order with equal-rank nodes ordered by
// ascending id (Kahn's algorithm over a min-heap).
func topoSort(ids []int, graph map[int][]int) ([]int, error) {
	indegree := make(map[int]int, len(ids))
	dependents := make(map[int][]int, len(ids))
	for _, id := range ids {
		indegree[id] = len(graph[id])
		for _, dep := range graph[id] {
			dependents[dep] = append(dependents[dep], id)
		}
	}

	ready := &intHeap{}
	heap.Init(ready)
	for _, id := range ids {
		if indegree[id] == 0 {
			heap.Push(ready, id)
		}
	}

	order := make([]int, 0, len(ids))
	for ready.Len() > 0 {
		id := heap.Pop(ready).(int)
		order = append(order, id)
		for _, dep := range dependents[id] {
			indegree[dep]--
			if indegree[dep] == 0 {
				heap.Push(ready, dep)
			}
		}
	}

	if len(order) != len(ids) {
		return nil, fmt.Errorf("dependency graph contains a cycle (%d of %d ordered)", len(order), len(ids))
	}
	return order, nil
}

// parallelGroups computes BFS layers over the DAG: group k contains every
// id whose predecessors are all in groups < k. Ids within a group ascend.
func parallelGroups(ids []int, graph map[int][]int) [][]int {
	placed := make(map[int]bool, len(ids))
	remaining := make([]int, len(ids))
	copy(remaining, ids)
	sort.Ints(remaining)

	var groups [][]int
	for len(remaining) > 0 {
		var group []int
		for _, id := range remaining {
			satisfied := true
			for _, dep := range graph[id] {
				if !placed[dep] {
					satisfied = false
					break
				}
			}
			if satisfied {
				group = append(group, id)
			}
		}
		if len(group) == 0 {
			// Unreachable when the graph is acyclic; bail rather than spin.
			break
		}
		for _, id := range group {
			placed[id] = true
		}
		next := remaining[:0]
		for _, id := range remaining {
			if !placed[id] {
				next = append(next, id)
			}
		}
		remaining = next
		groups = append(groups, group)
	}
	return groups
}
