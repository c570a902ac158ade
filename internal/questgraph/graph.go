package questgraph

import (
	"slices"
	"sort"
)

// Graph holds the quest DAG with precomputed indices. It is immutable
// after construction: the unlock engine never rewrites edges, only
// per-learner statuses (which live outside the graph).
type Graph struct {
	quests     []Quest
	byID       map[int]*Quest
	roots      []Quest
	dependents map[int][]int
	topoOrder  []Quest
	topoIndex  map[int]int
}

// New constructs a graph from a slice of quests. It validates the quest
// set first (duplicate ids, dangling prerequisites, cycles, at least one
// root) and builds all indices including topological order (Kahn's
// algorithm, deterministic via sorted queues).
func New(quests []Quest) (*Graph, error) {
	if err := Validate(quests); err != nil {
		return nil, err
	}

	g := &Graph{
		quests:     slices.Clone(quests),
		byID:       make(map[int]*Quest, len(quests)),
		dependents: make(map[int][]int),
		topoIndex:  make(map[int]int, len(quests)),
	}

	for i := range g.quests {
		g.byID[g.quests[i].ID] = &g.quests[i]
	}

	// Reverse edges
	for i := range g.quests {
		for _, prereqID := range g.quests[i].Prerequisites {
			g.dependents[prereqID] = append(g.dependents[prereqID], g.quests[i].ID)
		}
	}

	// Topological sort (Kahn's algorithm)
	inDegree := make(map[int]int, len(g.quests))
	for i := range g.quests {
		inDegree[g.quests[i].ID] = len(g.quests[i].Prerequisites)
	}

	var queue []int
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Ints(queue)

	var topoOrder []Quest
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		topoOrder = append(topoOrder, *g.byID[id])

		deps := slices.Clone(g.dependents[id])
		sort.Ints(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	g.topoOrder = topoOrder
	for i, q := range g.topoOrder {
		g.topoIndex[q.ID] = i
	}

	for i := range g.quests {
		if len(g.quests[i].Prerequisites) == 0 {
			g.roots = append(g.roots, g.quests[i])
		}
	}

	return g, nil
}

// Quest returns a quest by id, or a *NotFoundError.
func (g *Graph) Quest(id int) (Quest, error) {
	q, ok := g.byID[id]
	if !ok {
		return Quest{}, &NotFoundError{QuestID: id}
	}
	return *q, nil
}

// Quests returns all quests in creation order.
func (g *Graph) Quests() []Quest {
	return slices.Clone(g.quests)
}

// Roots returns all quests with no prerequisites.
func (g *Graph) Roots() []Quest {
	return slices.Clone(g.roots)
}

// Prerequisites returns the direct prerequisite quests of id.
func (g *Graph) Prerequisites(id int) []Quest {
	q, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Quest, 0, len(q.Prerequisites))
	for _, prereqID := range q.Prerequisites {
		if p, ok := g.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns the quests that directly depend on id.
func (g *Graph) Dependents(id int) []Quest {
	depIDs := g.dependents[id]
	result := make([]Quest, 0, len(depIDs))
	for _, depID := range depIDs {
		if q, ok := g.byID[depID]; ok {
			result = append(result, *q)
		}
	}
	return result
}

// TopologicalOrder returns all quests in a valid topological order.
func (g *Graph) TopologicalOrder() []Quest {
	return slices.Clone(g.topoOrder)
}

// Unlocked reports whether every prerequisite of id is completed in the
// given per-learner status map.
func (g *Graph) Unlocked(id int, statuses map[int]Status) bool {
	q, ok := g.byID[id]
	if !ok {
		return false
	}
	for _, prereqID := range q.Prerequisites {
		if statuses[prereqID] != StatusCompleted {
			return false
		}
	}
	return true
}
