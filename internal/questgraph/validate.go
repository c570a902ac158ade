package questgraph

import (
	"fmt"
	"sort"
	"strings"
)

// Validate performs all structural checks on the given quest set: duplicate
// ids, dangling prerequisite references, cycles, and the presence of at
// least one root. A quest set that fails here is rejected before any graph
// is built, so the unlock engine never runs against a broken graph.
//
// A cycle is reported as a *CycleError so callers can surface it distinctly
// from other structural problems.
func Validate(quests []Quest) error {
	var errs []string

	idSet := make(map[int]bool, len(quests))

	for _, q := range quests {
		if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate quest id: %d", q.ID))
		}
		idSet[q.ID] = true
	}

	for _, q := range quests {
		for _, prereqID := range q.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("quest %q (%d) references nonexistent prerequisite %d", q.Title, q.ID, prereqID))
			}
		}
	}

	// Cycle detection via Kahn's algorithm: any node never reaching
	// in-degree zero sits on (or downstream of) a cycle.
	inDegree := make(map[int]int, len(quests))
	adj := make(map[int][]int)
	for _, q := range quests {
		inDegree[q.ID] = len(q.Prerequisites)
		for _, prereqID := range q.Prerequisites {
			adj[prereqID] = append(adj[prereqID], q.ID)
		}
	}

	var queue []int
	for _, q := range quests {
		if inDegree[q.ID] == 0 {
			queue = append(queue, q.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adj[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(quests) {
		var members []string
		for _, q := range quests {
			if inDegree[q.ID] > 0 {
				members = append(members, fmt.Sprintf("%q", q.Title))
			}
		}
		sort.Strings(members)
		return &CycleError{Members: members}
	}

	if len(quests) > 0 {
		hasRoot := false
		for _, q := range quests {
			if len(q.Prerequisites) == 0 {
				hasRoot = true
				break
			}
		}
		if !hasRoot {
			errs = append(errs, "no root quests found (at least one quest must have no prerequisites)")
		}
	}

	for _, q := range quests {
		if q.MaxStars < 0 {
			errs = append(errs, fmt.Sprintf("quest %q (%d): MaxStars must be >= 0, got %d", q.Title, q.ID, q.MaxStars))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("quest graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
