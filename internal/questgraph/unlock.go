package questgraph

import "fmt"

// Change records one status write produced by the unlock engine. Changes
// are applied to the store by the caller, all inside one transaction, so
// the completion and its cascade are observed together or not at all.
type Change struct {
	QuestID  int
	From     Status
	To       Status
	Stars    int // stars to record; meaningful only when SetStars is true
	SetStars bool
}

// Complete runs the unlock engine for one learner: mark questID completed,
// then promote every locked quest whose prerequisites are now all
// completed. The relaxation iterates to a fixed point, so a single call
// settles the whole cascade regardless of graph depth.
//
// The statuses map is the learner's current per-quest state and is not
// mutated; the returned change list describes the new state (completion
// first, promotions in topological order). Re-completing an already
// completed quest is a no-op apart from re-recording stars.
//
// Errors: *NotFoundError for an unknown quest id, *ValidationError for
// out-of-range stars. No changes are produced on error.
func (g *Graph) Complete(statuses map[int]Status, questID, stars int) ([]Change, error) {
	q, err := g.Quest(questID)
	if err != nil {
		return nil, err
	}
	if stars < 0 {
		return nil, &ValidationError{Message: fmt.Sprintf("stars must be >= 0, got %d", stars)}
	}
	if stars > q.MaxStars {
		return nil, &ValidationError{Message: fmt.Sprintf("stars %d exceeds quest %q max of %d", stars, q.Title, q.MaxStars)}
	}

	next := make(map[int]Status, len(statuses))
	for id, s := range statuses {
		next[id] = s
	}

	from := next[questID]
	if from == "" {
		from = StatusLocked
	}
	next[questID] = StatusCompleted
	changes := []Change{{
		QuestID:  questID,
		From:     from,
		To:       StatusCompleted,
		Stars:    stars,
		SetStars: true,
	}}

	// Relax to a fixed point. Promotions only ever move locked -> available,
	// so quests already available or completed are never touched and no
	// transition can regress.
	for {
		promoted := false
		for _, cand := range g.topoOrder {
			if len(cand.Prerequisites) == 0 {
				continue // roots are seeded non-locked, never promoted here
			}
			if next[cand.ID] != StatusLocked {
				continue
			}
			if !g.Unlocked(cand.ID, next) {
				continue
			}
			next[cand.ID] = StatusAvailable
			changes = append(changes, Change{
				QuestID: cand.ID,
				From:    StatusLocked,
				To:      StatusAvailable,
			})
			promoted = true
		}
		if !promoted {
			break
		}
	}

	return changes, nil
}

// Apply returns a copy of statuses with the given changes applied. It is a
// convenience for callers that keep statuses in memory (the store applies
// changes itself, transactionally).
func Apply(statuses map[int]Status, changes []Change) map[int]Status {
	next := make(map[int]Status, len(statuses))
	for id, s := range statuses {
		next[id] = s
	}
	for _, c := range changes {
		next[c.QuestID] = c.To
	}
	return next
}
