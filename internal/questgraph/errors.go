package questgraph

import (
	"fmt"
	"strings"
)

// NotFoundError indicates a referenced quest id does not exist in the graph.
// It is surfaced to the caller, never swallowed, since silently ignoring it
// would mask a broken prerequisite reference.
type NotFoundError struct {
	QuestID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("quest not found: %d", e.QuestID)
}

// CycleError indicates a prerequisite edge set that is not a DAG. It is
// detected when the graph is built (seed/insert time); unlock-time cycle
// handling is undefined, so a graph with a cycle is never constructed.
type CycleError struct {
	Members []string // ids or titles of the quests on the cycle
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("prerequisite cycle involving: %s", strings.Join(e.Members, ", "))
}

// ValidationError indicates malformed input to an engine operation,
// rejected before any mutation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
