package graph

import "fmt"

// ErrNodeNotFound indicates a node ID that is not (or no longer) in the graph
type ErrNodeNotFound struct {
	ID NodeID
}

func (e *ErrNodeNotFound) Error() string {
	return fmt.Sprintf("node %d not found", e.ID)
}

// ErrEdgeNotFound indicates an edge ID that is not (or no longer) in the graph
type ErrEdgeNotFound struct {
	ID EdgeID
}

func (e *ErrEdgeNotFound) Error() string {
	return fmt.Sprintf("edge %d not found", e.ID)
}
