package models

import "time"

// MutationEvent is published after every committed guarded mutation and
// fanned out to connected dashboards.
type MutationEvent struct {
	Entity     string    `json:"entity"`
	Action     string    `json:"action"` // created, updated, deleted, approved
	Id         int64     `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
}
