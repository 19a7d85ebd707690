package models

// Status is the lifecycle state of a soft-deletable record (posts, comments).
// Deleted rows stay addressable by id for audit paths but are excluded from
// every public read.
type Status string

const (
	StatusActive  Status = "active"
	StatusDeleted Status = "deleted"
)
