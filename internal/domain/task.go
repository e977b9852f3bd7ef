package domain

// TaskFilter selects tasks by owner email and, optionally, status.
// Status is a free-form caller-defined string; no state machine is enforced.
type TaskFilter struct {
	OwnerEmail string
	Status     string
}
