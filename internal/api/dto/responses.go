package dto

// SuccessResponse acknowledges credential operations.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// StorageErrorResponse reports an underlying store failure. It is sent
// with a 200 status carrying the raw error message, nothing more.
type StorageErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// AlreadyExistsResponse is the sentinel returned when a profile upsert
// targets an email that already has a record. The stored record is left
// untouched.
type AlreadyExistsResponse struct {
	Message string `json:"message"`
}

// InsertResult acknowledges a task insertion.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult reports the outcome of a write against existing records.
type UpdateResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

// DeleteResult reports the outcome of a deletion.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
