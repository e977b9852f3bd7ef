package domain

import "go.mongodb.org/mongo-driver/bson"

// Document is a schemaless stored record. Client payloads are persisted
// verbatim, so a record carries whatever fields the caller supplied plus
// the generated _id.
type Document = bson.M

// Collection names in the task database.
const (
	UsersCollection = "users"
	TasksCollection = "allTasks"
)

// Field names the service itself reads or filters on. Everything else in
// a document is opaque client data.
const (
	FieldEmail      = "email"
	FieldOwnerEmail = "userEmail"
	FieldTaskStatus = "taskStatus"
)
