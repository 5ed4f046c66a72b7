package model

import "time"

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

type Note struct {
	NoteID     string    `bson:"note_id" json:"note_id"`
	Title      string    `bson:"title" json:"title"`
	Content    string    `bson:"content" json:"content"`
	Visibility string    `bson:"visibility" json:"visibility"`
	Tags       []string  `bson:"tags" json:"tags"`
	UserID     string    `bson:"user_id" json:"user_id"` // owner, fixed at creation
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`

	// Owner display name, resolved from the users collection at read time.
	OwnerName string `bson:"-" json:"owner_name,omitempty"`
}

// NoteFilter describes a notes listing query. Tags match if any requested
// tag is present on the note. When Visibility filters to private, the query
// is additionally restricted to the requester's own notes or public ones.
type NoteFilter struct {
	Tags        []string
	Visibility  string
	RequesterID string
}
