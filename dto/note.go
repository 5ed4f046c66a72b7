package dto

import (
	"time"

	"main/model"
)

// NoteRequest carries the four mutable note fields; updates replace them
// wholesale.
type NoteRequest struct {
	Title      string   `json:"title" binding:"required"`
	Content    string   `json:"content" binding:"required"`
	Visibility string   `json:"visibility" binding:"omitempty,oneof=public private"`
	Tags       []string `json:"tags"`
}

type NoteResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Visibility string    `json:"visibility"`
	Tags       []string  `json:"tags"`
	Owner      string    `json:"owner"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToNoteResponse(note *model.Note) NoteResponse {
	return NoteResponse{
		ID:         note.NoteID,
		Title:      note.Title,
		Content:    note.Content,
		Visibility: note.Visibility,
		Tags:       note.Tags,
		Owner:      note.OwnerName,
		CreatedAt:  note.CreatedAt,
	}
}

func ToNoteResponses(notes []*model.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = ToNoteResponse(note)
	}
	return responses
}
