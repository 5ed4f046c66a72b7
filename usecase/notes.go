package usecase

import (
	"context"
	"strings"
	"time"

	"main/model"
	"main/services"
	"main/utils"

	"github.com/google/uuid"
)

// NoteRepository is the persistence port for notes.
type NoteRepository interface {
	Insert(ctx context.Context, note *model.Note) error
	FindByID(ctx context.Context, noteID string) (*model.Note, error)
	Find(ctx context.Context, filter model.NoteFilter) ([]*model.Note, error)
	Replace(ctx context.Context, noteID string, note *model.Note) error
	Delete(ctx context.Context, noteID string) error
}

// Requester is the verified identity a permission decision runs against.
type Requester struct {
	UserID string
	Role   string
}

type NoteService struct {
	Notes NoteRepository
	Users UserRepository
	Cache *services.NoteCache
}

// CanView: a note is readable when public or owned by the requester.
func CanView(r Requester, n *model.Note) bool {
	return n.Visibility == model.VisibilityPublic || n.UserID == r.UserID
}

// CanEdit: only the owner may edit, and only while the note is private.
// A public note is never editable, not even by its owner; going public is
// a one-way transition.
func CanEdit(r Requester, n *model.Note) bool {
	return n.Visibility == model.VisibilityPrivate && n.UserID == r.UserID
}

// CanDelete: the owner always may; an admin additionally may when the note
// is public.
func CanDelete(r Requester, n *model.Note) bool {
	return n.UserID == r.UserID || (n.Visibility == model.VisibilityPublic && r.Role == model.RoleAdmin)
}

// NoteInput carries the four mutable fields. Mutations replace them
// wholesale, partial updates are not supported.
type NoteInput struct {
	Title      string
	Content    string
	Visibility string
	Tags       []string
}

func normalizeInput(in *NoteInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return ValidationError("note title is required")
	}

	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return ValidationError("note content is required")
	}

	if in.Visibility == "" {
		in.Visibility = model.VisibilityPrivate
	}
	if in.Visibility != model.VisibilityPublic && in.Visibility != model.VisibilityPrivate {
		return ValidationError("visibility must be public or private")
	}

	tags := make([]string, 0, len(in.Tags))
	for _, tag := range in.Tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	in.Tags = tags

	return nil
}

// Create stores a new note owned by the requester.
func (s *NoteService) Create(ctx context.Context, r Requester, in NoteInput) (*model.Note, error) {
	if err := normalizeInput(&in); err != nil {
		return nil, err
	}

	note := &model.Note{
		NoteID:     uuid.NewString(),
		Title:      in.Title,
		Content:    in.Content,
		Visibility: in.Visibility,
		Tags:       in.Tags,
		UserID:     r.UserID,
		CreatedAt:  time.Now(),
	}

	if err := s.Notes.Insert(ctx, note); err != nil {
		return nil, err
	}

	s.Cache.BumpVersion(ctx)
	utils.TrackNoteOperation("create")
	return note, nil
}

// Get returns a single note, applying the view rule. Denial is a
// ForbiddenError, deliberately distinguishable from a missing note.
func (s *NoteService) Get(ctx context.Context, r Requester, noteID string) (*model.Note, error) {
	note, err := s.Notes.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	if !CanView(r, note) {
		return nil, ForbiddenError("you cannot view a private note that you do not own")
	}

	if err := s.populateOwners(ctx, []*model.Note{note}); err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("view")
	return note, nil
}

// List queries notes by optional tags (any-match) and visibility. Filtering
// to private restricts the query to the requester's own notes or public
// ones; on top of that, any note the requester may not view is dropped from
// the result even if the query returned it.
func (s *NoteService) List(ctx context.Context, r Requester, tags []string, visibility string) ([]*model.Note, error) {
	if visibility != "" && visibility != model.VisibilityPublic && visibility != model.VisibilityPrivate {
		return nil, ValidationError("visibility must be public or private")
	}

	key := s.Cache.ListKey(ctx, r.UserID, tags, visibility)
	if cached, ok := s.Cache.GetList(ctx, key); ok {
		return cached, nil
	}

	notes, err := s.Notes.Find(ctx, model.NoteFilter{
		Tags:        tags,
		Visibility:  visibility,
		RequesterID: r.UserID,
	})
	if err != nil {
		return nil, err
	}

	visible := make([]*model.Note, 0, len(notes))
	for _, note := range notes {
		if CanView(r, note) {
			visible = append(visible, note)
		}
	}

	if err := s.populateOwners(ctx, visible); err != nil {
		return nil, err
	}

	s.Cache.SetList(ctx, key, visible)
	utils.TrackNoteOperation("list")
	return visible, nil
}

// Update replaces all four mutable fields of a note. Input validation runs
// before the permission check takes effect, and the edit rule is what makes
// the private-to-public visibility switch a one-way door.
func (s *NoteService) Update(ctx context.Context, r Requester, noteID string, in NoteInput) (*model.Note, error) {
	if err := normalizeInput(&in); err != nil {
		return nil, err
	}

	note, err := s.Notes.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	if note.Visibility == model.VisibilityPublic {
		return nil, ForbiddenError("you cannot edit a public note")
	}
	if note.UserID != r.UserID {
		return nil, ForbiddenError("you cannot edit a note that you do not own")
	}

	note.Title = in.Title
	note.Content = in.Content
	note.Visibility = in.Visibility
	note.Tags = in.Tags

	if err := s.Notes.Replace(ctx, noteID, note); err != nil {
		return nil, err
	}

	s.Cache.BumpVersion(ctx)
	utils.TrackNoteOperation("update")
	return note, nil
}

// Delete removes a note, applying the delete rule.
func (s *NoteService) Delete(ctx context.Context, r Requester, noteID string) error {
	note, err := s.Notes.FindByID(ctx, noteID)
	if err != nil {
		return err
	}
	if note == nil {
		return ErrNoteNotFound
	}

	if !CanDelete(r, note) {
		return ForbiddenError("you cannot delete a note that you do not own")
	}

	if err := s.Notes.Delete(ctx, noteID); err != nil {
		return err
	}

	s.Cache.BumpVersion(ctx)
	utils.TrackNoteOperation("delete")
	return nil
}

// populateOwners resolves owner display names in one users query.
func (s *NoteService) populateOwners(ctx context.Context, notes []*model.Note) error {
	if len(notes) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(notes))
	ids := make([]string, 0, len(notes))
	for _, note := range notes {
		if _, ok := seen[note.UserID]; !ok {
			seen[note.UserID] = struct{}{}
			ids = append(ids, note.UserID)
		}
	}

	names, err := s.Users.FindNamesByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, note := range notes {
		note.OwnerName = names[note.UserID]
	}
	return nil
}
