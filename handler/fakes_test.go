package handler

import (
	"context"

	"main/model"
)

// In-memory ports, enough for driving the handlers through httptest.

type fakeUserRepo struct {
	users map[string]*model.User // by name
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *model.User) error {
	f.users[user.Name] = user
	return nil
}

func (f *fakeUserRepo) FindByName(ctx context.Context, name string) (*model.User, error) {
	return f.users[name], nil
}

func (f *fakeUserRepo) FindNamesByIDs(ctx context.Context, userIDs []string) (map[string]string, error) {
	names := make(map[string]string)
	for _, user := range f.users {
		for _, id := range userIDs {
			if user.UserID == id {
				names[id] = user.Name
			}
		}
	}
	return names, nil
}

type fakeNoteRepo struct {
	notes map[string]*model.Note // by note id
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[string]*model.Note)}
}

func (f *fakeNoteRepo) Insert(ctx context.Context, note *model.Note) error {
	copied := *note
	f.notes[note.NoteID] = &copied
	return nil
}

func (f *fakeNoteRepo) FindByID(ctx context.Context, noteID string) (*model.Note, error) {
	note, ok := f.notes[noteID]
	if !ok {
		return nil, nil
	}
	copied := *note
	return &copied, nil
}

func (f *fakeNoteRepo) Find(ctx context.Context, filter model.NoteFilter) ([]*model.Note, error) {
	var out []*model.Note
	for _, note := range f.notes {
		if len(filter.Tags) > 0 && !hasAnyTag(note, filter.Tags) {
			continue
		}
		if filter.Visibility != "" && note.Visibility != filter.Visibility {
			continue
		}
		if filter.Visibility == model.VisibilityPrivate &&
			note.UserID != filter.RequesterID && note.Visibility != model.VisibilityPublic {
			continue
		}
		copied := *note
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeNoteRepo) Replace(ctx context.Context, noteID string, note *model.Note) error {
	stored, ok := f.notes[noteID]
	if !ok {
		return nil
	}
	stored.Title = note.Title
	stored.Content = note.Content
	stored.Visibility = note.Visibility
	stored.Tags = note.Tags
	return nil
}

func (f *fakeNoteRepo) Delete(ctx context.Context, noteID string) error {
	delete(f.notes, noteID)
	return nil
}

func hasAnyTag(note *model.Note, tags []string) bool {
	for _, want := range tags {
		for _, have := range note.Tags {
			if want == have {
				return true
			}
		}
	}
	return false
}
