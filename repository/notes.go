package repository

import (
	"context"
	"os"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NoteRepo struct {
	MongoCollection *mongo.Collection
}

func GetNoteRepo(client *mongo.Client) *NoteRepo {
	return &NoteRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("notes"),
	}
}

func (r *NoteRepo) Insert(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, note)
	if err != nil {
		utils.TrackError("database", "note_insert_failed")
	}
	return err
}

// FindByID returns nil, nil when the note does not exist.
func (r *NoteRepo) FindByID(ctx context.Context, noteID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"note_id": noteID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "note_lookup_failed")
		return nil, err
	}

	return &note, nil
}

// Find lists notes matching the filter, newest first. A tag filter matches
// notes carrying any of the requested tags. Filtering to private narrows
// the result to the requester's own notes or public ones.
func (r *NoteRepo) Find(ctx context.Context, f model.NoteFilter) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{}
	if len(f.Tags) > 0 {
		filter["tags"] = bson.M{"$in": f.Tags}
	}
	if f.Visibility != "" {
		filter["visibility"] = f.Visibility
	}
	if f.Visibility == model.VisibilityPrivate {
		filter["$or"] = []bson.M{
			{"user_id": f.RequesterID},
			{"visibility": model.VisibilityPublic},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "note_list_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var notes []*model.Note
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Replace overwrites the four mutable fields wholesale. Last writer wins,
// there is no version guard.
func (r *NoteRepo) Replace(ctx context.Context, noteID string, note *model.Note) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	update := bson.M{
		"$set": bson.M{
			"title":      note.Title,
			"content":    note.Content,
			"visibility": note.Visibility,
			"tags":       note.Tags,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"note_id": noteID}, update)
	if err != nil {
		utils.TrackError("database", "note_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *NoteRepo) Delete(ctx context.Context, noteID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"note_id": noteID})
	if err != nil {
		utils.TrackError("database", "note_delete_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
