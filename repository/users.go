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

type UserRepo struct {
	MongoCollection *mongo.Collection
}

func GetUserRepo(client *mongo.Client) *UserRepo {
	return &UserRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("users"),
	}
}

func (r *UserRepo) Insert(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, user)
	if err != nil {
		utils.TrackError("database", "user_insert_failed")
	}
	return err
}

// FindByName returns nil, nil when no user has that name.
func (r *UserRepo) FindByName(ctx context.Context, name string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.D{{Key: "name", Value: name}}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_failed")
		return nil, err
	}

	return &user, nil
}

// FindNamesByIDs resolves user ids to display names in a single query.
func (r *UserRepo) FindNamesByIDs(ctx context.Context, userIDs []string) (map[string]string, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	names := make(map[string]string, len(userIDs))
	if len(userIDs) == 0 {
		return names, nil
	}

	opts := options.Find().SetProjection(bson.M{"user_id": 1, "name": 1})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": bson.M{"$in": userIDs}}, opts)
	if err != nil {
		utils.TrackError("database", "user_lookup_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	for _, user := range users {
		names[user.UserID] = user.Name
	}
	return names, nil
}
