package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tiresomefanatic/FindPRO-Backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUserRepository struct {
	users *mongo.Collection
}

func NewUserRepository(users *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{users: users}
}

// profileProjection keeps token fields out of anything read through FindByIDs.
var profileProjection = bson.M{
	"name":        1,
	"skills":      1,
	"profilePic":  1,
	"location":    1,
	"languages":   1,
	"phoneNumber": 1,
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	const op = "repository/users/FindByID"

	var user models.User
	if err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

func (r *MongoUserRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	const op = "repository/users/FindByIDs"

	if len(ids) == 0 {
		return []models.User{}, nil
	}

	cursor, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, options.Find().SetProjection(profileProjection))
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0, len(ids))
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return users, nil
}

func (r *MongoUserRepository) AddBookmark(ctx context.Context, userID, gigID primitive.ObjectID) error {
	const op = "repository/users/AddBookmark"

	return r.updateBookmarks(ctx, op, userID, bson.M{"$addToSet": bson.M{"bookmarkedGigs": gigID}})
}

func (r *MongoUserRepository) RemoveBookmark(ctx context.Context, userID, gigID primitive.ObjectID) error {
	const op = "repository/users/RemoveBookmark"

	return r.updateBookmarks(ctx, op, userID, bson.M{"$pull": bson.M{"bookmarkedGigs": gigID}})
}

func (r *MongoUserRepository) PullBookmarkFromAll(ctx context.Context, gigID primitive.ObjectID) (int64, error) {
	const op = "repository/users/PullBookmarkFromAll"

	res, err := r.users.UpdateMany(ctx,
		bson.M{"bookmarkedGigs": gigID},
		bson.M{"$pull": bson.M{"bookmarkedGigs": gigID}},
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.ModifiedCount, nil
}

func (r *MongoUserRepository) updateBookmarks(ctx context.Context, op string, userID primitive.ObjectID, update bson.M) error {
	res, err := r.users.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return nil
}
