package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tiresomefanatic/FindPRO-Backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoGigRepository struct {
	gigs *mongo.Collection
}

func NewGigRepository(gigs *mongo.Collection) *MongoGigRepository {
	return &MongoGigRepository{gigs: gigs}
}

var listSort = bson.D{
	{Key: "category", Value: 1},
	{Key: "subCategory", Value: 1},
	{Key: "_id", Value: 1},
}

func (r *MongoGigRepository) Create(ctx context.Context, gig models.Gig) (*models.Gig, error) {
	const op = "repository/gigs/Create"

	gig.ID = primitive.NewObjectID()
	if _, err := r.gigs.InsertOne(ctx, gig); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &gig, nil
}

func (r *MongoGigRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Gig, error) {
	const op = "repository/gigs/FindByID"

	var gig models.Gig
	if err := r.gigs.FindOne(ctx, bson.M{"_id": id}).Decode(&gig); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &gig, nil
}

func (r *MongoGigRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.GigPatch, now time.Time) (*models.Gig, error) {
	const op = "repository/gigs/Update"

	set := patchToSet(patch)
	set["updatedAt"] = now
	set["lastUpdated"] = now

	return r.findOneAndUpdate(ctx, op, id, bson.M{"$set": set})
}

func (r *MongoGigRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string, now time.Time) (*models.Gig, error) {
	const op = "repository/gigs/SetStatus"

	return r.findOneAndUpdate(ctx, op, id, bson.M{"$set": bson.M{
		"status":      status,
		"updatedAt":   now,
		"lastUpdated": now,
	}})
}

func (r *MongoGigRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	const op = "repository/gigs/Delete"

	res, err := r.gigs.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return nil
}

func (r *MongoGigRepository) List(ctx context.Context, filter ListFilter, skip, limit int) ([]models.Gig, int64, error) {
	const op = "repository/gigs/List"

	query := buildListFilter(filter)

	total, err := r.gigs.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: count: %w", op, err)
	}

	opts := options.Find().
		SetSort(listSort).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	gigs, err := r.find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return gigs, total, nil
}

func (r *MongoGigRepository) ListLive(ctx context.Context) ([]models.Gig, error) {
	const op = "repository/gigs/ListLive"

	gigs, err := r.find(ctx, bson.M{"status": models.StatusLive}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return gigs, nil
}

func (r *MongoGigRepository) FindLiveByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Gig, error) {
	const op = "repository/gigs/FindLiveByIDs"

	if len(ids) == 0 {
		return []models.Gig{}, nil
	}

	query := bson.M{
		"_id":    bson.M{"$in": ids},
		"status": models.StatusLive,
	}

	gigs, err := r.find(ctx, query, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return gigs, nil
}

func (r *MongoGigRepository) FindByOwner(ctx context.Context, owner primitive.ObjectID, liveOnly bool) ([]models.Gig, error) {
	const op = "repository/gigs/FindByOwner"

	query := bson.M{"owner": owner}
	if liveOnly {
		query["status"] = models.StatusLive
	}

	gigs, err := r.find(ctx, query, options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return gigs, nil
}

func (r *MongoGigRepository) PushPortfolioMedia(ctx context.Context, id primitive.ObjectID, media models.Media, now time.Time) (*models.Gig, error) {
	const op = "repository/gigs/PushPortfolioMedia"

	return r.findOneAndUpdate(ctx, op, id, bson.M{
		"$push": bson.M{"portfolioMedia": media},
		"$set":  bson.M{"updatedAt": now, "lastUpdated": now},
	})
}

func (r *MongoGigRepository) PullPortfolioMedia(ctx context.Context, id primitive.ObjectID, src string, now time.Time) (*models.Gig, error) {
	const op = "repository/gigs/PullPortfolioMedia"

	return r.findOneAndUpdate(ctx, op, id, bson.M{
		"$pull": bson.M{"portfolioMedia": bson.M{"src": src}},
		"$set":  bson.M{"updatedAt": now, "lastUpdated": now},
	})
}

func (r *MongoGigRepository) SaveInteractions(ctx context.Context, id primitive.ObjectID, interactions []models.Interaction, now time.Time) error {
	const op = "repository/gigs/SaveInteractions"

	res, err := r.gigs.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"interactions": interactions,
		"updatedAt":    now,
		"lastUpdated":  now,
	}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return nil
}

func (r *MongoGigRepository) findOneAndUpdate(ctx context.Context, op string, id primitive.ObjectID, update bson.M) (*models.Gig, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var gig models.Gig
	if err := r.gigs.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&gig); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &gig, nil
}

func (r *MongoGigRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]models.Gig, error) {
	cursor, err := r.gigs.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	defer cursor.Close(ctx)

	gigs := make([]models.Gig, 0)
	if err := cursor.All(ctx, &gigs); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return gigs, nil
}

// buildListFilter turns f into a query. Search is matched literally and case-insensitively
// against category or subCategory.
func buildListFilter(f ListFilter) bson.M {
	query := bson.M{}
	if f.Status != "" {
		query["status"] = f.Status
	}

	if search := strings.TrimSpace(f.Search); search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"category": pattern},
			bson.M{"subCategory": pattern},
		}
		return query
	}

	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.SubCategory != "" {
		query["subCategory"] = f.SubCategory
	}

	return query
}

// patchToSet maps the non-nil patch fields to their bson names.
func patchToSet(p models.GigPatch) bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.SubCategory != nil {
		set["subCategory"] = *p.SubCategory
	}
	if p.Skills != nil {
		set["skills"] = *p.Skills
	}
	if p.Tags != nil {
		set["tags"] = *p.Tags
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Note != nil {
		set["note"] = *p.Note
	}
	if p.Packages != nil {
		set["packages"] = *p.Packages
	}
	if p.FAQs != nil {
		set["faqs"] = *p.FAQs
	}
	if p.PortfolioMedia != nil {
		set["portfolioMedia"] = *p.PortfolioMedia
	}
	return set
}
