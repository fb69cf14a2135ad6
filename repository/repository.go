// Package repository is the MongoDB access layer for gigs and users.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/tiresomefanatic/FindPRO-Backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when the addressed document does not exist.
var ErrNotFound = errors.New("not found")

// ListFilter selects gigs for the paginated listing.
// A non-empty Search overrides Category and SubCategory.
type ListFilter struct {
	Status      string
	Category    string
	SubCategory string
	Search      string
}

// GigRepository describes the operations on the gigs collection.
type GigRepository interface {
	// Create inserts gig and returns it with its new id.
	Create(ctx context.Context, gig models.Gig) (*models.Gig, error)

	// FindByID returns ErrNotFound when the gig is absent.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Gig, error)

	// Update applies the non-nil patch fields and returns the updated gig.
	Update(ctx context.Context, id primitive.ObjectID, patch models.GigPatch, now time.Time) (*models.Gig, error)

	// SetStatus switches the gig between draft and live.
	SetStatus(ctx context.Context, id primitive.ObjectID, status string, now time.Time) (*models.Gig, error)

	// Delete returns ErrNotFound when nothing was deleted.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// List returns one page sorted by category, subCategory, _id and the total match count.
	List(ctx context.Context, filter ListFilter, skip, limit int) ([]models.Gig, int64, error)

	// ListLive returns every live gig in _id order.
	ListLive(ctx context.Context) ([]models.Gig, error)

	// FindLiveByIDs returns the live gigs among ids in _id order. Unknown ids are skipped.
	FindLiveByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Gig, error)

	// FindByOwner returns the owner's gigs, newest update first.
	FindByOwner(ctx context.Context, owner primitive.ObjectID, liveOnly bool) ([]models.Gig, error)

	// PushPortfolioMedia appends media to the gig's portfolio.
	PushPortfolioMedia(ctx context.Context, id primitive.ObjectID, media models.Media, now time.Time) (*models.Gig, error)

	// PullPortfolioMedia removes every portfolio entry whose src equals src.
	PullPortfolioMedia(ctx context.Context, id primitive.ObjectID, src string, now time.Time) (*models.Gig, error)

	// SaveInteractions overwrites the gig's interaction list.
	SaveInteractions(ctx context.Context, id primitive.ObjectID, interactions []models.Interaction, now time.Time) error
}

// UserRepository describes the operations on the users collection.
type UserRepository interface {
	// FindByID returns ErrNotFound when the user is absent.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)

	// FindByIDs fetches the public profile fields of the given users in one query.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)

	AddBookmark(ctx context.Context, userID, gigID primitive.ObjectID) error
	RemoveBookmark(ctx context.Context, userID, gigID primitive.ObjectID) error

	// PullBookmarkFromAll removes gigID from every user's bookmarks and returns the number of users changed.
	PullBookmarkFromAll(ctx context.Context, gigID primitive.ObjectID) (int64, error)
}
