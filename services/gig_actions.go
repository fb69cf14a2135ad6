package services

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tiresomefanatic/FindPRO-Backend/gcs"
	"github.com/tiresomefanatic/FindPRO-Backend/models"
	"github.com/tiresomefanatic/FindPRO-Backend/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ToggleBookmark adds gigID to the user's bookmarks or removes it when already present.
// It returns whether the gig is bookmarked afterwards.
func (s *GigService) ToggleBookmark(ctx context.Context, userID, gigID string) (bool, error) {
	gid, err := primitive.ObjectIDFromHex(gigID)
	if err != nil {
		return false, utils.Validation("Invalid gig id")
	}

	uid, err := parseID(userID, msgUserNotFound)
	if err != nil {
		return false, err
	}

	user, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return false, storeError(err, msgUserNotFound, "Failed to bookmark gig")
	}

	if user.HasBookmark(gid) {
		if err := s.users.RemoveBookmark(ctx, uid, gid); err != nil {
			return false, storeError(err, msgUserNotFound, "Failed to bookmark gig")
		}
		s.metrics.BookmarkToggles.WithLabelValues("removed").Inc()
		return false, nil
	}

	if err := s.users.AddBookmark(ctx, uid, gid); err != nil {
		return false, storeError(err, msgUserNotFound, "Failed to bookmark gig")
	}
	s.metrics.BookmarkToggles.WithLabelValues("added").Inc()

	return true, nil
}

// PublishGig makes the gig live once its required fields are filled.
func (s *GigService) PublishGig(ctx context.Context, gigID string) (*models.Gig, error) {
	id, err := parseID(gigID, msgGigNotFound)
	if err != nil {
		return nil, err
	}

	gig, err := s.gigs.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, msgGigNotFound, "Failed to publish gig")
	}

	if field := missingField(gig); field != "" {
		return nil, utils.Validation("Missing required field: " + field)
	}

	gig, err = s.gigs.SetStatus(ctx, id, models.StatusLive, s.timestamp())
	if err != nil {
		return nil, storeError(err, msgGigNotFound, "Failed to publish gig")
	}

	return gig, nil
}

// UnpublishGig moves the gig back to draft.
func (s *GigService) UnpublishGig(ctx context.Context, gigID string) (*models.Gig, error) {
	id, err := parseID(gigID, msgGigNotFound)
	if err != nil {
		return nil, err
	}

	gig, err := s.gigs.SetStatus(ctx, id, models.StatusDraft, s.timestamp())
	if err != nil {
		return nil, storeError(err, msgGigNotFound, "Failed to unpublish gig")
	}

	return gig, nil
}

// AddPortfolioMedia uploads an image and appends it to the gig's portfolio.
func (s *GigService) AddPortfolioMedia(ctx context.Context, gigID string, r io.Reader, contentType string) (*models.Gig, error) {
	if s.media == nil {
		return nil, utils.Validation("Media uploads are not configured")
	}

	if !gcs.IsImage(contentType) {
		return nil, utils.Validation("Only image uploads are allowed")
	}

	id, err := parseID(gigID, msgGigNotFound)
	if err != nil {
		return nil, err
	}

	if _, err := s.gigs.FindByID(ctx, id); err != nil {
		return nil, storeError(err, msgGigNotFound, "Failed to upload image")
	}

	url, err := s.media.Upload(ctx, r, contentType, s.mediaFolder)
	if err != nil {
		return nil, utils.Internal("Failed to upload image", err)
	}

	gig, err := s.gigs.PushPortfolioMedia(ctx, id, models.Media{UID: uuid.NewString(), Src: url}, s.timestamp())
	if err != nil {
		s.deleteMedia(ctx, url)
		return nil, storeError(err, msgGigNotFound, "Failed to upload image")
	}

	return gig, nil
}

// RemovePortfolioMedia pulls every portfolio entry with src and deletes the stored object
// when it lives in the media store.
func (s *GigService) RemovePortfolioMedia(ctx context.Context, gigID, src string) (*models.Gig, error) {
	if strings.TrimSpace(src) == "" {
		return nil, utils.Validation("imageUrl is required")
	}

	id, err := parseID(gigID, msgGigNotFound)
	if err != nil {
		return nil, err
	}

	gig, err := s.gigs.PullPortfolioMedia(ctx, id, src, s.timestamp())
	if err != nil {
		return nil, storeError(err, msgGigNotFound, "Failed to delete image")
	}

	if s.media != nil && s.media.Owns(src) {
		s.deleteMedia(ctx, src)
	}

	return gig, nil
}

// deleteMedia removes a stored object. Failures are logged only.
func (s *GigService) deleteMedia(ctx context.Context, url string) {
	if err := s.media.Delete(ctx, url); err != nil {
		s.logger(ctx).Warn("failed to delete media object", zap.String("url", url), zap.Error(err))
	}
}

// RecordInteraction bumps the caller's counter for action on the gig.
func (s *GigService) RecordInteraction(ctx context.Context, gigID, userID, action string) error {
	if strings.TrimSpace(gigID) == "" || strings.TrimSpace(userID) == "" || action == "" {
		return utils.Validation("Missing required fields")
	}

	if !models.ValidAction(action) {
		return utils.Validation("Invalid action")
	}

	gid, err := parseID(gigID, msgGigNotFound)
	if err != nil {
		return err
	}

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return utils.Validation("Invalid user id")
	}

	gig, err := s.gigs.FindByID(ctx, gid)
	if err != nil {
		return storeError(err, msgGigNotFound, "Failed to record interaction")
	}

	now := s.timestamp()
	interactions := applyInteraction(gig.Interactions, uid, action, now)

	if err := s.gigs.SaveInteractions(ctx, gid, interactions, now); err != nil {
		return storeError(err, msgGigNotFound, "Failed to record interaction")
	}

	s.metrics.Interactions.WithLabelValues(action).Inc()

	return nil
}

// applyInteraction returns a copy of list with userID's counter for action incremented.
// A user without an entry gets a new one.
func applyInteraction(list []models.Interaction, userID primitive.ObjectID, action string, now time.Time) []models.Interaction {
	out := make([]models.Interaction, len(list), len(list)+1)
	copy(out, list)

	for i := range out {
		if out[i].UserID == userID {
			out[i].Increment(action)
			out[i].LastInteraction = now
			return out
		}
	}

	entry := models.Interaction{UserID: userID, LastInteraction: now}
	entry.Increment(action)

	return append(out, entry)
}

// missingField returns the first required field the gig lacks, in publish order.
func missingField(g *models.Gig) string {
	switch {
	case strings.TrimSpace(g.Title) == "":
		return "title"
	case strings.TrimSpace(g.Description) == "":
		return "description"
	case strings.TrimSpace(g.Category) == "":
		return "category"
	case strings.TrimSpace(g.SubCategory) == "":
		return "subCategory"
	case len(g.Packages) == 0:
		return "packages"
	}
	return ""
}
