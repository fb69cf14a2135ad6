package services

import (
	"context"
	"errors"
	"strings"

	"github.com/tiresomefanatic/FindPRO-Backend/models"
	"github.com/tiresomefanatic/FindPRO-Backend/repository"
	"github.com/tiresomefanatic/FindPRO-Backend/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ListQuery carries the raw listing parameters. Page and Limit are parsed leniently.
type ListQuery struct {
	Page        string
	Limit       string
	Category    string
	SubCategory string
	Search      string
}

// CreateGig inserts a draft skeleton owned by ownerID.
func (s *GigService) CreateGig(ctx context.Context, ownerID string) (*models.Gig, error) {
	owner, err := parseID(ownerID, msgInvalidOwner)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, owner); err != nil {
		return nil, storeError(err, msgInvalidOwner, "Failed to create gig")
	}

	gig, err := s.gigs.Create(ctx, models.NewDraftGig(owner, s.timestamp()))
	if err != nil {
		return nil, utils.Internal("Failed to create gig", err)
	}

	s.logger(ctx).Info("gig created", zap.String("gig_id", gig.ID.Hex()), zap.String("owner", ownerID))

	return gig, nil
}

// UpdateGig applies patch after validating faqs and packages. Nothing is written on failure.
func (s *GigService) UpdateGig(ctx context.Context, gigID string, patch models.GigPatch) (*models.Gig, error) {
	id, err := parseID(gigID, msgGigNotFound)
	if err != nil {
		return nil, err
	}

	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	gig, err := s.gigs.Update(ctx, id, patch, s.timestamp())
	if err != nil {
		return nil, storeError(err, msgGigNotFound, "Failed to update gig")
	}

	return gig, nil
}

// DeleteGig removes the gig and then pulls it from every user's bookmarks.
// The two writes are independent; a failed cleanup leaves dangling ids readers skip.
func (s *GigService) DeleteGig(ctx context.Context, gigID string) error {
	id, err := parseID(gigID, msgGigNotFound)
	if err != nil {
		return err
	}

	if err := s.gigs.Delete(ctx, id); err != nil {
		return storeError(err, msgGigNotFound, "Failed to delete gig")
	}

	changed, err := s.users.PullBookmarkFromAll(ctx, id)
	if err != nil {
		return utils.Internal("Failed to delete gig", err)
	}

	s.logger(ctx).Info("gig deleted",
		zap.String("gig_id", gigID),
		zap.Int64("bookmarks_removed", changed),
	)

	return nil
}

// GetGigByID returns the gig with its owner's contact details.
func (s *GigService) GetGigByID(ctx context.Context, gigID string) (*models.GigView, error) {
	id, err := parseID(gigID, msgGigNotFound)
	if err != nil {
		return nil, err
	}

	gig, err := s.gigs.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, msgGigNotFound, "Failed to retrieve gig")
	}

	var owner *models.OwnerSummary
	user, err := s.users.FindByID(ctx, gig.Owner)
	switch {
	case err == nil:
		owner = models.NewOwnerSummary(*user, true)
	case !errors.Is(err, repository.ErrNotFound):
		return nil, utils.Internal("Failed to retrieve gig", err)
	}

	view := models.NewGigView(*gig, owner)
	return &view, nil
}

// ListGigs returns one page of live gigs.
func (s *GigService) ListGigs(ctx context.Context, q ListQuery) (*models.GigPage, error) {
	p := utils.ParsePagination(q.Page, q.Limit, s.pagination.DefaultLimit, s.pagination.MaxLimit)

	filter := repository.ListFilter{
		Status:      models.StatusLive,
		Category:    q.Category,
		SubCategory: q.SubCategory,
		Search:      q.Search,
	}

	gigs, total, err := s.gigs.List(ctx, filter, p.Skip, p.Limit)
	if err != nil {
		return nil, utils.Internal("Failed to retrieve gigs", err)
	}

	views, err := s.withOwners(ctx, gigs)
	if err != nil {
		return nil, utils.Internal("Failed to retrieve gigs", err)
	}

	return &models.GigPage{
		Gigs:        views,
		CurrentPage: p.Page,
		TotalPages:  utils.TotalPages(total, p.Limit),
		TotalCount:  total,
	}, nil
}

// GigsByCategory groups every live gig by category.
func (s *GigService) GigsByCategory(ctx context.Context) ([]models.CategoryGroup, error) {
	gigs, err := s.gigs.ListLive(ctx)
	if err != nil {
		return nil, utils.Internal("Failed to retrieve gigs by category", err)
	}

	groups, err := s.group(ctx, gigs)
	if err != nil {
		return nil, utils.Internal("Failed to retrieve gigs by category", err)
	}

	return groups, nil
}

// BookmarkedGigs groups the caller's bookmarked live gigs by category.
func (s *GigService) BookmarkedGigs(ctx context.Context, userID string) ([]models.CategoryGroup, error) {
	id, err := parseID(userID, msgUserNotFound)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, msgUserNotFound, "Failed to retrieve bookmarked gigs")
	}

	gigs, err := s.gigs.FindLiveByIDs(ctx, user.BookmarkedGigs)
	if err != nil {
		return nil, utils.Internal("Failed to retrieve bookmarked gigs", err)
	}

	groups, err := s.group(ctx, gigs)
	if err != nil {
		return nil, utils.Internal("Failed to retrieve bookmarked gigs", err)
	}

	return groups, nil
}

// MyGigs returns all of the caller's gigs, drafts included.
func (s *GigService) MyGigs(ctx context.Context, callerID string) ([]models.GigView, error) {
	return s.byOwner(ctx, callerID, false)
}

// GigsByOwner returns another owner's live gigs.
func (s *GigService) GigsByOwner(ctx context.Context, ownerID string) ([]models.GigView, error) {
	return s.byOwner(ctx, ownerID, true)
}

func (s *GigService) byOwner(ctx context.Context, ownerID string, liveOnly bool) ([]models.GigView, error) {
	id, err := parseID(ownerID, msgUserNotFound)
	if err != nil {
		return nil, err
	}

	gigs, err := s.gigs.FindByOwner(ctx, id, liveOnly)
	if err != nil {
		return nil, utils.Internal("Failed to retrieve gigs by owner", err)
	}

	views, err := s.withOwners(ctx, gigs)
	if err != nil {
		return nil, utils.Internal("Failed to retrieve gigs by owner", err)
	}

	return views, nil
}

// owners fetches the distinct owners of gigs in one batch.
func (s *GigService) owners(ctx context.Context, gigs []models.Gig) (map[primitive.ObjectID]models.User, error) {
	seen := make(map[primitive.ObjectID]struct{}, len(gigs))
	ids := make([]primitive.ObjectID, 0, len(gigs))
	for _, g := range gigs {
		if _, ok := seen[g.Owner]; ok {
			continue
		}
		seen[g.Owner] = struct{}{}
		ids = append(ids, g.Owner)
	}

	byID := make(map[primitive.ObjectID]models.User, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		byID[u.ID] = u
	}

	return byID, nil
}

func (s *GigService) withOwners(ctx context.Context, gigs []models.Gig) ([]models.GigView, error) {
	owners, err := s.owners(ctx, gigs)
	if err != nil {
		return nil, err
	}

	views := make([]models.GigView, 0, len(gigs))
	for _, g := range gigs {
		var owner *models.OwnerSummary
		if u, ok := owners[g.Owner]; ok {
			owner = models.NewOwnerSummary(u, false)
		}
		views = append(views, models.NewGigView(g, owner))
	}

	return views, nil
}

func (s *GigService) group(ctx context.Context, gigs []models.Gig) ([]models.CategoryGroup, error) {
	owners, err := s.owners(ctx, gigs)
	if err != nil {
		return nil, err
	}

	return models.GroupByCategory(gigs, owners), nil
}

func validatePatch(p models.GigPatch) error {
	if p.FAQs != nil {
		for _, faq := range *p.FAQs {
			if strings.TrimSpace(faq.Question) == "" || strings.TrimSpace(faq.Answer) == "" {
				return utils.Validation("Question and answer fields cannot be empty.")
			}
		}
	}

	if p.Packages != nil && !validPackages(*p.Packages) {
		return utils.Validation("Packages must be exactly Basic, Premium and Custom")
	}

	return nil
}

// validPackages reports whether packages holds each named variant exactly once.
func validPackages(packages []models.Package) bool {
	if len(packages) != len(models.PackageNames) {
		return false
	}

	seen := make(map[string]bool, len(packages))
	for _, p := range packages {
		seen[p.Name] = true
	}

	for _, name := range models.PackageNames {
		if !seen[name] {
			return false
		}
	}

	return true
}
