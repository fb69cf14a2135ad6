package services_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiresomefanatic/FindPRO-Backend/config"
	"github.com/tiresomefanatic/FindPRO-Backend/metrics"
	"github.com/tiresomefanatic/FindPRO-Backend/mocks"
	"github.com/tiresomefanatic/FindPRO-Backend/models"
	"github.com/tiresomefanatic/FindPRO-Backend/repository"
	"github.com/tiresomefanatic/FindPRO-Backend/services"
	"github.com/tiresomefanatic/FindPRO-Backend/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	svc     *services.GigService
	gigs    *mocks.MockGigRepository
	users   *mocks.MockUserRepository
	media   *mocks.MockMediaStore
	metrics *metrics.Metrics
}

func newFixture(t *testing.T, withMedia bool) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		gigs:    mocks.NewMockGigRepository(ctrl),
		users:   mocks.NewMockUserRepository(ctrl),
		media:   mocks.NewMockMediaStore(ctrl),
		metrics: metrics.Nop(),
	}

	opts := []services.Option{
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithMetrics(f.metrics),
		services.WithPagination(config.PaginationConfig{DefaultLimit: 10, MaxLimit: 100}),
	}
	if withMedia {
		opts = append(opts, services.WithMediaStore(f.media, "portfolio"))
	}

	f.svc = services.NewGigService(f.gigs, f.users, opts...)
	return f
}

func requireAppError(t *testing.T, err error, status int, message string) {
	t.Helper()

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, status, appErr.Status)
	require.Equal(t, message, appErr.Message)
}

func notFound(op string) error {
	return errors.Join(errors.New(op), repository.ErrNotFound)
}

func TestCreateGig(t *testing.T) {
	f := newFixture(t, false)
	owner := primitive.NewObjectID()

	f.users.EXPECT().FindByID(gomock.Any(), owner).Return(&models.User{ID: owner}, nil)
	f.gigs.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g models.Gig) (*models.Gig, error) {
			g.ID = primitive.NewObjectID()
			return &g, nil
		})

	gig, err := f.svc.CreateGig(context.Background(), owner.Hex())
	require.NoError(t, err)

	assert.Equal(t, owner, gig.Owner)
	assert.Equal(t, "Draft", gig.Title)
	assert.Equal(t, models.StatusDraft, gig.Status)
	require.Len(t, gig.Packages, 3)
	assert.Equal(t, "Basic", gig.Packages[0].Name)
	assert.Equal(t, "Premium", gig.Packages[1].Name)
	assert.Equal(t, "Custom", gig.Packages[2].Name)
	assert.Empty(t, gig.FAQs)
	assert.Equal(t, fixedNow, gig.CreatedAt)
}

func TestCreateGig_InvalidOwner(t *testing.T) {
	f := newFixture(t, false)
	owner := primitive.NewObjectID()

	f.users.EXPECT().FindByID(gomock.Any(), owner).Return(nil, notFound("users/FindByID"))

	_, err := f.svc.CreateGig(context.Background(), owner.Hex())
	requireAppError(t, err, http.StatusNotFound, "Invalid owner")

	_, err = f.svc.CreateGig(context.Background(), "not-an-id")
	requireAppError(t, err, http.StatusNotFound, "Invalid owner")
}

func TestUpdateGig_BlankFAQRejected(t *testing.T) {
	f := newFixture(t, false)

	faqs := []models.FAQ{{Question: "What?", Answer: "That."}, {Question: "  ", Answer: "x"}}
	_, err := f.svc.UpdateGig(context.Background(), primitive.NewObjectID().Hex(), models.GigPatch{FAQs: &faqs})

	requireAppError(t, err, http.StatusBadRequest, "Question and answer fields cannot be empty.")
}

func TestUpdateGig_PackagesMustBeThreeVariants(t *testing.T) {
	f := newFixture(t, false)
	id := primitive.NewObjectID().Hex()

	two := []models.Package{{Name: "Basic"}, {Name: "Premium"}}
	_, err := f.svc.UpdateGig(context.Background(), id, models.GigPatch{Packages: &two})
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)

	dup := []models.Package{{Name: "Basic"}, {Name: "Basic"}, {Name: "Custom"}}
	_, err = f.svc.UpdateGig(context.Background(), id, models.GigPatch{Packages: &dup})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestUpdateGig(t *testing.T) {
	f := newFixture(t, false)
	id := primitive.NewObjectID()
	title := "Logo design"
	packages := []models.Package{{Name: "Custom"}, {Name: "Basic", Price: "500"}, {Name: "Premium"}}
	patch := models.GigPatch{Title: &title, Packages: &packages}

	f.gigs.EXPECT().Update(gomock.Any(), id, patch, fixedNow).
		Return(&models.Gig{ID: id, Title: title, Packages: packages}, nil)

	gig, err := f.svc.UpdateGig(context.Background(), id.Hex(), patch)
	require.NoError(t, err)
	assert.Equal(t, title, gig.Title)
}

func TestUpdateGig_NotFound(t *testing.T) {
	f := newFixture(t, false)
	id := primitive.NewObjectID()
	title := "x"

	f.gigs.EXPECT().Update(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil, notFound("gigs/Update"))

	_, err := f.svc.UpdateGig(context.Background(), id.Hex(), models.GigPatch{Title: &title})
	requireAppError(t, err, http.StatusNotFound, "Gig not found")
}

func TestDeleteGig_CleansBookmarks(t *testing.T) {
	f := newFixture(t, false)
	id := primitive.NewObjectID()

	gomock.InOrder(
		f.gigs.EXPECT().Delete(gomock.Any(), id).Return(nil),
		f.users.EXPECT().PullBookmarkFromAll(gomock.Any(), id).Return(int64(2), nil),
	)

	require.NoError(t, f.svc.DeleteGig(context.Background(), id.Hex()))
}

func TestDeleteGig_NotFoundSkipsCleanup(t *testing.T) {
	f := newFixture(t, false)
	id := primitive.NewObjectID()

	f.gigs.EXPECT().Delete(gomock.Any(), id).Return(notFound("gigs/Delete"))

	err := f.svc.DeleteGig(context.Background(), id.Hex())
	requireAppError(t, err, http.StatusNotFound, "Gig not found")
}

func TestDeleteGig_StoreFailure(t *testing.T) {
	f := newFixture(t, false)
	id := primitive.NewObjectID()

	f.gigs.EXPECT().Delete(gomock.Any(), id).Return(nil)
	f.users.EXPECT().PullBookmarkFromAll(gomock.Any(), id).Return(int64(0), errors.New("timeout"))

	err := f.svc.DeleteGig(context.Background(), id.Hex())
	requireAppError(t, err, http.StatusInternalServerError, "Failed to delete gig")
}

func TestGetGigByID_ExpandsOwnerContact(t *testing.T) {
	f := newFixture(t, false)
	owner := models.User{
		ID: primitive.NewObjectID(), Name: "Asha", Location: "Pune",
		Languages: []string{"en"}, PhoneNumber: "+91", Email: "a@example.com",
	}
	gig := models.Gig{ID: primitive.NewObjectID(), Owner: owner.ID, Title: "Logo"}

	f.gigs.EXPECT().FindByID(gomock.Any(), gig.ID).Return(&gig, nil)
	f.users.EXPECT().FindByID(gomock.Any(), owner.ID).Return(&owner, nil)

	view, err := f.svc.GetGigByID(context.Background(), gig.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, view.Owner)
	require.NotNil(t, view.Owner.OwnerContact)
	assert.Equal(t, "Asha", view.Owner.Name)
	assert.Equal(t, "Pune", view.Owner.Location)
	assert.Equal(t, "+91", view.Owner.PhoneNumber)
}

func TestGetGigByID_MissingOwnerIsNull(t *testing.T) {
	f := newFixture(t, false)
	gig := models.Gig{ID: primitive.NewObjectID(), Owner: primitive.NewObjectID()}

	f.gigs.EXPECT().FindByID(gomock.Any(), gig.ID).Return(&gig, nil)
	f.users.EXPECT().FindByID(gomock.Any(), gig.Owner).Return(nil, notFound("users/FindByID"))

	view, err := f.svc.GetGigByID(context.Background(), gig.ID.Hex())
	require.NoError(t, err)
	assert.Nil(t, view.Owner)
}

func TestGetGigByID_NotFound(t *testing.T) {
	f := newFixture(t, false)
	id := primitive.NewObjectID()

	f.gigs.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound("gigs/FindByID"))

	_, err := f.svc.GetGigByID(context.Background(), id.Hex())
	requireAppError(t, err, http.StatusNotFound, "Gig not found")

	_, err = f.svc.GetGigByID(context.Background(), "zzz")
	requireAppError(t, err, http.StatusNotFound, "Gig not found")
}

func TestListGigs_Pagination(t *testing.T) {
	f := newFixture(t, false)
	owner := primitive.NewObjectID()

	gigs := make([]models.Gig, 5)
	for i := range gigs {
		gigs[i] = models.Gig{ID: primitive.NewObjectID(), Owner: owner, Status: models.StatusLive}
	}

	f.gigs.EXPECT().
		List(gomock.Any(), repository.ListFilter{Status: models.StatusLive}, 20, 10).
		Return(gigs, int64(25), nil)
	f.users.EXPECT().FindByIDs(gomock.Any(), []primitive.ObjectID{owner}).
		Return([]models.User{{ID: owner, Name: "Owner"}}, nil)

	page, err := f.svc.ListGigs(context.Background(), services.ListQuery{Page: "3", Limit: "10"})
	require.NoError(t, err)

	assert.Len(t, page.Gigs, 5)
	assert.Equal(t, 3, page.CurrentPage)
	assert.EqualValues(t, 3, page.TotalPages)
	assert.EqualValues(t, 25, page.TotalCount)
	assert.Equal(t, "Owner", page.Gigs[0].Owner.Name)
	assert.Nil(t, page.Gigs[0].Owner.OwnerContact)
}

func TestListGigs_LenientParams(t *testing.T) {
	f := newFixture(t, false)

	f.gigs.EXPECT().List(gomock.Any(), gomock.Any(), 0, 10).Return([]models.Gig{}, int64(0), nil).Times(2)
	f.gigs.EXPECT().List(gomock.Any(), gomock.Any(), 0, 100).Return([]models.Gig{}, int64(0), nil)

	for _, limit := range []string{"0", "abc"} {
		page, err := f.svc.ListGigs(context.Background(), services.ListQuery{Limit: limit})
		require.NoError(t, err)
		assert.Equal(t, 1, page.CurrentPage)
		assert.Zero(t, page.TotalPages)
		assert.NotNil(t, page.Gigs)
	}

	_, err := f.svc.ListGigs(context.Background(), services.ListQuery{Limit: "5000"})
	require.NoError(t, err)
}

func TestListGigs_PassesSearch(t *testing.T) {
	f := newFixture(t, false)

	want := repository.ListFilter{Status: models.StatusLive, Category: "Design", Search: "log"}
	f.gigs.EXPECT().List(gomock.Any(), want, 0, 10).Return(nil, int64(0), nil)

	_, err := f.svc.ListGigs(context.Background(), services.ListQuery{Category: "Design", Search: "log"})
	require.NoError(t, err)
}

func TestGigsByCategory_JoinsOwnersOnce(t *testing.T) {
	f := newFixture(t, false)
	a, b := primitive.NewObjectID(), primitive.NewObjectID()

	gigs := []models.Gig{
		{ID: primitive.NewObjectID(), Owner: a, Category: "Writing", Title: "w1"},
		{ID: primitive.NewObjectID(), Owner: b, Category: "Design", Title: "d1"},
		{ID: primitive.NewObjectID(), Owner: a, Category: "Design", Title: "d2"},
	}

	f.gigs.EXPECT().ListLive(gomock.Any()).Return(gigs, nil)
	f.users.EXPECT().FindByIDs(gomock.Any(), []primitive.ObjectID{a, b}).
		Return([]models.User{{ID: a, Name: "A"}, {ID: b, Name: "B"}}, nil).Times(1)

	groups, err := f.svc.GigsByCategory(context.Background())
	require.NoError(t, err)

	require.Len(t, groups, 2)
	assert.Equal(t, "Design", groups[0].Category)
	require.Len(t, groups[0].Gigs, 2)
	assert.Equal(t, "d1", groups[0].Gigs[0].Title)
	assert.Equal(t, "B", groups[0].Gigs[0].Owner.Name)
	assert.Equal(t, "d2", groups[0].Gigs[1].Title)
	assert.Equal(t, "Writing", groups[1].Category)
}

func TestGigsByCategory_Empty(t *testing.T) {
	f := newFixture(t, false)

	f.gigs.EXPECT().ListLive(gomock.Any()).Return([]models.Gig{}, nil)

	groups, err := f.svc.GigsByCategory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestBookmarkedGigs(t *testing.T) {
	f := newFixture(t, false)
	owner := primitive.NewObjectID()
	live := models.Gig{ID: primitive.NewObjectID(), Owner: owner, Category: "Design"}
	dangling := primitive.NewObjectID()
	user := models.User{ID: primitive.NewObjectID(), BookmarkedGigs: []primitive.ObjectID{live.ID, dangling}}

	f.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(&user, nil)
	f.gigs.EXPECT().FindLiveByIDs(gomock.Any(), user.BookmarkedGigs).Return([]models.Gig{live}, nil)
	f.users.EXPECT().FindByIDs(gomock.Any(), []primitive.ObjectID{owner}).Return([]models.User{{ID: owner}}, nil)

	groups, err := f.svc.BookmarkedGigs(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Gigs, 1)
	assert.Equal(t, live.ID, groups[0].Gigs[0].ID)
}

func TestBookmarkedGigs_UserNotFound(t *testing.T) {
	f := newFixture(t, false)
	id := primitive.NewObjectID()

	f.users.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound("users/FindByID"))

	_, err := f.svc.BookmarkedGigs(context.Background(), id.Hex())
	requireAppError(t, err, http.StatusNotFound, "User not found")
}

func TestToggleBookmark_TwiceRestores(t *testing.T) {
	f := newFixture(t, false)
	gigID := primitive.NewObjectID()
	user := models.User{ID: primitive.NewObjectID(), BookmarkedGigs: []primitive.ObjectID{}}

	gomock.InOrder(
		f.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(&user, nil),
		f.users.EXPECT().AddBookmark(gomock.Any(), user.ID, gigID).Return(nil),
		f.users.EXPECT().FindByID(gomock.Any(), user.ID).
			Return(&models.User{ID: user.ID, BookmarkedGigs: []primitive.ObjectID{gigID}}, nil),
		f.users.EXPECT().RemoveBookmark(gomock.Any(), user.ID, gigID).Return(nil),
	)

	added, err := f.svc.ToggleBookmark(context.Background(), user.ID.Hex(), gigID.Hex())
	require.NoError(t, err)
	assert.True(t, added)

	added, err = f.svc.ToggleBookmark(context.Background(), user.ID.Hex(), gigID.Hex())
	require.NoError(t, err)
	assert.False(t, added)

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookmarkToggles.WithLabelValues("added")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookmarkToggles.WithLabelValues("removed")))
}

func TestToggleBookmark_Errors(t *testing.T) {
	f := newFixture(t, false)
	userID := primitive.NewObjectID()

	_, err := f.svc.ToggleBookmark(context.Background(), userID.Hex(), "bad")
	requireAppError(t, err, http.StatusBadRequest, "Invalid gig id")

	f.users.EXPECT().FindByID(gomock.Any(), userID).Return(nil, notFound("users/FindByID"))
	_, err = f.svc.ToggleBookmark(context.Background(), userID.Hex(), primitive.NewObjectID().Hex())
	requireAppError(t, err, http.StatusNotFound, "User not found")
}

func TestPublishGig_RequiredFieldOrder(t *testing.T) {
	complete := models.Gig{
		Title: "Logo", Description: "Nice logos", Category: "Design",
		SubCategory: "Logo", Packages: models.DefaultPackages(),
	}

	tests := []struct {
		name   string
		mutate func(g *models.Gig)
		field  string
	}{
		{"title first", func(g *models.Gig) { g.Title = ""; g.Description = "" }, "title"},
		{"description", func(g *models.Gig) { g.Description = ""; g.Category = "" }, "description"},
		{"category", func(g *models.Gig) { g.Category = ""; g.SubCategory = "" }, "category"},
		{"subCategory", func(g *models.Gig) { g.SubCategory = "" }, "subCategory"},
		{"packages", func(g *models.Gig) { g.Packages = nil }, "packages"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, false)
			g := complete
			g.ID = primitive.NewObjectID()
			tt.mutate(&g)

			f.gigs.EXPECT().FindByID(gomock.Any(), g.ID).Return(&g, nil)

			_, err := f.svc.PublishGig(context.Background(), g.ID.Hex())
			requireAppError(t, err, http.StatusBadRequest, "Missing required field: "+tt.field)
		})
	}
}

func TestPublishGig(t *testing.T) {
	f := newFixture(t, false)
	g := models.Gig{
		ID: primitive.NewObjectID(), Title: "Logo", Description: "d", Category: "Design",
		SubCategory: "Logo", Packages: models.DefaultPackages(), Status: models.StatusDraft,
	}
	live := g
	live.Status = models.StatusLive

	f.gigs.EXPECT().FindByID(gomock.Any(), g.ID).Return(&g, nil)
	f.gigs.EXPECT().SetStatus(gomock.Any(), g.ID, models.StatusLive, fixedNow).Return(&live, nil)

	got, err := f.svc.PublishGig(context.Background(), g.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.StatusLive, got.Status)
}

func TestUnpublishGig(t *testing.T) {
	f := newFixture(t, false)
	id := primitive.NewObjectID()

	f.gigs.EXPECT().SetStatus(gomock.Any(), id, models.StatusDraft, fixedNow).
		Return(&models.Gig{ID: id, Status: models.StatusDraft}, nil)

	got, err := f.svc.UnpublishGig(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, got.Status)

	missing := primitive.NewObjectID()
	f.gigs.EXPECT().SetStatus(gomock.Any(), missing, models.StatusDraft, gomock.Any()).
		Return(nil, notFound("gigs/SetStatus"))

	_, err = f.svc.UnpublishGig(context.Background(), missing.Hex())
	requireAppError(t, err, http.StatusNotFound, "Gig not found")
}

func TestRemovePortfolioMedia(t *testing.T) {
	f := newFixture(t, true)
	id := primitive.NewObjectID()
	src := "https://storage.googleapis.com/bucket/portfolio/a.png"

	f.gigs.EXPECT().PullPortfolioMedia(gomock.Any(), id, src, fixedNow).
		Return(&models.Gig{ID: id, PortfolioMedia: []models.Media{}}, nil)
	f.media.EXPECT().Owns(src).Return(true)
	f.media.EXPECT().Delete(gomock.Any(), src).Return(errors.New("permission denied"))

	gig, err := f.svc.RemovePortfolioMedia(context.Background(), id.Hex(), src)
	require.NoError(t, err)
	assert.Empty(t, gig.PortfolioMedia)
}

func TestRemovePortfolioMedia_ForeignURLNotDeleted(t *testing.T) {
	f := newFixture(t, true)
	id := primitive.NewObjectID()
	src := "https://cdn.example.com/a.png"

	f.gigs.EXPECT().PullPortfolioMedia(gomock.Any(), id, src, gomock.Any()).Return(&models.Gig{ID: id}, nil)
	f.media.EXPECT().Owns(src).Return(false)

	_, err := f.svc.RemovePortfolioMedia(context.Background(), id.Hex(), src)
	require.NoError(t, err)
}

func TestRemovePortfolioMedia_Errors(t *testing.T) {
	f := newFixture(t, false)
	id := primitive.NewObjectID()

	_, err := f.svc.RemovePortfolioMedia(context.Background(), id.Hex(), "  ")
	requireAppError(t, err, http.StatusBadRequest, "imageUrl is required")

	f.gigs.EXPECT().PullPortfolioMedia(gomock.Any(), id, "a.png", gomock.Any()).Return(nil, notFound("gigs/Pull"))
	_, err = f.svc.RemovePortfolioMedia(context.Background(), id.Hex(), "a.png")
	requireAppError(t, err, http.StatusNotFound, "Gig not found")
}

func TestAddPortfolioMedia(t *testing.T) {
	f := newFixture(t, true)
	id := primitive.NewObjectID()
	url := "https://storage.googleapis.com/bucket/portfolio/x.png"

	f.gigs.EXPECT().FindByID(gomock.Any(), id).Return(&models.Gig{ID: id}, nil)
	f.media.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/png", "portfolio").Return(url, nil)
	f.gigs.EXPECT().PushPortfolioMedia(gomock.Any(), id, gomock.Any(), fixedNow).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, m models.Media, _ time.Time) (*models.Gig, error) {
			assert.Equal(t, url, m.Src)
			assert.NotEmpty(t, m.UID)
			return &models.Gig{ID: id, PortfolioMedia: []models.Media{m}}, nil
		})

	gig, err := f.svc.AddPortfolioMedia(context.Background(), id.Hex(), bytes.NewReader([]byte("png")), "image/png")
	require.NoError(t, err)
	require.Len(t, gig.PortfolioMedia, 1)
}

func TestAddPortfolioMedia_Rejections(t *testing.T) {
	disabled := newFixture(t, false)
	_, err := disabled.svc.AddPortfolioMedia(context.Background(), primitive.NewObjectID().Hex(), nil, "image/png")
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.False(t, disabled.svc.MediaEnabled())

	f := newFixture(t, true)
	assert.True(t, f.svc.MediaEnabled())

	_, err = f.svc.AddPortfolioMedia(context.Background(), primitive.NewObjectID().Hex(), nil, "application/pdf")
	requireAppError(t, err, http.StatusBadRequest, "Only image uploads are allowed")

	missing := primitive.NewObjectID()
	f.gigs.EXPECT().FindByID(gomock.Any(), missing).Return(nil, notFound("gigs/FindByID"))
	_, err = f.svc.AddPortfolioMedia(context.Background(), missing.Hex(), nil, "image/png")
	requireAppError(t, err, http.StatusNotFound, "Gig not found")
}

func TestRecordInteraction_Validation(t *testing.T) {
	f := newFixture(t, false)
	gig, user := primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex()

	err := f.svc.RecordInteraction(context.Background(), gig, user, "")
	requireAppError(t, err, http.StatusBadRequest, "Missing required fields")

	err = f.svc.RecordInteraction(context.Background(), gig, user, "email_clicked")
	requireAppError(t, err, http.StatusBadRequest, "Invalid action")
}

func TestRecordInteraction_Accumulates(t *testing.T) {
	f := newFixture(t, false)
	gigID, userID := primitive.NewObjectID(), primitive.NewObjectID()
	gig := models.Gig{ID: gigID, Interactions: []models.Interaction{}}

	f.gigs.EXPECT().FindByID(gomock.Any(), gigID).DoAndReturn(
		func(context.Context, primitive.ObjectID) (*models.Gig, error) {
			copyOf := gig
			return &copyOf, nil
		}).Times(2)
	f.gigs.EXPECT().SaveInteractions(gomock.Any(), gigID, gomock.Any(), fixedNow).DoAndReturn(
		func(_ context.Context, _ primitive.ObjectID, list []models.Interaction, _ time.Time) error {
			gig.Interactions = list
			return nil
		}).Times(2)

	require.NoError(t, f.svc.RecordInteraction(context.Background(), gigID.Hex(), userID.Hex(), models.ActionPhoneViewed))
	require.NoError(t, f.svc.RecordInteraction(context.Background(), gigID.Hex(), userID.Hex(), models.ActionPhoneViewed))

	require.Len(t, gig.Interactions, 1)
	assert.Equal(t, userID, gig.Interactions[0].UserID)
	assert.Equal(t, 2, gig.Interactions[0].PhoneViewed)
	assert.Zero(t, gig.Interactions[0].ContactViewed)
	assert.Equal(t, fixedNow, gig.Interactions[0].LastInteraction)

	assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.Interactions.WithLabelValues(models.ActionPhoneViewed)))
}

func TestRecordInteraction_GigNotFound(t *testing.T) {
	f := newFixture(t, false)
	id := primitive.NewObjectID()

	f.gigs.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound("gigs/FindByID"))

	err := f.svc.RecordInteraction(context.Background(), id.Hex(), primitive.NewObjectID().Hex(), models.ActionContactViewed)
	requireAppError(t, err, http.StatusNotFound, "Gig not found")
}

func TestDashboards(t *testing.T) {
	f := newFixture(t, false)
	owner := primitive.NewObjectID()
	gigs := []models.Gig{{ID: primitive.NewObjectID(), Owner: owner}}

	f.gigs.EXPECT().FindByOwner(gomock.Any(), owner, false).Return(gigs, nil)
	f.gigs.EXPECT().FindByOwner(gomock.Any(), owner, true).Return([]models.Gig{}, nil)
	f.users.EXPECT().FindByIDs(gomock.Any(), []primitive.ObjectID{owner}).Return([]models.User{{ID: owner, Name: "Me"}}, nil)

	mine, err := f.svc.MyGigs(context.Background(), owner.Hex())
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Me", mine[0].Owner.Name)

	theirs, err := f.svc.GigsByOwner(context.Background(), owner.Hex())
	require.NoError(t, err)
	assert.Empty(t, theirs)
	assert.NotNil(t, theirs)
}
