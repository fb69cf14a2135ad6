package controllers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tiresomefanatic/FindPRO-Backend/middleware"
	"github.com/tiresomefanatic/FindPRO-Backend/models"
	"github.com/tiresomefanatic/FindPRO-Backend/services"
	"github.com/tiresomefanatic/FindPRO-Backend/utils"
	"go.uber.org/zap"
)

// GigService is what the gig handlers need from the service layer.
type GigService interface {
	CreateGig(ctx context.Context, ownerID string) (*models.Gig, error)
	UpdateGig(ctx context.Context, gigID string, patch models.GigPatch) (*models.Gig, error)
	DeleteGig(ctx context.Context, gigID string) error
	GetGigByID(ctx context.Context, gigID string) (*models.GigView, error)
	ListGigs(ctx context.Context, q services.ListQuery) (*models.GigPage, error)
	GigsByCategory(ctx context.Context) ([]models.CategoryGroup, error)
	BookmarkedGigs(ctx context.Context, userID string) ([]models.CategoryGroup, error)
	ToggleBookmark(ctx context.Context, userID, gigID string) (bool, error)
	PublishGig(ctx context.Context, gigID string) (*models.Gig, error)
	UnpublishGig(ctx context.Context, gigID string) (*models.Gig, error)
	AddPortfolioMedia(ctx context.Context, gigID string, r io.Reader, contentType string) (*models.Gig, error)
	RemovePortfolioMedia(ctx context.Context, gigID, src string) (*models.Gig, error)
	RecordInteraction(ctx context.Context, gigID, userID, action string) error
	MyGigs(ctx context.Context, callerID string) ([]models.GigView, error)
	GigsByOwner(ctx context.Context, ownerID string) ([]models.GigView, error)
}

type GigController struct {
	svc GigService
	log *zap.Logger
}

func NewGigController(svc GigService, log *zap.Logger) *GigController {
	return &GigController{svc: svc, log: log}
}

type removeMediaRequest struct {
	ImageURL string `json:"imageUrl"`
}

type interactionRequest struct {
	Action string `json:"action"`
}

// GET /gigs
func (h *GigController) ListGigs(c *gin.Context) {
	page, err := h.svc.ListGigs(c.Request.Context(), services.ListQuery{
		Page:        c.Query("page"),
		Limit:       c.Query("limit"),
		Category:    c.Query("category"),
		SubCategory: c.Query("subCategory"),
		Search:      c.Query("searchTerm"),
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GET /gigs/gigs-by-category
func (h *GigController) GigsByCategory(c *gin.Context) {
	groups, err := h.svc.GigsByCategory(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GET /gigs/getGigById/:id
func (h *GigController) GetGigByID(c *gin.Context) {
	gig, err := h.svc.GetGigByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gig)
}

// GET /gigs/getBookmarkedGigs
func (h *GigController) BookmarkedGigs(c *gin.Context) {
	groups, err := h.svc.BookmarkedGigs(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookmarkedGigs": groups})
}

// GET /gigs/myGigs
func (h *GigController) MyGigs(c *gin.Context) {
	gigs, err := h.svc.MyGigs(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"gigs": gigs})
}

// GET /gigs/userGigs/:id
func (h *GigController) UserGigs(c *gin.Context) {
	gigs, err := h.svc.GigsByOwner(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"gigs": gigs})
}

// POST /gigs/createGig
func (h *GigController) CreateGig(c *gin.Context) {
	gig, err := h.svc.CreateGig(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gig)
}

// PUT /gigs/:id
func (h *GigController) UpdateGig(c *gin.Context) {
	var patch models.GigPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, h.log, utils.Validation("Invalid request body"))
		return
	}

	gig, err := h.svc.UpdateGig(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gig)
}

// DELETE /gigs/:id
func (h *GigController) DeleteGig(c *gin.Context) {
	if err := h.svc.DeleteGig(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gig deleted successfully"})
}

// POST /gigs/bookmarkGig/:gigId
func (h *GigController) BookmarkGig(c *gin.Context) {
	gigID := c.Param("gigId")

	bookmarked, err := h.svc.ToggleBookmark(c.Request.Context(), middleware.UserID(c), gigID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	message := "Gig Removed"
	if bookmarked {
		message = "Gig Added"
	}

	c.JSON(http.StatusOK, gin.H{"message": message, "id": gigID, "bookmarked": bookmarked})
}

// PUT /gigs/make-gig-live/:id
func (h *GigController) MakeGigLive(c *gin.Context) {
	gig, err := h.svc.PublishGig(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gig)
}

// PUT /gigs/make-gig-draft/:id
func (h *GigController) MakeGigDraft(c *gin.Context) {
	gig, err := h.svc.UnpublishGig(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gig)
}

// PUT /gigs/deleteImageFromPortfolioMedia/:gigId
func (h *GigController) DeleteImageFromPortfolioMedia(c *gin.Context) {
	var req removeMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, utils.Validation("imageUrl is required"))
		return
	}

	gig, err := h.svc.RemovePortfolioMedia(c.Request.Context(), c.Param("gigId"), req.ImageURL)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gig)
}

// POST /gigs/:gigId/portfolioMedia
func (h *GigController) UploadPortfolioMedia(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		respondError(c, h.log, utils.Validation("Image file is required"))
		return
	}
	defer file.Close()

	gig, err := h.svc.AddPortfolioMedia(c.Request.Context(), c.Param("gigId"), file, header.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gig)
}

// POST /gigs/:gigId/recordInteraction
func (h *GigController) RecordInteraction(c *gin.Context) {
	var req interactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, utils.Validation("Missing required fields"))
		return
	}

	if err := h.svc.RecordInteraction(c.Request.Context(), c.Param("gigId"), middleware.UserID(c), req.Action); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Interaction recorded successfully"})
}
