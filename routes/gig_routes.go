package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tiresomefanatic/FindPRO-Backend/controllers"
)

func SetupGigRoutes(r *gin.Engine, gigs *controllers.GigController, auth gin.HandlerFunc, mediaEnabled bool) {
	g := r.Group("/gigs")

	// public
	g.GET("", gigs.ListGigs)
	g.GET("/gigs-by-category", gigs.GigsByCategory)
	g.GET("/getGigById/:id", gigs.GetGigByID)
	g.GET("/userGigs/:id", gigs.UserGigs)

	// authenticated
	g.GET("/getBookmarkedGigs", auth, gigs.BookmarkedGigs)
	g.GET("/myGigs", auth, gigs.MyGigs)

	g.POST("/createGig", auth, gigs.CreateGig)
	g.POST("/bookmarkGig/:gigId", auth, gigs.BookmarkGig)
	g.POST("/:gigId/recordInteraction", auth, gigs.RecordInteraction)
	if mediaEnabled {
		g.POST("/:gigId/portfolioMedia", auth, gigs.UploadPortfolioMedia)
	}

	g.PUT("/:id", auth, gigs.UpdateGig)
	g.PUT("/make-gig-live/:id", auth, gigs.MakeGigLive)
	g.PUT("/make-gig-draft/:id", auth, gigs.MakeGigDraft)
	g.PUT("/deleteImageFromPortfolioMedia/:gigId", auth, gigs.DeleteImageFromPortfolioMedia)

	g.DELETE("/:id", auth, gigs.DeleteGig)
}

func SetupOrderRoutes(r *gin.Engine) {
	r.POST("/order/create-new-order", controllers.CreateOrder)
}
