package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the part of the identity provider's user document this service reads.
// Session and refresh tokens live in the same document but are never mapped here.
type User struct {
	ID             primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	GoogleID       string               `json:"googleId,omitempty" bson:"googleId,omitempty"`
	Email          string               `json:"email,omitempty" bson:"email,omitempty"`
	Name           string               `json:"name" bson:"name"`
	ProfilePic     string               `json:"profilePic" bson:"profilePic"`
	Bio            string               `json:"bio" bson:"bio"`
	Gender         string               `json:"gender" bson:"gender"`
	PortfolioLink  string               `json:"portfolioLink" bson:"portfolioLink"`
	InstagramLink  string               `json:"instagramLink" bson:"instagramLink"`
	Location       string               `json:"location" bson:"location"`
	Languages      []string             `json:"languages" bson:"languages"`
	Skills         []string             `json:"skills" bson:"skills"`
	PhoneNumber    string               `json:"phoneNumber" bson:"phoneNumber"`
	IsSeller       bool                 `json:"isSeller" bson:"isSeller"`
	BookmarkedGigs []primitive.ObjectID `json:"bookmarkedGigs" bson:"bookmarkedGigs"`
	MyGigs         []primitive.ObjectID `json:"myGigs" bson:"myGigs"`
	Orders         []primitive.ObjectID `json:"orders" bson:"orders"`
}

// HasBookmark reports whether gigID is in the user's bookmark set.
func (u User) HasBookmark(gigID primitive.ObjectID) bool {
	for _, id := range u.BookmarkedGigs {
		if id == gigID {
			return true
		}
	}
	return false
}
