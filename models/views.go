package models

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OwnerSummary is the owner as embedded in gig responses.
// OwnerContact is set only for single-gig retrieval.
type OwnerSummary struct {
	ID         primitive.ObjectID `json:"_id"`
	Name       string             `json:"name"`
	Skills     []string           `json:"skills"`
	ProfilePic string             `json:"profilePic"`
	*OwnerContact
}

type OwnerContact struct {
	Location    string   `json:"location"`
	Languages   []string `json:"languages"`
	PhoneNumber string   `json:"phoneNumber"`
}

// NewOwnerSummary projects u. withContact adds location, languages and phone number.
func NewOwnerSummary(u User, withContact bool) *OwnerSummary {
	s := &OwnerSummary{
		ID:         u.ID,
		Name:       u.Name,
		Skills:     orEmpty(u.Skills),
		ProfilePic: u.ProfilePic,
	}
	if withContact {
		s.OwnerContact = &OwnerContact{
			Location:    u.Location,
			Languages:   orEmpty(u.Languages),
			PhoneNumber: u.PhoneNumber,
		}
	}
	return s
}

// orEmpty turns a nil slice into an empty one so it encodes as [] rather than null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// GigView is a gig with its owner expanded. Owner is nil when the user is gone.
type GigView struct {
	ID             primitive.ObjectID   `json:"_id"`
	Owner          *OwnerSummary        `json:"owner"`
	Title          string               `json:"title"`
	Category       string               `json:"category"`
	SubCategory    string               `json:"subCategory"`
	Skills         []string             `json:"skills"`
	Tags           []string             `json:"tags"`
	Description    string               `json:"description"`
	Note           string               `json:"note"`
	Packages       []Package            `json:"packages"`
	FAQs           []FAQ                `json:"faqs"`
	PortfolioMedia []Media              `json:"portfolioMedia"`
	Status         string               `json:"status"`
	Interactions   []Interaction        `json:"interactions"`
	Orders         []primitive.ObjectID `json:"orders"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
	LastUpdated    time.Time            `json:"lastUpdated"`
}

func NewGigView(g Gig, owner *OwnerSummary) GigView {
	return GigView{
		ID:             g.ID,
		Owner:          owner,
		Title:          g.Title,
		Category:       g.Category,
		SubCategory:    g.SubCategory,
		Skills:         orEmpty(g.Skills),
		Tags:           orEmpty(g.Tags),
		Description:    g.Description,
		Note:           g.Note,
		Packages:       orEmpty(g.Packages),
		FAQs:           orEmpty(g.FAQs),
		PortfolioMedia: orEmpty(g.PortfolioMedia),
		Status:         g.Status,
		Interactions:   orEmpty(g.Interactions),
		Orders:         orEmpty(g.Orders),
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
		LastUpdated:    g.LastUpdated,
	}
}

// GigCard is the trimmed gig shown inside category groups.
type GigCard struct {
	ID             primitive.ObjectID `json:"_id"`
	Owner          *OwnerSummary      `json:"owner"`
	Title          string             `json:"title"`
	Packages       []Package          `json:"packages"`
	PortfolioMedia []Media            `json:"portfolioMedia"`
}

type CategoryGroup struct {
	Category string    `json:"category"`
	Gigs     []GigCard `json:"gigs"`
}

type GigPage struct {
	Gigs        []GigView `json:"gigs"`
	CurrentPage int       `json:"currentPage"`
	TotalPages  int64     `json:"totalPages"`
	TotalCount  int64     `json:"totalCount"`
}

// GroupByCategory joins gigs with their owners and groups them by category.
// Groups are ordered by category; gigs keep their input order inside a group.
func GroupByCategory(gigs []Gig, owners map[primitive.ObjectID]User) []CategoryGroup {
	index := make(map[string]int)
	groups := make([]CategoryGroup, 0)

	for _, g := range gigs {
		var owner *OwnerSummary
		if u, ok := owners[g.Owner]; ok {
			owner = NewOwnerSummary(u, false)
		}

		card := GigCard{
			ID:             g.ID,
			Owner:          owner,
			Title:          g.Title,
			Packages:       orEmpty(g.Packages),
			PortfolioMedia: orEmpty(g.PortfolioMedia),
		}

		i, ok := index[g.Category]
		if !ok {
			i = len(groups)
			index[g.Category] = i
			groups = append(groups, CategoryGroup{Category: g.Category, Gigs: []GigCard{}})
		}
		groups[i].Gigs = append(groups[i].Gigs, card)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Category < groups[b].Category
	})

	return groups
}
