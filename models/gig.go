package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusDraft = "isDraft"
	StatusLive  = "isLive"
)

const (
	PackageBasic   = "Basic"
	PackagePremium = "Premium"
	PackageCustom  = "Custom"
)

// Interaction actions. The value doubles as the counter's bson field name.
const (
	ActionContactViewed   = "contact_viewed"
	ActionPhoneViewed     = "phone_viewed"
	ActionWhatsAppClicked = "whatsapp_clicked"
)

// PackageNames is the fixed order of a gig's packages.
var PackageNames = []string{PackageBasic, PackagePremium, PackageCustom}

type Gig struct {
	ID             primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Owner          primitive.ObjectID   `json:"owner" bson:"owner"`
	Title          string               `json:"title" bson:"title"`
	Category       string               `json:"category" bson:"category"`
	SubCategory    string               `json:"subCategory" bson:"subCategory"`
	Skills         []string             `json:"skills" bson:"skills"`
	Tags           []string             `json:"tags" bson:"tags"`
	Description    string               `json:"description" bson:"description"`
	Note           string               `json:"note" bson:"note"`
	Packages       []Package            `json:"packages" bson:"packages"`
	FAQs           []FAQ                `json:"faqs" bson:"faqs"`
	PortfolioMedia []Media              `json:"portfolioMedia" bson:"portfolioMedia"`
	Status         string               `json:"status" bson:"status"`
	Interactions   []Interaction        `json:"interactions" bson:"interactions"`
	Orders         []primitive.ObjectID `json:"orders" bson:"orders"`
	CreatedAt      time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt" bson:"updatedAt"`
	LastUpdated    time.Time            `json:"lastUpdated" bson:"lastUpdated"`
}

// Package is one pricing tier. Price is free text as entered by the seller.
type Package struct {
	Name        string `json:"name" bson:"name"`
	Title       string `json:"title" bson:"title"`
	Per         string `json:"per" bson:"per"`
	Price       string `json:"price" bson:"price"`
	Description string `json:"description" bson:"description"`
}

type FAQ struct {
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
}

type Media struct {
	UID string `json:"uid" bson:"uid"`
	Src string `json:"src" bson:"src"`
}

// Interaction counts one user's contact clicks on a gig.
type Interaction struct {
	UserID          primitive.ObjectID `json:"userId" bson:"userId"`
	ContactViewed   int                `json:"contact_viewed" bson:"contact_viewed"`
	PhoneViewed     int                `json:"phone_viewed" bson:"phone_viewed"`
	WhatsAppClicked int                `json:"whatsapp_clicked" bson:"whatsapp_clicked"`
	LastInteraction time.Time          `json:"lastInteraction" bson:"lastInteraction"`
}

// GigPatch is a partial update. Nil fields are left untouched.
type GigPatch struct {
	Title          *string    `json:"title"`
	Category       *string    `json:"category"`
	SubCategory    *string    `json:"subCategory"`
	Skills         *[]string  `json:"skills"`
	Tags           *[]string  `json:"tags"`
	Description    *string    `json:"description"`
	Note           *string    `json:"note"`
	Packages       *[]Package `json:"packages"`
	FAQs           *[]FAQ     `json:"faqs"`
	PortfolioMedia *[]Media   `json:"portfolioMedia"`
}

// Empty reports whether the patch carries no field at all.
func (p GigPatch) Empty() bool {
	return p.Title == nil && p.Category == nil && p.SubCategory == nil &&
		p.Skills == nil && p.Tags == nil && p.Description == nil && p.Note == nil &&
		p.Packages == nil && p.FAQs == nil && p.PortfolioMedia == nil
}

// DefaultPackages returns the three blank packages a new gig starts with.
func DefaultPackages() []Package {
	packages := make([]Package, 0, len(PackageNames))
	for _, name := range PackageNames {
		packages = append(packages, Package{Name: name})
	}
	return packages
}

// NewDraftGig builds the skeleton inserted by gig creation.
func NewDraftGig(owner primitive.ObjectID, now time.Time) Gig {
	return Gig{
		Owner:          owner,
		Title:          "Draft",
		Skills:         []string{},
		Tags:           []string{},
		Packages:       DefaultPackages(),
		FAQs:           []FAQ{},
		PortfolioMedia: []Media{},
		Status:         StatusDraft,
		Interactions:   []Interaction{},
		Orders:         []primitive.ObjectID{},
		CreatedAt:      now,
		UpdatedAt:      now,
		LastUpdated:    now,
	}
}

// ValidAction reports whether action is a known interaction counter.
func ValidAction(action string) bool {
	switch action {
	case ActionContactViewed, ActionPhoneViewed, ActionWhatsAppClicked:
		return true
	}
	return false
}

// Increment bumps the counter named by action.
func (i *Interaction) Increment(action string) {
	switch action {
	case ActionContactViewed:
		i.ContactViewed++
	case ActionPhoneViewed:
		i.PhoneViewed++
	case ActionWhatsAppClicked:
		i.WhatsAppClicked++
	}
}
