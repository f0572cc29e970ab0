package model

import "time"

/*

Restaurant is an eatery listed on the platform, created and managed by its
owning user.

Id: primary key
UserID: the owning user, "belongs-to" relation
Rating: aggregate rating derived from the restaurant's non-deleted reviews.
		Written only by rating recomputation, never settable by callers.
PricingFrom/PricingTo: price range, PricingFrom <= PricingTo
DeleteStatus: soft-delete flag ("archived"). Archived restaurants stay
		addressable by id for cascades but are invisible to listings.

*/

type Restaurant struct {
	Id             string `gorm:"primaryKey"`
	CreatedAt      time.Time
	Name           string `gorm:"uniqueIndex"`
	Type           string
	Address        string
	PhoneNumber    string
	PricingFrom    float64
	PricingTo      float64
	PictureAddress string
	Rating         float64 `gorm:"default:0"`
	UserID         string
	User           User
	DeleteStatus   bool `gorm:"default:false"`
}
