package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Rating bounds for a single review.
const (
	MinReviewRating = 1
	MaxReviewRating = 5
)

/*

Review is a user's writeup of a restaurant.

Id: primary key
UserID: review author, "belongs-to" relation
RestaurantID: reviewed restaurant, "belongs-to" relation
Rating: the author's score, MinReviewRating..MaxReviewRating inclusive
PictureAddresses: JSON array of image references attached to the review
EditStatus: set once the review has been edited
DeleteStatus: soft-delete flag, set when the owning restaurant is archived.
		Soft-deleted reviews are excluded from listings and from rating
		aggregation but stay addressable by id for cascades.

Like/dislike participants live in the review_reactions join table, one row
per (review, user) pair, see ReviewReaction.

*/

type Review struct {
	Id               string `gorm:"primaryKey"`
	CreatedAt        time.Time
	UserID           string
	User             User
	RestaurantID     string
	Restaurant       Restaurant
	Date             string
	Title            string
	Content          string
	Rating           int
	PictureAddresses datatypes.JSON
	EditStatus       bool `gorm:"default:false"`
	DeleteStatus     bool `gorm:"default:false"`
}

// Images decodes the attached image references. Returns nil when the review
// carries no images.
func (r *Review) Images() []string {
	if len(r.PictureAddresses) == 0 {
		return nil
	}
	var images []string
	if err := json.Unmarshal(r.PictureAddresses, &images); err != nil {
		return nil
	}
	return images
}

// ImageList encodes image references for storage in PictureAddresses.
func ImageList(images []string) datatypes.JSON {
	if len(images) == 0 {
		images = []string{}
	}
	encoded, _ := json.Marshal(images)
	return datatypes.JSON(encoded)
}
