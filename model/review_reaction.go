package model

import "time"

// Reaction is a user's like/dislike stance on a review.
type Reaction string

const (
	ReactionNeutral  Reaction = "neutral"
	ReactionLiked    Reaction = "liked"
	ReactionDisliked Reaction = "disliked"
)

/*

ReviewReaction is the like/dislike relation between a user and a review.

ReviewID: review id
UserID: user id
Kind: ReactionLiked or ReactionDisliked
CreatedAt: time when relation is created

The composite primary key allows at most one row per (review, user) pair, so
a user can never be present in both the like set and the dislike set. A
transition between the two states is a single upsert of Kind.

*/

type ReviewReaction struct {
	ReviewID  string   `gorm:"primaryKey"`
	UserID    string   `gorm:"primaryKey"`
	Kind      Reaction `gorm:"type:text"`
	CreatedAt time.Time
}
