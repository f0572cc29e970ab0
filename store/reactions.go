package store

import (
	"time"

	"github.com/jdalisay/platebook/model"
	"gorm.io/gorm/clause"
)

// The reaction engine is a per-(review, user) state machine with states
// neutral, liked and disliked. Each transition is a single statement against
// the review_reactions table, whose composite primary key admits at most one
// row per pair. The backing store serializes writes to that row, so a user
// can never appear in both sets, even under concurrent requests.

// Like records that the user likes the review. A previous dislike is
// replaced; re-liking is a no-op.
func (s *Store) Like(reviewID, userID string) error {
	return s.setReaction(reviewID, userID, model.ReactionLiked)
}

// Dislike records that the user dislikes the review. A previous like is
// replaced; re-disliking is a no-op.
func (s *Store) Dislike(reviewID, userID string) error {
	return s.setReaction(reviewID, userID, model.ReactionDisliked)
}

func (s *Store) setReaction(reviewID, userID string, kind model.Reaction) error {
	if err := s.requireLiveReview(reviewID); err != nil {
		return err
	}
	reaction := model.ReviewReaction{
		ReviewID:  reviewID,
		UserID:    userID,
		Kind:      kind,
		CreatedAt: time.Now(),
	}
	res := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "review_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"kind"}),
	}).Create(&reaction)
	if res.Error != nil {
		return storageErr(res.Error, "upsert reaction")
	}
	return nil
}

// ClearReaction removes the user's reaction to the review, whatever it is.
func (s *Store) ClearReaction(reviewID, userID string) error {
	if err := s.requireLiveReview(reviewID); err != nil {
		return err
	}
	res := s.db.
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		Delete(&model.ReviewReaction{})
	if res.Error != nil {
		return storageErr(res.Error, "delete reaction")
	}
	return nil
}

// GetReaction classifies the user's current stance on the review. Unknown
// pairs are neutral.
func (s *Store) GetReaction(reviewID, userID string) (model.Reaction, error) {
	var reactions []model.ReviewReaction
	if err := s.db.
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		Limit(1).
		Find(&reactions).Error; err != nil {
		return model.ReactionNeutral, storageErr(err, "lookup reaction")
	}
	if len(reactions) == 0 {
		return model.ReactionNeutral, nil
	}
	return reactions[0].Kind, nil
}
