package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jdalisay/platebook/model"
	. "github.com/jdalisay/platebook/utils/log"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// AddReview creates a review against a live restaurant and recomputes the
// restaurant's aggregate rating. Returns the new review's id.
func (s *Store) AddReview(userID, restaurantID, title, content string, rating int, images []string) (string, error) {
	if title == "" || content == "" {
		return "", errors.Wrap(ErrInvalidArgument, "review title and content are required")
	}
	if rating < model.MinReviewRating || rating > model.MaxReviewRating {
		return "", errors.Wrapf(ErrInvalidArgument, "rating %d out of range [%d, %d]",
			rating, model.MinReviewRating, model.MaxReviewRating)
	}
	if err := s.requireLiveRestaurant(restaurantID); err != nil {
		return "", err
	}

	review := model.Review{
		Id:               uuid.New().String(),
		CreatedAt:        time.Now(),
		UserID:           userID,
		RestaurantID:     restaurantID,
		Date:             time.Now().Format("2006-01-02"),
		Title:            title,
		Content:          content,
		Rating:           rating,
		PictureAddresses: model.ImageList(images),
	}
	if err := s.db.Create(&review).Error; err != nil {
		return "", storageErr(err, "create review")
	}

	if err := s.RecomputeRestaurantRating(restaurantID); err != nil {
		return "", err
	}
	return review.Id, nil
}

// EditReview replaces the review's title, content, rating and images, marks
// it edited and recomputes the owning restaurant's rating.
func (s *Store) EditReview(reviewID, title, content string, rating int, images []string) error {
	if title == "" || content == "" {
		return errors.Wrap(ErrInvalidArgument, "review title and content are required")
	}
	if rating < model.MinReviewRating || rating > model.MaxReviewRating {
		return errors.Wrapf(ErrInvalidArgument, "rating %d out of range [%d, %d]",
			rating, model.MinReviewRating, model.MaxReviewRating)
	}

	var reviews []model.Review
	if err := s.db.
		Where("id = ? AND delete_status = ?", reviewID, false).
		Limit(1).
		Find(&reviews).Error; err != nil {
		return storageErr(err, "lookup review")
	}
	if len(reviews) == 0 {
		return errors.Wrapf(ErrNotFound, "review %s", reviewID)
	}

	updates := map[string]interface{}{
		"title":             title,
		"content":           content,
		"rating":            rating,
		"picture_addresses": model.ImageList(images),
		"edit_status":       true,
	}
	if err := s.db.Model(&model.Review{}).
		Where("id = ?", reviewID).
		Updates(updates).Error; err != nil {
		return storageErr(err, "update review")
	}

	return s.RecomputeRestaurantRating(reviews[0].RestaurantID)
}

// DeleteReview hard-deletes the review and every comment referencing it,
// then recomputes the owning restaurant's rating. Unlike archival this is a
// physical removal; the review id stops resolving afterwards.
func (s *Store) DeleteReview(reviewID string) error {
	// Resolve regardless of the soft-delete flag: deletion of an archived
	// review is still a valid cleanup.
	var reviews []model.Review
	if err := s.db.
		Where("id = ?", reviewID).
		Limit(1).
		Find(&reviews).Error; err != nil {
		return storageErr(err, "lookup review")
	}
	if len(reviews) == 0 {
		return errors.Wrapf(ErrNotFound, "review %s", reviewID)
	}
	restaurantID := reviews[0].RestaurantID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", reviewID).
			Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("review_id = ?", reviewID).
			Delete(&model.ReviewReaction{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", reviewID).
			Delete(&model.Review{}).Error
	})
	if err != nil {
		return storageErr(err, "delete review")
	}

	Log.Info("deleted review ", reviewID, " and its comments")
	return s.RecomputeRestaurantRating(restaurantID)
}

// GetReview returns a single live review with its annotations, for the
// individual review page. Missing or soft-deleted reviews yield ErrNotFound.
func (s *Store) GetReview(reviewID string) (*model.ReviewView, error) {
	var reviews []model.Review
	if err := s.db.Preload("User").
		Where("id = ? AND delete_status = ?", reviewID, false).
		Limit(1).
		Find(&reviews).Error; err != nil {
		return nil, storageErr(err, "lookup review")
	}
	if len(reviews) == 0 {
		return nil, errors.Wrapf(ErrNotFound, "review %s", reviewID)
	}

	views, err := s.annotateReviews(reviews)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}
