package store

import (
	"github.com/jdalisay/platebook/model"
	. "github.com/jdalisay/platebook/utils/log"
	"github.com/pkg/errors"
)

// ArchiveRestaurant soft-deletes the restaurant, all of its reviews and,
// transitively, all comments under those reviews. Archived records stay
// addressable by id.
//
// Every step is an idempotent flag write, so the cascade is resumable: if a
// step fails partway, re-running the operation completes the remainder.
// Archiving an already-archived restaurant succeeds and re-affirms the
// flags.
func (s *Store) ArchiveRestaurant(restaurantID string) error {
	// Resolve without the liveness filter: a partially archived restaurant
	// must still be addressable so the cascade can be re-run.
	var count int64
	if err := s.db.Model(&model.Restaurant{}).
		Where("id = ?", restaurantID).
		Count(&count).Error; err != nil {
		return storageErr(err, "lookup restaurant")
	}
	if count == 0 {
		return errors.Wrapf(ErrNotFound, "restaurant %s", restaurantID)
	}

	if err := s.db.Model(&model.Restaurant{}).
		Where("id = ?", restaurantID).
		Update("delete_status", true).Error; err != nil {
		return storageErr(err, "archive restaurant")
	}

	var reviewIDs []string
	if err := s.db.Model(&model.Review{}).
		Where("restaurant_id = ?", restaurantID).
		Pluck("id", &reviewIDs).Error; err != nil {
		return storageErr(err, "collect restaurant reviews")
	}

	if len(reviewIDs) > 0 {
		if err := s.db.Model(&model.Review{}).
			Where("restaurant_id = ?", restaurantID).
			Update("delete_status", true).Error; err != nil {
			return storageErr(err, "archive reviews")
		}
		if err := s.db.Model(&model.Comment{}).
			Where("review_id IN ?", reviewIDs).
			Update("delete_status", true).Error; err != nil {
			return storageErr(err, "archive comments")
		}
	}

	Log.Info("archived restaurant ", restaurantID, " with ", len(reviewIDs), " reviews")

	// Once per affected restaurant, not once per review.
	return s.RecomputeRestaurantRating(restaurantID)
}
