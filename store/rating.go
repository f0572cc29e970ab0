package store

import (
	"github.com/jdalisay/platebook/model"
	"github.com/jdalisay/platebook/utils"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// RecomputeRestaurantRating rewrites the restaurant's aggregate rating as
// the mean of its non-deleted reviews' ratings, rounded to
// utils.RatingDecimals decimal places, or 0 when no such review exists.
//
// Called as the final step of review creation, review edit, review deletion
// and restaurant archival, never on reads, so the stored rating is a
// materialized value that is fresh after every write. A recomputation racing
// a concurrent review edit may be superseded by that edit's own
// recomputation, which is acceptable.
func (s *Store) RecomputeRestaurantRating(restaurantID string) error {
	var ratings []float64
	if err := s.db.Model(&model.Review{}).
		Where("restaurant_id = ? AND delete_status = ?", restaurantID, false).
		Pluck("rating", &ratings).Error; err != nil {
		return storageErr(err, "collect review ratings")
	}

	rating := 0.0
	if len(ratings) > 0 {
		rating = utils.RoundRating(stat.Mean(ratings, nil))
	}

	res := s.db.Model(&model.Restaurant{}).
		Where("id = ?", restaurantID).
		Update("rating", rating)
	if res.Error != nil {
		return storageErr(res.Error, "write restaurant rating")
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "restaurant %s", restaurantID)
	}

	s.invalidateTopRestaurants()
	return nil
}
