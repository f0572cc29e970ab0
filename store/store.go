// Package store is the aggregation and authorization core of the review
// platform: ownership checks, the like/dislike reaction engine, aggregate
// rating recomputation, delete cascades and the denormalized read facade.
// It talks only to the injected database handle (and an optional Redis view
// cache); HTTP routing, sessions and rendering live in the calling layer.
package store

import (
	"github.com/jdalisay/platebook/model"
	"github.com/jdalisay/platebook/utils"
	. "github.com/jdalisay/platebook/utils/log"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB

	// cache is optional. When nil every read goes to the database.
	cache *utils.RedisClient
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// NewWithCache builds a store that serves the top-restaurants ranking from
// Redis when possible.
func NewWithCache(db *gorm.DB, cache *utils.RedisClient) *Store {
	return &Store{db: db, cache: cache}
}

// requireLiveReview returns ErrNotFound unless the review exists and is not
// soft-deleted.
func (s *Store) requireLiveReview(reviewID string) error {
	var count int64
	if err := s.db.Model(&model.Review{}).
		Where("id = ? AND delete_status = ?", reviewID, false).
		Count(&count).Error; err != nil {
		return storageErr(err, "lookup review")
	}
	if count == 0 {
		return errors.Wrapf(ErrNotFound, "review %s", reviewID)
	}
	return nil
}

// requireLiveRestaurant returns ErrNotFound unless the restaurant exists and
// is not archived.
func (s *Store) requireLiveRestaurant(restaurantID string) error {
	var count int64
	if err := s.db.Model(&model.Restaurant{}).
		Where("id = ? AND delete_status = ?", restaurantID, false).
		Count(&count).Error; err != nil {
		return storageErr(err, "lookup restaurant")
	}
	if count == 0 {
		return errors.Wrapf(ErrNotFound, "restaurant %s", restaurantID)
	}
	return nil
}

// invalidateTopRestaurants drops the cached ranking. Cache failures are
// logged and ignored: the cache is advisory, the database stays the source
// of truth.
func (s *Store) invalidateTopRestaurants() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateTopRestaurants(); err != nil {
		Log.Warn("fail to invalidate top restaurants cache: ", err)
	}
}
