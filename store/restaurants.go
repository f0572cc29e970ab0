package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jdalisay/platebook/model"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

// AddRestaurant creates a restaurant owned by the given user. The aggregate
// rating starts at 0 and is only ever written by rating recomputation.
// Returns the new restaurant's id.
func (s *Store) AddRestaurant(userID, name, cuisineType, address, phoneNumber string, pricingFrom, pricingTo float64, pictureAddress string) (string, error) {
	if name == "" {
		return "", errors.Wrap(ErrInvalidArgument, "restaurant name is required")
	}
	if pricingFrom > pricingTo {
		return "", errors.Wrapf(ErrInvalidArgument, "price range %v > %v", pricingFrom, pricingTo)
	}

	available, err := s.VerifyRestaurantName(name)
	if err != nil {
		return "", err
	}
	if !available {
		return "", errors.Wrapf(ErrConflict, "restaurant name %q is taken", name)
	}

	restaurant := model.Restaurant{
		Id:             uuid.New().String(),
		CreatedAt:      time.Now(),
		Name:           name,
		Type:           cuisineType,
		Address:        address,
		PhoneNumber:    phoneNumber,
		PricingFrom:    pricingFrom,
		PricingTo:      pricingTo,
		PictureAddress: pictureAddress,
		Rating:         0,
		UserID:         userID,
	}
	if err := s.db.Create(&restaurant).Error; err != nil {
		return "", storageErr(err, "create restaurant")
	}

	s.invalidateTopRestaurants()
	return restaurant.Id, nil
}

// UpdateRestaurant rewrites the restaurant's caller-settable fields. The
// aggregate rating and the delete flag are not touched here.
func (s *Store) UpdateRestaurant(restaurantID, name, cuisineType, address, phoneNumber string, pricingFrom, pricingTo float64, pictureAddress string) error {
	if name == "" {
		return errors.Wrap(ErrInvalidArgument, "restaurant name is required")
	}
	if pricingFrom > pricingTo {
		return errors.Wrapf(ErrInvalidArgument, "price range %v > %v", pricingFrom, pricingTo)
	}

	// Name must stay unique across all restaurants other than this one.
	var count int64
	if err := s.db.Model(&model.Restaurant{}).
		Where("name = ? AND id != ?", name, restaurantID).
		Count(&count).Error; err != nil {
		return storageErr(err, "check restaurant name")
	}
	if count > 0 {
		return errors.Wrapf(ErrConflict, "restaurant name %q is taken", name)
	}

	res := s.db.Model(&model.Restaurant{}).
		Where("id = ? AND delete_status = ?", restaurantID, false).
		Updates(map[string]interface{}{
			"name":            name,
			"type":            cuisineType,
			"address":         address,
			"phone_number":    phoneNumber,
			"pricing_from":    pricingFrom,
			"pricing_to":      pricingTo,
			"picture_address": pictureAddress,
		})
	if res.Error != nil {
		return storageErr(res.Error, "update restaurant")
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "restaurant %s", restaurantID)
	}

	s.invalidateTopRestaurants()
	return nil
}

// GetRestaurant returns a live restaurant view or ErrNotFound.
func (s *Store) GetRestaurant(restaurantID string) (*model.RestaurantView, error) {
	var restaurants []model.Restaurant
	if err := s.db.
		Where("id = ? AND delete_status = ?", restaurantID, false).
		Limit(1).
		Find(&restaurants).Error; err != nil {
		return nil, storageErr(err, "lookup restaurant")
	}
	if len(restaurants) == 0 {
		return nil, errors.Wrapf(ErrNotFound, "restaurant %s", restaurantID)
	}

	var view model.RestaurantView
	copier.Copy(&view, &restaurants[0])
	return &view, nil
}

// VerifyRestaurantName reports whether the name is still available. Archived
// restaurants keep their name reserved.
func (s *Store) VerifyRestaurantName(name string) (bool, error) {
	var count int64
	if err := s.db.Model(&model.Restaurant{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, storageErr(err, "check restaurant name")
	}
	return count == 0, nil
}
