package store

import (
	"github.com/jdalisay/platebook/model"
	"github.com/jdalisay/platebook/utils"
	"github.com/pkg/errors"
)

// Ownership predicates gate every mutation on a restaurant, review or
// comment. They are advisory reads: the calling layer is responsible for
// turning a false answer into an access-denied response, so the predicates
// stay usable outside HTTP contexts.

// IsProfileOwner reports whether the acting principal is the owner of the
// given profile. A profile is identified by its user id, so this is a pure
// id comparison with no lookup.
func (s *Store) IsProfileOwner(principalID, profileUserID string) bool {
	return utils.SameID(principalID, profileUserID)
}

// IsRestaurantOwner reports whether the acting principal owns the
// restaurant. Returns ErrNotFound when the restaurant is missing or
// archived.
func (s *Store) IsRestaurantOwner(principalID, restaurantID string) (bool, error) {
	owner, err := s.ownerOf(&model.Restaurant{}, restaurantID)
	if err != nil {
		return false, err
	}
	return utils.SameID(principalID, owner), nil
}

// IsReviewOwner reports whether the acting principal authored the review.
// Returns ErrNotFound when the review is missing or soft-deleted.
func (s *Store) IsReviewOwner(principalID, reviewID string) (bool, error) {
	owner, err := s.ownerOf(&model.Review{}, reviewID)
	if err != nil {
		return false, err
	}
	return utils.SameID(principalID, owner), nil
}

// IsCommentOwner reports whether the acting principal authored the comment.
// Returns ErrNotFound when the comment is missing or soft-deleted.
func (s *Store) IsCommentOwner(principalID, commentID string) (bool, error) {
	owner, err := s.ownerOf(&model.Comment{}, commentID)
	if err != nil {
		return false, err
	}
	return utils.SameID(principalID, owner), nil
}

// ownerOf projects the owning user id of a live entity record.
func (s *Store) ownerOf(entity interface{}, id string) (string, error) {
	var owners []string
	if err := s.db.Model(entity).
		Where("id = ? AND delete_status = ?", id, false).
		Limit(1).
		Pluck("user_id", &owners).Error; err != nil {
		return "", storageErr(err, "lookup owner")
	}
	if len(owners) == 0 {
		return "", errors.Wrapf(ErrNotFound, "no live record with id %s", id)
	}
	return owners[0], nil
}
