package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jdalisay/platebook/model"
	"github.com/pkg/errors"
)

// AddComment creates a comment under a live review and returns its id.
func (s *Store) AddComment(userID, reviewID, content string) (string, error) {
	if content == "" {
		return "", errors.Wrap(ErrInvalidArgument, "comment content is required")
	}
	if err := s.requireLiveReview(reviewID); err != nil {
		return "", err
	}

	comment := model.Comment{
		Id:        uuid.New().String(),
		CreatedAt: time.Now(),
		UserID:    userID,
		ReviewID:  reviewID,
		Content:   content,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return "", storageErr(err, "create comment")
	}
	return comment.Id, nil
}

// EditComment replaces the comment's content and marks it edited. Soft-
// deleted comments are not editable.
func (s *Store) EditComment(commentID, content string) error {
	if content == "" {
		return errors.Wrap(ErrInvalidArgument, "comment content is required")
	}

	res := s.db.Model(&model.Comment{}).
		Where("id = ? AND delete_status = ?", commentID, false).
		Updates(map[string]interface{}{"content": content, "edit_status": true})
	if res.Error != nil {
		return storageErr(res.Error, "update comment")
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "comment %s", commentID)
	}
	return nil
}

// DeleteComment soft-deletes the comment. Deleting an already-deleted
// comment succeeds and re-affirms the flag.
func (s *Store) DeleteComment(commentID string) error {
	res := s.db.Model(&model.Comment{}).
		Where("id = ?", commentID).
		Update("delete_status", true)
	if res.Error != nil {
		return storageErr(res.Error, "delete comment")
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "comment %s", commentID)
	}
	return nil
}

// GetComment resolves a comment by id regardless of its soft-delete flag,
// for audit and edit-form prefill purposes.
func (s *Store) GetComment(commentID string) (*model.Comment, error) {
	var comments []model.Comment
	if err := s.db.
		Where("id = ?", commentID).
		Limit(1).
		Find(&comments).Error; err != nil {
		return nil, storageErr(err, "lookup comment")
	}
	if len(comments) == 0 {
		return nil, errors.Wrapf(ErrNotFound, "comment %s", commentID)
	}
	return &comments[0], nil
}
