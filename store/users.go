package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jdalisay/platebook/model"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// CreateUser registers a new user after checking email and username
// availability. The password is stored as a bcrypt salted hash and never
// appears in any value returned to callers.
func (s *Store) CreateUser(emailAddress, username, password, firstName, lastName, pictureAddress, biography string) (*model.UserView, error) {
	if emailAddress == "" || username == "" || password == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "email, username and password are required")
	}

	// Lowercase for consistency so lookups are case-insensitive.
	emailAddress = strings.ToLower(emailAddress)
	username = strings.ToLower(username)

	var count int64
	if err := s.db.Model(&model.User{}).
		Where("email_address = ? OR username = ?", emailAddress, username).
		Count(&count).Error; err != nil {
		return nil, storageErr(err, "check user uniqueness")
	}
	if count > 0 {
		return nil, errors.Wrap(ErrConflict, "email or username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "hash password: %v", err)
	}

	user := model.User{
		Id:             uuid.New().String(),
		CreatedAt:      time.Now(),
		EmailAddress:   emailAddress,
		Username:       username,
		FirstName:      firstName,
		LastName:       lastName,
		PasswordHash:   string(hash),
		PictureAddress: pictureAddress,
		Biography:      biography,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, storageErr(err, "create user")
	}

	var view model.UserView
	copier.Copy(&view, &user)
	return &view, nil
}

// Authenticate verifies the user's credentials and returns the user view on
// success. The stored hash never leaves the store.
func (s *Store) Authenticate(emailAddress, password string) (*model.UserView, error) {
	var users []model.User
	if err := s.db.
		Where("email_address = ?", strings.ToLower(emailAddress)).
		Limit(1).
		Find(&users).Error; err != nil {
		return nil, storageErr(err, "lookup user")
	}
	if len(users) == 0 {
		return nil, errors.Wrapf(ErrNotFound, "user %s", emailAddress)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte(password)); err != nil {
		return nil, errors.Wrap(ErrInvalidArgument, "incorrect password")
	}

	var view model.UserView
	copier.Copy(&view, &users[0])
	return &view, nil
}

// GetUser returns the user's profile view or ErrNotFound.
func (s *Store) GetUser(userID string) (*model.UserView, error) {
	var users []model.User
	if err := s.db.
		Where("id = ?", userID).
		Limit(1).
		Find(&users).Error; err != nil {
		return nil, storageErr(err, "lookup user")
	}
	if len(users) == 0 {
		return nil, errors.Wrapf(ErrNotFound, "user %s", userID)
	}

	var view model.UserView
	copier.Copy(&view, &users[0])
	return &view, nil
}

// UpdateProfile rewrites the user's self-service profile fields. The
// username must stay unique across other users.
func (s *Store) UpdateProfile(userID, firstName, lastName, username, biography, pictureAddress string) error {
	if username == "" {
		return errors.Wrap(ErrInvalidArgument, "username is required")
	}
	username = strings.ToLower(username)

	var count int64
	if err := s.db.Model(&model.User{}).
		Where("username = ? AND id != ?", username, userID).
		Count(&count).Error; err != nil {
		return storageErr(err, "check username")
	}
	if count > 0 {
		return errors.Wrapf(ErrConflict, "username %q is taken", username)
	}

	res := s.db.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"first_name":      firstName,
			"last_name":       lastName,
			"username":        username,
			"biography":       biography,
			"picture_address": pictureAddress,
		})
	if res.Error != nil {
		return storageErr(res.Error, "update user")
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "user %s", userID)
	}
	return nil
}

// VerifyUsername reports whether the username is still available.
func (s *Store) VerifyUsername(username string) (bool, error) {
	var count int64
	if err := s.db.Model(&model.User{}).
		Where("username = ?", strings.ToLower(username)).
		Count(&count).Error; err != nil {
		return false, storageErr(err, "check username")
	}
	return count == 0, nil
}

// VerifyEmail reports whether the email address is still available.
func (s *Store) VerifyEmail(emailAddress string) (bool, error) {
	var count int64
	if err := s.db.Model(&model.User{}).
		Where("email_address = ?", strings.ToLower(emailAddress)).
		Count(&count).Error; err != nil {
		return false, storageErr(err, "check email")
	}
	return count == 0, nil
}
