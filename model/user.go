package model

import "time"

type User struct {
	Id             string `gorm:"primaryKey"`
	CreatedAt      time.Time
	EmailAddress   string `gorm:"uniqueIndex"`
	Username       string `gorm:"uniqueIndex"`
	FirstName      string
	LastName       string
	// PasswordHash is a bcrypt salted hash. It is never copied into views
	// returned to callers.
	PasswordHash   string
	PictureAddress string
	Biography      string
}
