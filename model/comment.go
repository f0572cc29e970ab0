package model

import "time"

type Comment struct {
	Id           string `gorm:"primaryKey"`
	CreatedAt    time.Time
	UserID       string
	User         User
	ReviewID     string
	Content      string
	EditStatus   bool `gorm:"default:false"`
	DeleteStatus bool `gorm:"default:false"`
}
