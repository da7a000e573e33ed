package models

import "time"

type Blog struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"uniqueIndex;not null"`
	Detail     string    `json:"detail" gorm:"not null"`
	Image      string    `json:"image" gorm:"not null"`
	Date       time.Time `json:"date"`
	IsActive   bool      `json:"isActive" gorm:"default:true"`
	AuthorName string    `json:"authorName" gorm:"not null"`
	Time       string    `json:"time" gorm:"not null"`
	LikeCount  int       `json:"likeCount" gorm:"default:0"`
	ViewCount  int       `json:"viewCount" gorm:"default:0"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
