package models

import "time"

type Contact struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Name     string    `json:"name" gorm:"not null"`
	Email    string    `json:"email" gorm:"uniqueIndex;not null"`
	Number   string    `json:"number" gorm:"uniqueIndex;not null"`
	Subject  string    `json:"subject" gorm:"not null"`
	Message  string    `json:"message" gorm:"not null"`
	DateTime time.Time `json:"dateTime"`
}
