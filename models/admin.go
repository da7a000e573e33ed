package models

type Admin struct {
	ID       uint   `json:"-" gorm:"primaryKey"`
	AdminID  string `json:"adminId" gorm:"uniqueIndex;not null"`
	Username string `json:"username" gorm:"not null"`
	Password string `json:"-" gorm:"not null"`
	Type     int    `json:"type" gorm:"not null"`
	IsActive bool   `json:"isActive" gorm:"default:true"`
}
