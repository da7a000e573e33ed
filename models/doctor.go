package models

import (
	"time"

	"gorm.io/datatypes"
)

// TimeSlot is one bookable window in a doctor's day.
type TimeSlot struct {
	ID          uint   `json:"-" gorm:"primaryKey"`
	DoctorRef   uint   `json:"-" gorm:"index"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// Doctor is looked up by clients through DoctorID, a generated public
// identifier, never through the numeric storage key.
type Doctor struct {
	ID            uint           `json:"-" gorm:"primaryKey"`
	DoctorID      string         `json:"doctorId" gorm:"uniqueIndex;not null"`
	Name          string         `json:"name" gorm:"uniqueIndex;not null"`
	Education     string         `json:"education"`
	Department    string         `json:"department"`
	About         string         `json:"about"`
	Experience    string         `json:"experience"`
	Fees          float64        `json:"fees"`
	Image         string         `json:"image"`
	YoutubeLink   string         `json:"youtubeLink"`
	InstagramLink string         `json:"instagramLink"`
	FacebookLink  string         `json:"facebookLink"`
	IsActive      bool           `json:"isActive" gorm:"default:true"`
	Speciality    string         `json:"speciality"`
	TimeSlots     []TimeSlot     `json:"timeSlots" gorm:"foreignKey:DoctorRef"`
	WorkingDays   datatypes.JSON `json:"workingDays"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}
