package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	PaymentPending = "pending"
	PaymentSuccess = "success"
	PaymentFailed  = "failed"
)

// Payment records one gateway transaction attempt. PaymentResponse keeps the
// raw gateway payload for audit, it is never interpreted by the backend.
type Payment struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	Name            string         `json:"name" gorm:"not null"`
	Email           string         `json:"email" gorm:"not null"`
	PhoneNo         string         `json:"phoneNo" gorm:"not null"`
	Date            time.Time      `json:"date" gorm:"not null"`
	Time            string         `json:"time" gorm:"not null"`
	Department      string         `json:"department" gorm:"not null"`
	Amount          float64        `json:"amount" gorm:"not null"`
	Currency        string         `json:"currency" gorm:"not null"`
	ReceiptID       string         `json:"receiptId" gorm:"not null"`
	PaymentStatus   string         `json:"paymentStatus" gorm:"type:varchar(16);default:'pending'"`
	PaymentResponse datatypes.JSON `json:"paymentResponse"`
	CreatedAt       time.Time      `json:"createdAt"`
}
