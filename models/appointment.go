package models

import "encoding/json"

// ApprovalStatus is the single source of truth for an appointment's place in
// the approval workflow. Clients still read a nullable isApproved plus an
// isRescheduled flag; both are derived from this enum at marshal time so
// they can never drift apart.
type ApprovalStatus string

const (
	StatusPending     ApprovalStatus = "pending"
	StatusApproved    ApprovalStatus = "approved"
	StatusRejected    ApprovalStatus = "rejected"
	StatusRescheduled ApprovalStatus = "rescheduled"
)

// Valid reports whether s is one of the four workflow states.
func (s ApprovalStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusRescheduled:
		return true
	}
	return false
}

type Appointment struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"not null"`
	Email         string         `json:"email" gorm:"not null"`
	Gender        string         `json:"gender" gorm:"not null"`
	DoctorID      string         `json:"doctorId" gorm:"not null;index"`
	Date          string         `json:"date" gorm:"not null"`
	Time          string         `json:"time" gorm:"not null"`
	PhoneNo       string         `json:"phoneNo" gorm:"not null"`
	Message       string         `json:"message"`
	Department    string         `json:"department" gorm:"not null"`
	IsActive      bool           `json:"isActive" gorm:"default:true"`
	Status        ApprovalStatus `json:"status" gorm:"type:varchar(16);default:'pending'"`
	StatusMessage string         `json:"statusMessage" gorm:"default:'Pending'"`
}

// MarshalJSON keeps the wire shape clients already consume: alongside the
// status string it exposes isApproved (true/false/null) and isRescheduled,
// both derived from Status.
func (a Appointment) MarshalJSON() ([]byte, error) {
	type alias Appointment
	var approved *bool
	switch a.Status {
	case StatusApproved:
		v := true
		approved = &v
	case StatusRejected, StatusRescheduled:
		v := false
		approved = &v
	}
	return json.Marshal(struct {
		alias
		IsApproved    *bool `json:"isApproved"`
		IsRescheduled bool  `json:"isRescheduled"`
	}{
		alias:         alias(a),
		IsApproved:    approved,
		IsRescheduled: a.Status == StatusRescheduled,
	})
}
