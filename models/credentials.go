package models

import "github.com/golang-jwt/jwt/v5"

// Credential types. Type 1 logs in as an admin, type 2 as a doctor;
// ProfileID carries the matching public identifier.
const (
	CredentialAdmin  = 1
	CredentialDoctor = 2
)

type Credentials struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Username  string `json:"username" gorm:"uniqueIndex;not null"`
	Password  string `json:"-" gorm:"not null"`
	Type      int    `json:"type" gorm:"not null"`
	ProfileID string `json:"profileId" gorm:"not null"`
}

type AuthClaims struct {
	ID   uint `json:"id"`
	Type int  `json:"type"`
	jwt.RegisteredClaims
}
