package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mohitt09/Counselling/authentication"
	"github.com/mohitt09/Counselling/models"
)

// CredentialsController provisions login credentials for doctor and admin
// profiles and performs the login itself. Token issuance is a plain signing
// call; there is no session state behind it.
type CredentialsController struct {
	DB        *gorm.DB
	JWTSecret string
}

func NewCredentialsController(db *gorm.DB, jwtSecret string) *CredentialsController {
	return &CredentialsController{DB: db, JWTSecret: jwtSecret}
}

type credentialsInput struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Type      int    `json:"type" validate:"gt=0"`
	ProfileID string `json:"profileId" validate:"required"`
}

var credentialsLabels = map[string]string{
	"username":  "Username",
	"password":  "Password",
	"type":      "Type",
	"profileId": "Doctor ID",
}

// Create stores a new credential with a hashed password.
func (cc *CredentialsController) Create(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fieldErrs := checkStruct(input, credentialsLabels); len(fieldErrs) > 0 {
		respondError(c, &ValidationError{Errors: fieldErrs})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}

	credentials := models.Credentials{
		Username:  input.Username,
		Password:  string(hashed),
		Type:      input.Type,
		ProfileID: input.ProfileID,
	}

	if err := cc.DB.Create(&credentials).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, credentials)
}

// Login checks the password and, for admin and doctor types, issues a
// token. Other credential types get their profile back without one.
func (cc *CredentialsController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fieldErrs := checkStruct(req, credentialsLabels); len(fieldErrs) > 0 {
		respondError(c, &ValidationError{Errors: fieldErrs})
		return
	}

	var credentials models.Credentials
	if err := cc.DB.Where("username = ?", req.Username).First(&credentials).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, &NotFoundError{Resource: "Credentials"})
			return
		}
		respondError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credentials.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid password"})
		return
	}

	switch credentials.Type {
	case models.CredentialAdmin:
		token, err := authentication.GenerateToken(cc.JWTSecret, credentials.ID, credentials.Type)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "type": credentials.Type, "profileId": credentials.ProfileID})
	case models.CredentialDoctor:
		docToken, err := authentication.GenerateToken(cc.JWTSecret, credentials.ID, credentials.Type)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"docToken": docToken, "type": credentials.Type, "profileId": credentials.ProfileID})
	default:
		c.JSON(http.StatusOK, gin.H{"type": credentials.Type, "profileId": credentials.ProfileID})
	}
}
