package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mohitt09/Counselling/authentication"
	"github.com/mohitt09/Counselling/models"
)

// AdminController manages administrator accounts.
type AdminController struct {
	DB        *gorm.DB
	JWTSecret string
}

func NewAdminController(db *gorm.DB, jwtSecret string) *AdminController {
	return &AdminController{DB: db, JWTSecret: jwtSecret}
}

type adminInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Type     int    `json:"type" validate:"gt=0"`
}

var adminLabels = map[string]string{
	"username": "Username",
	"password": "Password",
	"type":     "Type",
}

// List returns every admin.
func (ac *AdminController) List(c *gin.Context) {
	admins := make([]models.Admin, 0)
	if err := ac.DB.Find(&admins).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admins)
}

// Login verifies the password and issues a short-lived token.
func (ac *AdminController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fieldErrs := checkStruct(req, adminLabels); len(fieldErrs) > 0 {
		respondError(c, &ValidationError{Errors: fieldErrs})
		return
	}

	var admin models.Admin
	if err := ac.DB.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, &NotFoundError{Resource: "Admin"})
			return
		}
		respondError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid password"})
		return
	}

	token, err := authentication.GenerateToken(ac.JWTSecret, admin.ID, models.CredentialAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "username": admin.Username})
}

// Create adds a new admin with a generated public identifier.
func (ac *AdminController) Create(c *gin.Context) {
	var input adminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fieldErrs := checkStruct(input, adminLabels); len(fieldErrs) > 0 {
		respondError(c, &ValidationError{Errors: fieldErrs})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}

	admin := models.Admin{
		AdminID:  uuid.NewString(),
		Username: input.Username,
		Password: string(hashed),
		Type:     input.Type,
		IsActive: true,
	}

	if err := ac.DB.Create(&admin).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, admin)
}

// Delete removes an admin outright by public identifier.
func (ac *AdminController) Delete(c *gin.Context) {
	result := ac.DB.Where("admin_id = ?", c.Param("adminId")).Delete(&models.Admin{})
	if result.Error != nil {
		respondError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, &NotFoundError{Resource: "Admin"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted successfully"})
}

// ToggleActive flips the admin's visibility flag.
func (ac *AdminController) ToggleActive(c *gin.Context) {
	var admin models.Admin
	if err := ac.DB.Where("admin_id = ?", c.Param("adminId")).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, &NotFoundError{Resource: "Admin"})
			return
		}
		respondError(c, err)
		return
	}

	admin.IsActive = !admin.IsActive
	if err := ac.DB.Model(&admin).Update("is_active", admin.IsActive).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin's active status toggled successfully"})
}
