package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mohitt09/Counselling/models"
)

// ContactController stores contact-form submissions.
type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

type contactInput struct {
	Name    string `json:"name" validate:"required,namechars"`
	Email   string `json:"email" validate:"required,email"`
	Number  string `json:"number" validate:"required,phoneno"`
	Subject string `json:"subject" validate:"required,max=50"`
	Message string `json:"message" validate:"required,max=100"`
}

var contactLabels = map[string]string{
	"name":    "Name",
	"email":   "Email",
	"number":  "Number",
	"subject": "Subject",
	"message": "Message",
}

// Create validates the whole form, including email and phone uniqueness,
// before storing it.
func (cc *ContactController) Create(c *gin.Context) {
	var input contactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fieldErrs := checkStruct(input, contactLabels)

	if input.Email != "" {
		var existing models.Contact
		if err := cc.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			fieldErrs = append(fieldErrs, FieldError{Field: "email", Message: "Email address is already registered"})
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, err)
			return
		}
	}
	if input.Number != "" {
		var existing models.Contact
		if err := cc.DB.Where("number = ?", input.Number).First(&existing).Error; err == nil {
			fieldErrs = append(fieldErrs, FieldError{Field: "number", Message: "Phone number is already registered"})
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, err)
			return
		}
	}

	if len(fieldErrs) > 0 {
		respondError(c, &ValidationError{Errors: fieldErrs})
		return
	}

	contact := models.Contact{
		Name:     input.Name,
		Email:    input.Email,
		Number:   input.Number,
		Subject:  input.Subject,
		Message:  input.Message,
		DateTime: time.Now(),
	}

	if err := cc.DB.Create(&contact).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// List returns every submission.
func (cc *ContactController) List(c *gin.Context) {
	contacts := make([]models.Contact, 0)
	if err := cc.DB.Find(&contacts).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}
