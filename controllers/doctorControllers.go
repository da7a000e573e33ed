package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mohitt09/Counselling/models"
)

// DoctorController manages the doctor directory: admin-facing CRUD plus the
// public profile lookups. Doctors are always addressed by their generated
// public identifier.
type DoctorController struct {
	DB        *gorm.DB
	UploadDir string
}

func NewDoctorController(db *gorm.DB, uploadDir string) *DoctorController {
	return &DoctorController{DB: db, UploadDir: uploadDir}
}

type doctorInput struct {
	Name       string `json:"name" validate:"required,namechars"`
	Education  string `json:"education" validate:"required"`
	Department string `json:"department" validate:"required"`
	About      string `json:"about" validate:"required"`
	Experience string `json:"experience" validate:"required"`
	Fees       string `json:"fees" validate:"required"`
	Speciality string `json:"speciality" validate:"required"`
}

var doctorLabels = map[string]string{
	"name":       "Name",
	"education":  "Education",
	"department": "Department",
	"about":      "About",
	"experience": "Experience",
	"fees":       "Fees",
	"speciality": "Speciality",
}

// List returns every doctor with their time slots.
func (dc *DoctorController) List(c *gin.Context) {
	doctors := make([]models.Doctor, 0)
	if err := dc.DB.Preload("TimeSlots").Find(&doctors).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// Create adds a doctor from a multipart form: validated text fields, JSON
// encoded timeSlots/workingDays, and a required image.
func (dc *DoctorController) Create(c *gin.Context) {
	input := doctorInput{
		Name:       c.PostForm("name"),
		Education:  c.PostForm("education"),
		Department: c.PostForm("department"),
		About:      c.PostForm("about"),
		Experience: c.PostForm("experience"),
		Fees:       c.PostForm("fees"),
		Speciality: c.PostForm("speciality"),
	}

	fieldErrs := checkStruct(input, doctorLabels)

	var timeSlots []models.TimeSlot
	if err := json.Unmarshal([]byte(c.PostForm("timeSlots")), &timeSlots); err != nil || len(timeSlots) == 0 {
		fieldErrs = append(fieldErrs, FieldError{Field: "timeSlots", Message: "Time slots must be a non-empty array"})
	}

	var workingDays []string
	if err := json.Unmarshal([]byte(c.PostForm("workingDays")), &workingDays); err != nil || len(workingDays) == 0 {
		fieldErrs = append(fieldErrs, FieldError{Field: "workingDays", Message: "Working days must be a non-empty array"})
	}

	fees, err := strconv.ParseFloat(input.Fees, 64)
	if input.Fees != "" && err != nil {
		fieldErrs = append(fieldErrs, FieldError{Field: "fees", Message: "Fees must be a number"})
	}

	if len(fieldErrs) > 0 {
		respondError(c, &ValidationError{Errors: fieldErrs})
		return
	}

	imagePath, err := saveUploadedImage(c, dc.UploadDir)
	if err != nil {
		respondError(c, err)
		return
	}

	daysJSON, err := json.Marshal(workingDays)
	if err != nil {
		respondError(c, err)
		return
	}

	doctor := models.Doctor{
		DoctorID:      uuid.NewString(),
		Name:          input.Name,
		Education:     input.Education,
		Department:    input.Department,
		About:         input.About,
		Experience:    input.Experience,
		Fees:          fees,
		Image:         imagePath,
		YoutubeLink:   c.PostForm("youtubeLink"),
		InstagramLink: c.PostForm("instagramLink"),
		FacebookLink:  c.PostForm("facebookLink"),
		IsActive:      true,
		Speciality:    input.Speciality,
		TimeSlots:     timeSlots,
		WorkingDays:   datatypes.JSON(daysJSON),
	}

	if err := dc.DB.Create(&doctor).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doctor)
}

func (dc *DoctorController) findByPublicID(id string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := dc.DB.Preload("TimeSlots").Where("doctor_id = ?", id).First(&doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Doctor"}
		}
		return nil, err
	}
	return &doctor, nil
}

// Get returns one doctor by public identifier.
func (dc *DoctorController) Get(c *gin.Context) {
	doctor, err := dc.findByPublicID(c.Param("doctorId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

// GetProfile is the profile-page variant of Get; the lookup is identical.
func (dc *DoctorController) GetProfile(c *gin.Context) {
	doctor, err := dc.findByPublicID(c.Param("profileId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

// Delete removes a doctor outright, image file included. Soft-delete via
// toggle-active is the usual path; this one is for real removal.
func (dc *DoctorController) Delete(c *gin.Context) {
	doctor, err := dc.findByPublicID(c.Param("doctorId"))
	if err != nil {
		respondError(c, err)
		return
	}

	if doctor.Image != "" {
		if err := os.Remove(doctor.Image); err != nil && !os.IsNotExist(err) {
			respondError(c, err)
			return
		}
	}

	if err := dc.DB.Select("TimeSlots").Delete(doctor).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Doctor and image deleted successfully",
		"doctorId": doctor.DoctorID,
	})
}

// ToggleActive flips the doctor's visibility flag.
func (dc *DoctorController) ToggleActive(c *gin.Context) {
	doctor, err := dc.findByPublicID(c.Param("doctorId"))
	if err != nil {
		respondError(c, err)
		return
	}

	doctor.IsActive = !doctor.IsActive
	if err := dc.DB.Model(doctor).Update("is_active", doctor.IsActive).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Doctor's active status toggled successfully",
		"doctorId": doctor.DoctorID,
		"isActive": doctor.IsActive,
	})
}
