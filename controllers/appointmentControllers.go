package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mohitt09/Counselling/models"
)

// AppointmentController owns the appointment lifecycle: creation, the
// approval state machine, reschedule edits and the read surface. Email
// confirmations are delegated to the injected Mailer and never gate a
// mutation.
type AppointmentController struct {
	DB   *gorm.DB
	Mail Mailer
}

func NewAppointmentController(db *gorm.DB, mail Mailer) *AppointmentController {
	return &AppointmentController{DB: db, Mail: mail}
}

type appointmentInput struct {
	Name       string `json:"name" validate:"required,namechars"`
	Email      string `json:"email" validate:"required,email"`
	Gender     string `json:"gender" validate:"required"`
	DoctorID   string `json:"doctorId" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Time       string `json:"time" validate:"required"`
	PhoneNo    string `json:"phoneNo" validate:"required"`
	Message    string `json:"message"`
	Department string `json:"department" validate:"required"`
}

var appointmentLabels = map[string]string{
	"name":       "Name",
	"email":      "Email",
	"gender":     "Gender",
	"doctorId":   "Doctor ID",
	"date":       "Date",
	"time":       "Time",
	"phoneNo":    "Phone number",
	"department": "Department name",
}

// Create books a new appointment. Every violated field is reported, not
// just the first; a fresh record always starts pending and active.
func (ac *AppointmentController) Create(c *gin.Context) {
	var input appointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if fieldErrs := checkStruct(input, appointmentLabels); len(fieldErrs) > 0 {
		respondError(c, &ValidationError{Errors: fieldErrs})
		return
	}

	appointment := models.Appointment{
		Name:          input.Name,
		Email:         input.Email,
		Gender:        input.Gender,
		DoctorID:      input.DoctorID,
		Date:          input.Date,
		Time:          input.Time,
		PhoneNo:       input.PhoneNo,
		Message:       input.Message,
		Department:    input.Department,
		IsActive:      true,
		Status:        models.StatusPending,
		StatusMessage: "Pending",
	}

	if err := ac.DB.Create(&appointment).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// UpdateStatus is the sole mutation entry point for approval state.
func (ac *AppointmentController) UpdateStatus(c *gin.Context) {
	var body struct {
		Action        string `json:"action"`
		StatusMessage string `json:"statusMessage"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var status models.ApprovalStatus
	switch body.Action {
	case "approve":
		status = models.StatusApproved
	case "reject":
		status = models.StatusRejected
	case "reschedule":
		status = models.StatusRescheduled
	case "pending":
		status = models.StatusPending
	default:
		respondError(c, &InvalidActionError{Action: body.Action})
		return
	}

	var appointment models.Appointment
	if err := ac.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, &NotFoundError{Resource: "Appointment"})
			return
		}
		respondError(c, err)
		return
	}

	// Status and message go out in one UPDATE; a supplied message
	// overwrites, an omitted one is retained.
	update := map[string]interface{}{"status": status}
	if body.StatusMessage != "" {
		update["status_message"] = body.StatusMessage
	}
	if err := ac.DB.Model(&appointment).Updates(update).Error; err != nil {
		respondError(c, err)
		return
	}

	appointment.Status = status
	if body.StatusMessage != "" {
		appointment.StatusMessage = body.StatusMessage
	}
	c.JSON(http.StatusOK, appointment)
}

// Reschedule amends the booking's factual details. Whatever subset of
// fields arrives, the edit reopens the approval workflow.
func (ac *AppointmentController) Reschedule(c *gin.Context) {
	var body struct {
		Date       string `json:"date"`
		Time       string `json:"time"`
		DoctorID   string `json:"doctorId"`
		Department string `json:"department"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var appointment models.Appointment
	if err := ac.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, &NotFoundError{Resource: "Appointment"})
			return
		}
		respondError(c, err)
		return
	}

	if body.Date != "" {
		appointment.Date = body.Date
	}
	if body.Time != "" {
		appointment.Time = body.Time
	}
	if body.DoctorID != "" {
		appointment.DoctorID = body.DoctorID
	}
	if body.Department != "" {
		appointment.Department = body.Department
	}
	appointment.Status = models.StatusRescheduled

	if err := ac.DB.Save(&appointment).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// List returns every appointment.
func (ac *AppointmentController) List(c *gin.Context) {
	appointments := make([]models.Appointment, 0)
	if err := ac.DB.Find(&appointments).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// ListByDoctor returns every appointment booked against a doctor's public
// identifier.
func (ac *AppointmentController) ListByDoctor(c *gin.Context) {
	appointments := make([]models.Appointment, 0)
	if err := ac.DB.Where("doctor_id = ?", c.Param("doctorId")).Find(&appointments).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// TimesByDoctorAndDate returns only the time values of appointments for a
// doctor on an exact date, for slot-picker UIs.
func (ac *AppointmentController) TimesByDoctorAndDate(c *gin.Context) {
	doctorID := c.Param("doctorId")

	var doctor models.Doctor
	if err := ac.DB.Where("doctor_id = ?", doctorID).First(&doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, &NotFoundError{Resource: "Doctor"})
			return
		}
		respondError(c, err)
		return
	}

	var appointments []models.Appointment
	if err := ac.DB.Where("doctor_id = ? AND date = ?", doctorID, c.Param("date")).Find(&appointments).Error; err != nil {
		respondError(c, err)
		return
	}

	times := make([]string, 0, len(appointments))
	for _, appointment := range appointments {
		times = append(times, appointment.Time)
	}
	c.JSON(http.StatusOK, times)
}

// ApprovedActive returns approved appointments that are still visible.
func (ac *AppointmentController) ApprovedActive(c *gin.Context) {
	appointments := make([]models.Appointment, 0)
	if err := ac.DB.Where("status = ? AND is_active = ?", models.StatusApproved, true).Find(&appointments).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// ApprovedActiveByDoctor narrows ApprovedActive to one doctor's public
// identifier.
func (ac *AppointmentController) ApprovedActiveByDoctor(c *gin.Context) {
	appointments := make([]models.Appointment, 0)
	if err := ac.DB.
		Where("doctor_id = ? AND status = ? AND is_active = ?", c.Param("profileId"), models.StatusApproved, true).
		Find(&appointments).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// GenderDistribution counts approved+active appointments with gender
// exactly "male" or "female" for a doctor. Other gender values are neither
// counted nor an error, and an empty result is zero counts.
func (ac *AppointmentController) GenderDistribution(c *gin.Context) {
	var dist struct {
		TotalMale   int64 `json:"totalMale"`
		TotalFemale int64 `json:"totalFemale"`
	}

	err := ac.DB.Model(&models.Appointment{}).
		Select("COALESCE(SUM(CASE WHEN gender = 'male' THEN 1 ELSE 0 END), 0) AS total_male, " +
			"COALESCE(SUM(CASE WHEN gender = 'female' THEN 1 ELSE 0 END), 0) AS total_female").
		Where("doctor_id = ? AND status = ? AND is_active = ?", c.Param("profileId"), models.StatusApproved, true).
		Scan(&dist).Error
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dist)
}

type emailRequest struct {
	Email              string `json:"email"`
	AppointmentDetails struct {
		Name       string `json:"name"`
		DoctorName string `json:"doctorName"`
		Date       string `json:"date"`
		Time       string `json:"time"`
		Department string `json:"department"`
	} `json:"appointmentDetails"`
}

// SendConfirmationEmail mails a booking confirmation. Triggered by the
// caller after a successful create; its outcome is reported independently
// of the booking itself.
func (ac *AppointmentController) SendConfirmationEmail(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	body := fmt.Sprintf(`<p>Dear %s,</p>
<p>Your appointment has been scheduled successfully. Here are the details:</p>
<p>Appointment Date: %s</p>
<p>Appointment Time: %s</p>
<p>Department: %s</p>
<p>Thank you for choosing our services.</p>`,
		req.AppointmentDetails.Name, req.AppointmentDetails.Date,
		req.AppointmentDetails.Time, req.AppointmentDetails.Department)

	if err := ac.Mail.Send(req.Email, "Appointment Confirmation", body, "", nil); err != nil {
		log.Println("error sending confirmation email:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send confirmation email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Confirmation email sent successfully"})
}

// SendRescheduleEmail mails a reschedule confirmation.
func (ac *AppointmentController) SendRescheduleEmail(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	body := fmt.Sprintf(`<p>Dear %s,</p>
<p>Your appointment with Dr. %s has been successfully rescheduled. Here are the updated details:</p>
<p>Appointment Date: %s</p>
<p>Appointment Time: %s</p>
<p>Department: %s</p>
<p>Thank you for choosing our services.</p>`,
		req.AppointmentDetails.Name, req.AppointmentDetails.DoctorName,
		req.AppointmentDetails.Date, req.AppointmentDetails.Time,
		req.AppointmentDetails.Department)

	if err := ac.Mail.Send(req.Email, "Appointment Rescheduled Confirmation", body, "", nil); err != nil {
		log.Println("error sending reschedule email:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send reschedule confirmation email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reschedule confirmation email sent successfully"})
}
