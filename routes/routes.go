package routes

import (
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mohitt09/Counselling/configuration"
	"github.com/mohitt09/Counselling/controllers"
)

// Controllers bundles the constructed handler sets the router wires up.
type Controllers struct {
	Appointments *controllers.AppointmentController
	Doctors      *controllers.DoctorController
	Blogs        *controllers.BlogController
	Contacts     *controllers.ContactController
	Payments     *controllers.PaymentController
	Admins       *controllers.AdminController
	Credentials  *controllers.CredentialsController
	Messages     *controllers.MessageController
}

// Setup builds the gin engine with CORS, static upload serving and the full
// API route table.
func Setup(cfg *configuration.Config, ctrl Controllers) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if cfg.FrontendDomain != "" {
		corsCfg.AllowOrigins = []string{cfg.FrontendDomain}
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.Static("/uploads/doctors", filepath.Join(cfg.UploadRoot, "doctors"))
	r.Static("/uploads/blogs", filepath.Join(cfg.UploadRoot, "blogs"))

	api := r.Group("/api")

	appointments := api.Group("/appointments")
	{
		appointments.POST("", ctrl.Appointments.Create)
		appointments.GET("", ctrl.Appointments.List)
		appointments.GET("/approved-active", ctrl.Appointments.ApprovedActive)
		appointments.GET("/approved-active/:profileId", ctrl.Appointments.ApprovedActiveByDoctor)
		appointments.GET("/gender-distribution/:profileId", ctrl.Appointments.GenderDistribution)
		appointments.GET("/:doctorId", ctrl.Appointments.ListByDoctor)
		appointments.GET("/:doctorId/:date", ctrl.Appointments.TimesByDoctorAndDate)
		appointments.PATCH("/:id/status", ctrl.Appointments.UpdateStatus)
		appointments.PATCH("/:id", ctrl.Appointments.Reschedule)
		appointments.POST("/send-email", ctrl.Appointments.SendConfirmationEmail)
		appointments.POST("/send-reschedule-email", ctrl.Appointments.SendRescheduleEmail)
	}

	doctors := api.Group("/doctors")
	{
		doctors.GET("", ctrl.Doctors.List)
		doctors.POST("", ctrl.Doctors.Create)
		doctors.GET("/profile/:profileId", ctrl.Doctors.GetProfile)
		doctors.GET("/:doctorId", ctrl.Doctors.Get)
		doctors.DELETE("/:doctorId", ctrl.Doctors.Delete)
		doctors.PATCH("/:doctorId/toggle-active", ctrl.Doctors.ToggleActive)
	}

	blogs := api.Group("/blogs")
	{
		blogs.GET("", ctrl.Blogs.List)
		blogs.GET("/filter", ctrl.Blogs.Filter)
		blogs.GET("/:id", ctrl.Blogs.Get)
		blogs.POST("", ctrl.Blogs.Create)
		blogs.PUT("/:id", ctrl.Blogs.Update)
		blogs.PATCH("/:id/toggle-active", ctrl.Blogs.ToggleActive)
		blogs.POST("/:id/like", ctrl.Blogs.Like)
		blogs.POST("/:id/unlike", ctrl.Blogs.Unlike)
		blogs.POST("/:id/view", ctrl.Blogs.View)
	}

	contacts := api.Group("/contacts")
	{
		contacts.POST("", ctrl.Contacts.Create)
		contacts.GET("", ctrl.Contacts.List)
	}

	payments := api.Group("/payments")
	{
		payments.POST("/order", ctrl.Payments.CreateOrder)
		payments.POST("/order/validate", ctrl.Payments.ValidateOrder)
		payments.POST("/submit", ctrl.Payments.Submit)
		payments.GET("", ctrl.Payments.List)
	}
	api.POST("/webhooks/payment-webhook", ctrl.Payments.Webhook)

	admin := api.Group("/admin")
	{
		admin.GET("", ctrl.Admins.List)
		admin.POST("/login", ctrl.Admins.Login)
		admin.POST("", ctrl.Admins.Create)
		admin.DELETE("/:adminId", ctrl.Admins.Delete)
		admin.PATCH("/:adminId/toggle-active", ctrl.Admins.ToggleActive)
	}

	credentials := api.Group("/credentials")
	{
		credentials.POST("", ctrl.Credentials.Create)
		credentials.POST("/login", ctrl.Credentials.Login)
	}

	api.POST("/msg/send-sms", ctrl.Messages.SendSMS)
	api.POST("/WhatappRoutes/send-whatsapp", ctrl.Messages.SendWhatsapp)

	return r
}
