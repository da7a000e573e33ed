package main

import (
	"log"
	"path/filepath"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/mohitt09/Counselling/configuration"
	"github.com/mohitt09/Counselling/controllers"
	"github.com/mohitt09/Counselling/routes"
)

func main() {
	cfg := configuration.Load()

	db, err := configuration.ConnectDB(cfg.DSN)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	mail := controllers.NewMailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass)
	notify := controllers.NewTwilioSender(
		cfg.TwilioAccountSID, cfg.TwilioAuthToken,
		cfg.TwilioFromNumber, cfg.TwilioToNumber,
		cfg.WhatsappFrom, cfg.WhatsappTo,
	)
	rzp := razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpaySecret)

	ctrl := routes.Controllers{
		Appointments: controllers.NewAppointmentController(db, mail),
		Doctors:      controllers.NewDoctorController(db, filepath.Join(cfg.UploadRoot, "doctors")),
		Blogs:        controllers.NewBlogController(db, filepath.Join(cfg.UploadRoot, "blogs")),
		Contacts:     controllers.NewContactController(db),
		Payments:     controllers.NewPaymentController(db, rzp, cfg.RazorpaySecret, mail),
		Admins:       controllers.NewAdminController(db, cfg.JWTSecret),
		Credentials:  controllers.NewCredentialsController(db, cfg.JWTSecret),
		Messages:     controllers.NewMessageController(notify),
	}

	r := routes.Setup(cfg, ctrl)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
