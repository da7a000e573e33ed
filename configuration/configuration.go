package configuration

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mohitt09/Counselling/models"
)

// Config holds everything read from the environment at startup. Handlers
// receive it (and the DB handle) explicitly; nothing in this package is a
// mutable singleton.
type Config struct {
	DSN            string
	Port           string
	FrontendDomain string
	UploadRoot     string

	MailHost string
	MailPort int
	MailUser string
	MailPass string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	TwilioToNumber   string
	WhatsappFrom     string
	WhatsappTo       string

	RazorpayKeyID  string
	RazorpaySecret string

	JWTSecret string
}

// Load reads .env when present and then the process environment.
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	cfg := &Config{
		DSN:              os.Getenv("DB"),
		Port:             os.Getenv("PORT"),
		FrontendDomain:   os.Getenv("FRONTEND_DOMAIN"),
		UploadRoot:       os.Getenv("UPLOAD_ROOT"),
		MailHost:         os.Getenv("MAIL_HOST"),
		MailUser:         os.Getenv("MAIL_USER"),
		MailPass:         os.Getenv("MAIL_PASS"),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		TwilioToNumber:   os.Getenv("TWILIO_TO_NUMBER"),
		WhatsappFrom:     os.Getenv("WHATSAPP_FROM_NUMBER"),
		WhatsappTo:       os.Getenv("WHATSAPP_TO_NUMBER"),
		RazorpayKeyID:    os.Getenv("RAZORPAY_KEY_ID"),
		RazorpaySecret:   os.Getenv("RAZORPAY_SECRET"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.UploadRoot == "" {
		cfg.UploadRoot = "uploads"
	}
	if port, err := strconv.Atoi(os.Getenv("MAIL_PORT")); err == nil {
		cfg.MailPort = port
	} else {
		cfg.MailPort = 587
	}

	return cfg
}

// ConnectDB opens the postgres connection and migrates the schema.
func ConnectDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Appointment{},
		&models.Doctor{},
		&models.TimeSlot{},
		&models.Blog{},
		&models.Contact{},
		&models.Payment{},
		&models.Admin{},
		&models.Credentials{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
