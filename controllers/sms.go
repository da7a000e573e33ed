package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier dispatches SMS and WhatsApp messages. Single attempt, failure
// surfaced to the caller and never retried.
type Notifier interface {
	SendSMS(body string) error
	SendWhatsapp(name, number, doctorName string) (string, error)
}

// TwilioSender implements Notifier over the Twilio REST API.
type TwilioSender struct {
	client       *twilio.RestClient
	fromNumber   string
	toNumber     string
	whatsappFrom string
	whatsappTo   string
}

func NewTwilioSender(accountSID, authToken, fromNumber, toNumber, whatsappFrom, whatsappTo string) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{
		client:       client,
		fromNumber:   fromNumber,
		toNumber:     toNumber,
		whatsappFrom: "whatsapp:" + whatsappFrom,
		whatsappTo:   "whatsapp:" + whatsappTo,
	}
}

func (t *TwilioSender) SendSMS(body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetFrom(t.fromNumber)
	params.SetTo(t.toNumber)
	params.SetBody(body)

	message, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if message.Status != nil {
		log.Println("SMS status:", *message.Status)
	}
	return nil
}

func (t *TwilioSender) SendWhatsapp(name, number, doctorName string) (string, error) {
	params := &openapi.CreateMessageParams{}
	params.SetFrom(t.whatsappFrom)
	params.SetTo(t.whatsappTo)
	params.SetBody(fmt.Sprintf("Name: %s\nPhone Number: %s\nDoctor: %s", name, number, doctorName))

	message, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return "", err
	}
	if message.Sid == nil {
		return "", errors.New("twilio returned no message sid")
	}
	return *message.Sid, nil
}

// MessageController exposes the SMS and WhatsApp dispatch endpoints.
type MessageController struct {
	Notify Notifier
}

func NewMessageController(notify Notifier) *MessageController {
	return &MessageController{Notify: notify}
}

func (mc *MessageController) SendSMS(c *gin.Context) {
	var req struct {
		Body string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := mc.Notify.SendSMS(req.Body); err != nil {
		log.Println("failed to send SMS:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send SMS"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "SMS sent successfully"})
}

// SendWhatsapp forwards the patient name, phone number and doctor name to
// the clinic's WhatsApp inbox.
func (mc *MessageController) SendWhatsapp(c *gin.Context) {
	var req struct {
		Name       string `json:"name"`
		Number     string `json:"number"`
		DoctorName string `json:"doctorName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" && req.Number == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and phone number are required"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	if req.Number == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number is required"})
		return
	}

	sid, err := mc.Notify.SendWhatsapp(req.Name, req.Number, req.DoctorName)
	if err != nil {
		log.Println("failed to send WhatsApp message:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send WhatsApp message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully via Twilio", "messageSid": sid})
}
