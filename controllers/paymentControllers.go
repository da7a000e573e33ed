package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/razorpay/razorpay-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mohitt09/Counselling/models"
)

// PaymentController fronts the payment gateway: order creation, signature
// validation, and the local payment ledger. Receipt email is fire-and-forget
// and never fails the mutation that triggered it.
type PaymentController struct {
	DB     *gorm.DB
	Client *razorpay.Client
	Secret string
	Mail   Mailer
}

func NewPaymentController(db *gorm.DB, client *razorpay.Client, secret string, mail Mailer) *PaymentController {
	return &PaymentController{DB: db, Client: client, Secret: secret, Mail: mail}
}

// CreateOrder passes the order body through to the gateway.
func (pc *PaymentController) CreateOrder(c *gin.Context) {
	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := pc.Client.Order.Create(data, nil)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

/// ValidateOrder checks the gateway signature: HMAC-SHA256 over
// "orderID|paymentID" with the account secret.
func (pc *PaymentController) ValidateOrder(c *gin.Context) {
	var req struct {
		OrderID   string `json:"razorpay_order_id"`
		PaymentID string `json:"razorpay_payment_id"`
		Signature string `json:"razorpay_signature"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mac := hmac.New(sha256.New, []byte(pc.Secret))
	mac.Write([]byte(req.OrderID + "|" + req.PaymentID))
	digest := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(digest), []byte(req.Signature)) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Transaction is not legit!"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":       "success",
		"orderId":   req.OrderID,
		"paymentId": req.PaymentID,
	})
}

// Submit stores a payment record. Successful payments get a PDF receipt
// emailed to the payer; a mail failure is logged and reported nowhere else.
func (pc *PaymentController) Submit(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payment.PaymentStatus == "" {
		payment.PaymentStatus = models.PaymentPending
	}
	if payment.PaymentResponse == nil {
		payment.PaymentResponse = datatypes.JSON("null")
	}

	if err := pc.DB.Create(&payment).Error; err != nil {
		respondError(c, err)
		return
	}

	if payment.PaymentStatus == models.PaymentSuccess {
		if err := pc.sendReceipt(payment); err != nil {
			log.Println("failed to send payment receipt:", err)
		}
	}

	c.JSON(http.StatusCreated, payment)
}

func (pc *PaymentController) sendReceipt(payment models.Payment) error {
	receipt, err := GenerateReceiptPDF(payment)
	if err != nil {
		return err
	}
	body := "<p>Dear " + payment.Name + ",</p><p>Your payment was received successfully. The receipt is attached.</p>"
	return pc.Mail.Send(payment.Email, "Payment Confirmation", body, "receipt.pdf", receipt)
}

// List returns every payment record.
func (pc *PaymentController) List(c *gin.Context) {
	payments := make([]models.Payment, 0)
	if err := pc.DB.Find(&payments).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// Webhook acknowledges gateway events. The payload is logged for audit;
// state changes flow through the regular submit/validate endpoints.
func (pc *PaymentController) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	log.Println("payment webhook event:", string(body))
	c.Status(http.StatusOK)
}
