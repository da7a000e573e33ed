package controllers

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/mohitt09/Counselling/models"
)

// GenerateReceiptPDF renders a payment receipt for mailing to the payer.
func GenerateReceiptPDF(payment models.Payment) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(128, 0, 128)
	pdf.CellFormat(0, 10, "Counselling Clinic", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 7, "Appointment Payment Receipt", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Payment Details", "1", 1, "C", false, 0, "")
	receiptDetail(pdf, "Receipt ID", payment.ReceiptID, true)
	receiptDetail(pdf, "Name", payment.Name, true)
	receiptDetail(pdf, "Department", payment.Department, true)
	receiptDetail(pdf, "Appointment Date", payment.Date.Format("2006-01-02"), true)
	receiptDetail(pdf, "Time Slot", payment.Time, true)
	receiptDetail(pdf, "Status", payment.PaymentStatus, false)

	pdf.SetFont("Arial", "B", 13)
	receiptDetail(pdf, "Amount Paid", fmt.Sprintf("%.2f %s", payment.Amount, payment.Currency), true)

	pdf.MultiCell(0, 5, "Thank you for using our service.", "", "L", false)
	pdf.SetY(pdf.GetY() + 12)
	pdf.CellFormat(0, 10, "This is a computer generated receipt", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func receiptDetail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(255, 255, 255)
	} else {
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
	}
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}
