// services/receipt_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"laundrypos-backend/i18n"
	"laundrypos-backend/models"
	"laundrypos-backend/utils"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReceiptService texts a short receipt to the customer when a transaction
// completes. Send failures are logged, never surfaced to the checkout flow.
type ReceiptService struct {
	db     *gorm.DB
	client *twilio.RestClient
	lang   i18n.Language
}

func NewReceiptService(db *gorm.DB) *ReceiptService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	lang := i18n.Language(os.Getenv("RECEIPT_LANGUAGE"))
	switch lang {
	case i18n.English, i18n.French, i18n.Kinyarwanda:
	default:
		lang = i18n.English
	}

	return &ReceiptService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		lang: lang,
	}
}

// BuildMessage renders the SMS body for a completed transaction.
func (s *ReceiptService) BuildMessage(txn *models.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", i18n.Label(i18n.LabelReceiptHeader, s.lang))
	fmt.Fprintf(&b, "%s %s\n", i18n.Label(i18n.LabelTransaction, s.lang), txn.TransactionNumber)
	for _, item := range txn.Items {
		fmt.Fprintf(&b, "%dx %s - %s RWF\n", item.Quantity, item.ServiceName, item.TotalPrice.StringFixed(0))
	}
	fmt.Fprintf(&b, "%s: %s RWF\n", i18n.Label(i18n.LabelSubtotal, s.lang), txn.Subtotal.StringFixed(0))
	fmt.Fprintf(&b, "%s: %s RWF\n", i18n.Label(i18n.LabelTax, s.lang), txn.Tax.StringFixed(0))
	fmt.Fprintf(&b, "%s: %s RWF\n", i18n.Label(i18n.LabelTotal, s.lang), txn.Total.StringFixed(0))
	if txn.CashReceived.Valid {
		fmt.Fprintf(&b, "%s: %s RWF\n", i18n.Label(i18n.LabelCashReceived, s.lang), txn.CashReceived.Decimal.StringFixed(0))
		fmt.Fprintf(&b, "%s: %s RWF\n", i18n.Label(i18n.LabelChange, s.lang), txn.ChangeDue.Decimal.StringFixed(0))
	}
	b.WriteString(i18n.Label(i18n.LabelReceiptThanks, s.lang))
	return b.String()
}

// SendReceipt texts the receipt for a completed transaction to the customer
// phone on record, logging the attempt either way. Transactions without a
// valid phone are skipped silently.
func (s *ReceiptService) SendReceipt(txn *models.Transaction) {
	if txn.Status != models.StatusCompleted {
		return
	}
	if txn.CustomerPhone == "" || !utils.ValidatePhone(txn.CustomerPhone) {
		return
	}

	message := s.BuildMessage(txn)

	// WhatsApp for E.164 numbers, plain SMS otherwise
	channel := "sms"
	to := txn.CustomerPhone
	if strings.HasPrefix(txn.CustomerPhone, "+") {
		to = "whatsapp:" + txn.CustomerPhone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send receipt to %s: %v", txn.CustomerPhone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Receipt sent to %s, SID: %s", txn.CustomerPhone, *resp.Sid)
	}

	receiptLog := models.ReceiptLog{
		TransactionID: txn.ID,
		Phone:         txn.CustomerPhone,
		Message:       message,
		Channel:       channel,
		Status:        status,
		ErrorMessage:  errorMsg,
		SentAt:        time.Now(),
	}
	if err := s.db.Create(&receiptLog).Error; err != nil {
		log.Printf("Failed to log receipt for transaction %s: %v", txn.TransactionNumber, err)
	}
}
