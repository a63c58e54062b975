// services/notify_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// NotifyService sends account-security alerts over Twilio. When Twilio is
// not configured (local/demo runs), alerts are logged and dropped.
type NotifyService struct {
	client  *twilio.RestClient
	enabled bool
}

func NewNotifyService() *NotifyService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotifyService{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		enabled: accountSid != "" && authToken != "",
	}
}

// SendPasswordChangedAlert notifies the account owner that their password
// was just changed through the recovery flow.
func (s *NotifyService) SendPasswordChangedAlert(name, phone string, at time.Time) {
	message := fmt.Sprintf(
		"Hi %s, your Slotifyme Admin password was changed on %s. If this wasn't you, contact support immediately.",
		name, at.Format("Jan 2 2006 15:04 MST"))

	if !s.enabled {
		log.Printf("Twilio not configured, skipping security alert to %s", phone)
		return
	}

	// WhatsApp when the number is in E.164 form, SMS otherwise.
	to := phone
	from := os.Getenv("TWILIO_PHONE_NUMBER")
	if strings.HasPrefix(phone, "+") && os.Getenv("TWILIO_WHATSAPP_NUMBER") != "" {
		to = "whatsapp:" + phone
		from = "whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send security alert to %s: %v", phone, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Security alert sent to %s, SID: %s", phone, *resp.Sid)
	} else {
		log.Printf("Security alert sent to %s, but no SID returned", phone)
	}
}
