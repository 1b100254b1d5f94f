package services

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/sbo-seals/oilseal-api/config"
)

// ErrNotConfigured marks a notify channel whose provider credentials are
// missing, as opposed to a runtime delivery failure.
var ErrNotConfigured = errors.New("not configured")

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// NotifyService sends outbound messages to contacts: email over SMTP, SMS and
// WhatsApp through the Twilio REST API.
type NotifyService struct {
	cfg        *config.Config
	httpClient *http.Client
	twilioBase string
}

// NewNotifyService returns a notify service using cfg's provider settings.
func NewNotifyService(cfg *config.Config) *NotifyService {
	return &NotifyService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		twilioBase: twilioAPIBase,
	}
}

// SendEmail delivers a plain-text email over SMTP.
func (s *NotifyService) SendEmail(to, subject, body string) error {
	cfg := s.cfg
	if cfg.SMTPHost == "" || cfg.SMTPPort == 0 || cfg.SMTPUser == "" || cfg.SMTPPass == "" || cfg.SMTPFrom == "" {
		return fmt.Errorf("SMTP %w (set SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS, SMTP_FROM)", ErrNotConfigured)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SMTPFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

// SendSMS delivers an SMS through Twilio.
func (s *NotifyService) SendSMS(to, body string) error {
	cfg := s.cfg
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioFromNumber == "" {
		return fmt.Errorf("Twilio SMS %w (set TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN, TWILIO_FROM_NUMBER)", ErrNotConfigured)
	}
	return s.sendTwilioMessage(cfg.TwilioFromNumber, to, body)
}

// SendWhatsApp delivers a WhatsApp message through Twilio. Destination
// numbers get the whatsapp: prefix when the caller didn't supply one.
func (s *NotifyService) SendWhatsApp(to, body string) error {
	cfg := s.cfg
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioWhatsAppFrom == "" {
		return fmt.Errorf("Twilio WhatsApp %w (set TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN, TWILIO_WHATSAPP_FROM)", ErrNotConfigured)
	}
	if !strings.HasPrefix(to, "whatsapp:") {
		to = "whatsapp:" + to
	}
	return s.sendTwilioMessage(cfg.TwilioWhatsAppFrom, to, body)
}

func (s *NotifyService) sendTwilioMessage(from, to, body string) error {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", s.twilioBase, s.cfg.TwilioAccountSID)
	form := url.Values{
		"From": {from},
		"To":   {to},
		"Body": {body},
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build twilio request: %w", err)
	}
	req.SetBasicAuth(s.cfg.TwilioAccountSID, s.cfg.TwilioAuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send twilio message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("twilio returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}
