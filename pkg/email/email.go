package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"courtier_backend/pkg/logger"
)

// EmailService sends broker notifications through the Resend HTTP API.
type EmailService struct {
	apiKey    string
	from      string
	templates *template.Template
}

type EmailData struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

type LeadNotificationData struct {
	LeadName         string
	LeadEmail        string
	LeadPhone        string
	LeadMessage      string
	PropertyInterest string
}

type ViewingNotificationData struct {
	VisitorName   string
	VisitorEmail  string
	VisitorPhone  string
	PropertyTitle string
	PreferredDate string
	PreferredTime string
	Message       string
}

var GlobalEmailService *EmailService

// InitEmailService sets up the shared service. A missing API key disables
// notifications instead of failing startup; the public forms must keep
// working without them.
func InitEmailService(apiKey string) error {
	if apiKey == "" {
		logger.Log.Warn("RESEND_API_KEY not set, email notifications disabled")
		return nil
	}

	svc, err := NewEmailService(apiKey)
	if err != nil {
		return err
	}
	GlobalEmailService = svc
	return nil
}

func NewEmailService(apiKey string) (*EmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %v", err)
	}

	return &EmailService{
		apiKey:    apiKey,
		from:      "Courtier <noreply@courtier.quebec>",
		templates: templates,
	}, nil
}

func (s *EmailService) sendTemplateEmail(to, subject, templateName string, data interface{}) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("template execution error: %v", err)
	}

	emailData := EmailData{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    body.String(),
	}

	jsonData, err := json.Marshal(emailData)
	if err != nil {
		return fmt.Errorf("error marshaling email data: %v", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("resend API error: %s", string(respBody))
	}

	logger.Log.Debugf("Sent %s email to %s", templateName, to)
	return nil
}

// SendLeadNotification tells the broker a contact form came in.
func (s *EmailService) SendLeadNotification(brokerEmail string, data LeadNotificationData) error {
	return s.sendTemplateEmail(brokerEmail, "New inquiry from your website", "lead_notification.html", data)
}

// SendViewingNotification tells the broker a showing was requested.
func (s *EmailService) SendViewingNotification(brokerEmail string, data ViewingNotificationData) error {
	return s.sendTemplateEmail(brokerEmail, "New viewing request", "viewing_notification.html", data)
}
