package email

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	baseURL  string
	logger   *zap.Logger
}

func NewEmailService(apiKey, from, fromName, baseURL string, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:   resend.NewClient(apiKey),
		from:     from,
		fromName: fromName,
		baseURL:  baseURL,
		logger:   logger.Named("email"),
	}
}

func (s *EmailService) SendSubscriptionConfirmation(email, name, planName string) error {
	s.logger.Info("Sending subscription confirmation", zap.String("to", email), zap.String("plan", planName))

	html, err := s.renderSubscriptionConfirmation(name, planName)
	if err != nil {
		s.logger.Error("Error parsing subscription template", zap.String("to", email), zap.Error(err))
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{email},
		Subject: "Your subscription is active",
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("Failed to send subscription confirmation", zap.String("to", email), zap.Error(err))
		return err
	}

	s.logger.Info("Sent subscription confirmation", zap.String("to", email), zap.String("id", resp.Id))
	return nil
}

func (s *EmailService) renderSubscriptionConfirmation(name, planName string) (string, error) {
	if name == "" {
		name = "there"
	}
	if planName == "" {
		planName = "your plan"
	}

	data := map[string]interface{}{
		"Name":         name,
		"PlanName":     planName,
		"DashboardURL": s.baseURL + "/dashboard",
		"Year":         time.Now().Year(),
	}

	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, "subscription-confirmed.html", data); err != nil {
		return "", err
	}
	return body.String(), nil
}
