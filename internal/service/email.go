package service

import (
	"context"
	"fmt"
	"time"

	"teamsync-backend/internal/domain"
	"teamsync-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendJoinDecisionNotice(ctx context.Context, email, name, projectName string, decision domain.JoinRequestStatus) error {
	subject := fmt.Sprintf("Your join request for %s", projectName)
	body := fmt.Sprintf("Hello %s,\n\nYour request to join the project %q has been %s.\n\nThe TeamSync Team", name, projectName, decision)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendMeetingReminder(ctx context.Context, email, name, projectName, meetingTitle string, date time.Time, link string) error {
	subject := fmt.Sprintf("Upcoming meeting: %s", meetingTitle)
	body := fmt.Sprintf("Hello %s,\n\nReminder: the project %q has a meeting %q scheduled for %s.",
		name, projectName, meetingTitle, date.Format(time.RFC1123))
	if link != "" {
		body += fmt.Sprintf("\n\nJoin here: %s", link)
	}
	body += "\n\nThe TeamSync Team"
	return s.send(email, name, subject, body)
}

func (s *emailService) send(toEmail, toName, subject, plainText string) error {
	if s.apiKey == "" {
		// Local development: no delivery configured.
		logger.Info("Email delivery skipped (no API key)", "to", toEmail, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
