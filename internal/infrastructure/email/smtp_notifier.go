package email

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"research_hub/internal/domain/entities"
	"research_hub/internal/usecase/interfaces"
)

var ErrMissingSMTPHost = errors.New("missing SMTP_HOST")

// SMTPNotifier sends author-facing emails over plain SMTP.
//
// Supported env vars:
//   - SMTP_HOST (required)
//   - SMTP_PORT (default: 587)
//   - SMTP_USERNAME / SMTP_PASSWORD (optional; anonymous relay when unset)
//   - MAIL_SENDER (default: noreply@research-hub.org)

type SMTPNotifier struct {
	addr     string
	host     string
	username string
	password string
	sender   string
}

var _ interfaces.INotifier = (*SMTPNotifier)(nil)

func NewSMTPNotifierFromEnv() (*SMTPNotifier, error) {
	host := strings.TrimSpace(os.Getenv("SMTP_HOST"))
	if host == "" {
		return nil, ErrMissingSMTPHost
	}
	port := strings.TrimSpace(os.Getenv("SMTP_PORT"))
	if port == "" {
		port = "587"
	}
	sender := strings.TrimSpace(os.Getenv("MAIL_SENDER"))
	if sender == "" {
		sender = "noreply@research-hub.org"
	}
	return &SMTPNotifier{
		addr:     host + ":" + port,
		host:     host,
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		sender:   sender,
	}, nil
}

func (n *SMTPNotifier) SubmissionReceived(_ context.Context, s entities.Submission) error {
	subject := "Abstract Submission Confirmation"
	body := fmt.Sprintf(
		"Hello %s,\n\nThank you for submitting your abstract titled: %q\n\nSubmission ID: %s\n\nWe will review your submission and get back to you as soon as possible.\n",
		s.Author.FullName, s.Title, s.ID,
	)
	return n.send(s.Author.Email, subject, body)
}

func (n *SMTPNotifier) ReviewDecision(_ context.Context, s entities.Submission) error {
	var subject, verdict string
	switch s.Status {
	case entities.SubmissionStatusAccepted:
		subject = "Abstract Accepted"
		verdict = "Congratulations! Your abstract has been accepted for publication. A publication invoice is available on your dashboard."
	case entities.SubmissionStatusRejected:
		subject = "Abstract Review Update"
		verdict = "Your abstract was not accepted this time. You may revise and resubmit it from your dashboard."
	default:
		return fmt.Errorf("no review decision to report for status %s", s.Status)
	}
	body := fmt.Sprintf("Dear %s,\n\nYour abstract %q has been reviewed.\n\n%s\n", s.Author.FullName, s.Title, verdict)
	return n.send(s.Author.Email, subject, body)
}

func (n *SMTPNotifier) PaymentConfirmed(_ context.Context, s entities.Submission, inv entities.Invoice) error {
	subject := "Payment Confirmation"
	body := fmt.Sprintf(
		"Dear %s,\n\nYour payment of USD %.2f / MWK %.2f has been successfully processed.\nInvoice ID: %s\n\nThank you for your payment!\n",
		s.Author.FullName, inv.AmountUSD, inv.AmountMWK, inv.ID,
	)
	return n.send(s.Author.Email, subject, body)
}

func (n *SMTPNotifier) send(to, subject, body string) error {
	if strings.TrimSpace(to) == "" {
		return errors.New("missing recipient address")
	}

	msg := strings.Join([]string{
		"From: " + n.sender,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if n.username != "" {
		auth = smtp.PlainAuth("", n.username, n.password, n.host)
	}
	return smtp.SendMail(n.addr, auth, n.sender, []string{to}, []byte(msg))
}
