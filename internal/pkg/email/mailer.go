// Package email sends transactional notifications over SMTP. Delivery
// outcomes are reported as an ok flag plus an operator-readable message;
// a failed send never aborts the business operation that triggered it.
package email

import (
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vocabolarium/backend/internal/app/models"
)

// Config holds SMTP settings plus the contact details rendered into
// message bodies
type Config struct {
	Host           string
	Port           int
	SenderEmail    string
	SenderPassword string
	FromName       string
	MaterialsPath  string
	ContactEmail   string
	PaymentEmail   string
	ContactPhone   string
	Facebook       string
	YouTube        string
}

// Mailer sends notification emails
type Mailer struct {
	config Config
	logger zerolog.Logger
}

// NewMailer creates a new Mailer
func NewMailer(config Config, logger zerolog.Logger) *Mailer {
	return &Mailer{
		config: config,
		logger: logger,
	}
}

type attachment struct {
	filename string
	data     []byte
}

// SendRegistrationConfirmation sends the initial confirmation with payment
// instructions matching the registration's payment option
func (m *Mailer) SendRegistrationConfirmation(student *models.Student) (bool, string) {
	if student.Email == "" {
		return false, "Student email not found in data"
	}
	body := registrationBody(student, m.config)
	return m.send(student.Email, "Vocabolarium - Registration Received", body, nil)
}

// SendApprovalEmail sends the approval notice with the tutor assignment,
// the Google Meet link and the course materials PDF. A missing materials
// file is logged and the email goes out without the attachment.
func (m *Mailer) SendApprovalEmail(student *models.Student, tutorName, meetLink string) (bool, string) {
	body := approvalBody(student, tutorName, meetLink, m.config)

	var att *attachment
	if m.config.MaterialsPath != "" {
		data, err := os.ReadFile(m.config.MaterialsPath)
		if err != nil {
			m.logger.Warn().Err(err).Str("path", m.config.MaterialsPath).Msg("Course materials PDF not found")
		} else {
			name := fmt.Sprintf("%s_Course_Materials%s", student.Language, filepath.Ext(m.config.MaterialsPath))
			att = &attachment{filename: name, data: data}
		}
	}

	return m.send(student.Email, "Welcome to Vocabolarium - Registration Approved!", body, att)
}

// SendRejectionEmail sends the rejection notice. The reason is optional
// and omitted from the body when empty.
func (m *Mailer) SendRejectionEmail(student *models.Student, reason string) (bool, string) {
	body := rejectionBody(student, reason, m.config)
	return m.send(student.Email, "Vocabolarium - Registration Update", body, nil)
}

// SendReminderEmail sends an upcoming-class reminder
func (m *Mailer) SendReminderEmail(toEmail, toName, classTime, meetLink string) (bool, string) {
	body := reminderBody(toName, classTime, meetLink)
	return m.send(toEmail, "Class Reminder - Vocabolarium", body, nil)
}

// SendTestEmail sends a configuration check message that surfaces the
// active SMTP settings in its body
func (m *Mailer) SendTestEmail(toEmail string) (bool, string) {
	body := testBody(m.config)
	return m.send(toEmail, "Vocabolarium - Email Service Test", body, nil)
}

// SendBulkEmail delivers the same message to every recipient, one SMTP
// session each, and reports how many sends succeeded and failed
func (m *Mailer) SendBulkEmail(recipients []string, subject, body string) (sent, failed int) {
	for _, recipient := range recipients {
		ok, msg := m.send(recipient, subject, body, nil)
		if ok {
			sent++
		} else {
			failed++
			m.logger.Error().Str("recipient", recipient).Str("reason", msg).Msg("Bulk email delivery failed")
		}
	}
	m.logger.Info().Int("sent", sent).Int("failed", failed).Msg("Bulk email complete")
	return sent, failed
}

// send delivers one message over a STARTTLS SMTP session
func (m *Mailer) send(toEmail, subject, body string, att *attachment) (bool, string) {
	message := m.buildMessage(toEmail, subject, body, att)
	serverAddress := m.config.Host + ":" + strconv.Itoa(m.config.Port)

	client, err := smtp.Dial(serverAddress)
	if err != nil {
		m.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
		return false, fmt.Sprintf("Failed to send email: %v", err)
	}
	defer client.Quit()

	tlsConfig := &tls.Config{ServerName: m.config.Host}
	if err = client.StartTLS(tlsConfig); err != nil {
		m.logger.Error().Err(err).Msg("STARTTLS negotiation failed")
		return false, fmt.Sprintf("Failed to send email: %v", err)
	}

	auth := smtp.PlainAuth("", m.config.SenderEmail, m.config.SenderPassword, m.config.Host)
	if err = client.Auth(auth); err != nil {
		m.logger.Error().Err(err).Msg("SMTP authentication failed")
		return false, "Authentication failed. Check email credentials."
	}

	if err = client.Mail(m.config.SenderEmail); err != nil {
		m.logger.Error().Err(err).Msg("Failed to set sender")
		return false, fmt.Sprintf("SMTP error: %v", err)
	}
	if err = client.Rcpt(toEmail); err != nil {
		m.logger.Error().Err(err).Str("recipient", toEmail).Msg("Failed to set recipient")
		return false, fmt.Sprintf("SMTP error: %v", err)
	}

	w, err := client.Data()
	if err != nil {
		return false, fmt.Sprintf("SMTP error: %v", err)
	}
	if _, err = w.Write([]byte(message)); err != nil {
		return false, fmt.Sprintf("Failed to send email: %v", err)
	}
	if err = w.Close(); err != nil {
		return false, fmt.Sprintf("Failed to send email: %v", err)
	}

	m.logger.Info().Str("recipient", toEmail).Str("subject", subject).Msg("Email sent successfully")
	return true, "Email sent successfully"
}

// buildMessage assembles a multipart/mixed MIME message with a plain text
// body and an optional base64 attachment
func (m *Mailer) buildMessage(toEmail, subject, body string, att *attachment) string {
	const boundary = "vocabolarium-mail-boundary"

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", m.config.FromName, m.config.SenderEmail)
	fmt.Fprintf(&b, "To: %s\r\n", toEmail)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/mixed; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")

	if att != nil {
		fmt.Fprintf(&b, "--%s\r\n", boundary)
		b.WriteString("Content-Type: application/octet-stream\r\n")
		b.WriteString("Content-Transfer-Encoding: base64\r\n")
		fmt.Fprintf(&b, "Content-Disposition: attachment; filename=%q\r\n", att.filename)
		b.WriteString("\r\n")

		encoded := base64.StdEncoding.EncodeToString(att.data)
		// 76-char lines per RFC 2045
		for len(encoded) > 76 {
			b.WriteString(encoded[:76])
			b.WriteString("\r\n")
			encoded = encoded[76:]
		}
		b.WriteString(encoded)
		b.WriteString("\r\n")
	}

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return b.String()
}
