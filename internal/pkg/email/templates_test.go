package email

import (
	"regexp"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/vocabolarium/backend/internal/app/models"
)

func testConfig() Config {
	return Config{
		Host:         "smtp.example.com",
		Port:         587,
		SenderEmail:  "noreply@vocabolarium.com",
		FromName:     "Vocabolarium",
		ContactEmail: "vocabolarium@gmail.com",
		PaymentEmail: "payments@vocabolarium.com",
		ContactPhone: "+63 917 123 4567",
		Facebook:     "https://facebook.com/vocabolarium",
		YouTube:      "https://youtube.com/@vocabolarium",
	}
}

func testStudent(payment string) *models.Student {
	return &models.Student{
		RegistrationID:  "REG0001",
		Name:            "Juan Dela Cruz",
		Email:           "juan@example.com",
		Language:        "Korean",
		ScheduledTime:   "10:00 AM - 1:00 PM",
		SessionInterval: "2 times per week",
		PaymentOption:   payment,
	}
}

func TestRegistrationBodyPaymentInstructions(t *testing.T) {
	tests := []struct {
		name    string
		payment string
		expect  string
		absent  []string
	}{
		{name: "gcash", payment: "GCash", expect: "GCASH PAYMENT", absent: []string{"BANK TRANSFER", "PAYPAL PAYMENT"}},
		{name: "bank transfer", payment: "Bank Transfer", expect: "BDO (Banco de Oro)", absent: []string{"GCASH PAYMENT", "PAYPAL PAYMENT"}},
		{name: "paypal", payment: "PayPal", expect: "PAYPAL PAYMENT", absent: []string{"GCASH PAYMENT", "BANK TRANSFER"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := registrationBody(testStudent(tt.payment), testConfig())
			assert.Contains(t, body, tt.expect)
			for _, other := range tt.absent {
				assert.NotContains(t, body, other)
			}
			assert.Contains(t, body, "Juan Dela Cruz")
			assert.Contains(t, body, "payments@vocabolarium.com")
			assert.Contains(t, body, "48 HOURS")
		})
	}
}

func TestApprovalBodyIncludesAssignment(t *testing.T) {
	body := approvalBody(testStudent("GCash"), "Angeline Janer", "https://meet.google.com/abc-defg-hij", testConfig())

	assert.Contains(t, body, "APPROVED")
	assert.Contains(t, body, "Angeline Janer")
	assert.Contains(t, body, "https://meet.google.com/abc-defg-hij")
	assert.Contains(t, body, "Korean course materials")
}

func TestRejectionBodyReason(t *testing.T) {
	withReason := rejectionBody(testStudent("GCash"), "Payment not received", testConfig())
	assert.Contains(t, withReason, "Reason: Payment not received")

	withoutReason := rejectionBody(testStudent("GCash"), "", testConfig())
	assert.NotContains(t, withoutReason, "Reason:")
}

func TestReminderBody(t *testing.T) {
	body := reminderBody("Juan Dela Cruz", "10:00 AM - 1:00 PM", "https://meet.google.com/abc-defg-hij")
	assert.Contains(t, body, "Dear Juan Dela Cruz")
	assert.Contains(t, body, "Class Time: 10:00 AM - 1:00 PM")
	assert.Contains(t, body, "Google Meet Link: https://meet.google.com/abc-defg-hij")
}

func TestTestBodySurfacesSettings(t *testing.T) {
	body := testBody(testConfig())
	assert.Contains(t, body, "smtp.example.com")
	assert.Contains(t, body, "587")
	assert.Contains(t, body, "noreply@vocabolarium.com")
}

func TestGenerateMeetLinkShape(t *testing.T) {
	pattern := regexp.MustCompile(`^https://meet\.google\.com/[a-z]{3}-[a-z]{4}-[a-z]{3}$`)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		link := GenerateMeetLink()
		assert.Regexp(t, pattern, link)
		seen[link] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestBuildMessageMultipart(t *testing.T) {
	m := NewMailer(testConfig(), zerolog.Nop())

	msg := m.buildMessage("juan@example.com", "Hello", "body text", &attachment{
		filename: "Korean_Course_Materials.pdf",
		data:     []byte("%PDF-1.4 fake"),
	})

	assert.Contains(t, msg, "From: Vocabolarium <noreply@vocabolarium.com>")
	assert.Contains(t, msg, "To: juan@example.com")
	assert.Contains(t, msg, "Subject: Hello")
	assert.Contains(t, msg, "multipart/mixed")
	assert.Contains(t, msg, `filename="Korean_Course_Materials.pdf"`)
	assert.Contains(t, msg, "Content-Transfer-Encoding: base64")
	// closing boundary marker present exactly once
	assert.Equal(t, 1, strings.Count(msg, "--vocabolarium-mail-boundary--"))
}
