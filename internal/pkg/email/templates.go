package email

import (
	"fmt"
	"strings"
	"time"

	"github.com/vocabolarium/backend/internal/app/models"
)

const divider = "═══════════════════════════════════════════════════════════════"

const footer = "© 2025 Vocabolarium Language Learning Center"

// registrationBody renders the confirmation sent right after a registration
// is recorded, including instructions for the chosen payment method
func registrationBody(s *models.Student, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Dear %s,

Thank you for registering with Vocabolarium!

We have received your registration for our %s language course.

%s
YOUR REGISTRATION DETAILS
%s

Language Course: %s
Scheduled Time: %s
Session Interval: %s
Payment Method: %s
Contact Email: %s

%s
PAYMENT INSTRUCTIONS
%s

Please proceed with the payment using your selected method:

`, s.Name, s.Language, divider, divider,
		s.Language, s.ScheduledTime, s.SessionInterval, s.PaymentOption, s.Email,
		divider, divider)

	switch s.PaymentOption {
	case "GCash":
		fmt.Fprintf(&b, `GCASH PAYMENT:
Mobile Number: 0917-123-4567
Account Name: Maria Santos

Steps:
1. Open GCash app
2. Select "Send Money"
3. Enter the mobile number above
4. Enter the course amount
5. Take a screenshot of the payment confirmation
6. Send the screenshot to: %s

`, cfg.PaymentEmail)
	case "Bank Transfer":
		fmt.Fprintf(&b, `BANK TRANSFER:
Bank: BDO (Banco de Oro)
Account Name: Vocabolarium Language Center
Account Number: 1234-5678-9012

Steps:
1. Go to your bank or use online banking
2. Transfer the course amount to the account above
3. Keep the transaction receipt
4. Send a photo/scan of the receipt to: %s

`, cfg.PaymentEmail)
	case "PayPal":
		fmt.Fprintf(&b, `PAYPAL PAYMENT:
PayPal Email: %s

Steps:
1. Log in to your PayPal account
2. Select "Send Money"
3. Enter our PayPal email above
4. Enter the course amount
5. Take a screenshot of the payment confirmation
6. Send the screenshot to: %s

`, cfg.PaymentEmail, cfg.PaymentEmail)
	}

	fmt.Fprintf(&b, `After completing the payment, please email the receipt to:
%s

Include the following in your email:
- Your full name: %s
- Registered email: %s
- Language course: %s
- Payment receipt/screenshot

%s
IMPORTANT REMINDERS
%s

- Payment must be completed within 48 HOURS of registration
- NO REFUNDS are allowed once payment is confirmed
- You must STRICTLY JOIN the Google Meet link sent after approval
- Missing classes without prior notice may result in forfeiture
- Your registration will be reviewed within 24-48 hours after payment

%s
WHAT HAPPENS NEXT?
%s

1. Complete your payment
2. Send payment receipt to our email
3. Wait for approval (24-48 hours)
4. Receive tutor assignment and Google Meet link
5. Start your learning journey!

%s
NEED HELP?
%s

If you have any questions or concerns, please don't hesitate to contact us:

Email: %s
Phone: %s
Facebook: %s
YouTube: %s

We're here to help you succeed in your language learning journey!

Best regards,
The Vocabolarium Team
"Connecting Cultures Through Language"

---
%s
This is an automated message. Please do not reply directly to this email.
`, cfg.ContactEmail, s.Name, s.Email, s.Language,
		divider, divider, divider, divider, divider, divider,
		cfg.ContactEmail, cfg.ContactPhone, cfg.Facebook, cfg.YouTube, footer)

	return b.String()
}

// approvalBody renders the approval notice with the tutor assignment and
// class link
func approvalBody(s *models.Student, tutorName, meetLink string, cfg Config) string {
	return fmt.Sprintf(`Dear %s,

CONGRATULATIONS! Your registration has been APPROVED!

We are absolutely thrilled to welcome you to the Vocabolarium family! Get ready
to embark on an exciting and transformative language learning journey that will
open doors to new cultures, opportunities, and friendships.

%s
YOUR COURSE INFORMATION
%s

Language Course: %s
Your Assigned Tutor: %s
Class Schedule: %s
Session Frequency: %s
Course Duration: 1 Month (12 sessions)

%s
YOUR GOOGLE MEET LINK
%s

Your dedicated classroom link:
%s

IMPORTANT: Save this link! You'll use it for ALL your classes.

%s
BEFORE YOUR FIRST CLASS
%s

- Test your Google Meet link (click it to ensure it works)
- Download and review the attached course materials
- Prepare a notebook and pen for taking notes
- Ensure stable internet connection
- Find a quiet space for your classes
- Be ready 5 minutes before class time
- Have your camera and microphone ready

%s
CLASS POLICIES & GUIDELINES
%s

PUNCTUALITY
- Classes start ON TIME
- Late arrivals will not extend the session
- Be ready 5 minutes early

ATTENDANCE
- Notify tutor 24 hours in advance if you can't attend
- Maximum 2 excused absences per month
- Missed classes without notice cannot be made up

PARTICIPATION
- Camera must be ON during classes
- Active participation is encouraged
- Complete assigned homework

CODE OF CONDUCT
- Respect your tutor and class time
- No recording without permission
- Professional and courteous behavior

%s
COURSE MATERIALS
%s

Your %s course materials are attached to this email. Please:
- Download and save them to your device
- Print them if you prefer physical copies
- Review them before your first class
- Bring them to every session

%s
MEET YOUR TUTOR: %s
%s

Your tutor will contact you soon to:
- Introduce themselves
- Discuss your learning goals
- Answer any questions you may have
- Schedule your first class

%s
NEED SUPPORT? WE'RE HERE FOR YOU!
%s

Have questions? Technical issues? Need to reschedule?
Contact us anytime:

Email: %s
Phone/SMS: %s
Facebook: %s
YouTube: %s

Response time: Within 24 hours

We're excited to be part of your language learning journey!

Remember: Every expert was once a beginner. You've taken the first step,
and we'll be with you every step of the way!

Best regards,
The Vocabolarium Team
"Connecting Cultures Through Language"

---
P.S. Don't forget to test your Google Meet link and review your materials
before your first class!

%s
For support: %s | %s
`, s.Name, divider, divider,
		s.Language, tutorName, s.ScheduledTime, s.SessionInterval,
		divider, divider, meetLink,
		divider, divider, divider, divider, divider, divider,
		s.Language,
		divider, tutorName, divider,
		divider, divider,
		cfg.ContactEmail, cfg.ContactPhone, cfg.Facebook, cfg.YouTube,
		footer, cfg.ContactEmail, cfg.ContactPhone)
}

// rejectionBody renders the rejection notice. The reason paragraph appears
// only when a reason is given.
func rejectionBody(s *models.Student, reason string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Dear %s,

Thank you for your interest in Vocabolarium Language Learning Center.

After careful review of your registration, we regret to inform you that we
are unable to process your application at this time.

`, s.Name)

	if reason != "" {
		fmt.Fprintf(&b, "Reason: %s\n\n", reason)
	}

	fmt.Fprintf(&b, `We appreciate your interest and encourage you to:
- Contact us for more information
- Reapply when circumstances change
- Explore our other language offerings

If you have any questions, please contact us:
Email: %s
Phone: %s

Thank you for considering Vocabolarium.

Best regards,
The Vocabolarium Team

---
%s
`, cfg.ContactEmail, cfg.ContactPhone, footer)

	return b.String()
}

func reminderBody(name, classTime, meetLink string) string {
	return fmt.Sprintf(`Dear %s,

This is a friendly reminder about your upcoming class!

Class Time: %s
Google Meet Link: %s

Please join a few minutes early to ensure everything is working properly.

See you in class!

Best regards,
The Vocabolarium Team

---
%s
`, name, classTime, meetLink, footer)
}

// testBody surfaces the active SMTP settings so an operator can confirm
// which configuration produced the message
func testBody(cfg Config) string {
	return fmt.Sprintf(`This is a test email from Vocabolarium Email Service.

If you received this email, the email configuration is working correctly!

Test Details:
- Sent at: %s
- SMTP Server: %s
- SMTP Port: %d
- Sender: %s

Best regards,
Vocabolarium Team

---
%s
`, time.Now().Format(models.TimeLayout), cfg.Host, cfg.Port, cfg.SenderEmail, footer)
}
