package dto

// BackupResponse lists the files written by a backup run
type BackupResponse struct {
	Files []string `json:"files"`
}

// TestEmailRequest names the recipient of a configuration check message
type TestEmailRequest struct {
	Recipient string `json:"recipient" binding:"required,email" example:"admin@vocabolarium.com"`
}

// BulkEmailRequest is a broadcast message for a set of recipients
type BulkEmailRequest struct {
	Recipients []string `json:"recipients" binding:"required,min=1,dive,email"`
	Subject    string   `json:"subject" binding:"required" example:"Schedule change"`
	Body       string   `json:"body" binding:"required"`
}

// BulkEmailResponse reports per-recipient delivery totals
type BulkEmailResponse struct {
	Sent   int `json:"sent" example:"8"`
	Failed int `json:"failed" example:"1"`
}

// EmailResult reports a single delivery outcome
type EmailResult struct {
	Sent    bool   `json:"sent" example:"true"`
	Message string `json:"message" example:"Email sent successfully"`
}
