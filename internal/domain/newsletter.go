package domain

// NewsletterResult — ответ POST /api/newsletter.
type NewsletterResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
