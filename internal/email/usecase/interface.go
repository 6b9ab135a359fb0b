package usecase

import (
	emaildomain "inbox-tldr/internal/email/domain"
)

// SummaryUsecase defines the interface for inbox summary use cases
type SummaryUsecase interface {
	Summarize(emails []emaildomain.Email) *emaildomain.EmailSummary
	FocusScore(tabCount int, emails []emaildomain.Email) (score int, unread int)
	// MarkLabelRead returns a copy of emails with every unread email carrying label marked as read
	MarkLabelRead(label string, emails []emaildomain.Email) ([]emaildomain.Email, int)
}
