package usecase

import (
	emaildomain "inbox-tldr/internal/email/domain"
	"inbox-tldr/pkg/metrics"
)

const (
	// MaxPreviewSubjects caps the number of subjects in the preview line
	MaxPreviewSubjects = 5

	focusScoreBase     = 100
	focusScoreFloor    = 10
	focusTabPenalty    = 5
	focusUnreadPenalty = 8
)

// summaryUsecase implements SummaryUsecase interface
type summaryUsecase struct{}

// NewSummaryUsecase creates a new instance of summaryUsecase
func NewSummaryUsecase() SummaryUsecase {
	return &summaryUsecase{}
}

// Summarize tallies unread emails per label and collects the subject preview
func (u *summaryUsecase) Summarize(emails []emaildomain.Email) *emaildomain.EmailSummary {
	summary := &emaildomain.EmailSummary{
		Counts:   []emaildomain.LabelCount{},
		Subjects: []string{},
	}

	// label -> position in summary.Counts
	index := make(map[string]int)
	for _, email := range emails {
		if !email.IsUnread() {
			continue
		}
		summary.Unread++

		if i, ok := index[email.Label]; ok {
			summary.Counts[i].Count++
		} else {
			index[email.Label] = len(summary.Counts)
			summary.Counts = append(summary.Counts, emaildomain.LabelCount{Label: email.Label, Count: 1})
		}

		if len(summary.Subjects) < MaxPreviewSubjects {
			summary.Subjects = append(summary.Subjects, email.Subject)
		}
	}

	metrics.AddEmailsSummarized("unread", summary.Unread)
	metrics.AddEmailsSummarized("read", len(emails)-summary.Unread)

	return summary
}

// FocusScore drops 5 points per open tab and 8 per unread email, never below 10
func (u *summaryUsecase) FocusScore(tabCount int, emails []emaildomain.Email) (int, int) {
	unread := countUnread(emails)
	// past this many tabs the floor is reached, and larger counts would overflow
	if tabCount > (focusScoreBase-focusScoreFloor)/focusTabPenalty {
		return focusScoreFloor, unread
	}
	score := focusScoreBase - tabCount*focusTabPenalty - unread*focusUnreadPenalty
	if score < focusScoreFloor {
		score = focusScoreFloor
	}
	return score, unread
}

func (u *summaryUsecase) MarkLabelRead(label string, emails []emaildomain.Email) ([]emaildomain.Email, int) {
	updated := make([]emaildomain.Email, len(emails))
	copy(updated, emails)

	marked := 0
	for i := range updated {
		if updated[i].Label == label && updated[i].IsUnread() {
			updated[i].Unread = false
			marked++
		}
	}
	return updated, marked
}

func countUnread(emails []emaildomain.Email) int {
	n := 0
	for _, email := range emails {
		if email.IsUnread() {
			n++
		}
	}
	return n
}
