package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SubjectSeparator joins subjects in the preview line
const SubjectSeparator = " • "

// LabelCount is the number of unread emails carrying one label
type LabelCount struct {
	Label string
	Count int
}

// EmailSummary is the tally of one batch of unread emails.
// Counts are kept in the order labels were first seen.
type EmailSummary struct {
	Unread   int
	Counts   []LabelCount
	Subjects []string
}

// TLDR renders e.g. "2 new emails: 1 work, 1 personal"
func (s *EmailSummary) TLDR() string {
	parts := make([]string, 0, len(s.Counts))
	for _, lc := range s.Counts {
		parts = append(parts, strconv.Itoa(lc.Count)+" "+lc.Label)
	}
	return fmt.Sprintf("%d new emails: ", s.Unread) + strings.Join(parts, ", ")
}

// SubjectLine renders the subject preview
func (s *EmailSummary) SubjectLine() string {
	return strings.Join(s.Subjects, SubjectSeparator)
}
