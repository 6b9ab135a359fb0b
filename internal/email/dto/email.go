package dto

import (
	emaildomain "inbox-tldr/internal/email/domain"
)

// DefaultMarkReadLabel is the label cleared by /mark-read when none is given
const DefaultMarkReadLabel = "newsletter"

type SummarizeRequest struct {
	Emails []emaildomain.Email `json:"emails"`
}

type SummarizeResponse struct {
	TLDR     string `json:"tldr"`
	Subjects string `json:"subjects"`
}

type FocusScoreRequest struct {
	TabCount int                 `json:"tab_count" binding:"min=0"`
	Emails   []emaildomain.Email `json:"emails"`
}

type FocusScoreResponse struct {
	Score  int `json:"score"`
	Unread int `json:"unread"`
}

type MarkReadRequest struct {
	Label  string              `json:"label"`
	Emails []emaildomain.Email `json:"emails"`
}

type MarkReadResponse struct {
	Emails []emaildomain.Email `json:"emails"`
	Marked int                 `json:"marked"`
}
