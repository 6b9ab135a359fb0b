package delivery

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	emaildto "inbox-tldr/internal/email/dto"
	"inbox-tldr/internal/email/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// SummaryHandler handles inbox summary API endpoints
type SummaryHandler struct {
	summaryUsecase usecase.SummaryUsecase
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryUsecase usecase.SummaryUsecase) *SummaryHandler {
	return &SummaryHandler{
		summaryUsecase: summaryUsecase,
	}
}

// POST /summarize
// Summarize counts unread emails per label and previews their subjects
func (h *SummaryHandler) Summarize(c *gin.Context) {
	var req emaildto.SummarizeRequest
	if !bindEmails(c, &req, "failed to summarize emails") {
		return
	}

	summary := h.summaryUsecase.Summarize(req.Emails)

	c.JSON(http.StatusOK, emaildto.SummarizeResponse{
		TLDR:     summary.TLDR(),
		Subjects: summary.SubjectLine(),
	})
}

// POST /focus-score
func (h *SummaryHandler) FocusScore(c *gin.Context) {
	var req emaildto.FocusScoreRequest
	if !bindEmails(c, &req, "failed to score emails") {
		return
	}

	score, unread := h.summaryUsecase.FocusScore(req.TabCount, req.Emails)

	c.JSON(http.StatusOK, emaildto.FocusScoreResponse{
		Score:  score,
		Unread: unread,
	})
}

// POST /mark-read
// MarkRead clears the unread flag on every email with the given label (default "newsletter")
func (h *SummaryHandler) MarkRead(c *gin.Context) {
	var req emaildto.MarkReadRequest
	if !bindEmails(c, &req, "failed to mark emails read") {
		return
	}

	label := req.Label
	if label == "" {
		label = emaildto.DefaultMarkReadLabel
	}

	emails, marked := h.summaryUsecase.MarkLabelRead(label, req.Emails)

	c.JSON(http.StatusOK, emaildto.MarkReadResponse{
		Emails: emails,
		Marked: marked,
	})
}

// bindEmails decodes the request body. Unparseable bodies are the caller's fault (400);
// well-formed JSON of the wrong shape is answered as a server error.
func bindEmails(c *gin.Context, req interface{}, failMsg string) bool {
	err := decodeBody(c, req)
	if err == nil {
		return true
	}
	_ = c.Error(err)

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
	return false
}

// decodeBody binds the JSON body into req. A top-level null is a type error,
// not an empty request.
func decodeBody(c *gin.Context, req interface{}) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return &json.UnmarshalTypeError{Value: "null", Type: reflect.TypeOf(req).Elem()}
	}
	return binding.JSON.BindBody(body, req)
}
