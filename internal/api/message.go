package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eripro/connect/internal/chat"
	"github.com/eripro/connect/internal/models"
	"github.com/eripro/connect/internal/repository"
)

type MessageHandler struct {
	users  repository.UserRepository
	unread repository.UnreadTracker
	chat   *chat.Service
	logger *zap.Logger
}

func NewMessageHandler(
	users repository.UserRepository,
	unread repository.UnreadTracker,
	chatSvc *chat.Service,
	logger *zap.Logger,
) *MessageHandler {
	return &MessageHandler{users: users, unread: unread, chat: chatSvc, logger: logger}
}

// messageView is a message plus its body parsed into renderable
// segments. Job postings carry their payload structurally and get no
// segments.
type messageView struct {
	models.Message
	Segments []models.Segment `json:"segments,omitempty"`
}

// List handles GET /v1/channels/:id/messages.
func (h *MessageHandler) List(c *gin.Context) {
	user := currentUser(c, h.users)
	if user == nil {
		return
	}

	messages, err := h.chat.Transcript(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		status := chatStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("failed to list messages", zap.Error(err))
			c.JSON(status, gin.H{"error": "failed to list messages"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	views := make([]messageView, 0, len(messages))
	for _, m := range messages {
		v := messageView{Message: m}
		if m.Kind != models.MessageJobPosting {
			v.Segments = models.ParseBody(m.Body)
		}
		views = append(views, v)
	}
	c.JSON(http.StatusOK, views)
}

type attachmentRequest struct {
	Name     string `json:"name" binding:"required"`
	MimeType string `json:"mime_type" binding:"required"`
}

type createMessageRequest struct {
	Body       string             `json:"body"`
	Attachment *attachmentRequest `json:"attachment"`
	Job        *models.JobPosting `json:"job"`
}

// Create handles POST /v1/channels/:id/messages. A message needs at
// least one of body, attachment or job payload. Attachments are turned
// into inline markers here; the kind decision belongs to the chat
// service.
func (h *MessageHandler) Create(c *gin.Context) {
	user := currentUser(c, h.users)
	if user == nil {
		return
	}

	var req createMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Body == "" && req.Attachment == nil && req.Job == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is empty"})
		return
	}
	if req.Job != nil && (req.Job.Title == "" || req.Job.Description == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job posting needs a title and description"})
		return
	}

	body := req.Body
	if req.Attachment != nil {
		url := models.AttachmentURL(req.Attachment.Name, req.Attachment.MimeType, time.Now().UnixMilli())
		body = models.AppendAttachment(body, url)
	}

	msg, err := h.chat.Post(c.Request.Context(), user, c.Param("id"), body, req.Job)
	if err != nil {
		status := chatStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("failed to create message", zap.Error(err))
			c.JSON(status, gin.H{"error": "failed to create message"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	view := messageView{Message: *msg}
	if msg.Kind != models.MessageJobPosting {
		view.Segments = models.ParseBody(msg.Body)
	}
	c.JSON(http.StatusCreated, view)
}

// Ack handles POST /v1/channels/:id/ack: the viewer opened the channel,
// so its unread count clears and stops accruing until they move on.
func (h *MessageHandler) Ack(c *gin.Context) {
	user := currentUser(c, h.users)
	if user == nil {
		return
	}

	if err := h.chat.Ack(c.Request.Context(), user, c.Param("id")); err != nil {
		status := chatStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("failed to ack channel", zap.Error(err))
			c.JSON(status, gin.H{"error": "failed to ack channel"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type unreadResponse struct {
	Total  int            `json:"total"`
	Counts map[string]int `json:"counts"`
}

// Unread handles GET /v1/unread.
func (h *MessageHandler) Unread(c *gin.Context) {
	user := currentUser(c, h.users)
	if user == nil {
		return
	}

	counts, err := h.unread.Counts(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("failed to load unread counts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load unread counts"})
		return
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	c.JSON(http.StatusOK, unreadResponse{Total: total, Counts: counts})
}
