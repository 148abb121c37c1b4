package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eripro/connect/internal/chat"
	"github.com/eripro/connect/internal/models"
	"github.com/eripro/connect/internal/policy"
	"github.com/eripro/connect/internal/repository"
)

type ChannelHandler struct {
	users    repository.UserRepository
	channels repository.ChannelRepository
	unread   repository.UnreadTracker
	chat     *chat.Service
	logger   *zap.Logger
}

func NewChannelHandler(
	users repository.UserRepository,
	channels repository.ChannelRepository,
	unread repository.UnreadTracker,
	chatSvc *chat.Service,
	logger *zap.Logger,
) *ChannelHandler {
	return &ChannelHandler{users: users, channels: channels, unread: unread, chat: chatSvc, logger: logger}
}

// channelView is a channel plus the viewer's unread count for it.
type channelView struct {
	models.Channel
	Unread int `json:"unread"`
}

type channelListResponse struct {
	General     []channelView `json:"general"`
	Departments []channelView `json:"departments"`
	DMs         []channelView `json:"dms"`
}

// List handles GET /v1/channels.
//
// The response is the viewer's visible channels, partitioned into
// display groups and annotated with unread counts. Channels outside the
// viewer's visibility are absent entirely, not just empty.
func (h *ChannelHandler) List(c *gin.Context) {
	user := currentUser(c, h.users)
	if user == nil {
		return
	}

	all, err := h.channels.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list channels", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list channels"})
		return
	}
	counts, err := h.unread.Counts(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("failed to load unread counts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list channels"})
		return
	}

	groups := policy.VisibleChannels(user, all)
	annotate := func(channels []models.Channel) []channelView {
		out := make([]channelView, 0, len(channels))
		for _, ch := range channels {
			out = append(out, channelView{Channel: ch, Unread: counts[ch.ID]})
		}
		return out
	}

	c.JSON(http.StatusOK, channelListResponse{
		General:     annotate(groups.General),
		Departments: annotate(groups.Departments),
		DMs:         annotate(groups.DMs),
	})
}

type composeDMRequest struct {
	RecipientEmail string `json:"recipient_email" binding:"required,email"`
	Subject        string `json:"subject"`
	Body           string `json:"body" binding:"required"`
}

type composeDMResponse struct {
	Channel *models.Channel `json:"channel"`
	Message *models.Message `json:"message"`
}

// ComposeDM handles POST /v1/dms: open (or reuse) the direct channel
// with the addressed user and deliver the first message.
func (h *ChannelHandler) ComposeDM(c *gin.Context) {
	user := currentUser(c, h.users)
	if user == nil {
		return
	}

	var req composeDMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	channel, msg, err := h.chat.ComposeDM(c.Request.Context(), user, req.RecipientEmail, req.Subject, req.Body)
	if err != nil {
		status := chatStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("failed to compose dm", zap.Error(err))
			c.JSON(status, gin.H{"error": "failed to send message"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, composeDMResponse{Channel: channel, Message: msg})
}
