package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eripro/connect/internal/repository"
	"github.com/eripro/connect/internal/summary"
)

type SummaryHandler struct {
	users   repository.UserRepository
	unread  repository.UnreadTracker
	summary *summary.Service
	logger  *zap.Logger
}

func NewSummaryHandler(
	users repository.UserRepository,
	unread repository.UnreadTracker,
	summarySvc *summary.Service,
	logger *zap.Logger,
) *SummaryHandler {
	return &SummaryHandler{users: users, unread: unread, summary: summarySvc, logger: logger}
}

// Get handles GET /v1/summary. Always 200: when the assistant is
// unconfigured or failing, the briefing itself says so.
func (h *SummaryHandler) Get(c *gin.Context) {
	user := currentUser(c, h.users)
	if user == nil {
		return
	}

	counts, err := h.unread.Counts(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("failed to load unread counts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate summary"})
		return
	}

	c.JSON(http.StatusOK, h.summary.Generate(c.Request.Context(), user, counts))
}
