// Package api contains the HTTP handlers. Handlers translate between
// JSON and the domain: permission decisions live in internal/policy and
// message flow in internal/chat; nothing here encodes a rule of its own.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eripro/connect/internal/chat"
	"github.com/eripro/connect/internal/middleware"
	"github.com/eripro/connect/internal/models"
	"github.com/eripro/connect/internal/repository"
)

// currentUser resolves the authenticated user behind the request. The
// token only proves the session; the store is the source of truth, so a
// user deleted mid-session gets a 401 on their next request. Returns
// nil after aborting the request when resolution fails.
func currentUser(c *gin.Context, users repository.UserRepository) *models.User {
	user, err := users.GetByID(c.Request.Context(), middleware.GetUserID(c))
	if err != nil || user == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session user no longer exists"})
		return nil
	}
	return user
}

// chatStatus maps chat service errors onto HTTP status codes.
func chatStatus(err error) int {
	switch {
	case errors.Is(err, chat.ErrChannelNotFound),
		errors.Is(err, chat.ErrRecipientNotFound):
		return http.StatusNotFound
	case errors.Is(err, chat.ErrChannelNotVisible),
		errors.Is(err, chat.ErrPostForbidden),
		errors.Is(err, chat.ErrSpecialForbidden):
		return http.StatusForbidden
	case errors.Is(err, chat.ErrSelfDM):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
