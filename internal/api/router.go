package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/eripro/connect/internal/middleware"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth         *AuthHandler
	Channels     *ChannelHandler
	Messages     *MessageHandler
	Users        *UserHandler
	Productivity *ProductivityHandler
	Summary      *SummaryHandler
}

// NewRouter wires the full route table. Everything under /v1 except the
// auth endpoints sits behind the JWT middleware.
func NewRouter(h Handlers, jwtSecret string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	v1.POST("/auth/register", h.Auth.Register)
	v1.POST("/auth/login", h.Auth.Login)

	authed := v1.Group("")
	authed.Use(middleware.AuthMiddleware(jwtSecret))

	authed.GET("/channels", h.Channels.List)
	authed.GET("/channels/:id/messages", h.Messages.List)
	authed.POST("/channels/:id/messages", h.Messages.Create)
	authed.POST("/channels/:id/ack", h.Messages.Ack)
	authed.POST("/dms", h.Channels.ComposeDM)
	authed.GET("/unread", h.Messages.Unread)

	authed.GET("/users/me", h.Users.GetMe)
	authed.PUT("/users/me", h.Users.UpdateMe)
	authed.GET("/users", h.Users.List)
	authed.POST("/users", h.Users.Create)
	authed.PUT("/users/:id", h.Users.Update)
	authed.DELETE("/users/:id", h.Users.Delete)

	authed.GET("/productivity", h.Productivity.List)
	authed.POST("/productivity", h.Productivity.Create)
	authed.PUT("/productivity/:id", h.Productivity.Update)
	authed.DELETE("/productivity/:id", h.Productivity.Delete)

	authed.GET("/summary", h.Summary.Get)

	return r
}
