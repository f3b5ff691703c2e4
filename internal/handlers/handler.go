package handlers

import (
	"reddypet/internal/logger"
	"reddypet/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	posts service.Poster
	log   *logger.Logger
}

// NewHandler constructs the HTTP handler.
func NewHandler(posts service.Poster, log *logger.Logger) *Handler {
	return &Handler{posts: posts, log: log}
}

// InitRoutes builds the gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/api/health", h.health)

	menu := router.Group("/internal/menu")
	{
		menu.POST("/post-create", h.createPost)
	}
	return router
}
