// Package router builds the gin engine: middleware, CORS allow-list and
// route registration. No business logic lives here.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/config"
	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/handler"
	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/middleware"
)

// New assembles the HTTP router
func New(cfg *config.Config, chatHandler *handler.ChatHandler, debugHandler *handler.DebugHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/health", debugHandler.Health)
	r.GET("/debug/time", debugHandler.Time)
	r.GET("/debug/syllabi-index", debugHandler.SyllabiIndex)
	r.POST("/api/chat", chatHandler.Chat)

	return r
}
