package main

import (
	"time"

	"codeberg.org/leveltrack/server/api/rest/auth"
	"codeberg.org/leveltrack/server/api/rest/health"
	"codeberg.org/leveltrack/server/api/rest/records"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.authService, server.userRepo, server.issuer)
		records.RegisterRoutes(v1, server.recordRepo, server.issuer)
	}
}
