package main

import (
	"codeberg.org/leveltrack/server/internal/config"
	"codeberg.org/leveltrack/server/internal/token"
	"codeberg.org/leveltrack/server/leveltrack/auth"
	"codeberg.org/leveltrack/server/leveltrack/records"
	"codeberg.org/leveltrack/server/leveltrack/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db          *pgxpool.Pool
	config      *config.Config
	userRepo    *users.Repository
	recordRepo  *records.Repository
	authService *auth.Service
	issuer      *token.Issuer
	router      *gin.Engine
}
