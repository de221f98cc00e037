package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/leveltrack/server/internal/config"
	"codeberg.org/leveltrack/server/internal/googleid"
	"codeberg.org/leveltrack/server/internal/token"
	"codeberg.org/leveltrack/server/leveltrack/auth"
	"codeberg.org/leveltrack/server/leveltrack/records"
	"codeberg.org/leveltrack/server/leveltrack/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// small managed-postgres instances cap pooler connections, so keep ours modest
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	userRepo := users.NewRepository(db)
	recordRepo := records.NewRepository(db)

	issuer, err := token.NewIssuer(cfg.JWTSecret)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	verifier, err := googleid.New(ctx, cfg.GoogleClientID, cfg.GoogleClientSecret)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create google verifier: %w", err)
	}

	authService := auth.NewService(userRepo, issuer, verifier)

	router := gin.Default()

	server := &Server{
		db:          db,
		config:      cfg,
		userRepo:    userRepo,
		recordRepo:  recordRepo,
		authService: authService,
		issuer:      issuer,
		router:      router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
