package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/tasklite/task-service/internal/config"
	"github.com/tasklite/task-service/internal/email"
	"github.com/tasklite/task-service/internal/handler"
	"github.com/tasklite/task-service/internal/middleware"
	"github.com/tasklite/task-service/internal/repository"
	"github.com/tasklite/task-service/internal/service"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}
	if err := repository.EnsureSchema(db); err != nil {
		logger.Fatalf("Failed to prepare schema: %v", err)
	}

	// Initialize layers
	users := repository.NewUserRepository(db)
	tasks := repository.NewTaskRepository(db)
	mailer := email.NewSender(cfg, logger)
	authSvc := service.NewAuthService(users, logger, mailer)
	tokenSvc := service.NewTokenService(cfg)
	taskSvc := service.NewTaskService(tasks, logger)
	h := handler.NewHandler(authSvc, tokenSvc, taskSvc, logger)

	// Setup router
	r := handler.Router(h, mux.MiddlewareFunc(middleware.Auth(tokenSvc, users)))
	r.Use(middleware.RequestID(logger))

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
