package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"gogram/internal/common"
	"gogram/internal/dbmysql"
	"gogram/internal/di"
)

func main() {
	log.Println("Starting photogram service...")

	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system env variables")
	}

	app, cleanup, err := di.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer cleanup()

	// Run migrations
	if err := app.DB.AutoMigrate(&dbmysql.User{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	router := mux.NewRouter()
	router.Use(common.LoggingMiddleware)

	api := router.PathPrefix("/api").Subrouter()

	// Public routes: register and login
	app.UserHandler.RegisterPublicRoutes(api)

	// Everything else requires a valid bearer token
	protected := api.NewRoute().Subrouter()
	protected.Use(common.AuthMiddleware(app.JWT))
	app.PhotoHandler.RegisterRoutes(protected)
	app.UserHandler.RegisterProtectedRoutes(protected)

	// Stored files are served unauthenticated, same as the media server
	router.PathPrefix("/media/").Handler(app.MediaServer)
	router.Handle("/health", app.MediaServer)

	srv := &http.Server{
		Addr:         ":" + app.Config.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(app.Config.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("photogram service running on port %s", app.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down photogram service...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("photogram service stopped")
}
