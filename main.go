package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/wassim-hamila/back-end/auth"
	"github.com/wassim-hamila/back-end/config"
	"github.com/wassim-hamila/back-end/db"
	"github.com/wassim-hamila/back-end/routes"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	auth.JwtSecret = []byte(cfg.JWTSecret)
	auth.TokenTTL = cfg.JWTExpire
	auth.FrontendURL = cfg.FrontendURL
	if cfg.GoogleEnabled() {
		auth.GoogleOauthConfig = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
				"openid",
			},
			Endpoint: google.Endpoint,
		}
	}

	client, err := db.Connect(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("MongoDB connection failed:", err)
	}
	defer db.Close(client)
	log.Println("Connected to MongoDB")

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      routes.Setup(cfg, client),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Println("Starting server on :" + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start:", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Server shutdown error:", err)
	}
	log.Println("Server stopped")
}
