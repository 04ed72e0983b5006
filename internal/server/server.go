package server

import (
	"fmt"
	"launch-gateway/internal/graph"
	"launch-gateway/internal/spacex"
	"launch-gateway/internal/store"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	// Environment variables
	_ "github.com/joho/godotenv/autoload"
)

type Server struct {
	port int

	db       store.Service
	resolver *graph.Resolver
}

func NewServer() *http.Server {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	baseURL := os.Getenv("SPACEX_API_URL")
	if baseURL == "" {
		baseURL = spacex.DefaultBaseURL
	}
	source := spacex.NewClient(baseURL, &http.Client{Timeout: 10 * time.Second})

	db := store.New()

	resolver, err := graph.NewResolver(source, db)
	if err != nil {
		log.Fatalf("Error building schema: %v", err)
	}

	newServer := &Server{
		port:     port,
		db:       db,
		resolver: resolver,
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", newServer.port),
		Handler:      newServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	server.RegisterOnShutdown(func() {
		if err := newServer.db.Close(); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	})

	return server
}
