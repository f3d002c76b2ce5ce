package main

import (
	"log"
	"net/http"
	"os"

	"roikit/adapters/api"
	"roikit/internal"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := api.NewServer(internal.NewDefaultLogger(), nil)
	log.Printf("Starting API server on :%s", port)
	if err := http.ListenAndServe(":"+port, server.Router()); err != nil {
		log.Fatal("Server failed:", err)
	}
}
