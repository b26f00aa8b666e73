package main

import (
	"log"
	"net/http"

	"movierama/api-gateway/internal/gateway"
	"movierama/config"

	"github.com/rs/cors"
)

func main() {
	cfg := gateway.Config{
		RatingSvcURL:    config.Getenv("RATING_SVC_URL", "http://localhost:3003"),
		AnalyticsSvcURL: config.Getenv("ANALYTICS_SVC_URL", "http://localhost:3005"),
	}

	gw := gateway.NewGateway(cfg, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	addr := config.ListenAddr("8080")
	log.Println("API Gateway starting on", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
