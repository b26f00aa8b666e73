package main

import (
	"context"
	"log"
	"net/http"

	"movierama/broker"
	"movierama/config"
	httpapi "movierama/rating-svc/internal/api/http"
	"movierama/rating-svc/internal/service"
	"movierama/rating-svc/internal/storage"
)

func main() {
	// The broker connection is established in the background; submissions
	// fail with 503 until it is up.
	connector := broker.NewConnector(config.BrokerURL())
	go connector.Run(context.Background())

	publisher := storage.NewEventPublisher(connector)
	svc := service.NewRatingService(publisher)
	handler := httpapi.NewHandler(svc)
	router := httpapi.NewRouter(handler)

	addr := config.ListenAddr("3003")
	log.Println("Rating Service starting on", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}
