package main

import (
	"context"
	"log"
	"net/http"

	httpapi "movierama/analytics-svc/internal/api/http"
	"movierama/analytics-svc/internal/service"
	"movierama/analytics-svc/internal/storage"
	"movierama/config"
)

func main() {
	client := config.MustInitMongo()
	defer client.Disconnect(context.Background())

	rdb := config.MustInitRedis()
	defer rdb.Close()

	store := storage.NewStore(client, config.MongoDBName())
	cache := storage.NewCacheReader(rdb)

	svc := service.NewAnalyticsService(store, cache)
	recommender := service.NewRecommender(store, store)
	handler := httpapi.NewHandler(svc, recommender)
	router := httpapi.NewRouter(handler)

	addr := config.ListenAddr("3005")
	log.Println("Analytics Service starting on", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}
