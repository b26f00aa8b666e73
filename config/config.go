package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func Getenv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func BrokerURL() string {
	return Getenv("RABBITMQ_URL", "amqp://localhost")
}

func MongoDBName() string {
	return Getenv("MONGO_DB", "movies-db")
}

func ListenAddr(defaultPort string) string {
	return ":" + Getenv("PORT", defaultPort)
}

// ConsumerPrefetch bounds how many deliveries the broker hands out ahead of
// acknowledgment. The default of 1 processes messages strictly one at a time.
func ConsumerPrefetch() int {
	n, err := strconv.Atoi(Getenv("CONSUMER_PREFETCH", "1"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func MustInitMongo() *mongo.Client {
	uri := Getenv("MONGO_URI", "mongodb://localhost:27017")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	return client
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}
