package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movierama/broker"
	"movierama/config"
	"movierama/opinions-svc/internal/service"
	"movierama/opinions-svc/internal/storage"
)

func main() {
	repair := flag.Bool("repair", false, "recompute movie aggregates from the opinions ledger and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := config.MustInitMongo()
	defer client.Disconnect(context.Background())

	store := storage.NewStore(client, config.MongoDBName())
	if err := store.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to ensure indexes:", err)
	}

	if *repair {
		count, err := store.RecomputeAggregates(ctx)
		if err != nil {
			log.Fatal("Aggregate repair failed:", err)
		}
		log.Printf("Recomputed aggregates for %d movies", count)
		return
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	connector := broker.NewConnector(config.BrokerURL())
	go connector.Run(ctx)

	consumer := service.NewConsumer(store, storage.NewAggregateCache(rdb, 24*time.Hour))

	log.Println("Opinions Service consuming from", broker.QueueName)
	for {
		ch, err := connector.WaitChannel(ctx)
		if err != nil {
			break
		}

		deliveries, err := broker.Consume(ch, config.ConsumerPrefetch())
		if err != nil {
			log.Printf("Failed to start consuming: %v", err)
			select {
			case <-ctx.Done():
			case <-time.After(time.Second):
			}
			if ctx.Err() != nil {
				break
			}
			continue
		}

		// Returns when the context is cancelled or the channel drops;
		// the connector redials and we resubscribe.
		consumer.Start(ctx, deliveries)
		if ctx.Err() != nil {
			break
		}
		log.Println("Broker channel closed, resubscribing...")
	}

	log.Println("Opinions Service stopped")
}
