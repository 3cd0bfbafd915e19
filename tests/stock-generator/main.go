package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type StockAdjustment struct {
	ProductID string `json:"product_id"`
	Operation string `json:"operation"`
	Quantity  int    `json:"quantity"`
}

func generateAdjustment(productIDs []string) StockAdjustment {
	adj := StockAdjustment{
		ProductID: productIDs[rand.Intn(len(productIDs))],
		Operation: "add",
		Quantity:  rand.Intn(20) + 1,
	}
	// occasional stock take
	if rand.Intn(10) == 0 {
		adj.Operation = "set"
		adj.Quantity = rand.Intn(100)
	}
	return adj
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "stock-adjustments", "stock adjustments topic")
	interval := flag.Duration("interval", 2*time.Second, "delay between messages")
	flag.Parse()

	productIDs := flag.Args()
	if len(productIDs) == 0 {
		log.Fatal("usage: stock-generator [flags] <product-id>...")
	}

	writer := &kafka.Writer{
		Addr:  kafka.TCP(strings.Split(*brokers, ",")...),
		Topic: *topic,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			adj := generateAdjustment(productIDs)
			data, _ := json.Marshal(adj)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(adj.ProductID), Value: data}); err != nil {
				log.Println("failed to write adjustment:", err)
				continue
			}
			log.Println("adjustment sent", adj.ProductID, adj.Operation, adj.Quantity)
		case <-ctx.Done():
			return
		}
	}
}
