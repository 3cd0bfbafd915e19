package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
)

type product struct {
	ID            string `json:"id"`
	StockQuantity int    `json:"stock_quantity"`
}

// Places many concurrent single-unit orders against one product and checks
// that the number of accepted orders matches the stock it started with.
func main() {
	baseURL := flag.String("url", "http://localhost:8080/api/v1", "service base url")
	stock := flag.Int("stock", 25, "initial stock of the test product")
	buyers := flag.Int("buyers", 100, "concurrent buyers")
	flag.Parse()

	p := createProduct(*baseURL, *stock)
	fmt.Println("product", p.ID, "stock", p.StockQuantity)

	var accepted, rejected, failed atomic.Int64
	var wg sync.WaitGroup
	for i := range *buyers {
		wg.Go(func() {
			switch status := placeOrder(*baseURL, p.ID, i); status {
			case http.StatusCreated:
				accepted.Add(1)
			case http.StatusConflict:
				rejected.Add(1)
			default:
				failed.Add(1)
				fmt.Println("unexpected status", status)
			}
		})
	}
	wg.Wait()

	left := getProduct(*baseURL, p.ID).StockQuantity
	fmt.Printf("accepted %d, out of stock %d, failed %d, stock left %d\n",
		accepted.Load(), rejected.Load(), failed.Load(), left)

	if int(accepted.Load())+left != *stock {
		log.Fatal("stock does not add up")
	}
}

func createProduct(baseURL string, stock int) product {
	body, _ := json.Marshal(map[string]any{
		"name":           "Load Test Widget",
		"price":          "9.99",
		"stock_quantity": stock,
		"category":       "load-test",
	})
	resp, err := http.Post(baseURL+"/products", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatal("failed to create product: ", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		log.Fatal("failed to create product: ", resp.Status)
	}

	var p product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		log.Fatal("failed to decode product: ", err)
	}
	return p
}

func getProduct(baseURL, id string) product {
	resp, err := http.Get(baseURL + "/products/" + id)
	if err != nil {
		log.Fatal("failed to get product: ", err)
	}
	defer resp.Body.Close()

	var p product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		log.Fatal("failed to decode product: ", err)
	}
	return p
}

func placeOrder(baseURL, productID string, buyer int) int {
	body, _ := json.Marshal(map[string]any{
		"customer_name":  fmt.Sprintf("Buyer %d", buyer),
		"customer_email": fmt.Sprintf("buyer%d@example.com", buyer),
		"lines":          []map[string]any{{"product_id": productID, "quantity": 1}},
	})
	resp, err := http.Post(baseURL+"/orders", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Println("request failed:", err)
		return 0
	}
	resp.Body.Close()
	return resp.StatusCode
}
