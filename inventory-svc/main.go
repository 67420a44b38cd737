package main

import (
	"log"
	"net/http"
	"os"

	"anugerah-resto/auth"
	"anugerah-resto/config"
	httpapi "anugerah-resto/inventory-svc/internal/api/http"
	"anugerah-resto/inventory-svc/internal/clients"
	"anugerah-resto/inventory-svc/internal/service"
	"anugerah-resto/inventory-svc/internal/storage"
	"anugerah-resto/rpc"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/rs/cors"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter("stock-movements")
	defer kafkaWriter.Close()

	repo := storage.NewPostgresRepository(db)
	marker := storage.NewRedisDebitMarker(rdb)
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	grocer := clients.NewGrocer(rpc.NewClient(rpc.Policy{
		MaxRetries: config.CallMaxRetries(),
		BaseDelay:  config.CallBaseDelay(),
		Timeout:    config.CallTimeout(),
	}, config.ServiceToken()), config.GrocerURL())

	stockService := service.NewStockService(repo, marker, publisher)
	purchaseService := service.NewPurchaseService(repo, stockService, grocer)

	r := mux.NewRouter()
	httpapi.NewHandler(stockService, purchaseService).RegisterRoutes(r)

	handler := cors.Default().Handler(auth.Middleware(config.ServiceToken(), r))

	port := os.Getenv("PORT")
	if port == "" {
		port = "4002"
	}

	log.Println("Inventory Service starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
