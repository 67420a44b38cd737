package main

import (
	"log"
	"net/http"
	"os"

	"anugerah-resto/auth"
	"anugerah-resto/config"
	httpapi "anugerah-resto/order-svc/internal/api/http"
	"anugerah-resto/order-svc/internal/clients"
	"anugerah-resto/order-svc/internal/service"
	"anugerah-resto/order-svc/internal/storage"
	"anugerah-resto/rpc"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/rs/cors"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	kafkaWriter := config.NewKafkaWriter("orders")
	defer kafkaWriter.Close()

	repo := storage.NewPostgresRepository(db)
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	rpcClient := rpc.NewClient(rpc.Policy{
		MaxRetries: config.CallMaxRetries(),
		BaseDelay:  config.CallBaseDelay(),
		Timeout:    config.CallTimeout(),
	}, config.ServiceToken())

	kitchen := clients.NewKitchen(rpcClient, config.KitchenServiceURL())
	inventory := clients.NewInventory(rpcClient, config.InventoryServiceURL())
	loyalty := clients.NewLoyalty(rpcClient, config.LoyaltyServiceURL())

	rates := service.Rates{
		Tax:           config.TaxRate(),
		ServiceCharge: config.ServiceChargeRate(),
		Points:        config.PointsRate(),
		Redemption:    config.RedemptionRate(),
	}
	qr := service.DefaultQRGenerator{BaseURL: config.OrderServiceURL()}

	orderService := service.NewOrderService(repo, repo, kitchen, inventory, loyalty, publisher, qr, rates)
	menuService := service.NewMenuService(repo, inventory)
	cartService := service.NewCartService(repo, repo, orderService)

	r := mux.NewRouter()
	httpapi.NewHandler(orderService, menuService, cartService).RegisterRoutes(r)

	handler := cors.Default().Handler(auth.Middleware(config.ServiceToken(), r))

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	log.Println("Order Service starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
