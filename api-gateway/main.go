package main

import (
	"log"
	"net/http"
	"os"

	"anugerah-resto/api-gateway/internal/gateway"
	"anugerah-resto/config"

	"github.com/rs/cors"
)

func main() {
	gatewayConfig := gateway.Config{
		OrderSvcURL:     config.OrderServiceURL(),
		KitchenSvcURL:   config.KitchenServiceURL(),
		InventorySvcURL: config.InventoryServiceURL(),
		LoyaltySvcURL:   config.LoyaltyServiceURL(),
	}

	gw := gateway.NewGateway(gatewayConfig, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("API Gateway starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
