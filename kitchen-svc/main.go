package main

import (
	"log"
	"net/http"
	"os"

	"anugerah-resto/auth"
	"anugerah-resto/config"
	httpapi "anugerah-resto/kitchen-svc/internal/api/http"
	"anugerah-resto/kitchen-svc/internal/service"
	"anugerah-resto/kitchen-svc/internal/storage"

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
	kitchenService := service.NewKitchenService(repo, publisher)

	r := mux.NewRouter()
	httpapi.NewHandler(kitchenService).RegisterRoutes(r)

	handler := cors.Default().Handler(auth.Middleware(config.ServiceToken(), r))

	port := os.Getenv("PORT")
	if port == "" {
		port = "4001"
	}

	log.Println("Kitchen Service starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
