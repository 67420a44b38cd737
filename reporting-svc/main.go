package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"anugerah-resto/auth"
	"anugerah-resto/config"
	httpapi "anugerah-resto/reporting-svc/internal/api/http"
	"anugerah-resto/reporting-svc/internal/service"
	"anugerah-resto/reporting-svc/internal/storage"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/rs/cors"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("orders", "reporting-svc-consumer")
	defer reader.Close()

	store := storage.NewStore(db, rdb)
	consumer := service.NewConsumer(reader, store)
	go consumer.Start(context.Background())

	r := mux.NewRouter()
	httpapi.NewHandler(store).RegisterRoutes(r)

	handler := cors.Default().Handler(auth.Middleware(config.ServiceToken(), r))

	port := os.Getenv("PORT")
	if port == "" {
		port = "4004"
	}

	log.Println("Reporting Service starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
