package main

import (
	"log"
	"net/http"
	"os"

	"anugerah-resto/auth"
	"anugerah-resto/config"
	httpapi "anugerah-resto/loyalty-svc/internal/api/http"
	"anugerah-resto/loyalty-svc/internal/service"
	"anugerah-resto/loyalty-svc/internal/storage"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/rs/cors"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	loyaltyService := service.NewLoyaltyService(repo)

	r := mux.NewRouter()
	httpapi.NewHandler(loyaltyService).RegisterRoutes(r)

	handler := cors.Default().Handler(auth.Middleware(config.ServiceToken(), r))

	port := os.Getenv("PORT")
	if port == "" {
		port = "4003"
	}

	log.Println("Loyalty Service starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
