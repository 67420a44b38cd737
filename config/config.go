package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
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

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

// Downstream service URLs. Defaults match the local docker-compose port
// layout: order 4000, kitchen 4001, inventory 4002, loyalty 4003.

func OrderServiceURL() string {
	return getenv("ORDER_SERVICE_URL", "http://localhost:4000")
}

func KitchenServiceURL() string {
	return getenv("KITCHEN_SERVICE_URL", "http://localhost:4001")
}

func InventoryServiceURL() string {
	return getenv("INVENTORY_SERVICE_URL", "http://localhost:4002")
}

func LoyaltyServiceURL() string {
	return getenv("LOYALTY_SERVICE_URL", "http://localhost:4003")
}

// GrocerURL points at the partner grocery shop that supplies raw ingredients.
func GrocerURL() string {
	return getenv("GROCER_URL", "http://localhost:5001")
}

// ServiceToken authenticates inter-service calls. Empty disables the check,
// which is only meant for local development.
func ServiceToken() string {
	return os.Getenv("SERVICE_TOKEN")
}

// Retry/backoff knobs for the resilient call client.

func CallMaxRetries() int {
	return getenvInt("CALL_MAX_RETRIES", 3)
}

func CallBaseDelay() time.Duration {
	return getenvDuration("CALL_BASE_DELAY", time.Second)
}

func CallTimeout() time.Duration {
	return getenvDuration("CALL_TIMEOUT", 10*time.Second)
}

// Money and loyalty policy constants. These are deployment configuration,
// never request input.

func TaxRate() float64 {
	return getenvFloat("TAX_RATE", 0.10)
}

func ServiceChargeRate() float64 {
	return getenvFloat("SERVICE_CHARGE_RATE", 0.05)
}

// PointsRate is the fraction of the order total credited as loyalty points.
func PointsRate() float64 {
	return getenvFloat("LOYALTY_POINTS_RATE", 0.01)
}

// RedemptionRate is the monetary value of one loyalty point.
func RedemptionRate() float64 {
	return getenvFloat("LOYALTY_REDEMPTION_RATE", 100)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("Warning: invalid %s=%q, using default %d", key, v, fallback)
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("Warning: invalid %s=%q, using default %v", key, v, fallback)
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("Warning: invalid %s=%q, using default %s", key, v, fallback)
	}
	return fallback
}
