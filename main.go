package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/everscale-dev/storefront-api/auth"
	"github.com/everscale-dev/storefront-api/catalog"
	"github.com/everscale-dev/storefront-api/ledger"
	"github.com/everscale-dev/storefront-api/notify"
	"github.com/everscale-dev/storefront-api/routes"
	"github.com/everscale-dev/storefront-api/store"
)

// defaultProductsURL is the external catalog used to enrich the seed set.
const defaultProductsURL = "https://fakestoreapi.com/products"

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Persistence backend
	kv := store.New(initBackend())

	// Firebase (federated sign-in + sign-out revocation)
	if err := auth.InitFirebase(context.Background()); err != nil {
		log.Printf("⚠️ Firebase not configured, federated sign-in disabled: %v", err)
	}

	// Catalog: seed immediately, enrich from the remote API in the
	// background. One shot, no retry; on failure the seed set stands.
	cat := catalog.NewStore()
	go func() {
		productsURL := os.Getenv("PRODUCTS_API_URL")
		if productsURL == "" {
			productsURL = defaultProductsURL
		}
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := cat.EnrichFromRemote(ctx, productsURL); err != nil {
			log.Printf("❌ Catalog enrichment failed, keeping seed collection: %v", err)
		}
	}()

	// Shared state
	sessions := ledger.NewManager(kv)
	reviews := ledger.NewReviewLedger(kv)
	identity := auth.NewClient()
	authHub := auth.NewHub()
	notifyHub := notify.NewHub()

	// Announce auth changes on the notification socket; released on exit.
	unsubscribe := authHub.Subscribe(func(ev auth.Event) {
		log.Printf("✅ Auth event: %s (%s)", ev.Name, ev.Username)
		notifyHub.Broadcast("auth:"+ev.Name, gin.H{"username": ev.Username})
	})
	defer unsubscribe()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Catalog:  cat,
		Sessions: sessions,
		Reviews:  reviews,
		Identity: identity,
		AuthHub:  authHub,
		Notify:   notifyHub,
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initBackend picks the blob store: Postgres when configured, Redis as the
// lighter alternative, process memory as the last resort (state is lost on
// restart).
func initBackend() store.Backend {
	if db := initDatabase(); db != nil {
		if err := db.AutoMigrate(&store.KVRecord{}); err != nil {
			log.Fatalf("❌ AutoMigrate failed: %v", err)
		}
		log.Println("✅ Using Postgres persistence")
		return store.NewGormBackend(db)
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		log.Println("✅ Using Redis persistence")
		return store.NewRedisBackend(client)
	}

	log.Println("⚠️ No persistence configured, falling back to in-memory store")
	return store.NewMemoryBackend()
}

// initDatabase sets up the GORM DB connection, or returns nil when no
// database is configured.
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		return nil
	}
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}
