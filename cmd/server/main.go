package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Aishwarya-Deepak/FSD/internal/cache"
	"github.com/Aishwarya-Deepak/FSD/internal/config"
	h "github.com/Aishwarya-Deepak/FSD/internal/http"
	"github.com/Aishwarya-Deepak/FSD/internal/payment"
	"github.com/Aishwarya-Deepak/FSD/internal/repository"
	"github.com/Aishwarya-Deepak/FSD/internal/service"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()

	// Set up MongoDB connection. A failure here is logged, not fatal: the
	// payment and sanity routes don't need the store, and store-backed
	// routes return 500 per request until the process is restarted.
	var contactRepo repository.ContactRepository
	var productRepo repository.ProductRepository

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	mongoDB, err := repository.ConnectMongoDB(connectCtx, cfg.MongoURI, cfg.MongoDBName)
	cancel()
	if err != nil {
		log.Printf("MongoDB connection failed: %v (store-backed routes will fail)", err)
		contactRepo = repository.NewUnavailableContactRepository()
		productRepo = repository.NewUnavailableProductRepository()
	} else {
		log.Printf("Connected to MongoDB at %s", cfg.MongoURI)
		contactRepo = repository.NewMongoContactRepository(mongoDB)
		productRepo = repository.NewMongoProductRepository(mongoDB)
		defer mongoDB.Client().Disconnect(ctx)
	}

	// Redis backs the product-list cache; without it the catalog reads
	// straight from the store.
	var productCache cache.ProductCache
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection failed: %v (product cache disabled)", err)
		redisClient.Close()
		productCache = cache.NopCache{}
	} else {
		log.Printf("Connected to Redis at %s", cfg.RedisAddr)
		productCache = cache.NewRedisCache(redisClient)
		defer redisClient.Close()
	}

	catalog := service.NewCatalogService(productRepo, productCache)
	charger := payment.NewStripeCharger(cfg.StripeSecretKey)

	router := h.NewRouter(h.RouterConfig{
		Production:     cfg.Production,
		StaticDir:      cfg.StaticDir,
		RequestTimeout: cfg.RequestTimeout,
	},
		h.NewContactHandler(contactRepo),
		h.NewPaymentHandler(charger),
		h.NewProductHandler(catalog),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running at http://localhost:%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
