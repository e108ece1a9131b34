package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	mw "github.com/shelfmart/storefront-api/internal/api/middlewares"
	"github.com/shelfmart/storefront-api/internal/api/router"
	"github.com/shelfmart/storefront-api/internal/auth"
	"github.com/shelfmart/storefront-api/internal/cart"
	"github.com/shelfmart/storefront-api/internal/catalog"
	"github.com/shelfmart/storefront-api/internal/metrics/viewqueue"
	"github.com/shelfmart/storefront-api/internal/orders"
	"github.com/shelfmart/storefront-api/internal/store/carts"
	"github.com/shelfmart/storefront-api/internal/validate"
	"github.com/shelfmart/storefront-api/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	if err := validate.Env(); err != nil {
		log.Fatalf("config: %v", err)
	}

	addr := ":" + envOr("PORT", "3000")

	// Redis is optional: without it carts live only in process memory
	// and rate limiting is off.
	rdb := connectRedis()

	var slot cart.Slot
	if rdb != nil {
		slot = carts.NewRedisSlot(rdb)
	} else {
		slot = carts.NewMemorySlot()
	}

	views := viewqueue.Start(10000, 2)
	defer views.Shutdown()

	deps := router.Deps{
		Catalog: catalog.NewStore(catalog.Seed()),
		Carts:   cart.NewRegistry(slot),
		Orders:  orders.NewStore(),
		Users:   auth.NewMemoryStore(),
		Views:   views,
		RDB:     rdb,
	}

	sw := mw.NewRedisSlidingWindow(rdb, 3000, time.Hour, mw.PerIPKey("sw"))

	handler := utils.ApplyMiddleware(
		router.Router(deps),
		mw.RequestID,
		mw.Recovery,
		mw.Cors,
		mw.ResponseTime,
		sw.Middleware,
		mw.BodySizeLimit,
		mw.SecurityHeaders,
	)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("storefront listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// connectRedis builds a client from REDIS_URL or REDIS_ADDR, pinging it
// once. Any failure means "run without Redis", logged, not fatal.
func connectRedis() *redis.Client {
	var rdb *redis.Client
	switch {
	case os.Getenv("REDIS_URL") != "":
		opt, err := redis.ParseURL(os.Getenv("REDIS_URL"))
		if err != nil {
			log.Printf("redis: invalid REDIS_URL: %v (continuing without redis)", err)
			return nil
		}
		opt.DialTimeout = 2 * time.Second
		opt.ReadTimeout = 500 * time.Millisecond
		opt.WriteTimeout = 500 * time.Millisecond
		rdb = redis.NewClient(opt)
	case os.Getenv("REDIS_ADDR") != "":
		rdb = redis.NewClient(&redis.Options{
			Addr:         os.Getenv("REDIS_ADDR"),
			Username:     os.Getenv("REDIS_USER"),
			Password:     os.Getenv("REDIS_PASSWORD"),
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
	default:
		log.Printf("redis: not configured; carts will not survive restarts")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: ping failed: %v (continuing without redis)", err)
		return nil
	}
	log.Printf("redis: connected")
	return rdb
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
