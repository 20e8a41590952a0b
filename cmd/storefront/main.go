package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tair/storefront/internal/cart"
	cartDelivery "github.com/tair/storefront/internal/cart/delivery/http"
	cartCommand "github.com/tair/storefront/internal/cart/usecase/command"
	"github.com/tair/storefront/internal/catalog"
	"github.com/tair/storefront/internal/catalog/cache"
	"github.com/tair/storefront/internal/catalog/client"
	catalogDelivery "github.com/tair/storefront/internal/catalog/delivery/http"
	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/favorites"
	favoritesDelivery "github.com/tair/storefront/internal/favorites/delivery/http"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "storefront-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting storefront service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})
	defer redisClient.Close()

	startupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := redisClient.Ping(startupCtx).Err(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	logger.Logger.Info().Msg("Redis connection established")

	// Optional Kafka analytics publisher
	var publisher *kafka.Publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to connect to Kafka, analytics disabled")
			publisher = nil
		} else {
			defer publisher.Close()
			logger.Logger.Info().Str("brokers", brokers).Msg("Kafka analytics publisher started")
		}
	}

	var catalogAnalytics catalogDelivery.Analytics
	var cartAnalytics cartCommand.Analytics
	if publisher != nil {
		catalogAnalytics = publisher
		cartAnalytics = publisher
	}

	// Initialize stores with Wire DI and restore persisted state
	cartStore := cart.InitializeCartStore(redisClient)
	cartStore.Rehydrate(startupCtx)

	favoritesStore := favorites.InitializeFavoritesStore(redisClient)
	favoritesStore.Rehydrate(startupCtx)

	// Catalog: upstream product API with a Redis read-through cache
	productSource := client.New(getEnv("CATALOG_API_URL", client.DefaultBaseURL))
	catalogTTL, err := time.ParseDuration(getEnv("CATALOG_CACHE_TTL", "5m"))
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Invalid CATALOG_CACHE_TTL, using default")
		catalogTTL = 0
	}

	var catalogCache domain.Cache = cache.NewRedisCache(redisClient, catalogTTL)

	productHandler := catalog.InitializeProductHandler(productSource, catalogCache, favoritesStore, catalogAnalytics)
	defer productHandler.Close()

	cartHandler := cartDelivery.NewCartHandler(cartStore, cartAnalytics)
	favoritesHandler := favoritesDelivery.NewFavoritesHandler(favoritesStore)

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8080")
	server := startHTTPServer(productHandler, cartHandler, favoritesHandler, redisClient, httpPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
}

func startHTTPServer(
	productHandler *catalogDelivery.ProductHandler,
	cartHandler *cartDelivery.CartHandler,
	favoritesHandler *favoritesDelivery.FavoritesHandler,
	redisClient *redis.Client,
	port string,
) *http.Server {
	// Setup router
	router := mux.NewRouter()

	// Register routes
	productHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	favoritesHandler.RegisterRoutes(router)

	// Health check endpoint
	productHandler.RegisterHealthCheck(router, redisClient)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	catalogDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:    ":" + port,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Logger.Info().
			Str("port", port).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	return server
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
