package main

import (
	"context"
	"net/http"
	"time"

	"plantcompareapi/internal/api"
	"plantcompareapi/internal/api/meta"
	"plantcompareapi/internal/api/plants"
	"plantcompareapi/internal/metrics"
	"plantcompareapi/internal/store"
	"plantcompareapi/pkg/config"
	"plantcompareapi/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {

	ctx := context.Background()
	h := &api.Handler{}

	// init logger
	logger, err := zap.NewDevelopment(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		panic(err)
	}
	logger.Info("Server starting...")
	defer logger.Sync()
	h.Logger = logger

	// init validator
	h.Validate = validator.New()
	h.Validate.RegisterValidation("maxgraphemes", utils.MaxGraphemesValidator)

	// init mongo, optional: without it reads serve seed data and writes 503
	h.Store = &store.Store{}
	if config.ENV.DATABASE_URL != "" && config.ENV.DATABASE_NAME != "" {
		mongoServerAPI := options.ServerAPI(options.ServerAPIVersion1)
		mongoOpts := options.Client().ApplyURI(config.ENV.DATABASE_URL).SetServerAPIOptions(mongoServerAPI)
		mongoCli, err := mongo.Connect(mongoOpts)
		if err != nil {
			logger.Warn("mongo connect failed, running without database", zap.Error(err))
		} else {
			defer func() {
				if err := mongoCli.Disconnect(ctx); err != nil {
					logger.Warn("mongo disconnect failed", zap.Error(err))
				}
			}()
			pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			if err := mongoCli.Ping(pingCtx, readpref.Primary()); err != nil {
				logger.Warn("mongo unreachable at startup", zap.Error(err))
			}
			cancel()
			h.Store = &store.Store{
				Cli: mongoCli,
				DB:  mongoCli.Database(config.ENV.DATABASE_NAME),
			}
		}
	} else {
		logger.Warn("DATABASE_URL/DATABASE_NAME not set, serving seed data only")
	}

	// init redis, optional: enables the write rate limiter
	if config.ENV.REDIS_URL != "" {
		redisOpts, err := redis.ParseURL(config.ENV.REDIS_URL)
		if err != nil {
			logger.Warn("invalid REDIS_URL, rate limiting disabled", zap.Error(err))
		} else {
			h.RedisCli = redis.NewClient(redisOpts)
		}
	}

	router := chi.NewRouter()

	// Middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestSize(1 << 20))
	router.Use(metrics.Middleware())

	metaH := &meta.Handler{Handler: h}
	plantsH := &plants.Handler{Handler: h}

	router.Get("/", metaH.Root)
	router.Get("/schema", metaH.GetSchema)
	router.Get("/test", metaH.TestDatabase)
	router.Get("/metrics", promhttp.Handler().ServeHTTP)

	router.Get("/plants", plantsH.ListPlants)
	router.Post("/plants", h.RateLimitMiddleware(plantsH.CreatePlant))

	logger.Info("Server running", zap.String("port", config.ENV.PORT))
	if err := http.ListenAndServe(":"+config.ENV.PORT, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}

}
