package main

import (
	"context"
	"time"

	"plantcompareapi/internal/store"
	"plantcompareapi/pkg/config"
	"plantcompareapi/pkg/seed"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"
)

// One-shot loader that inserts the curated seed plants into the configured
// database. Skips loading when the collection already has documents.
func main() {

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if config.ENV.DATABASE_URL == "" || config.ENV.DATABASE_NAME == "" {
		logger.Fatal("DATABASE_URL and DATABASE_NAME must be set")
	}

	mongoServerAPI := options.ServerAPI(options.ServerAPIVersion1)
	mongoOpts := options.Client().ApplyURI(config.ENV.DATABASE_URL).SetServerAPIOptions(mongoServerAPI)
	mongoCli, err := mongo.Connect(mongoOpts)
	if err != nil {
		logger.Fatal("mongo connect failed", zap.Error(err))
	}
	defer func() {
		if err := mongoCli.Disconnect(ctx); err != nil {
			logger.Warn("mongo disconnect failed", zap.Error(err))
		}
	}()
	if err := mongoCli.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal("mongo unreachable", zap.Error(err))
	}

	db := mongoCli.Database(config.ENV.DATABASE_NAME)
	s := &store.Store{Cli: mongoCli, DB: db}

	count, err := db.Collection(config.PLANT_COLLECTION).CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Fatal("count failed", zap.Error(err))
	}
	if count > 0 {
		logger.Info("collection already seeded, nothing to do", zap.Int64("documents", count))
		return
	}

	for _, p := range seed.Plants() {
		id, err := s.Create(ctx, config.PLANT_COLLECTION, &p)
		if err != nil {
			logger.Fatal("insert failed", zap.String("name", p.Name), zap.Error(err))
		}
		logger.Info("inserted", zap.String("name", p.Name), zap.String("id", id.Hex()))
	}

	logger.Info("seed complete")

}
