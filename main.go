// datagen synthesizes a consistent mock e-commerce dataset (users,
// categories, products, category links, orders, reviews) and writes it as
// newline-delimited JSON, one file per collection. Optionally it loads the
// collections into MongoDB and/or uploads the files to S3.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"datagen/database"
	"datagen/faker"
	"datagen/generators"
	"datagen/logger"
	"datagen/sink"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()
	cfg := LoadConfig()

	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "output directory for the generated files")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (defaults to DATA_SEED or the current time)")
	flag.Parse()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()
	log := logger.Log

	log.Info("starting dataset generation",
		zap.String("output_dir", cfg.OutputDir),
		zap.Int64("seed", cfg.Seed),
	)
	start := time.Now()

	f := faker.New(cfg.Seed)
	coordinator := generators.NewCoordinator(f, generators.DefaultCounts, log)
	ds, err := coordinator.Generate()
	if err != nil {
		log.Fatal("generation failed", zap.Error(err))
	}

	if err := sink.WriteDataset(cfg.OutputDir, ds, log); err != nil {
		log.Fatal("flush failed", zap.Error(err))
	}

	ctx := context.Background()
	if cfg.MongoURI != "" {
		loader, err := database.NewLoader(ctx, cfg.MongoURI, cfg.MongoDB, log)
		if err != nil {
			log.Fatal("mongo connect failed", zap.Error(err))
		}
		defer loader.Close(ctx)
		if err := loader.Load(ctx, ds); err != nil {
			log.Fatal("mongo load failed", zap.Error(err))
		}
	}

	if cfg.S3Bucket != "" {
		uploader, err := sink.NewUploader(ctx, cfg.S3Bucket, log)
		if err != nil {
			log.Fatal("s3 setup failed", zap.Error(err))
		}
		prefix := fmt.Sprintf("datasets/%s", start.UTC().Format("20060102-150405"))
		if err := uploader.UploadDataset(ctx, cfg.OutputDir, prefix); err != nil {
			log.Fatal("s3 upload failed", zap.Error(err))
		}
	}

	log.Info("dataset generation complete", zap.Duration("elapsed", time.Since(start)))
}
