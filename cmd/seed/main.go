// Package main loads a tag and ingredient catalog into the Foodgram database.
//
// The catalog is a JSON file:
//
//	{
//	  "tags": [{"name": "Breakfast", "color": "#E26C2D", "slug": "breakfast"}],
//	  "ingredients": [{"name": "мука", "measurement_unit": "г"}]
//	}
//
// Entries that already exist are skipped, so the tool can be re-run.
//
// Usage:
//
//	DATABASE_PATH=~/Foodgram/foodgram.db go run ./cmd/seed -catalog data/catalog.json
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foodgramapp/foodgram-server/internal/authz"
	"github.com/foodgramapp/foodgram-server/internal/config"
	"github.com/foodgramapp/foodgram-server/internal/logger"
	"github.com/foodgramapp/foodgram-server/internal/service"
	"github.com/foodgramapp/foodgram-server/internal/store/sqlite"
)

var catalogPath = flag.String("catalog", "data/catalog.json", "Path to the JSON catalog to load")

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	catalog, err := readCatalog(*catalogPath)
	if err != nil {
		log.Fatal("Failed to read catalog", "path", *catalogPath, "error", err)
	}

	s, err := sqlite.Open(cfg.Database.Path, log.Logger)
	if err != nil {
		log.Fatal("Failed to open store", "path", cfg.Database.Path, "error", err)
	}
	defer s.Close()

	enforcer, err := authz.NewEnforcer(cfg.Auth.PolicyPath)
	if err != nil {
		log.Fatal("Failed to load authorization policy", "error", err)
	}

	loader := &catalogLoader{
		tags:        service.NewTagService(s, enforcer, log.Logger),
		ingredients: service.NewIngredientService(s, enforcer, log.Logger),
		logger:      log.Logger,
	}

	result, err := loader.Load(context.Background(), catalog)
	if err != nil {
		log.Fatal("Failed to load catalog", "error", err)
	}

	log.Info("Catalog loaded",
		"tags_created", result.TagsCreated,
		"tags_skipped", result.TagsSkipped,
		"ingredients_created", result.IngredientsCreated,
		"ingredients_skipped", result.IngredientsSkipped,
	)
}
