package main

import (
	"fmt"
	"log"
	"os"

	"github.com/nutrilens/backend/config"
	httpDelivery "github.com/nutrilens/backend/internal/delivery/http"
	"github.com/nutrilens/backend/internal/infrastructure/cache"
	"github.com/nutrilens/backend/internal/infrastructure/foundation"
	"github.com/nutrilens/backend/internal/infrastructure/openfoodfacts"
	"github.com/nutrilens/backend/internal/infrastructure/userdata"
	"github.com/nutrilens/backend/internal/registry"
	"github.com/nutrilens/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting NutriLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	reg := registry.MustNew()
	log.Printf("Nutrient registry: %d canonical entries", len(reg.Entries()))

	memoryCache := cache.NewMemoryCache(cfg.Cache.TTL)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	offClient := openfoodfacts.NewClient(cfg.OpenFoodFacts.BaseURL)
	if cfg.Server.Environment == "development" {
		offClient.SetDebug(true)
		log.Printf("Open Food Facts client debug mode enabled")
	}
	log.Printf("Open Food Facts API: %s", cfg.OpenFoodFacts.BaseURL)

	foundationStore := foundation.NewStore(cfg.Foundation.DataPath, memoryCache)
	log.Printf("Foundation dataset: %s", cfg.Foundation.DataPath)

	userStore, err := userdata.NewStore(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open user database: %v", err)
	}
	defer userStore.Close()
	log.Printf("User database: %s", userStore.Path())

	searchService := usecase.NewSearchService(offClient, foundationStore, userStore)
	nutritionService := usecase.NewNutritionService(reg, offClient, foundationStore, userStore, userStore)
	goalService := usecase.NewGoalService(reg, userStore)

	handler := httpDelivery.NewHandler(searchService, nutritionService, goalService)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
