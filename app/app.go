package app

import (
	"fmt"
	"os"

	"bulk-product-editor/app/controller"
	"bulk-product-editor/app/router"
	"bulk-product-editor/db"
	"bulk-product-editor/repository"
	"bulk-product-editor/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Get platform credentials from environment variables
	endpoint := os.Getenv("SHOPIFY_ADMIN_API_URL")
	if endpoint == "" {
		return fmt.Errorf("SHOPIFY_ADMIN_API_URL environment variable is not set")
	}
	accessToken := os.Getenv("SHOPIFY_ACCESS_TOKEN")
	if accessToken == "" {
		return fmt.Errorf("SHOPIFY_ACCESS_TOKEN environment variable is not set")
	}

	// Initialize platform service
	platformService, err := service.NewPlatformService(endpoint, accessToken)
	if err != nil {
		return err
	}

	// Initialize repository
	stagedRepo := repository.NewStagedProductRepository()

	// Notices go to the application log on the server side
	notifier := service.NewLogNotifier()

	// Initialize domain services
	stagingService := service.NewStagingService(stagedRepo, notifier)
	bulkService := service.NewBulkAttributeService(platformService, notifier)

	// Create controllers
	controllers := &router.Controllers{
		Product:   controller.NewProductController(platformService, stagedRepo, stagingService),
		Metafield: controller.NewMetafieldController(bulkService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
