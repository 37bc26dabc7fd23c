package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bulk-product-editor/app/controller"
)

type Controllers struct {
	Product   *controller.ProductController
	Metafield *controller.MetafieldController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Prometheus metrics
	http.Handle("/metrics", promhttp.Handler())

	// Products page: full catalog + staged subset
	http.HandleFunc("/admin/products", controllers.Product.GetProducts)

	// Stage selected products
	http.HandleFunc("/admin/products/staged", controllers.Product.StageProducts)

	// Bulk attribute form submissions
	http.HandleFunc("/api/add-to-cart-text", controllers.Metafield.AddToCartText)
	http.HandleFunc("/api/submit-custom-note-form", controllers.Metafield.CustomNote)
	http.HandleFunc("/api/submit-stock-notification-form", controllers.Metafield.StockNotification)
}
