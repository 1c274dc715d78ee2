package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/hedgeanalytics/bis-widgets-go/internal/api/handlers"
	"github.com/hedgeanalytics/bis-widgets-go/internal/chart"
	"github.com/hedgeanalytics/bis-widgets-go/internal/config"
	"github.com/hedgeanalytics/bis-widgets-go/internal/middleware"
	"github.com/hedgeanalytics/bis-widgets-go/internal/widgets"
)

// SetupRoutes attaches middleware and registers every endpoint on the router.
//
// Parameters:
//
//	router: The Gin engine to configure.
//	cfg: The application configuration.
//	fetcher: The BIS upstream client.
//	renderer: The chart renderer, or nil to disable chart rendering.
//	logger: The application logger.
func SetupRoutes(router *gin.Engine, cfg *config.Config, fetcher handlers.Fetcher, renderer *chart.Renderer, logger *logrus.Logger) {
	router.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	creditHandler := handlers.NewCreditHandler(fetcher, renderer, logger)
	widgetsHandler := handlers.NewWidgetsHandler(widgets.NewRegistry())
	healthHandler := handlers.NewHealthHandler(logger)

	router.GET("/", healthHandler.GetRoot)
	router.GET("/health", healthHandler.GetHealth)
	router.GET("/widgets.json", widgetsHandler.GetWidgets)
	router.GET("/bis_credit_table", creditHandler.GetCreditTable)
	router.GET("/bis_credit_chart", creditHandler.GetCreditChart)
}
