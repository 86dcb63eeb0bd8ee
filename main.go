package main

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/kmdeleon/vendorbill-extraction/config"
	"github.com/kmdeleon/vendorbill-extraction/handler"
	"github.com/kmdeleon/vendorbill-extraction/logger"
	"github.com/kmdeleon/vendorbill-extraction/service"
	"github.com/kmdeleon/vendorbill-extraction/utils/billtext"
)

func main() {
	// Amounts go out as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	// Initialize configuration
	cfg := config.LoadConfig()

	log := logger.New(cfg.LogLevel)

	// Initialize PDF processor and the extraction engine
	pdfProcessor := service.NewPDFProcessor()
	parser := billtext.NewParser(log)

	// Initialize service layer
	billService := service.NewBillService(pdfProcessor, parser, log)

	// Initialize handler layer
	billHandler := handler.NewBillHandler(billService, cfg.MaxFileSize, log)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Vendor Bill Extraction",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		bills := api.Group("/bills")
		{
			bills.POST("/extract", billHandler.ExtractBill)
			bills.POST("/extract-text", billHandler.ExtractBillText)
		}
	}

	// Start server
	log.Info().Str("port", cfg.ServerPort).Msg("starting vendor bill extraction service")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
