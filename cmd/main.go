package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bnghex/internal/domain/repository"
	"bnghex/internal/domain/service"
	"bnghex/internal/handler"
	"bnghex/internal/infrastructure/database"
	"bnghex/internal/infrastructure/geodesy"
	irepository "bnghex/internal/repository"
	"bnghex/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	geodesyProvider, err := geodesy.NewOSGBProvider()
	if err != nil {
		log.Fatalf("Failed to initialize OSGB projection: %v", err)
	}

	var cellsRepo repository.CellsRepository
	if os.Getenv("DATABASE_URL") != "" {
		fmt.Println("Initializing PostgreSQL client...")
		dbClient, err := database.NewPostgreSQLClientWithRetry(5, 2*time.Second)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbClient.Close()

		pgRepo := irepository.NewPostgresCellsRepository(dbClient)
		if err := pgRepo.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("Failed to ensure dataset schema: %v", err)
		}
		cellsRepo = pgRepo
		fmt.Println("✅ PostgreSQL connection successful!")
	} else {
		fmt.Println("DATABASE_URL not set, grid persistence is disabled")
	}

	indexer := service.NewIndexer(geodesyProvider)
	indexingUseCase := usecase.NewIndexingUseCase(indexer, cellsRepo)

	cellsHandler := handler.NewCellsHandler(indexingUseCase)
	gridHandler := handler.NewGridHandler(indexingUseCase)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "bnghex"})
	})

	cells := r.Group("/cells")
	{
		cells.POST("", cellsHandler.IndexCoordinate)
		cells.GET("/:id", cellsHandler.DecodeCell)
		cells.POST("/geometry", cellsHandler.IndexGeometry)
	}

	r.POST("/grids", gridHandler.GenerateGrid)
	r.GET("/datasets/:id/cells.csv", gridHandler.ExportDatasetCSV)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("bnghex server starting on :%s...\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
