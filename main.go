package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	reportControllers "github.com/ngocthanh-dev/cafe-admin-api/controllers/report"
	"github.com/ngocthanh-dev/cafe-admin-api/middleware"
	"github.com/ngocthanh-dev/cafe-admin-api/models"
	"github.com/ngocthanh-dev/cafe-admin-api/routes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("Starting cafe admin API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	// Gin setup
	r := gin.Default()
	r.Use(middleware.RequestID)

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db)

	// Nightly report snapshot at 2 AM, keep 7 days of snapshots
	reportDir := os.Getenv("REPORT_DIR")
	if reportDir == "" {
		reportDir = "reports"
	}
	go startDailyReportAtFixedTime(db, reportDir, 7*24*time.Hour, 2, 0)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect DB: %v", err)
	}
	return db
}

// startDailyReportAtFixedTime writes a report snapshot daily at a fixed hour
// and removes snapshots past the retention window.
func startDailyReportAtFixedTime(db *gorm.DB, reportDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("Next report snapshot scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		path, err := reportControllers.WriteSnapshot(db, reportDir)
		if err != nil {
			log.Printf("Failed to write report snapshot: %v", err)
		} else {
			log.Printf("Report snapshot written to %s", path)
		}

		cleanupOldReports(reportDir, retention)
	}
}

// cleanupOldReports removes snapshot files older than the retention duration.
func cleanupOldReports(reportDir string, retention time.Duration) {
	entries, err := os.ReadDir(reportDir)
	if err != nil {
		log.Printf("Failed to read report directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xlsx") {
			continue
		}
		path := filepath.Join(reportDir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				log.Printf("Failed to remove old report %s: %v", path, err)
			} else {
				log.Printf("Removed old report: %s", path)
			}
		}
	}
}
