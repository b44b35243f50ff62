// @title           Memory App Backend API
// @version         1.0
// @description     Backend for a personal memories app: envelope posts with weather enrichment, contact groups and life-event timelines

// @host      localhost:3000
// @BasePath  /api
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/theblakearruda/memory-app-backend/config"
	"github.com/theblakearruda/memory-app-backend/models"
	"github.com/theblakearruda/memory-app-backend/routes"
)

func main() {
	// Initialize logging first
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	// Load the .env file
	if err := godotenv.Load(); err != nil {
		config.Warning("could not load .env file: %v", err)
		// Keep going, the environment may be set another way
	} else {
		config.Info("loaded .env file")
	}

	cfg := config.GetConfig()

	// Connect to the database
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	if cfg.DBMigrationMode == "drop" {
		log.Println("warning: running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("drop and recreate failed: %v", err)
		}
	} else {
		// Default AutoMigrate only adds new columns and tables
		if err := autoMigrate(db); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}

	// Redis backs the shared rate limiter and the health probe; the server
	// runs without it
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	r := routes.SetupRouter(db, redisClient, cfg)

	port := cfg.ServerPort
	if port == "" {
		port = "3000"
	}

	config.Info("server running on http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		config.Error("failed to start server: %v", err)
		os.Exit(1)
	}
}

// initDB initializes the database connection
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	fmt.Println("Database connection established")
	return db, nil
}

// autoMigrate migrates all models (only adds new columns and tables)
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Envelope{},
		&models.Group{},
		&models.Person{},
		&models.GroupMember{},
		&models.LifeEvent{},
	)

	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables drops and recreates all tables
func dropAndRecreateTables(db *gorm.DB) error {
	// Warning: this drops all data
	log.Println("dropping and recreating all tables, all data will be lost")

	db.Exec("SET FOREIGN_KEY_CHECKS = 0")
	defer db.Exec("SET FOREIGN_KEY_CHECKS = 1")

	var tables []string
	if err := db.Raw("SHOW TABLES").Scan(&tables).Error; err != nil {
		return fmt.Errorf("failed to get table names: %w", err)
	}

	for _, table := range tables {
		log.Printf("dropping table: %s", table)
		if err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS `%s`", table)).Error; err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}

	log.Println("recreating all tables")
	return autoMigrate(db)
}
