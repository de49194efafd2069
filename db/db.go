package db

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/MauItu/inventario-alimentos/entity"
	"github.com/MauItu/inventario-alimentos/logger"
	"github.com/MauItu/inventario-alimentos/model"
)

var DB *gorm.DB

// InitDB initializes the PostgreSQL connection and runs the migrations.
func InitDB(c *entity.Config) error {
	// Define the connection string (PostgreSQL DSN format)
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.PostgresConfig.Host, c.PostgresConfig.User, c.PostgresConfig.Password,
		c.PostgresConfig.DBName, c.PostgresConfig.Port, c.PostgresConfig.SSLMode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}

	if err := DB.AutoMigrate(&model.User{}, &model.Food{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("database connection established")
	return nil
}

func Close() {
	sqlDB, err := DB.DB()
	if err != nil {
		logger.Error("failed to retrieve sql.DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("error closing the database connection", zap.Error(err))
	}
}

func GetDBInstance() *gorm.DB {
	return DB
}
