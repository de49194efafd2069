package main

import (
	"github.com/gin-gonic/gin"

	"github.com/MauItu/inventario-alimentos/config"
	"github.com/MauItu/inventario-alimentos/db"
	"github.com/MauItu/inventario-alimentos/logger"
	"github.com/MauItu/inventario-alimentos/route"
)

func main() {
	logger.InitializeLogger() // Initialize the logger
	defer logger.Close()      // Flush buffered log entries on exit

	cfg, err := config.ReadConfig(config.GetEnv("CONFIG_PATH", "config/development.yaml"))
	if err != nil {
		panic(err)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	if err := route.SetupRoutes(r, cfg); err != nil {
		panic(err)
	}
	defer db.Close() // Close the database connection when the main function exits

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		panic(err)
	}
}
