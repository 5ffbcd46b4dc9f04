package main

import (
	"os"
	"time"

	"portfolio-payments/config"
	"portfolio-payments/database"
	routes "portfolio-payments/internal/app/http"
	stripegw "portfolio-payments/internal/infra/stripe"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	gateway := stripegw.NewGateway(config.STRIPE_SECRET_KEY)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, database.DB, gateway)

	r.Run(":" + config.PORT)
}
