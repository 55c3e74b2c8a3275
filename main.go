package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/careerlink/company-service/config"
	"github.com/careerlink/company-service/http/controller"
	routes "github.com/careerlink/company-service/http/route"
	infraPkg "github.com/careerlink/company-service/infra"
	"github.com/careerlink/company-service/provider"
	"github.com/careerlink/company-service/repository"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)
	repo := repository.InitRepository(infra)
	prov := provider.InitProvider(cfg, infra, repo)

	ctrl := controller.NewController(cfg, infra, repo, prov)

	router := routes.SetupRouter(ctrl)

	log.Println("HTTP Server started on :8080")
	if err := router.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
