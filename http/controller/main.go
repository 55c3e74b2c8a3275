package controller

import (
	"github.com/careerlink/company-service/config"
	"github.com/careerlink/company-service/infra"
	"github.com/careerlink/company-service/provider"
	"github.com/careerlink/company-service/repository"
)

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository
	Provider   *provider.Provider
}

func NewController(config *config.Config, infra *infra.Infra, repo *repository.Repository, prov *provider.Provider) *Controller {
	if repo == nil {
		panic("Failed to initialize Repository")
	}
	if prov == nil {
		panic("Failed to initialize Provider")
	}
	return &Controller{
		Config:     config,
		Infra:      infra,
		Repository: repo,
		Provider:   prov,
	}
}
