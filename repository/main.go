package repository

import (
	"github.com/careerlink/company-service/infra"
)

type Repository struct {
	CompanyRepo *CompanyRepository
}

var repository *Repository

func InitRepository(infra *infra.Infra) *Repository {
	repository = &Repository{
		CompanyRepo: NewCompanyRepository(infra.Postgres.DB),
	}
	return repository
}

func GetRepository() *Repository {
	if repository == nil {
		panic("repository not initialized")
	}
	return repository
}
