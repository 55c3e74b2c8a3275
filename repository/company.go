package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careerlink/company-service/entity"
	"github.com/careerlink/company-service/utils"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *entity.Company) error {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	if company.AddressIDList == nil {
		company.AddressIDList = []uuid.UUID{}
	}
	if company.DocumentsURL == nil {
		company.DocumentsURL = []string{}
	}
	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		return utils.Storage("failed to create company", err)
	}
	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var company entity.Company
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("company not found")
		}
		return nil, utils.Storage("failed to load company", err)
	}
	return &company, nil
}

func (r *CompanyRepository) FindAll(ctx context.Context) ([]entity.Company, error) {
	var companies []entity.Company
	if err := r.db.WithContext(ctx).Find(&companies).Error; err != nil {
		return nil, utils.Storage("failed to list companies", err)
	}
	return companies, nil
}

func (r *CompanyRepository) FindAllMinimized(ctx context.Context) ([]entity.CompanyMinimized, error) {
	var companies []entity.CompanyMinimized
	err := r.db.WithContext(ctx).Model(&entity.Company{}).Select("id", "name").Find(&companies).Error
	if err != nil {
		return nil, utils.Storage("failed to list companies", err)
	}
	return companies, nil
}

// Update writes the full record back, guarded by the version column. A write
// against a version that is no longer current affects zero rows and is
// rejected as a conflict instead of silently losing the concurrent update.
func (r *CompanyRepository) Update(ctx context.Context, company *entity.Company) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Company{}).
		Where("id = ? AND version = ?", company.ID, company.Version).
		Updates(map[string]interface{}{
			"name":                   company.Name,
			"logo_url":               company.LogoURL,
			"description":            company.Description,
			"employees_number_range": company.EmployeesNumberRange,
			"siret_number":           company.SiretNumber,
			"address_id_list":        company.AddressIDList,
			"documents_url":          company.DocumentsURL,
			"version":                company.Version + 1,
		})
	if res.Error != nil {
		return utils.Storage("failed to update company", res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&entity.Company{}).Where("id = ?", company.ID).Count(&count).Error; err != nil {
			return utils.Storage("failed to update company", err)
		}
		if count == 0 {
			return utils.NotFound("company not found")
		}
		return utils.Conflict("company was modified concurrently, reload and retry")
	}
	company.Version++
	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&entity.Company{}, "id = ?", id)
	if res.Error != nil {
		return utils.Storage("failed to delete company", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.NotFound("company not found")
	}
	return nil
}
