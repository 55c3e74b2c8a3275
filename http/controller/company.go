package controller

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/careerlink/company-service/entity"
	"github.com/careerlink/company-service/http/controller/dto"
	"github.com/careerlink/company-service/infra"
	"github.com/careerlink/company-service/utils"
)

const (
	cacheKeyMinimized = "company:minimized"
	cacheTTL          = 5 * time.Minute
)

func cacheKeyCompany(id uuid.UUID) string {
	return "company:" + id.String()
}

func (ctrl *Controller) invalidateCompanyCache(ctx context.Context, id uuid.UUID) {
	if err := ctrl.Infra.Redis.Delete(ctx, cacheKeyCompany(id), cacheKeyMinimized); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Company] Failed to invalidate cache for %s: %v", id, err)
	}
}

func (ctrl *Controller) GetAllCompanies(c *gin.Context) {
	ctx := c.Request.Context()

	companies, err := ctrl.Repository.CompanyRepo.FindAll(ctx)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Company] Failed to list companies")
		utils.JSONError(c, err)
		return
	}

	utils.JSON200(c, companies)
}

func (ctrl *Controller) GetAllCompaniesMinimized(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []entity.CompanyMinimized
	if err := ctrl.Infra.Redis.Get(ctx, cacheKeyMinimized, &cached); err == nil {
		utils.JSON200(c, cached)
		return
	} else if !errors.Is(err, infra.ErrCacheMiss) {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Company] Cache read failed: %v", err)
	}

	companies, err := ctrl.Repository.CompanyRepo.FindAllMinimized(ctx)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Company] Failed to list minimized companies")
		utils.JSONError(c, err)
		return
	}

	if err := ctrl.Infra.Redis.Set(ctx, cacheKeyMinimized, companies, cacheTTL); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Company] Cache write failed: %v", err)
	}

	utils.JSON200(c, companies)
}

func (ctrl *Controller) GetCompanyByID(c *gin.Context) {
	ctx := c.Request.Context()

	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid company id format")
		return
	}

	var cached entity.Company
	if err := ctrl.Infra.Redis.Get(ctx, cacheKeyCompany(companyID), &cached); err == nil {
		utils.JSON200(c, cached)
		return
	}

	company, err := ctrl.Repository.CompanyRepo.FindByID(ctx, companyID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	if err := ctrl.Infra.Redis.Set(ctx, cacheKeyCompany(companyID), company, cacheTTL); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Company] Cache write failed: %v", err)
	}

	utils.JSON200(c, company)
}

// GetDetailedCompany answers with the fully hydrated company view. Any
// downstream failure fails the whole read.
func (ctrl *Controller) GetDetailedCompany(c *gin.Context) {
	ctx := c.Request.Context()

	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid company id format")
		return
	}

	details, err := ctrl.Provider.Aggregator.GetDetails(ctx, companyID, utils.ExtractToken(c))
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Company] Failed to hydrate company %s", companyID)
		utils.JSONError(c, err)
		return
	}

	utils.JSON200(c, details)
}

func (ctrl *Controller) GetCompanyAddressList(c *gin.Context) {
	ctx := c.Request.Context()

	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid company id format")
		return
	}

	addresses, err := ctrl.Provider.Aggregator.GetAddressList(ctx, companyID, utils.ExtractToken(c))
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Company] Failed to resolve addresses of company %s", companyID)
		utils.JSONError(c, err)
		return
	}

	utils.JSON200(c, addresses)
}

func (ctrl *Controller) CreateCompany(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request body: "+err.Error())
		return
	}

	company := entity.Company{
		Name:                 req.Name,
		Description:          req.Description,
		EmployeesNumberRange: req.EmployeesNumberRange,
		SiretNumber:          req.SiretNumber,
		AddressIDList:        req.AddressIDList,
		DocumentsURL:         []string{},
	}

	if err := ctrl.Repository.CompanyRepo.Create(ctx, &company); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Company] Failed to create company")
		utils.JSONError(c, err)
		return
	}

	ctrl.invalidateCompanyCache(ctx, company.ID)
	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Company] Created company %s", company.ID)

	utils.JSON200(c, company)
}

// UpdateCompany writes the full record back. The version sent by the client
// guards against lost updates: a stale version yields 409. The logo URL and
// document list are owned by their own endpoints and preserved here.
func (ctrl *Controller) UpdateCompany(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request body: "+err.Error())
		return
	}

	stored, err := ctrl.Repository.CompanyRepo.FindByID(ctx, req.ID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	stored.Name = req.Name
	stored.Description = req.Description
	stored.EmployeesNumberRange = req.EmployeesNumberRange
	stored.SiretNumber = req.SiretNumber
	stored.AddressIDList = req.AddressIDList
	stored.Version = req.Version

	if err := ctrl.Repository.CompanyRepo.Update(ctx, stored); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Company] Failed to update company %s", req.ID)
		utils.JSONError(c, err)
		return
	}

	ctrl.invalidateCompanyCache(ctx, req.ID)
	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Company] Updated company %s", req.ID)

	utils.JSON200(c, stored)
}

func (ctrl *Controller) DeleteCompany(c *gin.Context) {
	ctx := c.Request.Context()

	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid company id format")
		return
	}

	if err := ctrl.Repository.CompanyRepo.Delete(ctx, companyID); err != nil {
		utils.JSONError(c, err)
		return
	}

	ctrl.invalidateCompanyCache(ctx, companyID)
	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Company] Deleted company %s", companyID)

	utils.JSON200(c, true)
}

// Health reports liveness including the storage backend.
func (ctrl *Controller) Health(c *gin.Context) {
	ctx := c.Request.Context()

	if err := ctrl.Infra.Minio.Health(ctx); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Health] Storage backend check failed")
		utils.JSON500(c, "storage backend unavailable")
		return
	}

	utils.JSON200(c, gin.H{"status": "ok"})
}
