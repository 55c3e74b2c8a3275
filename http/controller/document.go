package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/careerlink/company-service/utils"
)

// UpdateCompanyLogo replaces the company's logo. Logos live in a public
// bucket so the URL is directly servable.
func (ctrl *Controller) UpdateCompanyLogo(c *gin.Context) {
	ctx := c.Request.Context()

	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid company id format")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSON400(c, "Failed to get file: "+err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSON400(c, "Failed to open file: "+err.Error())
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := ctrl.Provider.Aggregator.SetLogo(ctx, companyID, file, fileHeader.Size, contentType)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Document] Failed to set logo of company %s", companyID)
		utils.JSONError(c, err)
		return
	}

	ctrl.invalidateCompanyCache(ctx, companyID)
	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Document] Logo of company %s set to %s", companyID, url)

	utils.JSON200(c, gin.H{"logo_url": url})
}

// AddCompanyDocument uploads one document into the company's private bucket
// and tracks its URL.
func (ctrl *Controller) AddCompanyDocument(c *gin.Context) {
	ctx := c.Request.Context()

	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid company id format")
		return
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		utils.JSON400(c, "Failed to get document: "+err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSON400(c, "Failed to open document: "+err.Error())
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := ctrl.Provider.Aggregator.AddDocument(ctx, companyID, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Document] Failed to add document to company %s", companyID)
		utils.JSONError(c, err)
		return
	}

	ctrl.invalidateCompanyCache(ctx, companyID)
	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Document] Added document %s to company %s", fileHeader.Filename, companyID)

	utils.JSON200(c, gin.H{"document_url": url})
}

// GetCompanyDocument answers with a presigned read URL for one private
// document, gated by the access policy.
func (ctrl *Controller) GetCompanyDocument(c *gin.Context) {
	ctx := c.Request.Context()

	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid company id format")
		return
	}
	objectName := c.Param("objectName")

	allowed, err := ctrl.Provider.Access.CanAccessDocument(ctx, companyID, objectName, utils.ExtractToken(c))
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Document] Access check failed for company %s", companyID)
		utils.JSONError(c, err)
		return
	}
	if !allowed {
		utils.JSON403(c, "Forbidden: not a member of this company or document does not exist")
		return
	}

	url, err := ctrl.Provider.Aggregator.PresignDocument(ctx, companyID, objectName, 0)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Document] Failed to presign document %s of company %s", objectName, companyID)
		utils.JSONError(c, err)
		return
	}

	c.String(200, url)
}

// DeleteCompanyDocument removes the object and its tracked URL. Deleting an
// already absent document succeeds.
func (ctrl *Controller) DeleteCompanyDocument(c *gin.Context) {
	ctx := c.Request.Context()

	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid company id format")
		return
	}
	objectName := c.Param("objectName")

	member, err := ctrl.Provider.Access.IsMember(ctx, companyID, utils.ExtractToken(c))
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Document] Membership check failed for company %s", companyID)
		utils.JSONError(c, err)
		return
	}
	if !member {
		utils.JSON403(c, "Forbidden: not a member of this company")
		return
	}

	if err := ctrl.Provider.Aggregator.RemoveDocument(ctx, companyID, objectName); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Document] Failed to remove document %s of company %s", objectName, companyID)
		utils.JSONError(c, err)
		return
	}

	ctrl.invalidateCompanyCache(ctx, companyID)
	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Document] Removed document %s from company %s", objectName, companyID)

	utils.JSON200(c, true)
}
