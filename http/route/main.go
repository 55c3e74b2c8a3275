package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/careerlink/company-service/http/controller"
	middlewares "github.com/careerlink/company-service/http/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(middles.CORSMiddleware)

	r.GET("/health", ctrl.Health)

	apiRoutes := r.Group("/api/v1/company")
	{
		apiRoutes.GET("/", ctrl.GetAllCompanies)
		apiRoutes.GET("/minimized", ctrl.GetAllCompaniesMinimized)
		apiRoutes.GET("/:id", ctrl.GetCompanyByID)

		authRoutes := apiRoutes.Group("")
		authRoutes.Use(middles.AuthMiddleware)
		{
			authRoutes.GET("/:id/detailed", ctrl.GetDetailedCompany)
			authRoutes.GET("/address-list/:id", ctrl.GetCompanyAddressList)

			authRoutes.POST("/", middlewares.RequireRoles("recruiter", "admin"), ctrl.CreateCompany)
			authRoutes.PUT("/", middlewares.RequireRoles("recruiter", "admin"), ctrl.UpdateCompany)
			authRoutes.DELETE("/:id", middlewares.RequireRoles("admin"), ctrl.DeleteCompany)

			authRoutes.PATCH("/logo/:id", middlewares.RequireRoles("recruiter", "admin"), ctrl.UpdateCompanyLogo)
			authRoutes.PATCH("/document/:id", middlewares.RequireRoles("recruiter", "admin"), ctrl.AddCompanyDocument)
			authRoutes.GET("/document/:id/:objectName", ctrl.GetCompanyDocument)
			authRoutes.DELETE("/document/:id/:objectName", ctrl.DeleteCompanyDocument)
		}
	}

	return r
}
