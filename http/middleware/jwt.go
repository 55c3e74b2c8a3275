package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/careerlink/company-service/config"
	"github.com/careerlink/company-service/utils"
)

func AuthMiddleware(config *config.EnvConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := utils.ExtractToken(c)

		if tokenStr == "" {
			utils.JSON401(c, "Authorization token is required")
			c.Abort()
			return
		}

		parsedToken, err := utils.ParseToken(tokenStr, config)
		if err != nil || !parsedToken.Valid {
			utils.JSON401(c, "Invalid token")
			c.Abort()
			return
		}

		if claims, ok := parsedToken.Claims.(jwt.MapClaims); ok {
			if err := utils.InjectClaimsToContext(c, claims); err != nil {
				utils.JSON401(c, "Invalid claims")
				c.Abort()
				return
			}
		} else {
			utils.JSON401(c, "Invalid token claims")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireRoles rejects callers whose token role is not in the allowed set.
// Runs after AuthMiddleware has injected the claims.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		utils.JSON403(c, "Forbidden: insufficient role")
		c.Abort()
	}
}
