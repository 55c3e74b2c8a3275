package utils

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/careerlink/company-service/config"
)

func ExtractToken(c *gin.Context) string {
	if token, err := c.Cookie("access_token"); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.Fields(authHeader)
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return parts[1]
	}
	return ""
}

func ParseToken(tokenString string, config *config.EnvConfig) (*jwt.Token, error) {
	secret := []byte(config.JWT.SecretKey)
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
}

func InjectClaimsToContext(c *gin.Context, claims jwt.MapClaims) error {
	sub, ok := claims["sub"].(string)
	if !ok {
		return errors.New("invalid sub claim")
	}
	if _, err := uuid.Parse(sub); err != nil {
		return errors.New("invalid sub claim")
	}
	c.Set("user_id", sub)

	if role, ok := claims["role"].(string); ok {
		c.Set("role", role)
	} else {
		c.Set("role", "")
	}
	return nil
}

// SubjectFromToken extracts the subject id from a bearer credential without
// re-verifying the signature. Verification happened at the gateway and again
// in the auth middleware; this helper only needs the claim.
func SubjectFromToken(tokenString string) (uuid.UUID, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	tokenString = strings.TrimPrefix(tokenString, "bearer ")

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return uuid.Nil, errors.New("malformed token: " + err.Error())
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("token has no sub claim")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("invalid sub claim: " + err.Error())
	}
	return userID, nil
}
