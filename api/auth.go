package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const adminRole = "admin"

type AdminClaims struct {
	Subject string `json:"sub"`
	Role    string `json:"role"`
}

// parseAdminJWT verifies an HS256 token signed with secret. Expiry is
// enforced by the parser when the token carries exp.
func parseAdminJWT(jwtStr string, secret string) (*AdminClaims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("failed to parse claims")
	}

	out := &AdminClaims{}
	out.Subject, _ = claims["sub"].(string)
	out.Role, _ = claims["role"].(string)

	return out, nil
}

func (m ApiHandler) adminAuthMiddleware(c *gin.Context) {
	if m.AdminJwtSecret == "" {
		returnErrorJsonCode(fmt.Errorf("admin routes are disabled"), c, http.StatusForbidden)
		return
	}

	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		returnErrorJsonCode(fmt.Errorf("missing bearer token"), c, http.StatusUnauthorized)
		return
	}

	claims, err := parseAdminJWT(strings.TrimPrefix(header, "Bearer "), m.AdminJwtSecret)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusUnauthorized)
		return
	}
	if claims.Role != adminRole {
		returnErrorJsonCode(fmt.Errorf("role %q may not call admin routes", claims.Role), c, http.StatusForbidden)
		return
	}

	c.Set("adminSubject", claims.Subject)
	c.Next()
}
