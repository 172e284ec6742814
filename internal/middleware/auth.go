package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ArielVinis/france-barbershop/internal/config"
	domain "github.com/ArielVinis/france-barbershop/internal/domain/booking"
)

const (
	ContextUserID       = "userID"
	ContextUserRole     = "userRole"
	ContextBarberID     = "barberID"
	ContextBarbershopID = "barbershopID"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, okSub := claims["sub"].(float64)
		role, okRole := claims["role"].(string)
		if !okSub || !okRole {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		// claims opcionais conforme o papel
		barberID, _ := claims["barberId"].(float64)
		barbershopID, _ := claims["barbershopId"].(float64)

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextUserRole, role)
		c.Set(ContextBarberID, uint(barberID))
		c.Set(ContextBarbershopID, uint(barbershopID))

		c.Next()
	}
}

// RequireRole corta requests de papéis sem acesso à rota.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}

// CurrentActor monta o ator explícito passado para os use cases —
// o domínio nunca lê o contexto da request diretamente.
func CurrentActor(c *gin.Context) domain.Actor {
	return domain.Actor{
		UserID:       c.GetUint(ContextUserID),
		Role:         domain.Role(c.GetString(ContextUserRole)),
		BarberID:     c.GetUint(ContextBarberID),
		BarbershopID: c.GetUint(ContextBarbershopID),
	}
}
