package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ArielVinis/france-barbershop/internal/middleware"
	"github.com/ArielVinis/france-barbershop/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	userID, ok := userIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	resp := gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
			"role":  user.Role,
		},
	}

	// O vínculo com a barbearia depende do papel: dono possui a
	// barbearia, barbeiro pertence a uma.
	switch user.Role {
	case "owner":
		var shop models.Barbershop
		if err := h.db.Where("owner_id = ?", user.ID).First(&shop).Error; err == nil {
			resp["barbershop"] = gin.H{
				"id":      shop.ID,
				"name":    shop.Name,
				"slug":    shop.Slug,
				"phone":   shop.Phone,
				"address": shop.Address,
			}
		}

	case "barber":
		var barber models.Barber
		if err := h.db.Preload("Barbershop").Where("user_id = ?", user.ID).First(&barber).Error; err == nil {
			resp["barber"] = gin.H{
				"id":     barber.ID,
				"active": barber.Active,
			}
			resp["barbershop"] = gin.H{
				"id":   barber.Barbershop.ID,
				"name": barber.Barbershop.Name,
				"slug": barber.Barbershop.Slug,
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}
