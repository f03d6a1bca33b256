package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pangolin1100/class-order-system/internal/model"
	"github.com/Pangolin1100/class-order-system/internal/parse"
)

// menuResponse is what the order-entry form renders from.
type menuResponse struct {
	Meals      map[string]string `json:"meals"`
	MealOrder  []string          `json:"meal_order"`
	MealLabels []string          `json:"meal_labels"`
	Drinks     []string          `json:"drinks"`
	IceLevels  []string          `json:"ice_levels"`
}

// GetMenu handles the GET /api/menu request. The menu load fails open to the
// built-in default, so this endpoint never errors on a bad menu file.
func (h *Handler) GetMenu(c *gin.Context) {
	cfg := h.menu.Load()
	c.JSON(http.StatusOK, menuResponse{
		Meals:      cfg.Meals,
		MealOrder:  cfg.MealCodes(),
		MealLabels: cfg.MealLabels(),
		Drinks:     cfg.Drinks,
		IceLevels:  model.IceLevels,
	})
}

type putMenuRequest struct {
	Meals  string `json:"meals" binding:"required"`
	Drinks string `json:"drinks" binding:"required"`
}

// PutMenu handles the PUT /api/admin/menu request. Both free-text inputs must
// parse before anything is written; on any failure the prior menu stays
// authoritative.
func (h *Handler) PutMenu(c *gin.Context) {
	var req putMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meals, err := parse.Meals(req.Meals)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
			"hint":  `meals must be a JSON object of code to label, e.g. {"A": "A餐 - 香煎雞腿飯"}`,
		})
		return
	}

	drinks, err := parse.Drinks(req.Drinks)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
			"hint":  "drinks are names separated by , or ，",
		})
		return
	}

	if err := h.menu.Save(model.MenuConfig{Meals: meals, Drinks: drinks}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.menuCache != nil {
		h.menuCache.Flush()
	}
	c.JSON(http.StatusOK, gin.H{"message": "菜單已更新"})
}
