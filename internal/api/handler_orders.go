package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Pangolin1100/class-order-system/internal/model"
)

type postOrderRequest struct {
	Name     string `json:"name"`
	SeatID   string `json:"seat_id"`
	Meal     string `json:"meal" binding:"required"`
	Drink    string `json:"drink" binding:"required"`
	IceLevel string `json:"ice_level" binding:"required"`
	Note     string `json:"note"`
}

// PostOrder handles the POST /api/orders request: one order-entry submission.
func (h *Handler) PostOrder(c *gin.Context) {
	var req postOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.SeatID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "請務必填寫姓名和座號", "fields": []string{"name", "seat_id"}})
		return
	}
	if !model.ValidIceLevel(req.IceLevel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("ice_level must be one of %v", model.IceLevels)})
		return
	}

	rec := model.NewOrderRecord(time.Now(), req.SeatID, req.Name, req.Meal, req.Drink, req.IceLevel, req.Note)
	if err := h.ledger.Append(rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("%s 同學，你的訂單已送出！", req.Name),
		"order":   rec,
	})
}
