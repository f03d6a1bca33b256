package api

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pangolin1100/class-order-system/internal/model"
	"github.com/Pangolin1100/class-order-system/internal/store"
)

// orderStats aggregates the counters shown at the top of the review page.
type orderStats struct {
	Total   int            `json:"total"`
	ByMeal  map[string]int `json:"by_meal"`
	ByDrink map[string]int `json:"by_drink"`
}

func buildStats(records []model.OrderRecord) orderStats {
	stats := orderStats{
		Total:   len(records),
		ByMeal:  make(map[string]int),
		ByDrink: make(map[string]int),
	}
	for _, rec := range records {
		stats.ByMeal[rec.Meal]++
		stats.ByDrink[rec.Drink]++
	}
	return stats
}

// GetOrders handles the GET /api/admin/orders request: the full snapshot plus
// aggregate counts. A ledger read failure is surfaced as an error, never as
// an empty ledger.
func (h *Handler) GetOrders(c *gin.Context) {
	records, err := h.ledger.LoadAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orders": records,
		"stats":  buildStats(records),
	})
}

type putOrdersRequest struct {
	Orders []model.OrderRecord `json:"orders"`
}

// PutOrders handles the PUT /api/admin/orders request, the reconciliation
// commit point: the operator resubmits the whole edited snapshot on every
// interaction and it replaces the persisted one only when something actually
// changed. The commit is gated behind a successful read of the persisted
// snapshot, otherwise a read failure would let an empty view wipe the file.
func (h *Handler) PutOrders(c *gin.Context) {
	var req putOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	persisted, err := h.ledger.LoadAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	edited := req.Orders
	if edited == nil {
		edited = []model.OrderRecord{}
	}

	changed, err := h.ledger.Reconcile(persisted, edited)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"changed": changed}
	if changed {
		resp["message"] = "資料已更新並儲存"
	}
	c.JSON(http.StatusOK, resp)
}

// ExportOrders handles the GET /api/admin/orders/export request: the full
// snapshot in the ledger file format, BOM included, as a download.
func (h *Handler) ExportOrders(c *gin.Context) {
	records, err := h.ledger.LoadAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := store.WriteCSV(&buf, records); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="class_orders.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
