package controllers

import (
	"errors"
	"net/http"

	"freshtrack/services"

	"github.com/gin-gonic/gin"
)

type InventoryController struct {
	Inv  *services.InventoryService
	Auth *services.AuthService
	Rek  *services.RekognitionService
}

func NewInventoryController(inv *services.InventoryService, auth *services.AuthService, rek *services.RekognitionService) *InventoryController {
	return &InventoryController{Inv: inv, Auth: auth, Rek: rek}
}

// GET /ingredients
func (ic *InventoryController) List(c *gin.Context) {
	items, err := ic.Inv.List(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

type manualAddInput struct {
	Name      string `json:"name" binding:"required"`
	Brand     string `json:"brand"`
	Allergens string `json:"allergens"` // comma-separated
}

// POST /ingredients
func (ic *InventoryController) AddManual(c *gin.Context) {
	var input manualAddInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := ic.Inv.AddManual(c.GetUint("userID"), input.Name, input.Brand, input.Allergens)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// DELETE /ingredients/:identifier — removing an unknown identifier
// still answers 200; the end state is the same either way.
func (ic *InventoryController) Remove(c *gin.Context) {
	if err := ic.Inv.Remove(c.GetUint("userID"), c.Param("identifier")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "removed"})
}

type scanInput struct {
	Barcode string `json:"barcode" binding:"required"`
}

// POST /scan — barcode to product to inventory, one shot, no retry.
func (ic *InventoryController) Scan(c *gin.Context) {
	var input scanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ic.Auth.FindUserByEmail(c.GetString("email"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	product, matched, err := ic.Inv.ScanBarcode(c.Request.Context(), user, input.Barcode)
	if errors.Is(err, services.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":           product,
		"allergen_warnings": matched,
	})
}

// GET /scan/history
func (ic *InventoryController) ScanHistory(c *gin.Context) {
	rows, err := ic.Inv.ScannedProducts(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /scan/photo { "image_base64": "data:…" } — label candidates for
// produce without a barcode.
func (ic *InventoryController) RecognizePhoto(c *gin.Context) {
	if ic.Rek == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "photo recognition not configured"})
		return
	}

	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	labels, err := ic.Rek.RecognizeLabels(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"labels": labels})
}
