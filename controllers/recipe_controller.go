package controllers

import (
	"net/http"
	"strconv"

	"freshtrack/services"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	Suggestions *services.SuggestionService
	API         *services.SpoonacularService
	Planner     *services.PlannerService
	Inv         *services.InventoryService
}

func NewRecipeController(sug *services.SuggestionService, api *services.SpoonacularService, planner *services.PlannerService, inv *services.InventoryService) *RecipeController {
	return &RecipeController{Suggestions: sug, API: api, Planner: planner, Inv: inv}
}

// GET /recipes/suggestions — cached list; a refresh may still be in
// flight, flagged by "loading".
func (rc *RecipeController) GetSuggestions(c *gin.Context) {
	suggestions, loading := rc.Suggestions.Latest(c.GetUint("userID"))
	c.JSON(http.StatusOK, gin.H{
		"suggestions": suggestions,
		"loading":     loading,
	})
}

// POST /recipes/suggestions/refresh — re-derive from the current
// inventory. Returns immediately; results arrive over the websocket.
func (rc *RecipeController) RefreshSuggestions(c *gin.Context) {
	uid := c.GetUint("userID")
	names, err := rc.Inv.Names(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	rc.Suggestions.Refresh(uid, names)
	c.JSON(http.StatusAccepted, gin.H{"message": "refresh started"})
}

// GET /recipes/:id
func (rc *RecipeController) GetDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	details, err := rc.API.Details(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, details)
}

type saveRecipeInput struct {
	RecipeID int    `json:"recipe_id" binding:"required"`
	Title    string `json:"title"`
	Image    string `json:"image"`
}

// POST /recipes/saved — idempotent; saving twice keeps one record.
func (rc *RecipeController) SaveRecipe(c *gin.Context) {
	var input saveRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := rc.Planner.SaveRecipe(c.GetUint("userID"), input.RecipeID, input.Title, input.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GET /recipes/saved
func (rc *RecipeController) ListSaved(c *gin.Context) {
	recs, err := rc.Planner.ListSaved(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recs)
}

// DELETE /recipes/saved/:id
func (rc *RecipeController) DeleteSaved(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := rc.Planner.DeleteSaved(c.GetUint("userID"), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
