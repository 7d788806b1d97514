package controllers

import (
	"net/http"

	"freshtrack/services"

	"github.com/gin-gonic/gin"
)

type CalendarController struct {
	Planner *services.PlannerService
}

func NewCalendarController(planner *services.PlannerService) *CalendarController {
	return &CalendarController{Planner: planner}
}

// GET /calendar
func (cc *CalendarController) GetCalendar(c *gin.Context) {
	cal, err := cc.Planner.Calendar(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cal)
}

// GET /calendar/:date
func (cc *CalendarController) GetDay(c *gin.Context) {
	meals, err := cc.Planner.MealsOn(c.GetUint("userID"), c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": c.Param("date"), "meals": meals})
}

type assignInput struct {
	Date  string `json:"date" binding:"required"`
	Title string `json:"title" binding:"required"`
}

// POST /calendar/assign
func (cc *CalendarController) Assign(c *gin.Context) {
	var input assignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := cc.Planner.AssignToDate(c.GetUint("userID"), input.Date, input.Title); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "assigned"})
}

// POST /calendar/remove
func (cc *CalendarController) Remove(c *gin.Context) {
	var input assignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := cc.Planner.RemoveFromDate(c.GetUint("userID"), input.Date, input.Title); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "removed"})
}

type moveInput struct {
	FromDate string `json:"from_date" binding:"required"`
	ToDate   string `json:"to_date" binding:"required"`
	Title    string `json:"title" binding:"required"`
}

// POST /calendar/move — best effort; see PlannerService.MoveAssignment.
func (cc *CalendarController) Move(c *gin.Context) {
	var input moveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := cc.Planner.MoveAssignment(c.GetUint("userID"), input.FromDate, input.ToDate, input.Title); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "moved"})
}
