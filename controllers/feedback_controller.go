package controllers

import (
	"net/http"

	"freshtrack/utils"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	Mailer      *utils.Mailer
	SupportAddr string
}

func NewFeedbackController(mailer *utils.Mailer, supportAddr string) *FeedbackController {
	return &FeedbackController{Mailer: mailer, SupportAddr: supportAddr}
}

// POST /feedback — forwards the in-app "Send Feedback" message to the
// support inbox.
func (fc *FeedbackController) Send(c *gin.Context) {
	if fc.Mailer == nil || fc.SupportAddr == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "feedback not configured"})
		return
	}

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := fc.Mailer.SendFeedback(fc.SupportAddr, c.GetString("email"), req.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "feedback sent"})
}
