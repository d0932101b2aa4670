package routes

import (
	"net/http"

	"leetmentor/controllers"

	"github.com/gin-gonic/gin"
)

// SetupAssistantRoutes registers the assistant, LeetCode and Lottie routes.
func SetupAssistantRoutes(router *gin.RouterGroup, ac *controllers.AssistantController) {
	router.POST("/ask", ac.Ask)
	router.POST("/ask/pdf", ac.AskWithPDF)

	leetcode := router.Group("/leetcode")
	{
		leetcode.GET("/:username", ac.GetLeetcodeProfile)
		leetcode.GET("/:username/summary", ac.GetLeetcodeSummary)
		leetcode.POST("/:username/coach", ac.CoachLeetcodeUser)
	}

	router.GET("/lottie", ac.GetAnimation)
}

func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
