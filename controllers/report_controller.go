package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/Subbu197328/nutri-app/services"

	"github.com/gin-gonic/gin"
)

type ReportInput struct {
	Text string `json:"text"`
}

// DownloadReport renders the analysis text into the printable PDF.
// Empty text is fine and yields a title/footer-only document.
func DownloadReport(c *gin.Context) {
	var input ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	pdf, err := services.RenderReport(input.Text, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate report"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="nutrivision_report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

type ShareInput struct {
	Text string `json:"text" binding:"required"`
}

func ShareReport(c *gin.Context) {
	username := c.GetString("username")

	var input ShareInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url := services.BuildShareLink(username, input.Text, os.Getenv("APP_URL"))
	c.JSON(http.StatusOK, gin.H{"url": url})
}
