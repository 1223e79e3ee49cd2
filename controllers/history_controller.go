package controllers

import (
	"net/http"

	"github.com/Subbu197328/nutri-app/services"

	"github.com/gin-gonic/gin"
)

func GetHistory(c *gin.Context) {
	username := c.GetString("username")

	records, err := services.ListHistory(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": records})
}
