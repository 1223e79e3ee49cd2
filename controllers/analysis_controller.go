package controllers

import (
	"encoding/base64"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/Subbu197328/nutri-app/services"
	"github.com/Subbu197328/nutri-app/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AnalyzeFood runs the whole pipeline for one uploaded image: Gemini call,
// fact extraction, history append, chart, share link. Extraction misses are
// not errors anywhere in here; the response just carries less.
func AnalyzeFood(c *gin.Context) {
	username := c.GetString("username")
	quantity := c.DefaultPostForm("quantity", "100g")

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Upload image first"})
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read image"})
		return
	}
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	gemini := services.NewGeminiService(os.Getenv("GOOGLE_API_KEY"))
	result, err := gemini.AnalyzeFood(c.Request.Context(), quantity, imageData, mimeType)
	if err != nil {
		logrus.WithError(err).WithField("requestID", c.GetString("requestID")).
			Error("gemini analysis failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Analysis failed"})
		return
	}

	// best-effort: keep the upload around, but never fail the analysis on it
	if key, err := utils.UploadFoodImage(c.Request.Context(), imageData, mimeType); err != nil {
		logrus.WithError(err).Warn("image upload skipped")
	} else {
		logrus.WithField("key", key).Info("food image stored")
	}

	calories, _ := services.ExtractCalories(result) // 0 when not found

	record, err := services.AppendAnalysis(username, result, calories, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{
		"id":       record.ID,
		"result":   result,
		"calories": calories,
		"share":    services.BuildShareLink(username, result, os.Getenv("APP_URL")),
	}

	if profile, ok := services.ExtractMacros(result); ok {
		resp["macros"] = profile
		png, err := services.RenderMacroChart(profile, true)
		if err != nil {
			logrus.WithError(err).Warn("macro chart skipped")
		} else if png != nil {
			resp["chart"] = base64.StdEncoding.EncodeToString(png)
		}
	}

	c.JSON(http.StatusOK, resp)
}
