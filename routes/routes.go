package routes

import (
    "github.com/Subbu197328/nutri-app/controllers"
    "github.com/Subbu197328/nutri-app/middlewares"

    "github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
    r := gin.Default()
    r.Use(middlewares.RequestID())

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", controllers.Register)
        auth.POST("/login", controllers.Login)
    }

    // Protected analysis routes
    analysis := r.Group("/analysis")
    analysis.Use(middlewares.AuthMiddleware())
    {
        analysis.POST("/analyze", controllers.AnalyzeFood)
        analysis.GET("/history", controllers.GetHistory)
        analysis.POST("/report", controllers.DownloadReport)
        analysis.POST("/share", controllers.ShareReport)
    }

    return r
}
